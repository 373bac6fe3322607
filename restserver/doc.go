// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a todo.Store as a REST service.  The
// restclient package is a matching client.
//
// The complete REST API is defined in the restdata package.  In
// particular, note that the URLs described here are not actually part
// of the API.
//
// HTTP Considerations
//
// HTTP GET requests return JSON.  The response Content-Type: is
// application/json unless the client's Accept: header asks for
// text/json or application/vnd.diffeo.todo.v1+json.  Request bodies
// must be JSON; a request with no Content-Type: is read as JSON.
//
// Any resource that supports GET also supports HEAD.  PUT and PATCH
// are interchangeable and both make partial updates.
//
// This interface does not support HTTP caching or authentication
// headers.
//
// URLs
//
//     /
//
// GET only.  Returns a restdata.RootData.
//
//     /todos
//
// GET returns every todo.  POST creates a new one, returning 201
// Created with a Location: header.
//
//     /todos/{id}
//
// GET returns a single todo.  PUT and PATCH update it and return the
// new representation.  DELETE removes it and all of its items.
//
//     /todos/{todo_id}/items
//
// GET returns the items in a todo.  POST creates a new item in that
// todo.
//
//     /todos/{todo_id}/items/{id}
//
// GET returns a single item.  PUT and PATCH update it, returning 204
// No Content.  DELETE removes it.
package restserver

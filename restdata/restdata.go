// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Generally JSON encodings of
// these are passed across the wire as plain application/json, though
// the application/vnd.diffeo.todo.v1+json MIME type can be requested
// explicitly.
//
// API Usage
//
// HTTP GET the root document at its specified URL.  This will return
// a JSON serialization of the RootData object.  That serialization
// has links to other resources; follow these links, possibly filling
// in template values, to get to other resources.
//
// The URL fields are RFC 6570 URI templates.  If the system is rooted
// at /, a JSON serialization of RootData will look like
//
//     {
//         "todos_url": "/todos",
//         "todo_url": "/todos/{id}",
//         "items_url": "/todos/{todo_id}/items",
//         "item_url": "/todos/{todo_id}/items/{id}"
//     }
//
// While the URL structure is predictable and formulaic, only the
// RootData document is part of the API contract.
//
// Representations
//
// A todo is returned as a JSON serialization of todo.Todo, and an
// item as a serialization of todo.Item; lists are JSON arrays of
// these.  Timestamps are RFC 3339 strings,
// "2017-03-14T15:09:26Z".
//
// Requests that create or change a record must wrap its fields in an
// object named for the resource:
//
//     {"todo": {"title": "learn elm", "created_by": "Foo"}}
//     {"item": {"name": "read the guide", "done": false}}
//
// Only the fields named in todo.TodoPermitted or todo.ItemPermitted
// are read from the wrapper; anything else is ignored.  A missing or
// empty wrapper is a 400 Bad Request.  Fields that are absent are left
// unchanged by PUT and PATCH.
//
// Errors
//
// A request for a missing todo or item returns 404 Not Found with a
// plain-text body, "Couldn't find Todo with 'id'=17".  A create or
// update that would leave a record invalid returns 422 Unprocessable
// Entity with a JSON object mapping field names to lists of problems,
// {"title": ["can't be blank"]}.  Other errors are returned as
// encodings of the ErrorResponse type.
//
// If Go server code panics, this should be captured and returned as
// an ErrorResponse with error code "panic".
package restdata

import (
	"github.com/diffeo/go-todo/todo"
)

// V1JSONMediaType is the preferred, most specific MIME type for the
// JSON representation of this content.
const V1JSONMediaType = "application/vnd.diffeo.todo.v1+json"

// JSONMediaType requests the most recent version of the JSON
// representation of this content.
const JSONMediaType = "application/vnd.diffeo.todo+json"

// PlainJSONMediaType is the generic JSON MIME type.  Responses use it
// unless the client asks for something more specific.
const PlainJSONMediaType = "application/json"

// RootData is returned by the root path.
type RootData struct {
	// TodosURL points at the todo list.  This endpoint supports
	// HTTP GET to return a list of todo.Todo, and HTTP POST with
	// a TodoRequest to create a new todo.
	TodosURL string `json:"todos_url"`

	// TodoURL points at a single todo.  This endpoint supports
	// HTTP GET, PUT, PATCH, and DELETE.  This is a URI template
	// with a single parameter, "id".
	TodoURL string `json:"todo_url"`

	// ItemsURL points at the items in a single todo.  This
	// endpoint supports HTTP GET to return a list of todo.Item,
	// and HTTP POST with an ItemRequest to create a new item.
	// This is a URI template with a single parameter, "todo_id".
	ItemsURL string `json:"items_url"`

	// ItemURL points at a single item.  This endpoint supports
	// HTTP GET, PUT, PATCH, and DELETE.  HTTP PUT and PATCH return
	// no content; GET the item again to see its new state.  This
	// is a URI template with parameters "todo_id" and "id".
	ItemURL string `json:"item_url"`
}

// TodoRequest is the body of a request to create or change a todo.
type TodoRequest struct {
	Todo todo.TodoParams `json:"todo"`
}

// ItemRequest is the body of a request to create or change an item.
type ItemRequest struct {
	Item todo.ItemParams `json:"item"`
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short description of the failure.  This may be
	// the name of a todo package error, the string "panic", or
	// the string "error" for some other kind of error.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Value is an extra parameter to the error if applicable.
	Value string `json:"value,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}

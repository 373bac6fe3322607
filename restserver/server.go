// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/diffeo/go-todo/restdata"
	"github.com/diffeo/go-todo/todo"
	"github.com/gorilla/mux"
)

// NewRouter creates a new HTTP handler that processes all todo
// requests.  All resources are under the URL path root, e.g.
// /todos/1.  For more control over this setup, create a mux.Router and
// call PopulateRouter instead.
func NewRouter(store todo.Store) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, store)
	return r
}

// PopulateRouter adds todo routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the API under a subpath:
//
//     import "github.com/diffeo/go-todo/memory"
//     import "github.com/gorilla/mux"
//     r := mux.NewRouter()
//     s := r.PathPrefix("/api").Subrouter()
//     store := memory.New()
//     PopulateRouter(s, store)
func PopulateRouter(r *mux.Router, store todo.Store) {
	api := &restAPI{Store: store, Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	Store  todo.Store
	Router *mux.Router
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.PopulateTodos(r)
	api.PopulateItems(r)
	r.Path("/").Name("root").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.RootDocument,
	})
}

func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	resp := restdata.RootData{}
	err := buildURLs(api.Router).
		URL(&resp.TodosURL, "todos").
		Template(&resp.TodoURL, "todo", "id").
		Template(&resp.ItemsURL, "items", "todo_id").
		Template(&resp.ItemURL, "item", "todo_id", "id").
		Error
	return resp, err
}

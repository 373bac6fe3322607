// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/diffeo/go-todo/restdata"
	"github.com/diffeo/go-todo/todo"
	"github.com/gorilla/mux"
)

// context holds all of the information that can be extracted from URL
// parameters.  It does not look anything up; handlers call
// resolveTodo() and resolveItem() themselves.
type context struct {
	// TodoID is the todo named in the URL, either as {todo_id}
	// on item routes or as {id} on todo routes.
	TodoID int64

	// ItemID is the item named in the URL, if any.
	ItemID int64

	// BaseURL is the absolute URL the client used for this
	// request, for building Location: headers.
	BaseURL *url.URL
}

func (api *restAPI) Context(req *http.Request) (ctx *context, err error) {
	ctx = &context{BaseURL: requestURL(req)}
	vars := mux.Vars(req)

	if _, nested := vars["todo_id"]; nested {
		ctx.TodoID, err = parseID(vars, "todo_id")
		if err == nil {
			ctx.ItemID, err = parseID(vars, "id")
		}
	} else {
		ctx.TodoID, err = parseID(vars, "id")
	}
	return
}

// parseID reads an integer ID from the URL variables.  A missing
// variable is zero; a malformed one is a bad request.
func parseID(vars map[string]string, name string) (int64, error) {
	value, present := vars[name]
	if !present {
		return 0, nil
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, restdata.ErrBadRequest{
			Err: fmt.Errorf("Invalid %s %q", name, value),
		}
	}
	return id, nil
}

// requestURL reconstructs the absolute URL of a request.
func requestURL(req *http.Request) *url.URL {
	u := *req.URL
	if u.Scheme == "" {
		u.Scheme = "http"
		if req.TLS != nil {
			u.Scheme = "https"
		}
		if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
			u.Scheme = proto
		}
	}
	if u.Host == "" {
		u.Host = req.Host
	}
	if u.Host == "" {
		u.Host = "localhost"
	}
	return &u
}

// resolveTodo finds the todo named in the URL.
func (api *restAPI) resolveTodo(ctx *context) (todo.Todo, error) {
	return api.Store.Todo(ctx.TodoID)
}

// resolveItem finds the item named in the URL, within its todo.
func (api *restAPI) resolveItem(ctx *context) (todo.Item, error) {
	return api.Store.Item(ctx.TodoID, ctx.ItemID)
}

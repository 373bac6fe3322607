// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-todo/restdata"
	"github.com/diffeo/go-todo/todo"
	"github.com/gorilla/mux"
)

// PopulateTodos adds the todo URL paths to a router.
func (api *restAPI) PopulateTodos(r *mux.Router) {
	r.Path("/todos").Name("todos").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.TodoList,
		Post:    api.TodoPost,
	})
	r.Path("/todos/{id}").Name("todo").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.TodoGet,
		Put:     api.TodoPut,
		Delete:  api.TodoDelete,
	})
}

// todoURL returns the canonical absolute URL of a todo.
func (api *restAPI) todoURL(ctx *context, id int64) (string, error) {
	var path string
	err := buildURLs(api.Router, "id", idParam(id)).
		URL(&path, "todo").
		Error
	return absolute(ctx.BaseURL, path), err
}

// TodoList returns every todo.
func (api *restAPI) TodoList(ctx *context) (interface{}, error) {
	todos, err := api.Store.Todos()
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []todo.Todo{}
	}
	return todos, nil
}

// TodoPost creates a new todo.
func (api *restAPI) TodoPost(ctx *context, in body) (interface{}, error) {
	params, err := restdata.TodoParams(in)
	if err != nil {
		return nil, err
	}
	record, err := api.Store.CreateTodo(params)
	if err != nil {
		return nil, err
	}
	location, err := api.todoURL(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location,
		Body:     record,
	}, nil
}

// TodoGet returns a single todo.
func (api *restAPI) TodoGet(ctx *context) (interface{}, error) {
	return api.resolveTodo(ctx)
}

// TodoPut changes the permitted fields of a todo and returns its new
// representation.
func (api *restAPI) TodoPut(ctx *context, in body) (interface{}, error) {
	record, err := api.resolveTodo(ctx)
	if err != nil {
		return nil, err
	}
	params, err := restdata.TodoParams(in)
	if err != nil {
		return nil, err
	}
	return api.Store.UpdateTodo(record.ID, params)
}

// TodoDelete deletes a todo and all of its items.
func (api *restAPI) TodoDelete(ctx *context) (interface{}, error) {
	record, err := api.resolveTodo(ctx)
	if err != nil {
		return nil, err
	}
	return nil, api.Store.DestroyTodo(record.ID)
}

// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides a todo.Store that talks to the matching
// HTTP REST server in the "restserver" package.
//
// The server in github.com/diffeo/go-todo/cmd/todod runs a compatible
// REST server.  Call New() with the base URL of that service; for
// instance,
//
//     store, err := restclient.New("http://localhost:3000/")
package restclient

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/diffeo/go-todo/restdata"
	"github.com/diffeo/go-todo/todo"
)

// New creates a new todo.Store that speaks to an external REST
// server.  It fetches the root document immediately, so this fails if
// the server cannot be reached.
func New(baseURL string) (todo.Store, error) {
	if baseURL == "" {
		return nil, errors.New("restclient: empty base URL")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	s := &restStore{resource: resource{URL: u}}
	err = s.Refresh()
	if err != nil {
		return nil, err
	}
	return s, nil
}

type restStore struct {
	resource
	Representation restdata.RootData
}

// Refresh reloads the root document.
func (s *restStore) Refresh() error {
	s.Representation = restdata.RootData{}
	return s.Do("GET", s.URL, nil, &s.Representation)
}

func todoVars(id int64) map[string]interface{} {
	return map[string]interface{}{"id": strconv.FormatInt(id, 10)}
}

func itemVars(todoID, id int64) map[string]interface{} {
	return map[string]interface{}{
		"todo_id": strconv.FormatInt(todoID, 10),
		"id":      strconv.FormatInt(id, 10),
	}
}

func (s *restStore) Todos() ([]todo.Todo, error) {
	var result []todo.Todo
	err := s.GetFrom(s.Representation.TodosURL, map[string]interface{}{}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *restStore) Todo(id int64) (result todo.Todo, err error) {
	err = s.GetFrom(s.Representation.TodoURL, todoVars(id), &result)
	return
}

func (s *restStore) CreateTodo(params todo.TodoParams) (result todo.Todo, err error) {
	err = s.PostTo(s.Representation.TodosURL, map[string]interface{}{},
		restdata.TodoRequest{Todo: params}, &result)
	return
}

func (s *restStore) UpdateTodo(id int64, params todo.TodoParams) (result todo.Todo, err error) {
	err = s.PutTo(s.Representation.TodoURL, todoVars(id),
		restdata.TodoRequest{Todo: params}, &result)
	return
}

func (s *restStore) DestroyTodo(id int64) error {
	return s.DeleteAt(s.Representation.TodoURL, todoVars(id))
}

func (s *restStore) Items(todoID int64) ([]todo.Item, error) {
	var result []todo.Item
	err := s.GetFrom(s.Representation.ItemsURL, map[string]interface{}{
		"todo_id": strconv.FormatInt(todoID, 10),
	}, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *restStore) Item(todoID, id int64) (result todo.Item, err error) {
	err = s.GetFrom(s.Representation.ItemURL, itemVars(todoID, id), &result)
	return
}

func (s *restStore) CreateItem(todoID int64, params todo.ItemParams) (result todo.Item, err error) {
	err = s.PostTo(s.Representation.ItemsURL, map[string]interface{}{
		"todo_id": strconv.FormatInt(todoID, 10),
	}, restdata.ItemRequest{Item: params}, &result)
	return
}

// UpdateItem sends the change, then fetches the item again, since the
// server does not return the updated representation.
func (s *restStore) UpdateItem(todoID, id int64, params todo.ItemParams) (todo.Item, error) {
	err := s.PutTo(s.Representation.ItemURL, itemVars(todoID, id),
		restdata.ItemRequest{Item: params}, nil)
	if err != nil {
		return todo.Item{}, err
	}
	if params.TodoID != nil {
		todoID = *params.TodoID
	}
	return s.Item(todoID, id)
}

func (s *restStore) DestroyItem(todoID, id int64) error {
	return s.DeleteAt(s.Representation.ItemURL, itemVars(todoID, id))
}

// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-todo/restdata"
	"github.com/diffeo/go-todo/todo"
	"github.com/gorilla/mux"
)

// PopulateItems adds the item URL paths, nested under todos, to a
// router.
func (api *restAPI) PopulateItems(r *mux.Router) {
	r.Path("/todos/{todo_id}/items").Name("items").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.ItemList,
		Post:    api.ItemPost,
	})
	r.Path("/todos/{todo_id}/items/{id}").Name("item").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.ItemGet,
		Put:     api.ItemPut,
		Delete:  api.ItemDelete,
	})
}

// itemURL returns the canonical absolute URL of an item.
func (api *restAPI) itemURL(ctx *context, item todo.Item) (string, error) {
	var path string
	err := buildURLs(api.Router, "todo_id", idParam(item.TodoID), "id", idParam(item.ID)).
		URL(&path, "item").
		Error
	return absolute(ctx.BaseURL, path), err
}

// ItemList returns the items in a todo.
func (api *restAPI) ItemList(ctx *context) (interface{}, error) {
	parent, err := api.resolveTodo(ctx)
	if err != nil {
		return nil, err
	}
	items, err := api.Store.Items(parent.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []todo.Item{}
	}
	return items, nil
}

// ItemPost creates a new item in the todo named in the URL.  A todo_id
// in the request body does not change where the item goes.
func (api *restAPI) ItemPost(ctx *context, in body) (interface{}, error) {
	parent, err := api.resolveTodo(ctx)
	if err != nil {
		return nil, err
	}
	params, err := restdata.ItemParams(in)
	if err != nil {
		return nil, err
	}
	item, err := api.Store.CreateItem(parent.ID, params)
	if err != nil {
		return nil, err
	}
	location, err := api.itemURL(ctx, item)
	if err != nil {
		return nil, err
	}
	return responseCreated{
		Location: location,
		Body:     item,
	}, nil
}

// ItemGet returns a single item.
func (api *restAPI) ItemGet(ctx *context) (interface{}, error) {
	if _, err := api.resolveTodo(ctx); err != nil {
		return nil, err
	}
	return api.resolveItem(ctx)
}

// ItemPut changes the permitted fields of an item.  If the body names
// a different todo_id the item moves there.  This returns no content.
func (api *restAPI) ItemPut(ctx *context, in body) (interface{}, error) {
	if _, err := api.resolveTodo(ctx); err != nil {
		return nil, err
	}
	item, err := api.resolveItem(ctx)
	if err != nil {
		return nil, err
	}
	params, err := restdata.ItemParams(in)
	if err != nil {
		return nil, err
	}
	_, err = api.Store.UpdateItem(item.TodoID, item.ID, params)
	return nil, err
}

// ItemDelete deletes a single item.
func (api *restAPI) ItemDelete(ctx *context) (interface{}, error) {
	if _, err := api.resolveTodo(ctx); err != nil {
		return nil, err
	}
	item, err := api.resolveItem(ctx)
	if err != nil {
		return nil, err
	}
	return nil, api.Store.DestroyItem(item.TodoID, item.ID)
}

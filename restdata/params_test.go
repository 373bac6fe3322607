// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"strings"
	"testing"

	"github.com/diffeo/go-todo/todo"
	"github.com/stretchr/testify/assert"
)

func decodeBody(t *testing.T, body string) map[string]interface{} {
	var result map[string]interface{}
	err := Decode("application/json", strings.NewReader(body), &result)
	assert.NoError(t, err)
	return result
}

func TestPermitDropsUnknown(t *testing.T) {
	body := decodeBody(t, `{"todo": {"title": "learn elm", "id": 17, "something": "anything"}}`)
	fields, err := Permit(body, "todo", todo.TodoPermitted)
	if assert.NoError(t, err) {
		assert.Equal(t, map[string]interface{}{"title": "learn elm"}, fields)
	}
}

func TestPermitNothingPermitted(t *testing.T) {
	body := decodeBody(t, `{"todo": {"something": "anything"}}`)
	fields, err := Permit(body, "todo", todo.TodoPermitted)
	if assert.NoError(t, err) {
		assert.Empty(t, fields)
	}
}

func TestPermitMissingWrapper(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"title": "learn elm"}`,
		`{"todo": {}}`,
		`{"todo": "learn elm"}`,
		`{"todo": null}`,
	} {
		_, err := Permit(decodeBody(t, body), "todo", todo.TodoPermitted)
		assert.Equal(t, ErrBadRequest{Err: todo.ErrNoParams}, err, body)
	}
}

func TestPermitNilBody(t *testing.T) {
	_, err := Permit(nil, "item", todo.ItemPermitted)
	assert.Equal(t, ErrBadRequest{Err: todo.ErrNoParams}, err)
}

func TestTodoParams(t *testing.T) {
	body := decodeBody(t, `{"todo": {"title": "learn elm", "created_by": "Foo"}}`)
	params, err := TodoParams(body)
	if assert.NoError(t, err) {
		assert.Equal(t, todo.TodoParams{
			Title:     todo.String("learn elm"),
			CreatedBy: todo.String("Foo"),
		}, params)
	}
}

func TestTodoParamsPartial(t *testing.T) {
	body := decodeBody(t, `{"todo": {"title": "learn go"}}`)
	params, err := TodoParams(body)
	if assert.NoError(t, err) {
		assert.Equal(t, todo.String("learn go"), params.Title)
		assert.Nil(t, params.CreatedBy)
	}
}

func TestItemParams(t *testing.T) {
	body := decodeBody(t, `{"item": {"name": "milk", "done": true, "todo_id": 3}}`)
	params, err := ItemParams(body)
	if assert.NoError(t, err) {
		assert.Equal(t, todo.ItemParams{
			Name:   todo.String("milk"),
			Done:   todo.Bool(true),
			TodoID: todo.ID(3),
		}, params)
	}
}

func TestItemParamsWeak(t *testing.T) {
	body := decodeBody(t, `{"item": {"done": "true", "todo_id": "3"}}`)
	params, err := ItemParams(body)
	if assert.NoError(t, err) {
		assert.Nil(t, params.Name)
		assert.Equal(t, todo.Bool(true), params.Done)
		assert.Equal(t, todo.ID(3), params.TodoID)
	}
}

func TestItemParamsBadType(t *testing.T) {
	body := decodeBody(t, `{"item": {"todo_id": "three"}}`)
	_, err := ItemParams(body)
	if assert.Error(t, err) {
		assert.IsType(t, ErrBadRequest{}, err)
	}
}

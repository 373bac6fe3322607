// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"net/http"
	"testing"

	"github.com/diffeo/go-todo/todo"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	invalid := todo.ValidationErrors{"title": {todo.MsgBlank}}
	tests := []struct {
		Err    error
		Status int
	}{
		{todo.ErrNoSuchTodo{ID: 1}, http.StatusNotFound},
		{todo.ErrNoSuchItem{TodoID: 1, ID: 2}, http.StatusNotFound},
		{invalid, http.StatusUnprocessableEntity},
		{todo.ErrNoParams, http.StatusBadRequest},
		{ErrUnsupportedMediaType{Type: "text/plain"}, http.StatusUnsupportedMediaType},
	}
	for _, test := range tests {
		err := Classify(test.Err)
		if errS, hasStatus := err.(ErrorStatus); assert.True(t, hasStatus, "%v", test.Err) {
			assert.Equal(t, test.Status, errS.HTTPStatus(), "%v", test.Err)
		}
		assert.Equal(t, test.Err.Error(), err.Error())
	}

	plain := errors.New("plain")
	assert.Equal(t, plain, Classify(plain))
}

func TestParseNotFound(t *testing.T) {
	for _, err := range []error{
		todo.ErrNoSuchTodo{ID: 17},
		todo.ErrNoSuchItem{TodoID: 17, ID: 42},
	} {
		assert.Equal(t, err, ParseNotFound(err.Error()+"\n"))
	}
	assert.EqualError(t, ParseNotFound("404 page not found"), "404 page not found")
}

func TestErrorResponseRoundTrip(t *testing.T) {
	for _, err := range []error{
		todo.ErrNoParams,
		todo.ErrNoSuchTodo{ID: 17},
		todo.ErrNoSuchItem{TodoID: 17, ID: 42},
	} {
		resp := ErrorResponse{Error: "error"}
		resp.FromError(err)
		assert.Equal(t, err, resp.ToError())

		wrapped := ErrorResponse{Error: "error"}
		wrapped.FromError(Classify(err))
		assert.Equal(t, resp, wrapped)
	}

	resp := ErrorResponse{Error: "error"}
	resp.FromError(errors.New("something broke"))
	assert.Equal(t, "error", resp.Error)
	assert.EqualError(t, resp.ToError(), "something broke")
}

func TestFromPanic(t *testing.T) {
	resp := ErrorResponse{}
	resp.FromPanic("oops")
	assert.Equal(t, "panic", resp.Error)
	assert.Equal(t, "oops", resp.Message)
	assert.NotEmpty(t, resp.Stack)
}

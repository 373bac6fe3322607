// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"

	"github.com/diffeo/go-todo/todo"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrUnprocessableEntity wraps the validation errors from a create or
// update request.
type ErrUnprocessableEntity struct {
	Errors todo.ValidationErrors
}

func (e ErrUnprocessableEntity) Error() string {
	return e.Errors.Error()
}

// HTTPStatus returns a fixed 422 Unprocessable Entity HTTP status code.
func (e ErrUnprocessableEntity) HTTPStatus() int {
	return http.StatusUnprocessableEntity
}

// Classify wraps well-known todo package errors in the wrapper type
// that carries their HTTP status.  Other errors are returned as is.
func Classify(err error) error {
	switch et := err.(type) {
	case todo.ErrNoSuchTodo, todo.ErrNoSuchItem:
		return ErrNotFound{Err: err}
	case todo.ValidationErrors:
		return ErrUnprocessableEntity{Errors: et}
	}
	if err == todo.ErrNoParams {
		return ErrBadRequest{Err: err}
	}
	return err
}

// ParseNotFound converts the plain-text body of a 404 response back
// into a todo package error.  If the text is not a recognized message
// it is returned as a plain error.
func ParseNotFound(text string) error {
	text = strings.TrimSpace(text)
	var todoID, id int64
	if n, _ := fmt.Sscanf(text, "Couldn't find Item with 'id'=%d and 'todo_id'=%d", &id, &todoID); n == 2 {
		return todo.ErrNoSuchItem{TodoID: todoID, ID: id}
	}
	if n, _ := fmt.Sscanf(text, "Couldn't find Todo with 'id'=%d", &id); n == 1 {
		return todo.ErrNoSuchTodo{ID: id}
	}
	return errors.New(text)
}

// FromError populates an ErrorResponse to fill in its fields based
// on an error value.  This remaps the well-known todo errors to
// specific e.Error codes.
func (e *ErrorResponse) FromError(err error) {
	e.Message = err.Error()
	if err == todo.ErrNoParams {
		e.Error = "ErrNoParams"
	}
	switch et := err.(type) {
	case todo.ErrNoSuchTodo:
		e.Error = "ErrNoSuchTodo"
		e.Value = strconv.FormatInt(et.ID, 10)
	case todo.ErrNoSuchItem:
		e.Error = "ErrNoSuchItem"
		e.Value = fmt.Sprintf("%d/%d", et.TodoID, et.ID)
	case ErrNotFound:
		// Discard this wrapper and return the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	}
}

// ToError converts e back to a todo error, if that is possible.  If
// not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrNoParams":
		return todo.ErrNoParams
	case "ErrNoSuchTodo":
		id, err := strconv.ParseInt(e.Value, 10, 64)
		if err == nil {
			return todo.ErrNoSuchTodo{ID: id}
		}
	case "ErrNoSuchItem":
		var todoID, id int64
		if n, _ := fmt.Sscanf(e.Value, "%d/%d", &todoID, &id); n == 2 {
			return todo.ErrNoSuchItem{TodoID: todoID, ID: id}
		}
	}
	return errors.New(e.Message)
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//     defer func() {
//         if obj := recovered(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//    }
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}

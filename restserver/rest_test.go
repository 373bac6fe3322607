// Regression tests for rest.go.
//
// Main tests are really by running the end-to-end path, using the
// todotest tests driven from restclient, and the HTTP contract tests
// in api_test.go.  This only contains special-case bug tests.
//
// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/diffeo/go-todo/memory"
	"github.com/diffeo/go-todo/todo"
	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	backend := memory.New()
	_, err := backend.CreateTodo(todo.TodoParams{
		Title:     todo.String("learn elm"),
		CreatedBy: todo.String("Foo"),
	})
	if !assert.NoError(t, err) {
		return
	}

	router := NewRouter(backend)
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/todos/1",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestPanic checks that a panicking handler produces a 500 error.
func TestPanic(t *testing.T) {
	handler := &resourceHandler{
		Context: func(*http.Request) (*context, error) {
			return &context{}, nil
		},
		Get: func(*context) (interface{}, error) {
			panic("oops")
		},
	}
	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: "/"},
		Header: http.Header{},
	}
	resp := &failResponseWriter{}
	handler.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestNegotiateResponse(t *testing.T) {
	tests := []struct {
		Accept string
		Type   string
		Err    error
	}{
		{"", "application/json", nil},
		{"*/*", "application/json", nil},
		{"application/*", "application/json", nil},
		{"text/*", "text/json", nil},
		{"text/json", "text/json", nil},
		{"application/vnd.diffeo.todo.v1+json", "application/vnd.diffeo.todo.v1+json", nil},
		{"text/html, application/json;q=0.9, */*;q=0.1", "application/json", nil},
		{"text/html", "", errNotAcceptable{}},
		{"application/json;q=2", "", errBadAccept},
	}
	for _, test := range tests {
		req := &http.Request{Header: http.Header{}}
		if test.Accept != "" {
			req.Header.Set("Accept", test.Accept)
		}
		actual, err := negotiateResponse(req)
		if test.Err == nil {
			if assert.NoError(t, err, test.Accept) {
				assert.Equal(t, test.Type, actual, test.Accept)
			}
		} else {
			assert.Equal(t, test.Err, err, test.Accept)
		}
	}
}

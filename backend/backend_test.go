// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend

import (
	"flag"
	"io/ioutil"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diffeo/go-todo/memory"
	"github.com/diffeo/go-todo/restserver"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	tests := []struct {
		Param          string
		Implementation string
		Address        string
	}{
		{"memory", "memory", ""},
		{"postgres", "postgres", ""},
		{"postgres://user@localhost/todo", "postgres", "//user@localhost/todo"},
		{"postgres:host=localhost dbname=todo", "postgres", "host=localhost dbname=todo"},
		{"http://localhost:3000/", "http", "//localhost:3000/"},
	}
	for _, test := range tests {
		b := Backend{}
		if assert.NoError(t, b.Set(test.Param), test.Param) {
			assert.Equal(t, test.Implementation, b.Implementation, test.Param)
			assert.Equal(t, test.Address, b.Address, test.Param)
			assert.Equal(t, test.Param, b.String())
		}
	}
}

func TestSetInvalid(t *testing.T) {
	for _, param := range []string{"", ":foo", "redis", "redis:localhost"} {
		b := Backend{Implementation: "memory"}
		assert.Error(t, b.Set(param), param)
		assert.Equal(t, "memory", b.Implementation, param)
	}
}

func TestFlag(t *testing.T) {
	b := Backend{Implementation: "memory"}
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.SetOutput(ioutil.Discard)
	flags.Var(&b, "backend", "impl[:address] of the storage backend")

	assert.NoError(t, flags.Parse([]string{"-backend", "postgres:dbname=todo"}))
	assert.Equal(t, "postgres", b.Implementation)
	assert.Equal(t, "dbname=todo", b.Address)

	err := flags.Parse([]string{"-backend", "bogus"})
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), "bogus"))
	}
}

func TestMemory(t *testing.T) {
	b := Backend{Implementation: "memory"}
	store, err := b.Store()
	if assert.NoError(t, err) {
		todos, err := store.Todos()
		assert.NoError(t, err)
		assert.Empty(t, todos)
	}
}

func TestHTTP(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(memory.New()))
	defer server.Close()

	b := Backend{}
	if !assert.NoError(t, b.Set(server.URL)) {
		return
	}
	store, err := b.Store()
	if assert.NoError(t, err) {
		todos, err := store.Todos()
		assert.NoError(t, err)
		assert.Empty(t, todos)
	}
}

func TestUnknown(t *testing.T) {
	b := Backend{Implementation: "redis"}
	_, err := b.Store()
	assert.Error(t, err)
}

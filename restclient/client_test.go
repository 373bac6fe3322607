// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diffeo/go-todo/memory"
	"github.com/diffeo/go-todo/restclient"
	"github.com/diffeo/go-todo/restserver"
	"github.com/diffeo/go-todo/todo/todotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic todo.Store tests through an object stack
// where the REST client code talks to the REST server code, which
// points at an in-memory backend.
type Suite struct {
	todotest.Suite
	Server *httptest.Server
}

// SetupTest starts a new server with an empty backend.
func (s *Suite) SetupTest() {
	s.Suite.SetupTest()
	backend := memory.NewWithClock(s.Clock)
	s.Server = httptest.NewServer(restserver.NewRouter(backend))
	store, err := restclient.New(s.Server.URL)
	s.Require().NoError(err)
	s.Store = store
}

// TearDownTest stops the server.
func (s *Suite) TearDownTest() {
	s.Server.Close()
}

// TestStore runs the generic todo.Store tests over HTTP.
func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestEmptyURL(t *testing.T) {
	_, err := restclient.New("")
	assert.Error(t, err)
}

func TestNotAServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := restclient.New(server.URL)
	assert.EqualError(t, err, "404 page not found")
}

// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a todo.Store
// based on command-line flags.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diffeo/go-todo/memory"
	"github.com/diffeo/go-todo/postgres"
	"github.com/diffeo/go-todo/restclient"
	"github.com/diffeo/go-todo/todo"
)

// Backend describes user-visible parameters to store todo data.  This
// implements the flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{"memory", ""}
//         flag.Var(&backend, "backend", "impl:address of todo storage")
//         flag.Parse()
//         store, err := backend.Store()
//     }
//
// Known implementations are "memory", which needs no address;
// "postgres", whose address is a PostgreSQL connection string; and
// "http", whose address is the URL of another todo server, as in
// "http://localhost:3000/".
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string
}

// Store creates a new todo.Store.  This generally should be only
// called once.  If the backend has in-process state, such as a
// database connection pool or an in-memory store, calling this
// multiple times will create multiple copies of that state.  In
// particular, if b.Implementation is "memory", multiple calls to this
// will create multiple independent todo "worlds".
func (b *Backend) Store() (todo.Store, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "postgres":
		return postgres.New(b.Address)
	case "http", "https":
		return restclient.New(b.Implementation + ":" + b.Address)
	default:
		return nil, fmt.Errorf("unknown todo backend %q", b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Set checks to see if the provided
// implementation is any of the known implementations, and returns an
// appropriate error if not.
//
// This is part of the flag.Value interface.  Note that neither Set
// nor Store attempts to validate the b.Address part of the string
// before actually making a connection.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	var impl, address string
	switch len(parts) {
	case 1:
		impl = parts[0]
	case 2:
		impl = parts[0]
		address = parts[1]
	}
	switch impl {
	case "":
		return errors.New("must specify a backend type")
	case "memory", "postgres", "http", "https":
	default:
		return fmt.Errorf("unknown todo backend %q", impl)
	}
	b.Implementation = impl
	b.Address = address
	return nil
}

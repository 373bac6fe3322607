// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package todo defines the data model and storage interface for a
// simple checklist service.  A Todo is a titled list owned by its
// creator; each Todo holds zero or more Items, and every Item belongs
// to exactly one Todo.
//
// Storage is abstracted behind the Store interface.  There are several
// implementations: the "memory" package keeps everything in-process,
// the "postgres" package persists to a PostgreSQL database, "cache"
// wraps any other store with an LRU of recently used records, and
// "restclient" talks to a remote "restserver" over HTTP.  All of them
// share the validation rules in this package, and all of them pass the
// generic tests in "todotest".
//
// Records are plain values.  Changing a Todo or Item returned from a
// Store has no effect on the stored copy; use the Update calls with a
// params object instead.
package todo

import (
	"time"
)

// Todo is a single checklist.
type Todo struct {
	// ID is the system-assigned identifier.  It is unique across
	// all todos in a store and never reused.
	ID int64 `json:"id" yaml:"id"`

	// Title is a human-readable title.  It must not be blank.
	Title string `json:"title" yaml:"title"`

	// CreatedBy names whoever created the todo.  It must not be
	// blank.
	CreatedBy string `json:"created_by" yaml:"created_by"`

	// CreatedAt is the time the todo was first stored.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is the time the todo was most recently changed.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Item is a single entry in a Todo's checklist.
type Item struct {
	// ID is the system-assigned identifier.  It is unique across
	// all items in a store, not just within its todo.
	ID int64 `json:"id" yaml:"id"`

	// Name describes the item.  It must not be blank.
	Name string `json:"name" yaml:"name"`

	// Done is true if the item has been checked off.
	Done bool `json:"done" yaml:"done"`

	// TodoID is the ID of the owning Todo.
	TodoID int64 `json:"todo_id" yaml:"todo_id"`

	// CreatedAt is the time the item was first stored.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is the time the item was most recently changed.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Store is the persistence interface for todos and their items.
// Implementations must be safe to call from multiple goroutines.
//
// Lookups of a missing todo return ErrNoSuchTodo; lookups of a missing
// item return ErrNoSuchItem, or ErrNoSuchTodo if its parent is the
// thing that is missing.  Create and update calls that would leave a
// record invalid return ValidationErrors and change nothing.
type Store interface {
	// Todos returns every todo in ascending ID order.
	Todos() ([]Todo, error)

	// Todo retrieves a single todo by ID.
	Todo(id int64) (Todo, error)

	// CreateTodo stores a new todo built from params.
	CreateTodo(params TodoParams) (Todo, error)

	// UpdateTodo changes the fields of an existing todo that are
	// set in params, and returns the updated record.
	UpdateTodo(id int64, params TodoParams) (Todo, error)

	// DestroyTodo deletes a todo along with all of its items.
	DestroyTodo(id int64) error

	// Items returns every item belonging to a todo in ascending
	// ID order.
	Items(todoID int64) ([]Item, error)

	// Item retrieves a single item, scoped to its todo.  An item
	// that exists but belongs to a different todo is not found.
	Item(todoID, id int64) (Item, error)

	// CreateItem stores a new item in the todo todoID.  Any TodoID
	// in params is ignored; the item always belongs to todoID.
	CreateItem(todoID int64, params ItemParams) (Item, error)

	// UpdateItem changes the fields of an existing item that are
	// set in params.  If params.TodoID is set, the item moves to
	// that todo, which must exist.
	UpdateItem(todoID, id int64, params ItemParams) (Item, error)

	// DestroyItem deletes a single item.
	DestroyItem(todoID, id int64) error
}

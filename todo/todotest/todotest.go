// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package todotest provides generic functional tests for the todo.Store
// interface.  A typical backend test module needs to wrap Suite to
// create its backend:
//
//     package mybackend
//
//     import (
//             "testing"
//             "github.com/diffeo/go-todo/todo/todotest"
//             "github.com/stretchr/testify/suite"
//     )
//
//     // Suite is the per-backend generic test suite.
//     type Suite struct{
//             todotest.Suite
//     }
//
//     // SetupTest creates a fresh backend for each test.
//     func (s *Suite) SetupTest() {
//             s.Suite.SetupTest()
//             s.Store = NewWithClock(s.Clock)
//     }
//
//     // TestStore runs the todo.Store generic tests.
//     func TestStore(t *testing.T) {
//             suite.Run(t, &Suite{})
//     }
//
// Every test expects to start with an empty store.
package todotest

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-todo/todo"
	"github.com/stretchr/testify/suite"
)

// Epoch is the time the mock clock is set to at the start of each
// test.
var Epoch = time.Date(2017, 3, 14, 15, 9, 26, 0, time.UTC)

// Suite is the generic todo.Store backend test suite.
type Suite struct {
	suite.Suite

	// Clock contains the alternate time source to be used in
	// tests.  It is reset to a mock clock at Epoch before every
	// test.
	Clock *clock.Mock

	// Store contains the backend under test.  It is set by
	// importing packages, typically in SetupTest.
	Store todo.Store
}

// SetupTest resets the mock clock.
func (s *Suite) SetupTest() {
	s.Clock = clock.NewMock()
	s.Clock.Add(Epoch.Sub(s.Clock.Now()))
}

// CreateTodo creates a todo with the given fields, failing the test
// immediately if this fails.
func (s *Suite) CreateTodo(title, createdBy string) todo.Todo {
	record, err := s.Store.CreateTodo(todo.TodoParams{
		Title:     todo.String(title),
		CreatedBy: todo.String(createdBy),
	})
	s.Require().NoError(err)
	return record
}

// CreateItem creates an item in a todo, failing the test immediately
// if this fails.
func (s *Suite) CreateItem(todoID int64, name string) todo.Item {
	item, err := s.Store.CreateItem(todoID, todo.ItemParams{
		Name: todo.String(name),
	})
	s.Require().NoError(err)
	return item
}

// TodoIDs returns the IDs of all of the todos in the store.
func (s *Suite) TodoIDs() []int64 {
	todos, err := s.Store.Todos()
	s.Require().NoError(err)
	ids := []int64{}
	for _, record := range todos {
		ids = append(ids, record.ID)
	}
	return ids
}

// ItemIDs returns the IDs of all of the items in a todo.
func (s *Suite) ItemIDs(todoID int64) []int64 {
	items, err := s.Store.Items(todoID)
	s.Require().NoError(err)
	ids := []int64{}
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

// SameTime checks that two times are the same instant, regardless of
// their time zones.
func (s *Suite) SameTime(expected, actual time.Time, msgAndArgs ...interface{}) bool {
	return s.True(expected.Equal(actual), msgAndArgs...)
}

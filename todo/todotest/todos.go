// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todotest

import (
	"time"

	"github.com/diffeo/go-todo/todo"
)

// TestTodoLifecycle walks a single todo through its whole lifetime.
func (s *Suite) TestTodoLifecycle() {
	s.Empty(s.TodoIDs())

	created := s.CreateTodo("learn elm", "Foo")
	s.NotZero(created.ID)
	s.Equal("learn elm", created.Title)
	s.Equal("Foo", created.CreatedBy)
	s.Equal([]int64{created.ID}, s.TodoIDs())

	fetched, err := s.Store.Todo(created.ID)
	if s.NoError(err) {
		s.Equal(created.ID, fetched.ID)
		s.Equal("learn elm", fetched.Title)
		s.Equal("Foo", fetched.CreatedBy)
	}

	updated, err := s.Store.UpdateTodo(created.ID, todo.TodoParams{
		CreatedBy: todo.String("Bar"),
	})
	if s.NoError(err) {
		s.Equal(created.ID, updated.ID)
		s.Equal("learn elm", updated.Title)
		s.Equal("Bar", updated.CreatedBy)
	}

	fetched, err = s.Store.Todo(created.ID)
	if s.NoError(err) {
		s.Equal("Bar", fetched.CreatedBy)
	}

	err = s.Store.DestroyTodo(created.ID)
	s.NoError(err)
	s.Empty(s.TodoIDs())

	_, err = s.Store.Todo(created.ID)
	s.Equal(todo.ErrNoSuchTodo{ID: created.ID}, err)
}

// TestTodoNotFound checks every todo operation against a missing ID.
func (s *Suite) TestTodoNotFound() {
	_, err := s.Store.Todo(100)
	s.Equal(todo.ErrNoSuchTodo{ID: 100}, err)
	if s.Error(err) {
		s.Equal("Couldn't find Todo with 'id'=100", err.Error())
	}

	_, err = s.Store.UpdateTodo(100, todo.TodoParams{Title: todo.String("x")})
	s.Equal(todo.ErrNoSuchTodo{ID: 100}, err)

	err = s.Store.DestroyTodo(100)
	s.Equal(todo.ErrNoSuchTodo{ID: 100}, err)
}

// TestCreateTodoInvalid checks that a todo without its required
// fields is rejected and not stored.
func (s *Suite) TestCreateTodoInvalid() {
	s.CreateTodo("learn elm", "Foo")
	before := s.TodoIDs()

	_, err := s.Store.CreateTodo(todo.TodoParams{})
	s.Equal(todo.ValidationErrors{
		"title":      []string{todo.MsgBlank},
		"created_by": []string{todo.MsgBlank},
	}, err)

	_, err = s.Store.CreateTodo(todo.TodoParams{
		Title:     todo.String("  "),
		CreatedBy: todo.String("Foo"),
	})
	s.Equal(todo.ValidationErrors{
		"title": []string{todo.MsgBlank},
	}, err)

	s.Equal(before, s.TodoIDs())
}

// TestUpdateTodoInvalid checks that an update that would blank out a
// required field is rejected and changes nothing.
func (s *Suite) TestUpdateTodoInvalid() {
	created := s.CreateTodo("learn elm", "Foo")

	_, err := s.Store.UpdateTodo(created.ID, todo.TodoParams{
		Title:     todo.String(""),
		CreatedBy: todo.String("Bar"),
	})
	s.Equal(todo.ValidationErrors{
		"title": []string{todo.MsgBlank},
	}, err)

	fetched, err := s.Store.Todo(created.ID)
	if s.NoError(err) {
		s.Equal("learn elm", fetched.Title)
		s.Equal("Foo", fetched.CreatedBy)
	}
}

// TestUpdateTodoEmpty checks that an update with no fields set
// succeeds and changes nothing.
func (s *Suite) TestUpdateTodoEmpty() {
	created := s.CreateTodo("learn elm", "Foo")
	updated, err := s.Store.UpdateTodo(created.ID, todo.TodoParams{})
	if s.NoError(err) {
		s.Equal("learn elm", updated.Title)
		s.Equal("Foo", updated.CreatedBy)
	}
}

// TestTodoOrder checks that todos list in creation order, and that
// IDs are not reused.
func (s *Suite) TestTodoOrder() {
	first := s.CreateTodo("first", "Foo")
	second := s.CreateTodo("second", "Foo")
	third := s.CreateTodo("third", "Foo")
	s.True(first.ID < second.ID)
	s.True(second.ID < third.ID)
	s.Equal([]int64{first.ID, second.ID, third.ID}, s.TodoIDs())

	s.NoError(s.Store.DestroyTodo(second.ID))
	s.Equal([]int64{first.ID, third.ID}, s.TodoIDs())

	fourth := s.CreateTodo("fourth", "Foo")
	s.True(third.ID < fourth.ID)
	s.Equal([]int64{first.ID, third.ID, fourth.ID}, s.TodoIDs())
}

// TestTodoTimestamps checks that the creation and update times follow
// the clock.
func (s *Suite) TestTodoTimestamps() {
	created := s.CreateTodo("learn elm", "Foo")
	s.SameTime(Epoch, created.CreatedAt, "created_at %v", created.CreatedAt)
	s.SameTime(Epoch, created.UpdatedAt, "updated_at %v", created.UpdatedAt)

	s.Clock.Add(time.Hour)
	updated, err := s.Store.UpdateTodo(created.ID, todo.TodoParams{
		Title: todo.String("learn go"),
	})
	if s.NoError(err) {
		s.SameTime(Epoch, updated.CreatedAt, "created_at %v", updated.CreatedAt)
		s.SameTime(Epoch.Add(time.Hour), updated.UpdatedAt, "updated_at %v", updated.UpdatedAt)
	}

	fetched, err := s.Store.Todo(created.ID)
	if s.NoError(err) {
		s.SameTime(Epoch.Add(time.Hour), fetched.UpdatedAt, "updated_at %v", fetched.UpdatedAt)
	}
}

// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todotest

import (
	"fmt"
	"time"

	"github.com/diffeo/go-todo/todo"
)

// TestItemLifecycle walks a single item through its whole lifetime.
func (s *Suite) TestItemLifecycle() {
	parent := s.CreateTodo("groceries", "Foo")
	s.Empty(s.ItemIDs(parent.ID))

	created := s.CreateItem(parent.ID, "milk")
	s.NotZero(created.ID)
	s.Equal("milk", created.Name)
	s.False(created.Done)
	s.Equal(parent.ID, created.TodoID)
	s.Equal([]int64{created.ID}, s.ItemIDs(parent.ID))

	fetched, err := s.Store.Item(parent.ID, created.ID)
	if s.NoError(err) {
		s.Equal(created.ID, fetched.ID)
		s.Equal("milk", fetched.Name)
		s.Equal(parent.ID, fetched.TodoID)
	}

	updated, err := s.Store.UpdateItem(parent.ID, created.ID, todo.ItemParams{
		Done: todo.Bool(true),
	})
	if s.NoError(err) {
		s.Equal("milk", updated.Name)
		s.True(updated.Done)
	}

	fetched, err = s.Store.Item(parent.ID, created.ID)
	if s.NoError(err) {
		s.True(fetched.Done)
	}

	err = s.Store.DestroyItem(parent.ID, created.ID)
	s.NoError(err)
	s.Empty(s.ItemIDs(parent.ID))

	_, err = s.Store.Item(parent.ID, created.ID)
	s.Equal(todo.ErrNoSuchItem{TodoID: parent.ID, ID: created.ID}, err)
}

// TestItemMissingTodo checks that every item operation reports a
// missing parent todo.
func (s *Suite) TestItemMissingTodo() {
	missing := todo.ErrNoSuchTodo{ID: 999}

	_, err := s.Store.Items(999)
	s.Equal(missing, err)

	_, err = s.Store.Item(999, 1)
	s.Equal(missing, err)

	_, err = s.Store.CreateItem(999, todo.ItemParams{Name: todo.String("milk")})
	s.Equal(missing, err)

	_, err = s.Store.UpdateItem(999, 1, todo.ItemParams{Done: todo.Bool(true)})
	s.Equal(missing, err)

	err = s.Store.DestroyItem(999, 1)
	s.Equal(missing, err)
}

// TestItemNotFound checks operations on a missing item in an existing
// todo.
func (s *Suite) TestItemNotFound() {
	parent := s.CreateTodo("groceries", "Foo")
	missing := todo.ErrNoSuchItem{TodoID: parent.ID, ID: 999}

	_, err := s.Store.Item(parent.ID, 999)
	s.Equal(missing, err)
	s.EqualError(err, fmt.Sprintf("Couldn't find Item with 'id'=999 and 'todo_id'=%d", parent.ID))

	_, err = s.Store.UpdateItem(parent.ID, 999, todo.ItemParams{Done: todo.Bool(true)})
	s.Equal(missing, err)

	err = s.Store.DestroyItem(parent.ID, 999)
	s.Equal(missing, err)
}

// TestItemScopedToTodo checks that an item can only be reached through
// its own todo.
func (s *Suite) TestItemScopedToTodo() {
	groceries := s.CreateTodo("groceries", "Foo")
	chores := s.CreateTodo("chores", "Foo")
	milk := s.CreateItem(groceries.ID, "milk")
	dishes := s.CreateItem(chores.ID, "dishes")

	s.Equal([]int64{milk.ID}, s.ItemIDs(groceries.ID))
	s.Equal([]int64{dishes.ID}, s.ItemIDs(chores.ID))

	_, err := s.Store.Item(chores.ID, milk.ID)
	s.Equal(todo.ErrNoSuchItem{TodoID: chores.ID, ID: milk.ID}, err)

	_, err = s.Store.UpdateItem(chores.ID, milk.ID, todo.ItemParams{Done: todo.Bool(true)})
	s.Equal(todo.ErrNoSuchItem{TodoID: chores.ID, ID: milk.ID}, err)

	err = s.Store.DestroyItem(chores.ID, milk.ID)
	s.Equal(todo.ErrNoSuchItem{TodoID: chores.ID, ID: milk.ID}, err)

	fetched, err := s.Store.Item(groceries.ID, milk.ID)
	if s.NoError(err) {
		s.False(fetched.Done)
	}
}

// TestCreateItemInvalid checks that an item without a name is rejected.
func (s *Suite) TestCreateItemInvalid() {
	parent := s.CreateTodo("groceries", "Foo")

	_, err := s.Store.CreateItem(parent.ID, todo.ItemParams{Done: todo.Bool(true)})
	s.Equal(todo.ValidationErrors{
		"name": []string{todo.MsgBlank},
	}, err)

	_, err = s.Store.CreateItem(parent.ID, todo.ItemParams{})
	s.Equal(todo.ValidationErrors{
		"name": []string{todo.MsgBlank},
	}, err)
	s.Empty(s.ItemIDs(parent.ID))
}

// TestCreateItemParent checks that a new item always belongs to the
// todo it was created under, whatever its parameters say.
func (s *Suite) TestCreateItemParent() {
	groceries := s.CreateTodo("groceries", "Foo")
	chores := s.CreateTodo("chores", "Foo")

	item, err := s.Store.CreateItem(groceries.ID, todo.ItemParams{
		Name:   todo.String("milk"),
		Done:   todo.Bool(true),
		TodoID: todo.ID(chores.ID),
	})
	if s.NoError(err) {
		s.Equal(groceries.ID, item.TodoID)
		s.True(item.Done)
	}
	s.Equal([]int64{item.ID}, s.ItemIDs(groceries.ID))
	s.Empty(s.ItemIDs(chores.ID))
}

// TestUpdateItemInvalid checks that blanking an item's name is
// rejected.
func (s *Suite) TestUpdateItemInvalid() {
	parent := s.CreateTodo("groceries", "Foo")
	item := s.CreateItem(parent.ID, "milk")

	_, err := s.Store.UpdateItem(parent.ID, item.ID, todo.ItemParams{
		Name: todo.String(""),
		Done: todo.Bool(true),
	})
	s.Equal(todo.ValidationErrors{
		"name": []string{todo.MsgBlank},
	}, err)

	fetched, err := s.Store.Item(parent.ID, item.ID)
	if s.NoError(err) {
		s.Equal("milk", fetched.Name)
		s.False(fetched.Done)
	}
}

// TestMoveItem checks that changing an item's todo_id moves it to a
// different todo.
func (s *Suite) TestMoveItem() {
	groceries := s.CreateTodo("groceries", "Foo")
	chores := s.CreateTodo("chores", "Foo")
	item := s.CreateItem(groceries.ID, "dishes")

	moved, err := s.Store.UpdateItem(groceries.ID, item.ID, todo.ItemParams{
		TodoID: todo.ID(chores.ID),
	})
	if s.NoError(err) {
		s.Equal(chores.ID, moved.TodoID)
	}
	s.Empty(s.ItemIDs(groceries.ID))
	s.Equal([]int64{item.ID}, s.ItemIDs(chores.ID))

	_, err = s.Store.Item(groceries.ID, item.ID)
	s.Equal(todo.ErrNoSuchItem{TodoID: groceries.ID, ID: item.ID}, err)

	fetched, err := s.Store.Item(chores.ID, item.ID)
	if s.NoError(err) {
		s.Equal(chores.ID, fetched.TodoID)
	}
}

// TestMoveItemMissingTodo checks that an item cannot be moved to a
// todo that does not exist.
func (s *Suite) TestMoveItemMissingTodo() {
	parent := s.CreateTodo("groceries", "Foo")
	item := s.CreateItem(parent.ID, "milk")

	_, err := s.Store.UpdateItem(parent.ID, item.ID, todo.ItemParams{
		TodoID: todo.ID(parent.ID + 1000),
	})
	s.Equal(todo.ValidationErrors{
		"todo": []string{todo.MsgNotExist},
	}, err)
	s.Equal([]int64{item.ID}, s.ItemIDs(parent.ID))
}

// TestDestroyTodoDestroysItems checks that destroying a todo takes its
// items with it, and leaves other todos' items alone.
func (s *Suite) TestDestroyTodoDestroysItems() {
	groceries := s.CreateTodo("groceries", "Foo")
	chores := s.CreateTodo("chores", "Foo")
	milk := s.CreateItem(groceries.ID, "milk")
	eggs := s.CreateItem(groceries.ID, "eggs")
	dishes := s.CreateItem(chores.ID, "dishes")
	s.Equal([]int64{milk.ID, eggs.ID}, s.ItemIDs(groceries.ID))

	s.NoError(s.Store.DestroyTodo(groceries.ID))

	_, err := s.Store.Items(groceries.ID)
	s.Equal(todo.ErrNoSuchTodo{ID: groceries.ID}, err)
	_, err = s.Store.Item(groceries.ID, milk.ID)
	s.Equal(todo.ErrNoSuchTodo{ID: groceries.ID}, err)

	s.Equal([]int64{dishes.ID}, s.ItemIDs(chores.ID))

	// Looking a destroyed item up under another todo fails too
	_, err = s.Store.Item(chores.ID, milk.ID)
	s.Equal(todo.ErrNoSuchItem{TodoID: chores.ID, ID: milk.ID}, err)
}

// TestItemTimestamps checks that item creation and update times follow
// the clock.
func (s *Suite) TestItemTimestamps() {
	parent := s.CreateTodo("groceries", "Foo")
	item := s.CreateItem(parent.ID, "milk")
	s.SameTime(Epoch, item.CreatedAt, "created_at %v", item.CreatedAt)
	s.SameTime(Epoch, item.UpdatedAt, "updated_at %v", item.UpdatedAt)

	s.Clock.Add(time.Minute)
	updated, err := s.Store.UpdateItem(parent.ID, item.ID, todo.ItemParams{
		Done: todo.Bool(true),
	})
	if s.NoError(err) {
		s.SameTime(Epoch, updated.CreatedAt, "created_at %v", updated.CreatedAt)
		s.SameTime(Epoch.Add(time.Minute), updated.UpdatedAt, "updated_at %v", updated.UpdatedAt)
	}
}

// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/diffeo/go-todo/cache"
	"github.com/diffeo/go-todo/memory"
	"github.com/diffeo/go-todo/todo"
	"github.com/stretchr/testify/assert"
)

type CacheAssertions struct {
	*assert.Assertions
	Backend todo.Store
	Store   todo.Store
}

func NewCacheAssertions(t assert.TestingT) *CacheAssertions {
	backend := memory.New()
	return &CacheAssertions{
		assert.New(t),
		backend,
		cache.New(backend),
	}
}

// Todo creates a todo through the cache; if it fails, fail the test.
func (a *CacheAssertions) Todo(title string) todo.Todo {
	record, err := a.Store.CreateTodo(todo.TodoParams{
		Title:     todo.String(title),
		CreatedBy: todo.String("Foo"),
	})
	if !a.NoError(err, "error creating todo") {
		a.FailNow("cannot create todo")
	}
	return record
}

// Item creates an item through the cache; if it fails, fail the test.
func (a *CacheAssertions) Item(todoID int64, name string) todo.Item {
	item, err := a.Store.CreateItem(todoID, todo.ItemParams{
		Name: todo.String(name),
	})
	if !a.NoError(err, "error creating item") {
		a.FailNow("cannot create item")
	}
	return item
}

// TestCachedTodo shows that a single-record lookup is served from the
// cache, even if the backend changed underneath it.
func TestCachedTodo(t *testing.T) {
	a := NewCacheAssertions(t)
	record := a.Todo("learn elm")

	_, err := a.Backend.UpdateTodo(record.ID, todo.TodoParams{
		Title: todo.String("learn go"),
	})
	a.NoError(err)

	cached, err := a.Store.Todo(record.ID)
	if a.NoError(err) {
		a.Equal("learn elm", cached.Title)
	}

	// Updating through the cache forgets the stale copy
	_, err = a.Store.UpdateTodo(record.ID, todo.TodoParams{
		CreatedBy: todo.String("Bar"),
	})
	a.NoError(err)
	cached, err = a.Store.Todo(record.ID)
	if a.NoError(err) {
		a.Equal("learn go", cached.Title)
		a.Equal("Bar", cached.CreatedBy)
	}
}

// TestConcurrentUpdates checks that after a burst of concurrent
// updates the cache agrees with the backend on the final record.
func TestConcurrentUpdates(t *testing.T) {
	a := NewCacheAssertions(t)
	record := a.Todo("learn elm")
	item := a.Item(record.ID, "read the guide")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("version %d", i)
			_, err := a.Store.UpdateTodo(record.ID, todo.TodoParams{
				Title: todo.String(name),
			})
			a.NoError(err)
			_, err = a.Store.UpdateItem(record.ID, item.ID, todo.ItemParams{
				Name: todo.String(name),
			})
			a.NoError(err)
		}(i)
	}
	wg.Wait()

	expected, err := a.Backend.Todo(record.ID)
	a.NoError(err)
	cached, err := a.Store.Todo(record.ID)
	if a.NoError(err) {
		a.Equal(expected.Title, cached.Title)
	}

	expectedItem, err := a.Backend.Item(record.ID, item.ID)
	a.NoError(err)
	cachedItem, err := a.Store.Item(record.ID, item.ID)
	if a.NoError(err) {
		a.Equal(expectedItem.Name, cachedItem.Name)
	}
}

// TestMissNotCached checks that a failed lookup is not remembered.
func TestMissNotCached(t *testing.T) {
	a := NewCacheAssertions(t)
	_, err := a.Store.Todo(1)
	a.Equal(todo.ErrNoSuchTodo{ID: 1}, err)

	record := a.Todo("learn elm")
	a.Equal(int64(1), record.ID)
	fetched, err := a.Store.Todo(1)
	if a.NoError(err) {
		a.Equal("learn elm", fetched.Title)
	}
}

// TestDestroyTodoForgetsItems checks that cached items go away with
// their todo.
func TestDestroyTodoForgetsItems(t *testing.T) {
	a := NewCacheAssertions(t)
	record := a.Todo("groceries")
	item := a.Item(record.ID, "milk")

	_, err := a.Store.Item(record.ID, item.ID)
	a.NoError(err)

	a.NoError(a.Store.DestroyTodo(record.ID))
	_, err = a.Store.Item(record.ID, item.ID)
	a.Equal(todo.ErrNoSuchTodo{ID: record.ID}, err)
}

// TestBackendDeleteNoticed checks that an error from the backend drops
// the stale cached copy.
func TestBackendDeleteNoticed(t *testing.T) {
	a := NewCacheAssertions(t)
	record := a.Todo("groceries")
	item := a.Item(record.ID, "milk")

	a.NoError(a.Backend.DestroyItem(record.ID, item.ID))
	_, err := a.Store.UpdateItem(record.ID, item.ID, todo.ItemParams{
		Done: todo.Bool(true),
	})
	a.Equal(todo.ErrNoSuchItem{TodoID: record.ID, ID: item.ID}, err)

	_, err = a.Store.Item(record.ID, item.ID)
	a.Equal(todo.ErrNoSuchItem{TodoID: record.ID, ID: item.ID}, err)
}

// TestZeroSizeUnwrapped checks that a non-positive size disables
// caching entirely.
func TestZeroSizeUnwrapped(t *testing.T) {
	backend := memory.New()
	assert.Equal(t, backend, cache.NewWithSize(backend, 0))
}

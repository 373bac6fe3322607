// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory_test

import (
	"sync"
	"testing"

	"github.com/diffeo/go-todo/memory"
	"github.com/diffeo/go-todo/todo"
	"github.com/diffeo/go-todo/todo/todotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic todo.Store tests against the memory backend.
type Suite struct {
	todotest.Suite
}

// SetupTest creates a fresh backend for every test.
func (s *Suite) SetupTest() {
	s.Suite.SetupTest()
	s.Store = memory.NewWithClock(s.Clock)
}

// TestStore runs the generic todo.Store tests.
func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}

// TestConcurrentCreate checks that IDs stay unique when many goroutines
// create records at once.
func TestConcurrentCreate(t *testing.T) {
	store := memory.New()
	const count = 50
	ids := make(chan int64, count)
	wg := sync.WaitGroup{}
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func() {
			defer wg.Done()
			record, err := store.CreateTodo(todo.TodoParams{
				Title:     todo.String("title"),
				CreatedBy: todo.String("creator"),
			})
			if assert.NoError(t, err) {
				ids <- record.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %v", id)
		seen[id] = true
	}
	assert.Len(t, seen, count)

	todos, err := store.Todos()
	if assert.NoError(t, err) {
		assert.Len(t, todos, count)
	}
}

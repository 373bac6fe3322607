// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// todo.Store.  There is no persistence, nor is there any automatic
// sharing.  The entire store is behind a single global lock to
// protect against concurrent updates.
//
// This is mostly intended as a simple reference implementation that
// can be used for testing, including in-process testing of
// higher-level components.  It is tuned for correctness, not
// performance or scalability.
package memory

import (
	"sort"
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-todo/todo"
)

// New creates a new todo.Store that operates purely in memory.
func New() todo.Store {
	return NewWithClock(clock.New())
}

// NewWithClock creates a new in-memory todo.Store using an explicit
// time source for record timestamps.  Most application code should
// call New(); this is intended for tests that need a mock clock.
func NewWithClock(clk clock.Clock) todo.Store {
	return &memStore{
		clock: clk,
		todos: make(map[int64]*todo.Todo),
		items: make(map[int64]*todo.Item),
	}
}

type memStore struct {
	sem        sync.Mutex
	clock      clock.Clock
	todos      map[int64]*todo.Todo
	items      map[int64]*todo.Item
	lastTodoID int64
	lastItemID int64
}

// do runs f under the global lock.
func (s *memStore) do(f func() error) error {
	s.sem.Lock()
	defer s.sem.Unlock()
	return f()
}

// findTodo looks up a todo.  Call it with the lock held.
func (s *memStore) findTodo(id int64) (*todo.Todo, error) {
	record := s.todos[id]
	if record == nil {
		return nil, todo.ErrNoSuchTodo{ID: id}
	}
	return record, nil
}

// findItem looks up an item scoped to its todo.  Call it with the lock
// held.
func (s *memStore) findItem(todoID, id int64) (*todo.Item, error) {
	if _, err := s.findTodo(todoID); err != nil {
		return nil, err
	}
	item := s.items[id]
	if item == nil || item.TodoID != todoID {
		return nil, todo.ErrNoSuchItem{TodoID: todoID, ID: id}
	}
	return item, nil
}

// todo.Store interface:

func (s *memStore) Todos() (result []todo.Todo, err error) {
	err = s.do(func() error {
		result = make([]todo.Todo, 0, len(s.todos))
		for _, record := range s.todos {
			result = append(result, *record)
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return
}

func (s *memStore) Todo(id int64) (result todo.Todo, err error) {
	err = s.do(func() error {
		record, err := s.findTodo(id)
		if err == nil {
			result = *record
		}
		return err
	})
	return
}

func (s *memStore) CreateTodo(params todo.TodoParams) (result todo.Todo, err error) {
	err = s.do(func() error {
		record := todo.Todo{}
		params.Apply(&record)
		if err := record.Validate(); err != nil {
			return err
		}
		s.lastTodoID++
		record.ID = s.lastTodoID
		record.CreatedAt = s.clock.Now()
		record.UpdatedAt = record.CreatedAt
		s.todos[record.ID] = &record
		result = record
		return nil
	})
	return
}

func (s *memStore) UpdateTodo(id int64, params todo.TodoParams) (result todo.Todo, err error) {
	err = s.do(func() error {
		stored, err := s.findTodo(id)
		if err != nil {
			return err
		}
		record := *stored
		params.Apply(&record)
		if err := record.Validate(); err != nil {
			return err
		}
		record.UpdatedAt = s.clock.Now()
		*stored = record
		result = record
		return nil
	})
	return
}

func (s *memStore) DestroyTodo(id int64) error {
	return s.do(func() error {
		if _, err := s.findTodo(id); err != nil {
			return err
		}
		delete(s.todos, id)
		for itemID, item := range s.items {
			if item.TodoID == id {
				delete(s.items, itemID)
			}
		}
		return nil
	})
}

func (s *memStore) Items(todoID int64) (result []todo.Item, err error) {
	err = s.do(func() error {
		if _, err := s.findTodo(todoID); err != nil {
			return err
		}
		result = []todo.Item{}
		for _, item := range s.items {
			if item.TodoID == todoID {
				result = append(result, *item)
			}
		}
		return nil
	})
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return
}

func (s *memStore) Item(todoID, id int64) (result todo.Item, err error) {
	err = s.do(func() error {
		item, err := s.findItem(todoID, id)
		if err == nil {
			result = *item
		}
		return err
	})
	return
}

func (s *memStore) CreateItem(todoID int64, params todo.ItemParams) (result todo.Item, err error) {
	err = s.do(func() error {
		if _, err := s.findTodo(todoID); err != nil {
			return err
		}
		item := todo.Item{}
		params.Apply(&item)
		item.TodoID = todoID
		if err := item.Validate(true); err != nil {
			return err
		}
		s.lastItemID++
		item.ID = s.lastItemID
		item.CreatedAt = s.clock.Now()
		item.UpdatedAt = item.CreatedAt
		s.items[item.ID] = &item
		result = item
		return nil
	})
	return
}

func (s *memStore) UpdateItem(todoID, id int64, params todo.ItemParams) (result todo.Item, err error) {
	err = s.do(func() error {
		stored, err := s.findItem(todoID, id)
		if err != nil {
			return err
		}
		item := *stored
		params.Apply(&item)
		_, present := s.todos[item.TodoID]
		if err := item.Validate(present); err != nil {
			return err
		}
		item.UpdatedAt = s.clock.Now()
		*stored = item
		result = item
		return nil
	})
	return
}

func (s *memStore) DestroyItem(todoID, id int64) error {
	return s.do(func() error {
		if _, err := s.findItem(todoID, id); err != nil {
			return err
		}
		delete(s.items, id)
		return nil
	})
}

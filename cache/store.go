// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package cache provides ID-based caching of todos and items.  The
// cache wraps some other todo.Store backend.  Calls that fetch a single
// record by ID will return a cached copy if one is available; calls
// that change records pass through to the backend; creates cache the
// new record and updates or deletes drop the cached copy.
//
// Caveats
//
// Calls that return lists (Todos and Items) always go to the backend
// and do not populate the cache.
//
// The cache only sees changes made through itself.  If something else
// changes the backing store, for instance another process sharing a
// PostgreSQL database, single-record lookups here can return stale
// data until the entry is evicted.  Only share a cached store with
// processes that go through the same cache.
package cache

import (
	"fmt"

	"github.com/diffeo/go-todo/todo"
)

// DefaultSize is the number of records New() keeps.
const DefaultSize = 1024

// New wraps a store with a cache of DefaultSize records.
func New(store todo.Store) todo.Store {
	return NewWithSize(store, DefaultSize)
}

// NewWithSize wraps a store with a cache of an explicit size.  If size
// is not positive, store is returned unwrapped.
func NewWithSize(store todo.Store, size int) todo.Store {
	if size <= 0 {
		return store
	}
	return &cacheStore{
		store: store,
		lru:   newLRU(size),
	}
}

type cacheStore struct {
	store todo.Store
	lru   *lru
}

type todoEntry struct {
	todo.Todo
}

func todoKey(id int64) string {
	return fmt.Sprintf("todo/%d", id)
}

func (e todoEntry) Key() string {
	return todoKey(e.ID)
}

type itemEntry struct {
	todo.Item
}

func itemKey(todoID, id int64) string {
	return fmt.Sprintf("item/%d/%d", todoID, id)
}

func (e itemEntry) Key() string {
	return itemKey(e.TodoID, e.ID)
}

// forget drops cache entries for records the backend says are gone.
func (c *cacheStore) forget(err error) {
	switch et := err.(type) {
	case todo.ErrNoSuchTodo:
		c.forgetTodo(et.ID)
	case todo.ErrNoSuchItem:
		c.lru.Remove(itemKey(et.TodoID, et.ID))
	}
}

// forgetTodo drops a todo and all of its items.
func (c *cacheStore) forgetTodo(id int64) {
	c.lru.Remove(todoKey(id))
	c.lru.RemoveIf(func(entry keyed) bool {
		item, isItem := entry.(itemEntry)
		return isItem && item.TodoID == id
	})
}

func (c *cacheStore) Todos() ([]todo.Todo, error) {
	return c.store.Todos()
}

func (c *cacheStore) Todo(id int64) (todo.Todo, error) {
	entry, err := c.lru.Get(todoKey(id), func() (keyed, error) {
		record, err := c.store.Todo(id)
		if err != nil {
			return nil, err
		}
		return todoEntry{record}, nil
	})
	if err != nil {
		return todo.Todo{}, err
	}
	return entry.(todoEntry).Todo, nil
}

func (c *cacheStore) CreateTodo(params todo.TodoParams) (todo.Todo, error) {
	record, err := c.store.CreateTodo(params)
	if err == nil {
		c.lru.Put(todoEntry{record})
	}
	return record, err
}

// UpdateTodo drops the cached copy rather than storing the result.
// Concurrent updates can return out of order, and only the backend
// knows which one landed last.
func (c *cacheStore) UpdateTodo(id int64, params todo.TodoParams) (todo.Todo, error) {
	record, err := c.store.UpdateTodo(id, params)
	if err == nil {
		c.lru.Remove(todoKey(id))
	} else {
		c.forget(err)
	}
	return record, err
}

func (c *cacheStore) DestroyTodo(id int64) error {
	err := c.store.DestroyTodo(id)
	c.forgetTodo(id)
	return err
}

func (c *cacheStore) Items(todoID int64) ([]todo.Item, error) {
	items, err := c.store.Items(todoID)
	c.forget(err)
	return items, err
}

func (c *cacheStore) Item(todoID, id int64) (todo.Item, error) {
	entry, err := c.lru.Get(itemKey(todoID, id), func() (keyed, error) {
		item, err := c.store.Item(todoID, id)
		if err != nil {
			return nil, err
		}
		return itemEntry{item}, nil
	})
	if err != nil {
		return todo.Item{}, err
	}
	return entry.(itemEntry).Item, nil
}

func (c *cacheStore) CreateItem(todoID int64, params todo.ItemParams) (todo.Item, error) {
	item, err := c.store.CreateItem(todoID, params)
	if err == nil {
		c.lru.Put(itemEntry{item})
	} else {
		c.forget(err)
	}
	return item, err
}

func (c *cacheStore) UpdateItem(todoID, id int64, params todo.ItemParams) (todo.Item, error) {
	item, err := c.store.UpdateItem(todoID, id, params)
	if err == nil {
		// The item may have moved to a different todo
		c.lru.Remove(itemKey(todoID, id))
		c.lru.Remove(itemKey(item.TodoID, id))
	} else {
		c.forget(err)
	}
	return item, err
}

func (c *cacheStore) DestroyItem(todoID, id int64) error {
	err := c.store.DestroyItem(todoID, id)
	c.lru.Remove(itemKey(todoID, id))
	return err
}

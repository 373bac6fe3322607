// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"container/list"
	"sync"
)

// keyed describes cache entries.  Todos and items have distinct key
// spaces; see todoKey() and itemKey().
type keyed interface {
	Key() string
}

// lru is a least-recently-used cache with a fixed capacity.  The cache
// can be safely accessed from multiple goroutines.
type lru struct {
	size      int
	lock      sync.RWMutex
	evictList *list.List
	index     map[string]*list.Element
}

func newLRU(size int) *lru {
	return &lru{
		size:      size,
		evictList: list.New(),
		index:     make(map[string]*list.Element),
	}
}

// Get retrieves an entry from the cache.  If it is not present, calls
// the fetch function, and if that succeeds, saves the entry and
// returns it.  This returns an error only if the entry is not present
// and the fetch function returns an error.
//
// The fetch function runs under the write lock, so concurrent misses
// on the same key only reach the backend once.
func (lru *lru) Get(key string, fetch func() (keyed, error)) (keyed, error) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[key]; present {
		lru.evictList.MoveToBack(element)
		return element.Value.(keyed), nil
	}

	entry, err := fetch()
	if err != nil {
		return nil, err
	}
	lru.add(entry)
	return entry, nil
}

// Peek returns an entry if it is present, or nil if absent, without
// affecting its recency.  This runs under a reader lock.
func (lru *lru) Peek(key string) keyed {
	lru.lock.RLock()
	defer lru.lock.RUnlock()

	if element, present := lru.index[key]; present {
		return element.Value.(keyed)
	}
	return nil
}

// Len returns the number of entries in the cache.
func (lru *lru) Len() int {
	lru.lock.RLock()
	defer lru.lock.RUnlock()
	return len(lru.index)
}

// Put adds or replaces an entry, possibly evicting something.
func (lru *lru) Put(entry keyed) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	if element, present := lru.index[entry.Key()]; present {
		element.Value = entry
		lru.evictList.MoveToBack(element)
		return
	}
	lru.add(entry)
}

// Remove takes an entry out of the cache.  It does nothing if the key
// is not present.
func (lru *lru) Remove(key string) {
	lru.lock.Lock()
	defer lru.lock.Unlock()
	lru.remove(key)
}

// RemoveIf takes every entry for which match returns true out of the
// cache.  This is a linear scan.
func (lru *lru) RemoveIf(match func(keyed) bool) {
	lru.lock.Lock()
	defer lru.lock.Unlock()

	for key, element := range lru.index {
		if match(element.Value.(keyed)) {
			lru.remove(key)
		}
	}
}

// remove drops a single key.  Call it with the write lock held.
func (lru *lru) remove(key string) {
	if element, present := lru.index[key]; present {
		delete(lru.index, key)
		lru.evictList.Remove(element)
	}
}

// add inserts an entry known to be absent.  Call it with the write
// lock held.
func (lru *lru) add(entry keyed) {
	element := lru.evictList.PushBack(entry)
	lru.index[entry.Key()] = element

	for len(lru.index) > lru.size {
		head := lru.evictList.Front()
		lru.remove(head.Value.(keyed).Key())
	}
}

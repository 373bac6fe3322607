// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type aKey struct {
	IAm string
}

func (a aKey) Key() string {
	return a.IAm
}

func makeKey(key string) func() (keyed, error) {
	return func() (keyed, error) {
		return aKey{IAm: key}, nil
	}
}

func doNotMake() (keyed, error) {
	return nil, assert.AnError
}

type LRUAssertions struct {
	*assert.Assertions
	LRU *lru
}

func NewLRUAssertions(t assert.TestingT, size int) *LRUAssertions {
	return &LRUAssertions{
		assert.New(t),
		newLRU(size),
	}
}

// GetKey fetches an entry from the cache, adding it if absent.
func (a *LRUAssertions) GetKey(key string) {
	entry, err := a.LRU.Get(key, makeKey(key))
	if a.NoError(err) {
		a.Equal(key, entry.Key())
	}
}

// GetPresent fetches an entry that must already be in the cache.
func (a *LRUAssertions) GetPresent(key string) {
	entry, err := a.LRU.Get(key, doNotMake)
	if a.NoError(err) {
		a.Equal(key, entry.Key())
	}
}

// Has asserts that key is in the cache.
func (a *LRUAssertions) Has(key string) {
	entry := a.LRU.Peek(key)
	if a.NotNil(entry) {
		a.Equal(key, entry.Key())
	}
}

// DoesNotHave asserts that key is not in the cache.
func (a *LRUAssertions) DoesNotHave(key string) {
	a.Nil(a.LRU.Peek(key))
}

func TestLRUPut(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.LRU.Put(aKey{IAm: "todo/1"})
	a.Has("todo/1")
	a.DoesNotHave("todo/2")
	a.Equal(1, a.LRU.Len())
}

func TestLRUEviction(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.GetKey("todo/1")
	a.GetKey("todo/2")
	a.GetKey("todo/3")
	a.DoesNotHave("todo/1")
	a.Has("todo/2")
	a.Has("todo/3")
	a.Equal(2, a.LRU.Len())
}

func TestLRUFetchError(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.GetKey("todo/1")
	a.GetKey("todo/2")

	_, err := a.LRU.Get("todo/3", doNotMake)
	a.Equal(assert.AnError, err)
	a.Has("todo/1")
	a.Has("todo/2")
	a.DoesNotHave("todo/3")

	a.GetPresent("todo/1")
}

// TestLRUOrder checks that reading an entry protects it from eviction.
func TestLRUOrder(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.GetKey("todo/1")
	a.GetKey("todo/2")
	a.GetKey("todo/1")
	a.GetKey("todo/3")
	a.Has("todo/1")
	a.DoesNotHave("todo/2")
	a.Has("todo/3")
}

func TestLRURemove(t *testing.T) {
	a := NewLRUAssertions(t, 2)
	a.GetKey("todo/1")
	a.LRU.Remove("todo/1")
	a.DoesNotHave("todo/1")

	a.LRU.Remove("todo/9")
	a.Equal(0, a.LRU.Len())
}

func TestLRURemoveIf(t *testing.T) {
	a := NewLRUAssertions(t, 10)
	a.GetKey("todo/1")
	a.GetKey("item/1/1")
	a.GetKey("item/1/2")
	a.GetKey("item/2/3")
	a.LRU.RemoveIf(func(entry keyed) bool {
		return strings.HasPrefix(entry.Key(), "item/1/")
	})
	a.Has("todo/1")
	a.DoesNotHave("item/1/1")
	a.DoesNotHave("item/1/2")
	a.Has("item/2/3")

	// Eviction order is intact for what is left
	a.LRU.size = 2
	a.GetKey("todo/2")
	a.DoesNotHave("todo/1")
	a.Has("item/2/3")
	a.Has("todo/2")
}

// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package cache_test

import (
	"testing"

	"github.com/diffeo/go-todo/cache"
	"github.com/diffeo/go-todo/memory"
	"github.com/diffeo/go-todo/todo/todotest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic todo.Store tests with a caching backend.
type Suite struct {
	todotest.Suite
}

// SetupTest creates a fresh cached backend for every test.  The cache
// is kept small so that eviction happens during the tests.
func (s *Suite) SetupTest() {
	s.Suite.SetupTest()
	s.Store = cache.NewWithSize(memory.NewWithClock(s.Clock), 4)
}

// TestStore runs the generic todo.Store tests with a caching backend.
func TestStore(t *testing.T) {
	suite.Run(t, &Suite{})
}

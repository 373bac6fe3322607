// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres_test

import (
	"os"
	"testing"

	"github.com/diffeo/go-todo/postgres"
	"github.com/diffeo/go-todo/todo/todotest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic todo.Store tests against a PostgreSQL
// database.
//
// This uses an empty string as the connection string.  This means
// that, when you run "go test", you must set environment variables as
// described in
// http://www.postgresql.org/docs/current/static/libpq-envars.html.
// If neither PGHOST nor PGDATABASE is set the suite is skipped.
type Suite struct {
	todotest.Suite
}

// SetupTest drops and recreates the schema, then connects a fresh
// store.
func (s *Suite) SetupTest() {
	s.Suite.SetupTest()
	db, err := postgres.Open("")
	s.Require().NoError(err)
	defer db.Close()
	s.Require().NoError(postgres.Drop(db))

	s.Store, err = postgres.NewWithClock("", s.Clock)
	s.Require().NoError(err)
}

// TestStore runs the generic todo.Store tests.
func TestStore(t *testing.T) {
	if os.Getenv("PGHOST") == "" && os.Getenv("PGDATABASE") == "" {
		t.Skip("PGHOST and PGDATABASE not set; skipping PostgreSQL tests")
	}
	suite.Run(t, &Suite{})
}

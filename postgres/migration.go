// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal store flow, either at
// initial startup or from an external tool.

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "20170314-todo",
			Up: []string{
				`CREATE TABLE todo(
				   id BIGSERIAL PRIMARY KEY,
				   title TEXT NOT NULL,
				   created_by TEXT NOT NULL,
				   created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				   updated_at TIMESTAMP WITH TIME ZONE NOT NULL
				 )`,
			},
			Down: []string{
				`DROP TABLE todo`,
			},
		},
		{
			Id: "20170315-item",
			Up: []string{
				`CREATE TABLE item(
				   id BIGSERIAL PRIMARY KEY,
				   todo_id BIGINT NOT NULL,
				   name TEXT NOT NULL,
				   done BOOLEAN NOT NULL DEFAULT FALSE,
				   created_at TIMESTAMP WITH TIME ZONE NOT NULL,
				   updated_at TIMESTAMP WITH TIME ZONE NOT NULL,
				   CONSTRAINT item_todo_id_fkey FOREIGN KEY (todo_id)
				     REFERENCES todo(id) ON DELETE CASCADE
				 )`,
				`CREATE INDEX item_todo_id ON item(todo_id)`,
			},
			Down: []string{
				`DROP TABLE item`,
			},
		},
	},
}

// Upgrade upgrades a database to the latest database schema version.
func Upgrade(db *sql.DB) error {
	n, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	if err == nil && n > 0 {
		logrus.WithFields(logrus.Fields{
			"migrations": n,
		}).Info("Upgraded database schema")
	}
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}

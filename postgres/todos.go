// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/diffeo/go-todo/todo"
)

func (s *pgStore) Todos() ([]todo.Todo, error) {
	result := []todo.Todo{}
	query := buildSelect(todoColumns, []string{todoTable}, nil) +
		" ORDER BY " + todoID
	err := withTx(s.db, true, func(tx *sql.Tx) error {
		return queryAndScan(tx, query, nil, func(rows *sql.Rows) error {
			var record todo.Todo
			err := scanTodo(rows, &record)
			if err == nil {
				result = append(result, record)
			}
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// txTodo retrieves a todo within the context of an existing
// transaction.
func txTodo(tx *sql.Tx, id int64) (record todo.Todo, err error) {
	params := queryParams{}
	query := buildSelect(todoColumns, []string{todoTable}, []string{
		isTodo(&params, id),
	})
	err = scanTodo(tx.QueryRow(query, params...), &record)
	if err == sql.ErrNoRows {
		err = todo.ErrNoSuchTodo{ID: id}
	}
	return
}

// txTodoExists checks whether a todo exists within the context of an
// existing transaction.  If the todo is missing this returns
// ErrNoSuchTodo.
func txTodoExists(tx *sql.Tx, id int64) error {
	params := queryParams{}
	query := buildSelect([]string{todoID}, []string{todoTable}, []string{
		isTodo(&params, id),
	})
	var found int64
	err := tx.QueryRow(query, params...).Scan(&found)
	if err == sql.ErrNoRows {
		return todo.ErrNoSuchTodo{ID: id}
	}
	return err
}

func (s *pgStore) Todo(id int64) (result todo.Todo, err error) {
	err = withTx(s.db, true, func(tx *sql.Tx) error {
		result, err = txTodo(tx, id)
		return err
	})
	return
}

func (s *pgStore) CreateTodo(params todo.TodoParams) (todo.Todo, error) {
	record := todo.Todo{}
	params.Apply(&record)
	if err := record.Validate(); err != nil {
		return todo.Todo{}, err
	}
	record.CreatedAt = s.now()
	record.UpdatedAt = record.CreatedAt

	qp := queryParams{}
	fields := fieldList{}
	fields.Add(&qp, "title", record.Title)
	fields.Add(&qp, "created_by", record.CreatedBy)
	fields.Add(&qp, "created_at", record.CreatedAt)
	fields.Add(&qp, "updated_at", record.UpdatedAt)
	query := fields.InsertStatement(todoTable) + " RETURNING id"
	err := withTx(s.db, false, func(tx *sql.Tx) error {
		return tx.QueryRow(query, qp...).Scan(&record.ID)
	})
	if err != nil {
		return todo.Todo{}, err
	}
	return record, nil
}

func (s *pgStore) UpdateTodo(id int64, params todo.TodoParams) (result todo.Todo, err error) {
	err = withTx(s.db, false, func(tx *sql.Tx) error {
		result, err = txTodo(tx, id)
		if err != nil {
			return err
		}
		params.Apply(&result)
		err = result.Validate()
		if err != nil {
			return err
		}
		result.UpdatedAt = s.now()

		qp := queryParams{}
		fields := fieldList{}
		fields.Add(&qp, "title", result.Title)
		fields.Add(&qp, "created_by", result.CreatedBy)
		fields.Add(&qp, "updated_at", result.UpdatedAt)
		query := buildUpdate(todoTable, fields.UpdateChanges(), []string{
			isTodo(&qp, id),
		})
		_, err = tx.Exec(query, qp...)
		return err
	})
	if err != nil {
		return todo.Todo{}, err
	}
	return result, nil
}

func (s *pgStore) DestroyTodo(id int64) error {
	params := queryParams{}
	query := buildDelete(todoTable, []string{
		isTodo(&params, id),
	}) + " RETURNING " + todoID
	return withTx(s.db, false, func(tx *sql.Tx) error {
		var deleted int64
		err := tx.QueryRow(query, params...).Scan(&deleted)
		if err == sql.ErrNoRows {
			return todo.ErrNoSuchTodo{ID: id}
		}
		return err
	})
}

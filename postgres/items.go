// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/diffeo/go-todo/todo"
)

func (s *pgStore) Items(todoID int64) ([]todo.Item, error) {
	result := []todo.Item{}
	err := withTx(s.db, true, func(tx *sql.Tx) error {
		err := txTodoExists(tx, todoID)
		if err != nil {
			return err
		}
		params := queryParams{}
		query := buildSelect(itemColumns, []string{itemTable}, []string{
			inThisTodo(&params, todoID),
		}) + " ORDER BY " + itemID
		return queryAndScan(tx, query, params, func(rows *sql.Rows) error {
			var item todo.Item
			err := scanItem(rows, &item)
			if err == nil {
				result = append(result, item)
			}
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// txItem retrieves an item, scoped to its todo, within the context of
// an existing transaction.  Returns ErrNoSuchTodo if the todo is
// missing and ErrNoSuchItem if the item is.
func txItem(tx *sql.Tx, todoID, id int64) (item todo.Item, err error) {
	err = txTodoExists(tx, todoID)
	if err != nil {
		return
	}
	params := queryParams{}
	query := buildSelect(itemColumns, []string{itemTable}, []string{
		inThisTodo(&params, todoID),
		isItem(&params, id),
	})
	err = scanItem(tx.QueryRow(query, params...), &item)
	if err == sql.ErrNoRows {
		err = todo.ErrNoSuchItem{TodoID: todoID, ID: id}
	}
	return
}

func (s *pgStore) Item(todoID, id int64) (result todo.Item, err error) {
	err = withTx(s.db, true, func(tx *sql.Tx) error {
		result, err = txItem(tx, todoID, id)
		return err
	})
	return
}

func (s *pgStore) CreateItem(todoID int64, params todo.ItemParams) (item todo.Item, err error) {
	err = withTx(s.db, false, func(tx *sql.Tx) error {
		err := txTodoExists(tx, todoID)
		if err != nil {
			return err
		}
		item = todo.Item{}
		params.Apply(&item)
		item.TodoID = todoID
		err = item.Validate(true)
		if err != nil {
			return err
		}
		item.CreatedAt = s.now()
		item.UpdatedAt = item.CreatedAt

		qp := queryParams{}
		fields := fieldList{}
		fields.Add(&qp, "todo_id", item.TodoID)
		fields.Add(&qp, "name", item.Name)
		fields.Add(&qp, "done", item.Done)
		fields.Add(&qp, "created_at", item.CreatedAt)
		fields.Add(&qp, "updated_at", item.UpdatedAt)
		query := fields.InsertStatement(itemTable) + " RETURNING id"
		err = tx.QueryRow(query, qp...).Scan(&item.ID)
		if isForeignKeyViolation(err, itemTodoForeignKey) {
			err = todo.ErrNoSuchTodo{ID: todoID}
		}
		return err
	})
	if err != nil {
		return todo.Item{}, err
	}
	return item, nil
}

func (s *pgStore) UpdateItem(todoID, id int64, params todo.ItemParams) (item todo.Item, err error) {
	err = withTx(s.db, false, func(tx *sql.Tx) error {
		item, err = txItem(tx, todoID, id)
		if err != nil {
			return err
		}
		params.Apply(&item)
		todoExists := true
		if item.TodoID != todoID {
			err = txTodoExists(tx, item.TodoID)
			if _, missing := err.(todo.ErrNoSuchTodo); missing {
				todoExists = false
			} else if err != nil {
				return err
			}
		}
		err = item.Validate(todoExists)
		if err != nil {
			return err
		}
		item.UpdatedAt = s.now()

		qp := queryParams{}
		fields := fieldList{}
		fields.Add(&qp, "todo_id", item.TodoID)
		fields.Add(&qp, "name", item.Name)
		fields.Add(&qp, "done", item.Done)
		fields.Add(&qp, "updated_at", item.UpdatedAt)
		query := buildUpdate(itemTable, fields.UpdateChanges(), []string{
			isItem(&qp, id),
		})
		_, err = tx.Exec(query, qp...)
		if isForeignKeyViolation(err, itemTodoForeignKey) {
			// The new todo was deleted out from under us
			errs := todo.ValidationErrors{}
			errs.Add("todo", todo.MsgNotExist)
			err = errs
		}
		return err
	})
	if err != nil {
		return todo.Item{}, err
	}
	return item, nil
}

func (s *pgStore) DestroyItem(todoID, id int64) error {
	return withTx(s.db, false, func(tx *sql.Tx) error {
		err := txTodoExists(tx, todoID)
		if err != nil {
			return err
		}
		params := queryParams{}
		query := buildDelete(itemTable, []string{
			inThisTodo(&params, todoID),
			isItem(&params, id),
		}) + " RETURNING " + itemID
		var deleted int64
		err = tx.QueryRow(query, params...).Scan(&deleted)
		if err == sql.ErrNoRows {
			return todo.ErrNoSuchItem{TodoID: todoID, ID: id}
		}
		return err
	})
}

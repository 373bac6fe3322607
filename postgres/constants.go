// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

const (
	// SQL table names:
	todoTable = "todo"
	itemTable = "item"

	// SQL column names:
	todoID        = todoTable + ".id"
	todoTitle     = todoTable + ".title"
	todoCreatedBy = todoTable + ".created_by"
	todoCreatedAt = todoTable + ".created_at"
	todoUpdatedAt = todoTable + ".updated_at"
	itemID        = itemTable + ".id"
	itemTodoID    = itemTable + ".todo_id"
	itemName      = itemTable + ".name"
	itemDone      = itemTable + ".done"
	itemCreatedAt = itemTable + ".created_at"
	itemUpdatedAt = itemTable + ".updated_at"

	// Constraint names from the migrations:
	itemTodoForeignKey = "item_todo_id_fkey"
)

// Column lists, in the order scanTodo() and scanItem() expect them.
var (
	todoColumns = []string{
		todoID,
		todoTitle,
		todoCreatedBy,
		todoCreatedAt,
		todoUpdatedAt,
	}
	itemColumns = []string{
		itemID,
		itemTodoID,
		itemName,
		itemDone,
		itemCreatedAt,
		itemUpdatedAt,
	}
)

// WHERE clause fragments:

func isTodo(params *queryParams, id int64) string {
	return todoID + "=" + params.Param(id)
}

func isItem(params *queryParams, id int64) string {
	return itemID + "=" + params.Param(id)
}

func inThisTodo(params *queryParams, id int64) string {
	return itemTodoID + "=" + params.Param(id)
}

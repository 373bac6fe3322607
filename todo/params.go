// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todo

import (
	"strings"
)

// TodoPermitted lists the fields a client may set on a Todo.
var TodoPermitted = []string{"title", "created_by"}

// ItemPermitted lists the fields a client may set on an Item.
var ItemPermitted = []string{"name", "done", "todo_id"}

// TodoParams holds the client-settable fields of a Todo.  A nil field
// is left unchanged on update, and left at its zero value on create.
// Nil fields encode as JSON null, so a request always carries every
// permitted key.
type TodoParams struct {
	Title     *string `json:"title" mapstructure:"title"`
	CreatedBy *string `json:"created_by" mapstructure:"created_by"`
}

// Apply copies the non-nil fields of params into t.
func (params TodoParams) Apply(t *Todo) {
	if params.Title != nil {
		t.Title = *params.Title
	}
	if params.CreatedBy != nil {
		t.CreatedBy = *params.CreatedBy
	}
}

// ItemParams holds the client-settable fields of an Item.
type ItemParams struct {
	Name   *string `json:"name" mapstructure:"name"`
	Done   *bool   `json:"done" mapstructure:"done"`
	TodoID *int64  `json:"todo_id" mapstructure:"todo_id"`
}

// Apply copies the non-nil fields of params into item, including
// TodoID.
func (params ItemParams) Apply(item *Item) {
	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.Done != nil {
		item.Done = *params.Done
	}
	if params.TodoID != nil {
		item.TodoID = *params.TodoID
	}
}

// Validate checks a todo for missing fields.  It returns nil if the
// record is valid, or a ValidationErrors otherwise.
func (t Todo) Validate() error {
	errs := ValidationErrors{}
	if isBlank(t.Title) {
		errs.Add("title", MsgBlank)
	}
	if isBlank(t.CreatedBy) {
		errs.Add("created_by", MsgBlank)
	}
	return errs.Err()
}

// Validate checks an item for missing fields.  todoExists reports
// whether the item's TodoID names an existing todo; stores check this
// themselves since only they know.
func (item Item) Validate(todoExists bool) error {
	errs := ValidationErrors{}
	if isBlank(item.Name) {
		errs.Add("name", MsgBlank)
	}
	if !todoExists {
		errs.Add("todo", MsgNotExist)
	}
	return errs.Err()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// String returns a pointer to s, for filling in params objects.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for filling in params objects.
func Bool(b bool) *bool {
	return &b
}

// ID returns a pointer to id, for filling in params objects.
func ID(id int64) *int64 {
	return &id
}

// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNoParams is returned when a request does not carry the wrapper
// object holding a record's fields, or that object is empty.
var ErrNoParams = errors.New("param is missing or the value is empty")

// ErrNoSuchTodo is returned by Store.Todo() and similar functions that
// want to look up a todo, but cannot find it.
type ErrNoSuchTodo struct {
	ID int64
}

func (err ErrNoSuchTodo) Error() string {
	return fmt.Sprintf("Couldn't find Todo with 'id'=%d", err.ID)
}

// ErrNoSuchItem is returned by Store.Item() and similar functions when
// the todo exists but has no item with the requested ID.
type ErrNoSuchItem struct {
	TodoID int64
	ID     int64
}

func (err ErrNoSuchItem) Error() string {
	return fmt.Sprintf("Couldn't find Item with 'id'=%d and 'todo_id'=%d", err.ID, err.TodoID)
}

// Messages produced by record validation.
const (
	MsgBlank    = "can't be blank"
	MsgNotExist = "must exist"
)

// ValidationErrors maps field names to the list of problems found with
// that field.  It is returned as an error from create and update calls
// when the resulting record would be invalid.
type ValidationErrors map[string][]string

// Add records a problem with a field.
func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Empty returns true if no problems have been recorded.
func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

// Err returns v as an error, or nil if v is empty.
func (v ValidationErrors) Err() error {
	if v.Empty() {
		return nil
	}
	return v
}

// Error produces a message like "Validation failed: Name can't be
// blank, Title can't be blank".  Fields are listed in sorted order.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	var parts []string
	for _, field := range fields {
		label := strings.Replace(field, "_", " ", -1)
		if len(label) > 0 {
			label = strings.ToUpper(label[:1]) + label[1:]
		}
		for _, message := range v[field] {
			parts = append(parts, label+" "+message)
		}
	}
	return "Validation failed: " + strings.Join(parts, ", ")
}

// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTodoParamsApply(t *testing.T) {
	record := Todo{ID: 1, Title: "learn elm", CreatedBy: "Foo"}
	TodoParams{CreatedBy: String("Bar")}.Apply(&record)
	assert.Equal(t, Todo{ID: 1, Title: "learn elm", CreatedBy: "Bar"}, record)

	TodoParams{}.Apply(&record)
	assert.Equal(t, "learn elm", record.Title)
	assert.Equal(t, "Bar", record.CreatedBy)
}

func TestItemParamsApply(t *testing.T) {
	item := Item{ID: 3, Name: "read the guide", TodoID: 1}
	ItemParams{Done: Bool(true)}.Apply(&item)
	assert.True(t, item.Done)
	assert.Equal(t, "read the guide", item.Name)

	ItemParams{Name: String(""), Done: Bool(false), TodoID: ID(2)}.Apply(&item)
	assert.Equal(t, Item{ID: 3, TodoID: 2}, item)
}

func TestTodoValidate(t *testing.T) {
	assert.NoError(t, Todo{Title: "t", CreatedBy: "c"}.Validate())

	err := Todo{Title: "  "}.Validate()
	if assert.IsType(t, ValidationErrors{}, err) {
		assert.Equal(t, ValidationErrors{
			"title":      []string{MsgBlank},
			"created_by": []string{MsgBlank},
		}, err)
	}
}

func TestItemValidate(t *testing.T) {
	assert.NoError(t, Item{Name: "n"}.Validate(true))

	err := Item{}.Validate(false)
	assert.Equal(t, ValidationErrors{
		"name": []string{MsgBlank},
		"todo": []string{MsgNotExist},
	}, err)
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{}
	assert.True(t, errs.Empty())
	assert.NoError(t, errs.Err())

	errs.Add("title", MsgBlank)
	errs.Add("created_by", MsgBlank)
	assert.EqualError(t, errs,
		"Validation failed: Created by can't be blank, Title can't be blank")
}

func TestNotFoundMessages(t *testing.T) {
	assert.EqualError(t, ErrNoSuchTodo{ID: 100},
		"Couldn't find Todo with 'id'=100")
	assert.EqualError(t, ErrNoSuchItem{TodoID: 1, ID: 7},
		"Couldn't find Item with 'id'=7 and 'todo_id'=1")
}

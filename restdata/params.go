// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"fmt"

	"github.com/diffeo/go-todo/todo"
	"github.com/mitchellh/mapstructure"
)

// Permit extracts the object named wrapper from a decoded request body
// and keeps only the keys listed in permitted.  If wrapper is missing,
// is not an object, or is empty, returns ErrBadRequest wrapping
// todo.ErrNoParams.
func Permit(body map[string]interface{}, wrapper string, permitted []string) (map[string]interface{}, error) {
	var fields map[string]interface{}
	switch inner := body[wrapper].(type) {
	case map[string]interface{}:
		fields = inner
	case map[interface{}]interface{}:
		fields = make(map[string]interface{}, len(inner))
		for key, value := range inner {
			fields[fmt.Sprint(key)] = value
		}
	}
	if len(fields) == 0 {
		return nil, ErrBadRequest{Err: todo.ErrNoParams}
	}

	result := make(map[string]interface{})
	for _, name := range permitted {
		if value, present := fields[name]; present {
			result[name] = value
		}
	}
	return result, nil
}

// decodeParams fills in a params structure from permitted fields.
// Values are converted loosely, so "true" or 1 can fill in a bool.
func decodeParams(fields map[string]interface{}, out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	err = decoder.Decode(fields)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	return nil
}

// TodoParams extracts the permitted todo fields from a request body.
func TodoParams(body map[string]interface{}) (params todo.TodoParams, err error) {
	var fields map[string]interface{}
	fields, err = Permit(body, "todo", todo.TodoPermitted)
	if err == nil {
		err = decodeParams(fields, &params)
	}
	return
}

// ItemParams extracts the permitted item fields from a request body.
func ItemParams(body map[string]interface{}) (params todo.ItemParams, err error) {
	var fields map[string]interface{}
	fields, err = Permit(body, "item", todo.ItemPermitted)
	if err == nil {
		err = decodeParams(fields, &params)
	}
	return
}

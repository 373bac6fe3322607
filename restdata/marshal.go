// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bufio"
	"errors"
	"io"
	"mime"
	"reflect"

	"github.com/ugorji/go/codec"
)

// NewJSONHandle returns the codec handle used for all JSON on the
// wire.  Objects of unknown type decode as map[string]interface{}.
func NewJSONHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	return h
}

// IsJSON determines whether a Content-Type: header names one of the
// JSON media types this package understands.
func IsJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mediaType {
	case "text/json", PlainJSONMediaType, JSONMediaType, V1JSONMediaType:
		return true
	}
	return false
}

// ErrTrailingData is wrapped in ErrBadRequest when a body holds
// something other than whitespace after its JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

// skipSpace consumes JSON whitespace from r.  It returns io.EOF if
// nothing else is left.
func skipSpace(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return r.UnreadByte()
	}
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.  An empty
// content type is taken to be JSON.  A body that is empty or only
// whitespace leaves out alone; otherwise it must hold exactly one
// JSON value.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		contentType = PlainJSONMediaType
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	if !IsJSON(mediaType) {
		return ErrUnsupportedMediaType{Type: mediaType}
	}

	br := bufio.NewReader(r)
	err = skipSpace(br)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return ErrBadRequest{Err: err}
	}

	// The decoder reads a byte at a time from a ByteScanner, so
	// anything after the value is still in br
	decoder := codec.NewDecoder(br, NewJSONHandle())
	err = decoder.Decode(out)
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	err = skipSpace(br)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return ErrBadRequest{Err: err}
	}
	return ErrBadRequest{Err: ErrTrailingData}
}

// Encode writes a restdata object to a writer as JSON.
func Encode(w io.Writer, in interface{}) error {
	encoder := codec.NewEncoder(w, NewJSONHandle())
	return encoder.Encode(in)
}

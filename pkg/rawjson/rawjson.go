// Package rawjson resolves dotted paths against raw JSON documents without
// unmarshalling them first. It mirrors the access modes of the root mapkit
// package (tolerant, comma-ok, strict) over []byte, backed by gjson.
package rawjson

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/aretw0/mapkit"
)

// NotFoundError reports a path that did not resolve in a document.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path %q not found in document", e.Path)
}

// Unwrap ties the error to the mapkit.ErrNotFound sentinel.
func (e *NotFoundError) Unwrap() error {
	return mapkit.ErrNotFound
}

// Get resolves a dotted path against doc and returns the decoded value
// (string, float64, bool, map[string]any, []any, or nil). A path that does
// not resolve yields nil. The empty path returns the whole document decoded.
func Get(doc []byte, path string) any {
	v, ok := Fetch(doc, path)
	if !ok {
		return nil
	}
	return v
}

// Fetch is the comma-ok form of Get.
func Fetch(doc []byte, path string) (any, bool) {
	if len(doc) == 0 {
		return nil, false
	}
	if path == "" {
		v := gjson.ParseBytes(doc).Value()
		return v, v != nil
	}
	result := gjson.GetBytes(doc, path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// FetchStrict resolves a dotted path against doc, failing with a
// *NotFoundError when the path does not resolve. errors.Is against
// mapkit.ErrNotFound matches.
func FetchStrict(doc []byte, path string) (any, error) {
	v, ok := Fetch(doc, path)
	if !ok {
		return nil, &NotFoundError{Path: path}
	}
	return v, nil
}

// String returns the value at path as a string, or "" when the path does
// not resolve or holds a non-string.
func String(doc []byte, path string) string {
	if s, ok := Get(doc, path).(string); ok {
		return s
	}
	return ""
}

// Int returns the value at path as an int. JSON numbers decode as float64;
// anything else yields 0.
func Int(doc []byte, path string) int {
	if n, ok := Get(doc, path).(float64); ok {
		return int(n)
	}
	return 0
}

// Bool returns the value at path as a bool, or false when absent or
// non-boolean.
func Bool(doc []byte, path string) bool {
	if b, ok := Get(doc, path).(bool); ok {
		return b
	}
	return false
}

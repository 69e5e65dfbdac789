package mapkit

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel matched by errors.Is for any path lookup
// failure reported by this package.
var ErrNotFound = errors.New("key not found")

// KeyNotFoundError reports the first path segment that could not be
// resolved. Mapping holds the value the segment was looked up in: the
// containing map when the key was missing, or the non-map value a segment
// tried to descend into.
type KeyNotFoundError struct {
	Key     string
	Mapping any
}

func (e *KeyNotFoundError) Error() string {
	if _, ok := e.Mapping.(map[string]any); ok {
		return fmt.Sprintf("key %q not found in mapping", e.Key)
	}
	return fmt.Sprintf("key %q not found: cannot descend into value of type %T", e.Key, e.Mapping)
}

// Unwrap ties the structured error to the ErrNotFound sentinel.
func (e *KeyNotFoundError) Unwrap() error {
	return ErrNotFound
}

package mapkit

import "strings"

// Path is a pre-split traversal route through nested maps. Parsing a dotted
// string once into a Path and reusing it avoids re-splitting on every lookup;
// otherwise a Path behaves exactly like the string it was parsed from.
type Path []string

// ParsePath splits a dot-delimited path into segments. The empty string
// parses to a nil Path, which resolves to the input map itself.
func ParsePath(s string) Path {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

// String re-joins the path with dots.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Get walks p through m and returns the value at the end, or nil if any
// segment is missing or a segment lands on a non-map with segments left to
// consume. m is never mutated.
func (p Path) Get(m map[string]any) any {
	v, err := p.FetchStrict(m)
	if err != nil {
		return nil
	}
	return v
}

// Fetch is the comma-ok form of Get: ok is false exactly when FetchStrict
// would fail, and the value matches FetchStrict's on success.
func (p Path) Fetch(m map[string]any) (any, bool) {
	v, err := p.FetchStrict(m)
	if err != nil {
		return nil, false
	}
	return v, true
}

// FetchStrict walks p through m and fails with a *KeyNotFoundError at the
// first segment that cannot be resolved. An empty path returns m.
func (p Path) FetchStrict(m map[string]any) (any, error) {
	var current any = m
	for _, segment := range p {
		container, ok := current.(map[string]any)
		if !ok {
			return nil, &KeyNotFoundError{Key: segment, Mapping: current}
		}
		next, exists := container[segment]
		if !exists {
			return nil, &KeyNotFoundError{Key: segment, Mapping: container}
		}
		current = next
	}
	return current, nil
}

// GetPath resolves a dotted path against m, returning nil when the path does
// not resolve. GetPath(m, "") returns m.
func GetPath(m map[string]any, path string) any {
	return ParsePath(path).Get(m)
}

// FetchPath resolves a dotted path against m. The boolean reports whether
// every segment resolved; absence is a value, not an error.
func FetchPath(m map[string]any, path string) (any, bool) {
	return ParsePath(path).Fetch(m)
}

// FetchPathStrict resolves a dotted path against m, failing with a
// *KeyNotFoundError the moment a segment cannot be resolved.
func FetchPathStrict(m map[string]any, path string) (any, error) {
	return ParsePath(path).FetchStrict(m)
}

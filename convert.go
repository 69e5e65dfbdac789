package mapkit

import (
	"time"

	"github.com/spf13/cast"
)

// Typed getters resolve a dotted path tolerantly and coerce the result with
// spf13/cast. An absent path or an uncoercible value yields the zero value.

// GetString returns the value at path coerced to a string.
func GetString(m map[string]any, path string) string {
	return cast.ToString(GetPath(m, path))
}

// GetInt returns the value at path coerced to an int.
func GetInt(m map[string]any, path string) int {
	return cast.ToInt(GetPath(m, path))
}

// GetFloat64 returns the value at path coerced to a float64.
func GetFloat64(m map[string]any, path string) float64 {
	return cast.ToFloat64(GetPath(m, path))
}

// GetBool returns the value at path coerced to a bool.
func GetBool(m map[string]any, path string) bool {
	return cast.ToBool(GetPath(m, path))
}

// GetDuration returns the value at path coerced to a time.Duration.
// Strings are parsed with time.ParseDuration semantics ("30s", "1h").
func GetDuration(m map[string]any, path string) time.Duration {
	return cast.ToDuration(GetPath(m, path))
}

// GetStringMap returns the value at path coerced to a map[string]any.
func GetStringMap(m map[string]any, path string) map[string]any {
	return cast.ToStringMap(GetPath(m, path))
}

// GetStringSlice returns the value at path coerced to a []string.
func GetStringSlice(m map[string]any, path string) []string {
	return cast.ToStringSlice(GetPath(m, path))
}

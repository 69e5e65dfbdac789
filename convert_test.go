package mapkit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/mapkit"
)

func TestTypedGetters(t *testing.T) {
	doc := map[string]any{
		"profile": map[string]any{
			"name":    "akuna",
			"age":     "41",
			"ratio":   0.5,
			"active":  true,
			"timeout": "30s",
			"tags":    []any{"a", "b"},
			"extra":   map[string]any{"k": "v"},
		},
	}

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "akuna", mapkit.GetString(doc, "profile.name"))
		assert.Equal(t, "", mapkit.GetString(doc, "profile.missing"))
	})

	t.Run("int coerces numeric strings", func(t *testing.T) {
		assert.Equal(t, 41, mapkit.GetInt(doc, "profile.age"))
		assert.Equal(t, 0, mapkit.GetInt(doc, "profile.name"))
	})

	t.Run("float64", func(t *testing.T) {
		assert.Equal(t, 0.5, mapkit.GetFloat64(doc, "profile.ratio"))
	})

	t.Run("bool", func(t *testing.T) {
		assert.True(t, mapkit.GetBool(doc, "profile.active"))
		assert.False(t, mapkit.GetBool(doc, "profile.missing"))
	})

	t.Run("duration parses duration strings", func(t *testing.T) {
		assert.Equal(t, 30*time.Second, mapkit.GetDuration(doc, "profile.timeout"))
	})

	t.Run("string slice", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b"}, mapkit.GetStringSlice(doc, "profile.tags"))
	})

	t.Run("string map", func(t *testing.T) {
		assert.Equal(t, map[string]any{"k": "v"}, mapkit.GetStringMap(doc, "profile.extra"))
	})

	t.Run("absent path yields zero values", func(t *testing.T) {
		assert.Equal(t, "", mapkit.GetString(doc, "nope.nope"))
		assert.Equal(t, 0, mapkit.GetInt(doc, "nope"))
		assert.Equal(t, time.Duration(0), mapkit.GetDuration(doc, "nope"))
	})
}

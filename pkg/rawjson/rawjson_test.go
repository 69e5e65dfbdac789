package rawjson_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mapkit"
	"github.com/aretw0/mapkit/pkg/rawjson"
)

var doc = []byte(`{
	"counts": {"followed_by": 5951762},
	"name": "akuna",
	"active": true,
	"good": ""
}`)

func TestFetch(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "nested number", path: "counts.followed_by", want: float64(5951762), wantOK: true},
		{name: "top-level string", path: "name", want: "akuna", wantOK: true},
		{name: "missing key", path: "counts.following", want: nil, wantOK: false},
		{name: "descent below a scalar", path: "good.worse", want: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rawjson.Fetch(doc, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty path returns the whole document", func(t *testing.T) {
		got, ok := rawjson.Fetch(doc, "")
		require.True(t, ok)
		m, isMap := got.(map[string]any)
		require.True(t, isMap)
		assert.Equal(t, "akuna", m["name"])
	})

	t.Run("empty document never resolves", func(t *testing.T) {
		_, ok := rawjson.Fetch(nil, "name")
		assert.False(t, ok)
	})
}

func TestFetchStrict(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := rawjson.FetchStrict(doc, "counts.followed_by")
		require.NoError(t, err)
		assert.Equal(t, float64(5951762), got)
	})

	t.Run("failure carries the path and matches the sentinel", func(t *testing.T) {
		_, err := rawjson.FetchStrict(doc, "counts.following")
		require.Error(t, err)
		assert.True(t, errors.Is(err, mapkit.ErrNotFound))

		var notFound *rawjson.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "counts.following", notFound.Path)
	})
}

func TestTypedWrappers(t *testing.T) {
	assert.Equal(t, "akuna", rawjson.String(doc, "name"))
	assert.Equal(t, "", rawjson.String(doc, "counts.followed_by"))

	assert.Equal(t, 5951762, rawjson.Int(doc, "counts.followed_by"))
	assert.Equal(t, 0, rawjson.Int(doc, "name"))

	assert.True(t, rawjson.Bool(doc, "active"))
	assert.False(t, rawjson.Bool(doc, "missing"))
}

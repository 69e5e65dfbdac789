package mapkit

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodePath resolves a dotted path strictly and decodes the sub-mapping
// found there into out, which must be a pointer to a struct or map.
// Struct fields are matched via "mapstructure" tags. An unresolvable path
// returns the underlying *KeyNotFoundError; a decode failure wraps the
// mapstructure error.
func DecodePath(m map[string]any, path string, out any) error {
	value, err := FetchPathStrict(m, path)
	if err != nil {
		return err
	}
	if err := mapstructure.Decode(value, out); err != nil {
		return fmt.Errorf("decoding value at %q: %w", path, err)
	}
	return nil
}

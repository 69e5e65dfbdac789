/*
Package mapkit provides helpers for manipulating nested maps: recursive key
remapping, dotted-path lookup, filtering, and type-coerced access.

All functions are pure: inputs are never mutated and results are freshly
constructed, so any value can be shared across goroutines without locking.

# Paths

Nested values are addressed with dot-delimited paths. A path is either a plain
string ("counts.followed_by") or a pre-split [Path], which is useful when the
same route is walked repeatedly:

	doc := map[string]any{
		"counts": map[string]any{"followed_by": 5951762},
	}

	mapkit.GetPath(doc, "counts.followed_by") // 5951762

	p := mapkit.ParsePath("counts.followed_by")
	p.Get(doc) // same result, no re-parsing

Three access modes share the traversal:

  - [GetPath] is tolerant: a missing key, or a scalar where a map was
    expected, yields nil.
  - [FetchPath] is the comma-ok form: the second return reports whether every
    segment resolved.
  - [FetchPathStrict] returns a [KeyNotFoundError] identifying the first
    segment that failed and the value it was looked up in.

The empty path resolves to the input itself.

# Remapping

[RemapKeys] rewrites every key of a map, and of every map nested in its
values, through a caller-supplied transform:

	mapkit.RemapKeys(doc, strings.ToUpper)

Shape is preserved; non-map values pass through untouched.

# Filtering

[Filter] and [Reject] build a new map from the entries a predicate keeps or
drops. They are generic over key and value types and always partition the
input: every entry lands in exactly one of the two results for a given
predicate.

# Documents

For raw JSON documents the rawjson subpackage offers the same access modes
over []byte without unmarshalling the whole document first.
*/
package mapkit

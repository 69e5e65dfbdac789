package mapkit

// RemapKeys returns a new map in which every key of m, and of every map
// nested in its values, has been replaced by fn(key). Values that are not
// map[string]any pass through untouched; slices are not descended into.
//
// The input is never mutated. If fn maps two distinct keys at the same level
// to the same output key, one entry silently overwrites the other; which one
// survives follows map iteration order and is implementation-defined.
func RemapKeys(m map[string]any, fn func(string) string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[fn(k)] = RemapKeys(nested, fn)
			continue
		}
		out[fn(k)] = v
	}
	return out
}

// DeepCopy returns a copy of m in which every nested map[string]any and
// []any has been copied as well. Scalar and opaque values are shared.
func DeepCopy(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		return DeepCopy(typed)
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, deepCopyValue(item))
		}
		return out
	default:
		return typed
	}
}

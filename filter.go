package mapkit

// Filter returns a new map holding exactly the entries of m for which pred
// returns true. m is never mutated; a nil map filters to an empty map.
func Filter[K comparable, V any](m map[K]V, pred func(K, V) bool) map[K]V {
	out := make(map[K]V)
	for k, v := range m {
		if pred(k, v) {
			out[k] = v
		}
	}
	return out
}

// Reject returns the complement of Filter: the entries for which pred
// returns false. Defined in terms of Filter so the two always partition m.
func Reject[K comparable, V any](m map[K]V, pred func(K, V) bool) map[K]V {
	return Filter(m, func(k K, v V) bool { return !pred(k, v) })
}

// Keys returns the keys of m in map iteration order.
func Keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Values returns the values of m in map iteration order.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

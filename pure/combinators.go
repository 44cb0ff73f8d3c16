package pure

// Derived sequence combinators. All of them are folds over [Reduce] and
// inherit its guarantees: left-to-right visiting order, constant stack depth,
// fresh output containers, inputs never mutated.

// Map returns a fresh sequence holding transform of each element of seq.
func Map[E, U any](transform func(E) U, seq []E) []U {
	return Reduce(func(acc []U, e E) []U {
		return append(acc, transform(e))
	}, seq, make([]U, 0, len(seq)))
}

// Select returns a fresh sequence of the elements for which pred is true.
func Select[E any](pred func(E) bool, seq []E) []E {
	return Reduce(func(acc []E, e E) []E {
		if pred(e) {
			return append(acc, e)
		}
		return acc
	}, seq, []E{})
}

// Reject returns a fresh sequence of the elements for which pred is false,
// the complement of [Select].
func Reject[E any](pred func(E) bool, seq []E) []E {
	return Select(func(e E) bool { return !pred(e) }, seq)
}

// MapObject returns a fresh map with the same keys as m and each value
// replaced by transform(value, key). Every key is visited exactly once;
// visiting order follows Go map iteration and is unspecified.
func MapObject[K comparable, V, U any](transform func(V, K) U, m map[K]V) map[K]U {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return Reduce(func(acc map[K]U, k K) map[K]U {
		acc[k] = transform(m[k], k)
		return acc
	}, keys, make(map[K]U, len(m)))
}

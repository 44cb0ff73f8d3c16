package pure

// Sequence decomposition glue. A sequence is an ordered slice accessed through
// head/tail decomposition and treated as immutable: nothing here mutates its
// input, and Rest returns a view of the same backing array.

// First returns the head of seq. ok is false for an empty sequence.
func First[E any](seq []E) (head E, ok bool) {
	if len(seq) == 0 {
		return head, false
	}
	return seq[0], true
}

// Rest returns everything after the head. The result shares seq's backing
// array; callers must treat it as read-only.
func Rest[E any](seq []E) []E {
	if len(seq) == 0 {
		return nil
	}
	return seq[1:]
}

// IsEmpty reports whether seq has no elements.
func IsEmpty[E any](seq []E) bool {
	return len(seq) == 0
}

// Push returns a fresh sequence with v appended. The input keeps its length
// and contents; the copy guards against aliasing through shared capacity.
func Push[E any](seq []E, v E) []E {
	out := make([]E, len(seq), len(seq)+1)
	copy(out, seq)
	return append(out, v)
}

package expression

// Concat concatenates two slices in order. Nil is treated as empty, and when
// either side is nil or zero-length the other is returned unchanged, same
// slice header, no copy. Otherwise a fresh slice is allocated; neither input
// is mutated.
func Concat[T any](first, second []T) []T {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	if len(first) == 0 {
		return second
	}
	if len(second) == 0 {
		return first
	}

	result := make([]T, 0, len(first)+len(second))
	result = append(result, first...)
	return append(result, second...)
}

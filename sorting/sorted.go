package sorting

import "cmp"

// IsSorted reports whether items satisfies the order property for d:
// every adjacent pair (a, b) has a ≤ b (Ascending) or a ≥ b (Descending).
// An invalid Direction is never satisfied.
//
// Complexity: O(n).
func IsSorted[T cmp.Ordered](items []T, d Direction) bool {
	return IsSortedFunc(items, cmp.Compare[T], d)
}

// IsSortedFunc is IsSorted with an explicit comparator.
func IsSortedFunc[T any](items []T, compare func(a, b T) int, d Direction) bool {
	if !d.Valid() || compare == nil {
		return false
	}
	before := precedes(compare, d)
	for i := 1; i < len(items); i++ {
		if before(items[i], items[i-1]) {
			return false
		}
	}

	return true
}

// minMax returns the smallest and largest element of a non-empty slice.
func minMax[T cmp.Ordered](items []T) (lo, hi T) {
	lo, hi = items[0], items[0]
	for _, v := range items[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}

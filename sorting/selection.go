package sorting

import "cmp"

// SelectionSort sorts items in place with selection sort (cmp.Ordered elements).
//
// For each position i in 0..n-2 the suffix i+1..n-1 is scanned for the
// extreme element (minimum for Ascending, maximum for Descending; the first
// occurrence wins) and swapped into i when it is not already there.
//
// Complexity: O(n²) comparisons always, O(n) swaps, O(1) extra space.
// Stable: no.
func SelectionSort[T cmp.Ordered](items []T, opts ...Option) ([]T, error) {
	return SelectionSortFunc(items, cmp.Compare[T], opts...)
}

// SelectionSortFunc is SelectionSort with an explicit comparator.
func SelectionSortFunc[T any](items []T, compare func(a, b T) int, opts ...Option) ([]T, error) {
	o, err := resolveFunc(items, compare, opts)
	if err != nil {
		return nil, err
	}
	selectionSort(items, precedes(compare, o.Direction))

	return items, nil
}

func selectionSort[T any](items []T, before func(a, b T) bool) {
	for i := 0; i < len(items)-1; i++ {
		if target := selectExtreme(items, i, before); target != i {
			items[i], items[target] = items[target], items[i]
		}
	}
}

// selectExtreme returns the index of the element in items[from:] that belongs first.
func selectExtreme[T any](items []T, from int, before func(a, b T) bool) int {
	best := from
	for j := from + 1; j < len(items); j++ {
		if before(items[j], items[best]) {
			best = j
		}
	}

	return best
}

package sorting

import "cmp"

// InsertionSort sorts items in place with insertion sort (cmp.Ordered elements).
//
// Algorithm:
//  1. Keep a sorted prefix items[0:i], starting with i = 1.
//  2. Take items[i] and swap it with its predecessor while the predecessor
//     belongs after it in the requested Direction.
//  3. Stop as soon as the order holds or index 0 is reached; advance i.
//
// Complexity: O(n²) worst/average, O(n) on already-sorted input, O(1) extra space.
// Stable: yes.
//
// Errors: ErrInvalidInput (nil slice), ErrInvalidDirection, ErrOptionViolation.
func InsertionSort[T cmp.Ordered](items []T, opts ...Option) ([]T, error) {
	return InsertionSortFunc(items, cmp.Compare[T], opts...)
}

// InsertionSortFunc is InsertionSort with an explicit comparator.
// compare(a, b) must return a negative number when a < b, zero when a == b
// and a positive number when a > b.
func InsertionSortFunc[T any](items []T, compare func(a, b T) int, opts ...Option) ([]T, error) {
	o, err := resolveFunc(items, compare, opts)
	if err != nil {
		return nil, err
	}
	insertionSort(items, precedes(compare, o.Direction))

	return items, nil
}

// insertionSort sorts items in place so that no element precedes its predecessor.
func insertionSort[T any](items []T, before func(a, b T) bool) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && before(items[j], items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

package sorting

import "cmp"

// BubbleSort sorts items in place with bubble sort (cmp.Ordered elements).
//
// Algorithm:
//  1. n = len(items).
//  2. Pass over items[0:n], swapping every adjacent pair (i, i+1) where
//     items[i+1] belongs before items[i]. After the pass the element that
//     belongs last sits at n-1.
//  3. n--, repeat while n > 1. A pass without swaps ends the sort early.
//
// Complexity: O(n²) worst/average, O(n) on already-sorted input, O(1) extra space.
// Stable: yes (equal neighbours are never swapped).
func BubbleSort[T cmp.Ordered](items []T, opts ...Option) ([]T, error) {
	return BubbleSortFunc(items, cmp.Compare[T], opts...)
}

// BubbleSortFunc is BubbleSort with an explicit comparator.
func BubbleSortFunc[T any](items []T, compare func(a, b T) int, opts ...Option) ([]T, error) {
	o, err := resolveFunc(items, compare, opts)
	if err != nil {
		return nil, err
	}
	bubbleSort(items, precedes(compare, o.Direction))

	return items, nil
}

func bubbleSort[T any](items []T, before func(a, b T) bool) {
	for n := len(items); n > 1; n-- {
		if !bubblePass(items, n, before) {
			return
		}
	}
}

// bubblePass bubbles the last-belonging element of items[0:n] to n-1
// and reports whether any swap happened.
func bubblePass[T any](items []T, n int, before func(a, b T) bool) bool {
	swapped := false
	for i := 0; i < n-1; i++ {
		if before(items[i+1], items[i]) {
			items[i], items[i+1] = items[i+1], items[i]
			swapped = true
		}
	}

	return swapped
}

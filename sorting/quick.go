package sorting

import "cmp"

// quickInsertionCutoff: ranges this short are finished with insertion sort.
const quickInsertionCutoff = 12

// QuickSort sorts items in place with quicksort (cmp.Ordered elements).
//
// Algorithm:
//  1. Pick the pivot as the median of items[lo], items[mid], items[hi].
//  2. Three-way (Dijkstra) partition into  < pivot | == pivot | > pivot
//     (with "<" meaning "belongs before" in the requested Direction).
//  3. Recurse into the smaller outer part, loop on the larger one, so the
//     stack never grows past O(log n).
//  4. Ranges shorter than quickInsertionCutoff are insertion-sorted.
//
// Complexity: O(n log n) expected, O(n²) worst; O(log n) stack.
// Runs of equal keys are absorbed by the middle partition.
// Stable: no.
func QuickSort[T cmp.Ordered](items []T, opts ...Option) ([]T, error) {
	return QuickSortFunc(items, cmp.Compare[T], opts...)
}

// QuickSortFunc is QuickSort with an explicit comparator.
func QuickSortFunc[T any](items []T, compare func(a, b T) int, opts ...Option) ([]T, error) {
	o, err := resolveFunc(items, compare, opts)
	if err != nil {
		return nil, err
	}
	quickSort(items, 0, len(items)-1, precedes(compare, o.Direction))

	return items, nil
}

// quickSort sorts the inclusive range items[lo:hi+1].
func quickSort[T any](items []T, lo, hi int, before func(a, b T) bool) {
	for lo < hi {
		if hi-lo < quickInsertionCutoff {
			insertionSort(items[lo:hi+1], before)

			return
		}
		lt, gt := partition3(items, lo, hi, before)
		if lt-lo < hi-gt {
			quickSort(items, lo, lt-1, before)
			lo = gt + 1
		} else {
			quickSort(items, gt+1, hi, before)
			hi = lt - 1
		}
	}
}

// partition3 rearranges items[lo:hi+1] around a median-of-three pivot and
// returns [lt, gt], the inclusive range holding elements equal to the pivot.
func partition3[T any](items []T, lo, hi int, before func(a, b T) bool) (lt, gt int) {
	pivot := items[medianOfThree(items, lo, lo+(hi-lo)/2, hi, before)]
	lt, gt = lo, hi
	for i := lo; i <= gt; {
		switch {
		case before(items[i], pivot):
			items[lt], items[i] = items[i], items[lt]
			lt++
			i++
		case before(pivot, items[i]):
			items[i], items[gt] = items[gt], items[i]
			gt--
		default:
			i++
		}
	}

	return lt, gt
}

// medianOfThree returns whichever of the indices a, b, c holds the middle value.
func medianOfThree[T any](items []T, a, b, c int, before func(a, b T) bool) int {
	if before(items[b], items[a]) {
		a, b = b, a
	}
	if before(items[c], items[b]) {
		if before(items[c], items[a]) {
			return a
		}

		return c
	}

	return b
}

package sorting

import "cmp"

// MergeSort sorts items with a top-down merge sort (cmp.Ordered elements).
//
// Algorithm:
//  1. Allocate one auxiliary buffer aux of len(items).
//  2. Recursively split the inclusive range [lo, hi] at mid = lo + (hi-lo)/2
//     until ranges are singletons.
//  3. Merge [lo, mid] and [mid+1, hi] into aux[lo:hi+1], taking from the left
//     run on ties, then append whichever run still has elements (inclusive).
//  4. Copy aux[lo:hi+1] back into items.
//
// Complexity: O(n log n) time, O(n) extra space, O(log n) recursion depth.
// Stable: yes.
func MergeSort[T cmp.Ordered](items []T, opts ...Option) ([]T, error) {
	return MergeSortFunc(items, cmp.Compare[T], opts...)
}

// MergeSortFunc is MergeSort with an explicit comparator.
func MergeSortFunc[T any](items []T, compare func(a, b T) int, opts ...Option) ([]T, error) {
	o, err := resolveFunc(items, compare, opts)
	if err != nil {
		return nil, err
	}
	if len(items) < 2 {
		return items, nil
	}
	aux := make([]T, len(items))
	mergeSort(items, aux, 0, len(items)-1, precedes(compare, o.Direction))

	return items, nil
}

func mergeSort[T any](items, aux []T, lo, hi int, before func(a, b T) bool) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSort(items, aux, lo, mid, before)
	mergeSort(items, aux, mid+1, hi, before)
	mergeRuns(items, aux, lo, mid, hi, before)
}

// mergeRuns merges the sorted runs items[lo:mid+1] and items[mid+1:hi+1].
func mergeRuns[T any](items, aux []T, lo, mid, hi int, before func(a, b T) bool) {
	// runs already in order: nothing to do
	if !before(items[mid+1], items[mid]) {
		return
	}

	left, right, k := lo, mid+1, lo
	for left <= mid && right <= hi {
		if before(items[right], items[left]) {
			aux[k] = items[right]
			right++
		} else {
			aux[k] = items[left]
			left++
		}
		k++
	}
	k += copy(aux[k:], items[left:mid+1])
	copy(aux[k:], items[right:hi+1])
	copy(items[lo:hi+1], aux[lo:hi+1])
}

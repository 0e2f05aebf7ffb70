package sorting

import "cmp"

// HeapSort sorts items in place with a binary heap (cmp.Ordered elements).
//
// Algorithm:
//  1. Heapify items so the root holds the element that belongs last in the
//     requested Direction (a max-heap for Ascending, a min-heap for Descending).
//  2. For end = n-1 down to 1: swap root with items[end], shrink the heap to
//     [0, end) and sift the new root down.
//
// Heap layout is 0-based: parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2.
//
// Complexity: O(n log n) time in every case, O(1) extra space.
// Stable: no.
func HeapSort[T cmp.Ordered](items []T, opts ...Option) ([]T, error) {
	return HeapSortFunc(items, cmp.Compare[T], opts...)
}

// HeapSortFunc is HeapSort with an explicit comparator.
func HeapSortFunc[T any](items []T, compare func(a, b T) int, opts ...Option) ([]T, error) {
	o, err := resolveFunc(items, compare, opts)
	if err != nil {
		return nil, err
	}
	heapSort(items, precedes(compare, o.Direction))

	return items, nil
}

func heapSort[T any](items []T, before func(a, b T) bool) {
	n := len(items)
	for i := heapParent(n - 1); i >= 0; i-- {
		siftDown(items, i, n, before)
	}
	for end := n - 1; end > 0; end-- {
		items[0], items[end] = items[end], items[0]
		siftDown(items, 0, end, before)
	}
}

// siftDown restores the heap property for the subtree rooted at i within items[0:n]:
// no child may belong after its parent.
func siftDown[T any](items []T, i, n int, before func(a, b T) bool) {
	for {
		last := i
		if l := heapLeft(i); l < n && before(items[last], items[l]) {
			last = l
		}
		if r := heapRight(i); r < n && before(items[last], items[r]) {
			last = r
		}
		if last == i {
			return
		}
		items[i], items[last] = items[last], items[i]
		i = last
	}
}

func heapParent(i int) int { return (i - 1) / 2 }
func heapLeft(i int) int   { return 2*i + 1 }
func heapRight(i int) int  { return 2*i + 2 }

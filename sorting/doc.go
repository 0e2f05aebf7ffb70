// Package sorting provides in-place, direction-aware sorting routines over
// Go slices: the classic comparison sorts (insertion, selection, bubble,
// merge, heap, quick) and the integer/numeric distribution sorts (counting,
// radix, bucket).
//
// 🚀 What is in the box?
//
//	Every routine shares one contract:
//	  • the caller's slice is reordered in place and returned for chaining
//	  • Direction (Ascending by default, Descending on request) picks the order
//	  • validation happens up front, so a rejected call never mutates input
//
// ✨ Key features:
//   - Ordered variants over cmp.Ordered: InsertionSort, MergeSort, ...
//   - Comparator variants (…Func) over any T with compare(a, b) int,
//     the same shape as slices.SortFunc
//   - Stable: insertion, bubble, merge, radix, bucket
//   - Integer-only fast paths: CountingSort (O(n+k)), RadixSort (O(w·n))
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsort/sorting"
//
//	xs := []int{5, 3, 1, 4, 2}
//	if _, err := sorting.MergeSort(xs, sorting.WithDirection(sorting.Descending)); err != nil {
//	  // handle ErrInvalidInput / ErrInvalidDirection
//	}
//	// xs == [5 4 3 2 1]
//
// Errors:
//   - ErrInvalidInput    : nil slice, nil comparator, unsortable values.
//   - ErrInvalidDirection: Direction outside {Ascending, Descending}.
//   - ErrOptionViolation : meaningless option value (e.g. WithBuckets(0)).
//
// An empty, non-nil slice is valid input and sorts to a no-op.
//
// Complexity summary:
//
//	Insertion, Selection, Bubble: O(n²) time, O(1) space
//	Merge                       : O(n log n) time, O(n) space
//	Heap, Quick                 : O(n log n) time (quick: expected), O(1)/O(log n) space
//	Counting                    : O(n + k) time, O(k) space (k = max-min+1)
//	Radix                       : O(w·n) time, O(n) space (w = bytes per element)
//	Bucket                      : O(n + k) expected, O(n²) worst
package sorting

// Package lvlsort is a small, dependency-light study collection of sorting
// algorithms and classic interview problems, written the same way across
// the board: pure functions, sentinel errors, functional options.
//
// 🚀 What is inside?
//
//	sorting/ : in-place, direction-aware sorts over Go slices:
//	              insertion, selection, bubble, merge, heap, quick (comparison)
//	              counting, radix (integers), bucket (integers & floats)
//	dataset/ : deterministic fixture generators (random, sorted, reversed,
//	              few-unique, nearly-sorted, sawtooth) + stability helpers
//	problems/: two-sum, three-sum, longest palindromic substring
//	examples/: runnable demo program
//
// ✨ Shared contract of every sort:
//
//   - The caller's slice is reordered in place and returned for chaining.
//   - Direction is Ascending unless sorting.WithDirection says otherwise.
//   - A nil slice or an unknown Direction is rejected before anything moves;
//     an empty, non-nil slice is a valid no-op.
//
// Quick start:
//
//	xs, err := sorting.MergeSort([]int{4, 1, 3, 2})
//	// xs == [1 2 3 4], err == nil
//
//	go get github.com/katalvlaran/lvlsort
package lvlsort

// Package sorting - validation and comparison-policy helpers shared by all routines.
//
// Design principles:
//   - Deterministic, side-effect free; nothing here touches the caller's slice.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - The direction is resolved once per call into a "before" predicate, so the
//     hot loops never branch on Direction.
package sorting

import "fmt"

// resolve applies opts over DefaultOptions and validates the call.
//
// Stages (first failure wins):
//  1. items must be non-nil (an empty, non-nil slice is fine).
//  2. the resolved Direction must be Ascending or Descending.
//  3. no option may have recorded a violation.
//
// Complexity: O(len(opts)).
func resolve[T any](items []T, opts []Option) (Options, error) {
	o := DefaultOptions()
	if items == nil {
		return o, fmt.Errorf("%w: items slice is nil", ErrInvalidInput)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.Direction.Valid() {
		return o, fmt.Errorf("%w: %v", ErrInvalidDirection, o.Direction)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// resolveFunc is resolve plus the comparator presence check used by the …Func variants.
func resolveFunc[T any](items []T, compare func(a, b T) int, opts []Option) (Options, error) {
	o, err := resolve(items, opts)
	if err != nil {
		return o, err
	}
	if compare == nil {
		return o, fmt.Errorf("%w: compare func is nil", ErrInvalidInput)
	}

	return o, nil
}

// precedes turns a three-way comparator and a Direction into a strict
// "a must come before b" predicate.
//
//	Ascending:  before(a, b) ⇔ compare(a, b) < 0
//	Descending: before(a, b) ⇔ compare(a, b) > 0
//
// Equal elements never precede each other, which is what keeps the
// stable routines stable.
func precedes[T any](compare func(a, b T) int, d Direction) func(a, b T) bool {
	if d == Descending {
		return func(a, b T) bool { return compare(a, b) > 0 }
	}

	return func(a, b T) bool { return compare(a, b) < 0 }
}

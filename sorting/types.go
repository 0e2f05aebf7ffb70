// Package sorting defines the Direction enum and the functional options
// shared by every sort routine.
package sorting

import "fmt"

// Direction selects the order a sort produces.
//
//   - Ascending : every element is ≤ its successor (the zero value, default).
//   - Descending: every element is ≥ its successor.
//
// Any other value is rejected with ErrInvalidDirection.
type Direction int

const (
	// Ascending orders from smallest to largest.
	Ascending Direction = iota

	// Descending orders from largest to smallest.
	Descending
)

// Valid reports whether d is one of the two recognised directions.
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

// Reverse returns the opposite direction. An invalid direction is returned unchanged.
func (d Direction) Reverse() Direction {
	switch d {
	case Ascending:
		return Descending
	case Descending:
		return Ascending
	default:
		return d
	}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Option configures a sort call via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the sort is invoked.
type Option func(*Options)

// Options holds the parameters of a single sort call.
type Options struct {
	// Direction is the requested order; Ascending unless overridden.
	Direction Direction

	// Buckets, if > 0, fixes the bucket count used by BucketSort
	// (capped at len(items)). 0 means "one bucket per element".
	Buckets int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with:
//   - Direction = Ascending
//   - Buckets = 0 (BucketSort picks len(items))
func DefaultOptions() Options {
	return Options{
		Direction: Ascending,
		Buckets:   0,
		err:       nil,
	}
}

// WithDirection sets the requested order. The value is validated when the
// sort runs, so WithDirection(Direction(7)) yields ErrInvalidDirection.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		o.Direction = d
	}
}

// WithBuckets fixes the number of buckets BucketSort distributes into.
//
//	k > 0: use min(k, len(items)) buckets
//	k <= 0: invalid option → ErrOptionViolation
func WithBuckets(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: Buckets must be positive (%d)", ErrOptionViolation, k)

			return
		}
		o.Buckets = k
	}
}

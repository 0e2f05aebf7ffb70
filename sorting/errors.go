package sorting

import "errors"

// Sentinel errors returned by every sort entry point. All of them are
// reported before the input is touched, so a failed call never leaves a
// partially sorted slice behind. Branch with errors.Is.
var (
	// ErrInvalidInput indicates a nil slice, a nil comparator, or element
	// values the chosen algorithm cannot order (NaN/Inf for BucketSort,
	// a value range too wide for CountingSort).
	ErrInvalidInput = errors.New("sorting: invalid input")

	// ErrInvalidDirection indicates a Direction other than Ascending or Descending.
	ErrInvalidDirection = errors.New("sorting: invalid direction")

	// ErrOptionViolation indicates an Option received a meaningless value.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")
)

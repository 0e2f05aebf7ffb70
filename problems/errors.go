package problems

import "errors"

// ErrNoSolution is returned by TwoSum when no pair of distinct elements adds up to the target.
var ErrNoSolution = errors.New("problems: no solution")

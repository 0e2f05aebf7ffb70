// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// errors.go: sentinel errors for the dataset package.
//
// Error policy:
//   • Generators return sentinels wrapped with %w; branch with errors.Is.
//   • Option constructors (WithX) panic on meaningless values instead,
//     surfacing programmer errors at the call site.

package dataset

import "errors"

// ErrBadSize indicates an invalid length or shape parameter
// (n < 0, k < 1, period < 1, swaps < 0).
var ErrBadSize = errors.New("dataset: invalid size/length")

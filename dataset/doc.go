// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// Package dataset builds deterministic integer and float sequences used as
// fixtures by the sorting tests, benchmarks and examples.
//
// Shapes:
//
//	Random       : uniform values in [0, max)
//	Floats       : uniform float64 values in [0, max)
//	Sorted       : 0, 1, …, n-1
//	Reversed     : n-1, …, 1, 0
//	FewUnique    : uniform values drawn from only k distinct keys
//	NearlySorted : Sorted with a fixed number of random transpositions
//	Sawtooth     : i mod period (repeating ascending ramps)
//
// Determinism:
//
//	The same (n, seed, options) always yields the same slice. With no
//	seeding option the generators use a fixed default seed, so fixtures are
//	stable across runs and platforms.
//
// Stability checks:
//
//	Keyed pairs every value with its input position; sorting []Keyed by
//	CompareKeyed and checking Index order inside runs of equal Value
//	verifies that a sort is stable.
package dataset

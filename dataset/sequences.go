// SPDX-License-Identifier: MIT
// Package: lvlsort/dataset
//
// sequences.go: deterministic sequence generators.
//
// Contract:
//   • Every generator returns a fresh, non-nil slice of length n
//     (possibly empty), or (nil, ErrBadSize) on invalid parameters.
//   • O(n) time and memory; no global state.

package dataset

import (
	"cmp"
	"fmt"
)

// Random returns n uniform values in [0, max) (max defaults to 1000, see WithMax).
func Random(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Random: %w: n=%d", ErrBadSize, n)
	}
	cfg := newConfig(opts...)
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.rng.Intn(cfg.max)
	}

	return out, nil
}

// Floats returns n uniform float64 values in [0, max).
func Floats(n int, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("Floats: %w: n=%d", ErrBadSize, n)
	}
	cfg := newConfig(opts...)
	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.rng.Float64() * float64(cfg.max)
	}

	return out, nil
}

// Sorted returns 0, 1, …, n-1.
func Sorted(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Sorted: %w: n=%d", ErrBadSize, n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out, nil
}

// Reversed returns n-1, …, 1, 0.
func Reversed(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Reversed: %w: n=%d", ErrBadSize, n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}

	return out, nil
}

// FewUnique returns n uniform values drawn from the k keys 0..k-1.
// Useful for exercising duplicate-heavy paths (three-way partitioning, stability).
func FewUnique(n, k int, opts ...Option) ([]int, error) {
	if n < 0 || k < 1 {
		return nil, fmt.Errorf("FewUnique: %w: n=%d k=%d", ErrBadSize, n, k)
	}
	cfg := newConfig(opts...)
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.rng.Intn(k)
	}

	return out, nil
}

// NearlySorted returns Sorted(n) after `swaps` random transpositions.
func NearlySorted(n, swaps int, opts ...Option) ([]int, error) {
	if swaps < 0 {
		return nil, fmt.Errorf("NearlySorted: %w: swaps=%d", ErrBadSize, swaps)
	}
	out, err := Sorted(n)
	if err != nil {
		return nil, fmt.Errorf("NearlySorted: %w", err)
	}
	if n < 2 {
		return out, nil
	}
	cfg := newConfig(opts...)
	for s := 0; s < swaps; s++ {
		i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// Sawtooth returns i mod period for i in 0..n-1: repeated ascending ramps,
// i.e. a stream of already-sorted runs with many duplicates.
func Sawtooth(n, period int) ([]int, error) {
	if n < 0 || period < 1 {
		return nil, fmt.Errorf("Sawtooth: %w: n=%d period=%d", ErrBadSize, n, period)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i % period
	}

	return out, nil
}

// Keyed pairs a value with its position in the generated input.
type Keyed struct {
	Value int // sort key
	Index int // original position, used to verify stability
}

// WithIndex wraps values into Keyed records, Index = position in values.
func WithIndex(values []int) []Keyed {
	out := make([]Keyed, len(values))
	for i, v := range values {
		out[i] = Keyed{Value: v, Index: i}
	}

	return out
}

// CompareKeyed orders Keyed records by Value only, ignoring Index.
func CompareKeyed(a, b Keyed) int {
	return cmp.Compare(a.Value, b.Value)
}

// IsStable reports whether every run of equal Value in sorted keeps
// ascending Index, i.e. the sort that produced it preserved input order.
func IsStable(sorted []Keyed) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Value == sorted[i-1].Value && sorted[i].Index < sorted[i-1].Index {
			return false
		}
	}

	return true
}

package sorting

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the element constraint of BucketSort.
type Number interface {
	constraints.Integer | constraints.Float
}

// BucketSort sorts integer and floating-point items by distributing them into buckets.
//
// Algorithm:
//  1. Reject NaN and ±Inf (they cannot be mapped onto a bucket).
//  2. k buckets: Options.Buckets if set via WithBuckets, else len(items);
//     k never exceeds len(items).
//  3. Map each value linearly from [min, max] onto bucket 0..k-1, keeping
//     input order inside each bucket.
//  4. Insertion-sort every bucket and concatenate them, walking buckets
//     upward for Ascending and downward for Descending.
//
// Complexity: O(n + k) expected for evenly spread input, O(n²) worst case
// (everything in one bucket); O(n + k) extra space.
// Stable: yes.
func BucketSort[T Number](items []T, opts ...Option) ([]T, error) {
	o, err := resolve(items, opts)
	if err != nil {
		return nil, err
	}
	for i, v := range items {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: non-finite value %v at index %d", ErrInvalidInput, f, i)
		}
	}
	n := len(items)
	if n < 2 {
		return items, nil
	}
	lo, hi := minMax(items)
	if lo == hi {
		return items, nil
	}

	before := precedes(cmp.Compare[T], o.Direction)
	// halves keep (v-lo) finite even for ±MaxFloat64
	base, span := float64(lo)/2, float64(hi)/2-float64(lo)/2
	if span <= 0 {
		// adjacent subnormals collapse to a zero span
		insertionSort(items, before)

		return items, nil
	}

	k := o.Buckets
	if k == 0 || k > n {
		k = n
	}
	buckets := make([][]T, k)
	for _, v := range items {
		idx := int((float64(v)/2 - base) / span * float64(k))
		if idx >= k {
			idx = k - 1
		}
		buckets[idx] = append(buckets[idx], v)
	}

	pos := 0
	for b := range buckets {
		if o.Direction == Descending {
			b = k - 1 - b
		}
		insertionSort(buckets[b], before)
		pos += copy(items[pos:], buckets[b])
	}

	return items, nil
}

package sorting

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxCountingRange bounds max-min+1 for CountingSort. Wider value ranges are
// rejected with ErrInvalidInput instead of allocating a huge count table.
const MaxCountingRange = 1 << 24

// CountingSort sorts integer items in place by counting occurrences.
//
// Algorithm:
//  1. Find min and max; k = max-min+1 (must not exceed MaxCountingRange).
//  2. Count occurrences of every value into counts[v-min].
//  3. Rewrite items by walking counts upward (Ascending) or downward (Descending).
//
// Complexity: O(n + k) time, O(k) extra space.
// Equal integers are indistinguishable, so stability is moot.
func CountingSort[T constraints.Integer](items []T, opts ...Option) ([]T, error) {
	o, err := resolve(items, opts)
	if err != nil {
		return nil, err
	}
	if len(items) < 2 {
		return items, nil
	}

	lo, hi := minMax(items)
	// two's-complement difference is exact for hi >= lo, signed or not
	span := uint64(hi) - uint64(lo)
	if span >= MaxCountingRange {
		return nil, fmt.Errorf("%w: value range %d exceeds counting limit %d", ErrInvalidInput, span+1, MaxCountingRange)
	}

	counts := make([]int, span+1)
	for _, v := range items {
		counts[uint64(v)-uint64(lo)]++
	}

	k := 0
	emit := func(idx int) {
		v := lo + T(idx)
		for c := counts[idx]; c > 0; c-- {
			items[k] = v
			k++
		}
	}
	if o.Direction == Descending {
		for idx := len(counts) - 1; idx >= 0; idx-- {
			emit(idx)
		}
	} else {
		for idx := range counts {
			emit(idx)
		}
	}

	return items, nil
}

package sorting

import "golang.org/x/exp/constraints"

// radixBits is the digit width of each LSD pass.
const radixBits = 8

// RadixSort sorts integer items with an LSD radix sort.
//
// Algorithm:
//  1. Map every element to an unsigned key of the element's bit width;
//     signed types get their sign bit flipped so keys order like values.
//  2. For each byte from least to most significant, counting-sort the keys
//     by that byte (digits are inverted for Descending). Passes where every
//     key shares the same digit are skipped.
//  3. Map keys back to values.
//
// Complexity: O(w·n) time with w = bytes per element, O(n) extra space.
// Stable: yes (each pass is a stable counting sort).
func RadixSort[T constraints.Integer](items []T, opts ...Option) ([]T, error) {
	o, err := resolve(items, opts)
	if err != nil {
		return nil, err
	}
	n := len(items)
	if n < 2 {
		return items, nil
	}

	width := bitWidth[T]()
	mask := ^uint64(0) >> (64 - width)
	var sign uint64
	if ^T(0) < 0 {
		sign = 1 << (width - 1)
	}

	keys := make([]uint64, n)
	for i, v := range items {
		keys[i] = (uint64(v) & mask) ^ sign
	}
	scratch := make([]uint64, n)
	desc := o.Direction == Descending

	for shift := 0; shift < width; shift += radixBits {
		if radixPass(keys, scratch, shift, desc) {
			keys, scratch = scratch, keys
		}
	}

	for i, k := range keys {
		items[i] = T(k ^ sign)
	}

	return items, nil
}

// radixPass stably distributes src into dst by the byte at shift.
// It reports false (and leaves dst untouched) when all keys share that byte.
func radixPass(src, dst []uint64, shift int, desc bool) bool {
	var counts [1 << radixBits]int
	for _, k := range src {
		counts[radixDigit(k, shift, desc)]++
	}
	for _, c := range counts {
		if c == len(src) {
			return false
		}
	}

	total := 0
	for d, c := range counts {
		counts[d] = total
		total += c
	}
	for _, k := range src {
		d := radixDigit(k, shift, desc)
		dst[counts[d]] = k
		counts[d]++
	}

	return true
}

func radixDigit(k uint64, shift int, desc bool) uint8 {
	d := uint8(k >> shift)
	if desc {
		return ^d
	}

	return d
}

// bitWidth returns the size of T in bits.
func bitWidth[T constraints.Integer]() int {
	w := 0
	for x := T(1); x != 0; x <<= 1 {
		w++
	}

	return w
}

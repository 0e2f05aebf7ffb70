package problems

import (
	"cmp"
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// ThreeSum returns every unique triplet [a, b, c] of values from nums with
// a + b + c == 0 and a ≤ b ≤ c, ordered lexicographically. nums is not modified.
//
// Algorithm:
//  1. Sort a copy of nums ascending.
//  2. For each distinct anchor work[i], scan j > i keeping the set of values
//     seen since the anchor; if -(work[i]+work[j]) was seen, record the triplet.
//  3. Deduplicate through a set of triplets and order the result.
//
// Pairs whose sum overflows int, or whose negated sum does not fit in an int,
// are skipped: no third int can bring them back to zero.
//
// Complexity: O(n²) time, O(n) extra space per anchor.
func ThreeSum(nums []int) [][3]int {
	if len(nums) < 3 {
		return [][3]int{}
	}
	work := slices.Clone(nums)
	slices.Sort(work)

	found := mapset.NewThreadUnsafeSet[[3]int]()
	for i := 0; i < len(work)-2; i++ {
		if i > 0 && work[i] == work[i-1] {
			continue
		}
		seen := mapset.NewThreadUnsafeSet[int]()
		for j := i + 1; j < len(work); j++ {
			if c, ok := complement(work[i], work[j]); ok && seen.Contains(c) {
				found.Add([3]int{work[i], c, work[j]})
			}
			seen.Add(work[j])
		}
	}

	out := found.ToSlice()
	slices.SortFunc(out, compareTriplets)

	return out
}

// complement returns -(a+b) and whether it is representable without overflow.
func complement(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) || sum == math.MinInt {
		return 0, false
	}

	return -sum, true
}

// compareTriplets orders triplets lexicographically.
func compareTriplets(a, b [3]int) int {
	for k := range a {
		if c := cmp.Compare(a[k], b[k]); c != 0 {
			return c
		}
	}

	return 0
}

package problems

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// TwoSum returns indices i < j such that nums[i] + nums[j] == target.
//
// A single left-to-right pass keeps value → first index; for each nums[j]
// the complement target-nums[j] is looked up among earlier elements, so no
// element is ever paired with itself. The first completing pair wins.
//
// Complexity: O(n) time, O(n) space.
// Errors: ErrNoSolution when no such pair exists.
func TwoSum(nums []int, target int) ([2]int, error) {
	first := make(map[int]int, len(nums))
	for j, v := range nums {
		if i, ok := first[target-v]; ok {
			return [2]int{i, j}, nil
		}
		if _, ok := first[v]; !ok {
			first[v] = j
		}
	}

	return [2]int{}, fmt.Errorf("%w: no pair sums to %d", ErrNoSolution, target)
}

// TwoSumAll returns one index pair per distinct value pair adding up to target,
// in discovery order. Each pair is (first index of the earlier value, index
// at which the pair completes). An empty, non-nil slice means no pair exists.
//
// Complexity: O(n) time, O(n) space.
func TwoSumAll(nums []int, target int) [][2]int {
	first := make(map[int]int, len(nums))
	pairs := mapset.NewThreadUnsafeSet[[2]int]()
	out := make([][2]int, 0)
	for j, v := range nums {
		c := target - v
		if i, ok := first[c]; ok {
			key := [2]int{min(c, v), max(c, v)}
			if !pairs.Contains(key) {
				pairs.Add(key)
				out = append(out, [2]int{i, j})
			}
		}
		if _, ok := first[v]; !ok {
			first[v] = j
		}
	}

	return out
}

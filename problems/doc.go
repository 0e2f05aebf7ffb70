// Package problems collects small, self-contained solutions to classic
// interview problems over slices and strings.
//
//	TwoSum           : indices of two elements adding up to a target (hash map, O(n))
//	TwoSumAll        : every distinct value pair adding up to a target
//	ThreeSum         : all unique triplets summing to zero (O(n²))
//	LongestPalindrome: longest palindromic substring (expand around center, O(n²))
//
// Every function is pure: inputs are never mutated and no state is kept
// between calls.
package problems

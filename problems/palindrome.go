package problems

import "unicode/utf8"

// LongestPalindrome returns the longest palindromic substring of s.
// Runes, not bytes, are compared, so multi-byte characters are never split.
// An invalid UTF-8 byte counts as a rune of its own and only matches the
// same byte, so the result is always a substring of s.
// When several palindromes share the maximum length the leftmost wins;
// the empty string yields "".
//
// Every rune and every gap between two runes is tried as a center and
// expanded while both ends match.
//
// Complexity: O(n²) time, O(n) space for the rune offsets.
func LongestPalindrome(s string) string {
	offsets := runeOffsets(s)
	n := len(offsets) - 1
	if n < 2 {
		return s
	}
	start, length := 0, 1
	for c := 0; c < n; c++ {
		for _, r := range [2]int{c, c + 1} { // odd, even
			l, h := expand(s, offsets, c, r)
			if h-l+1 > length {
				start, length = l, h-l+1
			}
		}
	}

	return s[offsets[start]:offsets[start+length]]
}

// runeOffsets returns the byte offset of every rune in s followed by len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for off := 0; off < len(s); {
		offsets = append(offsets, off)
		_, w := utf8.DecodeRuneInString(s[off:])
		off += w
	}

	return append(offsets, len(s))
}

// expand grows the rune range [lo, hi] outward while both ends hold the same
// bytes and returns the widest palindromic bounds reached (hi < lo when even
// the seed does not match).
func expand(s string, offsets []int, lo, hi int) (int, int) {
	n := len(offsets) - 1
	for lo >= 0 && hi < n && s[offsets[lo]:offsets[lo+1]] == s[offsets[hi]:offsets[hi+1]] {
		lo--
		hi++
	}

	return lo + 1, hi - 1
}

package sorting

// Test-only accessors for unexported helpers.

var (
	HeapParentForTest = heapParent
	HeapLeftForTest   = heapLeft
	HeapRightForTest  = heapRight
	BitWidthInt8      = bitWidth[int8]
	BitWidthUint32    = bitWidth[uint32]
	BitWidthInt       = bitWidth[int]
)

// MedianOfThreeForTest exposes medianOfThree over ints in ascending order.
func MedianOfThreeForTest(items []int, a, b, c int) int {
	return medianOfThree(items, a, b, c, func(x, y int) bool { return x < y })
}

package sorting_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlsort/dataset"
	"github.com/katalvlaran/lvlsort/sorting"
)

// intSort is the common shape of every int entry point.
type intSort func([]int, ...sorting.Option) ([]int, error)

// allSorts lists every routine that accepts []int.
var allSorts = []struct {
	name string
	fn   intSort
}{
	{"Insertion", sorting.InsertionSort[int]},
	{"Selection", sorting.SelectionSort[int]},
	{"Bubble", sorting.BubbleSort[int]},
	{"Merge", sorting.MergeSort[int]},
	{"Heap", sorting.HeapSort[int]},
	{"Quick", sorting.QuickSort[int]},
	{"Counting", sorting.CountingSort[int]},
	{"Radix", sorting.RadixSort[int]},
	{"Bucket", sorting.BucketSort[int]},
}

// keyedSort is the shape of the comparator variants used for stability checks.
type keyedSort func([]dataset.Keyed, func(a, b dataset.Keyed) int, ...sorting.Option) ([]dataset.Keyed, error)

var stableSorts = []struct {
	name string
	fn   keyedSort
}{
	{"Insertion", sorting.InsertionSortFunc[dataset.Keyed]},
	{"Bubble", sorting.BubbleSortFunc[dataset.Keyed]},
	{"Merge", sorting.MergeSortFunc[dataset.Keyed]},
}

var unstableSorts = []struct {
	name string
	fn   keyedSort
}{
	{"Selection", sorting.SelectionSortFunc[dataset.Keyed]},
	{"Heap", sorting.HeapSortFunc[dataset.Keyed]},
	{"Quick", sorting.QuickSortFunc[dataset.Keyed]},
}

// reference returns a sorted copy of xs in direction d using the standard library.
func reference(xs []int, d sorting.Direction) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	if d == sorting.Descending {
		slices.Reverse(out)
	}

	return out
}

// fixtures returns a named set of inputs of length n covering the usual shapes.
func fixtures(t testing.TB, n int) map[string][]int {
	t.Helper()
	random, err := dataset.Random(n, dataset.WithSeed(int64(n)+1))
	require.NoError(t, err)
	negative, err := dataset.Random(n, dataset.WithSeed(int64(n)+2), dataset.WithMax(200))
	require.NoError(t, err)
	for i := range negative {
		negative[i] -= 100
	}
	sorted, _ := dataset.Sorted(n)
	reversed, _ := dataset.Reversed(n)
	few, _ := dataset.FewUnique(n, 3, dataset.WithSeed(int64(n)+3))
	nearly, _ := dataset.NearlySorted(n, n/10+1, dataset.WithSeed(int64(n)+4))
	saw, _ := dataset.Sawtooth(n, 7)

	return map[string][]int{
		"random":   random,
		"negative": negative,
		"sorted":   sorted,
		"reversed": reversed,
		"few":      few,
		"nearly":   nearly,
		"sawtooth": saw,
	}
}

// SortingSuite runs the shared contract against every algorithm.
type SortingSuite struct {
	suite.Suite
}

// TestOrderAndPermutation: output equals the reference sort, so it is both
// ordered and a permutation of the input; length and identity are preserved.
func (s *SortingSuite) TestOrderAndPermutation() {
	for _, alg := range allSorts {
		for _, n := range []int{0, 1, 2, 3, 17, 100, 257} {
			for shape, input := range fixtures(s.T(), n) {
				for _, d := range []sorting.Direction{sorting.Ascending, sorting.Descending} {
					name := fmt.Sprintf("%s/%s/n=%d/%v", alg.name, shape, n, d)
					xs := slices.Clone(input)
					got, err := alg.fn(xs, sorting.WithDirection(d))
					s.Require().NoError(err, name)
					s.Equal(reference(input, d), got, name)
					s.Len(got, n, name)
					s.True(sorting.IsSorted(got, d), name)
					if n > 0 {
						s.Same(&xs[0], &got[0], "%s: must sort in place", name)
					}
				}
			}
		}
	}
}

// TestIdempotence: sorting a sorted slice again changes nothing.
func (s *SortingSuite) TestIdempotence() {
	input, _ := dataset.Random(64, dataset.WithSeed(99))
	for _, alg := range allSorts {
		for _, d := range []sorting.Direction{sorting.Ascending, sorting.Descending} {
			once, err := alg.fn(slices.Clone(input), sorting.WithDirection(d))
			s.Require().NoError(err)
			twice, err := alg.fn(slices.Clone(once), sorting.WithDirection(d))
			s.Require().NoError(err)
			s.Equal(once, twice, "%s/%v", alg.name, d)
		}
	}
}

// TestStability: equal keys keep their input order for the stable routines.
func (s *SortingSuite) TestStability() {
	values, _ := dataset.FewUnique(200, 5, dataset.WithSeed(5))
	for _, alg := range stableSorts {
		for _, d := range []sorting.Direction{sorting.Ascending, sorting.Descending} {
			got, err := alg.fn(dataset.WithIndex(values), dataset.CompareKeyed, sorting.WithDirection(d))
			s.Require().NoError(err)
			s.True(sorting.IsSortedFunc(got, dataset.CompareKeyed, d), "%s/%v order", alg.name, d)
			s.True(dataset.IsStable(got), "%s/%v must be stable", alg.name, d)
		}
	}
	// the unstable routines still order correctly through a comparator
	for _, alg := range unstableSorts {
		got, err := alg.fn(dataset.WithIndex(values), dataset.CompareKeyed)
		s.Require().NoError(err)
		s.True(sorting.IsSortedFunc(got, dataset.CompareKeyed, sorting.Ascending), alg.name)
	}
}

// TestEmptyIsValid: an empty, non-nil slice sorts to a no-op.
func (s *SortingSuite) TestEmptyIsValid() {
	for _, alg := range allSorts {
		got, err := alg.fn([]int{})
		s.NoError(err, alg.name)
		s.NotNil(got, alg.name)
		s.Empty(got, alg.name)
	}
}

// TestErrors: nil input and invalid directions are rejected before mutation.
func (s *SortingSuite) TestErrors() {
	for _, alg := range allSorts {
		_, err := alg.fn(nil)
		s.ErrorIs(err, sorting.ErrInvalidInput, "%s: nil slice", alg.name)

		xs := []int{2, 1}
		got, err := alg.fn(xs, sorting.WithDirection(sorting.Direction(7)))
		s.ErrorIs(err, sorting.ErrInvalidDirection, "%s: bad direction", alg.name)
		s.Nil(got, alg.name)
		s.Equal([]int{2, 1}, xs, "%s: input must be untouched on error", alg.name)

		// nil wins over a bad direction
		_, err = alg.fn(nil, sorting.WithDirection(-1))
		s.ErrorIs(err, sorting.ErrInvalidInput, alg.name)
	}
}

func TestSortingSuite(t *testing.T) {
	suite.Run(t, new(SortingSuite))
}

// TestScenarios pins the concrete documented examples.
func TestScenarios(t *testing.T) {
	got, err := sorting.InsertionSort([]int{5, 3, 1, 4, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, got)

	got, err = sorting.InsertionSort([]int{5, 3, 1, 4, 2}, sorting.WithDirection(sorting.Descending))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, got)

	got, err = sorting.SelectionSort([]int{2, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2}, got)

	got, err = sorting.BubbleSort([]int{1})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	got, err = sorting.MergeSort([]int{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	_, err = sorting.InsertionSort[int](nil)
	assert.ErrorIs(t, err, sorting.ErrInvalidInput)

	_, err = sorting.InsertionSort([]int{1, 2}, sorting.WithDirection(sorting.Direction(2)))
	assert.ErrorIs(t, err, sorting.ErrInvalidDirection)
}

// TestFuncVariants_NilCompare verifies the comparator variants reject a nil comparator.
func TestFuncVariants_NilCompare(t *testing.T) {
	fns := map[string]func([]int, func(a, b int) int, ...sorting.Option) ([]int, error){
		"Insertion": sorting.InsertionSortFunc[int],
		"Selection": sorting.SelectionSortFunc[int],
		"Bubble":    sorting.BubbleSortFunc[int],
		"Merge":     sorting.MergeSortFunc[int],
		"Heap":      sorting.HeapSortFunc[int],
		"Quick":     sorting.QuickSortFunc[int],
	}
	for name, fn := range fns {
		xs := []int{3, 1, 2}
		_, err := fn(xs, nil)
		assert.ErrorIs(t, err, sorting.ErrInvalidInput, name)
		assert.Equal(t, []int{3, 1, 2}, xs, name)
	}
}

// TestFuncVariants_CustomOrder sorts strings by length through a comparator.
func TestFuncVariants_CustomOrder(t *testing.T) {
	byLen := func(a, b string) int { return len(a) - len(b) }
	words := []string{"ccc", "a", "bb", "dddd", "e"}
	got, err := sorting.MergeSortFunc(words, byLen, sorting.WithDirection(sorting.Descending))
	require.NoError(t, err)
	assert.Equal(t, []string{"dddd", "ccc", "bb", "a", "e"}, got, "stable: a stays before e")
}

// TestOrdered_Strings checks that the ordered variants work on non-numeric types.
func TestOrdered_Strings(t *testing.T) {
	for _, fn := range []func([]string, ...sorting.Option) ([]string, error){
		sorting.InsertionSort[string], sorting.SelectionSort[string], sorting.BubbleSort[string],
		sorting.MergeSort[string], sorting.HeapSort[string], sorting.QuickSort[string],
	} {
		got, err := fn([]string{"pear", "apple", "fig", "banana"})
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "banana", "fig", "pear"}, got)
	}
}

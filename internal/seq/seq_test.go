package seq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaxMin verifies the running-accumulator scans and their empty-input error.
func TestMaxMin(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		wantMax int
		wantMin int
		wantErr bool
	}{
		{"single", []int{7}, 7, 7, false},
		{"mixed", []int{3, -1, 9, 4}, 9, -1, false},
		{"duplicates", []int{2, 2, 2}, 2, 2, false},
		{"empty", nil, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMax, err := Max(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmpty)
				_, err = Min(tt.input)
				assert.ErrorIs(t, err, ErrEmpty)
				_, _, err = MinMax(tt.input)
				assert.ErrorIs(t, err, ErrEmpty)
				return
			}
			require.NoError(t, err)
			gotMin, err := Min(tt.input)
			require.NoError(t, err)
			lo, hi, err := MinMax(tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.wantMax, gotMax)
			assert.Equal(t, tt.wantMin, gotMin)
			assert.Equal(t, tt.wantMin, lo)
			assert.Equal(t, tt.wantMax, hi)
		})
	}
}

func TestMax_Strings(t *testing.T) {
	got, err := Max([]string{"pear", "apple", "zucchini"})
	require.NoError(t, err)
	assert.Equal(t, "zucchini", got)
}

func TestSumProduct(t *testing.T) {
	assert.Equal(t, 0, Sum([]int{}))
	assert.Equal(t, 1, Product([]int{}))
	assert.Equal(t, 10, Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, 24, Product([]int{1, 2, 3, 4}))
	assert.InDelta(t, 0.6, Sum([]float64{0.1, 0.2, 0.3}), 1e-9)
}

func TestRunningMax(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 3, 3, 4, 4}, RunningMax([]int{1, 2, 3, 2, 3, 4, 2}))
	assert.Empty(t, RunningMax([]int{}))
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, IndexOf([]string{"a", "b", "b"}, "b"))
	assert.Equal(t, -1, IndexOf([]string{"a"}, "z"))
	assert.Equal(t, -1, IndexOf(nil, 0))
}

func TestLastDescent(t *testing.T) {
	assert.Equal(t, 3, LastDescent([]int{1, 2, 4, 3, 5}))
	assert.Equal(t, -1, LastDescent([]int{1, 2, 3}))
	assert.Equal(t, -1, LastDescent([]int{}))
}

func TestMonotonic(t *testing.T) {
	assert.True(t, Monotonic([]int{1, 2, 4, 20}))
	assert.True(t, Monotonic([]int{4, 1, 0, -10}))
	assert.True(t, Monotonic([]int{5, 5, 5}))
	assert.True(t, Monotonic([]int{}))
	assert.False(t, Monotonic([]int{1, 20, 4, 10}))
}

func TestPairsSumToZero(t *testing.T) {
	assert.True(t, PairsSumToZero([]int{2, 4, -5, 3, 5, 7}))
	assert.False(t, PairsSumToZero([]int{1, 3, 5, 0}))
	// Zero needs two separate zeros.
	assert.True(t, PairsSumToZero([]int{0, 0}))
	assert.False(t, PairsSumToZero([]int{1}))
}

func TestExtremeSigned(t *testing.T) {
	neg, negOK, pos, posOK := ExtremeSigned([]int{2, 4, 1, 3, 5, 7})
	assert.False(t, negOK)
	assert.True(t, posOK)
	assert.Equal(t, 0, neg)
	assert.Equal(t, 1, pos)

	neg, negOK, _, posOK = ExtremeSigned([]int{-6, -4, -4, -3, 0})
	assert.True(t, negOK)
	assert.False(t, posOK)
	assert.Equal(t, -3, neg)
}

// TestKthSelection covers both ends of the 1-based range plus the error cases.
func TestKthSelection(t *testing.T) {
	xs := []int{5, 1, 4, 2, 3}

	got, err := KthSmallest(xs, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = KthSmallest(xs, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = KthLargest(xs, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = KthSmallest(xs, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = KthLargest(xs, 6)
	assert.ErrorIs(t, err, ErrOutOfRange)

	// Input order must survive the internal sort.
	assert.Equal(t, []int{5, 1, 4, 2, 3}, xs)
}

func TestSecondSmallestLargest(t *testing.T) {
	tests := []struct {
		name       string
		input      []int
		wantSmall  int
		wantLarge  int
		wantExists bool
	}{
		{"ascending", []int{1, 2, 3, 4, 5}, 2, 4, true},
		{"shuffled", []int{5, 1, 4, 3, 2}, 2, 4, true},
		{"duplicates ignored", []int{1, 1, 1, 2}, 2, 1, true},
		{"single distinct", []int{1, 1}, 0, 0, false},
		{"empty", []int{}, 0, 0, false},
		{"negatives", []int{-35, 34, 12, -45}, -35, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			small, ok := SecondSmallest(tt.input)
			assert.Equal(t, tt.wantExists, ok)
			large, ok2 := SecondLargest(tt.input)
			assert.Equal(t, tt.wantExists, ok2)
			if tt.wantExists {
				assert.Equal(t, tt.wantSmall, small)
				assert.Equal(t, tt.wantLarge, large)
			}
		})
	}
}

func TestMedian(t *testing.T) {
	got, err := Median([]int{3, 1, 2, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = Median([]int{-10, 4, 6, 1000, 10, 20})
	require.NoError(t, err)
	assert.Equal(t, 8.0, got)

	got, err = Median([]float64{1.5})
	require.NoError(t, err)
	assert.Equal(t, 1.5, got)

	_, err = Median([]int{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestUniqueDedupeCommon(t *testing.T) {
	assert.Equal(t, []int{0, 2, 3, 5, 9, 123}, Unique([]int{5, 3, 5, 2, 3, 3, 9, 0, 123}))
	assert.Equal(t, []int{5, 3, 2, 9, 0, 123}, DedupeStable([]int{5, 3, 5, 2, 3, 3, 9, 0, 123}))
	assert.Equal(t, []int{1, 5, 653}, Common([]int{1, 4, 3, 34, 653, 2, 5}, []int{5, 7, 1, 5, 9, 653, 121}))
	assert.Empty(t, Common([]int{1, 2}, []int{3}))
}

func TestSortByDigitSum(t *testing.T) {
	assert.Equal(t,
		[]int{-1, -11, 1, -12, 11},
		SortByDigitSum([]int{1, 11, -1, -11, -12}))
	assert.Empty(t, SortByDigitSum(nil))
	assert.Equal(t,
		[]int{-9, 1, math.MinInt},
		SortByDigitSum([]int{math.MinInt, 1, -9}))
}

func TestFrequenciesAndMode(t *testing.T) {
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, Frequencies([]string{"a", "b", "a"}))

	got, err := Mode([]int{4, 1, 4, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, got, "ties go to the smallest value")

	got, err = Mode([]int{7, 7, 2})
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = Mode([]int{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSearchFrequent(t *testing.T) {
	assert.Equal(t, 2, SearchFrequent([]int{4, 1, 2, 2, 3, 1}))
	assert.Equal(t, 3, SearchFrequent([]int{1, 2, 2, 3, 3, 3, 4, 4, 4}))
	assert.Equal(t, -1, SearchFrequent([]int{5, 5, 4, 4, 4}))
	assert.Equal(t, -1, SearchFrequent(nil))
}

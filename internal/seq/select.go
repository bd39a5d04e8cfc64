package seq

import (
	"cmp"
	"slices"

	"github.com/shinji-kodama/drills/internal/numeric"
)

// sortedCopy returns a sorted copy so callers never see their input reordered.
func sortedCopy[T cmp.Ordered](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}

// KthSmallest returns the k-th smallest element (1-based, duplicates counted).
func KthSmallest[T cmp.Ordered](xs []T, k int) (T, error) {
	var zero T
	if k < 1 || k > len(xs) {
		return zero, ErrOutOfRange
	}
	return sortedCopy(xs)[k-1], nil
}

// KthLargest returns the k-th largest element (1-based, duplicates counted).
func KthLargest[T cmp.Ordered](xs []T, k int) (T, error) {
	var zero T
	if k < 1 || k > len(xs) {
		return zero, ErrOutOfRange
	}
	return sortedCopy(xs)[len(xs)-k], nil
}

// SecondSmallest returns the second smallest distinct value.
// ok is false when xs holds fewer than two distinct values.
func SecondSmallest[T cmp.Ordered](xs []T) (T, bool) {
	u := Unique(xs)
	if len(u) < 2 {
		var zero T
		return zero, false
	}
	return u[1], true
}

// SecondLargest returns the second largest distinct value.
// ok is false when xs holds fewer than two distinct values.
func SecondLargest[T cmp.Ordered](xs []T) (T, bool) {
	u := Unique(xs)
	if len(u) < 2 {
		var zero T
		return zero, false
	}
	return u[len(u)-2], true
}

// Median returns the middle value of xs, averaging the two middle values
// when the length is even.
func Median[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	s := sortedCopy(xs)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return float64(s[mid]), nil
	}
	return (float64(s[mid-1]) + float64(s[mid])) / 2, nil
}

// Unique returns the distinct values of xs in ascending order.
func Unique[T cmp.Ordered](xs []T) []T {
	return slices.Compact(sortedCopy(xs))
}

// DedupeStable returns the distinct values of xs in first-seen order.
func DedupeStable[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Common returns the sorted distinct values present in both a and b.
func Common[T cmp.Ordered](a, b []T) []T {
	inB := make(map[T]struct{}, len(b))
	for _, x := range b {
		inB[x] = struct{}{}
	}
	out := make([]T, 0)
	for _, x := range Unique(a) {
		if _, ok := inB[x]; ok {
			out = append(out, x)
		}
	}
	return out
}

// SortByDigitSum returns xs stably sorted by signed digit sum, where the
// leading digit of a negative number counts as negative (-12 → -1+2 = 1).
func SortByDigitSum(xs []int) []int {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(numeric.SignedDigitSum(a), numeric.SignedDigitSum(b))
	})
	return out
}

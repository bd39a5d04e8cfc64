package seq

import (
	"cmp"
	"errors"
)

// ErrEmpty is returned when a result is undefined for an empty sequence
// (the maximum of nothing, the median of nothing).
var ErrEmpty = errors.New("empty sequence")

// ErrOutOfRange is returned when a 1-based position falls outside the sequence.
var ErrOutOfRange = errors.New("position out of range")

// Number is the set of element types the arithmetic accumulators accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Max returns the largest element of xs.
func Max[T cmp.Ordered](xs []T) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrEmpty
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if x > best {
			best = x
		}
	}
	return best, nil
}

// Min returns the smallest element of xs.
func Min[T cmp.Ordered](xs []T) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrEmpty
	}
	best := xs[0]
	for _, x := range xs[1:] {
		if x < best {
			best = x
		}
	}
	return best, nil
}

// MinMax returns the smallest and largest elements of xs in a single scan.
func MinMax[T cmp.Ordered](xs []T) (lo, hi T, err error) {
	if len(xs) == 0 {
		return lo, hi, ErrEmpty
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, nil
}

// Sum adds every element. The sum of an empty sequence is 0.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Product multiplies every element. The product of an empty sequence is 1.
func Product[T Number](xs []T) T {
	var total T = 1
	for _, x := range xs {
		total *= x
	}
	return total
}

// RunningMax returns the prefix maxima of xs: out[i] is the largest of xs[:i+1].
func RunningMax[T cmp.Ordered](xs []T) []T {
	out := make([]T, 0, len(xs))
	for i, x := range xs {
		if i > 0 && out[i-1] > x {
			x = out[i-1]
		}
		out = append(out, x)
	}
	return out
}

// IndexOf returns the first index of x in xs, or -1.
func IndexOf[T comparable](xs []T, x T) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

// LastDescent returns the largest index i such that xs[i] < xs[i-1].
// It returns -1 when the sequence never decreases.
func LastDescent[T cmp.Ordered](xs []T) int {
	idx := -1
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			idx = i
		}
	}
	return idx
}

// Monotonic reports whether xs is entirely non-decreasing or entirely
// non-increasing. Sequences shorter than two elements are monotonic.
func Monotonic[T cmp.Ordered](xs []T) bool {
	up, down := true, true
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1] {
			up = false
		}
		if xs[i] > xs[i-1] {
			down = false
		}
	}
	return up || down
}

// PairsSumToZero reports whether two elements at distinct positions sum to zero.
func PairsSumToZero(xs []int) bool {
	seen := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		if _, ok := seen[-x]; ok {
			return true
		}
		seen[x] = struct{}{}
	}
	return false
}

// ExtremeSigned returns the largest negative and the smallest positive
// element of xs. Zero counts as neither. Each result carries its own ok flag.
func ExtremeSigned(xs []int) (largestNeg int, negOK bool, smallestPos int, posOK bool) {
	for _, x := range xs {
		switch {
		case x < 0 && (!negOK || x > largestNeg):
			largestNeg, negOK = x, true
		case x > 0 && (!posOK || x < smallestPos):
			smallestPos, posOK = x, true
		}
	}
	return largestNeg, negOK, smallestPos, posOK
}

package seq

import "cmp"

// Frequencies counts how often each value appears in xs.
func Frequencies[T comparable](xs []T) map[T]int {
	counts := make(map[T]int, len(xs))
	for _, x := range xs {
		counts[x]++
	}
	return counts
}

// Mode returns the most frequent value. Ties go to the smallest value.
func Mode[T cmp.Ordered](xs []T) (T, error) {
	var best T
	if len(xs) == 0 {
		return best, ErrEmpty
	}
	bestCount := 0
	for v, n := range Frequencies(xs) {
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	return best, nil
}

// SearchFrequent returns the greatest positive integer whose frequency in
// xs is at least the integer itself, or -1 when none qualifies.
func SearchFrequent(xs []int) int {
	ans := -1
	for v, n := range Frequencies(xs) {
		if v > 0 && n >= v && v > ans {
			ans = v
		}
	}
	return ans
}

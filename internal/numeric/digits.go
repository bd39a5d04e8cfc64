package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNegative is returned when an operation is only defined for n >= 0.
	ErrNegative = errors.New("negative input")

	// ErrNonPositive is returned when an operation is only defined for n >= 1.
	ErrNonPositive = errors.New("non-positive input")

	// ErrInvalidBase is returned for a base outside 2-36.
	ErrInvalidBase = errors.New("invalid base")

	// ErrOutOfRange is returned when a value falls outside the supported range.
	ErrOutOfRange = errors.New("value out of range")
)

const (
	minBase = 2
	maxBase = 36
)

// abs returns |n| as a uint, which also holds |math.MinInt|.
func abs(n int) uint {
	u := uint(n)
	if n < 0 {
		u = -u
	}
	return u
}

// DigitSum returns the sum of the decimal digits of |n|.
func DigitSum(n int) int {
	return digitSum(abs(n))
}

func digitSum(u uint) int {
	sum := 0
	for u > 0 {
		sum += int(u % 10)
		u /= 10
	}
	return sum
}

// SignedDigitSum is DigitSum where the leading digit of a negative number
// counts as negative: -123 gives -1 + 2 + 3 = 4.
func SignedDigitSum(n int) int {
	if n >= 0 {
		return DigitSum(n)
	}
	u := abs(n)
	lead := u
	for lead >= 10 {
		lead /= 10
	}
	return digitSum(u) - 2*int(lead)
}

// BinaryDigitSum returns the decimal digit sum of n rendered in base 2.
// 1000 has digit sum 1, so the result is "1"; 150 gives 6, so "110".
func BinaryDigitSum(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("binary digit sum of %d: %w", n, ErrNegative)
	}
	return strconv.FormatInt(int64(DigitSum(n)), 2), nil
}

// ChangeBase renders x in the given base (2-36). Negative values keep
// their sign. Digits above 9 use lowercase letters.
func ChangeBase(x, base int) (string, error) {
	if base < minBase || base > maxBase {
		return "", fmt.Errorf("base %d: %w (valid: %d-%d)", base, ErrInvalidBase, minBase, maxBase)
	}
	return strconv.FormatInt(int64(x), base), nil
}

// CircularShift rotates the decimal digits of |x| right by shift places and
// returns them as a string. When shift exceeds the digit count the digits
// are reversed instead.
func CircularShift(x, shift int) string {
	s := strconv.FormatUint(uint64(abs(x)), 10)
	if shift < 0 {
		shift = 0
	}
	if shift > len(s) {
		var b strings.Builder
		b.Grow(len(s))
		for i := len(s) - 1; i >= 0; i-- {
			b.WriteByte(s[i])
		}
		return b.String()
	}
	cut := len(s) - shift
	return s[cut:] + s[:cut]
}

// IsPerfectSquare reports whether n is the square of an integer.
func IsPerfectSquare(n int) bool {
	if n < 0 {
		return false
	}
	r := isqrt(n)
	return r*r == n
}

// isqrt is the integer floor square root, computed with Newton's method
// to avoid float rounding on large inputs.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

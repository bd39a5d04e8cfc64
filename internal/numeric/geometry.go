package numeric

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalidTriangle is returned when three sides violate the triangle inequality.
var ErrInvalidTriangle = errors.New("sides do not form a triangle")

// relTolerance bounds the relative error accepted by the Pythagorean check.
const relTolerance = 1e-9

// IsRightTriangle reports whether sides a, b, c (in any order) form a
// right triangle. Any non-positive side yields false.
func IsRightTriangle(a, b, c float64) bool {
	if a <= 0 || b <= 0 || c <= 0 {
		return false
	}
	s := []float64{a, b, c}
	slices.Sort(s)
	lhs := s[0]*s[0] + s[1]*s[1]
	rhs := s[2] * s[2]
	return math.Abs(lhs-rhs) <= relTolerance*rhs
}

// TriangleArea returns the area of the triangle with sides a, b, c by
// Heron's formula, rounded to two decimal places.
func TriangleArea(a, b, c float64) (float64, error) {
	if a <= 0 || b <= 0 || c <= 0 || a+b <= c || a+c <= b || b+c <= a {
		return 0, fmt.Errorf("sides %g, %g, %g: %w", a, b, c, ErrInvalidTriangle)
	}
	p := (a + b + c) / 2
	area := math.Sqrt(p * (p - a) * (p - b) * (p - c))
	return math.Round(area*100) / 100, nil
}

package numeric

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrStepLimit is returned when a simulation does not settle within its step budget.
var ErrStepLimit = errors.New("step limit reached")

// collatzStepLimit bounds Collatz so a pathological input cannot spin forever.
const collatzStepLimit = 10_000

// Collatz returns the Collatz sequence starting at n and ending at 1,
// both inclusive.
func Collatz(n int) ([]int, error) {
	return collatz(n, collatzStepLimit)
}

// collatz is Collatz with an explicit step budget.
func collatz(n, limit int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("collatz(%d): %w", n, ErrNonPositive)
	}
	out := []int{n}
	for steps := 0; n != 1; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("collatz: %w after %d steps", ErrStepLimit, limit)
		}
		if n%2 == 0 {
			n /= 2
		} else {
			m, ok := checkedMul(n, 3)
			if !ok || m > math.MaxInt-1 {
				return nil, fmt.Errorf("collatz: 3*%d+1: %w", n, ErrOverflow)
			}
			n = m + 1
		}
		out = append(out, n)
	}
	return out, nil
}

// OddCollatz returns the odd members of the Collatz sequence from n in
// ascending order, without duplicates.
func OddCollatz(n int) ([]int, error) {
	s, err := Collatz(n)
	if err != nil {
		return nil, err
	}
	odd := make([]int, 0, len(s))
	for _, v := range s {
		if v%2 == 1 {
			odd = append(odd, v)
		}
	}
	slices.Sort(odd)
	return slices.Compact(odd), nil
}

// Derivative returns the derivative of the polynomial whose coefficients
// are given in ascending order of power: xs[0] + xs[1]*x + xs[2]*x^2 + ...
// The derivative of a constant is the empty polynomial.
func Derivative(coeffs []float64) []float64 {
	if len(coeffs) <= 1 {
		return []float64{}
	}
	out := make([]float64, len(coeffs)-1)
	for i := 1; i < len(coeffs); i++ {
		out[i-1] = float64(i) * coeffs[i]
	}
	return out
}

// Evaluate computes the polynomial at x using Horner's rule.
func Evaluate(coeffs []float64, x float64) float64 {
	var acc float64
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}
	return acc
}

// Factorial returns n!, failing with ErrOverflow once the result leaves int.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial(%d): %w", n, ErrNegative)
	}
	acc := 1
	for i := 2; i <= n; i++ {
		var ok bool
		if acc, ok = checkedMul(acc, i); !ok {
			return 0, fmt.Errorf("factorial(%d): %w", n, ErrOverflow)
		}
	}
	return acc, nil
}

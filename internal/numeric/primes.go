package numeric

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a result does not fit the return type.
var ErrOverflow = errors.New("result overflows")

// maxFibonacciN is the largest n whose Fibonacci number fits a uint64.
const maxFibonacciN = 93

// IsPrime reports whether n is prime, by trial division over 6k±1.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// PrimeFactors returns the prime factors of n in ascending order, with
// multiplicity. PrimeFactors(1) is empty.
func PrimeFactors(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("prime factors of %d: %w", n, ErrNonPositive)
	}
	factors := make([]int, 0)
	for p := 2; p <= n/p; p++ {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors, nil
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
// ErrOverflow is returned when the divisor is |math.MinInt|, which has no
// positive int form.
func GCD(a, b int) (int, error) {
	g := gcd(abs(a), abs(b))
	if g > math.MaxInt {
		return 0, fmt.Errorf("gcd(%d, %d): %w", a, b, ErrOverflow)
	}
	return int(g), nil
}

func gcd(a, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|. LCM(0, x) is 0.
// ErrOverflow is returned when the multiple does not fit an int.
func LCM(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	ua, ub := abs(a), abs(b)
	l := ua / gcd(ua, ub)
	if l > math.MaxInt/ub {
		return 0, fmt.Errorf("lcm(%d, %d): %w", a, b, ErrOverflow)
	}
	return int(l * ub), nil
}

// Fibonacci returns F(n) with F(0) = 0 and F(1) = 1.
func Fibonacci(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("fibonacci(%d): %w", n, ErrNegative)
	}
	if n > maxFibonacciN {
		return 0, fmt.Errorf("fibonacci(%d) exceeds uint64 (max n = %d): %w", n, maxFibonacciN, ErrOverflow)
	}
	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a, nil
}

// checkedMul multiplies two non-negative ints, reporting overflow.
func checkedMul(a, b int) (int, bool) {
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}

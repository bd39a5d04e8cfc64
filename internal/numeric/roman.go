package numeric

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoman is returned for a string that is not a canonical Roman numeral.
var ErrInvalidRoman = errors.New("invalid roman numeral")

const (
	minRoman = 1
	maxRoman = 3999
)

// romanTable is ordered from largest to smallest value, subtractive pairs included.
var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman renders n (1-3999) as an uppercase Roman numeral.
func ToRoman(n int) (string, error) {
	if n < minRoman || n > maxRoman {
		return "", fmt.Errorf("roman %d: %w (valid: %d-%d)", n, ErrOutOfRange, minRoman, maxRoman)
	}
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String(), nil
}

// FromRoman parses a Roman numeral, case-insensitively. Only canonical
// forms are accepted: "IIII" and "IC" are rejected.
func FromRoman(s string) (int, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	if u == "" {
		return 0, fmt.Errorf("roman %q: %w", s, ErrInvalidRoman)
	}
	rest, total := u, 0
	for _, r := range romanTable {
		for strings.HasPrefix(rest, r.symbol) {
			total += r.value
			rest = rest[len(r.symbol):]
		}
	}
	if rest != "" {
		return 0, fmt.Errorf("roman %q: %w", s, ErrInvalidRoman)
	}
	// Round-tripping rejects non-canonical spellings the greedy scan accepted.
	if canon, err := ToRoman(total); err != nil || canon != u {
		return 0, fmt.Errorf("roman %q: %w", s, ErrInvalidRoman)
	}
	return total, nil
}

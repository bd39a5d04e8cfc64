package text

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrMalformedPair is returned when a key/value pair lacks its separator.
	ErrMalformedPair = errors.New("malformed key/value pair")

	// ErrEmptySeparator is returned when a delimiter argument is empty.
	ErrEmptySeparator = errors.New("separator must not be empty")
)

var (
	intPattern  = regexp.MustCompile(`[-+]?\d+`)
	datePattern = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{4})$`)

	// fileNamePattern: a letter-led stem, one dot, an allowed extension.
	fileNamePattern = regexp.MustCompile(`^[A-Za-z][^.]*\.(txt|exe|dll)$`)
	spaceRunPattern = regexp.MustCompile(` {3,}`)
)

// daysInMonth allows 29 days for February; leap years are not checked.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// maxFileNameDigits is the most digits a valid file name may contain.
const maxFileNameDigits = 3

// ParseKeyValues splits s into pairs on pairSep and each pair into key and
// value on the first kvSep. Surrounding spaces are trimmed, empty pairs
// are skipped, and a repeated key keeps its last value.
func ParseKeyValues(s, pairSep, kvSep string) (map[string]string, error) {
	if pairSep == "" || kvSep == "" {
		return nil, ErrEmptySeparator
	}
	out := make(map[string]string)
	for i, pair := range strings.Split(s, pairSep) {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, v, ok := strings.Cut(pair, kvSep)
		if !ok {
			return nil, fmt.Errorf("pair %d %q: %w", i, pair, ErrMalformedPair)
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out, nil
}

// FormatKeyValues is the inverse of ParseKeyValues, with keys sorted.
func FormatKeyValues(m map[string]string, pairSep, kvSep string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+kvSep+m[k])
	}
	return strings.Join(parts, pairSep)
}

// ExtractInts returns every signed integer embedded in s, in order.
// Runs of digits too large for int are skipped.
func ExtractInts(s string) []int {
	out := make([]int, 0)
	for _, m := range intPattern.FindAllString(s, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// ValidDate reports whether s is a date in mm-dd-yyyy form with a
// month in 1-12 and a day that exists in that month.
func ValidDate(s string) bool {
	m := datePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth[month]
}

// ValidFileName reports whether name has at most three digits, exactly one
// dot, a stem starting with a Latin letter, and a txt, exe or dll extension.
func ValidFileName(name string) bool {
	digits := 0
	for _, r := range name {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits <= maxFileNameDigits && fileNamePattern.MatchString(name)
}

// FixSpaces replaces every run of three or more spaces with "-" and every
// remaining space with "_".
func FixSpaces(s string) string {
	s = spaceRunPattern.ReplaceAllString(s, "-")
	return strings.ReplaceAll(s, " ", "_")
}

// Rotate applies a Caesar shift of n places to ASCII letters, keeping case.
// Other characters pass through unchanged. Negative n shifts left.
func Rotate(s string, n int) string {
	n = ((n % 26) + 26) % 26
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			r = 'a' + (r-'a'+rune(n))%26
		case r >= 'A' && r <= 'Z':
			r = 'A' + (r-'A'+rune(n))%26
		}
		b.WriteRune(r)
	}
	return b.String()
}

// BalancedBrackets reports whether every opener in s is closed by a later
// closer and no closer appears unmatched. Other characters are ignored.
func BalancedBrackets(s string, opener, closer rune) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case opener:
			depth++
		case closer:
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

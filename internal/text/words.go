package text

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/shinji-kodama/drills/internal/numeric"
)

// fold returns s case-folded for caseless comparison.
func fold(s string) string {
	return cases.Fold().String(s)
}

// lower returns s lowercased without language-specific rules.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// IsPalindrome reports whether s reads the same in both directions,
// considering only letters and digits and ignoring case.
func IsPalindrome(s string) bool {
	runes := make([]rune, 0, len(s))
	for _, r := range fold(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, r)
		}
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// CountVowels counts a, e, i, o, u anywhere in s, plus y when it is the
// last character. Case is ignored.
func CountVowels(s string) int {
	lower := fold(s)
	n := 0
	for _, r := range lower {
		if strings.ContainsRune("aeiou", r) {
			n++
		}
	}
	if strings.HasSuffix(lower, "y") {
		n++
	}
	return n
}

// WordFrequencies counts lowercased whitespace-separated words.
func WordFrequencies(s string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.Fields(lower(s)) {
		counts[w]++
	}
	return counts
}

// LetterHistogram returns the letters of a space-separated string that
// occur the maximal number of times, each mapped to that count.
func LetterHistogram(s string) map[string]int {
	counts := WordFrequencies(s)
	best := 0
	for _, n := range counts {
		best = max(best, n)
	}
	out := make(map[string]int)
	for w, n := range counts {
		if n == best {
			out[w] = n
		}
	}
	return out
}

// ReverseWords reverses the order of words, joining them with single spaces.
func ReverseWords(s string) string {
	words := strings.Fields(s)
	slices.Reverse(words)
	return strings.Join(words, " ")
}

// TitleCase capitalises each word using English casing rules.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// PrimeLengthWords returns the words of s whose length is prime, in their
// original order, joined by single spaces.
func PrimeLengthWords(s string) string {
	var keep []string
	for _, w := range strings.Fields(s) {
		if numeric.IsPrime(len([]rune(w))) {
			keep = append(keep, w)
		}
	}
	return strings.Join(keep, " ")
}

// AreAnagrams reports whether a and b use the same letters the same number
// of times, ignoring case and anything that is not a letter.
func AreAnagrams(a, b string) bool {
	return maps.Equal(letterCounts(a), letterCounts(b))
}

func letterCounts(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range fold(s) {
		if unicode.IsLetter(r) {
			counts[r]++
		}
	}
	return counts
}

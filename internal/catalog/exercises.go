package catalog

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/shinji-kodama/drills/internal/numeric"
	"github.com/shinji-kodama/drills/internal/seq"
	"github.com/shinji-kodama/drills/internal/text"
)

// Default returns the registry holding every built-in exercise.
// It is built once and shared.
var Default = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	registerSeq(r)
	registerNumeric(r)
	registerText(r)
	return r
})

func registerSeq(r *Registry) {
	r.Register("seq.max", "largest element", []string{"xs"}, Fn1E(seq.Max[int]))
	r.Register("seq.min", "smallest element", []string{"xs"}, Fn1E(seq.Min[int]))
	r.Register("seq.min-max", "smallest and largest element as a pair", []string{"xs"},
		Fn1E(func(xs []int) ([]int, error) {
			lo, hi, err := seq.MinMax(xs)
			if err != nil {
				return nil, err
			}
			return []int{lo, hi}, nil
		}))
	r.Register("seq.sum", "sum of elements (0 when empty)", []string{"xs"}, Fn1(seq.Sum[float64]))
	r.Register("seq.product", "product of elements (1 when empty)", []string{"xs"}, Fn1(seq.Product[float64]))
	r.Register("seq.running-max", "prefix maxima", []string{"xs"}, Fn1(seq.RunningMax[int]))
	r.Register("seq.second-smallest", "second smallest distinct value, or null", []string{"xs"},
		Fn1OK(seq.SecondSmallest[int]))
	r.Register("seq.second-largest", "second largest distinct value, or null", []string{"xs"},
		Fn1OK(seq.SecondLargest[int]))
	r.Register("seq.kth-smallest", "k-th smallest element, 1-based", []string{"xs", "k"},
		Fn2E(seq.KthSmallest[int]))
	r.Register("seq.kth-largest", "k-th largest element, 1-based", []string{"xs", "k"},
		Fn2E(seq.KthLargest[int]))
	r.Register("seq.median", "median, averaging the middle pair", []string{"xs"}, Fn1E(seq.Median[float64]))
	r.Register("seq.frequencies", "value to occurrence count", []string{"xs"}, Fn1(seq.Frequencies[int]))
	r.Register("seq.mode", "most frequent value, smallest on ties", []string{"xs"}, Fn1E(seq.Mode[int]))
	r.Register("seq.unique", "sorted distinct values", []string{"xs"}, Fn1(seq.Unique[int]))
	r.Register("seq.dedupe-stable", "distinct values in first-seen order", []string{"xs"},
		Fn1(seq.DedupeStable[int]))
	r.Register("seq.common", "sorted values present in both lists", []string{"a", "b"}, Fn2(seq.Common[int]))
	r.Register("seq.index-of", "first index of x, or -1", []string{"xs", "x"}, Fn2(seq.IndexOf[int]))
	r.Register("seq.last-descent", "last index smaller than its predecessor, or -1", []string{"xs"},
		Fn1(seq.LastDescent[int]))
	r.Register("seq.search-frequent", "greatest v > 0 occurring at least v times, or -1", []string{"xs"},
		Fn1(seq.SearchFrequent))
	r.Register("seq.pairs-sum-to-zero", "whether two distinct positions sum to zero", []string{"xs"},
		Fn1(seq.PairsSumToZero))
	r.Register("seq.monotonic", "whether the list never changes direction", []string{"xs"},
		Fn1(seq.Monotonic[int]))
	r.Register("seq.extreme-signed", "[largest negative, smallest positive], null when absent", []string{"xs"},
		Fn1(func(xs []int) []any {
			neg, negOK, pos, posOK := seq.ExtremeSigned(xs)
			return []any{optional(neg, negOK), optional(pos, posOK)}
		}))
	r.Register("seq.sort-by-digit-sum", "stable sort by signed digit sum", []string{"xs"},
		Fn1(seq.SortByDigitSum))
}

func registerNumeric(r *Registry) {
	r.Register("numeric.digit-sum", "sum of decimal digits of |n|", []string{"n"}, Fn1(numeric.DigitSum))
	r.Register("numeric.signed-digit-sum", "digit sum with a negative leading digit", []string{"n"},
		Fn1(numeric.SignedDigitSum))
	r.Register("numeric.binary-digit-sum", "digit sum of n written in binary", []string{"n"},
		Fn1E(numeric.BinaryDigitSum))
	r.Register("numeric.is-right-triangle", "Pythagorean check, sides in any order", []string{"a", "b", "c"},
		Fn3(numeric.IsRightTriangle))
	r.Register("numeric.triangle-area", "Heron's formula, two decimals", []string{"a", "b", "c"},
		Fn3E(numeric.TriangleArea))
	r.Register("numeric.change-base", "render x in base 2-36", []string{"x", "base"}, Fn2E(numeric.ChangeBase))
	r.Register("numeric.circular-shift", "rotate decimal digits right", []string{"x", "shift"},
		Fn2(numeric.CircularShift))
	r.Register("numeric.is-perfect-square", "whether n is a square", []string{"n"}, Fn1(numeric.IsPerfectSquare))
	r.Register("numeric.collatz", "Collatz sequence from n down to 1", []string{"n"}, Fn1E(numeric.Collatz))
	r.Register("numeric.odd-collatz", "sorted odd Collatz members", []string{"n"}, Fn1E(numeric.OddCollatz))
	r.Register("numeric.derivative", "derivative of ascending coefficients", []string{"coeffs"},
		Fn1(numeric.Derivative))
	r.Register("numeric.evaluate", "polynomial value at x", []string{"coeffs", "x"}, Fn2(numeric.Evaluate))
	r.Register("numeric.factorial", "n!", []string{"n"}, Fn1E(numeric.Factorial))
	r.Register("numeric.is-prime", "primality by trial division", []string{"n"}, Fn1(numeric.IsPrime))
	r.Register("numeric.prime-factors", "ascending prime factors with multiplicity", []string{"n"},
		Fn1E(numeric.PrimeFactors))
	r.Register("numeric.gcd", "greatest common divisor", []string{"a", "b"}, Fn2E(numeric.GCD))
	r.Register("numeric.lcm", "least common multiple", []string{"a", "b"}, Fn2E(numeric.LCM))
	r.Register("numeric.fibonacci", "n-th Fibonacci number", []string{"n"}, Fn1E(numeric.Fibonacci))
	r.Register("numeric.to-roman", "Roman numeral for 1-3999", []string{"n"}, Fn1E(numeric.ToRoman))
	r.Register("numeric.from-roman", "value of a canonical Roman numeral", []string{"s"},
		Fn1E(numeric.FromRoman))
}

func registerText(r *Registry) {
	r.Register("text.is-palindrome", "palindrome over letters and digits, caseless", []string{"s"},
		Fn1(text.IsPalindrome))
	r.Register("text.count-vowels", "vowels plus a trailing y", []string{"s"}, Fn1(text.CountVowels))
	r.Register("text.word-frequencies", "lowercased word counts", []string{"s"}, Fn1(text.WordFrequencies))
	r.Register("text.letter-histogram", "most frequent space-separated letters", []string{"s"},
		Fn1(text.LetterHistogram))
	r.Register("text.reverse-words", "words in reverse order", []string{"s"}, Fn1(text.ReverseWords))
	r.Register("text.title-case", "English title casing", []string{"s"}, Fn1(text.TitleCase))
	r.Register("text.parse-key-values", "split into a key/value map", []string{"s", "pairSep", "kvSep"},
		Fn3E(text.ParseKeyValues))
	r.Register("text.format-key-values", "join a map with sorted keys", []string{"m", "pairSep", "kvSep"},
		Fn3(text.FormatKeyValues))
	r.Register("text.extract-ints", "every signed integer in s", []string{"s"}, Fn1(text.ExtractInts))
	r.Register("text.valid-date", "mm-dd-yyyy with real month and day", []string{"s"}, Fn1(text.ValidDate))
	r.Register("text.valid-file-name", "letter-led name.{txt,exe,dll} with <= 3 digits", []string{"name"},
		Fn1(text.ValidFileName))
	r.Register("text.fix-spaces", "space runs to '-', single spaces to '_'", []string{"s"},
		Fn1(text.FixSpaces))
	r.Register("text.rotate", "Caesar shift of ASCII letters", []string{"s", "n"}, Fn2(text.Rotate))
	r.Register("text.prime-length-words", "words with a prime length", []string{"s"},
		Fn1(text.PrimeLengthWords))
	r.Register("text.balanced-brackets", "bracket balance for one pair", []string{"s", "open", "close"},
		Fn3E(func(s, opener, closer string) (bool, error) {
			o, err := singleRune("open", opener)
			if err != nil {
				return false, err
			}
			c, err := singleRune("close", closer)
			if err != nil {
				return false, err
			}
			return text.BalancedBrackets(s, o, c), nil
		}))
	r.Register("text.are-anagrams", "same letters, same counts", []string{"a", "b"}, Fn2(text.AreAnagrams))
}

// singleRune returns the only rune in s.
func singleRune(param, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q: %w", param, s, ErrInvalidArgument)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

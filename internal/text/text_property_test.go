//go:build property

package text

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestTextProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(8642)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("rotate by n then -n is identity", prop.ForAll(
		func(s string, n int) bool {
			return Rotate(Rotate(s, n), -n) == s
		},
		gen.AnyString(),
		gen.IntRange(-100, 100),
	))

	properties.Property("a string followed by its reverse is a palindrome", prop.ForAll(
		func(s string) bool {
			r := []rune(s)
			for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
				r[i], r[j] = r[j], r[i]
			}
			return IsPalindrome(s + string(r))
		},
		gen.AlphaString(),
	))

	properties.Property("format then parse round-trips", prop.ForAll(
		func(keys []string) bool {
			m := make(map[string]string, len(keys))
			for i, k := range keys {
				if k == "" {
					continue
				}
				m[k] = keys[len(keys)-1-i]
			}
			got, err := ParseKeyValues(FormatKeyValues(m, ";", "="), ";", "=")
			if err != nil || len(got) != len(m) {
				return false
			}
			for k, v := range m {
				if got[k] != v {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

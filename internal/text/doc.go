// Package text implements string exercises: palindromes, word and letter
// counting, fixed-delimiter and regular-expression parsing, and simple
// ciphers.
//
// Case-insensitive comparisons use golang.org/x/text/cases folding rather
// than strings.ToLower, so that inputs such as "Straße" and "STRASSE"
// compare equal the way a reader would expect.
package text

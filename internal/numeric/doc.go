// Package numeric implements closed-form and small fixed-iteration
// arithmetic exercises: digit sums, base conversion, triangle checks,
// prime tests, Roman numerals, the Collatz sequence, and polynomial
// derivatives.
//
// All functions are pure. Inputs that make a result undefined produce
// one of the package's sentinel errors, wrapped with the offending value
// so callers can still match them with errors.Is.
package numeric

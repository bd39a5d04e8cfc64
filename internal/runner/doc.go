// Package runner evaluates batches of exercise cases and grades them.
//
// Cases are independent, so Run fans them out over a bounded errgroup
// (golang.org/x/sync/errgroup with SetLimit) and writes each result into
// its input slot; the returned slice is always in input order.
//
// Grading compares values, not text: the exercise result is encoded to
// JSON and decoded back, the expected value is decoded the same way, and
// the two are compared with github.com/google/go-cmp using an
// approximate float equality. A mismatch carries the cmp.Diff report.
package runner

// Package seq implements small exercises over ordered sequences.
//
// Every function is pure: inputs are never mutated, and results are
// built fresh for each call. The exercises fall into three shapes:
//
//   - linear scans with a running accumulator (Max, Sum, RunningMax)
//   - sort-then-index selection (KthSmallest, Median)
//   - counting via frequency tables (Frequencies, Mode, SearchFrequent)
//
// Functions whose result is undefined for some input return an error
// (ErrEmpty, ErrOutOfRange). Queries that may simply have no answer
// return a sentinel instead: -1 for an index, or ok == false.
package seq

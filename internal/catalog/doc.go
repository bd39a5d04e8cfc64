// Package catalog is the registry of invocable exercises.
//
// Every exercise in the seq, numeric and text packages is registered under
// a "<category>.<kebab-name>" name together with a one-line summary and
// its parameter names. Invocation takes positional JSON arguments, decodes
// each into the Go parameter type, and normalizes the result:
//
//   - func(A) R               → R
//   - func(A) (R, error)      → R, or the error
//   - func(A) (R, bool)       → R, or nil when ok is false
//
// A Registry is immutable once built, so the default registry is shared
// freely between goroutines (the runner evaluates cases concurrently).
package catalog

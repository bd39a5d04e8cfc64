package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrArity is returned when the number of arguments does not match
	// the exercise's parameter list.
	ErrArity = errors.New("wrong number of arguments")

	// ErrInvalidArgument is returned when an argument cannot be decoded
	// into the parameter's Go type.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Invoker calls one exercise with positional JSON arguments.
type Invoker struct {
	arity int
	call  func(args []json.RawMessage) (any, error)
}

// Arity returns the number of arguments the invoker expects.
func (inv Invoker) Arity() int {
	return inv.arity
}

// Call checks the argument count and invokes the wrapped function.
func (inv Invoker) Call(args []json.RawMessage) (any, error) {
	if len(args) != inv.arity {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrArity, len(args), inv.arity)
	}
	return inv.call(args)
}

// arg decodes args[i] into T. Indices in messages are 1-based.
func arg[T any](args []json.RawMessage, i int) (T, error) {
	var v T
	if err := json.Unmarshal(args[i], &v); err != nil {
		return v, fmt.Errorf("argument %d: %w: %w", i+1, ErrInvalidArgument, err)
	}
	return v, nil
}

// optional turns a (value, ok) pair into a value or nil.
func optional[R any](r R, ok bool) any {
	if !ok {
		return nil
	}
	return r
}

// Fn1 adapts a one-argument function with a plain result.
func Fn1[A, R any](f func(A) R) Invoker {
	return Fn1E(func(a A) (R, error) { return f(a), nil })
}

// Fn1E adapts a one-argument function that can fail.
func Fn1E[A, R any](f func(A) (R, error)) Invoker {
	return Invoker{arity: 1, call: func(args []json.RawMessage) (any, error) {
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		return f(a)
	}}
}

// Fn1OK adapts a one-argument function whose answer may not exist.
func Fn1OK[A, R any](f func(A) (R, bool)) Invoker {
	return Fn1E(func(a A) (any, error) {
		r, ok := f(a)
		return optional(r, ok), nil
	})
}

// Fn2 adapts a two-argument function with a plain result.
func Fn2[A, B, R any](f func(A, B) R) Invoker {
	return Fn2E(func(a A, b B) (R, error) { return f(a, b), nil })
}

// Fn2E adapts a two-argument function that can fail.
func Fn2E[A, B, R any](f func(A, B) (R, error)) Invoker {
	return Invoker{arity: 2, call: func(args []json.RawMessage) (any, error) {
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := arg[B](args, 1)
		if err != nil {
			return nil, err
		}
		return f(a, b)
	}}
}

// Fn3 adapts a three-argument function with a plain result.
func Fn3[A, B, C, R any](f func(A, B, C) R) Invoker {
	return Fn3E(func(a A, b B, c C) (R, error) { return f(a, b, c), nil })
}

// Fn3E adapts a three-argument function that can fail.
func Fn3E[A, B, C, R any](f func(A, B, C) (R, error)) Invoker {
	return Invoker{arity: 3, call: func(args []json.RawMessage) (any, error) {
		a, err := arg[A](args, 0)
		if err != nil {
			return nil, err
		}
		b, err := arg[B](args, 1)
		if err != nil {
			return nil, err
		}
		c, err := arg[C](args, 2)
		if err != nil {
			return nil, err
		}
		return f(a, b, c)
	}}
}

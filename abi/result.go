package abi

import "github.com/wippyai/icu4x-go/errors"

// Result is a tagged union of a success payload and an error code.
// The zero value is an Err carrying the zero E.
type Result[T, E any] struct {
	ok   T
	err  E
	isOK bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: v, isOK: true}
}

// Err returns a failed Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOK reports the discriminant.
func (r Result[T, E]) IsOK() bool {
	return r.isOK
}

// Get returns the payload and the discriminant.
func (r Result[T, E]) Get() (T, bool) {
	return r.ok, r.isOK
}

// GetErr returns the error code and whether the Result failed.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.isOK
}

// Value returns the success payload. It panics if the Result failed.
func (r Result[T, E]) Value() T {
	if !r.isOK {
		panic(errors.WrongArm("result", "ok"))
	}
	return r.ok
}

// Err returns the error code. It panics if the Result succeeded.
func (r Result[T, E]) Err() E {
	if r.isOK {
		panic(errors.WrongArm("result", "err"))
	}
	return r.err
}

// MapResult converts the success payload, keeping a failure untouched.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.isOK {
		return Err[U](r.err)
	}
	return Ok[U, E](fn(r.ok))
}

// Option is a tagged union of a value and absence.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some returns a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, isSome: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports the discriminant.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// Get returns the value and the discriminant.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

// Value returns the value. It panics if the Option is empty.
func (o Option[T]) Value() T {
	if !o.isSome {
		panic(errors.WrongArm("option", "some"))
	}
	return o.value
}

// Or returns the value or fallback when empty.
func (o Option[T]) Or(fallback T) T {
	if !o.isSome {
		return fallback
	}
	return o.value
}

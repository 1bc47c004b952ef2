// Package validated accumulates multiple errors while still returning values.
//
// It is the accumulating counterpart to either: where an either chain stops
// at the first Left, Validated combinators gather every error before
// reporting. Use it for input validation and decoding where all issues
// should surface at once.
package validated

import (
	"errors"

	"github.com/charmingruby/funkit/either"
	"github.com/charmingruby/funkit/fun"
)

// Validated wraps either a successful value or a collection of validation
// errors.
type Validated[E any, T any] struct {
	value  T
	errors []E
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated aggregating the provided errors.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	if len(errs) == 0 {
		return Validated[E, T]{errors: []E{}}
	}
	copyErrs := make([]E, len(errs))
	copy(copyErrs, errs)
	return Validated[E, T]{errors: copyErrs}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns the collected errors. The returned slice is an immutable
// copy.
func (v Validated[E, T]) Errors() []E {
	if len(v.errors) == 0 {
		return []E{}
	}
	copyErrs := make([]E, len(v.errors))
	copy(copyErrs, v.errors)
	return copyErrs
}

// Value returns the stored value along with a boolean reporting validity.
func (v Validated[E, T]) Value() (T, bool) {
	return v.value, v.IsValid()
}

// UnsafeValue returns the stored value even when invalid.
func (v Validated[E, T]) UnsafeValue() T {
	return v.value
}

// Map transforms the stored value when valid.
func Map[E any, A any, B any](v Validated[E, A], fn func(A) B) Validated[E, B] {
	if !v.IsValid() {
		return Validated[E, B]{errors: v.errors}
	}
	return Valid[E, B](fn(v.value))
}

// Ap applies a validated function to a validated argument, accumulating
// errors from both sides when either is invalid.
func Ap[E any, A any, B any](ff Validated[E, func(A) B], fa Validated[E, A]) Validated[E, B] {
	if ff.IsValid() && fa.IsValid() {
		return Valid[E, B](ff.value(fa.value))
	}
	return Validated[E, B]{errors: appendErrors(ff.Errors(), fa.errors)}
}

// Zip combines two Validated values into a pair, accumulating errors from
// both sides.
func Zip[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, fun.Pair[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](fun.PairOf(a.value, b.value))
	}
	return Validated[E, fun.Pair[A, B]]{errors: appendErrors(a.Errors(), b.errors)}
}

// Sequence collapses a slice of Validated values, accumulating the errors of
// every invalid element or producing the slice of values when all succeeded.
func Sequence[E any, T any](items []Validated[E, T]) Validated[E, []T] {
	if len(items) == 0 {
		return Valid[E, []T]([]T{})
	}
	values := make([]T, 0, len(items))
	var errs []E
	for _, item := range items {
		if item.IsValid() {
			values = append(values, item.value)
			continue
		}
		errs = appendErrors(errs, item.errors)
	}
	if len(errs) > 0 {
		return Validated[E, []T]{errors: errs}
	}
	return Valid[E, []T](values)
}

// Traverse maps the input slice to Validated values and sequences them.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	if len(items) == 0 {
		return Valid[E, []B]([]B{})
	}
	values := make([]B, 0, len(items))
	var errs []E
	for _, item := range items {
		res := fn(item)
		if res.IsValid() {
			values = append(values, res.value)
			continue
		}
		errs = appendErrors(errs, res.errors)
	}
	if len(errs) > 0 {
		return Validated[E, []B]{errors: errs}
	}
	return Valid[E, []B](values)
}

// FromEither lifts an Either into a Validated, turning a Left into a single
// accumulated error.
func FromEither[E any, T any](e either.Either[E, T]) Validated[E, T] {
	if value, ok := e.RightValue(); ok {
		return Valid[E](value)
	}
	left, _ := e.LeftValue()
	return Invalid[E, T](left)
}

// ToEither converts a Validated of errors into an Either, joining the
// accumulated errors when the value is invalid.
func ToEither[T any](v Validated[error, T]) either.Either[error, T] {
	if v.IsValid() {
		return either.Right[error](v.value)
	}
	return either.Left[error, T](errors.Join(v.errors...))
}

func appendErrors[E any](dst []E, src []E) []E {
	if len(src) == 0 {
		return dst
	}
	if len(dst) == 0 {
		dst = make([]E, 0, len(src))
	}
	return append(dst, src...)
}

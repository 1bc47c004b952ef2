// Package identity implements the simplest possible container: a value
// wrapped with no effect attached. It marks the spot where a plain value
// enters a chain, and composing function-holding Identities behaves exactly
// like composing the bare functions.
package identity

import "fmt"

// Identity wraps a single value of type T. The zero value wraps the zero
// value of T.
type Identity[T any] struct {
	value T
}

// Pure wraps a value in an Identity.
//
// Example:
//
//	id := identity.Pure("go")
func Pure[T any](value T) Identity[T] {
	return Identity[T]{value: value}
}

// Get returns the wrapped value.
func (i Identity[T]) Get() T {
	return i.value
}

// String implements fmt.Stringer.
func (i Identity[T]) String() string {
	return fmt.Sprintf("Identity(%v)", i.value)
}

// Map applies fn to the wrapped value and returns a new Identity holding the
// result.
//
// Example:
//
//	size := identity.Map(identity.Pure("funkit"), func(s string) int { return len(s) })
func Map[A any, B any](i Identity[A], fn func(A) B) Identity[B] {
	return Pure(fn(i.value))
}

// FlatMap applies fn, which already returns an Identity, to the wrapped
// value.
func FlatMap[A any, B any](i Identity[A], fn func(A) Identity[B]) Identity[B] {
	return fn(i.value)
}

// Compose combines two function-holding Identities right-to-left: g's
// function runs first and its result feeds f's function. Nothing runs until
// the resulting function is called.
//
// Example:
//
//	double := identity.Pure(func(n int) int { return n * 2 })
//	inc := identity.Pure(func(n int) int { return n + 1 })
//	identity.Apply(identity.Compose(double, inc), 5) // 12
func Compose[A any, B any, C any](
	f Identity[func(B) C], g Identity[func(A) B],
) Identity[func(A) C] {

	return Pure(func(a A) C {
		return f.value(g.value(a))
	})
}

// Apply invokes the function held by f with the given argument.
func Apply[A any, B any](f Identity[func(A) B], a A) B {
	return f.value(a)
}

// Package maybe implements a generic Maybe type for presence/absence
// semantics.
package maybe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmingruby/funkit/either"
	"github.com/charmingruby/funkit/fun"
	"github.com/stretchr/testify/require"
)

// Maybe represents presence or absence of a value of type T. The zero value
// is Nothing, so Maybes can be embedded safely. Values are stored inline (no
// pointer boxing) which makes Just(nil) safe for nil-capable types; use
// IsJust to distinguish between absence and an explicit nil.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just constructs a Maybe that wraps value. Just(nil) is valid when T
// accepts nil values; use IsJust to test for presence explicitly.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, ok: true}
}

// Nothing constructs an empty Maybe for the provided type.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{ok: false}
}

// FromOk constructs a Maybe from a value and ok flag, mirroring Go's common
// multi-return patterns (e.g. map lookups).
func FromOk[T any](value T, ok bool) Maybe[T] {
	if !ok {
		return Nothing[T]()
	}
	return Just(value)
}

// FromPtr creates a Maybe from a pointer, treating nil as Nothing.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// FromEither creates a Maybe from an Either, dropping the left payload.
func FromEither[E any, A any](e either.Either[E, A]) Maybe[A] {
	if value, ok := e.RightValue(); ok {
		return Just(value)
	}
	return Nothing[A]()
}

// IsJust reports true when the Maybe contains a value (even if that value is
// nil). It is safe to call concurrently when the Maybe is not being mutated.
func (m Maybe[T]) IsJust() bool {
	return m.ok
}

// IsNothing reports true when the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.ok
}

// Get returns the contained value along with a boolean indicating whether it
// was present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// UnsafeGet returns the contained value or panics when the Maybe is Nothing.
// It should only be used in hot paths where presence is guaranteed.
func (m Maybe[T]) UnsafeGet() T {
	if !m.ok {
		panic("maybe: UnsafeGet on Nothing")
	}
	return m.value
}

// OrElse returns the contained value when present, otherwise it returns the
// provided fallback value.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// OrElseFunc behaves like OrElse but lazily evaluates the fallback only when
// necessary.
func (m Maybe[T]) OrElseFunc(fn func() T) T {
	if m.ok {
		return m.value
	}
	return fn()
}

// Alt returns the Maybe itself when it is Just, otherwise returns other.
func (m Maybe[T]) Alt(other Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return other
}

// AltFunc behaves like Alt but lazily constructs the replacement when
// necessary.
func (m Maybe[T]) AltFunc(fn func() Maybe[T]) Maybe[T] {
	if m.ok {
		return m
	}
	return fn()
}

// UnwrapOrFail extracts the contained value within a test context. The test
// fails when the Maybe is Nothing.
func (m Maybe[T]) UnwrapOrFail(t *testing.T) T {
	t.Helper()

	require.True(t, m.ok, "Maybe[%T] was Nothing", m.value)

	return m.value
}

// WhenJust executes the side-effecting fn with the contained value when
// present.
func (m Maybe[T]) WhenJust(fn func(T)) {
	if m.ok {
		fn(m.value)
	}
}

// ToPtr converts the Maybe into a pointer, returning nil when Nothing. The
// returned pointer references a copy of the stored value to preserve
// immutability.
func (m Maybe[T]) ToPtr() *T {
	if !m.ok {
		return nil
	}
	value := m.value
	return &value
}

// Filter keeps the value when predicate returns true, otherwise it becomes
// Nothing.
func (m Maybe[T]) Filter(predicate func(T) bool) Maybe[T] {
	if m.ok && predicate(m.value) {
		return m
	}
	return Nothing[T]()
}

// Fold collapses the Maybe into a single value by selecting onNothing when
// the Maybe is empty or applying onJust to the contained value.
func Fold[T any, U any](m Maybe[T], onNothing func() U, onJust func(T) U) U {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

// Map transforms the contained value with fn when present, returning a new
// Maybe of type U. fn never runs on Nothing, so effects behind it cannot
// fire for absent values.
func Map[T any, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.ok {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// FlatMap chains the Maybe with another Maybe-valued function.
func FlatMap[T any, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.ok {
		return fn(m.value)
	}
	return Nothing[U]()
}

// Tap executes fn with the contained value when present and returns the
// original Maybe, allowing side effects mid-chain.
func Tap[T any](m Maybe[T], fn func(T)) Maybe[T] {
	if m.ok {
		fn(m.value)
	}
	return m
}

// Zip combines two Maybes into one containing a pair of values, becoming
// Nothing when either input is empty.
func Zip[A any, B any](ma Maybe[A], mb Maybe[B]) Maybe[fun.Pair[A, B]] {
	if !ma.ok || !mb.ok {
		return Nothing[fun.Pair[A, B]]()
	}
	return Just(fun.PairOf(ma.value, mb.value))
}

// Sequence converts a slice of Maybes into a Maybe containing a slice of
// values, short-circuiting to Nothing on the first empty element.
func Sequence[T any](items []Maybe[T]) Maybe[[]T] {
	values := make([]T, 0, len(items))
	for _, m := range items {
		if !m.ok {
			return Nothing[[]T]()
		}
		values = append(values, m.value)
	}
	return Just(values)
}

// Traverse maps input values to Maybes and sequences them.
func Traverse[A any, B any](items []A, fn func(A) Maybe[B]) Maybe[[]B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		m := fn(item)
		if !m.ok {
			return Nothing[[]B]()
		}
		values = append(values, m.value)
	}
	return Just(values)
}

// ToEither converts a Maybe into an Either, producing errFactory() on the
// left when the Maybe is Nothing. If errFactory returns nil the function
// wraps a descriptive error to avoid silent successes.
func (m Maybe[T]) ToEither(errFactory func() error) either.Either[error, T] {
	if m.ok {
		return either.Right[error](m.value)
	}
	var err error
	if errFactory != nil {
		err = errFactory()
	}
	if err == nil {
		err = errors.New("maybe: missing value")
	}
	return either.Left[error, T](err)
}

// String implements fmt.Stringer for debugging. It is not intended for
// serialization and keeps implementation reflection-free.
func (m Maybe[T]) String() string {
	if m.ok {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

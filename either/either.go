// Package either provides a two-branch container holding exactly one of a
// left value (conventionally the failure) or a right value (the success).
//
// Example:
//
//	res := either.Right[error]("done")
//	value := res.UnwrapOr("fallback")
//	_ = value
//
// Either combinators uphold Functor/Monad laws on the right branch (see
// laws_either_test.go), and every combinator leaves an existing left branch
// untouched, so the first failure always survives a chain.
package either

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmingruby/funkit/fun"
	"github.com/stretchr/testify/require"
)

// Either holds exactly one of a left value of type E or a right value of
// type A. The zero value is a Left holding E's zero value, so an Either can
// be embedded safely. It never panics except in Unsafe helpers.
//
// Example:
//
//	res := either.Right[error](200)
//	fmt.Println(res.IsRight()) // true
type Either[E any, A any] struct {
	left    E
	right   A
	isRight bool
}

// Left constructs an Either carrying a left value.
//
// Example:
//
//	res := either.Left[string, int]("not found")
//	fmt.Println(res.IsLeft()) // true
func Left[E any, A any](left E) Either[E, A] {
	return Either[E, A]{left: left}
}

// Right constructs an Either carrying a right value.
//
// Example:
//
//	res := either.Right[error](200)
func Right[E any, A any](right A) Either[E, A] {
	return Either[E, A]{right: right, isRight: true}
}

// FromError converts a standard Go (value, error) pair into an Either with
// error on the left.
//
// Example:
//
//	value, err := repo.Load()
//	res := either.FromError(value, err)
//	return res
func FromError[A any](value A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](value)
}

// IsLeft reports whether the Either holds a left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the Either holds a right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value along with a boolean indicating whether
// the Either actually holds the left branch.
func (e Either[E, A]) LeftValue() (E, bool) {
	return e.left, !e.isRight
}

// RightValue returns the right value along with a boolean indicating whether
// the Either actually holds the right branch.
func (e Either[E, A]) RightValue() (A, bool) {
	return e.right, e.isRight
}

// UnsafeRight returns the right value or panics when the Either is a Left.
// It should only be used in hot paths where the branch is guaranteed.
func (e Either[E, A]) UnsafeRight() A {
	if !e.isRight {
		panic(fmt.Sprintf("either: UnsafeRight on Left(%v)", e.left))
	}
	return e.right
}

// UnwrapOr returns the right value when present, otherwise returns fallback.
//
// Example:
//
//	code := res.UnwrapOr(http.StatusInternalServerError)
func (e Either[E, A]) UnwrapOr(fallback A) A {
	if e.isRight {
		return e.right
	}
	return fallback
}

// UnwrapOrElse lazily computes a fallback from the left value when the
// Either is a Left.
//
// Example:
//
//	value := res.UnwrapOrElse(func(err error) string {
//		return "error: " + err.Error()
//	})
func (e Either[E, A]) UnwrapOrElse(fn func(E) A) A {
	if e.isRight {
		return e.right
	}
	return fn(e.left)
}

// UnwrapOrFail extracts the right value within a test context. The test
// fails when the Either is a Left.
func (e Either[E, A]) UnwrapOrFail(t *testing.T) A {
	t.Helper()

	require.True(t, e.isRight, "Either was Left(%v)", e.left)

	return e.right
}

// WhenLeft executes fn when the Either holds a left value.
func (e Either[E, A]) WhenLeft(fn func(E)) {
	if !e.isRight {
		fn(e.left)
	}
}

// WhenRight executes fn when the Either holds a right value.
func (e Either[E, A]) WhenRight(fn func(A)) {
	if e.isRight {
		fn(e.right)
	}
}

// Map transforms the right value. A Left passes through unchanged, so the
// first failure in a chain is the one reported at the end.
//
// Example:
//
//	length := either.Map(res, func(s string) int { return len(s) })
func Map[E any, A any, B any](e Either[E, A], fn func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](fn(e.right))
	}
	return Left[E, B](e.left)
}

// MapLeft transforms the left value, leaving a Right untouched.
//
// Example:
//
//	res := either.MapLeft(load(), func(err error) error {
//		return fmt.Errorf("wrap: %w", err)
//	})
func MapLeft[E any, A any, F any](e Either[E, A], fn func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](fn(e.left))
}

// FlatMap chains computations on the right branch, propagating the first
// left value.
//
// Example:
//
//	res := either.FlatMap(loadUser(), fetchProfile)
func FlatMap[E any, A any, B any](e Either[E, A], fn func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[E, B](e.left)
}

// FlatMapLeft chains a fallback computation on the left branch, leaving a
// Right untouched. The fallback may itself land on either branch.
//
// Example:
//
//	res := either.FlatMapLeft(loadConfig(), func(error) either.Either[error, Config] {
//		return loadFromFallback()
//	})
func FlatMapLeft[E any, A any, F any](e Either[E, A], fn func(E) Either[F, A]) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return fn(e.left)
}

// Fold collapses the Either into a single value.
//
// Example:
//
//	message := either.Fold(res,
//		func(err error) string { return "failed: " + err.Error() },
//		func(val string) string { return "ok: " + val },
//	)
func Fold[E any, A any, U any](e Either[E, A], onLeft func(E) U, onRight func(A) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Recover converts a Left into a Right using fn while keeping existing Right
// values untouched.
//
// Example:
//
//	res := either.Recover(loadConfig(), func(err error) Config {
//		return defaultConfig
//	})
func Recover[E any, A any](e Either[E, A], fn func(E) A) Either[E, A] {
	if e.isRight {
		return e
	}
	return Right[E](fn(e.left))
}

// TapRight executes fn when the Either is a Right and returns the original
// Either.
//
// Example:
//
//	_ = either.TapRight(saveUser(), func(u User) {
//		metrics.Count("user_saved")
//	})
func TapRight[E any, A any](e Either[E, A], fn func(A)) Either[E, A] {
	if e.isRight {
		fn(e.right)
	}
	return e
}

// TapLeft executes fn when the Either is a Left and returns the original
// Either.
//
// Example:
//
//	_ = either.TapLeft(load(), func(err error) {
//		log.Println("load failed", err)
//	})
func TapLeft[E any, A any](e Either[E, A], fn func(E)) Either[E, A] {
	if !e.isRight {
		fn(e.left)
	}
	return e
}

// Rights gathers the right values from the provided Eithers, ignoring left
// branches. The returned slice never shares a backing array with inputs.
//
// Example:
//
//	values := either.Rights([]either.Either[error, int]{either.Right[error](1)})
func Rights[E any, A any](items []Either[E, A]) []A {
	if len(items) == 0 {
		return []A{}
	}
	values := make([]A, 0, len(items))
	for _, e := range items {
		if e.isRight {
			values = append(values, e.right)
		}
	}
	return values
}

// Lefts gathers the left values from the provided Eithers, ignoring right
// branches.
func Lefts[E any, A any](items []Either[E, A]) []E {
	if len(items) == 0 {
		return []E{}
	}
	lefts := make([]E, 0, len(items))
	for _, e := range items {
		if !e.isRight {
			lefts = append(lefts, e.left)
		}
	}
	return lefts
}

// Partition splits the input slice into right values and left values.
//
// Example:
//
//	vals, errs := either.Partition(results)
func Partition[E any, A any](items []Either[E, A]) ([]A, []E) {
	if len(items) == 0 {
		return []A{}, []E{}
	}
	values := make([]A, 0, len(items))
	lefts := make([]E, 0, len(items))
	for _, e := range items {
		if e.isRight {
			values = append(values, e.right)
			continue
		}
		lefts = append(lefts, e.left)
	}
	return values, lefts
}

// Zip2 combines two Eithers into one containing a pair of right values,
// reporting the first Left encountered.
//
// Example:
//
//	combined := either.Zip2(loadUser(), loadProfile())
func Zip2[E any, A any, B any](ea Either[E, A], eb Either[E, B]) Either[E, fun.Pair[A, B]] {
	if !ea.isRight {
		return Left[E, fun.Pair[A, B]](ea.left)
	}
	if !eb.isRight {
		return Left[E, fun.Pair[A, B]](eb.left)
	}
	return Right[E](fun.PairOf(ea.right, eb.right))
}

// Zip3 combines three Eithers into one containing a triple of right values,
// reporting the first Left encountered.
//
// Example:
//
//	combined := either.Zip3(loadUser(), loadProfile(), loadSettings())
func Zip3[E any, A any, B any, C any](
	ea Either[E, A], eb Either[E, B], ec Either[E, C],
) Either[E, fun.Triple[A, B, C]] {

	if !ea.isRight {
		return Left[E, fun.Triple[A, B, C]](ea.left)
	}
	if !eb.isRight {
		return Left[E, fun.Triple[A, B, C]](eb.left)
	}
	if !ec.isRight {
		return Left[E, fun.Triple[A, B, C]](ec.left)
	}
	return Right[E](fun.TripleOf(ea.right, eb.right, ec.right))
}

// Sequence converts a slice of Eithers into an Either containing a slice of
// right values, failing fast on the first Left.
//
// Example:
//
//	res := either.Sequence([]either.Either[error, int]{loadA(), loadB()})
func Sequence[E any, A any](items []Either[E, A]) Either[E, []A] {
	values := make([]A, 0, len(items))
	for _, e := range items {
		if !e.isRight {
			return Left[E, []A](e.left)
		}
		values = append(values, e.right)
	}
	return Right[E](values)
}

// Traverse maps input values to Eithers and sequences them.
//
// Example:
//
//	res := either.Traverse(ids, func(id int) either.Either[error, User] {
//		return loadUser(id)
//	})
func Traverse[E any, A any, B any](items []A, fn func(A) Either[E, B]) Either[E, []B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		e := fn(item)
		if !e.isRight {
			return Left[E, []B](e.left)
		}
		values = append(values, e.right)
	}
	return Right[E](values)
}

// Unwrap converts an error-flavored Either back into the standard Go
// (value, error) pair.
//
// Example:
//
//	value, err := either.Unwrap(res)
//	if err != nil {
//		return err
//	}
func Unwrap[A any](e Either[error, A]) (A, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero A
	err := e.left
	if err == nil {
		err = errors.New("either: left branch with nil error")
	}
	return zero, err
}

// String implements fmt.Stringer for debugging. It is not intended for
// serialization and keeps the implementation reflection-free.
func (e Either[E, A]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

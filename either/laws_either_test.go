package either_test

import (
	"errors"
	"testing"
	"testing/quick"

	"github.com/charmingruby/funkit/either"
)

func TestEitherFunctorLaws(t *testing.T) {
	identity := func(x int) int { return x }
	composition := func(x int) int { return x + 1 }
	other := func(x int) int { return x * 2 }

	check := func(value int, rightBranch bool) bool {
		e := makeEither(value, rightBranch)
		idMapped := either.Map(e, identity)
		compMapped := either.Map(either.Map(e, composition), other)
		composed := either.Map(e, func(x int) int { return other(composition(x)) })
		return equalEither(e, idMapped) && equalEither(compMapped, composed)
	}

	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

func TestEitherMonadLaws(t *testing.T) {
	f := func(x int) either.Either[string, int] {
		if x%2 == 0 {
			return either.Right[string](x / 2)
		}
		return either.Left[string, int]("odd")
	}
	g := func(x int) either.Either[string, int] {
		return either.Right[string](x + 3)
	}

	leftIdentity := func(x int) bool {
		return equalEither(either.FlatMap(either.Right[string](x), f), f(x))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(value int, rightBranch bool) bool {
		e := makeEither(value, rightBranch)
		return equalEither(either.FlatMap(e, either.Right[string, int]), e)
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(x int) bool {
		left := either.FlatMap(either.FlatMap(either.Right[string](x), f), g)
		right := either.FlatMap(either.Right[string](x), func(v int) either.Either[string, int] {
			return either.FlatMap(f(v), g)
		})
		return equalEither(left, right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestLeftAbsorbsCombinators(t *testing.T) {
	boom := errors.New("boom")

	absorbed := func(x int) bool {
		start := either.Left[error, int](boom)
		chained := either.FlatMap(
			either.Map(start, func(n int) int { return n + x }),
			func(n int) either.Either[error, int] { return either.Right[error](n * x) },
		)
		got, isLeft := chained.LeftValue()
		return isLeft && errors.Is(got, boom)
	}
	if err := quick.Check(absorbed, nil); err != nil {
		t.Fatalf("left absorption failed: %v", err)
	}
}

func makeEither(value int, rightBranch bool) either.Either[string, int] {
	if rightBranch {
		return either.Right[string](value)
	}
	return either.Left[string, int]("absent")
}

func equalEither[E comparable, A comparable](a, b either.Either[E, A]) bool {
	if a.IsRight() != b.IsRight() {
		return false
	}
	if a.IsRight() {
		av, _ := a.RightValue()
		bv, _ := b.RightValue()
		return av == bv
	}
	al, _ := a.LeftValue()
	bl, _ := b.LeftValue()
	return al == bl
}

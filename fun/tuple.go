package fun

// Multi-value stages travel through compositions as explicit tuples. A stage
// that produces two values returns a Pair; a stage that consumes two values
// is adapted with Tupled2. Packing and unpacking happen only at stage
// boundaries, so arity-polymorphic pipelines stay fully typed.

// Pair holds two related values.
//
// Example:
//
//	p := fun.PairOf(1, "a")
type Pair[A any, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two members.
func PairOf[A any, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack ejects the members as the multiple return values customary in Go.
//
// Example:
//
//	a, b := p.Unpack()
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Triple holds three related values.
type Triple[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf builds a Triple from its three members.
func TripleOf[A any, B any, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Unpack ejects the members as multiple return values.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// Tupled2 adapts a two-argument function into a unary function over a Pair,
// so it can sit in the middle of a composition whose previous stage produced
// two values.
//
// Example:
//
//	add := fun.From(fun.Tupled2(func(a, b int) int { return a + b }))
func Tupled2[A any, B any, R any](fn func(A, B) R) func(Pair[A, B]) R {
	return func(p Pair[A, B]) R {
		return fn(p.First, p.Second)
	}
}

// Untupled2 is the inverse of Tupled2.
//
// Example:
//
//	plain := fun.Untupled2(paired)
//	sum := plain(1, 2)
func Untupled2[A any, B any, R any](fn func(Pair[A, B]) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(PairOf(a, b))
	}
}

// Tupled3 adapts a three-argument function into a unary function over a
// Triple.
func Tupled3[A any, B any, C any, R any](fn func(A, B, C) R) func(Triple[A, B, C]) R {
	return func(t Triple[A, B, C]) R {
		return fn(t.First, t.Second, t.Third)
	}
}

// Untupled3 is the inverse of Tupled3.
func Untupled3[A any, B any, C any, R any](fn func(Triple[A, B, C]) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(TripleOf(a, b, c))
	}
}

// Fanout runs two functions on the same input and pairs their results. This
// is how a pipeline stage produces multiple values.
//
// Example:
//
//	split := fun.Fanout(
//		func(n int) int { return n },
//		func(n int) int { return n * 2 },
//	)
//	p := split(5) // Pair{5, 10}
func Fanout[A any, B any, C any](f func(A) B, g func(A) C) func(A) Pair[B, C] {
	return func(a A) Pair[B, C] {
		return PairOf(f(a), g(a))
	}
}

// MapFirst lifts a function so it applies to the first member of a Pair and
// leaves the second untouched.
func MapFirst[A any, B any, C any](fn func(A) B) func(Pair[A, C]) Pair[B, C] {
	return func(p Pair[A, C]) Pair[B, C] {
		return PairOf(fn(p.First), p.Second)
	}
}

// MapSecond lifts a function so it applies to the second member of a Pair and
// leaves the first untouched.
func MapSecond[A any, B any, C any](fn func(A) B) func(Pair[C, A]) Pair[C, B] {
	return func(p Pair[C, A]) Pair[C, B] {
		return PairOf(p.First, fn(p.Second))
	}
}

// Package fun wraps unary functions in composable value types.
//
// Two wrapper types cover the two ways people read a composition. Fun
// composes right-to-left like mathematical notation, Arrow composes
// left-to-right like a pipeline. The wrappers are deliberately independent:
// each is a single stored function plus the operations that make sense for
// its reading direction.
//
// Example:
//
//	double := fun.From(func(n int) int { return n * 2 })
//	inc := fun.From(func(n int) int { return n + 1 })
//	value := fun.Compose(double, inc).Apply(5) // double(inc(5)) == 12
package fun

// Fun wraps a unary function for right-to-left composition. Construction and
// composition never invoke the stored function; only Apply does. The zero
// value holds no function and must not be applied.
//
// Example:
//
//	shout := fun.From(strings.ToUpper)
//	fmt.Println(shout.Apply("go"))
type Fun[A any, B any] struct {
	raw func(A) B
}

// From wraps raw in a Fun. The function is stored verbatim; no validation
// happens until Apply.
//
// Example:
//
//	length := fun.From(func(s string) int { return len(s) })
func From[A any, B any](raw func(A) B) Fun[A, B] {
	return Fun[A, B]{raw: raw}
}

// Apply invokes the wrapped function with a and returns its result. Whatever
// the function panics with propagates unchanged.
//
// Example:
//
//	n := length.Apply("funkit")
func (f Fun[A, B]) Apply(a A) B {
	return f.raw(a)
}

// Unwrap returns the stored function.
//
// Example:
//
//	raw := shout.Unwrap()
//	fmt.Println(raw("go"))
func (f Fun[A, B]) Unwrap() func(A) B {
	return f.raw
}

// Compose chains two Funs right-to-left: the result applies g first, then f.
// The composed Fun is lazy — it may be applied many times or never.
//
// Example:
//
//	h := fun.Compose(f, g) // h.Apply(x) == f.Apply(g.Apply(x))
func Compose[A any, B any, C any](f Fun[B, C], g Fun[A, B]) Fun[A, C] {
	return Fun[A, C]{raw: func(a A) C {
		return f.raw(g.raw(a))
	}}
}

// Arrow wraps a unary function for left-to-right composition. It shares no
// code with Fun on purpose: each wrapper stays a single field plus the
// operations for its own reading direction.
//
// Example:
//
//	trim := fun.ArrowFrom(strings.TrimSpace)
//	fmt.Println(trim.Apply("  go  "))
type Arrow[A any, B any] struct {
	raw func(A) B
}

// ArrowFrom wraps raw in an Arrow. The function is stored verbatim; no
// validation happens until Apply.
//
// Example:
//
//	parse := fun.ArrowFrom(strconv.Atoi)
func ArrowFrom[A any, B any](raw func(A) B) Arrow[A, B] {
	return Arrow[A, B]{raw: raw}
}

// Apply invokes the wrapped function with a and returns its result.
//
// Example:
//
//	cleaned := trim.Apply(" value ")
func (f Arrow[A, B]) Apply(a A) B {
	return f.raw(a)
}

// Unwrap returns the stored function.
func (f Arrow[A, B]) Unwrap() func(A) B {
	return f.raw
}

// ComposeTo chains two Arrows left-to-right: the result applies f first, then
// g. Like Compose it is fully lazy.
//
// Example:
//
//	h := fun.ComposeTo(f, g) // h.Apply(x) == g.Apply(f.Apply(x))
func ComposeTo[A any, B any, C any](f Arrow[A, B], g Arrow[B, C]) Arrow[A, C] {
	return Arrow[A, C]{raw: func(a A) C {
		return g.raw(f.raw(a))
	}}
}

// Ident returns the supplied value unchanged. It is the unit of both
// composition directions.
//
// Example:
//
//	value := fun.Ident(42)
func Ident[T any](v T) T {
	return v
}

// Const returns a function that always returns v.
//
// Example:
//
//	getDefault := fun.Const(time.Minute)
//	fmt.Println(getDefault())
func Const[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies a sequence of same-type functions to value, left to right.
//
// Example:
//
//	result := fun.Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// ComposeAll composes same-type functions right-to-left without wrapping
// them. ComposeAll(f, g, h)(x) == f(g(h(x))).
//
// Example:
//
//	fn := fun.ComposeAll(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5)
func ComposeAll[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Package curry converts fixed-arity functions into chains of unary
// functions and back. Each curried argument is type-checked at compile
// time, which makes this the safe counterpart to the reflection-based
// partial package for functions of known shape.
package curry

// Two converts a two-argument function into curried form.
//
// Example:
//
//	add := curry.Two(func(a, b int) int { return a + b })
//	inc := add(1)
//	fmt.Println(inc(41)) // 42
func Two[A any, B any, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Three converts a three-argument function into curried form. Binding the
// first argument delegates to Two, so every link in the chain behaves the
// same way.
func Three[A any, B any, C any, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Two(func(b B, c C) R {
			return fn(a, b, c)
		})
	}
}

// Four converts a four-argument function into curried form.
func Four[A any, B any, C any, D any, R any](
	fn func(A, B, C, D) R,
) func(A) func(B) func(C) func(D) R {

	return func(a A) func(B) func(C) func(D) R {
		return Three(func(b B, c C, d D) R {
			return fn(a, b, c, d)
		})
	}
}

// Five converts a five-argument function into curried form.
func Five[A any, B any, C any, D any, E any, R any](
	fn func(A, B, C, D, E) R,
) func(A) func(B) func(C) func(D) func(E) R {

	return func(a A) func(B) func(C) func(D) func(E) R {
		return Four(func(b B, c C, d D, e E) R {
			return fn(a, b, c, d, e)
		})
	}
}

// Six converts a six-argument function into curried form.
func Six[A any, B any, C any, D any, E any, F any, R any](
	fn func(A, B, C, D, E, F) R,
) func(A) func(B) func(C) func(D) func(E) func(F) R {

	return func(a A) func(B) func(C) func(D) func(E) func(F) R {
		return Five(func(b B, c C, d D, e E, f F) R {
			return fn(a, b, c, d, e, f)
		})
	}
}

// Seven converts a seven-argument function into curried form.
func Seven[A any, B any, C any, D any, E any, F any, G any, R any](
	fn func(A, B, C, D, E, F, G) R,
) func(A) func(B) func(C) func(D) func(E) func(F) func(G) R {

	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) R {
		return Six(func(b B, c C, d D, e E, f F, g G) R {
			return fn(a, b, c, d, e, f, g)
		})
	}
}

// Eight converts an eight-argument function into curried form.
func Eight[A any, B any, C any, D any, E any, F any, G any, H any, R any](
	fn func(A, B, C, D, E, F, G, H) R,
) func(A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R {

	return func(a A) func(B) func(C) func(D) func(E) func(F) func(G) func(H) R {
		return Seven(func(b B, c C, d D, e E, f F, g G, h H) R {
			return fn(a, b, c, d, e, f, g, h)
		})
	}
}

// Uncurry2 converts a curried chain back into a two-argument function.
//
// Example:
//
//	add := curry.Uncurry2(curry.Two(func(a, b int) int { return a + b }))
//	fmt.Println(add(1, 2)) // 3
func Uncurry2[A any, B any, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Uncurry3 converts a curried chain back into a three-argument function.
func Uncurry3[A any, B any, C any, R any](fn func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a)(b)(c)
	}
}

// Swap flips the argument order of a two-argument function. Applying Swap
// twice yields the original behavior.
//
// Example:
//
//	sub := func(a, b int) int { return a - b }
//	fmt.Println(curry.Swap(sub)(10, 3)) // -7
func Swap[A any, B any, R any](fn func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return fn(a, b)
	}
}

// Partial2 binds the first argument of a two-argument function, returning a
// function of the remaining one. It is the compile-time-checked cousin of
// partial.New for functions of known shape.
//
// Example:
//
//	prefix := curry.Partial2(strings.HasPrefix, "golang")
//	fmt.Println(prefix("go")) // true
func Partial2[A any, B any, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

// Partial3 binds the first argument of a three-argument function, returning
// a function of the remaining two.
func Partial3[A any, B any, C any, R any](fn func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return fn(a, b, c)
	}
}

package seq

// Iterator is a lazy, pull-based iterator. Values are produced one at a time
// as Next is called, so chains of MapIter/FilterIter/Take do no work for
// elements that are never requested.
type Iterator[T any] struct {
	next func() (T, bool)
}

// Next yields the next value. When ok is false, iteration is complete.
func (it Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	return it.next()
}

// FromSlice creates an iterator over the provided slice without copying.
func FromSlice[T any](values []T) Iterator[T] {
	idx := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if idx >= len(values) {
				var zero T
				return zero, false
			}
			v := values[idx]
			idx++
			return v, true
		},
	}
}

// Range creates an iterator over the half-open interval [from, to).
func Range(from, to int) Iterator[int] {
	current := from
	return Iterator[int]{
		next: func() (int, bool) {
			if current >= to {
				return 0, false
			}
			v := current
			current++
			return v, true
		},
	}
}

// Iterate creates an endless iterator whose values start at seed and advance
// through fn. Bound it with Take before draining.
func Iterate[T any](seed T, fn func(T) T) Iterator[T] {
	current := seed
	started := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !started {
				started = true
				return current, true
			}
			current = fn(current)
			return current, true
		},
	}
}

// Repeat creates an endless iterator that always yields value. Bound it
// with Take before draining.
func Repeat[T any](value T) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			return value, true
		},
	}
}

// MapIter lazily transforms iterator values.
func MapIter[A any, B any](it Iterator[A], fn func(A) B) Iterator[B] {
	return Iterator[B]{
		next: func() (B, bool) {
			v, ok := it.Next()
			if !ok {
				var zero B
				return zero, false
			}
			return fn(v), true
		},
	}
}

// FilterIter keeps values satisfying predicate.
func FilterIter[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if predicate(v) {
					return v, true
				}
			}
		},
	}
}

// Take returns an iterator that yields at most n elements.
func Take[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return Iterator[T]{}
	}
	count := 0
	return Iterator[T]{
		next: func() (T, bool) {
			if count >= n {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok {
				var zero T
				return zero, false
			}
			count++
			return v, true
		},
	}
}

// TakeWhile yields values while predicate holds and stops permanently at
// the first value that fails it.
func TakeWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	stopped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if stopped {
				var zero T
				return zero, false
			}
			v, ok := it.Next()
			if !ok || !predicate(v) {
				stopped = true
				var zero T
				return zero, false
			}
			return v, true
		},
	}
}

// DropWhile skips leading values satisfying predicate and yields everything
// from the first failing value on.
func DropWhile[T any](it Iterator[T], predicate func(T) bool) Iterator[T] {
	dropping := true
	return Iterator[T]{
		next: func() (T, bool) {
			for {
				v, ok := it.Next()
				if !ok {
					var zero T
					return zero, false
				}
				if dropping && predicate(v) {
					continue
				}
				dropping = false
				return v, true
			}
		},
	}
}

// Drop skips the first n elements.
func Drop[T any](it Iterator[T], n int) Iterator[T] {
	if n <= 0 {
		return it
	}
	skipped := false
	return Iterator[T]{
		next: func() (T, bool) {
			if !skipped {
				for range n {
					if _, ok := it.Next(); !ok {
						var zero T
						return zero, false
					}
				}
				skipped = true
			}
			return it.Next()
		},
	}
}

// ToSlice exhausts the iterator and collects its values.
func ToSlice[T any](it Iterator[T]) []T {
	var result []T
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		result = append(result, v)
	}
	if result == nil {
		return []T{}
	}
	return result
}

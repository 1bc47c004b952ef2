// Package seq offers eager and lazy functional helpers for Go slices. Eager
// helpers never mutate their input and never share backing arrays with it;
// lazy ones build pull-based iterators that do work only when drained.
package seq

import (
	"sort"

	"github.com/charmingruby/funkit/fun"
	"golang.org/x/exp/constraints"
)

// Number constrains the numeric helpers to Go's built-in numeric types.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Map transforms each element using fn and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate. The returned slice shares no
// backing array with the input to preserve immutability.
func Filter[T any](in []T, predicate func(T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	result := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FlatMap applies fn to each element and concatenates the resulting slices.
func FlatMap[A any, B any](in []A, fn func(A) []B) []B {
	if len(in) == 0 {
		return []B{}
	}
	var out []B
	for _, v := range in {
		chunk := fn(v)
		if len(chunk) == 0 {
			continue
		}
		out = append(out, chunk...)
	}
	if out == nil {
		return []B{}
	}
	return out
}

// FoldLeft reduces the slice from left to right using the provided
// accumulator.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// FoldRight reduces the slice from right to left. fn receives the element
// first and the accumulator second, mirroring the traversal direction.
func FoldRight[A any, B any](in []A, init B, fn func(A, B) B) B {
	acc := init
	for i := len(in) - 1; i >= 0; i-- {
		acc = fn(in[i], acc)
	}
	return acc
}

// Reduce applies fn across elements, returning false when slice empty.
func Reduce[T any](in []T, fn func(T, T) T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	acc := in[0]
	for i := 1; i < len(in); i++ {
		acc = fn(acc, in[i])
	}
	return acc, true
}

// Each runs fn for every element in order. It exists for side effects only.
func Each[T any](in []T, fn func(T)) {
	for _, v := range in {
		fn(v)
	}
}

// Find returns the first element satisfying predicate. Pair it with
// maybe.FromOk to lift the result into a container.
func Find[T any](in []T, predicate func(T) bool) (T, bool) {
	for _, v := range in {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Any reports whether any element satisfies predicate.
func Any[T any](in []T, predicate func(T) bool) bool {
	for _, v := range in {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether all elements satisfy predicate.
func All[T any](in []T, predicate func(T) bool) bool {
	for _, v := range in {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Contains reports whether the slice holds target.
func Contains[T comparable](in []T, target T) bool {
	for _, v := range in {
		if v == target {
			return true
		}
	}
	return false
}

// GroupBy groups elements by the key returned from keySelector.
func GroupBy[T any, K comparable](in []T, keySelector func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, v := range in {
		key := keySelector(v)
		groups[key] = append(groups[key], v)
	}
	return groups
}

// DistinctBy removes duplicates determined by keySelector, preserving order.
func DistinctBy[T any, K comparable](in []T, keySelector func(T) K) []T {
	if len(in) == 0 {
		return []T{}
	}
	seen := make(map[K]struct{}, len(in))
	result := make([]T, 0, len(in))
	for _, v := range in {
		key := keySelector(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, v)
	}
	return result
}

// Partition splits the slice into two slices based on predicate outcome.
func Partition[T any](in []T, predicate func(T) bool) ([]T, []T) {
	if len(in) == 0 {
		return []T{}, []T{}
	}
	matches := make([]T, 0, len(in))
	rest := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			matches = append(matches, v)
		} else {
			rest = append(rest, v)
		}
	}
	return matches, rest
}

// Collect applies fn to every element and keeps the transformed values for
// which fn reported true, fusing Filter and Map into one pass.
func Collect[A any, B any](in []A, fn func(A) (B, bool)) []B {
	if len(in) == 0 {
		return []B{}
	}
	result := make([]B, 0, len(in))
	for _, v := range in {
		if out, ok := fn(v); ok {
			result = append(result, out)
		}
	}
	return result
}

// ScanLeft folds from the left while recording every intermediate
// accumulator, starting with init. The result is always one element longer
// than the input.
func ScanLeft[A any, B any](in []A, init B, fn func(B, A) B) []B {
	result := make([]B, 0, len(in)+1)
	acc := init
	result = append(result, acc)
	for _, v := range in {
		acc = fn(acc, v)
		result = append(result, acc)
	}
	return result
}

// Chunk splits the slice into consecutive groups of at most size elements.
// Each chunk is a fresh slice; a non-positive size yields no chunks.
func Chunk[T any](in []T, size int) [][]T {
	if size <= 0 || len(in) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(in)+size-1)/size)
	for start := 0; start < len(in); start += size {
		end := start + size
		if end > len(in) {
			end = len(in)
		}
		chunk := make([]T, end-start)
		copy(chunk, in[start:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Window produces every contiguous run of exactly size elements. Each
// window is a fresh slice; inputs shorter than size yield no windows.
func Window[T any](in []T, size int) [][]T {
	if size <= 0 || size > len(in) {
		return [][]T{}
	}
	windows := make([][]T, 0, len(in)-size+1)
	for start := 0; start+size <= len(in); start++ {
		window := make([]T, size)
		copy(window, in[start:start+size])
		windows = append(windows, window)
	}
	return windows
}

// Reverse returns the elements in opposite order without touching the input.
func Reverse[T any](in []T) []T {
	if len(in) == 0 {
		return []T{}
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// SortBy returns a stably sorted copy ordered by less.
func SortBy[T any](in []T, less func(a, b T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	out := make([]T, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// SortOn returns a stably sorted copy ordered by the key extracted from each
// element.
func SortOn[T any, K constraints.Ordered](in []T, key func(T) K) []T {
	return SortBy(in, func(a, b T) bool {
		return key(a) < key(b)
	})
}

// Zip combines two slices into a slice of pairs up to the shortest length.
func Zip[A any, B any](a []A, b []B) []fun.Pair[A, B] {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	result := make([]fun.Pair[A, B], limit)
	for i := range limit {
		result[i] = fun.PairOf(a[i], b[i])
	}
	return result
}

// Unzip splits a slice of pairs back into two slices.
func Unzip[A any, B any](pairs []fun.Pair[A, B]) ([]A, []B) {
	if len(pairs) == 0 {
		return []A{}, []B{}
	}
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i], bs[i] = p.Unpack()
	}
	return as, bs
}

// Sum adds every element, yielding zero for an empty slice.
func Sum[T Number](in []T) T {
	return FoldLeft(in, 0, func(acc, v T) T {
		return acc + v
	})
}

// Max returns the largest element, reporting false when the slice is empty.
func Max[T constraints.Ordered](in []T) (T, bool) {
	return Reduce(in, func(a, b T) T {
		if b > a {
			return b
		}
		return a
	})
}

// Min returns the smallest element, reporting false when the slice is empty.
func Min[T constraints.Ordered](in []T) (T, bool) {
	return Reduce(in, func(a, b T) T {
		if b < a {
			return b
		}
		return a
	})
}

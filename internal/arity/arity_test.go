package arity_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmingruby/funkit/internal/arity"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		want int
	}{
		{name: "nullary", fn: func() int { return 0 }, want: 0},
		{name: "unary", fn: func(int) {}, want: 1},
		{name: "binary", fn: strings.Contains, want: 2},
		{name: "four fixed", fn: strings.Replace, want: 4},
		{name: "variadic with fixed", fn: fmt.Sprintf, want: 1},
		{name: "variadic after two fixed", fn: func(a, b int, rest ...int) int { return a }, want: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := arity.Of(tc.fn)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestOfRejectsNonFunctions(t *testing.T) {
	_, err := arity.Of(42)
	require.ErrorIs(t, err, arity.ErrNotFunction)

	_, err = arity.Of(nil)
	require.ErrorIs(t, err, arity.ErrNotFunction)

	_, err = arity.Of("func")
	require.ErrorIs(t, err, arity.ErrNotFunction)
}

func TestOfRejectsPureVariadic(t *testing.T) {
	_, err := arity.Of(func(...int) int { return 0 })
	require.ErrorIs(t, err, arity.ErrIndeterminate)

	_, err = arity.Of(func(...string) {})
	require.ErrorIs(t, err, arity.ErrIndeterminate)
}

func TestValidate(t *testing.T) {
	add := func(a, b int) int { return a + b }

	require.NoError(t, arity.Validate(add, 2))
	require.ErrorIs(t, arity.Validate(add, 1), arity.ErrBadArity)
	require.ErrorIs(t, arity.Validate(add, 3), arity.ErrBadArity)
	require.ErrorIs(t, arity.Validate(add, -1), arity.ErrBadArity)
}

func TestValidateVariadic(t *testing.T) {
	join := func(sep string, parts ...string) string {
		return strings.Join(parts, sep)
	}

	require.NoError(t, arity.Validate(join, 1), "fixed parameters alone are enough")
	require.NoError(t, arity.Validate(join, 4), "extras flow into the variadic slot")
	require.ErrorIs(t, arity.Validate(join, 0), arity.ErrBadArity)

	sum := func(ns ...int) int { return len(ns) }
	require.NoError(t, arity.Validate(sum, 0))
	require.NoError(t, arity.Validate(sum, 5))
}

func TestValidateRejectsNonFunctions(t *testing.T) {
	require.ErrorIs(t, arity.Validate(3.14, 1), arity.ErrNotFunction)
	require.ErrorIs(t, arity.Validate(nil, 0), arity.ErrNotFunction)
}

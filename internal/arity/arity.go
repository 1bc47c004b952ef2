// Package arity hosts internal function introspection shared by the partial
// application engine.
//
// Example:
//
//	n, err := arity.Of(strings.Repeat) // 2, nil
package arity

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotFunction reports that the inspected value is not a function.
	ErrNotFunction = errors.New("arity: value is not a function")

	// ErrIndeterminate reports that the function's argument count cannot be
	// pinned down. Only variadic functions without fixed parameters fall in
	// this bucket; supply an explicit count to use them anyway.
	ErrIndeterminate = errors.New("arity: variadic function has no fixed argument count")

	// ErrBadArity reports that an explicitly supplied argument count is
	// incompatible with the function's signature.
	ErrBadArity = errors.New("arity: argument count incompatible with function signature")
)

// Of reports how many arguments fn expects. The variadic slot of a variadic
// function does not count, so Of(fmt.Printf) is 1. A variadic function with
// no fixed parameters yields ErrIndeterminate.
//
// Example:
//
//	n, _ := arity.Of(strings.Contains) // 2
func Of(fn any) (int, error) {
	typ, err := funcType(fn)
	if err != nil {
		return 0, err
	}
	n := typ.NumIn()
	if typ.IsVariadic() {
		n--
		if n == 0 {
			return 0, fmt.Errorf("%w: %s", ErrIndeterminate, typ)
		}
	}
	return n, nil
}

// Validate checks that fn can be invoked with exactly n arguments. For
// non-variadic functions n must match the parameter count; for variadic
// functions every fixed parameter must be covered while the variadic slot
// absorbs the rest.
func Validate(fn any, n int) error {
	typ, err := funcType(fn)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: negative count %d", ErrBadArity, n)
	}
	if typ.IsVariadic() {
		if n < typ.NumIn()-1 {
			return fmt.Errorf("%w: %s needs at least %d arguments, got %d",
				ErrBadArity, typ, typ.NumIn()-1, n)
		}
		return nil
	}
	if n != typ.NumIn() {
		return fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrBadArity, typ, typ.NumIn(), n)
	}
	return nil
}

func funcType(fn any) (reflect.Type, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotFunction)
	}
	typ := reflect.TypeOf(fn)
	if typ.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s", ErrNotFunction, typ)
	}
	return typ, nil
}

// Package partial implements partial application for functions whose shape
// is only known at runtime. A Partial accumulates arguments left to right
// across any number of Apply calls and invokes the wrapped function the
// moment the accumulated count reaches the function's arity.
//
// Example:
//
//	p, _ := partial.New(func(a, b, c int) int { return a + b + c })
//	p, _ = p.Apply(1)
//	p, _ = p.Apply(2, 3)
//	sum, _ := p.Result() // 6
//
// Partials are immutable: Apply returns a new value and never mutates its
// receiver, so a partially applied function can be shared and extended down
// different branches safely. For functions of statically known shape prefer
// the curry package, which moves every check to compile time.
package partial

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/charmingruby/funkit/internal/arity"
)

var (
	// ErrNotFunction reports that the supplied value is not a function.
	ErrNotFunction = arity.ErrNotFunction

	// ErrUnknownArity reports that the function's argument count cannot be
	// discovered. Build the Partial with WithArity to pin the count
	// explicitly.
	ErrUnknownArity = arity.ErrIndeterminate

	// ErrBadArity reports that an explicit argument count is incompatible
	// with the function's signature.
	ErrBadArity = arity.ErrBadArity

	// ErrTooManyArgs reports an Apply that would push the accumulated
	// argument count past the function's arity.
	ErrTooManyArgs = errors.New("partial: more arguments than the function accepts")

	// ErrArgumentType reports an argument that cannot be assigned to the
	// parameter it would fill.
	ErrArgumentType = errors.New("partial: argument type mismatch")

	// ErrNotDone reports access to results before the function was invoked.
	ErrNotDone = errors.New("partial: function has not been invoked yet")

	// ErrSaturated reports an Apply on a Partial whose function already ran.
	ErrSaturated = errors.New("partial: function already invoked")
)

// Partial carries a function together with the arguments accumulated so
// far. The zero value is not usable; build Partials with New or WithArity.
type Partial struct {
	fn      reflect.Value
	arity   int
	args    []reflect.Value
	results []reflect.Value
	done    bool
}

// New builds a Partial around fn, discovering its arity by reflection. The
// variadic slot of a variadic function does not count toward the arity, and
// a variadic function without fixed parameters yields ErrUnknownArity; use
// WithArity to serve those.
//
// Example:
//
//	p, err := partial.New(strings.Replace)
//	if err != nil {
//		return err
//	}
func New(fn any) (Partial, error) {
	n, err := arity.Of(fn)
	if err != nil {
		return Partial{}, err
	}
	return Partial{fn: reflect.ValueOf(fn), arity: n}, nil
}

// WithArity builds a Partial that saturates after exactly n arguments,
// overriding reflection. Non-variadic functions only accept their natural
// count; variadic functions accept any n covering the fixed parameters,
// with extras flowing into the variadic slot at invocation.
//
// Example:
//
//	p, _ := partial.WithArity(fmt.Sprint, 3)
func WithArity(fn any, n int) (Partial, error) {
	if err := arity.Validate(fn, n); err != nil {
		return Partial{}, err
	}
	return Partial{fn: reflect.ValueOf(fn), arity: n}, nil
}

// Apply returns a new Partial extended with args, leaving the receiver
// untouched. When the accumulated count reaches the arity the wrapped
// function is invoked during this call and the returned Partial carries its
// results. Applying zero arguments is valid and triggers invocation for
// zero-arity functions.
func (p Partial) Apply(args ...any) (Partial, error) {
	if p.fn.Kind() != reflect.Func {
		return Partial{}, fmt.Errorf("%w: build Partials with New or WithArity", ErrNotFunction)
	}
	if p.done {
		return Partial{}, ErrSaturated
	}
	if len(p.args)+len(args) > p.arity {
		return Partial{}, fmt.Errorf("%w: %s saturates at %d, got %d",
			ErrTooManyArgs, p.fn.Type(), p.arity, len(p.args)+len(args))
	}

	next := Partial{fn: p.fn, arity: p.arity}
	next.args = make([]reflect.Value, len(p.args), len(p.args)+len(args))
	copy(next.args, p.args)

	for i, arg := range args {
		value, err := coerce(arg, p.paramType(len(p.args)+i))
		if err != nil {
			return Partial{}, fmt.Errorf("%w at position %d: %v",
				ErrArgumentType, len(p.args)+i, err)
		}
		next.args = append(next.args, value)
	}

	if len(next.args) == next.arity {
		next.results = next.fn.Call(next.args)
		next.done = true
	}
	return next, nil
}

// Done reports whether the wrapped function has been invoked.
func (p Partial) Done() bool {
	return p.done
}

// Arity reports the number of arguments that saturate the Partial.
func (p Partial) Arity() int {
	return p.arity
}

// Remaining reports how many arguments are still missing, zero once done.
func (p Partial) Remaining() int {
	return p.arity - len(p.args)
}

// Results returns every value the invocation produced, or ErrNotDone when
// arguments are still missing. The returned slice never shares backing
// storage with the Partial.
func (p Partial) Results() ([]any, error) {
	if !p.done {
		return nil, fmt.Errorf("%w: %d arguments still missing", ErrNotDone, p.Remaining())
	}
	out := make([]any, len(p.results))
	for i, r := range p.results {
		out[i] = r.Interface()
	}
	return out, nil
}

// Result returns the first value the invocation produced, or nil when the
// function returns nothing. It fails with ErrNotDone when arguments are
// still missing.
func (p Partial) Result() (any, error) {
	results, err := p.Results()
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// UnsafeResults returns the invocation results or panics when the function
// has not run yet. It should only be used where saturation is guaranteed.
func (p Partial) UnsafeResults() []any {
	results, err := p.Results()
	if err != nil {
		panic(err)
	}
	return results
}

// String implements fmt.Stringer for debugging.
func (p Partial) String() string {
	if p.fn.Kind() != reflect.Func {
		return "Partial(invalid)"
	}
	if p.done {
		return fmt.Sprintf("Partial(%s: done)", p.fn.Type())
	}
	return fmt.Sprintf("Partial(%s: %d/%d)", p.fn.Type(), len(p.args), p.arity)
}

// paramType resolves the parameter type filled by the argument at position
// i, unwrapping the element type for positions absorbed by a variadic slot.
func (p Partial) paramType(i int) reflect.Type {
	typ := p.fn.Type()
	if typ.IsVariadic() && i >= typ.NumIn()-1 {
		return typ.In(typ.NumIn() - 1).Elem()
	}
	return typ.In(i)
}

// coerce turns an any into a reflect.Value assignable to want. Arguments
// are never converted between types; an untyped nil is accepted only for
// parameters that can hold nil.
func coerce(arg any, want reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
			reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(want), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", want)
		}
	}
	value := reflect.ValueOf(arg)
	if !value.Type().AssignableTo(want) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", value.Type(), want)
	}
	return value, nil
}

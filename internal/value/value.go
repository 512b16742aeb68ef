/*
File    : lox/internal/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the runtime value model for Lox: the closed set
// of values that expressions can produce. It mirrors go-mix's
// objects.GoMixObject pattern (a small interface every concrete value
// type implements) but narrowed to Lox's closed sum: Number, String,
// Bool, Nil, Callable.
package value

import (
	"math"
	"strconv"
)

// Value is the interface every Lox runtime value implements.
type Value interface {
	// Type returns a short tag for the value's kind, used in error
	// messages and type switches ("number", "string", "bool", "nil",
	// "function").
	Type() string
	// String renders the value the way `print` and the REPL display it:
	// numbers shortest-round-trip, strings raw, bool true/false, nil as
	// "nil", callables as "Function : <arity>" or "Native function".
	String() string
}

// Number wraps an IEEE-754 double.
type Number struct{ Value float64 }

func (Number) Type() string { return "number" }

func (n Number) String() string {
	switch {
	case math.IsNaN(n.Value):
		return "nan"
	case math.IsInf(n.Value, 1):
		return "inf"
	case math.IsInf(n.Value, -1):
		return "-inf"
	default:
		return strconv.FormatFloat(n.Value, 'f', -1, 64)
	}
}

// String_ wraps a Lox string value. Named with a trailing underscore to
// avoid shadowing the built-in `string` type, the same convention the
// original Rust scanner.rs uses for its `String_` token kind.
type String_ struct{ Value string }

func (String_) Type() string     { return "string" }
func (s String_) String() string { return s.Value }

// Bool wraps a Lox boolean.
type Bool struct{ Value bool }

func (Bool) Type() string { return "bool" }

func (b Bool) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Nil is the singleton nil value. Use the package-level NilValue variable
// rather than constructing one, so comparisons against Nil work by type
// assertion alone.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the single shared Nil instance. Declarations without an
// initializer, calls without a return, and absent return expressions all
// evaluate to this.
var NilValue Value = Nil{}

// Callable is any value that can appear as the callee of a Call
// expression: a native function or a user-defined function (see package
// function for the concrete UserFunction implementation).
type Callable interface {
	Value
	Arity() int
}

// Native wraps a host Go function as a Lox callable, mirroring go-mix's
// std.Builtin/CallbackFunc plumbing (package natives) but specialized to
// Lox's single pre-bound native, clock.
type Native struct {
	NativeName  string
	NativeArity int
	Fn          func(args []Value) (Value, error)
}

func (n *Native) Type() string   { return "function" }
func (n *Native) String() string { return "Native function" }
func (n *Native) Arity() int     { return n.NativeArity }
func (n *Native) Call(args []Value) (Value, error) { return n.Fn(args) }

// IsTruthy implements Lox truthiness: Nil and boolean false are falsy,
// everything else, including 0, "", and any callable, is truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Bool:
		return vv.Value
	default:
		return true
	}
}

// Equal implements Lox's `==`. Same-kind values compare structurally,
// different-kind pairs are always unequal, and two Callables are always
// unequal to each other: Lox defines no identity semantics for functions.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case String_:
		bv, ok := b.(String_)
		return ok && av.Value == bv.Value
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Value == bv.Value
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		return false
	}
}

/*
File    : lox/internal/natives/natives.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package natives holds the host-backed Callables bound into the global
// environment at interpreter startup. It keeps go-mix's std.Builtin
// registration idiom (a name, a callback, a global list assembled via
// init-time registration) but narrowed to Lox's single native, clock,
// dropping the rest of go-mix's std surface (arrays, maps, strings,
// http, json, crypto...) since none of it has a home in a language with
// no collections or classes.
package natives

import (
	"time"

	"github.com/akashmaji946/lox/internal/loxenv"
	"github.com/akashmaji946/lox/internal/value"
)

// registered lists every native bound into the global scope. Modeled on
// go-mix's package-level Builtins slice, assembled once at package load.
var registered = []*value.Native{
	{NativeName: "clock", NativeArity: 0, Fn: clock},
}

// Register defines every native in env, which should be the interpreter's
// global scope.
func Register(env *loxenv.Environment) {
	for _, n := range registered {
		env.Define(n.NativeName, n)
	}
}

// clock returns the number of seconds since the Unix epoch, as a float
// with sub-second precision. It takes no arguments.
func clock(args []value.Value) (value.Value, error) {
	return value.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
}

/*
File    : lox/internal/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements the user-defined function Callable,
// mirroring go-mix's function.Function (name, params, body, captured
// scope) but rebuilt on ast.FunctionDecl and loxenv.Environment, and
// without go-mix's return-as-error-wrapper hack: Call here returns the
// function's result as a plain value.Value, with any error being a
// genuine runtime failure.
//
// This package sits between value/loxenv and interp: it depends on both
// but interp depends on it, so defining UserFunction here (rather than in
// interp, alongside value.Callable, or inside loxenv) is what keeps the
// value -> loxenv -> function -> interp chain acyclic.
package function

import (
	"strconv"

	"github.com/akashmaji946/lox/internal/ast"
	"github.com/akashmaji946/lox/internal/loxenv"
	"github.com/akashmaji946/lox/internal/value"
)

// Executor runs a function body against a fresh call-frame environment
// and reports its result. Package interp implements this; function stays
// decoupled from the statement-execution machinery so it can be imported
// by interp without creating a cycle.
type Executor interface {
	ExecuteBlock(body []ast.Stmt, env *loxenv.Environment) (value.Value, error)
}

// UserFunction is the runtime representation of a `fun` declaration: its
// parameter list, its body, and the environment active where it was
// declared (its closure).
type UserFunction struct {
	Decl    *ast.FunctionDecl
	Closure *loxenv.Environment
}

func New(decl *ast.FunctionDecl, closure *loxenv.Environment) *UserFunction {
	return &UserFunction{Decl: decl, Closure: closure}
}

func (f *UserFunction) Type() string { return "function" }

// String renders as "Function : <arity>", matching value.Value's
// documented contract for every Callable.
func (f *UserFunction) String() string {
	return "Function : " + strconv.Itoa(f.Arity())
}

func (f *UserFunction) Arity() int { return len(f.Decl.Params) }

// Call binds args to the function's parameters in a new scope chained
// off the closure (not off the caller's environment) and executes the
// body through exec. A function with no explicit return yields nil.
func (f *UserFunction) Call(exec Executor, args []value.Value) (value.Value, error) {
	callEnv := loxenv.New(f.Closure)
	for i, param := range f.Decl.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	return exec.ExecuteBlock(f.Decl.Body, callEnv)
}

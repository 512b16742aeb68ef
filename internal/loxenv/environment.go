/*
File    : lox/internal/loxenv/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxenv implements the environment chain: a mapping from name to
// value, plus an optional handle to a parent scope. This is kept and
// renamed from go-mix's scope package (scope/scope.go), narrowed to
// define/assign/get/new-enclosing and without go-mix's const/let/type
// tracking, which Lox has no use for.
//
// Environments are heap-allocated and referenced by pointer, so a
// *Environment captured by a closure keeps the scope, and everything
// reachable from it, alive after the block that created it has finished
// executing. The natural topology is acyclic (parent pointers point
// strictly outward toward the global scope), but a function that closes
// over the scope holding its own binding (`fun f() { f(); }`) creates a
// reference cycle; the Go garbage collector reclaims such cycles, unlike
// a reference-counted implementation.
package loxenv

import "github.com/akashmaji946/lox/internal/value"

// Environment is one lexical scope frame. Parent is nil only for the
// global (root) environment.
type Environment struct {
	values map[string]value.Value
	Parent *Environment
}

// New creates a scope whose parent is the given environment, or the
// global scope if parent is nil.
func New(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]value.Value),
		Parent: parent,
	}
}

// Define binds name to v in this scope only. Redeclaring an existing
// name in the same scope silently overwrites it.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get walks outward from this scope looking for name, returning an error
// if it is bound nowhere in the chain.
func (e *Environment) Get(name string) (value.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign walks outward looking for an existing binding of name and
// updates it in the first scope where it is found. It errors if name is
// bound nowhere in the chain, assignment never creates a new binding.
func (e *Environment) Assign(name string, v value.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return &UndefinedVariableError{Name: name}
}

// UndefinedVariableError is returned by Get and Assign when name is not
// bound anywhere in the environment chain.
type UndefinedVariableError struct{ Name string }

func (e *UndefinedVariableError) Error() string {
	return "Undefined variable '" + e.Name + "'."
}

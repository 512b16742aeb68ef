/*
File    : lox/internal/loxenv/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package loxenv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox/internal/value"
)

func TestDefineThenGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number{Value: 7})

	got, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number{Value: 7}, got)
}

func TestGetUnboundFails(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestAssignUnboundFails(t *testing.T) {
	env := New(nil)
	err := env.Assign("missing", value.Number{Value: 1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestAssignWalksOutwardToEnclosingScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)

	err := inner.Assign("x", value.Number{Value: 2})
	assert.NoError(t, err)

	got, err := outer.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number{Value: 2}, got)
}

func TestDefineInInnerScopeShadowsOuter(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)
	inner.Define("x", value.Number{Value: 99})

	got, err := inner.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number{Value: 99}, got)

	outerGot, err := outer.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number{Value: 1}, outerGot)
}

func TestInnerScopeSeesOuterBinding(t *testing.T) {
	outer := New(nil)
	outer.Define("greeting", value.String_{Value: "hi"})
	inner := New(outer)

	got, err := inner.Get("greeting")
	assert.NoError(t, err)
	assert.Equal(t, value.String_{Value: "hi"}, got)
}

/*
File    : lox/internal/interp/interp_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/internal/lexer"
	"github.com/akashmaji946/lox/internal/parser"
)

// run lexes, parses, and interprets src, returning what was written to
// stdout (one line per call to `print`) and any error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	toks, errs := lexer.New(src).Scan()
	require.Empty(t, errs)

	stmts, err := parser.New(toks).Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	it := New()
	it.SetWriter(&buf)
	err = it.Interpret(stmts)
	return strings.TrimRight(buf.String(), "\n"), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, "print 1 + 2 * 3;")
	require.NoError(t, err)
	assert.Equal(t, "7", out)
}

func TestStringConcatenationAndReassignment(t *testing.T) {
	out, err := run(t, `var a = "hi"; a = a + "!"; print a;`)
	require.NoError(t, err)
	assert.Equal(t, "hi!", out)
}

func TestBlockScopingShadowsThenRestores(t *testing.T) {
	out, err := run(t, `{ var x = 1; { var x = 2; print x; } print x; }`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1", out)
}

func TestWhileLoop(t *testing.T) {
	out, err := run(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2", out)
}

// TestClosureCounterRetainsEnclosingEnvironment is the closure litmus
// test: a function returned from makeCounter must keep observing and
// mutating the `n` binding from its defining scope across calls, even
// though that scope's block has long since finished executing.
func TestClosureCounterRetainsEnclosingEnvironment(t *testing.T) {
	out, err := run(t, `
fun makeCounter() {
  var n = 0;
  fun c() {
    n = n + 1;
    print n;
  }
  return c;
}
var k = makeCounter();
k();
k();
k();
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3", out)
}

func TestLogicalOperatorsShortCircuitAndReturnOperand(t *testing.T) {
	out, err := run(t, `print nil or "a"; print false and "b"; print true and "c";`)
	require.NoError(t, err)
	assert.Equal(t, "a\nfalse\nc", out)
}

func TestUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, "print missing;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable")
}

func TestCallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes")
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1")
}

func TestAddingNumberAndStringIsRuntimeError(t *testing.T) {
	_, err := run(t, `print "a" + 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands must be two numbers or two strings")
}

func TestDivisionByZeroFollowsIEEESemantics(t *testing.T) {
	out, err := run(t, `print 1 / 0; print -1 / 0; print 0 / 0;`)
	require.NoError(t, err)
	assert.Equal(t, "inf\n-inf\nnan", out)
}

func TestReturnAtTopLevelIsRuntimeError(t *testing.T) {
	_, err := run(t, "return 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "return from top level")
}

func TestFunctionWithoutExplicitReturnYieldsNil(t *testing.T) {
	out, err := run(t, `fun f() { var x = 1; } print f();`)
	require.NoError(t, err)
	assert.Equal(t, "nil", out)
}

func TestForLoopDesugarsAndRunsToCompletion(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2", out)
}

func TestClockIsCallableWithZeroArity(t *testing.T) {
	out, err := run(t, `print clock() > 0;`)
	require.NoError(t, err)
	assert.Equal(t, "true", out)
}

// TestReturnNestedUnderWhileUnwindsToCall guards against a braced block
// swallowing a return signal meant for its enclosing function: `return`
// inside a `while` body's `{}` must unwind past the loop entirely rather
// than just exiting that one iteration's block scope.
func TestReturnNestedUnderWhileUnwindsToCall(t *testing.T) {
	out, err := run(t, `fun f() { while (true) { return 42; } } print f();`)
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

// TestReturnNestedUnderIfUnwindsToCall is the same guard for `if`: a
// `return` inside the then-branch's `{}` must preempt the function's
// trailing statement, not just fall through the block.
func TestReturnNestedUnderIfUnwindsToCall(t *testing.T) {
	out, err := run(t, `fun g() { if (true) { return 1; } return 2; } print g();`)
	require.NoError(t, err)
	assert.Equal(t, "1", out)
}

/*
File    : lox/internal/natives/natives_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package natives

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/internal/loxenv"
	"github.com/akashmaji946/lox/internal/value"
)

func TestRegisterDefinesClockInGlobalScope(t *testing.T) {
	env := loxenv.New(nil)
	Register(env)

	got, err := env.Get("clock")
	require.NoError(t, err)

	fn, ok := got.(value.Callable)
	require.True(t, ok)
	assert.Equal(t, 0, fn.Arity())
}

func TestClockReturnsSecondsSinceEpoch(t *testing.T) {
	before := float64(time.Now().Unix())
	result, err := clock(nil)
	require.NoError(t, err)

	n, ok := result.(value.Number)
	require.True(t, ok)
	assert.GreaterOrEqual(t, n.Value, before)
}

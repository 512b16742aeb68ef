/*
File    : lox/internal/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberString_IntegerHasNoTrailingDot(t *testing.T) {
	assert.Equal(t, "7", Number{Value: 7}.String())
	assert.Equal(t, "3.14", Number{Value: 3.14}.String())
	assert.Equal(t, "-2.5", Number{Value: -2.5}.String())
}

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(Nil{}))
	assert.False(t, IsTruthy(Bool{Value: false}))
	assert.True(t, IsTruthy(Bool{Value: true}))
	assert.True(t, IsTruthy(Number{Value: 0}))
	assert.True(t, IsTruthy(String_{Value: ""}))
}

func TestEqual_CrossKindAlwaysFalse(t *testing.T) {
	assert.False(t, Equal(Number{Value: 1}, String_{Value: "1"}))
	assert.False(t, Equal(Nil{}, Bool{Value: false}))
}

func TestEqual_SameKindStructural(t *testing.T) {
	assert.True(t, Equal(Number{Value: 2}, Number{Value: 2}))
	assert.True(t, Equal(Nil{}, Nil{}))
	assert.False(t, Equal(String_{Value: "a"}, String_{Value: "b"}))
}

func TestEqual_CallablesAlwaysFalse(t *testing.T) {
	f := &Native{NativeName: "clock", NativeArity: 0}
	assert.False(t, Equal(f, f))
}

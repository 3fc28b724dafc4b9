package runtime_test

import (
	"testing"

	"github.com/loxscript/lox/internal/runtime"
	"github.com/stretchr/testify/assert"
)

func TestTruthiness(t *testing.T) {
	assert.False(t, runtime.Truthy(runtime.Nil))
	assert.False(t, runtime.Truthy(runtime.BoolValue(false)))
	assert.True(t, runtime.Truthy(runtime.BoolValue(true)))
	assert.True(t, runtime.Truthy(runtime.NumberValue(0)))
	assert.True(t, runtime.Truthy(runtime.StringValue("")))
}

func TestNumberStringTrimsTrailingZeroFraction(t *testing.T) {
	assert.Equal(t, "3", runtime.NumberValue(3).String())
	assert.Equal(t, "3.5", runtime.NumberValue(3.5).String())
	assert.Equal(t, "-1", runtime.NumberValue(-1).String())
}

func TestEqualNilOnlyEqualsNil(t *testing.T) {
	assert.True(t, runtime.Equal(runtime.Nil, runtime.Nil))
	assert.False(t, runtime.Equal(runtime.Nil, runtime.BoolValue(false)))
}

func TestEqualStructuralForPrimitives(t *testing.T) {
	assert.True(t, runtime.Equal(runtime.NumberValue(1), runtime.NumberValue(1)))
	assert.False(t, runtime.Equal(runtime.NumberValue(1), runtime.NumberValue(2)))
	assert.True(t, runtime.Equal(runtime.StringValue("a"), runtime.StringValue("a")))
	assert.False(t, runtime.Equal(runtime.StringValue("a"), runtime.NumberValue(1)))
}

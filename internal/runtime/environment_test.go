package runtime_test

import (
	"testing"

	"github.com/loxscript/lox/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := runtime.New()
	env.Define("a", runtime.NumberValue(1))

	v, err := env.Get("a")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue(1), v)
}

func TestEnvironmentGetUndefinedReportsError(t *testing.T) {
	env := runtime.New()
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestEnvironmentGetFallsThroughToEnclosing(t *testing.T) {
	outer := runtime.New()
	outer.Define("a", runtime.NumberValue(1))
	inner := runtime.NewEnclosed(outer)

	v, err := inner.Get("a")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue(1), v)
}

func TestEnvironmentShadowingDoesNotLeakOutward(t *testing.T) {
	outer := runtime.New()
	outer.Define("a", runtime.NumberValue(1))
	inner := runtime.NewEnclosed(outer)
	inner.Define("a", runtime.NumberValue(2))

	innerV, err := inner.Get("a")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue(2), innerV)

	outerV, err := outer.Get("a")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue(1), outerV)
}

func TestEnvironmentAssignUpdatesNearestBinding(t *testing.T) {
	outer := runtime.New()
	outer.Define("a", runtime.NumberValue(1))
	inner := runtime.NewEnclosed(outer)

	require.NoError(t, inner.Assign("a", runtime.NumberValue(9)))

	v, err := outer.Get("a")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue(9), v)
}

func TestEnvironmentAssignUndefinedReportsError(t *testing.T) {
	env := runtime.New()
	err := env.Assign("nope", runtime.NumberValue(1))
	assert.Error(t, err)
}

func TestEnvironmentGetAtAndAssignAtUseExactDistance(t *testing.T) {
	global := runtime.New()
	global.Define("a", runtime.NumberValue(100))
	middle := runtime.NewEnclosed(global)
	middle.Define("a", runtime.NumberValue(200))
	inner := runtime.NewEnclosed(middle)

	assert.Equal(t, runtime.NumberValue(200), inner.GetAt(1, "a"))
	assert.Equal(t, runtime.NumberValue(100), inner.GetAt(2, "a"))

	inner.AssignAt(2, "a", runtime.NumberValue(999))
	v, err := global.Get("a")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue(999), v)

	// middle's own binding must be untouched.
	midV, err := middle.Get("a")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumberValue(200), midV)
}

func TestEnvironmentEnclosingReturnsParent(t *testing.T) {
	outer := runtime.New()
	inner := runtime.NewEnclosed(outer)
	assert.Same(t, outer, inner.Enclosing())
	assert.Nil(t, outer.Enclosing())
}

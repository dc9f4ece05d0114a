package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nibble-lang/nibble/pkg/env"
)

func TestEnvGetSetInCurrentScope(t *testing.T) {
	e := env.New()
	e.Set("x", env.Number(1))

	v, ok := e.Get("x")
	require.True(t, ok)
	assert.Equal(t, env.Number(1), v)
}

func TestEnvGetMissingReportsNotFound(t *testing.T) {
	e := env.New()

	_, ok := e.Get("missing")
	assert.False(t, ok)

	_, err := e.MustGet("missing")
	require.Error(t, err)
	assert.True(t, env.ErrNotFound(err))
	assert.Equal(t, "binding with name 'missing' does not exist", err.Error())
}

func TestEnvExtendSeesParentBindings(t *testing.T) {
	parent := env.New()
	parent.Set("x", env.Number(10))

	child := parent.Extend()
	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, env.Number(10), v)
}

func TestEnvChildShadowsWithoutMutatingParent(t *testing.T) {
	parent := env.New()
	parent.Set("x", env.Number(1))

	child := parent.Extend()
	child.Set("x", env.Number(2))

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")

	assert.Equal(t, env.Number(2), childVal)
	assert.Equal(t, env.Number(1), parentVal)
}

func TestValueEquality(t *testing.T) {
	assert.True(t, env.Number(5).Equals(env.Number(5)))
	assert.False(t, env.Number(5).Equals(env.Number(6)))
	assert.True(t, env.Unit{}.Equals(env.Unit{}))
	assert.False(t, env.Number(0).Equals(env.Unit{}))
	assert.Equal(t, "5", env.Number(5).String())
	assert.Equal(t, "()", env.Unit{}.String())
}

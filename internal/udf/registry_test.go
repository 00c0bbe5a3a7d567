package udf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushDefineLookupPop(t *testing.T) {
	r := NewRegistry()
	r.Push("scope1")
	r.Define("f(1)", "(a)", "a+1")

	args, body, ok := r.Lookup("f(1)")
	require.True(t, ok)
	assert.Equal(t, "(a)", args)
	assert.Equal(t, "a+1", body)

	owner := r.Pop()
	assert.Equal(t, "scope1", owner)

	_, _, ok = r.Lookup("f(1)")
	assert.False(t, ok)
}

func TestNestedScopesShadow(t *testing.T) {
	r := NewRegistry()
	r.Push("outer")
	r.Define("g(1)", "(a)", "a*2")
	r.Push("inner")
	r.Define("g(1)", "(a)", "a*3")

	_, body, ok := r.Lookup("g(1)")
	require.True(t, ok)
	assert.Equal(t, "a*3", body)

	r.Pop()
	_, body, ok = r.Lookup("g(1)")
	require.True(t, ok)
	assert.Equal(t, "a*2", body)
}

func TestPopEmptyReturnsNil(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Pop())
}

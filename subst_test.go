package paramsub

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSubstituteSimple(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=1 b=2"))
	assert.Equal(t, "1+2", tab.LineSubstitute("a+b"))
}

func TestLineSubstituteChained(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=b b=3"))
	assert.Equal(t, "3", tab.LineSubstitute("a"))
}

func TestLineSubstituteConcatGlue(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=1"))
	assert.Equal(t, "x1y", tab.LineSubstitute("x%a%y"))
}

func TestLineSubstituteRecursionDetected(t *testing.T) {
	tab := NewParamTable(nil)
	ClearError()
	require.NoError(t, tab.ExtractFromLine(".param a=b b=a"))
	got := tab.LineSubstitute("a")
	assert.Equal(t, "a", got)
	assert.True(t, strings.Contains(LastError(), "Recursion detected"))
}

func TestLineSubstituteUnknownNameUnchanged(t *testing.T) {
	tab := NewParamTable(nil)
	assert.Equal(t, "nosuchparam", tab.LineSubstitute("nosuchparam"))
}

func TestSquoteSubstitutePassthroughWithoutParser(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=2"))
	got := tab.LineSubstitute("'a+1'")
	assert.Equal(t, "'2+1'", got)
}

func TestSquoteSubstituteShellVarPassesThrough(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=2"))
	got := tab.LineSubstitute("'$HOME/a'")
	assert.Equal(t, "'$HOME/2'", got)
}

func TestCollapseExpandsEveryRecordOnce(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=1 b=a+1"))
	tab.Collapse()
	assert.Equal(t, "1+1", tab.Get("b").Sub)
	assert.True(t, tab.Get("b").Collapsed)
}

func TestSetCollapseOnLookupCollapsesOnFirstGetViaSubst(t *testing.T) {
	tab := NewParamTable(nil)
	tab.SetCollapseOnLookup(true)
	require.NoError(t, tab.ExtractFromLine(".param a=1 b=a+1"))
	assert.Equal(t, "1+1", tab.LineSubstitute("b"))
	assert.True(t, tab.Get("b").Collapsed)
}

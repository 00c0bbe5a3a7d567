package paramsub

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParamTablePredefs(t *testing.T) {
	tab := NewParamTable(nil)
	r := tab.Get(predefEngine)
	require.NotNil(t, r)
	assert.Equal(t, "1", r.Sub)
	assert.True(t, r.ReadOnly)

	r = tab.Get(predefRelease)
	require.NotNil(t, r)
	assert.Equal(t, ReleaseCode, r.Sub)
	assert.True(t, r.ReadOnly)
}

func TestExtractFromLineBasic(t *testing.T) {
	tab := NewParamTable(nil)
	err := tab.ExtractFromLine(".param a=1 b=2")
	require.NoError(t, err)

	got := tab.LineSubstitute("a+b")
	assert.Equal(t, "1+2", got)
}

func TestExtractFromLineReadOnlyProtected(t *testing.T) {
	tab := NewParamTable(nil)
	err := tab.ExtractFromLine(".param PARAMSUB_ENGINE=99")
	require.NoError(t, err)
	assert.Equal(t, "1", tab.Get(predefEngine).Sub)
}

func TestExtractFromLineFunctionDefinition(t *testing.T) {
	tab := NewParamTable(nil)
	err := tab.ExtractFromLine(".param func(a,b)=a+b")
	require.NoError(t, err)

	r := tab.Get("func(2)")
	require.NotNil(t, r)
	assert.True(t, r.IsFunc())
	assert.Equal(t, "(a,b)", r.Args)
	assert.Equal(t, 2, r.NumArgs)
}

func TestCopyIsDeep(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=1"))
	cp := tab.Copy()
	cp.Get("a").Sub = "99"
	assert.Equal(t, "1", tab.Get("a").Sub)
}

func TestDumpSortedOutput(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param zeta=1 alpha=2"))
	var buf strings.Builder
	tab.Dump(&buf)
	out := buf.String()
	assert.Less(t, strings.Index(out, "PARAMSUB_ENGINE"), strings.Index(out, "PARAMSUB_RELEASE"))
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "zeta"))
}

func TestUpdateFromTableOverridesAndAdds(t *testing.T) {
	dst := NewParamTable(nil)
	require.NoError(t, dst.ExtractFromLine(".param a=1"))
	src := NewParamTable(nil)
	require.NoError(t, src.ExtractFromLine(".param a=2 b=3"))
	dst.UpdateFromTable(src)
	assert.Equal(t, "2", dst.Get("a").Sub)
	assert.Equal(t, "3", dst.Get("b").Sub)
}

func TestUpdateFromLineOverridesExisting(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param a=1 b=2"))
	require.NoError(t, tab.UpdateFromLine("a=10"))
	assert.Equal(t, "10", tab.Get("a").Sub)
	assert.Equal(t, "2", tab.Get("b").Sub)
}

func TestUpdateFromLineNormalizesExistingFunction(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.ExtractFromLine(".param f(a,b)=a+b"))
	require.NoError(t, tab.UpdateFromLine("f(a,b)=a*b"))
	r := tab.Get("f(2)")
	require.NotNil(t, r)
	assert.Equal(t, "a*b", r.Sub)
	assert.True(t, r.IsFunc())
}

func TestUpdateFromLineDropsUnknownFunction(t *testing.T) {
	tab := NewParamTable(nil)
	require.NoError(t, tab.UpdateFromLine("f(a,b)=a*b"))
	assert.Nil(t, tab.Get("f(2)"))
}

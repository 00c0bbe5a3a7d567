package paramsub

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFromLineBadName(t *testing.T) {
	tab := NewParamTable(nil)
	err := tab.ExtractFromLine(".param 1abc=2")
	require.Error(t, err)
}

func TestExtractFromLineHspiceComment(t *testing.T) {
	tab := NewParamTable(nil)
	err := tab.ExtractFromLine(".param a=1 $ trailing comment not params")
	require.NoError(t, err)
	assert.Equal(t, "1", tab.Get("a").Sub)
	assert.Nil(t, tab.Get("trailing"))
}

func TestExtractFromLineMissingValue(t *testing.T) {
	tab := NewParamTable(nil)
	err := tab.ExtractFromLine(".param a=")
	require.Error(t, err)
}

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtsim/paramsub/internal/pcell"
)

func TestPrintHeaderNative(t *testing.T) {
	h, err := pcell.ParseHeader("body text\n")
	require.NoError(t, err)
	var out strings.Builder
	printHeader(&out, h)
	assert.Contains(t, out.String(), "language: native")
	assert.Contains(t, out.String(), "body bytes:")
}

func TestPrintHeaderPythonWithMD5(t *testing.T) {
	h, err := pcell.ParseHeader("@LANG python\n@MD5 deadbeef\nprint(1)\n")
	require.NoError(t, err)
	var out strings.Builder
	printHeader(&out, h)
	assert.Contains(t, out.String(), "language: python")
	assert.Contains(t, out.String(), "md5: deadbeef")
}

func TestRootCommandHasCheckSubcommand(t *testing.T) {
	root := newRootCmd()
	cmd, _, err := root.Find([]string{"check"})
	require.NoError(t, err)
	assert.Equal(t, "check", cmd.Name())
}

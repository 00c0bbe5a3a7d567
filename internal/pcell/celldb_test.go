package pcell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellDescDefaultsResolved(t *testing.T) {
	d := NewCellDesc("xic", "nmos4", "layout")
	d.Def("w", "float", "1u").Describe("gate width")
	d.Def("nf", "int", "1").Aka("fingers")

	got := d.Defaults()
	assert.Equal(t, "1u", got["w"])
	assert.Equal(t, "1", got["nf"])
}

func TestConvertDefaultTypes(t *testing.T) {
	v, err := ConvertDefault("int", "4")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = ConvertDefault("int", "not-a-number")
	assert.Error(t, err)

	b, err := ConvertDefault("bool", "true")
	require.NoError(t, err)
	assert.Equal(t, true, b)
}

func TestCellDBRegistersAndFinds(t *testing.T) {
	db := NewCellDB()
	d := NewCellDesc("xic", "nmos4", "layout")
	d.Def("w", "float", "1u")
	db.AddSuperMaster(d)

	found := db.FindSuperMaster("xic/nmos4/layout")
	require.NotNil(t, found)
	assert.Equal(t, "nmos4", found.Cell)

	assert.Nil(t, db.FindSuperMaster("nosuch/cell/view"))
}

func TestCellDBDumpProducesYAML(t *testing.T) {
	db := NewCellDB()
	d := NewCellDesc("xic", "nmos4", "layout")
	d.Def("w", "float", "1u")
	db.AddSuperMaster(d)

	out, err := db.Dump()
	require.NoError(t, err)
	assert.Contains(t, string(out), "dbname")
	assert.Contains(t, string(out), "xic/nmos4/layout")
}

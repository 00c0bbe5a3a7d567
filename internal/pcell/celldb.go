// Package pcell supplements the parameter-substitution engine with a
// parameterized-cell (PCell) default-parameter-list store, keyed by
// lib/cell/view the way xic's PCell database is, but built on
// paramsub.Record/ParamTable instead of a bespoke symbol table.
package pcell

import (
	"fmt"
	"strconv"

	"github.com/vtsim/paramsub"
	"gopkg.in/yaml.v3"
)

// CellParam is one PCell parameter definition: a name plus the
// details needed to present and validate it, chained the way the
// teacher's Param builder chains Aka/Opt/Doc, but without the
// reflection-driven multi-target machinery a CLI flag needs and a
// PCell default-parameter list does not.
type CellParam struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias,omitempty"`
	Doc   string `yaml:"doc,omitempty"`
	Kind  string `yaml:"kind"` // "int", "float", "string", "bool"
	def   *CellDesc
}

// Aka sets an alternate name this parameter may be supplied under.
func (p *CellParam) Aka(alias string) *CellParam {
	p.Alias = alias
	if p.def != nil {
		p.def.byAlias[alias] = p
	}
	return p
}

// Describe sets help text for the parameter.
func (p *CellParam) Describe(doc string) *CellParam {
	p.Doc = doc
	return p
}

// CellDesc is a super-master's default parameter list: one
// paramsub.Record per parameter (carrying its textual default),
// plus the typed metadata describing how to present it. Grounded on
// pcell.h's PCellDesc/PCellParam (per-super-master default parameter
// lists) and adapted from the teacher's Param chaining shape.
type CellDesc struct {
	Lib, Cell, View string
	table           *paramsub.ParamTable
	params          []*CellParam
	byAlias         map[string]*CellParam
}

// NewCellDesc returns an empty default-parameter list for the given
// lib/cell/view triple, mirroring cPCellDb::addSuperMaster's key.
func NewCellDesc(lib, cell, view string) *CellDesc {
	return &CellDesc{
		Lib: lib, Cell: cell, View: view,
		table:   paramsub.NewParamTable(nil),
		byAlias: make(map[string]*CellParam),
	}
}

// Def declares one parameter with a textual default and a kind used
// for typed conversion. Returns a CellParam for chaining Aka/Describe.
func (d *CellDesc) Def(name, kind, defaultText string) *CellParam {
	d.table.ExtractFromLine(fmt.Sprintf(".param %s=%s", name, defaultText))
	p := &CellParam{Name: name, Kind: kind, def: d}
	d.params = append(d.params, p)
	return p
}

// MkDBName formats the lib/cell/view triple into the single token
// cPCellDb's hash tables key on (pcell.h: "hash the lib/cell/view
// names as a token formatted as a dbname").
func (d *CellDesc) MkDBName() string {
	return d.Lib + "/" + d.Cell + "/" + d.View
}

// Defaults returns the fully substituted default value of every
// parameter, keyed by parameter name.
func (d *CellDesc) Defaults() map[string]string {
	out := make(map[string]string, len(d.params))
	for _, p := range d.params {
		if r := d.table.Get(p.Name); r != nil {
			out[p.Name] = d.table.LineSubstitute(r.Sub)
		}
	}
	return out
}

// ConvertDefault converts a parameter's resolved textual default into
// a typed Go value, following its declared Kind. Adapted from the
// teacher's types.go/typescan.go string-to-typed-default conversion
// (convertValue), narrowed to the four kinds a PCell script actually
// needs.
func ConvertDefault(kind, text string) (interface{}, error) {
	switch kind {
	case "int":
		return strconv.Atoi(text)
	case "float":
		return strconv.ParseFloat(text, 64)
	case "bool":
		return strconv.ParseBool(text)
	case "string":
		return text, nil
	default:
		return nil, fmt.Errorf("unknown parameter kind %q", kind)
	}
}

// CellDB is the process-wide registry of super-masters, mirroring
// cPCellDb's pc_master_tab (one entry per super-master, keyed by
// dbname).
type CellDB struct {
	masters map[string]*CellDesc
}

// NewCellDB returns an empty registry.
func NewCellDB() *CellDB {
	return &CellDB{masters: make(map[string]*CellDesc)}
}

// AddSuperMaster registers desc, mirroring cPCellDb::addSuperMaster.
func (db *CellDB) AddSuperMaster(desc *CellDesc) {
	db.masters[desc.MkDBName()] = desc
}

// FindSuperMaster looks up a previously registered super-master by its
// lib/cell/view dbname, mirroring cPCellDb::findSuperMaster.
func (db *CellDB) FindSuperMaster(dbname string) *CellDesc {
	return db.masters[dbname]
}

// Dump writes every registered super-master's name and parameter
// defaults as YAML, mirroring cPCellDb::dump's debug entry point.
func (db *CellDB) Dump() ([]byte, error) {
	type entry struct {
		DBName   string            `yaml:"dbname"`
		Defaults map[string]string `yaml:"defaults"`
	}
	var entries []entry
	for name, d := range db.masters {
		entries = append(entries, entry{DBName: name, Defaults: d.Defaults()})
	}
	return yaml.Marshal(entries)
}

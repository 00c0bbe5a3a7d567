package paramsub

import (
	"fmt"
	"io"
	"sort"
)

// Predefined read-only entries installed by NewParamTable (spec.md §3).
const (
	predefEngine  = "PARAMSUB_ENGINE"
	predefRelease = "PARAMSUB_RELEASE"

	// ReleaseCode is the value reported by the PARAMSUB_RELEASE
	// predefined entry.
	ReleaseCode = "1.0"
)

// ParamTable is a mapping from parameter name to Record, plus the
// transient recursion set used during substitution (spec.md §3). The
// zero value is not usable; construct with NewParamTable.
type ParamTable struct {
	records map[string]*Record
	recur   map[string]bool
	dialect *Dialect
	collab  Collaborators
	collapse bool // pt_collapse: subst collapses a record on its first lookup (Get does not)
}

// NewParamTable returns a table with the two predefined read-only
// entries installed (spec.md §3): PARAMSUB_ENGINE, signaling that this
// engine is active, and PARAMSUB_RELEASE, carrying a release code.
// collab may be nil, in which case expression evaluation and macro
// registration are disabled (see Collaborators).
func NewParamTable(collab *Collaborators) *ParamTable {
	t := &ParamTable{
		records: make(map[string]*Record),
		recur:   make(map[string]bool),
		dialect: DefaultDialect(),
	}
	if collab != nil {
		t.collab = *collab
	}
	t.addPredefs()
	return t
}

func (t *ParamTable) addPredefs() {
	t.records[predefEngine] = &Record{Name: predefEngine, Sub: "1", NumArgs: -1, ReadOnly: true}
	t.records[predefRelease] = &Record{Name: predefRelease, Sub: ReleaseCode, NumArgs: -1, ReadOnly: true}
}

// WithDialect overrides the table's configurable special characters.
func (t *ParamTable) WithDialect(d *Dialect) *ParamTable {
	t.dialect = d
	return t
}

// SetCollapseOnLookup enables the pt_collapse behavior of spec.md
// §4.4: a successful lookup during substitution also runs the
// record's Sub through LineSubstitute once, in place, marking the
// record Collapsed so later lookups skip re-expansion.
func (t *ParamTable) SetCollapseOnLookup(on bool) {
	t.collapse = on
}

// Copy returns a deep copy: every record is duplicated, including its
// flags. The recursion set and collaborators are not copied (the
// recursion set is transient; collaborators are shared, not owned).
func (t *ParamTable) Copy() *ParamTable {
	cp := &ParamTable{
		records:  make(map[string]*Record, len(t.records)),
		recur:    make(map[string]bool),
		dialect:  t.dialect,
		collab:   t.collab,
		collapse: t.collapse,
	}
	for name, r := range t.records {
		cp.records[name] = r.copy()
	}
	return cp
}

// Get looks up name, returning nil if absent. It is a plain lookup;
// the pt_collapse behavior of spec.md §4.4 is applied by the
// substitution engine itself (subst), not here, matching the
// original's sParamTab::get/subst split.
func (t *ParamTable) Get(name string) *Record {
	r, ok := t.records[name]
	if !ok {
		return nil
	}
	return r
}

// set inserts or overwrites a record directly, bypassing read-only
// protection. Used internally by extract/update once the caller has
// already checked ReadOnly.
func (t *ParamTable) set(r *Record) {
	t.records[r.Name] = r
}

// Dump writes every entry to w, one per line, as "name  sub" —
// supplemented from paramsub.cc's sParamTab::dump debugging entry
// point (SPEC_FULL.md §3).
func (t *ParamTable) Dump(w io.Writer) {
	names := make([]string, 0, len(t.records))
	for n := range t.records {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		r := t.records[n]
		fmt.Fprintf(w, "%-16s  %s\n", n, r.Sub)
	}
}

// Collapse fully expands every entry's Sub in place using the
// substitution engine, marking each record Collapsed so later lookups
// skip re-expanding it (spec.md §4.2). Idempotent.
func (t *ParamTable) Collapse() {
	for _, r := range t.records {
		r.Sub = t.LineSubstitute(r.Sub)
		r.Collapsed = true
	}
}

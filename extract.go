package paramsub

import "fmt"

// stripKeyword strips a leading SPICE keyword such as ".param" from
// line before it is tokenized in ModeParam: if line starts with '.',
// everything up to the next whitespace is discarded, then any
// whitespace following it. Lines with no leading keyword are returned
// unchanged. Grounded on paramsub.cc's extract_params ("Strip leading
// SPICE keyword").
func stripKeyword(line string) string {
	if len(line) == 0 || line[0] != '.' {
		return line
	}
	i, n := 0, len(line)
	for i < n && !isSpaceByte(line[i]) {
		i++
	}
	for i < n && isSpaceByte(line[i]) {
		i++
	}
	return line[i:]
}

// ExtractFromLine tokenizes line in strict .param mode and installs
// one record per name[=value] pair it finds, detecting function
// definitions along the way (spec.md §4.2, §4.3). A name already bound
// to a read-only record (a predefined entry) is silently left alone,
// matching the original's override-or-add behavior. The HSPICE-style
// comment character downgrades the remainder of the line to
// ModeGeneral rather than failing it. The leading SPICE keyword (e.g.
// ".param") is stripped before tokenizing. Grounded on paramsub.cc's
// extract_params.
func (t *ParamTable) ExtractFromLine(line string) error {
	ClearError()
	line = stripKeyword(line)
	mode := ModeParam
	pos := 0
	for pos < len(line) {
		name, sub, _, next, _, ok := t.tokenize(line, pos, &mode)
		if !ok {
			if msg := LastError(); msg != "" {
				return decorate(fmt.Errorf("%s", msg), name)
			}
			break
		}
		pos = next
		if name == "" {
			continue
		}
		t.installExtracted(name, sub)
	}
	return nil
}

func (t *ParamTable) installExtracted(name, sub string) {
	if normalized, args, numArgs, isFunc := detectFunction(name); isFunc {
		if existing := t.records[normalized]; existing != nil && existing.ReadOnly {
			return
		}
		t.set(&Record{Name: normalized, Sub: sub, Args: args, NumArgs: numArgs})
		return
	}
	if existing := t.records[name]; existing != nil && existing.ReadOnly {
		return
	}
	t.set(&Record{Name: name, Sub: sub, NumArgs: -1})
}

// UpdateFromTable merges every record of other into t: a name also
// present in t is overwritten unless t's existing record is read-only,
// in which case the incoming value is dropped. Unlike ExtractFromLine,
// this never performs function detection — other's records are
// already normalized. Grounded on paramsub.cc's sParamTab::update
// (table variant).
func (t *ParamTable) UpdateFromTable(other *ParamTable) {
	for name, r := range other.records {
		if existing, ok := t.records[name]; ok && existing.ReadOnly {
			continue
		}
		t.set(r.copy())
	}
}

// UpdateFromLine tokenizes line in strict .param mode and overrides
// the substitution text of every existing, non-read-only record it
// names; a name not yet in the table is added as a plain (non-
// function) record. Function definitions are detected exactly as
// ExtractFromLine detects them, but — matching paramsub.cc's
// sParamTab::update(const char *) — a function whose normalized name
// ("f(2)") is not already present is silently dropped rather than
// added: update only ever overrides an existing function's body and
// arguments, it never introduces a new one.
func (t *ParamTable) UpdateFromLine(line string) error {
	ClearError()
	mode := ModeParam
	pos := 0
	for pos < len(line) {
		name, sub, _, next, _, ok := t.tokenize(line, pos, &mode)
		if !ok {
			if msg := LastError(); msg != "" {
				return decorate(fmt.Errorf("%s", msg), name)
			}
			break
		}
		pos = next
		if name == "" {
			continue
		}
		if normalized, args, numArgs, isFunc := detectFunction(name); isFunc {
			if existing, ok := t.records[normalized]; ok && !existing.ReadOnly {
				existing.Sub = sub
				existing.Args = args
				existing.NumArgs = numArgs
				existing.Collapsed = false
			}
			continue
		}
		if existing, ok := t.records[name]; ok {
			if existing.ReadOnly {
				continue
			}
			existing.Sub = sub
			existing.Collapsed = false
			continue
		}
		t.set(&Record{Name: name, Sub: sub, NumArgs: -1})
	}
	return nil
}

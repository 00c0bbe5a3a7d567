package paramsub

import (
	"fmt"
	"strings"
)

// parserToken extracts one token from s starting at pos, splitting on
// whitespace and the dialect's parser-specials set. A leading quote
// (single or double) is consumed verbatim through its matching
// unescaped closing quote, so an embedded operator character inside a
// quoted expression does not end the token early. Grounded on
// paramsub.cc's local ptok helper.
func parserToken(s string, pos int, specials string) (tok string, start, end, next int, ok bool) {
	isSep := func(c byte) bool {
		return isSpaceByte(c) || strings.IndexByte(specials, c) >= 0
	}
	i, n := pos, len(s)
	for i < n && isSep(s[i]) {
		i++
	}
	if i >= n {
		return "", i, i, i, false
	}
	start = i
	if s[i] == '\'' || s[i] == '"' {
		c := s[i]
		i++
		for i < n {
			if s[i] == c && s[i-1] != '\\' {
				i++
				break
			}
			i++
		}
	} else {
		for i < n && !isSep(s[i]) {
			i++
		}
	}
	end = i
	tok = s[start:end]
	for i < n && isSep(s[i]) {
		i++
	}
	return tok, start, end, i, true
}

// subst resolves a single token against the table: if tok names a
// record, it returns the record's substitution text and true.
// Recursion is caught here first, before any text is produced: if tok
// is already a member of the table's transient recursion set (meaning
// an enclosing call is already expanding this same name), it records
// an error and returns false, leaving the token untouched. Otherwise
// the name is added to the recursion set for the duration of this
// call only (an on-demand collapse, if the table collapses on lookup,
// happens under that same protection), then removed before returning.
// Grounded on paramsub.cc's sParamTab::subst.
func (t *ParamTable) subst(tok string) (sub string, did bool) {
	r, ok := t.records[tok]
	if !ok {
		return "", false
	}
	if t.recur[tok] {
		setError("Recursion detected, parameter name: %s value: %s", r.Name, r.Sub)
		return "", false
	}
	t.recur[tok] = true
	if t.collapse && !r.Collapsed {
		r.Collapsed = true
		r.Sub = t.LineSubstitute(r.Sub)
	}
	sub = r.Sub
	if len(sub) > 0 && rune(sub[0]) == t.dialect.DoubleQuote() {
		sub = strings.TrimSuffix(strings.TrimPrefix(sub, string(t.dialect.DoubleQuote())), string(t.dialect.DoubleQuote()))
	}
	delete(t.recur, tok)
	return sub, true
}

// LineSubstitute walks buf token by token, replacing every parameter
// name with its substitution text and every single-quoted expression
// with its evaluated result, splicing each replacement in place of
// the token it came from (including the dialect's concatenation glue
// character immediately before or after the token, which is consumed
// along with it rather than left dangling). A replacement that is
// itself a name is recursively line-substituted, under the same
// per-call recursion-set protection subst uses, so a substitution
// cycle is reported once and the offending text left as-is rather
// than looping forever. Grounded on paramsub.cc's line_subst.
func (t *ParamTable) LineSubstitute(buf string) string {
	// The concatenation glue character also ends a token, so a name
	// glued to the text around it ("x%a%y") is looked up on its own.
	specials := t.dialect.ParserSpecials() + string(t.dialect.ConcatGlue())
	pos := 0
	for pos < len(buf) {
		tok, start, end, next, ok := parserToken(buf, pos, specials)
		if !ok {
			break
		}
		changed := false
		result := tok

		switch {
		case len(tok) > 0 && rune(tok[0]) == t.dialect.SingleQuote():
			result = t.squoteSubstitute(tok)
			changed = true

		case len(tok) > 0 && isNameChar(tok[0]):
			if sub, did := t.subst(tok); did {
				t.recur[tok] = true
				switch {
				case len(sub) > 0 && rune(sub[0]) == t.dialect.SingleQuote():
					sub = t.squoteSubstitute(sub)
				case t.recur[sub]:
					setError("Recursion detected, parameter name: %s value: %s", tok, sub)
				default:
					sub = t.LineSubstitute(sub)
				}
				delete(t.recur, tok)
				result = sub
				changed = true
			}
		}

		if changed {
			spliceStart := start
			if spliceStart > 0 && buf[spliceStart-1] == byte(t.dialect.ConcatGlue()) {
				spliceStart--
			}
			spliceEnd := end
			if spliceEnd < len(buf) && buf[spliceEnd] == byte(t.dialect.ConcatGlue()) {
				spliceEnd++
			}
			buf = buf[:spliceStart] + result + buf[spliceEnd:]
			pos = spliceStart + len(result)
		} else {
			pos = next
		}
	}
	return buf
}

// shellVarMark is the literal character flagging an unexpanded shell
// variable reference inside a single-quoted expression ("$HOME",
// say), left for a later processing stage rather than evaluated here.
// It is not configurable in the original and is kept that way.
const shellVarMark = '$'

// squoteSubstitute handles one single-quoted token: a shell-variable
// reference passes through with only its interior line-substituted; a
// circuit-valued expression tree (one referencing external,
// non-numeric entities) is re-serialized quoted after its transient
// macros are promoted; otherwise the expression is evaluated and
// printed as a bare number. Without a configured Parser, substitution
// still happens but no evaluation is attempted. Grounded on
// paramsub.cc's squote_subst.
func (t *ParamTable) squoteSubstitute(s string) string {
	quote := string(t.dialect.SingleQuote())
	quoted := strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) && len(s) >= 2*len(quote)

	if strings.ContainsRune(s, shellVarMark) {
		expr := s
		if quoted {
			expr = s[len(quote) : len(s)-len(quote)]
		}
		expr = t.LineSubstitute(expr)
		if quoted {
			return quote + expr + quote
		}
		return expr
	}

	expr := s
	if quoted {
		expr = s[len(quote) : len(s)-len(quote)]
	}
	expr = t.LineSubstitute(expr)

	if t.collab.Parser == nil {
		if quoted {
			return quote + expr + quote
		}
		return expr
	}

	tree, err := t.collab.Parser.Parse(expr)
	if err != nil || tree == nil {
		setError("Evaluation failed: %s.", s)
		return s
	}
	ok, hasCircuitRefs, empty := tree.Check()
	if !ok || empty {
		setError("Evaluation failed: %s.", s)
		return s
	}
	if hasCircuitRefs {
		if t.collab.Functions != nil {
			t.collab.Functions.PromoteTransientMacros(tree, t)
		}
		return tree.Serialize(true)
	}
	if t.collab.Eval == nil {
		return tree.Serialize(quoted)
	}
	val, units, ok := t.collab.Eval.Evaluate(tree)
	if !ok {
		setError("Evaluation failed: %s.", s)
		return s
	}
	if t.collab.Printer != nil {
		return t.collab.Printer.Print(val, units, false)
	}
	return fmt.Sprintf("%g", val)
}

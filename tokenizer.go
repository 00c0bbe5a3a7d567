package paramsub

import "strings"

// Mode selects how a line is tokenized, matching the four contexts a
// SPICE line can appear in (spec.md §4.1).
type Mode int

const (
	// ModeGeneral silently skips malformed constructs: used for
	// device-instance lines where non-parameter text must pass
	// through untouched.
	ModeGeneral Mode = iota
	// ModeSngl accepts isolated names/expressions with no "=".
	ModeSngl
	// ModeParam fails with a diagnostic on a malformed construct:
	// used for .param lines.
	ModeParam
	// ModeSubc behaves like ModeGeneral but against a locally
	// extended, forward-scoped table (.subckt headers).
	ModeSubc
)

// nameToken extracts one LHS name token from the start of s, after
// skipping leading delimiters (whitespace, "," always, plus "()" when
// lhsFuncs is false). When lhsFuncs is true, a parenthesized argument
// list is kept as part of the name and interior whitespace is
// stripped, so "foo (a, b)" tokenizes as "foo(a,b)". Returns the name,
// its start offset in s, the offset to resume scanning from, and
// false if s holds no more tokens. Grounded on paramsub.cc's nametok.
func nameToken(s string, lhsFuncs bool) (name string, start, next int, ok bool) {
	isDelim := func(c byte) bool {
		if c == ',' {
			return true
		}
		return !lhsFuncs && (c == '(' || c == ')')
	}
	i, n := 0, len(s)
	for i < n && (isSpaceByte(s[i]) || isDelim(s[i])) {
		i++
	}
	if i >= n {
		return "", i, i, false
	}
	start = i
	tokStart := i

	if s[i] == '\'' || s[i] == '"' {
		c := s[i]
		i++
		for i < n {
			if s[i] == c && s[i-1] != '\\' {
				break
			}
			i++
		}
		if i < n {
			i++
		}
	} else if lhsFuncs {
		depth := 0
		for i < n {
			if depth == 0 {
				if isSpaceByte(s[i]) {
					j := i
					for j < n && isSpaceByte(s[j]) {
						j++
					}
					if j < n && s[j] == '(' {
						i = j
						continue
					}
					break
				}
				if s[i] == '=' {
					break
				}
			}
			if s[i] == '(' {
				depth++
			} else if s[i] == ')' {
				depth--
			}
			i++
		}
	} else {
		for i < n {
			if isSpaceByte(s[i]) || s[i] == '=' || isDelim(s[i]) {
				break
			}
			i++
		}
	}

	var b strings.Builder
	for k := tokStart; k < i; k++ {
		if !lhsFuncs || !isSpaceByte(s[k]) {
			b.WriteByte(s[k])
		}
	}
	name = b.String()

	for i < n && (isSpaceByte(s[i]) || isDelim(s[i])) {
		i++
	}
	return name, start, i, true
}

// valueToken extracts one RHS value token from the start of s, after
// skipping leading whitespace only. Quoted values run to the matching
// unescaped closing quote; otherwise the value runs to a top-level
// whitespace or ",", with parenthesis depth tracked so a function
// call's interior is kept whole ("f (x)" folds to "f(x)"). All
// whitespace, including inside a quoted value, is stripped from the
// result. Grounded on paramsub.cc's valtok.
func valueToken(s string) (value string, start, next int, ok bool) {
	i, n := 0, len(s)
	for i < n && isSpaceByte(s[i]) {
		i++
	}
	if i >= n {
		return "", i, i, false
	}
	start = i
	tokStart := i

	if s[i] == '\'' || s[i] == '"' {
		c := s[i]
		i++
		for i < n {
			if s[i] == c && s[i-1] != '\\' {
				break
			}
			i++
		}
		if i < n {
			i++
		}
	} else {
		depth := 0
		for i < n {
			if depth == 0 {
				if isSpaceByte(s[i]) {
					j := i
					for j < n && isSpaceByte(s[j]) {
						j++
					}
					if j < n && s[j] == '(' {
						i = j
						continue
					}
					break
				}
				if s[i] == ',' {
					break
				}
			}
			if s[i] == '(' {
				depth++
			} else if s[i] == ')' {
				if depth == 0 {
					break
				}
				depth--
			}
			i++
		}
	}

	var b strings.Builder
	for k := tokStart; k < i; k++ {
		if !isSpaceByte(s[k]) {
			b.WriteByte(s[k])
		}
	}
	return b.String(), start, i, true
}

// tokenize extracts one name[=value] construct from s starting at
// pos. mode governs strictness and may itself be downgraded from
// ModeParam to ModeGeneral mid-line when an HSPICE-style "$" comment
// is encountered where a name was expected. On a ModeSngl isolated
// token (a standalone name or a single-quoted expression with no
// "="), sub is returned empty and isolated is true. Returns ok=false
// at end of input or on a ModeParam diagnostic (recorded via
// setError). Grounded on paramsub.cc's sParamTab::tokenize.
func (t *ParamTable) tokenize(s string, pos int, mode *Mode) (name, sub string, start, next int, isolated, ok bool) {
	d := t.dialect
	for pos < len(s) {
		nm, nmStart, nmNext, got := nameToken(s[pos:], *mode == ModeParam)
		if !got {
			return "", "", 0, pos, false, false
		}
		absStart := pos + nmStart
		pos += nmNext

		if *mode == ModeParam {
			if len(nm) > 0 && rune(nm[0]) == d.Comment() {
				*mode = ModeGeneral
			} else {
				if len(nm) == 0 || !isNameChar(nm[0]) {
					setError("Bad parameter name: %s.", nm)
					return "", "", 0, pos, false, false
				}
				if pos >= len(s) || s[pos] != '=' {
					setError("Parameter syntax error, misplaced '='.")
					return "", "", 0, pos, false, false
				}
			}
		}

		if pos < len(s) && s[pos] == '=' {
			for pos < len(s) && (isSpaceByte(s[pos]) || s[pos] == '=') {
				pos++
			}
			if pos >= len(s) {
				setError("Missing parameter value for %s", nm)
				return "", "", 0, pos, false, false
			}
			if len(nm) == 0 || !isNameChar(nm[0]) {
				setError("Bad parameter name: %s.", nm)
				return "", "", 0, pos, false, false
			}
			val, _, valEnd, _ := valueToken(s[pos:])
			pos += valEnd
			for pos < len(s) && (isSpaceByte(s[pos]) || s[pos] == ',') {
				pos++
			}
			return nm, val, absStart, pos, false, true
		}

		if *mode == ModeSngl && len(nm) > 0 && (isNameChar(nm[0]) || rune(nm[0]) == d.SingleQuote()) {
			return nm, "", absStart, pos, true, true
		}
		// loose modes (general/subc) silently discard a name not
		// followed by "=" and try the next candidate token.
	}
	return "", "", 0, pos, false, false
}

package paramsub

import "strings"

// skipTokens returns the index in line where scanning should begin
// after skipping nskip leading whitespace-delimited tokens, mirroring
// paramsub.cc's defn_subst skip loop: leading whitespace is always
// skipped first, then each of the nskip tokens is consumed up to the
// next SPICE separator (whitespace, "=", "(", ")", or ","), followed
// by any run of separators. Used to step past a line's leading
// keyword(s) — e.g. nskip=1 for ".param ...", nskip=2 for ".subckt
// <name> ..." — before the name=value scan begins (spec.md §4.4).
func skipTokens(line string, nskip int) int {
	isSep := func(c byte) bool {
		return isSpaceByte(c) || c == '=' || c == '(' || c == ')' || c == ','
	}
	i, n := 0, len(line)
	for i < n && isSpaceByte(line[i]) {
		i++
	}
	for nskip > 0 && i < n {
		for i < n && !isSep(line[i]) {
			i++
		}
		for i < n && isSep(line[i]) {
			i++
		}
		nskip--
	}
	return i
}

// DefnSubst rewrites a definition line — a ".param" line or a
// ".subckt" header's trailing "name=value" parameter list — replacing
// each value with its fully substituted form, and returns the
// rewritten line. nskip leading whitespace-delimited tokens (the
// line's keyword, plus e.g. a .subckt's name or a .model's name) are
// skipped before scanning begins; see skipTokens. Parameters are
// visible to each other strictly left-to-right within the line: by
// the time the Nth name=value pair is substituted, the first N-1 are
// already bound, so "a=1 b=a+1" resolves b to "1+1" (only a
// single-quoted value is evaluated to a number). In ModeParam the
// bindings are installed directly into the table (a .param line is a
// real definition); in ModeSubc they are built up in a throwaway copy
// instead, so a subcircuit's header parameters stay scoped to that
// subcircuit rather than leaking into the enclosing table. Grounded on
// paramsub.cc's defn_subst.
func (t *ParamTable) DefnSubst(line string, mode Mode, nskip int) string {
	scratch := t
	if mode == ModeSubc {
		scratch = t.Copy()
	}

	m := mode
	pos := skipTokens(line, nskip)
	var out strings.Builder
	firstStart := -1
	lastNext := 0

	for pos < len(line) {
		name, sub, start, next, isolated, ok := scratch.tokenize(line, pos, &m)
		if !ok {
			break
		}
		pos = next
		lastNext = next
		if name == "" || isolated {
			continue
		}
		if firstStart < 0 {
			firstStart = start
			out.WriteString(line[:start])
		} else {
			out.WriteByte(' ')
		}
		resolved := scratch.LineSubstitute(sub)
		scratch.installExtracted(name, resolved)
		out.WriteString(name)
		out.WriteByte('=')
		out.WriteString(resolved)
	}

	if firstStart < 0 {
		return line
	}
	out.WriteString(line[lastNext:])
	return out.String()
}

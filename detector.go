package paramsub

import "fmt"

// countArgs counts the comma-separated argument tokens in s, which
// must start at the opening '(' of a function's argument list (the
// text may continue past the matching ')'; only the first closing
// paren is consulted). It returns -1 on syntax error, causing the
// caller to treat the name as "not a function" (spec.md §4.3).
// Grounded on paramsub.cc's count_args.
func countArgs(s string) int {
	i, n := 0, len(s)
	for i < n && (s[i] == '(' || isSpaceByte(s[i])) {
		i++
	}
	count := 0
	for {
		for i < n && isSpaceByte(s[i]) {
			i++
		}
		if i < n && isArgStartByte(s[i]) {
			count++
		} else {
			return -1
		}
		for i < n && s[i] != ',' && s[i] != ')' {
			i++
		}
		if i >= n || s[i] == ')' {
			break
		}
		i++ // skip comma
	}
	return count
}

// detectFunction decides whether name is a function definition LHS of
// the form "base(a,b,...)" possibly followed only by whitespace. On
// success it returns the normalized name "base(N)", the original
// "(...)" argument-list text, and the argument count. It is
// side-effect-free on non-function names (spec.md §4.3).
// Grounded on paramsub.cc's is_func.
func detectFunction(name string) (normalized, args string, numArgs int, ok bool) {
	open := indexByte(name, '(')
	if open < 0 {
		return "", "", -1, false
	}
	close := lastIndexByte(name, ')')
	if close < 0 || close < open {
		return "", "", -1, false
	}
	for i := close + 1; i < len(name); i++ {
		if !isSpaceByte(name[i]) {
			return "", "", -1, false
		}
	}
	ac := countArgs(name[open:])
	if ac < 0 {
		return "", "", -1, false
	}
	argsStr := name[open : close+1]

	baseEnd := 0
	for baseEnd < len(name) && !isSpaceByte(name[baseEnd]) && name[baseEnd] != '(' {
		baseEnd++
	}
	base := name[:baseEnd]
	return fmt.Sprintf("%s(%d)", base, ac), argsStr, ac, true
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func lastIndexByte(s string, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}

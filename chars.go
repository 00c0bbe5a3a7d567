package paramsub

// Character classification shared by the tokenizer and the
// function-definition detector. The grammar is byte-oriented, matching
// the original C implementation's isalpha/isspace semantics; SPICE
// netlist text is ASCII.

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isAlphaByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNameChar reports whether c may start a parameter name: alphabetic
// or underscore (spec.md §3, paramsub.cc's is_namechar).
func isNameChar(c byte) bool {
	return isAlphaByte(c) || c == '_'
}

// argChars lists the non-alphabetic characters allowed to start a
// function argument token (paramsub.cc's count_args).
const argChars = "_#@$"

func isArgStartByte(c byte) bool {
	if isAlphaByte(c) {
		return true
	}
	for i := 0; i < len(argChars); i++ {
		if argChars[i] == c {
			return true
		}
	}
	return false
}

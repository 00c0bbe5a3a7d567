package paramsub

import "testing"

func TestDetectFunctionBasic(t *testing.T) {
	norm, args, n, ok := detectFunction("func(a,b)")
	if !ok || norm != "func(2)" || args != "(a,b)" || n != 2 {
		t.Fatalf("got norm=%q args=%q n=%v ok=%v", norm, args, n, ok)
	}
}

func TestDetectFunctionTrailingWhitespaceAllowed(t *testing.T) {
	_, _, _, ok := detectFunction("func(a,b)   ")
	if !ok {
		t.Fatalf("trailing whitespace after ')' should still be a function")
	}
}

func TestDetectFunctionTrailingGarbageRejected(t *testing.T) {
	_, _, _, ok := detectFunction("func(a,b)x")
	if ok {
		t.Fatalf("trailing non-whitespace after ')' must not be a function")
	}
}

func TestDetectFunctionNotAFunction(t *testing.T) {
	_, _, n, ok := detectFunction("plainname")
	if ok || n != -1 {
		t.Fatalf("plain name must not be detected as a function")
	}
}

func TestCountArgsRejectsEmptyArgument(t *testing.T) {
	if countArgs("(a,,b)") != -1 {
		t.Fatalf("an empty argument slot is a syntax error")
	}
}

func TestCountArgsSingleArg(t *testing.T) {
	if countArgs("(a)") != 1 {
		t.Fatalf("expected one argument")
	}
}

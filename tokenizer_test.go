package paramsub

import "testing"

func TestNameTokenPlain(t *testing.T) {
	name, _, next, ok := nameToken("foo=bar", false)
	if !ok || name != "foo" {
		t.Fatalf("got %q, %v, %v", name, next, ok)
	}
}

func TestNameTokenFunctionLHSFoldsWhitespace(t *testing.T) {
	name, _, _, ok := nameToken("foo (a, b)=a+b", true)
	if !ok || name != "foo(a,b)" {
		t.Fatalf("got %q, %v", name, ok)
	}
}

func TestValueTokenStripsInternalWhitespace(t *testing.T) {
	val, _, _, ok := valueToken("(1 + 2), next")
	if !ok || val != "(1+2)" {
		t.Fatalf("got %q, %v", val, ok)
	}
}

func TestValueTokenFunctionCallKeepsParens(t *testing.T) {
	val, _, next, ok := valueToken("f (x, y) rest")
	if !ok || val != "f(x,y)" {
		t.Fatalf("got %q, %v", val, ok)
	}
	if next == 0 {
		t.Fatalf("next should advance past the token")
	}
}

func TestTokenizeParamBasic(t *testing.T) {
	tab := NewParamTable(nil)
	mode := ModeParam
	name, sub, _, _, isolated, ok := tab.tokenize("a=1", 0, &mode)
	if !ok || isolated || name != "a" || sub != "1" {
		t.Fatalf("got name=%q sub=%q isolated=%v ok=%v", name, sub, isolated, ok)
	}
}

func TestTokenizeSnglIsolatedToken(t *testing.T) {
	tab := NewParamTable(nil)
	mode := ModeSngl
	name, _, _, _, isolated, ok := tab.tokenize("foo", 0, &mode)
	if !ok || !isolated || name != "foo" {
		t.Fatalf("got name=%q isolated=%v ok=%v", name, isolated, ok)
	}
}

func TestTokenizeGeneralSkipsNonParamText(t *testing.T) {
	tab := NewParamTable(nil)
	mode := ModeGeneral
	_, _, _, _, _, ok := tab.tokenize("m1 nmos w=1u", 0, &mode)
	if !ok {
		t.Fatalf("expected the w=1u pair to be found")
	}
}

package expr

import (
	"strconv"
	"strings"

	"github.com/vtsim/paramsub"
)

// suffixes maps SPICE engineering-notation literal suffixes to their
// multiplier, ordered so "meg" and "mil" are tried before "m".
var suffixes = []struct {
	suffix string
	mult   float64
}{
	{"meg", 1e6},
	{"t", 1e12},
	{"g", 1e9},
	{"k", 1e3},
	{"mil", 25.4e-6},
	{"m", 1e-3},
	{"u", 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
}

type lexer struct {
	s   string
	pos int
}

type tok struct {
	kind byte // 'n' number, 'i' ident, 'o' operator/paren/comma, 0 = end
	text string
}

func (l *lexer) peek() tok {
	save := l.pos
	t := l.next()
	l.pos = save
	return t
}

func (l *lexer) next() tok {
	for l.pos < len(l.s) && (l.s[l.pos] == ' ' || l.s[l.pos] == '\t') {
		l.pos++
	}
	if l.pos >= len(l.s) {
		return tok{}
	}
	c := l.s[l.pos]
	switch {
	case c >= '0' && c <= '9' || c == '.':
		start := l.pos
		for l.pos < len(l.s) && (isDigit(l.s[l.pos]) || l.s[l.pos] == '.') {
			l.pos++
		}
		if l.pos < len(l.s) && (l.s[l.pos] == 'e' || l.s[l.pos] == 'E') {
			l.pos++
			if l.pos < len(l.s) && (l.s[l.pos] == '+' || l.s[l.pos] == '-') {
				l.pos++
			}
			for l.pos < len(l.s) && isDigit(l.s[l.pos]) {
				l.pos++
			}
		}
		numEnd := l.pos
		for l.pos < len(l.s) && isAlpha(l.s[l.pos]) {
			l.pos++
		}
		return tok{kind: 'n', text: l.s[start:numEnd] + "\x00" + l.s[numEnd:l.pos]}
	case isAlpha(c) || c == '_':
		start := l.pos
		for l.pos < len(l.s) && (isAlpha(l.s[l.pos]) || isDigit(l.s[l.pos]) || l.s[l.pos] == '_') {
			l.pos++
		}
		return tok{kind: 'i', text: l.s[start:l.pos]}
	default:
		l.pos++
		return tok{kind: 'o', text: string(c)}
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// Parser is the default paramsub.ExprParser.
type Parser struct{}

// Parse implements paramsub.ExprParser. Syntax errors are reported
// through the returned Tree's Check, never through the error return,
// per spec.
func (Parser) Parse(text string) (paramsub.ExprTree, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return &Tree{empty: true}, nil
	}
	p := &exprParser{lex: &lexer{s: trimmed}}
	n, ok := p.parseExpr()
	if !ok || p.lex.peek().kind != 0 {
		return &Tree{ok: false}, nil
	}
	return &Tree{root: n, ok: true, hasCircuitRefs: containsCircuitRef(n)}, nil
}

type exprParser struct {
	lex *lexer
}

func (p *exprParser) parseExpr() (node, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return nil, false
	}
	for {
		t := p.lex.peek()
		if t.kind == 'o' && (t.text == "+" || t.text == "-") {
			p.lex.next()
			right, ok := p.parseTerm()
			if !ok {
				return nil, false
			}
			left = binOpNode{op: t.text[0], left: left, right: right}
			continue
		}
		break
	}
	return left, true
}

func (p *exprParser) parseTerm() (node, bool) {
	left, ok := p.parsePower()
	if !ok {
		return nil, false
	}
	for {
		t := p.lex.peek()
		if t.kind == 'o' && (t.text == "*" || t.text == "/") {
			p.lex.next()
			right, ok := p.parsePower()
			if !ok {
				return nil, false
			}
			left = binOpNode{op: t.text[0], left: left, right: right}
			continue
		}
		break
	}
	return left, true
}

func (p *exprParser) parsePower() (node, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	t := p.lex.peek()
	if t.kind == 'o' && t.text == "^" {
		p.lex.next()
		right, ok := p.parsePower()
		if !ok {
			return nil, false
		}
		return binOpNode{op: '^', left: left, right: right}, true
	}
	return left, true
}

func (p *exprParser) parseUnary() (node, bool) {
	t := p.lex.peek()
	if t.kind == 'o' && (t.text == "-" || t.text == "+") {
		p.lex.next()
		operand, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		if t.text == "-" {
			return unaryOpNode{op: '-', operand: operand}, true
		}
		return operand, true
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (node, bool) {
	t := p.lex.next()
	switch t.kind {
	case 'n':
		parts := strings.SplitN(t.text, "\x00", 2)
		val, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, false
		}
		units := parts[1]
		mult, trimmedUnits := matchSuffix(units)
		return numberNode{value: val * mult, units: trimmedUnits}, true
	case 'i':
		name := t.text
		if p.lex.peek().kind == 'o' && p.lex.peek().text == "(" {
			p.lex.next()
			var args []node
			if !(p.lex.peek().kind == 'o' && p.lex.peek().text == ")") {
				for {
					a, ok := p.parseExpr()
					if !ok {
						return nil, false
					}
					args = append(args, a)
					nt := p.lex.peek()
					if nt.kind == 'o' && nt.text == "," {
						p.lex.next()
						continue
					}
					break
				}
			}
			closing := p.lex.next()
			if closing.kind != 'o' || closing.text != ")" {
				return nil, false
			}
			return identNode{name: name, args: args}, true
		}
		return identNode{name: name}, true
	case 'o':
		if t.text == "(" {
			n, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			closing := p.lex.next()
			if closing.kind != 'o' || closing.text != ")" {
				return nil, false
			}
			return n, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func matchSuffix(units string) (float64, string) {
	lower := strings.ToLower(units)
	for _, s := range suffixes {
		if strings.HasPrefix(lower, s.suffix) {
			return s.mult, units[len(s.suffix):]
		}
	}
	return 1, units
}

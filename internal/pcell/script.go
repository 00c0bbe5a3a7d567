package pcell

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Lang is a PCell script's implementation language (pcell.h's
// PClangType).
type Lang int

const (
	// LangNative is the default: the engine's own substitution
	// language, with no external interpreter involved.
	LangNative Lang = iota
	LangPython
	LangTcl
)

// Header is the parsed head of an XIC_PC_SCRIPT-style property: a
// leading run of "@TOKEN value" directives followed by the script
// body proper. Grounded on pcell.h's documented format:
//
//	[@LANG langtok] [@READ path] [@MD5 digest] [script text]
type Header struct {
	Lang Lang
	Read string // path to an external script file, if @READ was given
	MD5  string // expected digest of the script body, if @MD5 was given
	Body string // remaining script text after the directive head
}

// directive is one recognized header token; handle mutates h with the
// token's value. Adapted from the teacher's operator-dispatch shape
// (operator.go): a small interface per directive instead of per
// CLI-args operator, keyed by directive token instead of operator name.
type directive interface {
	handle(h *Header, value string) error
}

var directiveTable = map[string]directive{
	"@LANG": langDirective{},
	"@READ": readDirective{},
	"@MD5":  md5Directive{},
}

type langDirective struct{}

func (langDirective) handle(h *Header, value string) error {
	switch strings.ToLower(value) {
	case "n", "native", "":
		h.Lang = LangNative
	case "p", "python":
		h.Lang = LangPython
	case "t", "tcl":
		h.Lang = LangTcl
	default:
		return fmt.Errorf("@LANG: unrecognized script language %q", value)
	}
	return nil
}

type readDirective struct{}

func (readDirective) handle(h *Header, value string) error {
	h.Read = strings.Trim(value, `"`)
	return nil
}

type md5Directive struct{}

func (md5Directive) handle(h *Header, value string) error {
	h.MD5 = value
	return nil
}

// ParseHeader consumes the leading "@TOKEN value" directives of text,
// in any order, stopping at the first token it doesn't recognize (the
// start of the script body). An unresolvable @READ path is logged via
// logrus rather than failing the parse, since the body that follows
// may stand on its own. Grounded on pcell.h's header token list.
func ParseHeader(text string) (*Header, error) {
	h := &Header{}
	rest := text
	for {
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if !strings.HasPrefix(trimmed, "@") {
			break
		}
		sp := strings.IndexAny(trimmed, " \t")
		var tok, value, remainder string
		if sp < 0 {
			tok, value, remainder = trimmed, "", ""
		} else {
			tok = trimmed[:sp]
			line := trimmed[sp+1:]
			if nl := strings.IndexByte(line, '\n'); nl >= 0 {
				value, remainder = line[:nl], line[nl+1:]
			} else {
				value, remainder = line, ""
			}
		}
		d, ok := directiveTable[strings.ToUpper(tok)]
		if !ok {
			rest = trimmed
			break
		}
		if err := d.handle(h, strings.TrimSpace(value)); err != nil {
			return nil, err
		}
		rest = remainder
	}
	h.Body = rest

	if h.Read != "" {
		if _, err := os.Stat(h.Read); err != nil {
			logrus.WithField("path", h.Read).Warn("pcell: @READ script path not found")
		}
	}
	return h, nil
}

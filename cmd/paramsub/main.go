// Command paramsub drives the parameter-substitution engine over a
// netlist file, line by line, the way paramsub.cc's command-line
// front end did: -file names the input, -mode selects how each line
// is tokenized, and -collapse/-dialect/-skip-lines/-skip-tokens/
// -verbose tune the run. Flags are parsed with the standard library's
// flag package: eight scalar flags don't warrant a bespoke parser.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/vtsim/paramsub"
	"github.com/vtsim/paramsub/internal/expr"
	"github.com/vtsim/paramsub/internal/udf"
)

// dialectFile is the optional -dialect YAML override: each field is a
// single character overriding one of paramsub.DefaultDialect's
// specials.
type dialectFile struct {
	Comment string `yaml:"comment"`
	Concat  string `yaml:"concat"`
	Squote  string `yaml:"squote"`
	Dquote  string `yaml:"dquote"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("paramsub", flag.ContinueOnError)
	file := fs.String("file", "", "netlist file to process")
	mode := fs.String("mode", "", "general (default), param, subc, or sngl")
	skipLines := fs.Int("skip-lines", 0, "number of leading lines to pass through unchanged")
	skipTokens := fs.Int("skip-tokens", 0, "number of leading whitespace-delimited tokens to skip on each rewritten line (subc mode)")
	dialectPath := fs.String("dialect", "", "YAML file overriding the dialect's special characters")
	collapse := fs.Bool("collapse", false, "expand each parameter's value on first lookup")
	verbose := fs.Bool("verbose", false, "log every diagnostic at debug level")
	dump := fs.Bool("dump", false, "print the resolved parameter table to stderr after processing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	collab := &paramsub.Collaborators{
		Parser:    expr.Parser{},
		Eval:      expr.Evaluator{},
		Printer:   expr.Printer{},
		Functions: udf.NewRegistry(),
	}
	table := paramsub.NewParamTable(collab)
	if *collapse {
		table.SetCollapseOnLookup(true)
	}

	if *dialectPath != "" {
		if err := applyDialectFile(table, *dialectPath); err != nil {
			return err
		}
	}

	in, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("opening %s: %w", *file, err)
	}
	defer in.Close()

	if err := process(table, in, os.Stdout, *skipLines, *skipTokens, parseMode(*mode)); err != nil {
		return err
	}
	if *dump {
		table.Dump(os.Stderr)
	}
	return nil
}

func parseMode(mode string) paramsub.Mode {
	switch mode {
	case "param":
		return paramsub.ModeParam
	case "subc":
		return paramsub.ModeSubc
	case "sngl":
		return paramsub.ModeSngl
	default:
		return paramsub.ModeGeneral
	}
}

func applyDialectFile(table *paramsub.ParamTable, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading dialect file: %w", err)
	}
	var df dialectFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return fmt.Errorf("parsing dialect file: %w", err)
	}
	d := paramsub.DefaultDialect()
	for which, s := range []string{df.Comment, df.Concat, df.Squote, df.Dquote} {
		if s != "" {
			d.SetSpecial(which, rune(s[0]))
		}
	}
	table.WithDialect(d)
	return nil
}

// process reads in line by line, skipping skipLines leading lines
// unchanged, and for each remaining line either extracts parameter
// definitions (ModeParam), rewrites a .subckt header (ModeSubc, with
// skipTokens stepping past its keyword and name), or line-substitutes
// it (every other mode).
func process(table *paramsub.ParamTable, in io.Reader, out io.Writer, skipLines, skipTokens int, mode paramsub.Mode) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo <= skipLines {
			fmt.Fprintln(out, line)
			continue
		}
		switch mode {
		case paramsub.ModeParam:
			if err := table.ExtractFromLine(line); err != nil {
				logrus.WithField("line", lineNo).Warn(err)
			}
			fmt.Fprintln(out, line)
		case paramsub.ModeSubc:
			fmt.Fprintln(out, table.DefnSubst(line, paramsub.ModeSubc, skipTokens))
		default:
			fmt.Fprintln(out, table.LineSubstitute(line))
		}
		if msg := paramsub.LastError(); msg != "" {
			logrus.WithField("line", lineNo).Error(msg)
			paramsub.ClearError()
		}
	}
	return scanner.Err()
}

package paramsub

// The interfaces below are the engine's only contact with the
// out-of-scope collaborators named in spec.md §1/§6: the expression
// parser/evaluator, the numeric-literal printer, and the user-defined
// function registry. The engine never implements arithmetic itself; it
// only recognizes single-quoted text and hands it here.

// ExprTree is an opaque parsed expression, as produced by ExprParser.
type ExprTree interface {
	// Check reports whether the tree parsed successfully, whether it
	// references circuit state the evaluator cannot resolve here
	// (e.g. node voltages), and whether it is empty.
	Check() (ok bool, hasCircuitRefs bool, empty bool)
	// Serialize renders the tree back to text, optionally wrapped in
	// single quotes.
	Serialize(quoted bool) string
}

// ExprParser turns expression text into a tree. A malformed or empty
// expression is reported through ExprTree.Check, not through the
// error return, which is reserved for parser-internal failure.
type ExprParser interface {
	Parse(text string) (ExprTree, error)
}

// Evaluator reduces a tree to a numeric datum, optionally carrying
// engineering units (e.g. "k", "Meg"). ok is false when the tree
// cannot be evaluated (circuit references, undefined symbols).
type Evaluator interface {
	Evaluate(tree ExprTree) (value float64, units string, ok bool)
}

// NumericPrinter renders a numeric value as the host's canonical
// literal text, e.g. "1k" or "2.5Meg" when engineering is true.
type NumericPrinter interface {
	Print(value float64, units string, engineering bool) string
}

// UDFRegistry is the external user-defined-function database. The
// engine pushes a fresh context before registering a table's function
// definitions and pops it when done (see macros.go), and promotes
// transient macros encountered inside an unresolvable single-quoted
// expression into the enclosing context (spec.md §9).
type UDFRegistry interface {
	Push(ctx interface{})
	Pop() interface{}
	Define(name, argsText, bodyText string)
	PromoteTransientMacros(tree ExprTree, local *ParamTable)
}

// Collaborators bundles the four external interfaces a ParamTable
// calls into. A nil field disables the corresponding feature: without
// an ExprParser/Evaluator, single-quoted expressions are left
// unexpanded (parameter substitution still runs inside them); without
// a UDFRegistry, DefineMacros/UndefineMacros are no-ops.
type Collaborators struct {
	Parser    ExprParser
	Eval      Evaluator
	Printer   NumericPrinter
	Functions UDFRegistry
}

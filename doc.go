/*

Package paramsub implements the parameter-substitution engine used by a
SPICE-family circuit simulation input pipeline. Netlist text carries
`.param` definitions, model cards, subcircuit headers, and instance lines
whose right-hand sides reference previously defined symbolic parameters,
user-defined function macros, and single-quoted arithmetic expressions.
The engine keeps a table of parameter bindings and rewrites lines by
substituting names with their values, evaluating single-quoted
expressions where it can, and registering function definitions with an
external expression evaluator.

The package has no CLI and no file format of its own: it is a library,
consumed here by cmd/paramsub and by internal/pcell.

A minimal walk-through:

	t := paramsub.NewParamTable(nil)
	if err := t.ExtractFromLine(".param a=1 b=2"); err != nil {
		// malformed .param line
	}
	out := t.LineSubstitute("a+b")
	// out == "1+2"

Expression parsing, evaluation, numeric printing, and the user-defined
function registry are all out of scope for this package (spec.md §1);
they are consumed only through the interfaces in collab.go. The default
implementations used by cmd/paramsub live in internal/expr and
internal/udf.

Substitution is textual and recursive to a fixed point, with a
per-table recursion set guarding against cycles. A parameter whose
substitution text references itself, directly or indirectly, is left
unexpanded and an error is recorded in the package-wide diagnostic slot
(see errors.go) rather than causing a panic or an infinite loop.

Four tokenizing modes govern how a line is read, matching the four
contexts netlist text appears in: general device lines, isolated names
or expressions with no "=", model/param lines, and subcircuit headers
with forward-scoped parameter visibility.
See Mode in tokenizer.go.

*/
package paramsub

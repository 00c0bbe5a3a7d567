package paramsub

// DefineMacros pushes a fresh context onto the configured UDFRegistry
// and registers every function-definition record currently in the
// table against it, so later expression parsing can resolve calls to
// them. A no-op when no UDFRegistry is configured. Grounded on
// paramsub.cc's define_macros.
func (t *ParamTable) DefineMacros() {
	if t.collab.Functions == nil {
		return
	}
	t.collab.Functions.Push(t)
	for _, r := range t.records {
		if r.IsFunc() {
			t.collab.Functions.Define(r.Name, r.Args, r.Sub)
		}
	}
}

// UndefineMacros pops the context pushed by the matching DefineMacros
// call, unregistering this table's function definitions. A no-op when
// no UDFRegistry is configured. Grounded on paramsub.cc's
// undefine_macros.
func (t *ParamTable) UndefineMacros() {
	if t.collab.Functions == nil {
		return
	}
	t.collab.Functions.Pop()
}

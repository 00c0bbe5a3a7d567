// Package udf is the default UDFRegistry collaborator for paramsub: a
// stack of per-table function-definition contexts, mirroring the
// push-before/pop-after scoping paramsub.DefineMacros/UndefineMacros
// drive around one table's function records at a time.
package udf

import (
	"sync"

	"github.com/vtsim/paramsub"
)

// macro is one registered user-defined function.
type macro struct {
	args string
	body string
}

// context is one pushed scope: the table it belongs to plus the
// macros defined against it.
type context struct {
	owner  interface{}
	macros map[string]macro
}

// Registry is the default paramsub.UDFRegistry: a stack of contexts,
// innermost scope first, so a name defined in an inner .subckt shadows
// one from an enclosing scope without disturbing it.
type Registry struct {
	mu    sync.Mutex
	stack []*context
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Push implements paramsub.UDFRegistry.
func (r *Registry) Push(ctx interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stack = append(r.stack, &context{owner: ctx, macros: make(map[string]macro)})
}

// Pop implements paramsub.UDFRegistry.
func (r *Registry) Pop() interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stack) == 0 {
		return nil
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	return top.owner
}

// Define implements paramsub.UDFRegistry, registering name (already
// normalized to "base(N)" by the caller) against the innermost pushed
// context.
func (r *Registry) Define(name, argsText, bodyText string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stack) == 0 {
		return
	}
	top := r.stack[len(r.stack)-1]
	top.macros[name] = macro{args: argsText, body: bodyText}
}

// Lookup returns the innermost-scope definition of name, searching
// outward if the current scope doesn't have it.
func (r *Registry) Lookup(name string) (argsText, bodyText string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.stack) - 1; i >= 0; i-- {
		if m, ok := r.stack[i].macros[name]; ok {
			return m.args, m.body, true
		}
	}
	return "", "", false
}

// PromoteTransientMacros implements paramsub.UDFRegistry. paramsub
// calls it when a single-quoted expression references circuit state.
// This implementation does nothing: neither tree nor local is
// inspected, and no function definition is registered in any scope.
func (r *Registry) PromoteTransientMacros(tree paramsub.ExprTree, local *paramsub.ParamTable) {
	_ = local
	_ = tree
}

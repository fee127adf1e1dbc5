// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/fomo/pkg/ast"
)

// Assign replaces the value in slot with v.
func (e *engine) Assign(slot int, v ast.Value) {
	e.values[slot] = v
}

// Depth returns the number of bindings on the variable stack.
func (e *engine) Depth() int {
	return len(e.names)
}

// Fork creates a new engine with an empty variable stack that shares the
// arena used by e.
func (e *engine) Fork() *engine {
	return Share(e.name, e.arena)
}

// Lookup returns the slot holding the most recent binding for name.
func (e *engine) Lookup(name string) (int, bool) {
	for i := len(e.names) - 1; i >= 0; i-- {
		if e.names[i] == name {
			return i, true
		}
	}

	return -1, false
}

// Mark returns a mark for the current scope. Pass it to Truncate to discard
// every binding added after the mark was taken.
func (e *engine) Mark() int {
	return len(e.names)
}

// Push adds a binding for name. Earlier bindings for name are shadowed, not
// replaced.
func (e *engine) Push(name string, v ast.Value) {
	if v == nil {
		v = ast.Nil
	}

	e.names = append(e.names, name)
	e.values = append(e.values, v)
}

// Resolve returns the value of the most recent binding for name.
func (e *engine) Resolve(name string) (ast.Value, bool) {
	i, ok := e.Lookup(name)
	if !ok {
		return ast.Nil, false
	}

	return e.values[i], true
}

// Truncate discards every binding added since mark was taken.
func (e *engine) Truncate(mark int) {
	for i := mark; i < len(e.values); i++ {
		e.values[i] = nil
	}

	e.names = e.names[:mark]
	e.values = e.values[:mark]
}

// Released under an MIT license. See LICENSE.

// Package commands provides the native functions available to fomo code
// run by the command-line driver.
package commands

import (
	"io"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

// Engine is the part of an engine that natives need.
type Engine interface {
	Call(fn ast.Value, args ...ast.Value) ast.Value
	SetNative(name string, fn ast.Callback)
}

// Register binds every native function in e. Output from print goes to w.
func Register(e Engine, w io.Writer) {
	for name, fn := range Functions(e, w) {
		e.SetNative(name, fn)
	}
}

// Functions returns a mapping of names to native functions.
func Functions(e Engine, w io.Writer) map[string]ast.Callback {
	return map[string]ast.Callback{
		"debug": debug,
		"each":  each(e),
		"floor": floor,
		"glob":  glob,
		"join":  join,
		"lower": lower,
		"match": match,
		"num":   number,
		"print": printer(w),
		"range": span,
		"split": split,
		"sqrt":  sqrt,
		"str":   str,
		"upper": upper,
	}
}

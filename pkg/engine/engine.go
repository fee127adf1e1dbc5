// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed fomo code.
//
// A T holds everything needed to run fomo code: the arena of parsed nodes,
// the variable stack, and any source text that has been inserted but not
// yet parsed. Hosts create a T, bind values and native functions, insert
// code, and then alternate between ParseNext and Evaluate.
package engine

import (
	"errors"
	"io"

	"github.com/michaelmacinnis/fomo/pkg/ast"
	"github.com/michaelmacinnis/fomo/pkg/reader/parser"
)

// T (engine) is an execution context.
//
// The variable stack is two parallel slices. The bindings for the innermost
// scope are always a suffix of both. A scope is entered by noting the
// stack's length with Mark and left by calling Truncate with that length.
type T struct {
	arena  *ast.Arena
	names  []string
	values []ast.Value

	code   []rune
	cursor int
	name   string
	parser *parser.T
}

type engine = T

// New creates a new engine with an empty arena. The name labels inserted
// code in parse errors.
func New(name string) *engine {
	return Share(name, ast.NewArena())
}

// Share creates a new engine with an empty variable stack that adds to
// the existing arena a.
func Share(name string, a *ast.Arena) *engine {
	return &engine{
		arena:  a,
		name:   name,
		parser: parser.New(name, a),
	}
}

// Arena returns the arena used by the engine e.
func (e *engine) Arena() *ast.Arena {
	return e.arena
}

// Discard drops any inserted code that has not been parsed.
func (e *engine) Discard() {
	e.cursor = len(e.code)
}

// Insert appends code to the text waiting to be parsed.
func (e *engine) Insert(code string) {
	e.code = append(e.code, []rune(code)...)
}

// ParseNext parses the next top-level expression from the inserted code.
// It returns io.EOF when there is nothing left to parse. On error, the
// unparsed text is left in place so that the caller can insert more text
// or Discard it.
func (e *engine) ParseNext() (ast.Index, error) {
	i, next, err := e.parser.Parse(e.code, e.cursor)
	if err != nil {
		if errors.Is(err, io.EOF) {
			e.cursor = next
		}

		return 0, err
	}

	e.cursor = next

	return i, nil
}

// Pending returns true if there is inserted code that has not been parsed.
func (e *engine) Pending() bool {
	for _, r := range e.code[e.cursor:] {
		switch r {
		case ' ', '\t', '\r', '\n', ';':
		default:
			return true
		}
	}

	return false
}

// Run inserts code and then parses and evaluates every expression
// remaining. It returns the value of the last expression.
func (e *engine) Run(code string) (ast.Value, error) {
	e.Insert(code)

	var v ast.Value = ast.Nil

	for {
		i, err := e.ParseNext()
		if errors.Is(err, io.EOF) {
			return v, nil
		} else if err != nil {
			return v, err
		}

		v = e.Evaluate(i)
	}
}

// Set binds name to the value v in the current scope.
func (e *engine) Set(name string, v ast.Value) {
	e.Push(name, v)
}

// SetNative binds name to the host function fn in the current scope.
func (e *engine) SetNative(name string, fn ast.Callback) {
	e.Push(name, ast.NewNative(name, fn))
}

// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the fomo language.
//
// The parser appends the nodes it builds to an ast.Arena and returns the
// index of the root of each top-level expression.
package parser

import (
	"io"
	"strings"

	"fortio.org/log"

	"github.com/michaelmacinnis/fomo/pkg/ast"
	"github.com/michaelmacinnis/fomo/pkg/reader/lexer"
	"github.com/michaelmacinnis/fomo/pkg/reader/token"
)

// T holds the state of the parser.
type T struct {
	arena *ast.Arena
	code  []rune // Source being parsed.
	depth int    // Nesting depth. Only used for tracing.
	name  string // Label for the source. Used in error messages.
}

type parser = T

// New creates a new parser that appends to the arena a.
// The name labels the source in error messages.
func New(name string, a *ast.Arena) *parser {
	return &parser{arena: a, name: name}
}

// Parse parses exactly one expression from code, starting at index i.
// It returns the index of the expression's root node and the index of
// the first rune after the expression. When only whitespace remains Parse
// returns io.EOF.
//
// Nodes added before an error is detected are left in the arena.
func (p *parser) Parse(code []rune, i int) (ast.Index, int, error) {
	p.code = code
	p.depth = 0

	if lexer.Skip(code, i) >= len(code) {
		return 0, i, io.EOF
	}

	return p.expression(i)
}

func (p *parser) next(i int) (token.T, int) {
	return lexer.Next(p.code, i)
}

func (p *parser) push(n ast.Node) ast.Index {
	return p.arena.Push(n)
}

func (p *parser) trace(rule string, i int) {
	if !log.LogVerbose() {
		return
	}

	end := i + 8 //nolint:gomnd
	if end > len(p.code) {
		end = len(p.code)
	}

	if i > end {
		i = end
	}

	log.LogVf("%s%s %q", strings.Repeat("  ", p.depth), rule, string(p.code[i:end]))
}

// <expression> ::= <term> (Operator <expression>)?
//
// Every operator at this level is right-associative.
func (p *parser) expression(i int) (ast.Index, int, error) {
	p.trace("expression", i)

	p.depth++
	defer func() { p.depth-- }()

	l, i, err := p.term(i)
	if err != nil {
		return 0, i, err
	}

	t, j := p.next(i)
	if !t.Is(token.Operator) {
		return l, i, nil
	}

	r, j, err := p.expression(j)
	if err != nil {
		return 0, j, err
	}

	return p.push(&ast.Binary{Op: t.Op(), Left: l, Right: r}), j, nil
}

// <term> ::= <factor> ('(' <list> ')')* (('*' | '/') <term>)?
func (p *parser) term(i int) (ast.Index, int, error) {
	f, i, err := p.factor(i)
	if err != nil {
		return 0, i, err
	}

	for {
		t, j := p.next(i)
		if !t.Is('(') {
			break
		}

		args, j, err := p.list(j, ')')
		if err != nil {
			return 0, j, err
		}

		f = p.push(&ast.Call{Callee: f, Args: args})
		i = j
	}

	t, j := p.next(i)
	if !t.Is(token.Operator) || !t.Op().Multiplicative() {
		return f, i, nil
	}

	r, j, err := p.term(j)
	if err != nil {
		return 0, j, err
	}

	return p.push(&ast.Binary{Op: t.Op(), Left: f, Right: r}), j, nil
}

//nolint:cyclop,funlen
func (p *parser) factor(i int) (ast.Index, int, error) {
	t, j := p.next(i)

	p.trace("factor "+t.Class().String(), i)

	switch t.Class() {
	case '{':
		body, j, err := p.list(j, '}')
		if err != nil {
			return 0, j, err
		}

		return p.push(&ast.Block{Body: body}), j, nil

	case '[':
		items, j, err := p.list(j, ']')
		if err != nil {
			return 0, j, err
		}

		return p.push(&ast.List{Items: items}), j, nil

	case '(':
		e, j, err := p.expression(j)
		if err != nil {
			return 0, j, err
		}

		j, err = p.expect(j, ')')

		return e, j, err

	case token.Params:
		body, j, err := p.expression(j)
		if err != nil {
			return 0, j, err
		}

		return p.push(&ast.Lambda{Params: t.Params(), Body: body}), j, nil

	case token.Quoted:
		return p.push(ast.Str(t.Value())), j, nil

	case token.While:
		cond, j, err := p.expression(j)
		if err != nil {
			return 0, j, err
		}

		body, j, err := p.expression(j)
		if err != nil {
			return 0, j, err
		}

		return p.push(&ast.While{Cond: cond, Body: body}), j, nil

	case token.If:
		return p.conditional(j)

	case token.Let:
		v, j, err := p.expression(j)
		if err != nil {
			return 0, j, err
		}

		return p.push(&ast.Let{Name: t.Value(), Value: v}), j, nil

	case token.Number:
		return p.push(ast.Num(t.Num())), j, nil

	case token.Identifier:
		return p.push(&ast.Get{Name: t.Value()}), j, nil

	case token.Operator:
		if t.Op() == ast.Sub {
			return p.negative(j)
		}

	case token.Error:
		return 0, j, p.fail(j, t.Value(), t.End())
	}

	return 0, i, p.fail(lexer.Skip(p.code, i), "unexpected '"+t.Value()+"'", false)
}

// <conditional> ::= 'if' <expression> <expression> ('else' <expression>)?
func (p *parser) conditional(i int) (ast.Index, int, error) {
	cond, i, err := p.expression(i)
	if err != nil {
		return 0, i, err
	}

	then, i, err := p.expression(i)
	if err != nil {
		return 0, i, err
	}

	t, j := p.next(i)
	if !t.Is(token.Else) {
		otherwise := p.push(ast.Nil)

		return p.push(&ast.If{Cond: cond, Then: then, Else: otherwise}), i, nil
	}

	otherwise, j, err := p.expression(j)
	if err != nil {
		return 0, j, err
	}

	return p.push(&ast.If{Cond: cond, Then: then, Else: otherwise}), j, nil
}

func (p *parser) expect(i int, c token.Class) (int, error) {
	t, j := p.next(i)
	if t.Is(c) {
		return j, nil
	}

	if t.Is(token.Error) {
		return i, p.fail(j, "expected "+c.String()+"; "+t.Value(), t.End())
	}

	return i, p.fail(lexer.Skip(p.code, i), "expected "+c.String()+` got "`+t.Value()+`"`, false)
}

// <list> ::= (<expression> ','?)* <close>
//
// The list ends at the first expression that fails to parse. If the
// closing token is not found, the error that ended the list is reported.
func (p *parser) list(i int, c token.Class) ([]ast.Index, int, error) {
	items := []ast.Index{}

	var last error

	for {
		e, j, err := p.expression(i)
		if err != nil {
			last = err

			break
		}

		items = append(items, e)
		i = j

		t, j := p.next(i)
		if t.Is(',') {
			i = j
		}
	}

	j, err := p.expect(i, c)
	if err != nil {
		// Prefer the error from deeper inside the list, if there is one.
		if e, ok := last.(*Error); ok && e.at > lexer.Skip(p.code, i) {
			return nil, i, last
		}

		return nil, i, err
	}

	return items, j, nil
}

// <negative> ::= '-' <factor>
func (p *parser) negative(i int) (ast.Index, int, error) {
	f, i, err := p.factor(i)
	if err != nil {
		return 0, i, err
	}

	if n, ok := p.arena.Node(f).(ast.Num); ok {
		return p.push(-n), i, nil
	}

	zero := p.push(ast.Num(0))

	return p.push(&ast.Binary{Op: ast.Sub, Left: zero, Right: f}), i, nil
}

// Released under an MIT license. See LICENSE.

// Package token is shared by the fomo lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/fomo/pkg/ast"
)

// Class is a token's type. Punctuation uses the punctuation rune itself.
type Class rune

// T (token) is a lexical item returned by the lexer.
type T struct {
	class  Class
	end    bool
	num    float64
	op     ast.Op
	params []string
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	Arrow Class = unicode.MaxRune + iota
	Else
	Identifier
	If
	Let
	Number
	Operator
	Params
	Quoted
	While
)

// New creates a new token.
func New(class Class, value string) token {
	return token{class: class, value: value}
}

// Fail creates an Error token with the diagnostic msg. End is true when
// the error was caused by running out of input.
func Fail(msg string, end bool) token {
	return token{class: Error, end: end, value: msg}
}

// Num creates a Number token.
func Num(f float64, text string) token {
	return token{class: Number, num: f, value: text}
}

// Op creates an Operator token.
func Op(op ast.Op, text string) token {
	return token{class: Operator, op: op, value: text}
}

// Parameters creates a Params token for a function parameter list.
func Parameters(names []string, text string) token {
	return token{class: Params, params: names, value: text}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Arrow:
		return "Arrow"
	case Else:
		return "Else"
	case Identifier:
		return "Identifier"
	case If:
		return "If"
	case Let:
		return "Let"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case Params:
		return "Params"
	case Quoted:
		return "Quoted"
	case While:
		return "While"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// End returns true for Error tokens caused by running out of input.
func (t *token) End() bool {
	return t.class == Error && t.end
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Num returns the value of a Number token.
func (t *token) Num() float64 {
	return t.num
}

// Op returns the operator of an Operator token.
func (t *token) Op() ast.Op {
	return t.op
}

// Params returns the names in a Params token.
func (t *token) Params() []string {
	return t.params
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" + t.class.String() + ")"
}

// Value returns the token's text, or the diagnostic for an Error token.
func (t *token) Value() string {
	return t.value
}

// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the fomo language.
//
// The lexer holds no state of its own. Next is handed the source and a
// cursor and returns the token found there along with the cursor just past
// it. Callers that need lookahead call Next with a copy of their cursor and
// throw the result away if the token is not the one they wanted.
package lexer

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/fomo/pkg/ast"
	"github.com/michaelmacinnis/fomo/pkg/reader/token"
)

//nolint:gochecknoglobals
var (
	keywords = []struct {
		class token.Class
		text  string
	}{
		{token.If, "if"},
		{token.Else, "else"},
		{token.While, "while"},
	}

	// Checked before the single character operators they start with.
	multi = []string{"==", "!=", "<=", ">=", "++", "=>"}
)

// Next returns the token that starts at or after code[i] and the index of
// the first rune after that token. Whitespace and semicolons before the
// token are skipped. When no token can be recognized an Error token is
// returned.
func Next(code []rune, i int) (token.T, int) {
	i = Skip(code, i)
	if i >= len(code) {
		return token.Fail("end of input", true), i
	}

	r := code[i]

	switch r {
	case '{', '}', '[', ']', ',', ')':
		return token.New(token.Class(r), string(r)), i + 1
	case '"':
		return quoted(code, i)
	case '(':
		return paren(code, i)
	}

	if t, j, ok := keyword(code, i); ok {
		return t, j
	}

	if t, j, ok := number(code, i); ok {
		return t, j
	}

	if j := identifier(code, i); j > i {
		return token.New(token.Identifier, string(code[i:j])), j
	}

	return operator(code, i)
}

// Skip returns the index of the first rune at or after code[i] that is not
// whitespace or a semicolon.
func Skip(code []rune, i int) int {
	for i < len(code) {
		switch code[i] {
		case ' ', '\t', '\r', '\n', ';':
			i++
		default:
			return i
		}
	}

	return i
}

func identifier(code []rune, i int) int {
	for i < len(code) && isIdentifier(code[i]) {
		i++
	}

	return i
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentifier(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// word returns true if code[i:] starts with w and w is not merely the
// prefix of a longer identifier.
func word(code []rune, i int, w string) bool {
	j := i

	for _, r := range w {
		if j >= len(code) || code[j] != r {
			return false
		}
		j++
	}

	return j == len(code) || !isIdentifier(code[j])
}

func keyword(code []rune, i int) (token.T, int, bool) {
	for _, k := range keywords {
		if word(code, i, k.text) {
			return token.New(k.class, k.text), i + len(k.text), true
		}
	}

	if word(code, i, "let") {
		t, j := let(code, i+len("let"))
		return t, j, true
	}

	return token.T{}, i, false
}

// let scans the "<identifier> =" that must follow the let keyword.
func let(code []rune, i int) (token.T, int) {
	i = Skip(code, i)

	j := identifier(code, i)
	if j == i || isDigit(code[i]) {
		return token.Fail("no identifier after let", i >= len(code)), i
	}

	name := string(code[i:j])

	j = Skip(code, j)
	if j >= len(code) {
		return token.Fail("no '=' after let "+name, true), j
	}

	if code[j] != '=' || (j+1 < len(code) && (code[j+1] == '=' || code[j+1] == '>')) {
		return token.Fail("no '=' after let "+name, false), j
	}

	return token.New(token.Let, name), j + 1
}

// number scans a run of digits and decimal points. If the run is not a
// valid number nothing is consumed.
func number(code []rune, i int) (token.T, int, bool) {
	j := i
	for j < len(code) && (isDigit(code[j]) || code[j] == '.') {
		j++
	}

	if j == i {
		return token.T{}, i, false
	}

	text := string(code[i:j])

	// Out of range numbers are still numbers. ParseFloat returns ±Inf.
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token.T{}, i, false
	}

	return token.Num(f, text), j, true
}

func operator(code []rune, i int) (token.T, int) {
	for _, s := range multi {
		if i+1 < len(code) && code[i] == rune(s[0]) && code[i+1] == rune(s[1]) {
			if s == "=>" {
				return token.New(token.Arrow, s), i + 2
			}

			op, _ := ast.Operator(s)

			return token.Op(op, s), i + 2
		}
	}

	s := string(code[i])
	if op, ok := ast.Operator(s); ok {
		return token.Op(op, s), i + 1
	}

	return token.Fail("unexpected '"+s+"'", false), i
}

// paren scans either a function parameter list, "(a, b) =>", or a lone '('.
func paren(code []rune, i int) (token.T, int) {
	names := []string{}

	j := i + 1
	for {
		j = Skip(code, j)

		k := identifier(code, j)
		if k == j || isDigit(code[j]) {
			break
		}

		names = append(names, string(code[j:k]))

		j = Skip(code, k)
		if j < len(code) && code[j] == ',' {
			j++
		}
	}

	if j < len(code) && code[j] == ')' {
		j = Skip(code, j+1)
		if j+1 < len(code) && code[j] == '=' && code[j+1] == '>' {
			return token.Parameters(names, string(code[i:j+2])), j + 2
		}
	}

	return token.New('(', "("), i + 1
}

func quoted(code []rune, i int) (token.T, int) {
	j := i + 1
	for j < len(code) && code[j] != '"' {
		j++
	}

	if j >= len(code) {
		return token.Fail("unterminated string", true), i
	}

	return token.New(token.Quoted, string(code[i+1:j])), j + 1
}

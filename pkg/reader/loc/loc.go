// Released under an MIT license. See LICENSE.

// Package loc provides the type used to report where in the source a token
// or a parse error was found.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source of this token.
}

type loc = T

// At returns the location of the rune at index i in code.
func At(name string, code []rune, i int) T {
	l := loc{Char: 1, Line: 1, Name: name}

	if i > len(code) {
		i = len(code)
	}

	for _, r := range code[:i] {
		if r == '\n' {
			l.Line++
			l.Char = 1
		} else {
			l.Char++
		}
	}

	return l
}

func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}

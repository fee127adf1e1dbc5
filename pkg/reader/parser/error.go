// Released under an MIT license. See LICENSE.

package parser

import (
	"github.com/michaelmacinnis/fomo/pkg/reader/loc"
)

// Error is a parse error.
type Error struct {
	Msg    string
	Source loc.T

	at  int
	end bool
}

// Error returns the error message prefixed with its location.
func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Msg
}

// Incomplete returns true if the parse failed because the input ran out.
// Supplying more input may allow the parse to succeed.
func (e *Error) Incomplete() bool {
	return e.end
}

func (p *parser) fail(i int, msg string, end bool) error {
	return &Error{
		Msg:    msg,
		Source: loc.At(p.name, p.code, i),
		at:     i,
		end:    end,
	}
}

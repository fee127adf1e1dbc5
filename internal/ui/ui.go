// Released under an MIT license. See LICENSE.

// Package ui provides an interactive read-eval-print loop for fomo.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fortio.org/log"
	"github.com/peterh/liner"

	"github.com/michaelmacinnis/fomo/internal/system/history"
	"github.com/michaelmacinnis/fomo/internal/system/terminal"
	"github.com/michaelmacinnis/fomo/pkg/ast"
	"github.com/michaelmacinnis/fomo/pkg/reader/parser"
)

const (
	continuation = ". "
	prompt       = "> "
)

// Engine is the interface for things that evaluate the code entered.
type Engine interface {
	Discard()
	Evaluate(i ast.Index) ast.Value
	Insert(code string)
	ParseNext() (ast.Index, error)
}

// Run reads lines from the terminal open on fd and evaluates them with e
// until the user enters end-of-file.
func Run(e Engine, w io.Writer, fd int) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		log.Errf("reading history: %v", err)
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			log.Errf("writing history: %v", err)
		}
	}()

	return loop(e, w, terminal.Width(fd), func(p string) (string, error) {
		line, err := cli.Prompt(p)
		if err == nil && strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		return line, err
	})
}

func loop(e Engine, w io.Writer, width int, read func(string) (string, error)) error {
	p := prompt

	for {
		line, err := read(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			e.Discard()

			p = prompt

			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)

			return nil
		} else if err != nil {
			return err
		}

		e.Insert(line + "\n")

		p = evaluate(e, w, width)
	}
}

// evaluate evaluates every complete expression inserted so far and returns
// the prompt to use for the next line.
func evaluate(e Engine, w io.Writer, width int) string {
	for {
		i, err := e.ParseNext()
		if errors.Is(err, io.EOF) {
			return prompt
		}

		var perr *parser.Error
		if errors.As(err, &perr) && perr.Incomplete() {
			return continuation
		}

		if err != nil {
			fmt.Fprintln(w, err)
			e.Discard()

			return prompt
		}

		v := e.Evaluate(i)
		if !ast.IsUnit(v) {
			fmt.Fprintln(w, terminal.Elide(ast.Literal(v), width))
		}
	}
}

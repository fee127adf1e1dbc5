// Released under an MIT license. See LICENSE.

// Fomo runs fomo scripts and provides an interactive fomo prompt.
//
//	fomo script.fomo        # Run a script.
//	fomo -c 'fib(20)'       # Run a command and print its value.
//	fomo -b values.yaml     # Start a prompt with values bound.
package main

import (
	"fmt"
	"io"
	"os"

	"fortio.org/log"

	"github.com/michaelmacinnis/fomo/internal/bindings"
	"github.com/michaelmacinnis/fomo/internal/commands"
	"github.com/michaelmacinnis/fomo/internal/system/options"
	"github.com/michaelmacinnis/fomo/internal/ui"
	"github.com/michaelmacinnis/fomo/pkg/ast"
	"github.com/michaelmacinnis/fomo/pkg/engine"
)

func main() {
	options.Parse()

	if options.Debug() {
		log.SetLogLevel(log.Verbose)
	}

	name := "stdin"
	if options.Command() != "" {
		name = "command"
	} else if options.Script() != "" {
		name = options.Script()
	}

	e := engine.New(name)

	commands.Register(e, os.Stdout)

	if path := options.Bind(); path != "" {
		bs, err := bindings.LoadFile(path)
		if err != nil {
			log.Fatalf("%v", err)
		}

		bindings.Apply(e, bs)
	}

	if options.Interactive() {
		if err := ui.Run(e, os.Stdout, options.Terminal()); err != nil {
			log.Fatalf("%v", err)
		}

		return
	}

	if c := options.Command(); c != "" {
		v := run(e, c)
		if !ast.IsUnit(v) {
			fmt.Println(ast.Literal(v))
		}

		return
	}

	code, err := source(options.Script())
	if err != nil {
		log.Fatalf("%v", err)
	}

	run(e, code)
}

func run(e *engine.T, code string) ast.Value {
	v, err := e.Run(code)
	if err != nil {
		log.Fatalf("%v", err)
	}

	return v
}

func source(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

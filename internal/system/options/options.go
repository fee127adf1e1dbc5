// Released under an MIT license. See LICENSE.

// Package options parses the command-line options for fomo.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by fomo -v.
const Version = "fomo 0.1.0"

//nolint:gochecknoglobals
var (
	bind        string
	command     string
	debug       bool
	interactive bool
	script      string
	terminal    int
	usage       = `fomo

Usage:
  fomo [-d] [-b FILE] SCRIPT
  fomo [-d] [-b FILE] -c COMMAND
  fomo [-di] [-b FILE]
  fomo -h
  fomo -v

Arguments:
  SCRIPT  Path to fomo script.

Options:
  -b, --bind=FILE        Bind the values in the YAML file FILE before running.
  -c, --command=COMMAND  Run the specified command and print its value.
  -d, --debug            Trace parsing and evaluation.
  -i, --interactive      Disable interactive mode.
  -h, --help             Display this help.
  -v, --version          Print fomo version.

If fomo's stdin is a TTY, and fomo was invoked with no script or command,
interactive mode is enabled. Otherwise, it is disabled and, when there is
no script or command, fomo runs the code read from stdin.
`
)

// Bind returns the path of the YAML file of values to bind, if any.
func Bind() string {
	return bind
}

// Command returns the command specified with -c, if any.
func Command() string {
	return command
}

// Debug returns true if tracing was requested.
func Debug() bool {
	return debug
}

// Interactive returns true if fomo should start a read-eval-print loop.
func Interactive() bool {
	return interactive
}

// Parse parses the command-line arguments. It exits after printing help or
// the version or on an invalid command line.
func Parse() {
	p := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	err := parse(p, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	if interactive {
		terminal = int(os.Stdin.Fd())
	}
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Terminal returns the file descriptor of the terminal in interactive mode.
func Terminal() int {
	return terminal
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	bind, _ = opts.String("--bind")
	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	script, _ = opts.String("SCRIPT")

	interactive = script == "" && command == "" && tty

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive && !invertInteractive

	return nil
}

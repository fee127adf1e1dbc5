// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package history

import (
	"os"
	"path/filepath"
)

// Path returns the location of the history file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".fomo_history")
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(Path())
}

// Released under an MIT license. See LICENSE.

// Package terminal queries the terminal fomo is attached to.
package terminal

// DefaultWidth is used when the width of the terminal cannot be determined.
const DefaultWidth = 80

// Elide shortens s to fit in width runes, marking the cut with "...".
func Elide(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}

	if width <= 3 { //nolint:gomnd
		return string(r[:width])
	}

	return string(r[:width-3]) + "..."
}

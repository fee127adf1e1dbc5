// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package terminal

// Width returns the number of columns of the terminal open on fd.
func Width(_ int) int {
	return DefaultWidth
}

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

// Package term reports whether a file descriptor is an interactive terminal.
package term

import "os"

// IsTerminal always reports false where termios is unavailable.
func IsTerminal(f *os.File) bool {
	return false
}

package util

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the width of the terminal can't be determined
const DefaultWidth = 80

// TerminalWidth returns the width of the terminal attached to stdout, or DefaultWidth
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}

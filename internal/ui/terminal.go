package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StdinIsTerminal reports whether prompts can be shown.
func StdinIsTerminal() bool { return IsTerminal(os.Stdin) }

// StdoutIsTerminal reports whether styled output should be used.
func StdoutIsTerminal() bool { return IsTerminal(os.Stdout) }

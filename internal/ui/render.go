package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

const wrapWidth = 80

// Render writes md to w. On a terminal glamour picks a style matching the
// background; otherwise the plain notty style keeps output free of escape
// codes.
func Render(w io.Writer, md string, tty bool) error {
	style := glamour.WithStandardStyle("notty")
	if tty {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrapWidth))
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// Package prompt drives the interactive questions with huh. Each question
// runs as its own form so that visibility can be decided from the answers
// given so far.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/ui"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Engine asks questions on the terminal.
type Engine struct {
	theme *huh.Theme
	// Accessible switches huh to its line-based mode for screen readers.
	Accessible bool
}

// New returns an Engine with the forge theme.
func New() *Engine {
	return &Engine{theme: newTheme()}
}

var _ config.Asker = (*Engine)(nil)

// Ask implements config.Asker.
func (e *Engine) Ask(p config.Prompt) (string, error) {
	value := p.Initial
	var field huh.Field

	switch p.Kind {
	case config.KindSelect:
		opts := make([]huh.Option[string], len(p.Options))
		for i, o := range p.Options {
			opts[i] = huh.NewOption(o.Label, o.Value)
		}
		field = huh.NewSelect[string]().
			Title(p.Title).
			Options(opts...).
			Value(&value)
	default:
		initial := p.Initial
		field = huh.NewInput().
			Title(p.Title).
			Placeholder(initial).
			Value(&value).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" && initial == "" {
					return errors.New("a value is required")
				}
				return nil
			})
	}

	if err := e.run(field); err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		value = p.Initial
	}
	return value, nil
}

// Confirm asks a yes/no question.
func (e *Engine) Confirm(title string, def bool) (bool, error) {
	value := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := e.run(field); err != nil {
		return false, err
	}
	return value, nil
}

func (e *Engine) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(e.theme).
		WithAccessible(e.Accessible)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrCancelled
		}
		return fmt.Errorf("prompt error: %w", err)
	}
	return nil
}

func newTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ui.Border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(ui.Primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ui.Muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ui.Error)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ui.Error)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ui.Primary).SetString("> ")
	t.Focused.Option = t.Focused.Option.Foreground(ui.Text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ui.Success)
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(ui.Text)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ui.Primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(ui.Muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ui.Secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(ui.Primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(ui.Text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	return t
}

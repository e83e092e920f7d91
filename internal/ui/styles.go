package ui

import "github.com/charmbracelet/lipgloss"

// Brand colors for dark terminals. Light-terminal variants live in the
// adaptive colors below.
const (
	ColorPrimary   = "#F97316"
	ColorSecondary = "#A78BFA"
	ColorSuccess   = "#34D399"
	ColorWarning   = "#FBBF24"
	ColorError     = "#F87171"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

var (
	Primary   = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: ColorPrimary}
	Secondary = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	Success   = lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	Warning   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: ColorWarning}
	Error     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	Text      = lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	Muted     = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	Border    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}
)

// Styles groups the lipgloss styles used for status lines.
type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles returns the default style set.
func NewStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Success: lipgloss.NewStyle().Foreground(Success),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Error:   lipgloss.NewStyle().Foreground(Error).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(Muted),
	}
}

// Check renders a doctor-style status line.
func (s *Styles) Check(ok bool, label, detail string) string {
	tag := s.Success.Render("[ OK ]")
	if !ok {
		tag = s.Warning.Render("[MISS]")
	}
	line := tag + " " + label
	if detail != "" {
		line += " " + s.Muted.Render(detail)
	}
	return line
}

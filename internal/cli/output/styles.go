// Package output renders CLI results and diagnostics for the terminal.
package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles groups the lipgloss styles used by the CLI.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Header  lipgloss.Style
	Caret   lipgloss.Style
	Keyword lipgloss.Style
}

// ColorProfile picks the termenv profile for w. mode is one of auto,
// always or never; auto asks the terminal and honours NO_COLOR.
func ColorProfile(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case "always":
		return termenv.ANSI256
	case "never":
		return termenv.Ascii
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}

// NewStyles builds styles bound to a lipgloss renderer for w.
func NewStyles(w io.Writer, mode string) *Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile(w, mode))

	return &Styles{
		Error:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		Success: r.NewStyle().Foreground(lipgloss.Color("10")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Bold:    r.NewStyle().Bold(true),
		Header:  r.NewStyle().Bold(true).Underline(true),
		Caret:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Keyword: r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

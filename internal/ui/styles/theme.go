// Package styles holds the console palette and the lipgloss styles built from it.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - menu header
	Secondary lipgloss.Color // Gold/orange - header gradient end

	FgMuted lipgloss.Color // Secondary text (dimmed)

	// Status colors
	Success lipgloss.Color // Green - record added, borrowed
	Error   lipgloss.Color // Red - not found, out of stock
	Warning lipgloss.Color // Yellow/orange - invalid input
}

// Styles renders text for one output writer.
type Styles struct {
	renderer *lipgloss.Renderer
	theme    *Theme
	enabled  bool

	Title   lipgloss.Style // Bold, bright
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgMuted: lipgloss.Color("#808080"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// For builds styles for w. The color profile is detected from w, so
// writers that are not terminals get plain text. When enabled is false
// every style renders its input unchanged.
func (t *Theme) For(w io.Writer, enabled bool) *Styles {
	r := lipgloss.NewRenderer(w)
	s := &Styles{renderer: r, theme: t, enabled: enabled}
	if !enabled {
		plain := r.NewStyle()
		s.Title, s.Muted, s.Success, s.Error, s.Warning = plain, plain, plain, plain, plain
		return s
	}
	s.Title = r.NewStyle().Foreground(t.Primary).Bold(true)
	s.Muted = r.NewStyle().Foreground(t.FgMuted)
	s.Success = r.NewStyle().Foreground(t.Success)
	s.Error = r.NewStyle().Foreground(t.Error)
	s.Warning = r.NewStyle().Foreground(t.Warning)
	return s
}

// Plain returns styles that never add escape sequences.
func Plain(w io.Writer) *Styles {
	return T().For(w, false)
}

// Header renders a single-line heading with the theme's accent gradient.
func (s *Styles) Header(text string) string {
	if !s.enabled {
		return text
	}
	return applyGradient(s.renderer, text, true, s.theme.Primary, s.theme.Secondary)
}

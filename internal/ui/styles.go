package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Styles renders report fragments. When disabled every method returns its
// input unchanged, so reports written to pipes and files stay plain text.
type Styles struct {
	enabled bool

	heading lipgloss.Style
	keep    lipgloss.Style
	move    lipgloss.Style
	fail    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

// NewStyles creates styles rendering for out.
func NewStyles(out io.Writer, enabled bool) *Styles {
	r := lipgloss.NewRenderer(out)
	return &Styles{
		enabled: enabled,
		heading: r.NewStyle().Bold(true).Foreground(ColorPrimary),
		keep:    r.NewStyle().Foreground(ColorSuccess),
		move:    r.NewStyle().Foreground(ColorWarning),
		fail:    r.NewStyle().Bold(true).Foreground(ColorError),
		success: r.NewStyle().Bold(true).Foreground(ColorSuccess),
		failure: r.NewStyle().Bold(true).Foreground(ColorError),
		muted:   r.NewStyle().Foreground(ColorMuted),
	}
}

// Plain returns styles that never decorate.
func Plain() *Styles {
	return &Styles{}
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Heading renders a section heading.
func (s *Styles) Heading(text string) string { return s.render(s.heading, text) }

// Keep renders the marker of a kept file.
func (s *Styles) Keep(text string) string { return s.render(s.keep, text) }

// Move renders the marker of a moved file.
func (s *Styles) Move(text string) string { return s.render(s.move, text) }

// Fail renders the marker of a failed move.
func (s *Styles) Fail(text string) string { return s.render(s.fail, text) }

// Success renders a clean outcome.
func (s *Styles) Success(text string) string { return s.render(s.success, text) }

// Failure renders a failed outcome.
func (s *Styles) Failure(text string) string { return s.render(s.failure, text) }

// Muted renders secondary hints.
func (s *Styles) Muted(text string) string { return s.render(s.muted, text) }

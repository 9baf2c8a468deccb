// Package colorize renders snippet styles for terminals.
package colorize

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/jwalton/go-supportscolor"
	"github.com/muesli/termenv"
	"github.com/takaishi/snip/snippet"
)

// Mode controls when output is colored.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode parses a --color value. The empty string means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	}
	return "", errors.Newf("invalid color mode %q (want auto, always or never)", s)
}

// Styles holds the lipgloss style for each snippet style.
type Styles struct {
	LineNumber lipgloss.Style
	Highlight  lipgloss.Style
}

// DefaultStyles returns light green line numbers and a red background highlight.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		LineNumber: r.NewStyle().Foreground(lipgloss.Color("10")),
		Highlight:  r.NewStyle().Background(lipgloss.Color("1")).TabWidth(lipgloss.NoTabConversion),
	}
}

// Colorizer returns a snippet.Colorizer rendering with s.
func (s Styles) Colorizer() snippet.Colorizer {
	return func(text string, style snippet.Style) string {
		switch style {
		case snippet.StyleLineNumber:
			return s.LineNumber.Render(text)
		case snippet.StyleHighlight:
			return s.Highlight.Render(text)
		default:
			return text
		}
	}
}

// New returns a colorizer for output written to w.
func New(w io.Writer, mode Mode) snippet.Colorizer {
	switch mode {
	case ModeNever:
		return snippet.Plain
	case ModeAlways:
		return DefaultStyles(NewRenderer(w, termenv.ANSI256)).Colorizer()
	}

	f, ok := w.(*os.File)
	if !ok || !supportscolor.SupportsColor(f.Fd()).SupportsColor {
		return snippet.Plain
	}
	return DefaultStyles(NewRenderer(w, termenv.ANSI256)).Colorizer()
}

// NewRenderer returns a lipgloss renderer for w pinned to profile.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/loglens/internal/logparse"
)

// ColorMode controls whether level tokens are colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color mode string. An empty string selects
// ColorAlways.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ColorAlways:
		return ColorAlways, nil
	case ColorAuto:
		return ColorAuto, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// Palette holds the ANSI colors used for recognized levels. Values are
// lipgloss color strings; 9-11 are the bright red, green and yellow.
type Palette struct {
	Success string
	Warning string
	Danger  string
}

// DefaultPalette matches the classic bright terminal colors.
func DefaultPalette() Palette {
	return Palette{
		Success: "10",
		Warning: "11",
		Danger:  "9",
	}
}

// Formatter renders log entries with colorized level tokens.
type Formatter struct {
	renderer *lipgloss.Renderer

	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
}

// New returns a Formatter for output written to w. ColorAuto inspects w to
// decide; the other modes force the profile.
func New(w io.Writer, mode ColorMode) *Formatter {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return newFormatter(r, DefaultPalette())
}

func newFormatter(r *lipgloss.Renderer, p Palette) *Formatter {
	return &Formatter{
		renderer: r,
		success:  r.NewStyle().Foreground(lipgloss.Color(p.Success)),
		warning:  r.NewStyle().Foreground(lipgloss.Color(p.Warning)),
		danger:   r.NewStyle().Foreground(lipgloss.Color(p.Danger)),
	}
}

// levelStyle returns the style for a level. The match is exact and
// case-sensitive; ok is false for levels that stay uncolored.
func (f *Formatter) levelStyle(level string) (lipgloss.Style, bool) {
	switch level {
	case "INFO":
		return f.success, true
	case "WARNING":
		return f.warning, true
	case "ERROR":
		return f.danger, true
	default:
		return lipgloss.Style{}, false
	}
}

// Colorize wraps level in its color escape sequences. Unrecognized levels
// are returned unchanged.
func (f *Formatter) Colorize(level string) string {
	style, ok := f.levelStyle(level)
	if !ok {
		return level
	}
	return style.Render(level)
}

// FormatEntry renders "{date} {level} {message}" with only the level colored.
func (f *Formatter) FormatEntry(e logparse.Entry) string {
	return e.Date + " " + f.Colorize(e.Level) + " " + e.Message
}

// Enabled reports whether the formatter emits color escapes.
func (f *Formatter) Enabled() bool {
	return f.renderer.ColorProfile() != termenv.Ascii
}

package diagnostics

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette - keeping it minimal and accessible.
var (
	colorWarning = lipgloss.Color("214") // Orange
	colorFixMe   = lipgloss.Color("170") // Magenta
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
	colorSuccess = lipgloss.Color("34")  // Green
)

// styles renders each severity. The zero value renders plain text.
type styles struct {
	enabled  bool
	warning  lipgloss.Style
	fixMe    lipgloss.Style
	err      lipgloss.Style
	progress lipgloss.Style
	success  lipgloss.Style
}

func newStyles(out io.Writer, enabled bool) styles {
	if !enabled {
		return styles{}
	}
	r := lipgloss.NewRenderer(out)
	return styles{
		enabled:  true,
		warning:  r.NewStyle().Foreground(colorWarning).Bold(true),
		fixMe:    r.NewStyle().Foreground(colorFixMe).Bold(true),
		err:      r.NewStyle().Foreground(colorError).Bold(true),
		progress: r.NewStyle().Foreground(colorMuted),
		success:  r.NewStyle().Foreground(colorSuccess),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// ColorEnabled reports whether out should receive ANSI styling.
// Color is used only for terminals, and never when NO_COLOR is set.
func ColorEnabled(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

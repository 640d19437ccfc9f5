// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Converter, etc.) rather than visual.
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	palette Palette

	successStyle   lipgloss.Style
	warningStyle   lipgloss.Style
	errorStyle     lipgloss.Style
	infoStyle      lipgloss.Style
	headerStyle    lipgloss.Style
	mutedStyle     lipgloss.Style
	converterStyle lipgloss.Style
	terminalStyle  lipgloss.Style
)

// Init enables or disables styling. NO_COLOR and ARGTREE_NO_COLOR (any
// non-empty value) force styling off regardless of enable.
//
// Call once from main before any output.
func Init(enable bool) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("ARGTREE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		palette = LoadPalette()
		initStyles(palette)
	}
}

// CurrentPalette returns the palette in use. It is the zero value while
// styling is disabled.
func CurrentPalette() Palette {
	return palette
}

func initStyles(p Palette) {
	// ANSI256 regardless of TTY detection; Init already decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle = makeStyle(p.Error)
	infoStyle = makeStyle(p.Info)
	mutedStyle = makeStyle(p.Muted)
	headerStyle = makeStyle(p.Header)
	converterStyle = makeStyle(p.Converter)
	terminalStyle = makeStyle(p.Terminal)
}

// makeStyle turns "bold" or an ANSI color number (0-255) into a style.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	return render(successStyle, text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	return render(warningStyle, text)
}

// Error styles text for error messages.
func Error(text string) string {
	return render(errorStyle, text)
}

// Info styles text for informational messages.
func Info(text string) string {
	return render(infoStyle, text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	return render(headerStyle, text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	return render(mutedStyle, text)
}

// Converter styles a converter label in tree dumps.
func Converter(text string) string {
	return render(converterStyle, text)
}

// Terminal styles a terminal node in tree dumps.
func Terminal(text string) string {
	return render(terminalStyle, text)
}

// Package output provides styled terminal rendering helpers for persona.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for the personality face and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for healthy sessions.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for the error indicator.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for moderate error counts.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text like the current job.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StylePersonality renders the kaomoji label.
	StylePersonality = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	// StyleActivity renders the current activity word.
	StyleActivity = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleJob renders the current job detail.
	StyleJob = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleError renders the error indicator.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning renders moderate error counts.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleModel renders the model name.
	StyleModel = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StylePersonality = plain
		StyleActivity = plain
		StyleJob = plain
		StyleError = plain
		StyleWarning = plain
		StyleModel = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoDetect disables color when stdout is not a terminal. The statusline
// host reads our stdout through a pipe but renders ANSI itself, so callers
// that want color through a pipe skip this.
func AutoDetect() {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}

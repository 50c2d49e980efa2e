package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles for human-readable operation output
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// ColorEnabled decides whether to colorize, from the config mode ("auto",
// "always", "never"), NO_COLOR, and whether stdout is a terminal.
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if termenv.EnvNoColor() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Success renders a success message.
func Success(text string, color bool) string {
	if !color {
		return text
	}
	return successStyle.Render(text)
}

// Failure renders a failure message.
func Failure(text string, color bool) string {
	if !color {
		return text
	}
	return failureStyle.Render(text)
}

// Dim renders secondary detail.
func Dim(text string, color bool) string {
	if !color {
		return text
	}
	return dimStyle.Render(text)
}

// Warn renders a warning.
func Warn(text string, color bool) string {
	if !color {
		return text
	}
	return warnStyle.Render(text)
}

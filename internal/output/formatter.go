package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f46251")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// ColorEnabled reports whether the terminal supports colored output.
func ColorEnabled() bool {
	return termenv.EnvColorProfile() != termenv.Ascii
}

// FormatSuccess renders a success line for human consumption.
func FormatSuccess(text string) string {
	if !ColorEnabled() {
		return "✓ " + text
	}
	return successStyle.Render("✓ " + text)
}

// FormatFailure renders a failed operation: the command that ran, its exit
// code, and the stderr text indented underneath. The stderr text itself is
// not reflowed.
func FormatFailure(command string, code int, stderr string) string {
	header := fmt.Sprintf("✗ %s (exit %d)", command, code)
	if ColorEnabled() {
		header = failureStyle.Render(header)
	}
	if stderr == "" {
		return header
	}

	var b strings.Builder
	b.WriteString(header)
	for _, line := range strings.Split(strings.TrimRight(stderr, "\n"), "\n") {
		b.WriteString("\n  ")
		if ColorEnabled() {
			b.WriteString(mutedStyle.Render(line))
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}

package cli

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// renderBanner renders the separator printed before each test run.
func renderBanner(cmdline string) string {
	return bannerStyle.Render("── " + cmdline + " ──")
}

// RenderError renders a fatal diagnostic for stderr.
func RenderError(msg string) string {
	return errorStyle.Render("error: " + msg)
}

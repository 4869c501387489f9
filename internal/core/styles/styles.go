// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7"))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0af68"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f7768e"))
	TagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
)

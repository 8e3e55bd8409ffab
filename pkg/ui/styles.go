package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#007ACC", Dark: "#3D9EFF"}
	okColor     = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	warnColor   = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#A0A8B0"}
)

var (
	labelStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	createdStyle = lipgloss.NewStyle().Foreground(okColor).Bold(true)
	skipStyle    = lipgloss.NewStyle().Foreground(warnColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}).Bold(true)

// FormatError renders err as a one-line error message.
func FormatError(err error, format Format) string {
	msg := fmt.Sprintf("Error: %v", err)
	if format == FormatTerminal {
		return errorStyle.Render(msg)
	}
	return msg
}

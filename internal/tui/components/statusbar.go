package components

import (
	"beven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. note is a transient
// message (save/export confirmation); right shows the currency code.
func RenderStatusBar(width int, note, currency string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	noteStyle := lipgloss.NewStyle().Foreground(t.GreenBright)

	left := " [s]ave scenario  [x]export  [?]help  [q]uit"
	if note != "" {
		left += "  " + noteStyle.Render(note)
	}
	right := ""
	if currency != "" {
		right = currency + " "
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

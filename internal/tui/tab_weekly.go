package tui

import (
	"fmt"
	"strings"

	"beven/internal/cli"
	"beven/internal/tui/components"
	"beven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// weeklyState tracks the weekly tab cursor.
type weeklyState struct {
	cursor int
}

func (a App) renderWeeklyTab(cw, contentH int) string {
	t := theme.Active
	weeks := a.result.Weeks

	if len(weeks) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("Horizon is zero months. Raise it in S[e]ttings.")
		return components.ContentCard("Weekly Projection", hint, cw)
	}

	// Visible window around the cursor. Card chrome and the footer
	// take roughly six lines.
	visible := contentH - 6
	if visible < 3 {
		visible = 3
	}
	offset := 0
	if a.weekly.cursor >= visible {
		offset = a.weekly.cursor - visible + 1
	}
	end := offset + visible
	if end > len(weeks) {
		end = len(weeks)
	}

	var body strings.Builder
	body.WriteString(renderPeriodHeader())
	body.WriteString("\n")
	for i := offset; i < end; i++ {
		w := weeks[i]
		body.WriteString(renderPeriodRow(fmt.Sprintf("W%d", i+1), w, i == a.weekly.cursor))
		body.WriteString("\n")
	}

	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	sel := weeks[a.weekly.cursor]
	month := a.weekly.cursor/a.params.WeeksPerMonth + 1
	barW := cw - 48
	if barW > 24 {
		barW = 24
	}
	if barW >= 8 {
		body.WriteString(components.ProgressBar(float64(a.weekly.cursor+1)/float64(len(weeks)), barW))
		body.WriteString("  ")
	}
	body.WriteString(noteStyle.Render(fmt.Sprintf(
		"Week %d of %d (month %d)  cumulative %s  [j/k] scroll",
		a.weekly.cursor+1, len(weeks), month, cli.FormatMoney(sel.CumulativeProfit))))

	title := fmt.Sprintf("Weekly Projection (%d weeks/month, fixed costs amortized evenly)",
		a.params.WeeksPerMonth)
	return components.ContentCard(title, body.String(), cw)
}

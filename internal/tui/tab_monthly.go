package tui

import (
	"fmt"
	"strings"

	"beven/internal/cli"
	"beven/internal/model"
	"beven/internal/tui/components"
	"beven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Column layout shared by the monthly and weekly tables.
var periodCols = []struct {
	name  string
	width int
}{
	{"Period", 8},
	{"Orders", 10},
	{"Revenue", 13},
	{"Var Cost", 13},
	{"Fixed", 12},
	{"Profit", 13},
	{"Cumulative", 13},
}

func renderPeriodHeader() string {
	t := theme.Active
	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)

	var b strings.Builder
	for i, c := range periodCols {
		if i == 0 {
			b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s", c.width, c.name)))
		} else {
			b.WriteString(headerStyle.Render(fmt.Sprintf("%*s", c.width, c.name)))
		}
	}
	return b.String()
}

func renderPeriodRow(label string, r model.PeriodResult, selected bool) string {
	t := theme.Active

	bg := t.Surface
	if selected {
		bg = t.SurfaceBright
	}
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(bg)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green).Background(bg)

	signed := func(v float64, w int) string {
		s := fmt.Sprintf("%*s", w, cli.FormatMoneyBare(v))
		if v < 0 {
			return lossStyle.Render(s)
		}
		return gainStyle.Render(s)
	}

	var b strings.Builder
	b.WriteString(cellStyle.Render(fmt.Sprintf("%-*s", periodCols[0].width, label)))
	b.WriteString(cellStyle.Render(fmt.Sprintf("%*s", periodCols[1].width, cli.FormatOrders(r.Orders))))
	b.WriteString(cellStyle.Render(fmt.Sprintf("%*s", periodCols[2].width, cli.FormatMoneyBare(r.Revenue))))
	b.WriteString(cellStyle.Render(fmt.Sprintf("%*s", periodCols[3].width, cli.FormatMoneyBare(r.VariableCost))))
	b.WriteString(cellStyle.Render(fmt.Sprintf("%*s", periodCols[4].width, cli.FormatMoneyBare(r.FixedCost))))
	b.WriteString(signed(r.Profit, periodCols[5].width))
	b.WriteString(signed(r.CumulativeProfit, periodCols[6].width))
	return b.String()
}

func (a App) renderMonthlyTab(cw int) string {
	t := theme.Active
	months := a.result.Months

	if len(months) == 0 {
		hint := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).
			Render("Horizon is zero months. Raise it in S[e]ttings.")
		return components.ContentCard("Monthly Projection", hint, cw)
	}

	var body strings.Builder
	body.WriteString(renderPeriodHeader())
	body.WriteString("\n")
	for i, m := range months {
		body.WriteString(renderPeriodRow(fmt.Sprintf("M%d", i+1), m, false))
		body.WriteString("\n")
	}

	noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if a.startExplicit {
		body.WriteString(noteStyle.Render(fmt.Sprintf("Starting from %s orders/month (explicit).",
			cli.FormatOrders(a.startOrders))))
	} else {
		body.WriteString(noteStyle.Render(fmt.Sprintf("Starting from breakeven volume (%s orders/month).",
			cli.FormatOrders(a.startOrders))))
	}

	title := fmt.Sprintf("Monthly Projection (%s growth)", cli.FormatGrowth(a.params.GrowthRate))
	return components.ContentCard(title, body.String(), cw)
}

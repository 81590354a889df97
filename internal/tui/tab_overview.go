package tui

import (
	"fmt"
	"strconv"
	"strings"

	"beven/internal/cli"
	"beven/internal/tui/components"
	"beven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	be := a.result.Breakeven
	months := a.result.Months
	var b strings.Builder

	// Row 1: Metric cards
	marginColor := t.Green
	if be.Margin <= 0 {
		marginColor = t.Red
	}

	startDelta := "breakeven volume"
	if a.startExplicit {
		startDelta = "explicit input"
	}

	cards := []components.Metric{
		{Label: "Margin / order", Value: cli.FormatMoney(be.Margin),
			Delta: cli.FormatPercent(be.MarginPercent / 100), Color: marginColor},
		{Label: "Breakeven", Value: cli.FormatOrders(be.Orders) + " orders",
			Delta: cli.FormatMoney(be.Revenue) + " revenue"},
		{Label: "Fixed costs", Value: cli.FormatMoney(a.params.FixedMonthlyCost()),
			Delta: "per month"},
		{Label: "Start volume", Value: cli.FormatOrders(a.startOrders) + " orders",
			Delta: startDelta},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Goal progress
	if a.result.Goal != nil {
		g := a.result.Goal
		innerW := components.CardInnerWidth(cw)
		barW := innerW - 30
		if barW < 10 {
			barW = 10
		}

		pct := 1.0
		if g.Orders > 0 {
			pct = a.startOrders / g.Orders
		}
		body := components.GoalBar("Orders vs goal", pct, 16, barW) + "\n" +
			lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(
				fmt.Sprintf("Goal %s profit/mo needs %s orders (%s revenue)",
					cli.FormatMoney(g.Goal), cli.FormatOrders(g.Orders), cli.FormatMoney(g.Revenue)))
		b.WriteString(components.ContentCard("Profit Goal", body, cw))
		b.WriteString("\n")
	}

	// Row 3: Monthly profit chart with zero baseline
	if len(months) > 0 {
		vals := make([]float64, len(months))
		for i, m := range months {
			vals[i] = m.Profit
		}
		innerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Monthly Profit (%d mo)", len(months)),
			components.SignedBarChart(vals, monthLabels(len(months)), innerW, 10),
			cw,
		))
		b.WriteString("\n")

		// Row 4: Cumulative profit + crossing note
		cum := make([]float64, len(months))
		for i, m := range months {
			cum[i] = m.CumulativeProfit
		}
		noteStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		crossing := "Cumulative profit never reaches zero within the horizon."
		if a.result.Crossing.Reached {
			crossing = fmt.Sprintf("Cumulative profit turns positive in week %d (month %d).",
				a.result.Crossing.Week+1, a.result.Crossing.Month+1)
		}
		body := components.SignedBarChart(cum, monthLabels(len(months)), innerW, 8) +
			"\n" + noteStyle.Render(crossing)
		b.WriteString(components.ContentCard("Cumulative Profit", body, cw))
	}

	return b.String()
}

// monthLabels builds X-axis labels M1..Mn.
func monthLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "M" + strconv.Itoa(i+1)
	}
	return labels
}

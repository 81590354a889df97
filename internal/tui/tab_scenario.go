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

func (a App) renderScenarioTab(cw int) string {
	t := theme.Active

	saved, ok := a.store.Current()
	if !ok {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
		body := hintStyle.Render("No scenario saved yet.") + "\n\n" +
			hintStyle.Render("Press [s] on any tab to snapshot the live parameters and\n"+
				"projection, then tweak settings and compare here.")
		return components.ContentCard("Scenario Comparison", body, cw)
	}

	var b strings.Builder

	halves := components.LayoutRow(cw, 2)
	liveCard := components.ContentCard("Live",
		scenarioSummary(a.params, a.result), halves[0])
	savedCard := components.ContentCard(
		fmt.Sprintf("Saved (%s)", saved.SavedAt.Format("15:04:05")),
		scenarioSummary(saved.Params, saved.Result), halves[1])
	b.WriteString(components.CardRow([]string{liveCard, savedCard}))
	b.WriteString("\n")

	// Deltas, live minus saved
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	deltaStyle := func(d float64) lipgloss.Style {
		switch {
		case d > 0:
			return lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
		case d < 0:
			return lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		default:
			return lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		}
	}

	deltaMoney := func(label string, live, saved float64) string {
		return labelStyle.Render(fmt.Sprintf("%-22s", label)) +
			deltaStyle(live-saved).Render(cli.FormatDelta(live, saved))
	}

	var deltas strings.Builder
	deltas.WriteString(deltaMoney("Margin / order", a.result.Breakeven.Margin, saved.Result.Breakeven.Margin))
	deltas.WriteString("\n")
	dOrders := a.result.Breakeven.Orders - saved.Result.Breakeven.Orders
	deltas.WriteString(labelStyle.Render(fmt.Sprintf("%-22s", "Breakeven orders")) +
		deltaStyle(dOrders).Render(fmt.Sprintf("%+.2f", dOrders)))
	deltas.WriteString("\n")
	deltas.WriteString(deltaMoney("Fixed costs / mo", a.params.FixedMonthlyCost(), saved.Params.FixedMonthlyCost()))
	deltas.WriteString("\n")
	deltas.WriteString(deltaMoney("Final cumulative", finalCumulative(a.result), finalCumulative(saved.Result)))

	b.WriteString(components.ContentCard("Delta (live - saved)", deltas.String(), cw))

	return b.String()
}

func scenarioSummary(p model.BusinessParameters, r model.ProjectionResult) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-18s", label)) + valueStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(row("Price", cli.FormatMoney(p.SellingPrice)))
	b.WriteString(row("Unit cost", cli.FormatMoney(p.EffectiveUnitCost())))
	b.WriteString(row("Fixed / mo", cli.FormatMoney(p.FixedMonthlyCost())))
	b.WriteString(row("Growth", cli.FormatGrowth(p.GrowthRate)))
	b.WriteString(row("Margin", cli.FormatMoney(r.Breakeven.Margin)))
	b.WriteString(row("Breakeven", cli.FormatOrders(r.Breakeven.Orders)+" orders"))
	b.WriteString(row("Final cumulative", cli.FormatMoney(finalCumulative(r))))
	return strings.TrimRight(b.String(), "\n")
}

func finalCumulative(r model.ProjectionResult) float64 {
	if len(r.Months) == 0 {
		return 0
	}
	return r.Months[len(r.Months)-1].CumulativeProfit
}

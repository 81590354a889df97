// Package export writes projection results as a downloadable tabular report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"beven/internal/model"
)

// Report bundles everything the writer needs for one export.
type Report struct {
	Params        model.BusinessParameters
	Result        model.ProjectionResult
	StartOrders   float64
	StartExplicit bool              // false when breakeven orders were substituted
	Saved         *model.Scenario   // optional comparison scenario
	Currency      string
}

// periodHeader is the stable column order for period rows.
var periodHeader = []string{
	"period", "orders", "revenue", "variable_cost", "fixed_cost", "profit", "cumulative_profit",
}

// WriteCSV writes the full report: a summary block, the monthly and weekly
// period tables, and, when a saved scenario is present, a comparison block.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	writeSummary(cw, "live", r.Params, r.Result, r.Currency)

	cw.Write([]string{})
	cw.Write([]string{"starting_orders", money(r.StartOrders)})
	if r.StartExplicit {
		cw.Write([]string{"starting_orders_source", "explicit"})
	} else {
		cw.Write([]string{"starting_orders_source", "breakeven"})
	}

	writePeriods(cw, "monthly", r.Result.Months)
	writePeriods(cw, "weekly", r.Result.Weeks)

	if r.Saved != nil {
		cw.Write([]string{})
		cw.Write([]string{"section", "saved_scenario", r.Saved.SavedAt.Format("2006-01-02 15:04:05")})
		writeSummary(cw, "saved", r.Saved.Params, r.Saved.Result, r.Currency)
		writeComparison(cw, r.Result, r.Saved.Result)
	}

	cw.Flush()
	return cw.Error()
}

// WriteText writes the report header as plain text: parameters, breakeven,
// starting volume, and the crossing point.
func WriteText(w io.Writer, r Report) error {
	be := r.Result.Breakeven
	lines := []string{
		fmt.Sprintf("Currency: %s", r.Currency),
		fmt.Sprintf("Selling price: %s  Unit cost: %s  Fixed/month: %s",
			money(r.Params.SellingPrice), money(r.Params.EffectiveUnitCost()), money(r.Params.FixedMonthlyCost())),
		fmt.Sprintf("Contribution margin: %s (%.1f%% of price)", money(be.Margin), be.MarginPercent),
		fmt.Sprintf("Breakeven: %s orders/month, %s revenue", orders(be.Orders), money(be.Revenue)),
	}

	source := "breakeven"
	if r.StartExplicit {
		source = "explicit"
	}
	lines = append(lines, fmt.Sprintf("Starting volume: %s orders/month (%s)", orders(r.StartOrders), source))

	if g := r.Result.Goal; g != nil {
		lines = append(lines, fmt.Sprintf("Goal %s: %s orders, %s revenue",
			money(g.Goal), orders(g.Orders), money(g.Revenue)))
	}

	if c := r.Result.Crossing; c.Reached {
		lines = append(lines, fmt.Sprintf("Cumulative profit turns positive in week %d (month %d)", c.Week+1, c.Month+1))
	} else {
		lines = append(lines, "Cumulative profit does not turn positive within the horizon")
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

// WriteFile writes the CSV report to path, creating or truncating it.
func WriteFile(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, r); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func writeSummary(cw *csv.Writer, label string, p model.BusinessParameters, res model.ProjectionResult, cur string) {
	cw.Write([]string{"section", "summary_" + label, "currency", cur})
	cw.Write([]string{"selling_price", money(p.SellingPrice)})
	cw.Write([]string{"unit_cost", money(p.EffectiveUnitCost())})
	cw.Write([]string{"fixed_monthly_cost", money(p.FixedMonthlyCost())})
	cw.Write([]string{"contribution_margin", money(res.Breakeven.Margin)})
	cw.Write([]string{"margin_percent", strconv.FormatFloat(res.Breakeven.MarginPercent, 'f', 1, 64)})
	cw.Write([]string{"growth_rate_percent", strconv.FormatFloat(p.GrowthRate*100, 'f', 1, 64)})
	cw.Write([]string{"breakeven_orders", orders(res.Breakeven.Orders)})
	cw.Write([]string{"breakeven_revenue", money(res.Breakeven.Revenue)})
	if res.Goal != nil {
		cw.Write([]string{"goal_profit", money(res.Goal.Goal)})
		cw.Write([]string{"goal_orders", orders(res.Goal.Orders)})
		cw.Write([]string{"goal_revenue", money(res.Goal.Revenue)})
	}
	if res.Crossing.Reached {
		cw.Write([]string{"cumulative_positive_week", strconv.Itoa(res.Crossing.Week + 1)})
		cw.Write([]string{"cumulative_positive_month", strconv.Itoa(res.Crossing.Month + 1)})
	} else {
		cw.Write([]string{"cumulative_positive", "not reached within horizon"})
	}
}

func writePeriods(cw *csv.Writer, label string, rows []model.PeriodResult) {
	cw.Write([]string{})
	cw.Write([]string{"section", label})
	cw.Write(periodHeader)
	for _, pr := range rows {
		cw.Write([]string{
			strconv.Itoa(pr.Period + 1),
			orders(pr.Orders),
			money(pr.Revenue),
			money(pr.VariableCost),
			money(pr.FixedCost),
			money(pr.Profit),
			money(pr.CumulativeProfit),
		})
	}
}

// writeComparison juxtaposes monthly profit of the live run against the
// saved scenario, row by row up to the shorter horizon.
func writeComparison(cw *csv.Writer, live, saved model.ProjectionResult) {
	cw.Write([]string{})
	cw.Write([]string{"section", "comparison_monthly"})
	cw.Write([]string{"period", "live_profit", "saved_profit", "delta"})

	n := len(live.Months)
	if len(saved.Months) < n {
		n = len(saved.Months)
	}
	for i := 0; i < n; i++ {
		l := live.Months[i].Profit
		s := saved.Months[i].Profit
		cw.Write([]string{
			strconv.Itoa(i + 1),
			money(l),
			money(s),
			money(l - s),
		})
	}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func orders(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package cmd

import (
	"fmt"
	"math"

	"beven/internal/cli"
	"beven/internal/engine"

	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Monthly projection over the configured horizon",
	RunE:  runProject,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}

	be, err := engine.Solve(p)
	if err != nil {
		return err
	}

	start, explicit := engine.StartOrders(p, be)
	res, err := engine.Project(p, start)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PROJECTION  %d months  %s", p.HorizonMonths, cli.FormatGrowth(p.GrowthRate))))
	fmt.Println()

	if !explicit {
		fmt.Printf("  Starting from breakeven volume (%s orders/month); pass --orders to override.\n\n",
			cli.FormatOrders(start))
	}

	if len(res.Months) == 0 {
		fmt.Println("  Horizon is zero months, nothing to project.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(res.Months))
	for _, m := range res.Months {
		rows = append(rows, []string{
			fmt.Sprintf("M%d", m.Period+1),
			cli.FormatOrders(m.Orders),
			cli.FormatMoneyBare(m.Revenue),
			cli.FormatMoneyBare(m.VariableCost),
			cli.FormatMoneyBare(m.FixedCost),
			cli.FormatMoneyBare(m.Profit),
			cli.FormatMoneyBare(m.CumulativeProfit),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Monthly (%s)", cli.Currency()),
		Headers: []string{"Month", "Orders", "Revenue", "Var Cost", "Fixed", "Profit", "Cumulative"},
		Rows:    rows,
	}))

	maxAbs := 0.0
	for _, m := range res.Months {
		if a := math.Abs(m.Profit); a > maxAbs {
			maxAbs = a
		}
	}
	fmt.Println()
	for _, m := range res.Months {
		fmt.Printf("  M%-3d %s %s\n",
			m.Period+1, cli.RenderProfitBar(m.Profit, maxAbs, 16), cli.FormatMoneyBare(m.Profit))
	}

	cum := make([]float64, len(res.Months))
	for i, m := range res.Months {
		cum[i] = m.CumulativeProfit
	}
	fmt.Printf("\n  Cumulative trend  %s\n", cli.RenderSparkline(cum))

	if res.Crossing.Reached {
		fmt.Printf("  Cumulative profit turns positive in week %d (month %d).\n",
			res.Crossing.Week+1, res.Crossing.Month+1)
	} else {
		fmt.Println("  Cumulative profit does not turn positive within the horizon.")
	}

	fmt.Println()
	return nil
}

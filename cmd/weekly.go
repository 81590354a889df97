package cmd

import (
	"fmt"

	"beven/internal/cli"
	"beven/internal/engine"

	"github.com/spf13/cobra"
)

var weeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Weekly projection table",
	RunE:  runWeekly,
}

func init() {
	rootCmd.AddCommand(weeklyCmd)
}

func runWeekly(_ *cobra.Command, _ []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}

	be, err := engine.Solve(p)
	if err != nil {
		return err
	}

	start, _ := engine.StartOrders(p, be)
	res, err := engine.Project(p, start)
	if err != nil {
		return err
	}

	if len(res.Weeks) == 0 {
		fmt.Println("\n  Horizon is zero months, nothing to project.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("WEEKLY PROJECTION  %d months x %d weeks", p.HorizonMonths, p.WeeksPerMonth)))
	fmt.Println()
	fmt.Println("  Fixed costs are amortized evenly across the weeks of each month.")
	fmt.Println()

	rows := make([][]string, 0, len(res.Weeks)+len(res.Months))
	for _, w := range res.Weeks {
		// Month separator before each month's first week
		if w.Period > 0 && w.Period%p.WeeksPerMonth == 0 {
			rows = append(rows, []string{"---"})
		}
		rows = append(rows, []string{
			fmt.Sprintf("W%d", w.Period+1),
			cli.FormatOrders(w.Orders),
			cli.FormatMoneyBare(w.Revenue),
			cli.FormatMoneyBare(w.FixedCost),
			cli.FormatMoneyBare(w.Profit),
			cli.FormatMoneyBare(w.CumulativeProfit),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Weekly (%s)", cli.Currency()),
		Headers: []string{"Week", "Orders", "Revenue", "Fixed", "Profit", "Cumulative"},
		Rows:    rows,
	}))

	if res.Crossing.Reached {
		fmt.Printf("\n  Cumulative profit turns positive in week %d (month %d).\n",
			res.Crossing.Week+1, res.Crossing.Month+1)
	} else {
		fmt.Println("\n  Cumulative profit does not turn positive within the horizon.")
	}

	fmt.Println()
	return nil
}

package cmd

import (
	"fmt"
	"math"

	"beven/internal/cli"
	"beven/internal/engine"

	"github.com/spf13/cobra"
)

var breakevenCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Breakeven volume and profit-goal volumes",
	RunE:  runBreakeven,
}

func init() {
	rootCmd.AddCommand(breakevenCmd)
}

func runBreakeven(_ *cobra.Command, _ []string) error {
	p, err := loadParams()
	if err != nil {
		return err
	}

	be, err := engine.Solve(p)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BREAKEVEN"))
	fmt.Println()

	rows := [][]string{
		{"Selling Price", cli.FormatMoney(p.SellingPrice)},
		{"Variable Cost / Order", cli.FormatMoney(p.EffectiveUnitCost())},
		{"Fixed Cost / Month", cli.FormatMoney(p.FixedMonthlyCost())},
		{"---"},
		{"Contribution Margin", cli.FormatMoney(be.Margin)},
		{"Margin of Price", fmt.Sprintf("%.1f%%", be.MarginPercent)},
		{"---"},
		{"Breakeven Orders / Month", cli.FormatOrders(be.Orders)},
		{"Breakeven Revenue / Month", cli.FormatMoney(be.Revenue)},
	}

	if p.AddOnRate > 0 && p.AddOnMargin != 0 {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"Add-on Profit / Set", cli.FormatMoney(p.AddOnMargin)})
		rows = append(rows, []string{"Orders With Add-ons", cli.FormatPercent(p.AddOnRate)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if p.ProfitGoal != nil {
		gv, err := engine.SolveGoal(p, *p.ProfitGoal)
		if err != nil {
			return err
		}

		fmt.Println()
		if gv.Orders == 0 {
			fmt.Printf("  Profit goal of %s is already met at zero orders.\n", cli.FormatMoney(gv.Goal))
		} else {
			fmt.Print(cli.RenderTable(cli.Table{
				Title:   fmt.Sprintf("Goal: %s profit / month", cli.FormatMoney(gv.Goal)),
				Headers: []string{"Metric", "Value"},
				Rows: [][]string{
					{"Orders Needed", cli.FormatOrders(gv.Orders)},
					{"Whole Orders", cli.FormatNumber(int64(math.Ceil(gv.Orders)))},
					{"Revenue Needed", cli.FormatMoney(gv.Revenue)},
				},
			}))
		}
	}

	fmt.Println()
	return nil
}

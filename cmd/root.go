// Package cmd implements the beven CLI commands.
package cmd

import (
	"os"

	"beven/internal/cli"
	"beven/internal/config"
	"beven/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagPrice    float64
	flagCost     float64
	flagCostPct  float64
	flagMarketer float64
	flagAdSpend  float64
	flagAdDays   int
	flagGrowth   float64
	flagMonths   int
	flagWeeks    int
	flagGoal     float64
	flagOrders   float64
	flagCurrency string
)

var rootCmd = &cobra.Command{
	Use:   "beven",
	Short: "Breakeven & profit projection calculator",
	Long:  "Compute breakeven volume, profit-goal volumes, and month/week projections for a unit-economics business.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runBreakeven
	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&flagPrice, "price", 0, "Selling price per order")
	pf.Float64Var(&flagCost, "cost", 0, "Variable cost per order (flat amount)")
	pf.Float64Var(&flagCostPct, "cost-pct", 0, "Variable cost as a percentage of price (overrides --cost)")
	pf.Float64Var(&flagMarketer, "marketer", 0, "Marketer payment per month")
	pf.Float64Var(&flagAdSpend, "ad-spend", 0, "Daily ad spend")
	pf.IntVar(&flagAdDays, "ad-days", 0, "Ad days per month")
	pf.Float64VarP(&flagGrowth, "growth", "g", 0, "Monthly order growth in percent")
	pf.IntVarP(&flagMonths, "months", "n", 0, "Projection horizon in months")
	pf.IntVar(&flagWeeks, "weeks", 0, "Weeks per month for weekly rows")
	pf.Float64Var(&flagGoal, "goal", 0, "Monthly profit goal")
	pf.Float64Var(&flagOrders, "orders", 0, "Starting monthly orders (defaults to breakeven volume)")
	pf.StringVar(&flagCurrency, "currency", "", "Currency code for display")
}

// loadParams merges the config file defaults with any flags the user set.
// Flags win; unset flags leave the configured value alone.
func loadParams() (model.BusinessParameters, error) {
	cfg, err := config.Load()
	if err != nil {
		return model.BusinessParameters{}, err
	}

	currency := cfg.General.Currency
	if changed("currency") {
		currency = flagCurrency
	}
	cli.SetCurrency(currency)

	p := cfg.Parameters()

	if changed("price") {
		p.SellingPrice = flagPrice
	}
	if changed("cost") {
		p.UnitCost = flagCost
		p.UnitCostIsPercent = false
	}
	if changed("cost-pct") {
		p.UnitCost = flagCostPct
		p.UnitCostIsPercent = true
	}
	if changed("marketer") {
		p.MarketerPay = flagMarketer
	}
	if changed("ad-spend") {
		p.DailyAdSpend = flagAdSpend
	}
	if changed("ad-days") {
		p.AdDaysPerMonth = flagAdDays
	}
	if changed("growth") {
		p.GrowthRate = flagGrowth / 100
	}
	if changed("months") {
		p.HorizonMonths = flagMonths
	}
	if changed("weeks") {
		p.WeeksPerMonth = flagWeeks
	}
	if changed("goal") {
		goal := flagGoal
		p.ProfitGoal = &goal
	}
	if changed("orders") {
		orders := flagOrders
		p.StartingOrders = &orders
	}

	return p, nil
}

func changed(name string) bool {
	return rootCmd.PersistentFlags().Changed(name)
}

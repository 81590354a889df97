package cmd

import (
	"fmt"

	"beven/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Horizon:         %d months\n", cfg.General.HorizonMonths)
	fmt.Printf("    Weeks per month: %d\n", cfg.General.WeeksPerMonth)
	fmt.Printf("    Currency:        %s\n", cfg.General.Currency)
	fmt.Println()

	fmt.Println("  [Business]")
	fmt.Printf("    Selling price:   %.2f\n", cfg.Business.SellingPrice)
	if cfg.Business.UnitCostIsPercent {
		fmt.Printf("    Unit cost:       %.1f%% of price\n", cfg.Business.UnitCost)
	} else {
		fmt.Printf("    Unit cost:       %.2f\n", cfg.Business.UnitCost)
	}
	fmt.Printf("    Marketer pay:    %.2f/month\n", cfg.Business.MarketerPay)
	fmt.Printf("    Ad spend:        %.2f/day x %d days\n", cfg.Business.DailyAdSpend, cfg.Business.AdDaysPerMonth)
	fmt.Printf("    Growth:          %+.1f%%/month\n", cfg.Business.GrowthPercent)
	if cfg.Business.ProfitGoal != nil {
		fmt.Printf("    Profit goal:     %.2f/month\n", *cfg.Business.ProfitGoal)
	} else {
		fmt.Println("    Profit goal:     not set")
	}
	if cfg.Business.StartingOrders != nil {
		fmt.Printf("    Starting orders: %.2f/month\n", *cfg.Business.StartingOrders)
	} else {
		fmt.Println("    Starting orders: breakeven volume")
	}
	if cfg.Business.AddOnRatePercent > 0 {
		fmt.Printf("    Add-ons:         %.2f profit on %.0f%% of orders\n",
			cfg.Business.AddOnMargin, cfg.Business.AddOnRatePercent)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `beven setup` to reconfigure.")
	return nil
}

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"beven/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to beven!")
	fmt.Println("  Press Enter at any prompt to keep the value in brackets.")
	fmt.Println()

	fmt.Println("  1. Unit economics")
	cfg.Business.SellingPrice = promptFloat(reader, "Selling price per order", cfg.Business.SellingPrice)
	cfg.Business.UnitCost = promptFloat(reader, "Variable cost per order", cfg.Business.UnitCost)
	fmt.Println()

	fmt.Println("  2. Fixed monthly costs")
	cfg.Business.MarketerPay = promptFloat(reader, "Marketer payment per month", cfg.Business.MarketerPay)
	cfg.Business.DailyAdSpend = promptFloat(reader, "Daily ad spend", cfg.Business.DailyAdSpend)
	cfg.Business.AdDaysPerMonth = promptInt(reader, "Ad days per month", cfg.Business.AdDaysPerMonth)
	fmt.Println()

	fmt.Println("  3. Projection")
	cfg.Business.GrowthPercent = promptFloat(reader, "Monthly growth (percent)", cfg.Business.GrowthPercent)
	cfg.General.HorizonMonths = promptInt(reader, "Horizon (months)", cfg.General.HorizonMonths)
	fmt.Println()

	fmt.Println("  4. Display")
	cfg.General.Currency = promptString(reader, "Currency code", cfg.General.Currency)
	fmt.Println("     Themes: (1) Flexoki Dark  (2) Catppuccin Mocha  (3) Tokyo Night  (4) Terminal")
	fmt.Printf("     Theme [%s]\n     > ", cfg.Appearance.Theme)
	themeChoice, _ := reader.ReadString('\n')
	name, ok := themeForChoice(themeChoice, cfg.Appearance.Theme)
	if !ok {
		fmt.Println("     (not a listed theme, keeping current value)")
	}
	cfg.Appearance.Theme = name

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `beven setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

// themeForChoice maps a numbered wizard answer to a theme name. Blank
// or unrecognized input keeps the current theme; ok is false only for
// unrecognized input.
func themeForChoice(choice, current string) (string, bool) {
	switch strings.TrimSpace(choice) {
	case "1":
		return "flexoki-dark", true
	case "2":
		return "catppuccin-mocha", true
	case "3":
		return "tokyo-night", true
	case "4":
		return "terminal", true
	case "":
		return current, true
	}
	return current, false
}

func promptFloat(reader *bufio.Reader, label string, current float64) float64 {
	fmt.Printf("     %s [%.2f]\n     > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Println("     (not a number, keeping current value)")
		return current
	}
	return v
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	fmt.Printf("     %s [%d]\n     > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Println("     (not a number, keeping current value)")
		return current
	}
	return v
}

func promptString(reader *bufio.Reader, label, current string) string {
	fmt.Printf("     %s [%s]\n     > ", label, current)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}

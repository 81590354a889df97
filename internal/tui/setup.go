package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"beven/internal/cli"
	"beven/internal/config"
	"beven/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the raw form answers from the first-run wizard.
type setupValues struct {
	price     string
	cost      string
	marketer  string
	adSpend   string
	adDays    string
	growth    string
	currency  string
	themeName string
}

func validateNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // blank keeps the default
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func validateInteger(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil // blank keeps the default
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

// newSetupForm builds the first-run huh form, pre-filled from defaults.
func newSetupForm(vals *setupValues) *huh.Form {
	cfg := loadConfigOrDefault()

	vals.price = fmt.Sprintf("%.2f", cfg.Business.SellingPrice)
	vals.cost = fmt.Sprintf("%.2f", cfg.Business.UnitCost)
	vals.marketer = fmt.Sprintf("%.2f", cfg.Business.MarketerPay)
	vals.adSpend = fmt.Sprintf("%.2f", cfg.Business.DailyAdSpend)
	vals.adDays = strconv.Itoa(cfg.Business.AdDaysPerMonth)
	vals.growth = fmt.Sprintf("%.1f", cfg.Business.GrowthPercent)
	vals.currency = cfg.General.Currency
	vals.themeName = cfg.Appearance.Theme

	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Selling price per order").
				Description("What one order brings in.").
				Value(&vals.price).
				Validate(validateNumber),
			huh.NewInput().
				Title("Variable cost per order").
				Description("Product + delivery cost for one order.").
				Value(&vals.cost).
				Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Marketer payment per month").
				Value(&vals.marketer).
				Validate(validateNumber),
			huh.NewInput().
				Title("Daily ad spend").
				Value(&vals.adSpend).
				Validate(validateNumber),
			huh.NewInput().
				Title("Ad days per month").
				Value(&vals.adDays).
				Validate(validateInteger),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly growth (%)").
				Description("Expected month-over-month order growth.").
				Value(&vals.growth).
				Validate(validateNumber),
			huh.NewInput().
				Title("Currency code").
				Value(&vals.currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.themeName),
		),
	)
}

// saveSetupConfig writes the wizard answers to the config file and
// applies them to the live parameters. Blank answers keep defaults.
func (a *App) saveSetupConfig() {
	cfg := loadConfigOrDefault()
	v := &a.setupVals

	setFloat := func(dst *float64, s string) {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*dst = f
		}
	}

	setFloat(&cfg.Business.SellingPrice, v.price)
	setFloat(&cfg.Business.UnitCost, v.cost)
	setFloat(&cfg.Business.MarketerPay, v.marketer)
	setFloat(&cfg.Business.DailyAdSpend, v.adSpend)
	if d, err := strconv.Atoi(strings.TrimSpace(v.adDays)); err == nil && d >= 0 {
		cfg.Business.AdDaysPerMonth = d
	}
	setFloat(&cfg.Business.GrowthPercent, v.growth)
	if cur := strings.ToUpper(strings.TrimSpace(v.currency)); cur != "" {
		cfg.General.Currency = cur
	}
	cfg.Appearance.Theme = v.themeName

	if err := config.Save(cfg); err != nil {
		a.setNote("config save failed: " + err.Error())
	}

	cli.SetCurrency(cfg.General.Currency)
	theme.SetActive(cfg.Appearance.Theme)
	a.params = cfg.Parameters()
}

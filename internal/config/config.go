// Package config handles the beven configuration file and default
// business parameters.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"beven/internal/model"
)

// Config holds all beven configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Business   BusinessConfig   `toml:"business"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	HorizonMonths int    `toml:"horizon_months"`
	WeeksPerMonth int    `toml:"weeks_per_month"`
	Currency      string `toml:"currency"`
}

// BusinessConfig holds the default business parameters used when no
// flags override them. Percent fields are human-friendly percentages
// (10 means 10%), converted to fractions on the way into the engine.
type BusinessConfig struct {
	SellingPrice      float64  `toml:"selling_price"`
	UnitCost          float64  `toml:"unit_cost"`
	UnitCostIsPercent bool     `toml:"unit_cost_is_percent"`
	MarketerPay       float64  `toml:"marketer_pay"`
	DailyAdSpend      float64  `toml:"daily_ad_spend"`
	AdDaysPerMonth    int      `toml:"ad_days_per_month"`
	GrowthPercent     float64  `toml:"growth_percent"`
	ProfitGoal        *float64 `toml:"profit_goal,omitempty"`
	StartingOrders    *float64 `toml:"starting_orders,omitempty"`
	AddOnMargin       float64  `toml:"add_on_margin"`
	AddOnRatePercent  float64  `toml:"add_on_rate_percent"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			HorizonMonths: 12,
			WeeksPerMonth: 4,
			Currency:      "MAD",
		},
		Business: BusinessConfig{
			SellingPrice:   50,
			UnitCost:       20,
			MarketerPay:    1500,
			DailyAdSpend:   50,
			AdDaysPerMonth: 30,
			GrowthPercent:  10,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Parameters converts the configured defaults into engine parameters.
func (c Config) Parameters() model.BusinessParameters {
	p := model.BusinessParameters{
		SellingPrice:      c.Business.SellingPrice,
		UnitCost:          c.Business.UnitCost,
		UnitCostIsPercent: c.Business.UnitCostIsPercent,
		MarketerPay:       c.Business.MarketerPay,
		DailyAdSpend:      c.Business.DailyAdSpend,
		AdDaysPerMonth:    c.Business.AdDaysPerMonth,
		GrowthRate:        c.Business.GrowthPercent / 100,
		HorizonMonths:     c.General.HorizonMonths,
		WeeksPerMonth:     c.General.WeeksPerMonth,
		AddOnMargin:       c.Business.AddOnMargin,
		AddOnRate:         c.Business.AddOnRatePercent / 100,
	}
	if c.Business.ProfitGoal != nil {
		v := *c.Business.ProfitGoal
		p.ProfitGoal = &v
	}
	if c.Business.StartingOrders != nil {
		v := *c.Business.StartingOrders
		p.StartingOrders = &v
	}
	return p
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "beven")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "beven")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"beven/internal/cli"
	"beven/internal/config"
	"beven/internal/tui/components"
	"beven/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldPrice = iota
	settingsFieldUnitCost
	settingsFieldCostIsPercent
	settingsFieldMarketer
	settingsFieldAdSpend
	settingsFieldAdDays
	settingsFieldGrowth
	settingsFieldHorizon
	settingsFieldWeeks
	settingsFieldGoal
	settingsFieldStartOrders
	settingsFieldAddOnMargin
	settingsFieldAddOnRate
	settingsFieldCurrency
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldPrice:
		ti.SetValue(fmt.Sprintf("%.2f", cfg.Business.SellingPrice))
	case settingsFieldUnitCost:
		ti.SetValue(fmt.Sprintf("%.2f", cfg.Business.UnitCost))
	case settingsFieldCostIsPercent:
		ti.Placeholder = "true or false"
		ti.SetValue(strconv.FormatBool(cfg.Business.UnitCostIsPercent))
	case settingsFieldMarketer:
		ti.SetValue(fmt.Sprintf("%.2f", cfg.Business.MarketerPay))
	case settingsFieldAdSpend:
		ti.SetValue(fmt.Sprintf("%.2f", cfg.Business.DailyAdSpend))
	case settingsFieldAdDays:
		ti.Placeholder = "0-31"
		ti.SetValue(strconv.Itoa(cfg.Business.AdDaysPerMonth))
	case settingsFieldGrowth:
		ti.Placeholder = "10 (percent per month)"
		ti.SetValue(fmt.Sprintf("%.1f", cfg.Business.GrowthPercent))
	case settingsFieldHorizon:
		ti.SetValue(strconv.Itoa(cfg.General.HorizonMonths))
	case settingsFieldWeeks:
		ti.Placeholder = "4"
		ti.SetValue(strconv.Itoa(cfg.General.WeeksPerMonth))
	case settingsFieldGoal:
		ti.Placeholder = "monthly profit goal, leave empty to clear"
		if cfg.Business.ProfitGoal != nil {
			ti.SetValue(fmt.Sprintf("%.2f", *cfg.Business.ProfitGoal))
		}
	case settingsFieldStartOrders:
		ti.Placeholder = "leave empty to start from breakeven"
		if cfg.Business.StartingOrders != nil {
			ti.SetValue(fmt.Sprintf("%.2f", *cfg.Business.StartingOrders))
		}
	case settingsFieldAddOnMargin:
		ti.Placeholder = "extra margin per add-on sale"
		ti.SetValue(fmt.Sprintf("%.2f", cfg.Business.AddOnMargin))
	case settingsFieldAddOnRate:
		ti.Placeholder = "0-100 (percent of orders)"
		ti.SetValue(fmt.Sprintf("%.1f", cfg.Business.AddOnRatePercent))
	case settingsFieldCurrency:
		ti.Placeholder = "MAD"
		ti.SetValue(cfg.General.Currency)
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	cfg := loadConfigOrDefault()
	val := strings.TrimSpace(a.settings.input.Value())

	setFloat := func(dst *float64) {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*dst = f
		}
	}
	setOptional := func(dst **float64) {
		if val == "" {
			*dst = nil
			return
		}
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			*dst = &f
		}
	}

	switch a.settings.cursor {
	case settingsFieldPrice:
		setFloat(&cfg.Business.SellingPrice)
	case settingsFieldUnitCost:
		setFloat(&cfg.Business.UnitCost)
	case settingsFieldCostIsPercent:
		cfg.Business.UnitCostIsPercent = val == "true" || val == "1" || val == "yes"
	case settingsFieldMarketer:
		setFloat(&cfg.Business.MarketerPay)
	case settingsFieldAdSpend:
		setFloat(&cfg.Business.DailyAdSpend)
	case settingsFieldAdDays:
		if d, err := strconv.Atoi(val); err == nil && d >= 0 && d <= 31 {
			cfg.Business.AdDaysPerMonth = d
		}
	case settingsFieldGrowth:
		setFloat(&cfg.Business.GrowthPercent)
	case settingsFieldHorizon:
		if m, err := strconv.Atoi(val); err == nil && m >= 0 {
			cfg.General.HorizonMonths = m
		}
	case settingsFieldWeeks:
		if w, err := strconv.Atoi(val); err == nil && w >= 1 {
			cfg.General.WeeksPerMonth = w
		}
	case settingsFieldGoal:
		setOptional(&cfg.Business.ProfitGoal)
	case settingsFieldStartOrders:
		setOptional(&cfg.Business.StartingOrders)
	case settingsFieldAddOnMargin:
		setFloat(&cfg.Business.AddOnMargin)
	case settingsFieldAddOnRate:
		setFloat(&cfg.Business.AddOnRatePercent)
	case settingsFieldCurrency:
		if val != "" {
			cfg.General.Currency = strings.ToUpper(val)
			cli.SetCurrency(cfg.General.Currency)
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	}

	a.settings.saveErr = config.Save(cfg)

	a.params = cfg.Parameters()
	a.recompute()
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}

	optional := func(p *float64) string {
		if p == nil {
			return "(not set)"
		}
		return fmt.Sprintf("%.2f", *p)
	}

	fields := []field{
		{"Selling Price", fmt.Sprintf("%.2f", cfg.Business.SellingPrice)},
		{"Unit Cost", fmt.Sprintf("%.2f", cfg.Business.UnitCost)},
		{"Cost Is Percent", strconv.FormatBool(cfg.Business.UnitCostIsPercent)},
		{"Marketer Pay", fmt.Sprintf("%.2f", cfg.Business.MarketerPay)},
		{"Daily Ad Spend", fmt.Sprintf("%.2f", cfg.Business.DailyAdSpend)},
		{"Ad Days / Month", strconv.Itoa(cfg.Business.AdDaysPerMonth)},
		{"Growth % / Month", fmt.Sprintf("%.1f", cfg.Business.GrowthPercent)},
		{"Horizon Months", strconv.Itoa(cfg.General.HorizonMonths)},
		{"Weeks / Month", strconv.Itoa(cfg.General.WeeksPerMonth)},
		{"Profit Goal", optional(cfg.Business.ProfitGoal)},
		{"Starting Orders", optional(cfg.Business.StartingOrders)},
		{"Add-On Margin", fmt.Sprintf("%.2f", cfg.Business.AddOnMargin)},
		{"Add-On Rate %", fmt.Sprintf("%.1f", cfg.Business.AddOnRatePercent)},
		{"Currency", cfg.General.Currency},
		{"Theme", cfg.Appearance.Theme},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	// Derived figures card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Fixed costs / mo: ") + valueStyle.Render(cli.FormatMoney(a.params.FixedMonthlyCost())) + "\n")
	infoBody.WriteString(labelStyle.Render("Margin / order:   ") + valueStyle.Render(cli.FormatMoney(a.params.ContributionMargin())) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file:      ") + valueStyle.Render(config.Path()))
	if a.computeErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
		infoBody.WriteString("\n")
		infoBody.WriteString(warnStyle.Render(a.computeErr.Error()))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Parameters", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Derived", infoBody.String(), cw))

	return b.String()
}

// Package tui provides the interactive Bubble Tea dashboard for beven.
package tui

import (
	"fmt"
	"strings"
	"time"

	"beven/internal/cli"
	"beven/internal/config"
	"beven/internal/engine"
	"beven/internal/export"
	"beven/internal/model"
	"beven/internal/scenario"
	"beven/internal/tui/components"
	"beven/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	// Live parameters and computed projection
	params        model.BusinessParameters
	result        model.ProjectionResult
	startOrders   float64
	startExplicit bool
	computeErr    error

	// Single-slot scenario store for the session
	store *scenario.Store

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Transient status-bar note with expiry
	note      string
	noteUntil time.Time

	// Per-tab state
	weekly   weeklyState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

const (
	minTerminalWidth = 72
	maxContentWidth  = 160
	minContentHeight = 5

	noteDuration = 3 * time.Second
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model.
func NewApp(needSetup bool) App {
	cfg := loadConfigOrDefault()
	cli.SetCurrency(cfg.General.Currency)

	a := App{
		params:    cfg.Parameters(),
		store:     scenario.New(),
		needSetup: needSetup,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// recompute reruns the solver and projection from the live parameters.
// All tabs render from the result it fills in.
func (a *App) recompute() {
	a.result = model.ProjectionResult{}
	a.computeErr = nil

	be, err := engine.Solve(a.params)
	if err != nil {
		a.computeErr = err
		return
	}
	start, explicit := engine.StartOrders(a.params, be)
	a.startOrders = start
	a.startExplicit = explicit

	res, err := engine.Project(a.params, start)
	if err != nil {
		a.computeErr = err
		return
	}
	a.result = res

	// Clamp weekly cursor to the new row count
	if a.weekly.cursor >= len(res.Weeks) {
		a.weekly.cursor = len(res.Weeks) - 1
	}
	if a.weekly.cursor < 0 {
		a.weekly.cursor = 0
	}
}

func (a *App) setNote(msg string) {
	a.note = msg
	a.noteUntil = time.Now().Add(noteDuration)
}

func (a App) currentNote() string {
	if a.note != "" && time.Now().Before(a.noteUntil) {
		return a.note
	}
	return ""
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		// Build the first-run form once we know the terminal size
		if a.needSetup && a.setupForm == nil {
			a.setupForm = newSetupForm(&a.setupVals)
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
			return a, a.setupForm.Init()
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == 2 && a.weekly.cursor > 0 {
				a.weekly.cursor--
			}
			return a, nil
		case tea.MouseButtonWheelDown:
			if a.activeTab == 2 && a.weekly.cursor < len(a.result.Weeks)-1 {
				a.weekly.cursor++
			}
			return a, nil
		case tea.MouseButtonLeft:
			// Tab bar occupies the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Settings tab has its own keybindings (text input)
		if a.activeTab == 4 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Weekly tab scrolling
		if a.activeTab == 2 {
			switch key {
			case "j", "down":
				if a.weekly.cursor < len(a.result.Weeks)-1 {
					a.weekly.cursor++
				}
				return a, nil
			case "k", "up":
				if a.weekly.cursor > 0 {
					a.weekly.cursor--
				}
				return a, nil
			case "g":
				a.weekly.cursor = 0
				return a, nil
			case "G":
				a.weekly.cursor = len(a.result.Weeks) - 1
				if a.weekly.cursor < 0 {
					a.weekly.cursor = 0
				}
				return a, nil
			}
		}

		// Settings tab navigation (non-editing mode)
		if a.activeTab == 4 {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "s":
			if a.computeErr == nil {
				a.store.Save(a.params, a.result)
				a.setNote("scenario saved")
			} else {
				a.setNote("cannot save: fix parameters first")
			}
			return a, nil
		case "x":
			a.exportReport()
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) exportReport() {
	if a.computeErr != nil {
		a.setNote("cannot export: fix parameters first")
		return
	}

	rep := export.Report{
		Params:        a.params,
		Result:        a.result,
		StartOrders:   a.startOrders,
		StartExplicit: a.startExplicit,
		Currency:      cli.Currency(),
	}
	if saved, ok := a.store.Current(); ok {
		rep.Saved = &saved
	}

	const path = "beven-report.csv"
	if err := export.WriteFile(path, rep); err != nil {
		a.setNote("export failed: " + err.Error())
		return
	}
	a.setNote("exported " + path)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  beven needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o m w c e", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll weekly table / settings"},
		{"g G", "Jump to first / last week"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"s", "Save live scenario"},
		{"x", "Export CSV report"},
		{"Enter", "Edit setting / Confirm"},
		{"Esc", "Cancel edit"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.currentNote(), cli.Currency())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	if a.computeErr != nil && a.activeTab != 4 {
		content = a.renderErrorPanel(cw)
	} else {
		switch a.activeTab {
		case 0:
			content = a.renderOverviewTab(cw)
		case 1:
			content = a.renderMonthlyTab(cw)
		case 2:
			content = a.renderWeeklyTab(cw, contentH)
		case 3:
			content = a.renderScenarioTab(cw)
		case 4:
			content = a.renderSettingsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderErrorPanel shows solver/validation errors in place of charts.
// The settings tab stays reachable so the bad parameter can be fixed.
func (a App) renderErrorPanel(cw int) string {
	t := theme.Active

	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := errStyle.Render(a.computeErr.Error()) + "\n\n" +
		hintStyle.Render("Open S[e]ttings to adjust the parameters.")

	return components.ContentCard("Cannot compute projection", body, cw)
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

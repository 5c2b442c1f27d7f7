// Package tui provides the interactive Bubble Tea dashboard for wrapped.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/logger"
	"github.com/theirongolddev/wrapped/internal/model"
	"github.com/theirongolddev/wrapped/internal/pipeline"
	"github.com/theirongolddev/wrapped/internal/store"
	"github.com/theirongolddev/wrapped/internal/tui/components"
	"github.com/theirongolddev/wrapped/internal/tui/theme"
)

// DataLoadedMsg is sent when the data pipeline finishes.
type DataLoadedMsg struct {
	Data     *model.WrappedData
	Err      error
	LoadTime time.Duration
	Refresh  bool
}

// ProgressMsg reports file parsing progress.
type ProgressMsg struct {
	Current int
	Total   int
}

// categoriesState holds view state for the categories tab. hidden is a
// display filter only; the underlying summary is never recomputed.
type categoriesState struct {
	cursor int
	hidden map[string]struct{}
}

// App is the root Bubble Tea model.
type App struct {
	data     *model.WrappedData
	loadErr  error
	loaded   bool
	loadTime time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	catState   categoriesState
	refreshing bool

	// Loading — channel-based progress subscription
	spinner     spinner.Model
	progress    int
	progressMax int
	loadSub     chan tea.Msg // progress + completion messages from loader goroutine

	ledgerDir string
	opts      pipeline.Options
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(ledgerDir string, opts pipeline.Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ledgerDir: ledgerDir,
		opts:      opts,
		spinner:   sp,
		catState:  categoriesState{hidden: make(map[string]struct{})},
		loadSub:   make(chan tea.Msg, 1),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.ledgerDir, a.opts, a.loadSub),
		a.spinner.Tick,
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if a.activeTab == tabCategories && a.catState.cursor > 0 {
				a.catState.cursor--
			}
			return a, nil

		case tea.MouseButtonWheelDown:
			if a.activeTab == tabCategories && a.catState.cursor < len(a.data.Trends)-1 {
				a.catState.cursor++
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
		return a.updateKeys(msg)

	case DataLoadedMsg:
		a.refreshing = false
		a.loaded = true
		a.loadTime = msg.LoadTime
		if msg.Err != nil {
			if !msg.Refresh {
				a.loadErr = msg.Err
			}
			return a, nil
		}
		a.data = msg.Data
		a.loadErr = nil
		a.clampCursor()
		return a, nil

	case ProgressMsg:
		a.progress = msg.Current
		a.progressMax = msg.Total
		return a, waitForLoadMsg(a.loadSub)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" || key == "q" {
		return a, tea.Quit
	}

	if !a.loaded {
		return a, nil
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Categories tab has its own keybindings for the series list
	if a.activeTab == tabCategories && a.data != nil {
		switch key {
		case "j", "down":
			if a.catState.cursor < len(a.data.Trends)-1 {
				a.catState.cursor++
			}
			return a, nil
		case "k", "up":
			if a.catState.cursor > 0 {
				a.catState.cursor--
			}
			return a, nil
		case "g":
			a.catState.cursor = 0
			return a, nil
		case "G":
			a.catState.cursor = len(a.data.Trends) - 1
			if a.catState.cursor < 0 {
				a.catState.cursor = 0
			}
			return a, nil
		case " ", "enter", "h":
			if a.catState.cursor < len(a.data.Trends) {
				id := trendKey(a.data.Trends[a.catState.cursor])
				if _, ok := a.catState.hidden[id]; ok {
					delete(a.catState.hidden, id)
				} else {
					a.catState.hidden[id] = struct{}{}
				}
			}
			return a, nil
		case "a":
			a.catState.hidden = make(map[string]struct{})
			return a, nil
		}
	}

	// Manual reload
	if key == "r" && !a.refreshing {
		a.refreshing = true
		return a, refreshDataCmd(a.ledgerDir, a.opts)
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a *App) clampCursor() {
	if a.data == nil {
		a.catState.cursor = 0
		return
	}
	if a.catState.cursor >= len(a.data.Trends) {
		a.catState.cursor = len(a.data.Trends) - 1
	}
	if a.catState.cursor < 0 {
		a.catState.cursor = 0
	}
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

	if !a.loaded {
		return a.viewLoading()
	}

	if a.loadErr != nil || a.data == nil {
		return a.viewError()
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
		"\n  Terminal too narrow (%d cols)\n\n  wrapped needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	spinnerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ wrapped"))
	b.WriteString(subtitleStyle.Render(" · Ledger Year in Review"))
	b.WriteString("\n\n")

	if a.progressMax > 0 {
		barW := 40
		if barW > a.width-30 {
			barW = a.width - 30
		}
		if barW < 20 {
			barW = 20
		}
		pct := float64(a.progress) / float64(a.progressMax)
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Parsing exports\n\n"))
		b.WriteString(components.ProgressBar(pct, barW))
		b.WriteString("\n")
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progress))))
		b.WriteString(subtitleStyle.Render(" / "))
		b.WriteString(countStyle.Render(cli.FormatNumber(int64(a.progressMax))))
	} else {
		b.WriteString(spinnerStyle.Render(a.spinner.View()))
		b.WriteString(subtitleStyle.Render(" Discovering exports..."))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewError() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	msg := "no data"
	if a.loadErr != nil {
		msg = a.loadErr.Error()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Could not build year in review"))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render(truncStr(msg, 70)))
	b.WriteString("\n\n")
	b.WriteString(textStyle.Render("r retry · q quit"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o m c p j", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Move through category list"},
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
		{"Space", "Hide / show selected category"},
		{"a", "Show all categories"},
		{"r", "Reload exports"},
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

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := a.renderStatusBar(w)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabMonths:
		content = a.renderMonthsTab(cw)
	case tabCategories:
		content = a.renderCategoriesTab(cw, contentH)
	case tabPayees:
		content = a.renderPayeesTab(cw)
	case tabProjection:
		content = a.renderProjectionTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderStatusBar(w int) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface).Width(w)
	yearStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var included int
	for _, m := range a.data.Buckets.Months {
		included += m.Count
	}

	left := yearStyle.Render(fmt.Sprintf(" %d", a.data.Year)) +
		textStyle.Render(fmt.Sprintf(" · %s transactions", cli.FormatNumber(int64(included))))
	if a.data.DroppedRecords > 0 {
		left += dimStyle.Render(fmt.Sprintf(" · %d dropped", a.data.DroppedRecords))
	}
	if a.refreshing {
		left += textStyle.Render(" · reloading…")
	} else {
		left += dimStyle.Render(fmt.Sprintf(" · %.1fs", a.loadTime.Seconds()))
	}
	left += dimStyle.Render("  ? help · q quit")

	return barStyle.Render(left)
}

// ─── Data loading ───────────────────────────────────────────────

// loadDataCmd starts the loading pipeline in a background goroutine. It
// streams ProgressMsg updates and a final DataLoadedMsg through sub.
func loadDataCmd(ledgerDir string, opts pipeline.Options, sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		go func() {
			start := time.Now()

			// Non-blocking send so parse workers aren't stalled. A full
			// channel drops this update; the next one catches up.
			progressFn := func(current, total int) {
				select {
				case sub <- ProgressMsg{Current: current, Total: total}:
				default:
				}
			}

			txns, err := loadTransactions(ledgerDir, progressFn)
			if err != nil {
				sub <- DataLoadedMsg{Err: err, LoadTime: time.Since(start)}
				return
			}

			data, err := pipeline.BuildWrappedData(txns, opts, logger.Nop())
			sub <- DataLoadedMsg{Data: data, Err: err, LoadTime: time.Since(start)}
		}()

		// Block until the first message (ProgressMsg or DataLoadedMsg)
		return <-sub
	}
}

// waitForLoadMsg blocks until the next message arrives from the loader
// goroutine.
func waitForLoadMsg(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}

// refreshDataCmd rebuilds the summary in the background (no progress UI).
func refreshDataCmd(ledgerDir string, opts pipeline.Options) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		txns, err := loadTransactions(ledgerDir, nil)
		if err != nil {
			return DataLoadedMsg{Err: err, LoadTime: time.Since(start), Refresh: true}
		}

		data, err := pipeline.BuildWrappedData(txns, opts, logger.Nop())
		return DataLoadedMsg{Data: data, Err: err, LoadTime: time.Since(start), Refresh: true}
	}
}

// loadTransactions tries the cached load first and falls back to a full
// parse on any cache trouble.
func loadTransactions(ledgerDir string, progressFn pipeline.ProgressFunc) ([]model.Transaction, error) {
	cache, err := store.Open(pipeline.CachePath())
	if err == nil {
		cr, loadErr := pipeline.LoadWithCache(ledgerDir, cache, progressFn)
		_ = cache.Close()
		if loadErr == nil {
			return cr.Transactions, nil
		}
	}

	result, err := pipeline.Load(ledgerDir, progressFn)
	if err != nil {
		return nil, err
	}
	return result.Transactions, nil
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if
// none. Hitboxes are derived from the same width rules RenderTabBar
// uses, including the leading space and two-column separators.
func (a App) tabAtX(x int) int {
	pos := 1
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2
	}
	return -1
}

func trendKey(t model.CategoryTrend) string {
	if t.CategoryID != "" {
		return t.CategoryID
	}
	return t.CategoryName
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
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
	return s + strings.Repeat("\n", h-len(lines))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/model"
	"github.com/theirongolddev/wrapped/internal/tui/components"
	"github.com/theirongolddev/wrapped/internal/tui/theme"
)

// renderCategoriesTab shows the category list with a cursor and a
// combined trend of the currently visible series. Hiding a category is
// purely a display choice; the totals elsewhere never change.
func (a App) renderCategoriesTab(cw, contentH int) string {
	t := theme.Active
	data := a.data
	var b strings.Builder

	if len(data.Trends) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No categorized spending this year.")
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hiddenStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Window the list around the cursor so it fits the content area.
	// The combined card and rankings below need roughly 12 lines.
	visible := contentH - 14
	if visible < 5 {
		visible = 5
	}
	start := 0
	if a.catState.cursor >= visible {
		start = a.catState.cursor - visible + 1
	}
	end := start + visible
	if end > len(data.Trends) {
		end = len(data.Trends)
	}

	var list strings.Builder
	for i := start; i < end; i++ {
		ct := data.Trends[i]
		_, isHidden := a.catState.hidden[trendKey(ct)]

		marker := "  "
		if i == a.catState.cursor {
			marker = "▸ "
		}
		check := "●"
		if isHidden {
			check = "○"
		}

		var total int64
		values := make([]float64, len(ct.Monthly))
		for j, v := range ct.Monthly {
			total += v
			values[j] = float64(v)
		}

		style := nameStyle
		sparkColor := t.Accent
		if isHidden {
			style = hiddenStyle
			sparkColor = t.TextDim
		}
		if i == a.catState.cursor {
			style = selStyle
		}

		fmt.Fprintf(&list, "%s%s %s %s %s\n",
			marker,
			style.Render(check),
			style.Render(fmt.Sprintf("%-24s", truncStr(ct.CategoryName, 24))),
			amountStyle.Render(fmt.Sprintf("%10s", cli.FormatCompactAmount(total))),
			components.Sparkline(values, sparkColor))
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Categories (%d) · Space toggles · a shows all", len(data.Trends)),
		strings.TrimRight(list.String(), "\n"), cw))
	b.WriteString("\n")

	// Combined trend of the visible series only
	combined := make([]float64, 12)
	var combinedTotal int64
	for _, ct := range data.Trends {
		if _, isHidden := a.catState.hidden[trendKey(ct)]; isHidden {
			continue
		}
		for j, v := range ct.Monthly {
			combined[j] += float64(v)
			combinedTotal += v
		}
	}
	title := fmt.Sprintf("Visible Total · %s", cli.FormatAmount(combinedTotal))
	if len(a.catState.hidden) > 0 {
		title += fmt.Sprintf(" · %d hidden", len(a.catState.hidden))
	}
	b.WriteString(components.ContentCard(title, components.Sparkline(combined, t.Blue), cw))
	b.WriteString("\n")

	// Growth rankings
	halves := components.LayoutRow(cw, 2)
	growCard := components.ContentCard("Growing", renderGrowthList(data.Growth, 3), halves[0])
	declCard := components.ContentCard("Declining", renderGrowthList(data.Decline, 3), halves[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, growCard, declCard))

	return b.String()
}

func renderGrowthList(entries []model.CategoryGrowth, limit int) string {
	t := theme.Active
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	rateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	if len(entries) == 0 {
		return rateStyle.Render("none")
	}
	if limit > len(entries) {
		limit = len(entries)
	}

	var b strings.Builder
	for _, g := range entries[:limit] {
		fmt.Fprintf(&b, "%s %s (%s)\n",
			nameStyle.Render(fmt.Sprintf("%-18s", truncStr(g.CategoryName, 18))),
			rateStyle.Render(cli.FormatAmount(g.TotalChange)),
			rateStyle.Render(cli.FormatGrowth(g.PercentChange.Defined, g.PercentChange.Value)))
	}
	return strings.TrimRight(b.String(), "\n")
}

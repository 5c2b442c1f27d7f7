package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/tui/components"
	"github.com/theirongolddev/wrapped/internal/tui/theme"
)

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabMonths
	tabCategories
	tabPayees
	tabProjection
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	data := a.data
	var b strings.Builder

	// Row 1: Metric cards
	busiest, busiestCount := 0, -1
	for i, m := range data.Buckets.Months {
		if m.Count > busiestCount {
			busiest, busiestCount = i, m.Count
		}
	}

	rateNote := ""
	if data.TotalIncome > 0 {
		rateNote = cli.FormatPercent(data.SavingsRate) + " of income"
	}

	cards := []struct{ Label, Value, Note string }{
		{"Income", cli.FormatAmount(data.TotalIncome), ""},
		{"Expenses", cli.FormatAmount(data.TotalExpenses), ""},
		{"Net Savings", cli.FormatAmount(data.NetSavings), rateNote},
		{"Busiest Month", cli.FormatMonth(time.Month(busiest + 1)), fmt.Sprintf("%s txns", cli.FormatNumber(int64(busiestCount)))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Monthly spending sparkline
	spending := make([]float64, 12)
	for i, m := range data.Buckets.Months {
		spending[i] = float64(m.Outflow)
	}
	var spark strings.Builder
	spark.WriteString(components.Sparkline(spending, t.Blue))
	spark.WriteString("\n")
	labelStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	for i := 0; i < 12; i++ {
		spark.WriteString(labelStyle.Render(string(cli.FormatMonth(time.Month(i + 1))[0])))
	}
	b.WriteString(components.ContentCard("Monthly Spending", spark.String(), cw))
	b.WriteString("\n")

	// Row 3: Weekday pattern + typical transaction
	halves := components.LayoutRow(cw, 2)

	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var maxWeekday int64
	for _, wd := range data.Buckets.Weekdays {
		if wd.Outflow > maxWeekday {
			maxWeekday = wd.Outflow
		}
	}
	barMax := components.CardInnerWidth(halves[0]) - 16
	if barMax < 4 {
		barMax = 4
	}
	var weekBody strings.Builder
	for i, wd := range data.Buckets.Weekdays {
		fmt.Fprintf(&weekBody, "%s %s %s\n",
			nameStyle.Render(cli.FormatDayOfWeek(i)),
			valStyle.Render(fmt.Sprintf("%9s", cli.FormatCompactAmount(wd.Outflow))),
			components.HBar(float64(wd.Outflow), float64(maxWeekday), barMax, t.Accent))
	}

	var sizeBody strings.Builder
	fmt.Fprintf(&sizeBody, "%s %s\n", nameStyle.Render("Median "), valStyle.Render(cli.FormatAmountFloat(data.Distribution.Median)))
	fmt.Fprintf(&sizeBody, "%s %s\n", nameStyle.Render("Mode   "), valStyle.Render(cli.FormatAmountFloat(data.Distribution.Mode)))
	if data.Distribution.MostCommonRange != "" {
		fmt.Fprintf(&sizeBody, "%s %s\n", nameStyle.Render("Typical"), valStyle.Render(cli.FormatRangeLabel(data.Distribution.MostCommonRange)))
	}
	for _, hb := range data.Distribution.Buckets {
		fmt.Fprintf(&sizeBody, "%s %s\n",
			nameStyle.Render(fmt.Sprintf("%-9s", cli.FormatRangeLabel(hb.Label))),
			components.HBar(hb.Percent, 100, barMax, t.Cyan))
	}

	weekCard := components.ContentCard("Spending by Weekday", weekBody.String(), halves[0])
	sizeCard := components.ContentCard("Transaction Sizes", sizeBody.String(), halves[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, weekCard, sizeCard))

	return b.String()
}

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

func (a App) renderMonthsTab(cw int) string {
	t := theme.Active
	data := a.data
	var b strings.Builder

	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)

	var maxSpent int64
	for _, m := range data.Buckets.Months {
		if m.Outflow > maxSpent {
			maxSpent = m.Outflow
		}
	}

	innerW := components.CardInnerWidth(cw)
	barMax := innerW - 40
	if barMax < 6 {
		barMax = 6
	}

	var body strings.Builder
	for i, m := range data.Buckets.Months {
		net := m.Amount
		netStyle := posStyle
		if net < 0 {
			netStyle = negStyle
		}
		fmt.Fprintf(&body, "%s %s %s %s %s\n",
			nameStyle.Render(cli.FormatMonth(time.Month(i+1))),
			valStyle.Render(fmt.Sprintf("%5s", cli.FormatNumber(int64(m.Count)))),
			valStyle.Render(fmt.Sprintf("%10s", cli.FormatCompactAmount(m.Outflow))),
			netStyle.Render(fmt.Sprintf("%10s", cli.FormatCompactAmount(net))),
			components.HBar(float64(m.Outflow), float64(maxSpent), barMax, t.Accent))
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Months · txns / spent / net · %d", data.Year),
		body.String(), cw))
	b.WriteString("\n")

	// Quarters side by side
	quarterW := components.LayoutRow(cw, 4)
	var quarterCards []string
	for i, q := range data.Buckets.Quarters {
		var qb strings.Builder
		fmt.Fprintf(&qb, "%s\n", valStyle.Render(cli.FormatAmount(q.Outflow)))
		fmt.Fprintf(&qb, "%s", nameStyle.Render(fmt.Sprintf("%s txns", cli.FormatNumber(int64(q.Count)))))
		quarterCards = append(quarterCards, components.ContentCard(q.Label, qb.String(), quarterW[i]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, quarterCards...))

	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/tui/components"
	"github.com/theirongolddev/wrapped/internal/tui/theme"
)

func (a App) renderProjectionTab(cw int) string {
	t := theme.Active
	data := a.data
	proj := data.Projection
	var b strings.Builder

	zeroNote := ""
	if proj.MonthsUntilZero != nil {
		zeroNote = fmt.Sprintf("%d months", *proj.MonthsUntilZero)
	}

	cards := []struct{ Label, Value, Note string }{
		{"Daily Net Rate", cli.FormatAmountFloat(proj.DailyNetRate), "per active day"},
		{fmt.Sprintf("End of %d", data.Year+1), cli.FormatAmountFloat(proj.YearEndSavings), "projected"},
		{"Runway to Zero", orDash(zeroNote), "at current rate"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Cumulative curve: actual series bright, projected continuation dim.
	// Both halves share one scale so the join reads correctly.
	nameStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	all := make([]float64, 0, len(proj.Actual)+len(proj.Projected))
	for _, p := range proj.Actual {
		all = append(all, p.Cumulative)
	}
	for _, p := range proj.Projected {
		all = append(all, p.Cumulative)
	}

	var curve strings.Builder
	curve.WriteString(components.Sparkline(all, t.Green))
	curve.WriteString("\n")
	if len(proj.Actual) > 0 && len(proj.Projected) > 0 {
		curve.WriteString(nameStyle.Render(proj.Actual[0].Label))
		gap := len(all) - len(proj.Actual[0].Label) - len(proj.Projected[len(proj.Projected)-1].Label)
		if gap > 0 {
			curve.WriteString(strings.Repeat(" ", gap))
		}
		curve.WriteString(dimStyle.Render(proj.Projected[len(proj.Projected)-1].Label))
	}
	b.WriteString(components.ContentCard("Cumulative Savings · actual + projected", curve.String(), cw))
	b.WriteString("\n")

	// Month-end values, two columns: actual year and projected year
	halves := components.LayoutRow(cw, 2)

	var actBody strings.Builder
	for _, p := range proj.Actual {
		fmt.Fprintf(&actBody, "%s %s\n",
			nameStyle.Render(fmt.Sprintf("%-9s", p.Label)),
			valStyle.Render(fmt.Sprintf("%11s", cli.FormatAmountFloat(p.Cumulative))))
	}
	var projBody strings.Builder
	for _, p := range proj.Projected {
		fmt.Fprintf(&projBody, "%s %s\n",
			nameStyle.Render(fmt.Sprintf("%-9s", p.Label)),
			dimStyle.Render(fmt.Sprintf("%11s", cli.FormatAmountFloat(p.Cumulative))))
	}
	actCard := components.ContentCard(fmt.Sprintf("%d", data.Year), strings.TrimRight(actBody.String(), "\n"), halves[0])
	projCard := components.ContentCard(fmt.Sprintf("%d (projected)", data.Year+1), strings.TrimRight(projBody.String(), "\n"), halves[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, actCard, projCard))
	b.WriteString("\n")

	if len(proj.Milestones) > 0 {
		var mBody strings.Builder
		for _, m := range proj.Milestones {
			when := m.DateReached.Format("Jan 2, 2006")
			style := valStyle
			if m.Projected {
				when += " (projected)"
				style = dimStyle
			}
			fmt.Fprintf(&mBody, "%s %s %s\n",
				nameStyle.Render(fmt.Sprintf("%-18s", truncStr(m.Label, 18))),
				valStyle.Render(fmt.Sprintf("%11s", cli.FormatAmount(m.Threshold))),
				style.Render(when))
		}
		b.WriteString(components.ContentCard("Milestones", strings.TrimRight(mBody.String(), "\n"), cw))
	}

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

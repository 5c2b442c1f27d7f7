package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/wrapped/internal/cli"
	"github.com/theirongolddev/wrapped/internal/tui/components"
	"github.com/theirongolddev/wrapped/internal/tui/theme"
)

func (a App) renderPayeesTab(cw int) string {
	t := theme.Active
	data := a.data

	if len(data.TopPayees) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("\n  No payee spending this year.")
	}

	rankStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	maxAmount := float64(data.TopPayees[0].Amount)
	innerW := components.CardInnerWidth(cw)
	barMax := innerW - 52
	if barMax < 6 {
		barMax = 6
	}

	var body strings.Builder
	for i, p := range data.TopPayees {
		fmt.Fprintf(&body, "%s %s %s %s %s\n",
			rankStyle.Render(fmt.Sprintf("%2d.", i+1)),
			nameStyle.Render(fmt.Sprintf("%-26s", truncStr(p.Name, 26))),
			amountStyle.Render(fmt.Sprintf("%11s", cli.FormatAmount(p.Amount))),
			amountStyle.Render(fmt.Sprintf("%4sx", cli.FormatNumber(int64(p.TransactionCount)))),
			components.HBar(float64(p.Amount), maxAmount, barMax, t.Accent))
	}

	return components.ContentCard(
		fmt.Sprintf("Top Payees · %d", data.Year),
		strings.TrimRight(body.String(), "\n"), cw)
}

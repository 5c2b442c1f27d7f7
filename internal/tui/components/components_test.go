package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/wrapped/internal/tui/theme"
)

func init() {
	// Force TrueColor output so styling is applied in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{100, 4, []int{25, 25, 25, 25}},
		{100, 3, []int{34, 33, 33}},
		{7, 2, []int{4, 3}},
		{5, 1, []int{5}},
	}

	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
		}
		sum := 0
		for i, w := range got {
			if w != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
				break
			}
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	cards := []struct{ Label, Value, Note string }{
		{"Income", "$52,000.00", ""},
		{"Expenses", "$39,500.00", ""},
		{"Net Savings", "$12,500.00", "24% of income"},
	}

	row := MetricCardRow(cards, 90)
	if got := lipgloss.Width(row); got != 90 {
		t.Errorf("row width = %d, want 90", got)
	}
}

func TestContentCardWidth(t *testing.T) {
	card := ContentCard("Monthly Spending", "line 1\nline 2", 40)
	if got := lipgloss.Width(card); got != 40 {
		t.Errorf("card width = %d, want 40", got)
	}

	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
}

func TestSparkline(t *testing.T) {
	accent := theme.Active.Accent

	if got := Sparkline(nil, accent); got != "" {
		t.Errorf("empty sparkline = %q, want empty string", got)
	}

	s := Sparkline([]float64{0, 1, 2, 3, 4}, accent)
	if got := lipgloss.Width(s); got != 5 {
		t.Errorf("sparkline width = %d, want 5", got)
	}

	// All-zero input must not divide by zero
	s = Sparkline([]float64{0, 0, 0}, accent)
	if got := lipgloss.Width(s); got != 3 {
		t.Errorf("all-zero sparkline width = %d, want 3", got)
	}
}

func TestHBar(t *testing.T) {
	accent := theme.Active.Accent

	if got := HBar(0, 100, 20, accent); got != "" {
		t.Errorf("zero-value bar = %q, want empty", got)
	}
	if got := HBar(100, 0, 20, accent); got != "" {
		t.Errorf("zero-max bar = %q, want empty", got)
	}

	full := HBar(100, 100, 20, accent)
	if got := lipgloss.Width(full); got != 20 {
		t.Errorf("full bar width = %d, want 20", got)
	}

	// Small nonzero values still draw at least one cell
	tiny := HBar(1, 10_000, 20, accent)
	if got := lipgloss.Width(tiny); got != 1 {
		t.Errorf("tiny bar width = %d, want 1", got)
	}
}

func TestProgressBar(t *testing.T) {
	bar := ProgressBar(0.5, 20)
	// bar + space + percentage
	if got := lipgloss.Width(bar); got != 20+1+3 {
		t.Errorf("progress bar width = %d, want 24", got)
	}

	// Out-of-range values clamp instead of panicking
	_ = ProgressBar(1.5, 10)
	_ = ProgressBar(-0.5, 10)
}

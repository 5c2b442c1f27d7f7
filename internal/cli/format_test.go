package cli

import (
	"testing"
	"time"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{950, "$9.50"},
		{-950, "-$9.50"},
		{123456, "$1,234.56"},
		{-100000000, "-$1,000,000.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.cents); got != tt.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatAmountFloat(t *testing.T) {
	tests := []struct {
		cents float64
		want  string
	}{
		{2000.4, "$20.00"},
		{2000.5, "$20.01"},
		{-150.4, "-$1.50"},
	}
	for _, tt := range tests {
		if got := FormatAmountFloat(tt.cents); got != tt.want {
			t.Errorf("FormatAmountFloat(%v) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatCompactAmount(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{500, "$5.00"},
		{15000, "$150"},
		{1234500, "$12.3K"},
		{250000000, "$2.5M"},
		{-1234500, "-$12.3K"},
	}
	for _, tt := range tests {
		if got := FormatCompactAmount(tt.cents); got != tt.want {
			t.Errorf("FormatCompactAmount(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatGrowth(t *testing.T) {
	tests := []struct {
		defined bool
		pct     float64
		want    string
	}{
		{true, 100, "+100.0%"},
		{true, -20, "-20.0%"},
		{true, 0, "+0.0%"},
		{false, 0, "new"},
	}
	for _, tt := range tests {
		if got := FormatGrowth(tt.defined, tt.pct); got != tt.want {
			t.Errorf("FormatGrowth(%v, %v) = %q, want %q", tt.defined, tt.pct, got, tt.want)
		}
	}
}

func TestFormatRangeLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"25–50", "$25–$50"},
		{"250+", "$250+"},
		{"0–25", "$0–$25"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FormatRangeLabel(tt.label); got != tt.want {
			t.Errorf("FormatRangeLabel(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestFormatMonthAndWeekday(t *testing.T) {
	if got := FormatMonth(time.September); got != "Sep" {
		t.Errorf("FormatMonth = %q", got)
	}
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Errorf("FormatDayOfWeek(0) = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(6); got != "Sat" {
		t.Errorf("FormatDayOfWeek(6) = %q, want Sat", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}

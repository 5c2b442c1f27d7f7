// Package cli provides formatting and rendering utilities for terminal
// output. All currency formatting lives here — the pipeline emits raw
// minor units only.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatAmount formats signed minor units as dollars.
// e.g., 123456 -> "$1,234.56", -950 -> "-$9.50"
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, FormatNumber(cents/100), cents%100)
}

// FormatAmountFloat formats fractional minor units (medians, projected
// values) as dollars, rounded to whole cents for display.
func FormatAmountFloat(cents float64) string {
	return FormatAmount(int64(math.Round(cents)))
}

// FormatCompactAmount formats minor units with K/M suffixes for chart
// axes. e.g., 1_234_500 -> "$12.3K"
func FormatCompactAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	dollars := float64(cents) / 100

	switch {
	case dollars >= 1_000_000:
		return fmt.Sprintf("%s$%.1fM", sign, dollars/1_000_000)
	case dollars >= 1_000:
		return fmt.Sprintf("%s$%.1fK", sign, dollars/1_000)
	case dollars >= 100:
		return fmt.Sprintf("%s$%.0f", sign, dollars)
	default:
		return fmt.Sprintf("%s$%.2f", sign, dollars)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 ratio as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatShare formats an already-scaled percentage (0-100).
func FormatShare(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatGrowth formats a signed percentage change, or "new" for growth
// from a zero baseline.
func FormatGrowth(defined bool, pct float64) string {
	if !defined {
		return "new"
	}
	if pct >= 0 {
		return fmt.Sprintf("+%.1f%%", pct)
	}
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatMonth returns a 3-letter month abbreviation.
func FormatMonth(m time.Month) string {
	return m.String()[:3]
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday
// number (Sunday=0).
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatRangeLabel turns a histogram bucket label ("25–50", "250+") into
// its display form ("$25–$50", "$250+").
func FormatRangeLabel(label string) string {
	if label == "" {
		return ""
	}
	if strings.HasSuffix(label, "+") {
		return "$" + label
	}
	lo, hi, ok := strings.Cut(label, "–")
	if !ok {
		return "$" + label
	}
	return "$" + lo + "–$" + hi
}

// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// currency is the display currency code, configurable via SetCurrency.
var currency = "MAD"

// SetCurrency sets the currency code appended to money values.
func SetCurrency(code string) {
	code = strings.TrimSpace(code)
	if code != "" {
		currency = code
	}
}

// Currency returns the active currency code.
func Currency() string {
	return currency
}

// FormatMoney formats a money value with comma grouping, two decimals,
// and the currency code. e.g., 1234.5 -> "1,234.50 MAD"
func FormatMoney(v float64) string {
	return FormatMoneyBare(v) + " " + currency
}

// FormatMoneyBare formats a money value without the currency code.
func FormatMoneyBare(v float64) string {
	neg := math.Signbit(v) && v != 0
	abs := math.Abs(v)

	whole := int64(abs)
	// Rounding the fraction can carry into the whole part (e.g. 9.999)
	frac := int64(math.Round((abs - float64(whole)) * 100))
	if frac >= 100 {
		whole++
		frac -= 100
	}
	if whole == 0 && frac == 0 {
		neg = false // avoid "-0.00"
	}

	s := fmt.Sprintf("%s.%02d", groupThousands(whole), frac)
	if neg {
		return "-" + s
	}
	return s
}

// FormatDelta formats a money difference with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta)
	}
	return "-" + FormatMoney(-delta)
}

// FormatOrders formats an order count, dropping the fraction when whole.
// e.g., 100 -> "100", 133.333 -> "133.33"
func FormatOrders(orders float64) string {
	if orders == math.Trunc(orders) {
		return groupThousands(int64(orders))
	}
	return fmt.Sprintf("%.2f", orders)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(n)
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatGrowth formats a growth fraction with an explicit sign.
// e.g., 0.10 -> "+10.0%/mo"
func FormatGrowth(rate float64) string {
	return fmt.Sprintf("%+.1f%%/mo", rate*100)
}

func groupThousands(n int64) string {
	if n < 0 {
		return "-" + groupThousands(-n)
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

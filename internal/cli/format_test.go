package cli

import "testing"

func TestFormatMoneyBare(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{50, "50.00"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-3000, "-3,000.00"},
		{9.999, "10.00"}, // rounding carries into the whole part
		{-0.004, "0.00"}, // rounds to zero, no negative sign
	}

	for _, tc := range cases {
		if got := FormatMoneyBare(tc.in); got != tc.want {
			t.Fatalf("FormatMoneyBare(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney_UsesCurrency(t *testing.T) {
	old := Currency()
	defer SetCurrency(old)

	SetCurrency("MAD")
	if got := FormatMoney(1234.5); got != "1,234.50 MAD" {
		t.Fatalf("FormatMoney = %q, want %q", got, "1,234.50 MAD")
	}

	SetCurrency("EUR")
	if got := FormatMoney(10); got != "10.00 EUR" {
		t.Fatalf("FormatMoney = %q, want %q", got, "10.00 EUR")
	}

	// Blank codes are ignored rather than clearing the currency.
	SetCurrency("  ")
	if got := Currency(); got != "EUR" {
		t.Fatalf("Currency after blank SetCurrency = %q, want EUR", got)
	}
}

func TestFormatOrders(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{100, "100"},
		{1500, "1,500"},
		{133.333, "133.33"},
		{0.5, "0.50"},
	}

	for _, tc := range cases {
		if got := FormatOrders(tc.in); got != tc.want {
			t.Fatalf("FormatOrders(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDelta(t *testing.T) {
	old := Currency()
	defer SetCurrency(old)
	SetCurrency("MAD")

	if got := FormatDelta(150, 100); got != "+50.00 MAD" {
		t.Fatalf("FormatDelta = %q, want +50.00 MAD", got)
	}
	if got := FormatDelta(100, 150); got != "-50.00 MAD" {
		t.Fatalf("FormatDelta = %q, want -50.00 MAD", got)
	}
	if got := FormatDelta(100, 100); got != "+0.00 MAD" {
		t.Fatalf("FormatDelta = %q, want +0.00 MAD", got)
	}
}

func TestFormatPercentAndGrowth(t *testing.T) {
	if got := FormatPercent(0.6); got != "60.0%" {
		t.Fatalf("FormatPercent = %q, want 60.0%%", got)
	}
	if got := FormatGrowth(0.10); got != "+10.0%/mo" {
		t.Fatalf("FormatGrowth = %q, want +10.0%%/mo", got)
	}
	if got := FormatGrowth(-0.05); got != "-5.0%/mo" {
		t.Fatalf("FormatGrowth = %q, want -5.0%%/mo", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package components

import (
	"strings"
	"testing"

	"beven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestLayoutRow(t *testing.T) {
	cases := []struct {
		total int
		n     int
		want  []int
	}{
		{100, 4, []int{25, 25, 25, 25}},
		{10, 3, []int{4, 3, 3}},
		{7, 2, []int{4, 3}},
	}

	for _, tc := range cases {
		got := LayoutRow(tc.total, tc.n)
		if len(got) != len(tc.want) {
			t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tc.total, tc.n, got, tc.want)
		}
		sum := 0
		for i, w := range got {
			if w != tc.want[i] {
				t.Fatalf("LayoutRow(%d, %d) = %v, want %v", tc.total, tc.n, got, tc.want)
			}
			sum += w
		}
		if sum != tc.total {
			t.Fatalf("LayoutRow(%d, %d) widths sum to %d", tc.total, tc.n, sum)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d (tallest card)", len(lines), tallLines)
	}
}

func TestSignedBarChart_SmallFallsBackToSparkline(t *testing.T) {
	vals := []float64{-10, 5, 20}

	small := SignedBarChart(vals, nil, 10, 2)
	spark := Sparkline(vals, theme.Active.Accent)
	if small != spark {
		t.Fatalf("small chart = %q, want sparkline %q", small, spark)
	}
}

func TestSignedBarChart_HasZeroBaseline(t *testing.T) {
	vals := []float64{-1500, -750, 375, 2000}
	out := SignedBarChart(vals, []string{"M1", "M2", "M3", "M4"}, 40, 8)

	if !strings.Contains(out, "┼") {
		t.Fatal("chart has no zero baseline")
	}
	// Negative tick labels appear below the baseline
	if !strings.Contains(out, "-") {
		t.Fatal("chart has no negative tick labels despite losses")
	}
}

func TestSparkline_HandlesNegatives(t *testing.T) {
	out := Sparkline([]float64{-100, 0, 100}, theme.Active.Green)
	if out == "" {
		t.Fatal("sparkline is empty")
	}
	// The minimum maps to the lowest block, the maximum to the highest.
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Fatalf("sparkline %q missing extreme blocks", out)
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Fatalf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}

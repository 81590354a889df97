package components

import (
	"fmt"
	"math"
	"strings"

	"beven/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
// Values may be negative; the whole series is shifted so the minimum
// maps to the lowest block.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// SignedBarChart renders a bar chart with a zero baseline. Positive values
// grow upward in green, negative values downward in red. Profit series
// routinely straddle zero, which the plain bar chart cannot show.
func SignedBarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active
	if width < 15 || height < 4 {
		return Sparkline(values, t.Accent)
	}

	maxPos, maxNeg := 0.0, 0.0
	for _, v := range values {
		if v > maxPos {
			maxPos = v
		}
		if -v > maxNeg {
			maxNeg = -v
		}
	}
	extent := math.Max(maxPos, maxNeg)
	if extent == 0 {
		extent = 1
	}

	tickStep := chartTickStep(extent)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(extent/tickStep)) > maxIntervals {
		tickStep *= 2
	}

	posIntervals := int(math.Ceil(maxPos / tickStep))
	negIntervals := int(math.Ceil(maxNeg / tickStep))
	if posIntervals == 0 && negIntervals == 0 {
		posIntervals = 1
	}

	totalIntervals := posIntervals + negIntervals
	rowsPerTick := height / totalIntervals
	if rowsPerTick < 1 {
		rowsPerTick = 1
	}
	posRows := posIntervals * rowsPerTick
	negRows := negIntervals * rowsPerTick
	posCeil := float64(posIntervals) * tickStep
	negFloor := float64(negIntervals) * tickStep

	// Tick labels keyed by row, positive rows counted up from the baseline,
	// negative rows counted down.
	yLabelW := len(formatChartLabel(math.Max(posCeil, negFloor))) + 2
	if yLabelW < 5 {
		yLabelW = 5
	}
	posTicks := make(map[int]string)
	for i := 1; i <= posIntervals; i++ {
		posTicks[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}
	negTicks := make(map[int]string)
	for i := 1; i <= negIntervals; i++ {
		negTicks[i*rowsPerTick] = "-" + formatChartLabel(tickStep*float64(i))
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	if barW < 1 && n > 1 {
		// Downsample to whatever fits
		maxN := (chartW + 1) / 2
		if maxN < 2 {
			maxN = 2
		}
		sampled := make([]float64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampled {
			srcIdx := i * (n - 1) / (maxN - 1)
			sampled[i] = values[srcIdx]
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = maxN
		barW = 1
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	// Positive region, top to bottom.
	for row := posRows; row >= 1; row-- {
		rowTop := posCeil * float64(row) / float64(posRows)
		rowBottom := posCeil * float64(row-1) / float64(posRows)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, posTicks[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blankStyle.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case v >= rowTop:
				b.WriteString(gainStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(gainStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blankStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// Zero baseline.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Negative region, baseline down. Partial fill rounds to half blocks
	// since there are no lower-eighth glyphs growing downward.
	for row := 1; row <= negRows; row++ {
		rowTop := negFloor * float64(row-1) / float64(negRows)
		rowBottom := negFloor * float64(row) / float64(negRows)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, negTicks[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blankStyle.Render(strings.Repeat(" ", gap)))
			}
			depth := -v
			switch {
			case depth >= rowBottom:
				b.WriteString(lossStyle.Render(strings.Repeat("█", barW)))
			case depth > rowTop:
				frac := (depth - rowTop) / (rowBottom - rowTop)
				if frac >= 0.5 {
					b.WriteString(lossStyle.Render(strings.Repeat("▀", barW)))
				} else {
					b.WriteString(blankStyle.Render(strings.Repeat(" ", barW)))
				}
			default:
				b.WriteString(blankStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		if row < negRows || len(labels) == n {
			b.WriteString("\n")
		}
	}

	// X-axis labels below the chart.
	if len(labels) == n && n > 0 {
		buf := make([]byte, axisLen)
		for i := range buf {
			buf[i] = ' '
		}

		minSpacing := 6
		labelStep := max(1, (n*minSpacing)/(axisLen+1))

		lastEnd := -1
		for i := 0; i < n; i += labelStep {
			pos := i * (barW + gap)
			lbl := labels[i]
			end := pos + len(lbl)
			if pos <= lastEnd {
				continue
			}
			if end > axisLen {
				end = axisLen
				if end-pos < 2 {
					continue
				}
				lbl = lbl[:end-pos]
			}
			copy(buf[pos:end], lbl)
			lastEnd = end + 1
		}

		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

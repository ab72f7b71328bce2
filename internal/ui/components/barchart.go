package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lingoapp/lingo/internal/stats"
	"github.com/lingoapp/lingo/internal/ui/theme"
)

// Bar is a single column in a BarChart.
type Bar struct {
	Label string
	Value float64
}

// BarChart renders a vertical bar chart of study minutes. Bar heights
// use the soft-cap scaler so one long session does not flatten the
// rest of the week.
type BarChart struct {
	Bars     []Bar
	Height   int
	BarWidth int
	Gap      int
}

// NewBarChart creates a bar chart with the given plot height in rows.
func NewBarChart(bars []Bar, height int) BarChart {
	return BarChart{
		Bars:     bars,
		Height:   height,
		BarWidth: 4,
		Gap:      2,
	}
}

// View renders the chart: values above the bars, labels below.
func (b BarChart) View() string {
	if len(b.Bars) == 0 || b.Height <= 0 {
		return ""
	}

	values := make([]float64, len(b.Bars))
	for i, bar := range b.Bars {
		values[i] = bar.Value
	}
	visualMax := stats.VisualMax(values)

	heights := make([]int, len(b.Bars))
	for i, bar := range b.Bars {
		if bar.Value <= 0 {
			heights[i] = 0
			continue
		}
		// Height is the label-free plot area; HeightFor reserves
		// ChartPadding for labels, so hand it back.
		h := int(stats.HeightFor(bar.Value, visualMax, float64(b.Height)+stats.ChartPadding))
		if h < 1 {
			h = 1
		}
		if h > b.Height {
			h = b.Height
		}
		heights[i] = h
	}

	gap := strings.Repeat(" ", b.Gap)
	block := strings.Repeat("█", b.BarWidth)
	blank := strings.Repeat(" ", b.BarWidth)

	var rows []string

	// Value row sits on top of each bar.
	valueCells := make([]string, len(b.Bars))
	for i, bar := range b.Bars {
		v := ""
		if bar.Value > 0 {
			v = fmt.Sprintf("%d", int(bar.Value))
		}
		valueCells[i] = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(b.BarWidth).
			Align(lipgloss.Center).
			Render(v)
	}
	rows = append(rows, strings.Join(valueCells, gap))

	for row := b.Height; row >= 1; row-- {
		cells := make([]string, len(b.Bars))
		for i := range b.Bars {
			if heights[i] >= row {
				style := theme.BarFilled
				if b.Bars[i].Value > stats.SoftCap {
					style = theme.BarOverCap
				}
				cells[i] = style.Render(block)
			} else {
				cells[i] = blank
			}
		}
		rows = append(rows, strings.Join(cells, gap))
	}

	labelCells := make([]string, len(b.Bars))
	for i, bar := range b.Bars {
		labelCells[i] = lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(b.BarWidth).
			Align(lipgloss.Center).
			Render(bar.Label)
	}
	rows = append(rows, strings.Join(labelCells, gap))

	return strings.Join(rows, "\n")
}

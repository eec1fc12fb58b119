package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
)

const (
	chartHeight = 10
	barWidth    = 40
)

// PerformanceChart renders the wins/losses series as a terminal line
// chart. Each call builds the slot's content from scratch; the previous
// chart for the slot is simply replaced, never drawn over.
func PerformanceChart(series PerformanceSeries, colorEnabled bool) string {
	if len(series.Dates) == 0 {
		return "No performance data for this period."
	}

	caption := fmt.Sprintf("Wins vs Losses (%s to %s)", series.Dates[0], series.Dates[len(series.Dates)-1])

	opts := []asciigraph.Option{
		asciigraph.Height(chartHeight),
		asciigraph.Caption(caption),
		asciigraph.SeriesLegends("Wins", "Losses"),
	}
	if colorEnabled {
		opts = append(opts, asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red))
	}

	return asciigraph.PlotMany([][]float64{series.Wins, series.Losses}, opts...)
}

// DistributionChart renders the win/loss/pending proportions as a single
// colored bar with a legend.
func DistributionChart(dist Distribution, colorEnabled bool) string {
	total := dist.Wins + dist.Losses + dist.Pending
	if total == 0 {
		return "No trades for this period."
	}

	winCells := barWidth * dist.Wins / total
	lossCells := barWidth * dist.Losses / total
	pendingCells := barWidth - winCells - lossCells

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)
	if !colorEnabled {
		green.DisableColor()
		red.DisableColor()
		yellow.DisableColor()
	}

	var b strings.Builder
	b.WriteString(green.Sprint(strings.Repeat("█", winCells)))
	b.WriteString(red.Sprint(strings.Repeat("█", lossCells)))
	b.WriteString(yellow.Sprint(strings.Repeat("░", pendingCells)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %d  %s %d  %s %d",
		green.Sprint("■ Wins"), dist.Wins,
		red.Sprint("■ Losses"), dist.Losses,
		yellow.Sprint("■ Pending"), dist.Pending,
	))
	return b.String()
}

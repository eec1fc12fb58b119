package render

import (
	"fmt"
	"math"
	"sort"
	"time"

	"chart-prophet/internal/classify"
	"chart-prophet/internal/models"
)

// Counters are the four scalar stat tiles.
type Counters struct {
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       string
}

// PerformanceSeries is the wins/losses time series, dates ascending.
type PerformanceSeries struct {
	Dates  []string
	Wins   []float64
	Losses []float64
}

// Distribution is the win/loss/pending proportion chart data.
type Distribution struct {
	Wins    int
	Losses  int
	Pending int
}

// TradeRow is one rendered table row.
type TradeRow struct {
	ID             int64
	Date           string
	Symbol         string
	Recommendation string
	RecClass       classify.Category
	IndicatorType  string
	Outcome        string
	OutcomeClass   string
	ProfitLoss     string
	Profit         bool
}

// BuildCounters maps stats onto the scalar tiles.
func BuildCounters(stats *models.TradeStats) Counters {
	if stats == nil {
		return Counters{WinRate: "0%"}
	}
	return Counters{
		TotalTrades:   stats.TotalTrades,
		WinningTrades: stats.WinningTrades,
		LosingTrades:  stats.LosingTrades,
		WinRate:       fmt.Sprintf("%g%%", stats.WinRate),
	}
}

// BuildPerformanceSeries flattens performance_by_date into parallel arrays
// sorted ascending by date key.
func BuildPerformanceSeries(stats *models.TradeStats) PerformanceSeries {
	if stats == nil || len(stats.PerformanceByDate) == 0 {
		return PerformanceSeries{}
	}

	dates := make([]string, 0, len(stats.PerformanceByDate))
	for d := range stats.PerformanceByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	series := PerformanceSeries{Dates: dates}
	for _, d := range dates {
		day := stats.PerformanceByDate[d]
		series.Wins = append(series.Wins, float64(day.Wins))
		series.Losses = append(series.Losses, float64(day.Losses))
	}
	return series
}

// BuildDistribution maps stats onto the three-slice proportion chart.
func BuildDistribution(stats *models.TradeStats) Distribution {
	if stats == nil {
		return Distribution{}
	}
	return Distribution{
		Wins:    stats.WinningTrades,
		Losses:  stats.LosingTrades,
		Pending: stats.PendingTrades,
	}
}

// BuildTradeRows maps trades onto table rows in received order. Missing
// scalar fields default to "N/A".
func BuildTradeRows(trades []models.Trade, dateFormat string) []TradeRow {
	rows := make([]TradeRow, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, TradeRow{
			ID:             t.ID,
			Date:           formatCreatedAt(t.CreatedAt, dateFormat),
			Symbol:         orNA(t.Symbol),
			Recommendation: orNA(t.Recommendation),
			RecClass:       classify.Recommendation(t.Recommendation),
			IndicatorType:  orNA(t.IndicatorType),
			Outcome:        classify.FormatOutcome(t.Outcome),
			OutcomeClass:   classify.OutcomeClass(t.Outcome),
			ProfitLoss:     formatRowPL(t.ProfitLoss),
			Profit:         t.ProfitLoss == nil || *t.ProfitLoss >= 0,
		})
	}
	return rows
}

// FormatPL formats a profit/loss value as +$X.XX or -$X.XX with the
// absolute value after the sign. Zero counts as profit.
func FormatPL(value float64) string {
	if value >= 0 {
		return fmt.Sprintf("+$%.2f", value)
	}
	return fmt.Sprintf("-$%.2f", math.Abs(value))
}

func formatRowPL(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return FormatPL(*value)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// createdAtLayouts are the timestamp shapes the backend has been seen to
// emit for created_at.
var createdAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func formatCreatedAt(createdAt, dateFormat string) string {
	if createdAt == "" {
		return "N/A"
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, createdAt); err == nil {
			return t.Format(dateFormat)
		}
	}
	return createdAt
}

// Package render maps backend payloads to display view models. Builders
// here are pure: every slot has a default, and no absent field may panic.
package render

import (
	"chart-prophet/internal/classify"
	"chart-prophet/internal/models"
)

// Fallback texts matching the reference result panel.
const (
	placeholderItem    = "Not available"
	defaultSummary     = "Analysis complete."
	rsiNotAvailable    = "RSI analysis not available"
	macdNotAvailable   = "MACD analysis not available"
	defaultBadgeSignal = "NEUTRAL"
)

// Badge is a short verdict with its styling category.
type Badge struct {
	Text     string
	Category classify.Category
}

// IndicatorSlot is one indicator badge plus its description line.
type IndicatorSlot struct {
	Badge       Badge
	Description string
}

// ListSlot is a titled bullet list. Empty source data renders a single
// placeholder item rather than an empty list.
type ListSlot struct {
	Title string
	Items []string
}

// Report is the full set of display slots for one analysis result.
type Report struct {
	Recommendation Badge
	Confidence     string
	Trend          Badge
	RSI            IndicatorSlot
	MACD           IndicatorSlot
	Support        ListSlot
	Resistance     ListSlot
	EntryPoints    ListSlot
	ExitPoints     ListSlot
	Observations   ListSlot
	RiskFactors    ListSlot
	Fibonacci      []models.FibonacciLevel
	Summary        string
}

// BuildReport maps an analysis result onto the display slots. A nil or
// fully-empty result produces the documented default for every slot.
func BuildReport(result *models.AnalysisResult) Report {
	if result == nil {
		result = &models.AnalysisResult{}
	}

	rec := result.OverallRecommendation
	if rec == "" {
		rec = string(models.RecommendationHold)
	}

	trend := result.TrendDirection
	if trend == "" {
		trend = "N/A"
	}

	confidence := result.ConfidenceLevel
	if confidence == "" {
		confidence = "N/A"
	}

	summary := result.Summary
	if summary == "" {
		summary = defaultSummary
	}

	return Report{
		Recommendation: Badge{Text: rec, Category: classify.Recommendation(result.OverallRecommendation)},
		Confidence:     confidence,
		Trend:          Badge{Text: trend, Category: classify.Trend(result.TrendDirection)},
		RSI:            buildIndicatorSlot(result.RSIAnalysis, rsiNotAvailable),
		MACD:           buildIndicatorSlot(result.MACDAnalysis, macdNotAvailable),
		Support:        buildListSlot("Support Levels", result.SupportLevels),
		Resistance:     buildListSlot("Resistance Levels", result.ResistanceLevels),
		EntryPoints:    buildListSlot("Entry Points", result.EntryPoints),
		ExitPoints:     buildListSlot("Exit Points", result.ExitPoints),
		Observations:   buildListSlot("Key Observations", result.KeyObservations),
		RiskFactors:    buildListSlot("Risk Factors", result.RiskFactors),
		Fibonacci:      result.FibonacciLevels,
		Summary:        summary,
	}
}

func buildIndicatorSlot(analysis *models.IndicatorAnalysis, fallback string) IndicatorSlot {
	if analysis == nil {
		return IndicatorSlot{
			Badge:       Badge{Text: defaultBadgeSignal, Category: classify.CategoryNeutral},
			Description: fallback,
		}
	}

	signal := analysis.Signal
	if signal == "" {
		signal = defaultBadgeSignal
	}
	description := analysis.Description
	if description == "" {
		description = fallback
	}
	return IndicatorSlot{
		Badge:       Badge{Text: signal, Category: classify.Signal(analysis.Signal)},
		Description: description,
	}
}

func buildListSlot(title string, items []string) ListSlot {
	if len(items) == 0 {
		return ListSlot{Title: title, Items: []string{placeholderItem}}
	}
	return ListSlot{Title: title, Items: items}
}

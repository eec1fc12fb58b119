package render

import (
	"testing"

	"chart-prophet/internal/classify"
	"chart-prophet/internal/models"
)

func TestBuildReportDefaults(t *testing.T) {
	tests := []struct {
		name   string
		result *models.AnalysisResult
	}{
		{name: "nil result", result: nil},
		{name: "empty result", result: &models.AnalysisResult{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(tt.result)

			if report.Recommendation.Text != "HOLD" {
				t.Errorf("Recommendation.Text = %q, want HOLD", report.Recommendation.Text)
			}
			if report.Recommendation.Category != classify.CategoryHold {
				t.Errorf("Recommendation.Category = %v, want hold", report.Recommendation.Category)
			}
			if report.Confidence != "N/A" {
				t.Errorf("Confidence = %q, want N/A", report.Confidence)
			}
			if report.Trend.Text != "N/A" {
				t.Errorf("Trend.Text = %q, want N/A", report.Trend.Text)
			}
			if report.Summary != "Analysis complete." {
				t.Errorf("Summary = %q, want default", report.Summary)
			}

			if report.RSI.Badge.Text != "NEUTRAL" {
				t.Errorf("RSI.Badge.Text = %q, want NEUTRAL", report.RSI.Badge.Text)
			}
			if report.RSI.Description != "RSI analysis not available" {
				t.Errorf("RSI.Description = %q", report.RSI.Description)
			}
			if report.MACD.Description != "MACD analysis not available" {
				t.Errorf("MACD.Description = %q", report.MACD.Description)
			}

			for _, slot := range []ListSlot{
				report.Support, report.Resistance,
				report.EntryPoints, report.ExitPoints,
				report.Observations, report.RiskFactors,
			} {
				if len(slot.Items) != 1 || slot.Items[0] != "Not available" {
					t.Errorf("%s items = %v, want single placeholder", slot.Title, slot.Items)
				}
			}

			if len(report.Fibonacci) != 0 {
				t.Errorf("Fibonacci = %v, want empty", report.Fibonacci)
			}
		})
	}
}

func TestBuildReportPopulated(t *testing.T) {
	result := &models.AnalysisResult{
		OverallRecommendation: "Strong Buy",
		ConfidenceLevel:       "High",
		TrendDirection:        "Bullish",
		RSIAnalysis: &models.IndicatorAnalysis{
			Signal:      "BULLISH",
			Description: "RSI at 38, recovering from oversold",
		},
		MACDAnalysis: &models.IndicatorAnalysis{
			Signal: "BEARISH",
		},
		SupportLevels:    []string{"145.20", "142.00"},
		ResistanceLevels: []string{"152.80"},
		FibonacciLevels: []models.FibonacciLevel{
			{Level: "0.618", Significance: "strong retracement zone"},
		},
		Summary: "Uptrend intact above 145.",
	}

	report := BuildReport(result)

	if report.Recommendation.Category != classify.CategoryBuy {
		t.Errorf("Recommendation.Category = %v, want buy", report.Recommendation.Category)
	}
	if report.Trend.Category != classify.CategoryBullish {
		t.Errorf("Trend.Category = %v, want bullish", report.Trend.Category)
	}
	if report.RSI.Badge.Category != classify.CategoryBullish {
		t.Errorf("RSI badge category = %v, want bullish", report.RSI.Badge.Category)
	}
	// Description absent on MACD falls back even when the badge is set.
	if report.MACD.Description != "MACD analysis not available" {
		t.Errorf("MACD.Description = %q, want fallback", report.MACD.Description)
	}
	if len(report.Support.Items) != 2 || report.Support.Items[0] != "145.20" {
		t.Errorf("Support.Items = %v", report.Support.Items)
	}
	if len(report.Resistance.Items) != 1 {
		t.Errorf("Resistance.Items = %v", report.Resistance.Items)
	}
	if len(report.EntryPoints.Items) != 1 || report.EntryPoints.Items[0] != "Not available" {
		t.Errorf("EntryPoints.Items = %v, want placeholder", report.EntryPoints.Items)
	}
	if len(report.Fibonacci) != 1 || report.Fibonacci[0].Level != "0.618" {
		t.Errorf("Fibonacci = %v", report.Fibonacci)
	}
	if report.Summary != "Uptrend intact above 145." {
		t.Errorf("Summary = %q", report.Summary)
	}
}

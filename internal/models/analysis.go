// Package models provides domain models for the chart analysis client.
package models

// Recommendation represents an overall trade recommendation.
type Recommendation string

const (
	RecommendationBuy  Recommendation = "BUY"
	RecommendationSell Recommendation = "SELL"
	RecommendationHold Recommendation = "HOLD"
)

// IndicatorAnalysis holds the backend's verdict for a single indicator.
type IndicatorAnalysis struct {
	Signal      string `json:"signal"`
	Description string `json:"description"`
}

// FibonacciLevel is one retracement level with its reading.
type FibonacciLevel struct {
	Level        string `json:"level"`
	Significance string `json:"significance"`
}

// AnalysisResult is the structured verdict returned by the backend for an
// uploaded chart image. Every field is optional on the wire; display
// defaults live in the render layer.
type AnalysisResult struct {
	OverallRecommendation string             `json:"overall_recommendation"`
	ConfidenceLevel       string             `json:"confidence_level"`
	TrendDirection        string             `json:"trend_direction"`
	RSIAnalysis           *IndicatorAnalysis `json:"rsi_analysis,omitempty"`
	MACDAnalysis          *IndicatorAnalysis `json:"macd_analysis,omitempty"`
	SupportLevels         []string           `json:"support_levels,omitempty"`
	ResistanceLevels      []string           `json:"resistance_levels,omitempty"`
	EntryPoints           []string           `json:"entry_points,omitempty"`
	ExitPoints            []string           `json:"exit_points,omitempty"`
	KeyObservations       []string           `json:"key_observations,omitempty"`
	RiskFactors           []string           `json:"risk_factors,omitempty"`
	FibonacciLevels       []FibonacciLevel   `json:"fibonacci_levels,omitempty"`
	Summary               string             `json:"summary"`
}

package models

// Envelope fields shared by every /api response.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// StatsEnvelope wraps the /api/stats payload.
type StatsEnvelope struct {
	Envelope
	Stats *TradeStats `json:"stats,omitempty"`
}

// TradesEnvelope wraps the /api/trades list payload.
type TradesEnvelope struct {
	Envelope
	Trades []Trade `json:"trades"`
}

// AnalyzeResponse is the /analyze response body. The backend signals failure
// through the error field, not the HTTP status.
type AnalyzeResponse struct {
	Error    string          `json:"error,omitempty"`
	Analysis *AnalysisResult `json:"analysis,omitempty"`
}

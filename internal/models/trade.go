package models

// Outcome represents the recorded result of a trade.
type Outcome string

const (
	OutcomePending Outcome = "pending"
	OutcomeWin     Outcome = "win"
	OutcomeLoss    Outcome = "loss"
)

// Trade is a single trade record owned by the backend. ID and CreatedAt are
// server-assigned and round-tripped opaquely; the client never sets them.
// Price fields are nullable on the wire.
type Trade struct {
	ID             int64    `json:"id,omitempty"`
	Symbol         string   `json:"symbol"`
	Recommendation string   `json:"recommendation"`
	IndicatorType  string   `json:"indicator_type"`
	Outcome        string   `json:"outcome"`
	EntryPrice     *float64 `json:"entry_price"`
	ExitPrice      *float64 `json:"exit_price"`
	ProfitLoss     *float64 `json:"profit_loss"`
	Notes          string   `json:"notes"`
	CreatedAt      string   `json:"created_at,omitempty"`
}

// DayPerformance holds win/loss counts for one calendar date.
type DayPerformance struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// TradeStats is the aggregate view served by /api/stats.
type TradeStats struct {
	TotalTrades       int                       `json:"total_trades"`
	WinningTrades     int                       `json:"winning_trades"`
	LosingTrades      int                       `json:"losing_trades"`
	PendingTrades     int                       `json:"pending_trades"`
	WinRate           float64                   `json:"win_rate"`
	PerformanceByDate map[string]DayPerformance `json:"performance_by_date"`
}

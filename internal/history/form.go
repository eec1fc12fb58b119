package history

import (
	"strconv"
	"strings"

	"chart-prophet/internal/models"
)

// Form defaults matching the reference edit dialog.
const (
	DefaultRecommendation = "HOLD"
	DefaultIndicatorType  = "Combined"
	DefaultOutcome        = "pending"
)

// TradeForm is the editable projection of a trade. All fields are text, the
// way a form carries them; numeric parsing happens on save. An empty ID
// marks a create intent.
type TradeForm struct {
	ID             string
	Symbol         string
	Recommendation string
	IndicatorType  string
	Outcome        string
	EntryPrice     string
	ExitPrice      string
	ProfitLoss     string
	Notes          string
}

// NewTradeForm returns a create-intent form with the reference defaults.
func NewTradeForm() TradeForm {
	return TradeForm{
		Recommendation: DefaultRecommendation,
		IndicatorType:  DefaultIndicatorType,
		Outcome:        DefaultOutcome,
	}
}

// formFromTrade projects a cached trade into an edit form. Missing optional
// fields become empty strings; the select fields fall back to the create
// defaults.
func formFromTrade(t models.Trade) TradeForm {
	form := TradeForm{
		ID:             strconv.FormatInt(t.ID, 10),
		Symbol:         t.Symbol,
		Recommendation: t.Recommendation,
		IndicatorType:  t.IndicatorType,
		Outcome:        t.Outcome,
		EntryPrice:     formatNullable(t.EntryPrice),
		ExitPrice:      formatNullable(t.ExitPrice),
		ProfitLoss:     formatNullable(t.ProfitLoss),
		Notes:          t.Notes,
	}
	if form.Recommendation == "" {
		form.Recommendation = DefaultRecommendation
	}
	if form.IndicatorType == "" {
		form.IndicatorType = DefaultIndicatorType
	}
	if form.Outcome == "" {
		form.Outcome = DefaultOutcome
	}
	return form
}

// Trade builds the wire payload from the form. ID and CreatedAt are never
// part of the payload; the server owns them.
func (f TradeForm) Trade() models.Trade {
	return models.Trade{
		Symbol:         f.Symbol,
		Recommendation: f.Recommendation,
		IndicatorType:  f.IndicatorType,
		Outcome:        f.Outcome,
		EntryPrice:     ParsePrice(f.EntryPrice),
		ExitPrice:      ParsePrice(f.ExitPrice),
		ProfitLoss:     ParsePrice(f.ProfitLoss),
		Notes:          f.Notes,
	}
}

// IsCreate reports whether saving this form should create a new trade.
func (f TradeForm) IsCreate() bool {
	return strings.TrimSpace(f.ID) == ""
}

// ParsePrice parses a numeric form field. Empty, unparsable, and zero input
// all become an explicit null, matching the reference form handling; the
// backend reads null as "not set".
func ParsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v == 0 {
		return nil
	}
	return &v
}

func formatNullable(v *float64) string {
	if v == nil || *v == 0 {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

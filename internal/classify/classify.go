// Package classify maps free-text backend verdicts to display categories.
//
// The backend returns recommendations, trend directions, and indicator
// signals as free text. Display styling only needs a coarse three-way
// category, derived by case-insensitive substring matching with a fixed
// precedence: the bullish-side token is checked before the bearish-side one.
package classify

import "strings"

// Category is a coarse display classification.
type Category string

const (
	CategoryBuy     Category = "buy"
	CategorySell    Category = "sell"
	CategoryHold    Category = "hold"
	CategoryBullish Category = "bullish"
	CategoryBearish Category = "bearish"
	CategoryNeutral Category = "neutral"
)

// Recommendation classifies an overall recommendation string.
// "buy" wins over "sell" when both appear; anything else is hold.
func Recommendation(rec string) Category {
	rec = strings.ToLower(rec)
	if strings.Contains(rec, "buy") {
		return CategoryBuy
	}
	if strings.Contains(rec, "sell") {
		return CategorySell
	}
	return CategoryHold
}

// Trend classifies a trend direction string.
// "bullish" wins over "bearish" when both appear; anything else is neutral.
func Trend(trend string) Category {
	trend = strings.ToLower(trend)
	if strings.Contains(trend, "bullish") {
		return CategoryBullish
	}
	if strings.Contains(trend, "bearish") {
		return CategoryBearish
	}
	return CategoryNeutral
}

// Signal classifies an indicator signal string. The signal text itself is
// the category, lower-cased; an empty signal reads as neutral.
func Signal(signal string) Category {
	if signal == "" {
		return CategoryNeutral
	}
	return Category(strings.ToLower(signal))
}

// OutcomeClass returns the styling class for a trade outcome. Unknown
// outcomes pass through lower-cased; empty reads as pending.
func OutcomeClass(outcome string) string {
	if outcome == "" {
		return "pending"
	}
	return strings.ToLower(outcome)
}

// FormatOutcome returns the display text for a trade outcome. Pending (or
// missing) renders as "Pending"; other outcomes get their first letter
// capitalized.
func FormatOutcome(outcome string) string {
	if outcome == "" || outcome == "pending" {
		return "Pending"
	}
	return strings.ToUpper(outcome[:1]) + outcome[1:]
}

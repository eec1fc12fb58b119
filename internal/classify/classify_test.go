package classify

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRecommendation(t *testing.T) {
	tests := []struct {
		name string
		rec  string
		want Category
	}{
		{name: "plain buy", rec: "BUY", want: CategoryBuy},
		{name: "plain sell", rec: "SELL", want: CategorySell},
		{name: "plain hold", rec: "HOLD", want: CategoryHold},
		{name: "mixed case", rec: "Strong Buy", want: CategoryBuy},
		{name: "free text sell", rec: "lean towards selling here", want: CategorySell},
		{name: "buy wins over sell", rec: "buy now, sell later", want: CategoryBuy},
		{name: "empty defaults to hold", rec: "", want: CategoryHold},
		{name: "unrelated text defaults to hold", rec: "wait for confirmation", want: CategoryHold},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommendation(tt.rec); got != tt.want {
				t.Errorf("Recommendation(%q) = %v, want %v", tt.rec, got, tt.want)
			}
		})
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name  string
		trend string
		want  Category
	}{
		{name: "bullish", trend: "Bullish", want: CategoryBullish},
		{name: "bearish", trend: "strongly bearish", want: CategoryBearish},
		{name: "bullish wins over bearish", trend: "bullish turning bearish", want: CategoryBullish},
		{name: "sideways is neutral", trend: "sideways", want: CategoryNeutral},
		{name: "empty is neutral", trend: "", want: CategoryNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trend(tt.trend); got != tt.want {
				t.Errorf("Trend(%q) = %v, want %v", tt.trend, got, tt.want)
			}
		})
	}
}

func TestSignal(t *testing.T) {
	if got := Signal("BULLISH"); got != Category("bullish") {
		t.Errorf("Signal(BULLISH) = %v, want bullish", got)
	}
	if got := Signal(""); got != CategoryNeutral {
		t.Errorf("Signal(empty) = %v, want neutral", got)
	}
}

func TestOutcomeClass(t *testing.T) {
	tests := []struct {
		outcome string
		want    string
	}{
		{outcome: "win", want: "win"},
		{outcome: "LOSS", want: "loss"},
		{outcome: "pending", want: "pending"},
		{outcome: "", want: "pending"},
	}
	for _, tt := range tests {
		if got := OutcomeClass(tt.outcome); got != tt.want {
			t.Errorf("OutcomeClass(%q) = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}

func TestFormatOutcome(t *testing.T) {
	tests := []struct {
		outcome string
		want    string
	}{
		{outcome: "pending", want: "Pending"},
		{outcome: "", want: "Pending"},
		{outcome: "win", want: "Win"},
		{outcome: "loss", want: "Loss"},
	}
	for _, tt := range tests {
		if got := FormatOutcome(tt.outcome); got != tt.want {
			t.Errorf("FormatOutcome(%q) = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}

// Classification is idempotent and precedence-ordered: any string
// containing "buy" classifies as buy no matter what else it contains, and
// classifying the category name again returns the same category.
func TestProperty_RecommendationPrecedence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("buy substring always wins", prop.ForAll(
		func(prefix, suffix string) bool {
			return Recommendation(prefix+"buy"+suffix) == CategoryBuy
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("sell without buy classifies as sell", prop.ForAll(
		func(prefix, suffix string) bool {
			s := prefix + "sell" + suffix
			if strings.Contains(strings.ToLower(s), "buy") {
				return Recommendation(s) == CategoryBuy
			}
			return Recommendation(s) == CategorySell
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("classification is idempotent", prop.ForAll(
		func(s string) bool {
			c := Recommendation(s)
			return Recommendation(string(c)) == c
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"chart-prophet/internal/config"
	"chart-prophet/internal/errors"
	"chart-prophet/internal/models"
)

func tradeFixture() models.Trade {
	pl := 125.5
	return models.Trade{
		ID:             99,
		Symbol:         "AAPL",
		Recommendation: "BUY",
		IndicatorType:  "Combined",
		Outcome:        "win",
		ProfitLoss:     &pl,
		CreatedAt:      "2024-03-05T14:30:00Z",
	}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.ServerConfig{
		BaseURL:  server.URL,
		Timeout:  5 * time.Second,
		RetryMax: 0,
	}, zerolog.Nop())
	return client, server
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotField string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analyze" {
			t.Errorf("request = %s %s, want POST /analyze", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		if files := r.MultipartForm.File["chart"]; len(files) == 1 {
			gotField = files[0].Filename
		}
		w.Write([]byte(`{"analysis": {"overall_recommendation": "BUY", "confidence_level": "High"}}`))
	}))

	result, err := client.Analyze(context.Background(), "chart.png", strings.NewReader("fake-png-bytes"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if gotField != "chart.png" {
		t.Errorf("uploaded filename = %q, want chart.png", gotField)
	}
	if result.OverallRecommendation != "BUY" || result.ConfidenceLevel != "High" {
		t.Errorf("result = %+v", result)
	}
}

func TestAnalyzeErrorField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Failure is signalled in the body even on HTTP 200.
		w.Write([]byte(`{"error": "Could not identify a chart in this image"}`))
	}))

	_, err := client.Analyze(context.Background(), "chart.png", strings.NewReader("x"))
	if !errors.IsBusiness(err) {
		t.Fatalf("Analyze() error = %v, want business error", err)
	}
	if msg := errors.UserMessage(err); msg != "Could not identify a chart in this image" {
		t.Errorf("UserMessage = %q", msg)
	}
}

func TestAnalyzeMissingAnalysis(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	result, err := client.Analyze(context.Background(), "chart.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result == nil {
		t.Fatal("result is nil, want empty result")
	}
}

func TestAnalyzeMalformedJSON(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>proxy error</html>`))
	}))

	_, err := client.Analyze(context.Background(), "chart.png", strings.NewReader("x"))
	if !errors.IsTransport(err) {
		t.Fatalf("Analyze() error = %v, want transport error", err)
	}
}

func TestGetStats(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stats" {
			t.Errorf("path = %s, want /api/stats", r.URL.Path)
		}
		if got := r.URL.Query().Get("start_date"); got != "2024-01-01" {
			t.Errorf("start_date = %q, want 2024-01-01", got)
		}
		if r.URL.Query().Has("outcome") {
			t.Error("outcome sentinel must not reach the wire")
		}
		w.Write([]byte(`{"success": true, "stats": {"total_trades": 4, "winning_trades": 3, "win_rate": 75}}`))
	}))

	stats, err := client.GetStats(context.Background(), Filter{StartDate: "2024-01-01", Outcome: FilterAll})
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalTrades != 4 || stats.WinningTrades != 3 || stats.WinRate != 75 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestGetStatsFailureEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "no stats for range"}`))
	}))

	_, err := client.GetStats(context.Background(), Filter{})
	if !errors.IsBusiness(err) {
		t.Fatalf("GetStats() error = %v, want business error", err)
	}
}

func TestGetTrades(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/trades" {
			t.Errorf("path = %s, want /api/trades", r.URL.Path)
		}
		if got := r.URL.Query().Get("outcome"); got != "win" {
			t.Errorf("outcome = %q, want win", got)
		}
		w.Write([]byte(`{"success": true, "trades": [{"id": 1, "symbol": "AAPL", "profit_loss": 12.5}, {"id": 2}]}`))
	}))

	trades, err := client.GetTrades(context.Background(), Filter{Outcome: "win"})
	if err != nil {
		t.Fatalf("GetTrades() error = %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("len(trades) = %d, want 2", len(trades))
	}
	if trades[0].Symbol != "AAPL" || trades[0].ProfitLoss == nil || *trades[0].ProfitLoss != 12.5 {
		t.Errorf("trades[0] = %+v", trades[0])
	}
	if trades[1].ProfitLoss != nil {
		t.Errorf("trades[1].ProfitLoss = %v, want nil", trades[1].ProfitLoss)
	}
}

func TestTradeWrites(t *testing.T) {
	type seen struct {
		method string
		path   string
		body   string
	}
	var last seen
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		last = seen{method: r.Method, path: r.URL.Path, body: string(buf)}
		w.Write([]byte(`{"success": true}`))
	}))
	ctx := context.Background()

	trade := tradeFixture()
	if err := client.CreateTrade(ctx, trade); err != nil {
		t.Fatalf("CreateTrade() error = %v", err)
	}
	if last.method != http.MethodPost || last.path != "/api/trades" {
		t.Errorf("create = %s %s, want POST /api/trades", last.method, last.path)
	}
	if strings.Contains(last.body, `"id"`) || strings.Contains(last.body, `"created_at"`) {
		t.Errorf("create body carries server-owned fields: %s", last.body)
	}

	if err := client.UpdateTrade(ctx, 7, trade); err != nil {
		t.Fatalf("UpdateTrade() error = %v", err)
	}
	if last.method != http.MethodPut || last.path != "/api/trades/7" {
		t.Errorf("update = %s %s, want PUT /api/trades/7", last.method, last.path)
	}

	if err := client.DeleteTrade(ctx, 7); err != nil {
		t.Fatalf("DeleteTrade() error = %v", err)
	}
	if last.method != http.MethodDelete || last.path != "/api/trades/7" {
		t.Errorf("delete = %s %s, want DELETE /api/trades/7", last.method, last.path)
	}
}

func TestWriteFailureEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success": false, "error": "symbol is required"}`))
	}))

	err := client.CreateTrade(context.Background(), tradeFixture())
	if !errors.IsBusiness(err) {
		t.Fatalf("CreateTrade() error = %v, want business error", err)
	}
	if msg := errors.UserMessage(err); msg != "symbol is required" {
		t.Errorf("UserMessage = %q", msg)
	}
}

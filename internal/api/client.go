// Package api provides the HTTP client for the chart analysis backend.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"chart-prophet/internal/config"
	"chart-prophet/internal/errors"
	"chart-prophet/internal/logging"
	"chart-prophet/internal/models"
)

// Client talks to the chart analysis backend.
type Client struct {
	rest     *resty.Client
	retryMax uint64
	logger   zerolog.Logger
}

// NewClient creates a backend client from the server configuration.
func NewClient(cfg config.ServerConfig, logger zerolog.Logger) *Client {
	rest := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		rest:     rest,
		retryMax: uint64(cfg.RetryMax),
		logger:   logger,
	}
}

// Analyze uploads a chart image as the multipart field "chart" and returns
// the backend's structured verdict. The backend signals failure through an
// error field in the body regardless of HTTP status, so the body is decoded
// before the status is considered. Uploads are never retried.
func (c *Client) Analyze(ctx context.Context, filename string, r io.Reader) (*models.AnalysisResult, error) {
	const op = "analyze"

	start := time.Now()
	resp, err := c.rest.R().
		SetContext(ctx).
		SetFileReader("chart", filename, r).
		Post("/analyze")
	logging.LogAPICall(c.logger, "POST", "/analyze", time.Since(start), err)
	if err != nil {
		return nil, errors.NewTransportError(op, err)
	}

	var body models.AnalyzeResponse
	if jerr := json.Unmarshal(resp.Body(), &body); jerr != nil {
		return nil, errors.NewTransportError(op, fmt.Errorf("decoding response: %w", jerr))
	}
	if body.Error != "" {
		return nil, errors.NewBusinessError(op, body.Error)
	}
	if body.Analysis == nil {
		// Tolerated: the render layer has a default for every slot.
		return &models.AnalysisResult{}, nil
	}
	return body.Analysis, nil
}

// GetStats fetches aggregate statistics for the given filter. A
// success:false envelope comes back as a BusinessError so callers can skip
// the stats portion without treating the load as failed.
func (c *Client) GetStats(ctx context.Context, f Filter) (*models.TradeStats, error) {
	const op = "stats"

	var envelope models.StatsEnvelope
	if err := c.getJSON(ctx, op, "/api/stats", f, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, errors.NewBusinessError(op, envelope.Error)
	}
	if envelope.Stats == nil {
		return nil, errors.NewTransportError(op, fmt.Errorf("success envelope missing stats payload"))
	}
	return envelope.Stats, nil
}

// GetTrades fetches the trade list for the given filter.
func (c *Client) GetTrades(ctx context.Context, f Filter) ([]models.Trade, error) {
	const op = "trades"

	var envelope models.TradesEnvelope
	if err := c.getJSON(ctx, op, "/api/trades", f, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, errors.NewBusinessError(op, envelope.Error)
	}
	return envelope.Trades, nil
}

// CreateTrade creates a new trade record. The trade must not carry an ID;
// identity is server-assigned.
func (c *Client) CreateTrade(ctx context.Context, trade models.Trade) error {
	trade.ID = 0
	trade.CreatedAt = ""
	return c.mutate(ctx, "create trade", resty.MethodPost, "/api/trades", trade)
}

// UpdateTrade replaces an existing trade record in place.
func (c *Client) UpdateTrade(ctx context.Context, id int64, trade models.Trade) error {
	path := fmt.Sprintf("/api/trades/%d", id)
	return c.mutate(ctx, "update trade", resty.MethodPut, path, trade)
}

// DeleteTrade removes a trade record.
func (c *Client) DeleteTrade(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/trades/%d", id)
	return c.mutate(ctx, "delete trade", resty.MethodDelete, path, nil)
}

// getJSON issues a filtered GET with bounded retry on transport failures.
// Business failures are returned as-is; retrying them cannot help.
func (c *Client) getJSON(ctx context.Context, op, path string, f Filter, out interface{}) error {
	values, err := f.Values()
	if err != nil {
		return errors.NewTransportError(op, err)
	}

	attempt := func() error {
		start := time.Now()
		resp, rerr := c.rest.R().
			SetContext(ctx).
			SetQueryParamsFromValues(values).
			Get(path)
		logging.LogAPICall(c.logger, "GET", path, time.Since(start), rerr)
		if rerr != nil {
			return errors.NewTransportError(op, rerr)
		}
		if jerr := json.Unmarshal(resp.Body(), out); jerr != nil {
			return errors.NewTransportError(op, fmt.Errorf("decoding response: %w", jerr))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.retryMax), ctx)
	return backoff.Retry(attempt, policy)
}

// mutate issues a write request and decodes the success envelope. Writes
// are never retried.
func (c *Client) mutate(ctx context.Context, op, method, path string, body interface{}) error {
	req := c.rest.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	logging.LogAPICall(c.logger, method, path, time.Since(start), err)
	if err != nil {
		return errors.NewTransportError(op, err)
	}

	var envelope models.Envelope
	if jerr := json.Unmarshal(resp.Body(), &envelope); jerr != nil {
		return errors.NewTransportError(op, fmt.Errorf("decoding response: %w", jerr))
	}
	if !envelope.Success {
		return errors.NewBusinessError(op, envelope.Error)
	}
	return nil
}

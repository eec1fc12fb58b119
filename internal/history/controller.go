// Package history owns the trade-history dashboard state: the current
// filter, the in-memory trade cache, and the load/edit/delete workflows
// against the backend.
package history

import (
	"context"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"chart-prophet/internal/api"
	"chart-prophet/internal/errors"
	"chart-prophet/internal/logging"
	"chart-prophet/internal/models"
)

// API is the backend surface the controller needs. *api.Client satisfies it.
type API interface {
	GetStats(ctx context.Context, f api.Filter) (*models.TradeStats, error)
	GetTrades(ctx context.Context, f api.Filter) ([]models.Trade, error)
	CreateTrade(ctx context.Context, trade models.Trade) error
	UpdateTrade(ctx context.Context, id int64, trade models.Trade) error
	DeleteTrade(ctx context.Context, id int64) error
}

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// LoadResult reports what a load applied. A nil Stats or Trades with the
// matching Skipped flag set means that portion answered success:false and
// the previously displayed values stand.
type LoadResult struct {
	Stats         *models.TradeStats
	Trades        []models.Trade
	StatsSkipped  bool
	TradesSkipped bool
}

// Controller drives the dashboard. The cache is replaced wholesale on every
// successful load and never patched in place after a mutation.
type Controller struct {
	mu         sync.Mutex
	filter     api.Filter
	stats      *models.TradeStats
	generation uint64
	inFlight   int

	store  *Store
	client API
	logger zerolog.Logger
}

// NewController creates a dashboard controller.
func NewController(client API, logger zerolog.Logger) *Controller {
	return &Controller{
		store:  NewStore(),
		client: client,
		logger: logger,
	}
}

// Store returns the trade cache.
func (c *Controller) Store() *Store { return c.store }

// Stats returns the last applied statistics, or nil before the first load.
func (c *Controller) Stats() *models.TradeStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Loading reports whether any load is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// SetFilter replaces the current filter.
func (c *Controller) SetFilter(f api.Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = f
}

// Filter returns the current filter.
func (c *Controller) Filter() api.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// ClearFilter resets the filter to show everything.
func (c *Controller) ClearFilter() {
	c.SetFilter(api.Filter{})
}

// Load fetches stats and trades concurrently with the current filter and
// applies both together, so the dashboard is never half-updated. A
// transport failure on either request aborts the whole load with no state
// change. A success:false envelope on one portion skips just that portion
// while the sibling still applies. Results from a load that has been
// superseded by a newer one are discarded.
func (c *Controller) Load(ctx context.Context) (*LoadResult, error) {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	filter := c.filter
	c.inFlight++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight--
		c.mu.Unlock()
	}()

	logger := logging.WithRequestID(c.logger, uuid.NewString())
	logger.Debug().Str("query", filter.Encode()).Msg("Loading dashboard")

	var (
		wg        sync.WaitGroup
		stats     *models.TradeStats
		statsErr  error
		trades    []models.Trade
		tradesErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		stats, statsErr = c.client.GetStats(ctx, filter)
	}()
	go func() {
		defer wg.Done()
		trades, tradesErr = c.client.GetTrades(ctx, filter)
	}()
	wg.Wait()

	for _, err := range []error{statsErr, tradesErr} {
		if err != nil && !errors.IsBusiness(err) {
			logger.Warn().Err(err).Msg("Dashboard load failed")
			return nil, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		logger.Debug().Msg("Discarding superseded load")
		return nil, errors.ErrLoadSuperseded
	}

	result := &LoadResult{}
	if statsErr != nil {
		logger.Warn().Err(statsErr).Msg("Stats portion skipped")
		result.StatsSkipped = true
	} else {
		c.stats = stats
		result.Stats = stats
	}
	if tradesErr != nil {
		logger.Warn().Err(tradesErr).Msg("Trades portion skipped")
		result.TradesSkipped = true
	} else {
		c.store.Replace(trades)
		result.Trades = trades
	}
	return result, nil
}

// OpenCreate returns a form for a new trade with the reference defaults.
func (c *Controller) OpenCreate() TradeForm {
	return NewTradeForm()
}

// OpenEdit populates a form from the cached trade with the given ID. A
// stale ID from a previous render is a no-op, reported by ok=false.
func (c *Controller) OpenEdit(id int64) (TradeForm, bool) {
	trade, ok := c.store.Get(id)
	if !ok {
		return TradeForm{}, false
	}
	return formFromTrade(trade), true
}

// Save persists the form: PUT for a form carrying an ID, POST otherwise.
// On success the full list is reloaded rather than patched locally; a
// reload failure after a successful save is logged, not surfaced, since the
// save itself stands. On failure the error carries the server message and
// no reload happens, so the caller can leave the form open for correction.
func (c *Controller) Save(ctx context.Context, form TradeForm) error {
	trade := form.Trade()

	if form.IsCreate() {
		if err := c.client.CreateTrade(ctx, trade); err != nil {
			return err
		}
	} else {
		id, err := strconv.ParseInt(form.ID, 10, 64)
		if err != nil {
			return errors.Wrap(err, "invalid trade id")
		}
		if err := c.client.UpdateTrade(ctx, id, trade); err != nil {
			return err
		}
	}

	if _, err := c.Load(ctx); err != nil && !errors.Is(err, errors.ErrLoadSuperseded) {
		c.logger.Warn().Err(err).Msg("Reload after save failed")
	}
	return nil
}

// Delete removes a trade after interactive confirmation. Without
// confirmation no request is issued. On success the list is reloaded; on
// failure the displayed list stands.
func (c *Controller) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if confirmer == nil || !confirmer.Confirm("Are you sure you want to delete this trade?") {
		return errors.ErrNotConfirmed
	}

	if err := c.client.DeleteTrade(ctx, id); err != nil {
		return err
	}

	if _, err := c.Load(ctx); err != nil && !errors.Is(err, errors.ErrLoadSuperseded) {
		c.logger.Warn().Err(err).Msg("Reload after delete failed")
	}
	return nil
}

// Package analysis owns the upload-and-analyze flow: staged file state, a
// single-submission guard, and the state transitions around the backend
// call.
package analysis

import (
	"bytes"
	"context"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"chart-prophet/internal/errors"
	"chart-prophet/internal/models"
)

// State is the submission flow state.
type State string

const (
	// StateIdle means no file is staged and no results are shown.
	StateIdle State = "idle"
	// StatePreviewing means a file is staged and ready to submit.
	StatePreviewing State = "previewing"
	// StateLoading means a submission is in flight.
	StateLoading State = "loading"
	// StateDone means the last submission succeeded and results are shown.
	StateDone State = "done"
)

// Analyzer is the backend surface the controller needs. *api.Client
// satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, filename string, r io.Reader) (*models.AnalysisResult, error)
}

// Controller drives the submit flow. One submission may be in flight at a
// time; a second Submit while loading is rejected, not queued.
type Controller struct {
	mu       sync.Mutex
	state    State
	filename string
	data     []byte
	result   *models.AnalysisResult

	analyzer Analyzer
	logger   zerolog.Logger
}

// NewController creates a submission controller over the backend client.
func NewController(analyzer Analyzer, logger zerolog.Logger) *Controller {
	return &Controller{
		state:    StateIdle,
		analyzer: analyzer,
		logger:   logger,
	}
}

// State returns the current flow state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Result returns the last successful analysis, or nil.
func (c *Controller) Result() *models.AnalysisResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Filename returns the staged file name, or empty.
func (c *Controller) Filename() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filename
}

// Select stages an image file for submission. Only image files are
// accepted, judged by extension the way the reference UI judged MIME type.
// Selecting replaces any previously staged file and clears prior results.
func (c *Controller) Select(filename string, data []byte) error {
	if !isImage(filename) {
		return errors.ErrNotAnImage
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateLoading {
		return errors.ErrSubmissionInFlight
	}
	c.filename = filename
	c.data = data
	c.result = nil
	c.state = StatePreviewing
	return nil
}

// Submit posts the staged file to the backend. On success the flow moves to
// done; on any error it returns to previewing with the staged file intact
// so the user can retry. The loading state is always left on an exit path.
func (c *Controller) Submit(ctx context.Context) (*models.AnalysisResult, error) {
	c.mu.Lock()
	switch c.state {
	case StateLoading:
		c.mu.Unlock()
		return nil, errors.ErrSubmissionInFlight
	case StatePreviewing:
	default:
		c.mu.Unlock()
		return nil, errors.ErrNoFileSelected
	}
	filename := c.filename
	data := c.data
	c.state = StateLoading
	c.mu.Unlock()

	result, err := c.analyzer.Analyze(ctx, filename, bytes.NewReader(data))

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.Warn().Err(err).Str("file", filename).Msg("Analysis failed")
		c.state = StatePreviewing
		return nil, err
	}
	c.result = result
	c.state = StateDone
	return result, nil
}

// Reset clears the staged file and any prior results, returning to idle.
// The "change file" and "new analysis" actions both land here.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateLoading {
		return
	}
	c.filename = ""
	c.data = nil
	c.result = nil
	c.state = StateIdle
}

func isImage(filename string) bool {
	mediaType := mime.TypeByExtension(filepath.Ext(filename))
	return strings.HasPrefix(mediaType, "image/")
}

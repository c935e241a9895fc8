// Package engine wires the rate limiter, result cache, stage pipeline, and
// analysis synthesizer into the scanning operations exposed to callers.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/swcstudio/domainscan/internal/analysis"
	"github.com/swcstudio/domainscan/internal/cache"
	"github.com/swcstudio/domainscan/internal/models"
	"github.com/swcstudio/domainscan/internal/progress"
	"github.com/swcstudio/domainscan/internal/ratelimit"
	"github.com/swcstudio/domainscan/internal/scanner"
)

// Engine executes scans against the configured cache, limiter, and pipeline
type Engine struct {
	cache     cache.Store
	limiter   *ratelimit.Limiter
	pipeline  *scanner.Pipeline
	publisher *progress.Publisher
	cacheTTL  time.Duration
}

// New assembles an engine. A nil publisher gets a fresh one so Subscribe
// always works. cacheTTL 0 defers to the store's default.
func New(store cache.Store, limiter *ratelimit.Limiter, pipeline *scanner.Pipeline, publisher *progress.Publisher, cacheTTL time.Duration) *Engine {
	if publisher == nil {
		publisher = progress.NewPublisher()
	}
	return &Engine{
		cache:     store,
		limiter:   limiter,
		pipeline:  pipeline,
		publisher: publisher,
		cacheTTL:  cacheTTL,
	}
}

// Subscribe registers a progress subscriber for all future scans
func (e *Engine) Subscribe(s progress.Subscriber) {
	e.publisher.Subscribe(s)
}

// Scan runs a single scan at the requested depth.
//
// A fresh cached result short-circuits before the rate limiter is consulted,
// so repeated queries for the same hostname are always free. Stage failures
// are absorbed into degraded results; only validation, rate limiting, and
// unexpected internal failures surface as errors.
func (e *Engine) Scan(ctx context.Context, req models.ScanRequest) (*models.ScanResult, error) {
	host := models.NormalizeHostname(req.Hostname)
	if err := models.ValidateHostname(host); err != nil {
		return nil, err
	}
	depth := req.Depth
	if depth == "" {
		depth = models.DepthStandard
	}
	if !depth.Valid() {
		return nil, &models.ValidationError{Field: "depth", Message: fmt.Sprintf("unknown depth %q", depth)}
	}

	if cached, ok := e.cache.Get(ctx, host); ok {
		return cached, nil
	}

	result := models.NewScanResult(host, depth)

	if err := e.limiter.Admit(); err != nil {
		e.publisher.Publish(progress.Event{
			ScanID:   result.ScanID,
			Hostname: host,
			Status:   progress.StatusError,
			Progress: 0,
			Message:  err.Error(),
		})
		return nil, err
	}

	e.publisher.Publish(progress.Event{
		ScanID:   result.ScanID,
		Hostname: host,
		Status:   progress.StatusStarted,
		Progress: 0,
		Message:  fmt.Sprintf("Scan started at %s depth", depth),
	})

	rep := &scanReporter{publisher: e.publisher, scanID: result.ScanID, hostname: host}

	if err := e.runGuarded(ctx, result, rep); err != nil {
		e.publisher.Publish(progress.Event{
			ScanID:   result.ScanID,
			Hostname: host,
			Status:   progress.StatusError,
			Progress: rep.current(),
			Message:  err.Error(),
		})
		return nil, err
	}

	if err := e.cache.Set(ctx, host, result, e.cacheTTL); err != nil {
		// A broken cache backend degrades to scan-every-time; not fatal.
		rep.Warn(fmt.Sprintf("caching result failed: %v", err))
	}

	e.publisher.Publish(progress.Event{
		ScanID:   result.ScanID,
		Hostname: host,
		Status:   progress.StatusCompleted,
		Progress: 100,
		Message:  "Scan complete",
	})
	return result, nil
}

// runGuarded executes the pipeline and synthesis inside a recover so an
// unexpected internal failure aborts this scan only, not the engine.
func (e *Engine) runGuarded(ctx context.Context, result *models.ScanResult, rep scanner.Reporter) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal scan failure: %v", r)
		}
	}()
	insights := e.pipeline.Run(ctx, result, rep)
	result.Analysis = analysis.Synthesize(&result.Infrastructure, result.WebData, insights)
	return nil
}

// ListCached returns a summary of every fresh cache entry
func (e *Engine) ListCached(ctx context.Context) ([]cache.Summary, error) {
	return e.cache.List(ctx)
}

// ClearCache drops every cached result unconditionally
func (e *Engine) ClearCache(ctx context.Context) error {
	return e.cache.Clear(ctx)
}

// scanReporter adapts pipeline callbacks to progress events and enforces
// that emitted percentages never decrease for one scan.
type scanReporter struct {
	publisher *progress.Publisher
	scanID    string
	hostname  string

	mu   sync.Mutex
	last int
}

func (r *scanReporter) Checkpoint(pct int, message string) {
	r.mu.Lock()
	if pct < r.last {
		pct = r.last
	}
	r.last = pct
	r.mu.Unlock()

	r.publisher.Publish(progress.Event{
		ScanID:   r.scanID,
		Hostname: r.hostname,
		Status:   progress.StatusScanning,
		Progress: pct,
		Message:  message,
	})
}

func (r *scanReporter) Warn(message string) {
	r.publisher.Publish(progress.Event{
		ScanID:   r.scanID,
		Hostname: r.hostname,
		Status:   progress.StatusScanning,
		Progress: r.current(),
		Message:  "warning: " + message,
	})
}

func (r *scanReporter) current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}

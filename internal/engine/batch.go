package engine

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/swcstudio/domainscan/internal/models"
)

const (
	// MaxBatchSize caps how many hostnames one batch request may carry
	MaxBatchSize = 100

	// DefaultBatchConcurrency is the chunk width when the caller passes 0
	DefaultBatchConcurrency = 3

	// MaxBatchConcurrency bounds the chunk width a caller may request
	MaxBatchConcurrency = 10
)

// BatchOptions controls a batch run
type BatchOptions struct {
	Concurrency int
	Depth       models.Depth
}

// BatchSummary counts the outcome of a batch
type BatchSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Errors    int `json:"errors"`
}

// BatchResult holds per-host results in the order hostnames were submitted.
// Hosts whose scan failed outright are absent from Results and counted in
// Summary.Errors.
type BatchResult struct {
	Results []*models.ScanResult `json:"results"`
	Summary BatchSummary         `json:"summary"`
}

// BatchScan scans hostnames in fixed chunks of opts.Concurrency, awaiting
// each chunk before starting the next. Individual scan failures never abort
// the batch.
func (e *Engine) BatchScan(ctx context.Context, hostnames []string, opts BatchOptions) (*BatchResult, error) {
	if len(hostnames) == 0 {
		return nil, &models.ValidationError{Field: "hostnames", Message: "at least one hostname is required"}
	}
	if len(hostnames) > MaxBatchSize {
		return nil, &models.ValidationError{
			Field:   "hostnames",
			Message: fmt.Sprintf("batch size %d exceeds maximum of %d", len(hostnames), MaxBatchSize),
		}
	}

	concurrency := opts.Concurrency
	if concurrency == 0 {
		concurrency = DefaultBatchConcurrency
	}
	if concurrency < 1 || concurrency > MaxBatchConcurrency {
		return nil, &models.ValidationError{
			Field:   "concurrency",
			Message: fmt.Sprintf("concurrency %d outside allowed range 1-%d", opts.Concurrency, MaxBatchConcurrency),
		}
	}

	depth := opts.Depth
	if depth == "" {
		depth = models.DepthStandard
	}

	results := make([]*models.ScanResult, len(hostnames))
	errs := make([]error, len(hostnames))

	for start := 0; start < len(hostnames); start += concurrency {
		end := start + concurrency
		if end > len(hostnames) {
			end = len(hostnames)
		}

		var wg conc.WaitGroup
		for i := start; i < end; i++ {
			i := i
			wg.Go(func() {
				req := models.ScanRequest{Hostname: hostnames[i], Depth: depth}
				results[i], errs[i] = e.Scan(ctx, req)
			})
		}
		wg.Wait()
	}

	out := &BatchResult{Summary: BatchSummary{Total: len(hostnames)}}
	for i := range hostnames {
		if errs[i] != nil {
			out.Summary.Errors++
			continue
		}
		out.Results = append(out.Results, results[i])
		out.Summary.Completed++
	}
	return out, nil
}

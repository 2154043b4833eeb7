package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/linkgraph/wikifirst/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent processing of multiple dump files.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Concurrency spans files only. Each file's pipeline remains a single
// sequential pass, so records within one file keep input order; only
// the interleaving between files depends on scheduling.
type BatchProcessor struct {
	// pipelineFactory creates a fresh pipeline for the given dump
	// source. A factory keeps per-file state (filters, emit sinks,
	// per-dump settings) from leaking between files.
	pipelineFactory func(source string) *Pipeline

	// concurrency is the maximum number of files processed at once.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed reports in source order.
	// Access is synchronized via mutex.
	results []*model.ExtractReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrently processed
// files. Default is 1, which keeps the whole run strictly sequential.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func(source string) *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     1,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch extracts multiple dump files, at most `concurrency` at a
// time, and returns their reports in source order.
//
// A failed file does not stop the others: the failure is recorded on
// that file's report (ReadError) and logged. The error return
// indicates cancellation, not per-file failures.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, sources []string) ([]*model.ExtractReport, error) {
	bp.logger.Debug("starting batch processing",
		"totalFiles", len(sources),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]*model.ExtractReport, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := bp.processOne(ctx, source)

			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Debug("batch processing complete",
		"totalFiles", len(sources),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}

// ProcessBatchWithCallback extracts multiple dump files and calls the
// callback for each completed file. This is the streaming-ish batch
// path: output can be flushed as soon as a file finishes rather than
// after the whole batch.
//
// The callback receives the report and the index of the source in the
// original slice. It is called from the goroutine that finished the
// file, so it must be safe for concurrent use.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	sources []string,
	callback func(report *model.ExtractReport, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			callback(bp.processOne(ctx, source), i)
			return nil
		})
	}

	return g.Wait()
}

// processOne runs the pipeline for a single source, folding a pipeline
// failure into the report so batch processing can continue.
func (bp *BatchProcessor) processOne(ctx context.Context, source string) *model.ExtractReport {
	report := model.NewExtractReport(source)
	p := bp.pipelineFactory(source)

	if err := p.Execute(ctx, report); err != nil {
		if report.ReadError == "" {
			report.ReadError = err.Error()
		}
		bp.logger.Warn("extraction failed",
			"source", source,
			"error", err,
		)
	}
	return report
}

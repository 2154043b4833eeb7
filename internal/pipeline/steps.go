package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/linkgraph/wikifirst/internal/config"
	"github.com/linkgraph/wikifirst/internal/dump"
	"github.com/linkgraph/wikifirst/internal/model"
	"github.com/linkgraph/wikifirst/internal/wikitext"
)

// EmitFunc receives each record as soon as it is extracted.
// It is the streaming output path: the default plain mode hands records
// to stdout here instead of waiting for the report.
type EmitFunc func(rec model.LinkRecord) error

// ExtractStep is the core of the pipeline: it opens the dump named by
// the report's Source, walks its page blocks, and fills the report
// with (title, link) records and skip accounting.
//
// Per-page problems are filters, not errors: a block that fails to
// decode, a redirect stub, a disambiguation title, or a page without a
// qualifying link is counted and dropped, and the walk continues. Only
// opening the dump, a failing emit sink, and (in strict mode) a
// mid-stream read failure abort the step.
type ExtractStep struct {
	settings  config.DumpConfig
	filter    *wikitext.Filter
	extractor *wikitext.Extractor
	logger    *slog.Logger
	emit      EmitFunc
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithStepLogger sets a custom logger for the step.
func WithStepLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		s.logger = logger
	}
}

// WithEmit sets a streaming sink that receives each record as it is
// extracted. An emit failure aborts the step: losing output is fatal
// where losing a malformed page is not.
func WithEmit(emit EmitFunc) ExtractStepOption {
	return func(s *ExtractStep) {
		s.emit = emit
	}
}

// NewExtractStep creates an ExtractStep with the given per-dump settings.
// An empty disambiguation suffix would match every title, so it falls
// back to the conventional one.
func NewExtractStep(settings config.DumpConfig, opts ...ExtractStepOption) *ExtractStep {
	if settings.DisambiguationSuffix == "" {
		settings.DisambiguationSuffix = model.DisambiguationSuffix
	}
	s := &ExtractStep{
		settings:  settings,
		filter:    wikitext.NewFilter(),
		extractor: wikitext.NewExtractor(wikitext.WithSkipFileLinks(settings.SkipFileLinks)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name returns the step name for logging.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do runs the extraction pass over the report's source dump.
func (s *ExtractStep) Do(ctx context.Context, report *model.ExtractReport) error {
	r, err := dump.Open(report.Source)
	if err != nil {
		return err
	}
	defer r.Close() //nolint:errcheck // Read-only stream

	scanner := dump.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		report.PagesSeen++

		page, err := dump.DecodePage(scanner.Block())
		if err != nil {
			report.DecodeFailures++
			s.logger.Debug("skipping undecodable page block",
				"source", report.Source,
				"block", scanner.Block(),
				"error", err,
			)
			continue
		}

		if strings.HasSuffix(page.Title, s.settings.DisambiguationSuffix) {
			report.Disambiguations++
			continue
		}

		if page.IsRedirect() {
			report.Redirects++
			continue
		}

		body, ok := page.BodyText()
		if !ok {
			// No revisions at all; nothing to extract from.
			report.NoLink++
			continue
		}

		target, ok := s.extractor.Extract(s.filter.Normalize(body))
		if !ok {
			report.NoLink++
			continue
		}

		rec := model.LinkRecord{Title: page.Title, Link: target}
		report.AddRecord(rec)
		if s.emit != nil {
			if err := s.emit(rec); err != nil {
				return fmt.Errorf("emit record: %w", err)
			}
		}

		if s.settings.Limit > 0 && report.Emitted() >= s.settings.Limit {
			report.Truncated = true
			s.logger.Debug("record limit reached",
				"source", report.Source,
				"limit", s.settings.Limit,
			)
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		report.ReadError = err.Error()
		if s.settings.Strict {
			return fmt.Errorf("read dump %s: %w", report.Source, err)
		}
		// Lenient mode: a failing stream is treated as end of input.
		s.logger.Debug("stream ended early, keeping partial results",
			"source", report.Source,
			"error", err,
		)
	}

	return nil
}

// SummaryStep logs the final accounting of an extraction. It runs
// after ExtractStep and never fails.
type SummaryStep struct {
	logger *slog.Logger
}

// NewSummaryStep creates a SummaryStep logging to the given logger.
// A nil logger falls back to slog.Default().
func NewSummaryStep(logger *slog.Logger) *SummaryStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryStep{logger: logger}
}

// Name returns the step name for logging.
func (s *SummaryStep) Name() string {
	return "summary"
}

// Do logs the report counters.
func (s *SummaryStep) Do(_ context.Context, report *model.ExtractReport) error {
	s.logger.Info("extraction finished",
		"source", report.Source,
		"pagesSeen", report.PagesSeen,
		"emitted", report.Emitted(),
		"decodeFailures", report.DecodeFailures,
		"redirects", report.Redirects,
		"disambiguations", report.Disambiguations,
		"noLink", report.NoLink,
		"truncated", report.Truncated,
	)
	return nil
}

// DefaultPipeline assembles the standard extraction pipeline for one
// dump file: extract, then summarize.
func DefaultPipeline(settings config.DumpConfig, logger *slog.Logger, emit EmitFunc) *Pipeline {
	p := New(WithLogger(logger))

	stepOpts := []ExtractStepOption{WithStepLogger(logger)}
	if emit != nil {
		stepOpts = append(stepOpts, WithEmit(emit))
	}

	p.AddSteps(
		NewExtractStep(settings, stepOpts...),
		NewSummaryStep(logger),
	)
	return p
}

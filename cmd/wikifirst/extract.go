package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/linkgraph/wikifirst/internal/config"
	"github.com/linkgraph/wikifirst/internal/log"
	"github.com/linkgraph/wikifirst/internal/model"
	"github.com/linkgraph/wikifirst/internal/pipeline"
	"github.com/linkgraph/wikifirst/internal/report"
	"github.com/spf13/cobra"
)

// NewExtractCmd creates the extract command.
func NewExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [dump-file...]",
		Short: "Extract the first link of every article from wiki dump files",
		Long: `Extract streams one or more MediaWiki XML export files and writes, for
every qualifying article, a single line:

  <title> -> <link>

Redirect stubs and disambiguation pages are skipped, and template
blocks, citations, and parenthetical asides are stripped before the
first link is chosen. Files ending in .bz2 or .gz are decompressed on
the fly.

Examples:
  # Extract from a single dump
  wikifirst extract enwiki-latest-pages-articles.xml

  # Extract from a compressed dump, stop after 1000 records
  wikifirst extract --limit 1000 enwiki-latest-pages-articles.xml.bz2

  # Process several dumps concurrently and write a Markdown report
  wikifirst extract --batch 4 --markdown -o report.md dump1.xml dump2.xml

  # Treat a truncated dump as an error instead of end of input
  wikifirst extract --strict enwiki-latest-pages-articles.xml

  # Use a custom configuration file
  wikifirst extract -c myconfig.yaml enwiki-latest-pages-articles.xml

Configuration file (.wikifirst) example:
  defaults:
    limit: 1000
  dumps:
    dewiki-latest-pages-articles.xml:
      disambiguation_suffix: " (Begriffsklärung)"
    frwiki-latest-pages-articles.xml:
      strict: true`,
		Args: cobra.ArbitraryArgs,
		RunE: runExtractCmd,
	}

	// Extraction behavior flags
	cmd.Flags().IntP("limit", "l", config.DefaultLimit,
		"Maximum number of records to emit per dump (0 = unlimited)")
	cmd.Flags().Bool("strict", false,
		"Treat a mid-stream read error as fatal instead of end of input")
	cmd.Flags().Bool("skip-file-links", false,
		"Pass over [[File:...]] targets when choosing the first link")
	cmd.Flags().String("disambiguation-suffix", config.DefaultDisambiguationSuffix,
		"Title suffix that marks a page as a disambiguation page")

	// Batch processing flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of dump files processed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .wikifirst in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")

	return cmd
}

// runExtractCmd executes the extract command.
func runExtractCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runExtract(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	// Get flag values
	var err error

	cfg.Limit, err = cmd.Flags().GetInt("limit")
	if err != nil {
		return nil, err
	}

	cfg.Strict, err = cmd.Flags().GetBool("strict")
	if err != nil {
		return nil, err
	}

	cfg.SkipFileLinks, err = cmd.Flags().GetBool("skip-file-links")
	if err != nil {
		return nil, err
	}

	cfg.DisambiguationSuffix, err = cmd.Flags().GetString("disambiguation-suffix")
	if err != nil {
		return nil, err
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-dump configurations from config file
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.FileConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		// Use empty config if no file found and user didn't explicitly specify one
		cfg.FileConfigs = &config.File{
			Dumps: make(map[string]config.DumpConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Get positional arguments (dump file paths)
	cfg.Inputs = args

	return cfg, nil
}

// runExtract executes the extraction.
func runExtract(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting extraction",
		"inputs", cfg.Inputs,
		"batchSize", cfg.BatchSize,
		"strict", cfg.Strict,
	)

	output, closeOutput, err := openOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	// Use batch processor for parallel extraction if multiple dumps
	if len(cfg.Inputs) > 1 && cfg.BatchSize > 1 {
		return runBatchExtract(ctx, cfg, output, logger)
	}

	// Single dump or sequential extraction
	return runSequentialExtract(ctx, cfg, output, logger)
}

// runSequentialExtract processes dump files one at a time, in argument
// order. In the default plain mode records stream to the output as they
// are extracted; report modes accumulate and render after each file.
func runSequentialExtract(ctx context.Context, cfg *config.Config, output io.Writer, logger *slog.Logger) error {
	streaming := !cfg.JSONReport && !cfg.MarkdownReport
	plain := report.NewPlainWriter(output)

	for _, input := range cfg.Inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Per-dump settings: flags overlaid with config file entries
		settings := cfg.ForInput(input)

		var emit pipeline.EmitFunc
		if streaming {
			emit = plain.WriteRecord
		}
		p := pipeline.DefaultPipeline(settings, logger, emit)

		extractReport := model.NewExtractReport(input)

		startTime := time.Now()
		if err := p.Execute(ctx, extractReport); err != nil {
			return fmt.Errorf("extract %s: %w", input, err)
		}
		logger.Info("dump processed",
			"source", input,
			"elapsed", time.Since(startTime).Round(time.Millisecond).String(),
		)

		if !streaming {
			if err := outputReport(cfg, output, extractReport); err != nil {
				return fmt.Errorf("report %s: %w", input, err)
			}
		}
	}

	return nil
}

// runBatchExtract processes multiple dump files concurrently using
// BatchProcessor. Output for each file is written as a unit under a
// mutex, so records from different dumps never interleave.
func runBatchExtract(ctx context.Context, cfg *config.Config, output io.Writer, logger *slog.Logger) error {
	fmt.Fprintf(os.Stderr, "Extracting from %d dumps (concurrency: %d)...\n",
		len(cfg.Inputs), cfg.BatchSize)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func(source string) *pipeline.Pipeline {
			// Batch mode accumulates records per report, so no emit sink
			return pipeline.DefaultPipeline(cfg.ForInput(source), logger, nil)
		},
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	plain := report.NewPlainWriter(output)

	// Write each finished report under a mutex for streaming output
	var mu sync.Mutex
	var firstErr error
	err := bp.ProcessBatchWithCallback(ctx, cfg.Inputs, func(extractReport *model.ExtractReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		fmt.Fprintf(os.Stderr, "[%d/%d] Processed: %s\n", index+1, len(cfg.Inputs), extractReport.Source)

		var writeErr error
		if cfg.JSONReport || cfg.MarkdownReport {
			writeErr = outputReport(cfg, output, extractReport)
		} else {
			_, writeErr = plain.Write(extractReport)
		}
		if writeErr != nil {
			logger.Error("report failed", "source", extractReport.Source, "error", writeErr)
			if firstErr == nil {
				firstErr = writeErr
			}
		}

		// Strict mode surfaces the per-file failure the batch swallowed
		if cfg.Strict && extractReport.ReadError != "" && firstErr == nil {
			firstErr = fmt.Errorf("extract %s: %s", extractReport.Source, extractReport.ReadError)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Batch extraction completed in %s\n",
		time.Since(startTime).Round(time.Millisecond))

	return firstErr
}

// openOutput returns the output destination for records and reports.
// An empty path means stdout; otherwise the file is created with
// owner-only permissions and parent directories as needed.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil //nolint:errcheck // Best-effort close on exit
}

// outputReport renders a completed report in the configured format.
func outputReport(cfg *config.Config, output io.Writer, extractReport *model.ExtractReport) error {
	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewPlainWriter(output)
	}
	_, err := w.Write(extractReport)
	return err
}

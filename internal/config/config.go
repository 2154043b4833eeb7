package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/linkgraph/wikifirst/internal/model"
)

// Default configuration values.
const (
	// DefaultBatchSize of 1 processes dump files strictly one after
	// another, which keeps the output a single ordered stream. Users
	// processing many independent dumps can raise it via --batch.
	DefaultBatchSize = 1

	// DefaultLimit of 0 means no cap on emitted records per dump.
	DefaultLimit = 0

	// DefaultDisambiguationSuffix is the title suffix that excludes
	// disambiguation pages. Non-English exports use other suffixes,
	// which is why this is configurable per dump.
	DefaultDisambiguationSuffix = model.DisambiguationSuffix

	// AppName is the application name used for XDG directory paths.
	AppName = "wikifirst"
)

// Config holds all configuration options for a wikifirst run.
// It is populated from CLI flags and the optional config file in the
// cmd layer and passed down by value semantics, never via global state.
//
// Design decision: We use a single flat struct instead of nested
// structs for the same reason the option count stays small: one
// extraction run has one set of knobs. Per-dump overrides live in the
// config file (File/DumpConfig), not here.
type Config struct {
	// Inputs is the list of dump file paths to extract, processed in
	// argument order.
	Inputs []string

	// Limit caps the number of emitted records per dump file.
	// Zero means unlimited.
	Limit int

	// Strict upgrades a mid-stream read error from "stream ends
	// silently" to a surfaced fatal error. The lenient default matches
	// the long-standing behavior of this extraction policy.
	Strict bool

	// SkipFileLinks makes the extractor pass over "File:" link targets.
	// Off by default; see the wikitext package for the history of this
	// switch.
	SkipFileLinks bool

	// DisambiguationSuffix is the title suffix that excludes a page as
	// a disambiguation page.
	DisambiguationSuffix string

	// BatchSize is the number of dump files processed concurrently.
	// Each file is still processed strictly sequentially inside.
	BatchSize int

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .wikifirst in the current directory, the
	// home directory, and the XDG config directory, in that order.
	ConfigFilePath string

	// FileConfigs holds defaults and per-dump overrides loaded from
	// the config file.
	FileConfigs *File

	// JSONReport enables JSON report output instead of the plain
	// "title -> link" stream. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// plain stream. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path. When set, output goes to
	// this file instead of stdout; parent directories are created.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Limit:                DefaultLimit,
		BatchSize:            DefaultBatchSize,
		DisambiguationSuffix: DefaultDisambiguationSuffix,
	}
}

// XDGConfigDir returns the XDG config directory for wikifirst.
// On Linux: ~/.config/wikifirst
// On macOS: ~/Library/Application Support/wikifirst
// On Windows: %APPDATA%\wikifirst
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns a specific
// error describing the first problem found. It is called once after
// CLI parsing, before any extraction begins.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}
	if c.Limit < 0 {
		return ErrInvalidLimit
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.DisambiguationSuffix == "" {
		return ErrEmptyDisambiguationSuffix
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// ForInput returns the effective per-dump settings for the given input
// path: the global flag values overlaid with any matching config file
// entry. Entries match on the full path first, then on the base name.
func (c *Config) ForInput(path string) DumpConfig {
	effective := DumpConfig{
		Limit:                c.Limit,
		Strict:               c.Strict,
		SkipFileLinks:        c.SkipFileLinks,
		DisambiguationSuffix: c.DisambiguationSuffix,
	}
	if c.FileConfigs == nil {
		return effective
	}

	effective = mergeDumpConfig(effective, c.FileConfigs.Defaults)
	if override, ok := c.FileConfigs.Dumps[path]; ok {
		return mergeDumpConfig(effective, override)
	}
	if override, ok := c.FileConfigs.Dumps[filepath.Base(path)]; ok {
		return mergeDumpConfig(effective, override)
	}
	return effective
}

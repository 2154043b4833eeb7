package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate() so callers can use
// errors.Is() for programmatic handling while keeping human-readable
// messages.
var (
	// ErrNoInput is returned when no dump file path is specified.
	ErrNoInput = errors.New("no input specified: provide one or more dump file paths")

	// ErrInvalidLimit is returned when the record limit is negative.
	// Use 0 for unlimited extraction.
	ErrInvalidLimit = errors.New("invalid limit: must be non-negative")

	// ErrInvalidBatchSize is returned when the batch size is not
	// positive. A batch size of zero would process nothing.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrEmptyDisambiguationSuffix is returned when the disambiguation
	// suffix is cleared entirely; an empty suffix would match every
	// title.
	ErrEmptyDisambiguationSuffix = errors.New("invalid disambiguation suffix: must not be empty")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at
	// a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConfigNotFound is returned when the configuration file does
	// not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)

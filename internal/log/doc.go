// Package log provides structured logging helpers built on log/slog.
//
// Extraction deals in attribute values that can be enormous: raw page
// blocks, wikitext bodies, and normalized text routinely run to
// megabytes. TruncateHandler wraps any slog.Handler and clips oversized
// string attributes so that debug logging a fragment can never flood
// the terminal or a log file.
//
// Diagnostics always go to stderr; stdout is reserved for the record
// stream.
package log

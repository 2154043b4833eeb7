package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxAttrLen is the length at which string attribute values are
// clipped. Long enough to show the shape of a page block, short enough
// to keep one log line readable.
const DefaultMaxAttrLen = 256

// TruncateHandler wraps an slog.Handler and clips string attribute
// values longer than a configured maximum before passing records on.
//
// Design decision: We use a handler wrapper rather than truncating at
// each call site because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Call sites can log whole fragments without worrying about size
type TruncateHandler struct {
	// handler is the underlying slog handler that receives clipped records.
	handler slog.Handler

	// maxLen is the maximum string attribute length before clipping.
	maxLen int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given
// handler. If handler is nil, slog.Default().Handler() is used.
// A non-positive maxLen falls back to DefaultMaxAttrLen.
func NewTruncateHandler(handler slog.Handler, maxLen int) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxAttrLen
	}
	return &TruncateHandler{handler: handler, maxLen: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clips the record's attributes and passes it on.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	clipped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		clipped.AddAttrs(h.clipAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clipped)
}

// WithAttrs returns a new handler with the given attributes added,
// clipped first.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clippedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clippedAttrs[i] = h.clipAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(clippedAttrs), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// clipAttr clips a single attribute, recursively handling groups.
func (h *TruncateHandler) clipAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clippedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			clippedAttrs[i] = h.clipAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clippedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		val := a.Value.String()
		if len(val) > h.maxLen {
			return slog.String(a.Key, fmt.Sprintf("%s... (%d bytes clipped)", val[:h.maxLen], len(val)-h.maxLen))
		}
	}
	return a
}

// NewLogger creates a *slog.Logger writing text records to w with
// string attributes clipped to DefaultMaxAttrLen.
//
// Parameters:
//   - w: the io.Writer to write log output to (typically os.Stderr)
//   - verbose: if true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	textHandler := slog.NewTextHandler(w, opts)
	return slog.New(NewTruncateHandler(textHandler, DefaultMaxAttrLen))
}

package dump

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// file bundles a decompressing reader with every underlying resource
// that must be released when the caller is done.
type file struct {
	io.Reader
	closers []io.Closer
}

// Close releases all underlying resources in reverse acquisition order.
func (f *file) Close() error {
	var firstErr error
	for i := len(f.closers) - 1; i >= 0; i-- {
		if err := f.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Open opens a dump file for reading, transparently decompressing
// bzip2 (.bz2) and gzip (.gz) exports based on the file extension.
// Wiki exports are commonly distributed compressed; everything else is
// treated as plain text.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided dump path is intentional
	if err != nil {
		return nil, fmt.Errorf("open dump file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bz2":
		return &file{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close() //nolint:errcheck // Best effort cleanup
			return nil, fmt.Errorf("open gzip dump: %w", err)
		}
		return &file{Reader: zr, closers: []io.Closer{f, zr}}, nil
	default:
		return f, nil
	}
}

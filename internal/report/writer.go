package report

import (
	"io"

	"github.com/linkgraph/wikifirst/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a completed extract report in their format.
//
// Design decision: We use an interface to allow different output
// formats and destinations. This enables writing to files, stdout, or
// buffers with the same API.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.ExtractReport) (int, error)
}

// RecordWriter is implemented by writers that can emit records one at
// a time, as they are extracted, without a full report.
type RecordWriter interface {
	// WriteRecord outputs a single record.
	WriteRecord(rec model.LinkRecord) error
}

// MultiWriter writes a report to multiple Writers simultaneously.
// Useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different from
// io.Writer - we write reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.ExtractReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

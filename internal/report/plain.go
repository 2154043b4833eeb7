package report

import (
	"fmt"
	"io"

	"github.com/linkgraph/wikifirst/internal/model"
)

// PlainWriter outputs records in the canonical stream format, one line
// per qualifying page:
//
//	<title> -> <link>
//
// Titles and links are written raw, with no escaping. This is the
// default output mode and the one other tools are expected to parse.
type PlainWriter struct {
	baseWriter
}

// NewPlainWriter creates a PlainWriter that outputs to the given writer.
func NewPlainWriter(output io.Writer) *PlainWriter {
	return &PlainWriter{baseWriter: newBaseWriter(output)}
}

// WriteRecord outputs a single record line. This is the streaming path:
// the pipeline calls it as each record is extracted.
func (w *PlainWriter) WriteRecord(rec model.LinkRecord) error {
	_, err := fmt.Fprintf(w.output, "%s -> %s\n", rec.Title, rec.Link)
	return err
}

// Write outputs every record of a completed report.
func (w *PlainWriter) Write(report *model.ExtractReport) (int, error) {
	var total int
	for _, rec := range report.Records {
		n, err := fmt.Fprintf(w.output, "%s -> %s\n", rec.Title, rec.Link)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/linkgraph/wikifirst/internal/model"
)

// JSONWriter outputs the full extract report as indented JSON.
// This format carries the records plus all skip accounting, suitable
// for downstream tooling that wants more than the plain stream.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as indented JSON.
func (w *JSONWriter) Write(report *model.ExtractReport) (int, error) {
	// Encode to a buffer first so a marshal failure writes nothing.
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return 0, err
	}

	n, err := w.output.Write(buf.Bytes())
	return n, err
}

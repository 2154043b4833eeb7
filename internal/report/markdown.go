package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/linkgraph/wikifirst/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ExtractReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeRecords(md, report)
	w.writeSkips(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with extraction information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ExtractReport) {
	md.H1("First Link Extraction Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Date", report.Date.Format("2006-01-02 15:04:05 MST")},
			{"Pages Seen", strconv.Itoa(report.PagesSeen)},
			{"Links Extracted", strconv.Itoa(report.Emitted())},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")

	switch {
	case report.ReadError != "":
		md.Warningf("The input stream ended early: %s. Results cover only the pages read before the failure.", report.ReadError)
	case report.Truncated:
		md.Note("Extraction stopped at the configured record limit; the dump contains more pages.")
	default:
		md.Tip("The whole dump was processed.")
	}
	md.PlainText("")
}

// statusText returns the status cell based on report state.
func (w *MarkdownWriter) statusText(report *model.ExtractReport) string {
	if report.ReadError != "" {
		return "⚠️ Read error (partial results)"
	}
	if report.Truncated {
		return "✂️ Truncated at limit"
	}
	return "✅ Complete"
}

// writeRecords writes the extracted link table.
func (w *MarkdownWriter) writeRecords(md *markdown.Markdown, report *model.ExtractReport) {
	md.H2("Extracted Links")
	md.PlainText("")

	if len(report.Records) == 0 {
		md.PlainText("No links were extracted.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Records))
	for i, rec := range report.Records {
		rows[i] = []string{
			truncateString(rec.Title, 60),
			truncateString(rec.Link, 60),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Title", "First Link"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSkips writes skip accounting with a distribution chart.
func (w *MarkdownWriter) writeSkips(md *markdown.Markdown, report *model.ExtractReport) {
	md.H2("Skipped Pages")
	md.PlainText("")

	skips := []struct {
		key   string
		count int
	}{
		{"decode_failures", report.DecodeFailures},
		{"redirects", report.Redirects},
		{"disambiguations", report.Disambiguations},
		{"no_link", report.NoLink},
	}

	rows := make([][]string, 0, len(skips)+1)
	for _, s := range skips {
		rows = append(rows, []string{displayLabel(s.key), strconv.Itoa(s.count)})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(report.Skipped()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Reason", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.Skipped() == 0 {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Skip Reason Distribution"),
		piechart.WithShowData(true),
	)
	for _, s := range skips {
		if s.count > 0 {
			chart.LabelAndIntValue(displayLabel(s.key), uint64(s.count))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by wikifirst*")
}

// displayLabel turns a snake_case counter key into a human heading,
// e.g. "decode_failures" becomes "Decode Failures".
func displayLabel(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

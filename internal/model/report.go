package model

import "time"

// LinkRecord is the externally observable unit of output: one qualifying
// article paired with the first link found in its body text.
type LinkRecord struct {
	// Title is the article title as decoded from the export.
	Title string `json:"title"`

	// Link is the target name of the first qualifying link construct,
	// without the alias portion.
	Link string `json:"link"`
}

// ExtractReport aggregates the outcome of extracting one dump file.
// The plain output mode streams records as they are found and never
// materializes this structure; the JSON and Markdown report modes
// accumulate into it.
type ExtractReport struct {
	// Source is the dump file path this report was extracted from.
	Source string `json:"source"`

	// Date is when the extraction started.
	Date time.Time `json:"date"`

	// Records holds the emitted (title, link) pairs in input order.
	Records []LinkRecord `json:"records"`

	// PagesSeen counts every <page> block the segmenter produced,
	// including blocks that were later skipped.
	PagesSeen int `json:"pages_seen"`

	// DecodeFailures counts blocks the structured decoder rejected.
	DecodeFailures int `json:"decode_failures"`

	// Redirects counts pages excluded because their first revision was
	// a redirect stub.
	Redirects int `json:"redirects"`

	// Disambiguations counts pages excluded by title suffix.
	Disambiguations int `json:"disambiguations"`

	// NoLink counts pages whose normalized body yielded no qualifying
	// link. Pages with no revisions at all are counted here too.
	NoLink int `json:"no_link"`

	// Truncated is true when extraction stopped early because the
	// record limit was reached.
	Truncated bool `json:"truncated,omitempty"`

	// ReadError holds the message of a mid-stream read failure.
	// In lenient mode the stream simply ends and this field records
	// why; in strict mode the same failure is also surfaced as an
	// error by the pipeline.
	ReadError string `json:"read_error,omitempty"`
}

// NewExtractReport creates an empty report for the given dump source.
func NewExtractReport(source string) *ExtractReport {
	return &ExtractReport{
		Source:  source,
		Date:    time.Now(),
		Records: make([]LinkRecord, 0),
	}
}

// AddRecord appends an emitted record to the report.
func (r *ExtractReport) AddRecord(rec LinkRecord) {
	r.Records = append(r.Records, rec)
}

// Emitted returns the number of records emitted so far.
func (r *ExtractReport) Emitted() int {
	return len(r.Records)
}

// Skipped returns the total number of pages seen but not emitted.
func (r *ExtractReport) Skipped() int {
	return r.DecodeFailures + r.Redirects + r.Disambiguations + r.NoLink
}

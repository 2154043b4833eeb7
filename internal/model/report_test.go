package model

import "testing"

// TestExtractReportAccounting verifies record accumulation and skip totals.
func TestExtractReportAccounting(t *testing.T) {
	t.Parallel()

	t.Run("new report is empty", func(t *testing.T) {
		t.Parallel()
		report := NewExtractReport("dump.xml")

		if report.Source != "dump.xml" {
			t.Errorf("expected source 'dump.xml', got %q", report.Source)
		}
		if report.Emitted() != 0 {
			t.Errorf("expected 0 emitted records, got %d", report.Emitted())
		}
		if report.Skipped() != 0 {
			t.Errorf("expected 0 skipped pages, got %d", report.Skipped())
		}
		if report.Date.IsZero() {
			t.Error("expected report date to be set")
		}
	})

	t.Run("records accumulate in order", func(t *testing.T) {
		t.Parallel()
		report := NewExtractReport("dump.xml")
		report.AddRecord(LinkRecord{Title: "Dog", Link: "Canine"})
		report.AddRecord(LinkRecord{Title: "Cat", Link: "Felis"})

		if report.Emitted() != 2 {
			t.Fatalf("expected 2 emitted records, got %d", report.Emitted())
		}
		if report.Records[0].Title != "Dog" || report.Records[1].Title != "Cat" {
			t.Errorf("records out of order: %+v", report.Records)
		}
	})

	t.Run("skipped sums all exclusion counters", func(t *testing.T) {
		t.Parallel()
		report := NewExtractReport("dump.xml")
		report.DecodeFailures = 1
		report.Redirects = 2
		report.Disambiguations = 3
		report.NoLink = 4

		if got := report.Skipped(); got != 10 {
			t.Errorf("expected 10 skipped pages, got %d", got)
		}
	})
}

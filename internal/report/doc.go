// Package report renders extraction results in multiple formats: the
// plain "title -> link" stream, indented JSON, and a Markdown document
// with summary tables and a skip-reason chart.
//
// The plain writer also implements per-record streaming so the default
// output mode never has to materialize a full report.
package report

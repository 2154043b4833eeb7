package wikitext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// filePrefix marks link targets that point at media files rather than
// articles. Skipping them is opt-in; the default keeps them, matching
// the long-standing shipped behavior of this extraction policy.
const filePrefix = "File:"

// Extractor finds the first qualifying link target in normalized
// wikitext. Like Filter it is immutable and safe for concurrent use.
type Extractor struct {
	expr          *regexp.Regexp
	skipFileLinks bool
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithSkipFileLinks makes the extractor pass over link targets with the
// "File:" prefix and continue scanning for the next candidate.
func WithSkipFileLinks(skip bool) ExtractorOption {
	return func(e *Extractor) {
		e.skipFileLinks = skip
	}
}

// NewExtractor compiles the link pattern and applies options.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		// [[Target]] or [[Target|alias]]; group 1 is the target. The
		// alias group is non-greedy so each link construct on a line
		// matches on its own instead of one match spanning from the
		// first [[ to the last ]].
		expr: regexp.MustCompile(`\[\[([^|]+?)(\|.+?)?\]\]`),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the target of the first qualifying link in text and
// true, or "" and false when no kept line contains a link.
//
// Lines are scanned in order, but only lines whose first rune is a
// letter, a digit, or an apostrophe are considered. That heuristic
// keeps prose paragraphs and drops list items, headings, image
// captions, and other markup lines that open with punctuation. Within
// a kept line, candidates are taken left to right.
func (e *Extractor) Extract(text string) (string, bool) {
	for _, line := range strings.SplitAfter(text, "\n") {
		if !startsProse(line) {
			continue
		}
		for _, match := range e.expr.FindAllStringSubmatch(line, -1) {
			target := match[1]
			if e.skipFileLinks && strings.HasPrefix(target, filePrefix) {
				continue
			}
			return target, true
		}
	}
	return "", false
}

// startsProse reports whether the line opens like a prose paragraph.
func startsProse(line string) bool {
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 {
		return false
	}
	return r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

package model

import "strings"

// RedirectMarker is the literal prefix that marks a redirect page.
// A page whose first revision begins with this marker has no content of
// its own and is excluded from extraction.
const RedirectMarker = "#REDIRECT"

// DisambiguationSuffix is the conventional title suffix of disambiguation
// pages. Such pages list meanings rather than prose and are excluded.
const DisambiguationSuffix = "(disambiguation)"

// Page represents one article record decoded from a <page> block of a
// MediaWiki XML export. Only the fields the extraction pipeline consults
// are declared; the decoder ignores everything else inside the block.
type Page struct {
	// Title is the article title exactly as it appears in the export.
	Title string `xml:"title" json:"title"`

	// Revisions holds the page's revision history in export order.
	// Exports carry at least one revision; only the first is consulted.
	Revisions []Revision `xml:"revision" json:"revisions"`
}

// Revision is one historical snapshot of a page's wikitext body.
type Revision struct {
	// Text is the raw wikitext of this revision.
	Text string `xml:"text" json:"text"`
}

// BodyText returns the raw wikitext body of the page and true when the
// page has extractable content.
//
// It returns false when the page has no revisions or when the first
// revision is a redirect stub. Later revisions are never consulted: the
// first revision in an export is the current one.
func (p *Page) BodyText() (string, bool) {
	if len(p.Revisions) == 0 {
		return "", false
	}
	text := p.Revisions[0].Text
	if strings.HasPrefix(text, RedirectMarker) {
		return "", false
	}
	return text, true
}

// IsRedirect reports whether the page's first revision is a redirect
// stub.
func (p *Page) IsRedirect() bool {
	return len(p.Revisions) > 0 && strings.HasPrefix(p.Revisions[0].Text, RedirectMarker)
}

// IsDisambiguation reports whether the page title carries the
// conventional disambiguation suffix.
func (p *Page) IsDisambiguation() bool {
	return strings.HasSuffix(p.Title, DisambiguationSuffix)
}

package wikitext

import "regexp"

// Filter strips boilerplate markup from raw wikitext, leaving the prose
// the link extractor scans. A Filter is immutable and safe for
// concurrent use; compile it once and reuse it across pages.
type Filter struct {
	parens *regexp.Regexp
	braces *regexp.Regexp
	refs   *regexp.Regexp
}

// NewFilter compiles the three stripping patterns.
func NewFilter() *Filter {
	return &Filter{
		// Shortest parenthetical run on a single line.
		parens: regexp.MustCompile(`\(.+?\)`),
		// Shortest {{...}} template block, allowed to span lines.
		braces: regexp.MustCompile(`(?s)\{\{.*?\}\}`),
		// Shortest <ref>...</ref> citation on a single line.
		refs: regexp.MustCompile(`<ref>.+?</ref>`),
	}
}

// Normalize applies the three stripping passes in order: parenthetical
// asides first, then template blocks, then citation blocks. Every
// non-overlapping match is replaced with the empty string.
//
// Parentheses go first so that parenthetical content containing braces
// or ref tags cannot shift the boundaries the later passes match on.
func (f *Filter) Normalize(text string) string {
	text = f.parens.ReplaceAllString(text, "")
	text = f.braces.ReplaceAllString(text, "")
	return f.refs.ReplaceAllString(text, "")
}

// Package wikitext normalizes raw wikitext and extracts the first
// qualifying link from it.
//
// Filter strips non-prose markup in three ordered substitution passes
// (parenthetical asides, {{...}} template blocks, <ref>...</ref>
// citations). Extractor then scans the normalized text line by line,
// considers only lines that open like real prose, and returns the
// target of the first [[...]] link construct it finds.
//
// The pass order and the shortest-match semantics of each pattern are
// load-bearing: reordering the passes or making a pattern greedy
// changes which link is found first.
package wikitext

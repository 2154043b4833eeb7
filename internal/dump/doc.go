// Package dump reads MediaWiki XML export files incrementally.
//
// The package provides three pieces: Open, which opens a dump file and
// transparently decompresses bzip2/gzip exports; Scanner, which walks
// the line-oriented stream and yields one raw <page>...</page> block at
// a time without materializing the file; and DecodePage, which parses a
// single block into a model.Page.
//
// Design decision: The segmenter frames records by line comparison
// rather than running a full XML parse over the whole stream. Exports
// are tens of gigabytes; line framing keeps memory bounded to one page
// block and lets the decoder work on small, independent fragments that
// can fail without aborting the stream.
package dump

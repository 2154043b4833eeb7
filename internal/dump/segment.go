package dump

import (
	"bufio"
	"io"
	"strings"
)

// Line buffer sizing for the underlying bufio.Scanner. Wikitext bodies
// occasionally contain very long lines (tables, galleries), so the
// default 64KB token limit is not enough.
const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 16 * 1024 * 1024
)

// Page block delimiter lines, compared after whitespace trimming.
const (
	pageOpen  = "<page>"
	pageClose = "</page>"
)

// Scanner yields raw <page>...</page> blocks from a line-oriented dump
// stream, one block per Scan call. It follows the bufio.Scanner idiom:
//
//	s := dump.NewScanner(r)
//	for s.Scan() {
//		block := s.Block()
//		...
//	}
//	if err := s.Err(); err != nil { ... }
//
// Only the current block is held in memory. A block runs from a line
// whose trimmed text equals "<page>" through the next line whose
// trimmed text equals "</page>", inclusive, with line terminators
// restored. Lines outside any block are dropped. Nested or malformed
// markers are not guarded against: the first open marker starts
// accumulation and the first close marker ends it.
type Scanner struct {
	lines *bufio.Scanner
	block string
	err   error
	done  bool
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)
	return &Scanner{lines: lines}
}

// Scan advances to the next page block. It returns false when the input
// is exhausted or a read error occurred; Err distinguishes the two.
//
// If the input ends while a block is still accumulating, the partial
// block is emitted as a final item so a truncated trailing page is
// still visible to the caller. A read error discards any partial
// accumulation and permanently stops the scanner.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	take := false
	var buf strings.Builder

	for s.lines.Scan() {
		line := s.lines.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == pageOpen {
			take = true
			buf.WriteString(line)
			buf.WriteByte('\n')
			continue
		}

		if trimmed == pageClose {
			buf.WriteString(line)
			buf.WriteByte('\n')
			s.block = buf.String()
			return true
		}

		if take {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}

	s.done = true
	if err := s.lines.Err(); err != nil {
		s.err = err
		return false
	}

	if buf.Len() > 0 {
		s.block = buf.String()
		return true
	}
	return false
}

// Block returns the block produced by the last successful Scan call.
func (s *Scanner) Block() string {
	return s.block
}

// Err returns the first read error encountered, if any. It is nil on
// ordinary end of input.
func (s *Scanner) Err() error {
	return s.err
}

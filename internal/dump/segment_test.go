package dump

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// errReader yields its payload and then fails with the given error.
type errReader struct {
	payload string
	err     error
	read    bool
}

func (r *errReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		n := copy(p, r.payload)
		return n, nil
	}
	return 0, r.err
}

// TestScannerSegmentation verifies block framing over well-formed input.
func TestScannerSegmentation(t *testing.T) {
	t.Parallel()

	t.Run("single block with surrounding noise", func(t *testing.T) {
		t.Parallel()
		input := "<mediawiki>\n<page>\n<title>Dog</title>\n</page>\n</mediawiki>\n"
		s := NewScanner(strings.NewReader(input))

		if !s.Scan() {
			t.Fatalf("expected one block, got none (err: %v)", s.Err())
		}
		want := "<page>\n<title>Dog</title>\n</page>\n"
		if s.Block() != want {
			t.Errorf("block mismatch:\ngot:  %q\nwant: %q", s.Block(), want)
		}
		if s.Scan() {
			t.Errorf("expected no further blocks, got %q", s.Block())
		}
		if s.Err() != nil {
			t.Errorf("expected no error, got %v", s.Err())
		}
	})

	t.Run("multiple blocks in input order", func(t *testing.T) {
		t.Parallel()
		input := strings.Join([]string{
			"<page>", "<title>A</title>", "</page>",
			"ignored between blocks",
			"<page>", "<title>B</title>", "</page>",
			"trailing noise",
		}, "\n") + "\n"
		s := NewScanner(strings.NewReader(input))

		var blocks []string
		for s.Scan() {
			blocks = append(blocks, s.Block())
		}
		if s.Err() != nil {
			t.Fatalf("unexpected error: %v", s.Err())
		}
		if len(blocks) != 2 {
			t.Fatalf("expected 2 blocks, got %d", len(blocks))
		}
		if !strings.Contains(blocks[0], "<title>A</title>") {
			t.Errorf("first block should contain page A, got %q", blocks[0])
		}
		if !strings.Contains(blocks[1], "<title>B</title>") {
			t.Errorf("second block should contain page B, got %q", blocks[1])
		}
		if strings.Contains(blocks[1], "ignored between blocks") {
			t.Errorf("content between blocks must be dropped, got %q", blocks[1])
		}
	})

	t.Run("indented delimiters match after trimming", func(t *testing.T) {
		t.Parallel()
		input := "  <page>\n    <title>C</title>\n  </page>\n"
		s := NewScanner(strings.NewReader(input))

		if !s.Scan() {
			t.Fatal("expected a block from indented delimiters")
		}
		// The verbatim lines keep their indentation.
		if s.Block() != input {
			t.Errorf("block mismatch:\ngot:  %q\nwant: %q", s.Block(), input)
		}
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()
		s := NewScanner(strings.NewReader(""))

		if s.Scan() {
			t.Errorf("expected no blocks, got %q", s.Block())
		}
		if s.Err() != nil {
			t.Errorf("expected no error, got %v", s.Err())
		}
	})

	t.Run("input without page blocks yields nothing", func(t *testing.T) {
		t.Parallel()
		s := NewScanner(strings.NewReader("just\nsome\nlines\n"))

		if s.Scan() {
			t.Errorf("expected no blocks, got %q", s.Block())
		}
	})
}

// TestScannerTrailingPartialBlock verifies that an unterminated final
// block is emitted so truncated dumps remain visible to callers.
func TestScannerTrailingPartialBlock(t *testing.T) {
	t.Parallel()

	input := "<page>\n<title>Cut</title>\n"
	s := NewScanner(strings.NewReader(input))

	if !s.Scan() {
		t.Fatal("expected the partial trailing block to be emitted")
	}
	if s.Block() != input {
		t.Errorf("partial block mismatch:\ngot:  %q\nwant: %q", s.Block(), input)
	}
	if s.Scan() {
		t.Error("expected no blocks after the trailing partial one")
	}
}

// TestScannerReadError verifies that a read failure stops the scanner
// and is reported via Err, discarding any partial accumulation.
func TestScannerReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("disk gone")
	r := &errReader{payload: "<page>\n<title>Doomed</title>\n", err: readErr}
	s := NewScanner(r)

	if s.Scan() {
		t.Fatalf("expected no block after read failure, got %q", s.Block())
	}
	if !errors.Is(s.Err(), readErr) {
		t.Errorf("expected the read error to surface, got %v", s.Err())
	}
	if s.Scan() {
		t.Error("scanner must stay stopped after a read error")
	}
}

// TestScannerCompleteBlockBeforeError verifies that blocks completed
// before a read failure are still delivered.
func TestScannerCompleteBlockBeforeError(t *testing.T) {
	t.Parallel()

	readErr := io.ErrUnexpectedEOF
	r := &errReader{payload: "<page>\n<title>Safe</title>\n</page>\n", err: readErr}
	s := NewScanner(r)

	if !s.Scan() {
		t.Fatalf("expected the completed block, got error %v", s.Err())
	}
	if !strings.Contains(s.Block(), "<title>Safe</title>") {
		t.Errorf("unexpected block %q", s.Block())
	}

	if s.Scan() {
		t.Fatalf("expected the scan to stop at the read error, got %q", s.Block())
	}
	if !errors.Is(s.Err(), readErr) {
		t.Errorf("expected read error, got %v", s.Err())
	}
}

package text2png

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"unicode/utf8"
)

// Comment and blank line detection for LineOptions.SkipComments. The
// fullwidth '＃' counts as a comment marker so CJK study lists work, and the
// fullwidth space U+3000 counts as leading whitespace (Go's \s is ASCII-only).
var (
	commentRe = regexp.MustCompile(`^[\s\x{3000}]*(#|＃)`)
	blankRe   = regexp.MustCompile(`^[\s\x{3000}]*$`)
)

// Line is one line of input text and its 1-based position in the file. The
// position is preserved even when filtering skips lines, so output names
// derived from it stay stable.
type Line struct {
	Index int
	Text  string
}

// LineOptions configures a LineSource.
type LineOptions struct {
	// SkipComments drops lines whose first non-blank rune is '#' or '＃',
	// and lines that are empty or whitespace-only. Off by default: an
	// empty line still produces an (empty) image, keeping output
	// sequencing consistent with input line count.
	SkipComments bool
}

// LineSource lazily yields the lines of a text file, in file order. It
// follows the bufio.Scanner shape: call Scan until it returns false, then
// check Err.
type LineSource struct {
	file    *os.File
	scanner *bufio.Scanner
	opts    LineOptions
	index   int
	line    Line
	err     error
}

// OpenLines opens path for line-by-line reading.
func OpenLines(path string, opts LineOptions) (*LineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	return &LineSource{file: f, scanner: bufio.NewScanner(f), opts: opts}, nil
}

// Scan advances to the next line, reporting false at end of input or on the
// first error.
func (s *LineSource) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.scanner.Scan() {
		s.index++
		text := s.scanner.Text()
		if !utf8.ValidString(text) {
			s.err = fmt.Errorf("%w: line %d", ErrInputDecoding, s.index)
			return false
		}
		if s.opts.SkipComments && (commentRe.MatchString(text) || blankRe.MatchString(text)) {
			continue
		}
		s.line = Line{Index: s.index, Text: text}
		return true
	}
	if err := s.scanner.Err(); err != nil {
		s.err = fmt.Errorf("reading input: %w", err)
	}
	return false
}

// Line returns the line read by the last successful Scan.
func (s *LineSource) Line() Line { return s.line }

// Err returns the first error encountered while scanning, if any.
func (s *LineSource) Err() error { return s.err }

// Close releases the underlying file.
func (s *LineSource) Close() error { return s.file.Close() }

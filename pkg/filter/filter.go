// Package filter implements the line loop: read lines from an input
// stream, evaluate each against a matcher, and emit the ones that match.
package filter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/elementallyXD/minigrep-hw/pkg/matcher"
)

// DefaultMaxLineSize bounds the longest input line the filter accepts.
const DefaultMaxLineSize = 1024 * 1024

// Options configure filtering behavior.
type Options struct {
	// Invert emits lines that do NOT match instead.
	Invert bool

	// LineNumbers prefixes each emitted line with its 1-based number.
	LineNumbers bool

	// MaxLineSize is the longest accepted line in bytes (0 = DefaultMaxLineSize).
	MaxLineSize int

	// Style colorizes emitted lines; nil emits them plain.
	Style *color.Color
}

// Stats summarize one run.
type Stats struct {
	Lines   int // lines read from input
	Matched int // lines emitted to output
}

// Filter drives one matcher over a line stream. It does not own the
// matcher; releasing it is the caller's job.
type Filter struct {
	m    matcher.Matcher
	opts Options
}

// New returns a Filter using m for per-line evaluation.
func New(m matcher.Matcher, opts Options) *Filter {
	if opts.MaxLineSize <= 0 {
		opts.MaxLineSize = DefaultMaxLineSize
	}
	return &Filter{m: m, opts: opts}
}

// Run reads r line by line until EOF, writing matching lines (or, in
// invert mode, non-matching lines) to w in input order. A final line
// without a trailing newline is still scanned. The first scan, read, or
// write failure aborts the run; lines already written stay written.
func (f *Filter) Run(r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	// the initial buffer must not exceed the line limit, or the scanner
	// would accept oversized lines that happen to fit in it
	bufSize := 64 * 1024
	if f.opts.MaxLineSize < bufSize {
		bufSize = f.opts.MaxLineSize
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufSize), f.opts.MaxLineSize)

	for scanner.Scan() {
		// the matcher does not retain the buffer, so the scanner is free
		// to reuse it on the next iteration
		line := scanner.Bytes()
		stats.Lines++

		matched, err := f.m.MatchLine(line)
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", stats.Lines, err)
		}

		if matched == f.opts.Invert {
			continue
		}
		stats.Matched++

		if err := f.emit(w, stats.Lines, line); err != nil {
			return stats, fmt.Errorf("writing output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading input: %w", err)
	}

	return stats, nil
}

func (f *Filter) emit(w io.Writer, lineno int, line []byte) error {
	if f.opts.LineNumbers {
		if _, err := io.WriteString(w, strconv.Itoa(lineno)+":"); err != nil {
			return err
		}
	}

	if f.opts.Style != nil {
		_, err := f.opts.Style.Fprintln(w, string(line))
		return err
	}

	if _, err := w.Write(line); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

// Package minigrep provides a Hyperscan-backed line filter.
//
// A Grep compiles one regular expression once and reuses the compiled
// database and its scratch space for every line it evaluates.
//
// # Basic Usage
//
// Create a Grep and filter a stream:
//
//	g, err := minigrep.New(`^[a-z]+@[a-z.]+$`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer g.Close()
//
//	stats, err := g.Run(os.Stdin, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Fprintf(os.Stderr, "%d of %d lines matched\n", stats.Matched, stats.Lines)
//
// Single lines can be evaluated directly:
//
//	matched, err := g.MatchString("a@b.com")
package minigrep

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/elementallyXD/minigrep-hw/pkg/filter"
	"github.com/elementallyXD/minigrep-hw/pkg/matcher"
)

// Stats summarize one Run. Re-exported for convenience so callers can
// import just this package.
type Stats = filter.Stats

// Grep ties one compiled pattern to the line filter that uses it.
type Grep struct {
	m      matcher.Matcher
	filter *filter.Filter
}

type config struct {
	caseInsensitive bool
	invert          bool
	lineNumbers     bool
	maxLineSize     int
	style           *color.Color
}

// Option configures a Grep.
type Option func(*config)

// WithCaseInsensitive enables caseless matching.
func WithCaseInsensitive() Option {
	return func(c *config) {
		c.caseInsensitive = true
	}
}

// WithInvert emits lines that do NOT match instead.
func WithInvert() Option {
	return func(c *config) {
		c.invert = true
	}
}

// WithLineNumbers prefixes each emitted line with its 1-based number.
func WithLineNumbers() Option {
	return func(c *config) {
		c.lineNumbers = true
	}
}

// WithMaxLineSize sets the longest accepted input line in bytes.
// Default is filter.DefaultMaxLineSize.
func WithMaxLineSize(n int) Option {
	return func(c *config) {
		c.maxLineSize = n
	}
}

// WithStyle colorizes emitted lines with the given formatter.
func WithStyle(style *color.Color) Option {
	return func(c *config) {
		c.style = style
	}
}

// New compiles the pattern and returns a ready-to-run Grep.
// Always call Close when done to release engine resources.
func New(pattern string, opts ...Option) (*Grep, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	m, err := matcher.New(matcher.Config{
		Pattern:         pattern,
		CaseInsensitive: cfg.caseInsensitive,
	})
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}

	f := filter.New(m, filter.Options{
		Invert:      cfg.invert,
		LineNumbers: cfg.lineNumbers,
		MaxLineSize: cfg.maxLineSize,
		Style:       cfg.style,
	})

	return &Grep{m: m, filter: f}, nil
}

// MatchLine reports whether one line matches the pattern.
func (g *Grep) MatchLine(line []byte) (bool, error) {
	return g.m.MatchLine(line)
}

// MatchString reports whether one line matches the pattern.
func (g *Grep) MatchString(line string) (bool, error) {
	return g.m.MatchLine([]byte(line))
}

// Run filters r into w, line by line, in input order.
func (g *Grep) Run(r io.Reader, w io.Writer) (Stats, error) {
	return g.filter.Run(r, w)
}

// Close releases the compiled pattern and its scratch space.
// Safe to call more than once.
func (g *Grep) Close() error {
	return g.m.Close()
}

//go:build cgo && hyperscan

package matcher

import (
	"errors"
	"fmt"

	"github.com/flier/gohs/hyperscan"
)

// errLineMatched is the sentinel the reporter returns to halt a scan
// once a match is recorded. One match is all a boolean predicate needs.
var errLineMatched = errors.New("line matched")

// HyperscanMatcher implements Matcher using a Hyperscan block database.
// The database is compiled once per pattern and one scratch space is
// allocated for it, reused across all scans. The scratch space is not
// safe for concurrent use; MatchLine must not be called concurrently.
type HyperscanMatcher struct {
	db      hyperscan.BlockDatabase // Compiled pattern
	scratch *hyperscan.Scratch      // Per-scan scratch space, tied to db
}

// onLineMatch records the first match event into the *bool context and
// stops the engine from scanning the remainder of the line.
func onLineMatch(id uint, from, to uint64, flags uint, context interface{}) error {
	*context.(*bool) = true
	return errLineMatched
}

// NewHyperscan compiles the pattern into a block-mode database and
// allocates its scratch space.
func NewHyperscan(cfg Config) (*HyperscanMatcher, error) {
	if err := validatePattern(cfg.Pattern); err != nil {
		return nil, err
	}

	var flags hyperscan.CompileFlag
	if cfg.CaseInsensitive {
		flags |= hyperscan.Caseless
	}

	// Block mode: each line is scanned as one complete, independent
	// buffer. gohs surfaces the hs_compile_error message in the returned
	// error and frees the engine's error struct itself.
	db, err := hyperscan.NewBlockDatabase(hyperscan.NewPattern(cfg.Pattern, flags))
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", cfg.Pattern, err)
	}

	scratch, err := hyperscan.NewScratch(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("allocating scratch space: %w", err)
	}

	return &HyperscanMatcher{db: db, scratch: scratch}, nil
}

// MatchLine scans one line and reports whether the pattern matched.
func (m *HyperscanMatcher) MatchLine(line []byte) (bool, error) {
	matched := false

	err := m.db.Scan(line, m.scratch, onLineMatch, &matched)
	if err != nil && !matched {
		return false, fmt.Errorf("scanning line: %w", err)
	}

	// A terminated-scan status caused by our own reporter is a match,
	// not a failure.
	return matched, nil
}

// Close releases the scratch space, then the database. Safe to call
// more than once.
func (m *HyperscanMatcher) Close() error {
	if m.scratch != nil {
		if err := m.scratch.Free(); err != nil {
			return fmt.Errorf("failed to free scratch: %w", err)
		}
		m.scratch = nil
	}
	if m.db != nil {
		if err := m.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		m.db = nil
	}
	return nil
}

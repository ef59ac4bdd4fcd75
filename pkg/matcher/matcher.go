// Package matcher turns one regular expression into a reusable boolean
// line predicate. Two implementations exist: a Hyperscan-backed one
// (CGO, selected with -tags=hyperscan) and a portable regexp2 one used
// by default builds.
package matcher

import (
	"errors"
	"strings"
)

// Matcher evaluates single lines against one compiled pattern.
type Matcher interface {
	// MatchLine reports whether the line matches the pattern.
	// Line buffers are not retained past the call.
	MatchLine(line []byte) (bool, error)

	// Close releases engine resources (e.g. Hyperscan scratch space).
	// Safe to call more than once.
	Close() error
}

// Config for matcher initialization.
type Config struct {
	// Pattern is the regular expression to compile.
	Pattern string

	// CaseInsensitive enables caseless matching.
	CaseInsensitive bool
}

// ErrNULInPattern is returned when the pattern contains an embedded NUL
// byte, which cannot cross the engine's C string boundary.
var ErrNULInPattern = errors.New("pattern contains an embedded NUL byte")

// validatePattern rejects patterns the engine cannot be handed at all.
// Runs before any engine interaction.
func validatePattern(pattern string) error {
	if strings.IndexByte(pattern, 0) >= 0 {
		return ErrNULInPattern
	}
	return nil
}

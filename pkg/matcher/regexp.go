package matcher

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout guards against catastrophic backtracking in the portable
// engine. Hyperscan has no equivalent failure mode.
const matchTimeout = 5 * time.Second

// PortableMatcher implements Matcher using regexp2 (pure Go, no CGO).
// It is the default build; the Hyperscan implementation is selected with
// -tags=hyperscan. Slower on large inputs, functionally the same boolean
// predicate.
type PortableMatcher struct {
	re *regexp2.Regexp
}

// NewPortable compiles the pattern with regexp2.
func NewPortable(cfg Config) (*PortableMatcher, error) {
	if err := validatePattern(cfg.Pattern); err != nil {
		return nil, err
	}

	opts := regexp2.RegexOptions(regexp2.RE2)
	if cfg.CaseInsensitive {
		opts |= regexp2.IgnoreCase
	}

	// Try RE2 mode first (no backtracking); fall back to the default
	// Perl-compatible mode for constructs RE2 rejects.
	re, err := regexp2.Compile(cfg.Pattern, opts)
	if err != nil {
		re, err = regexp2.Compile(cfg.Pattern, opts&^regexp2.RE2)
		if err != nil {
			return nil, fmt.Errorf("compiling pattern %q: %w", cfg.Pattern, err)
		}
	}
	re.MatchTimeout = matchTimeout

	return &PortableMatcher{re: re}, nil
}

// MatchLine reports whether the line matches the pattern.
func (m *PortableMatcher) MatchLine(line []byte) (bool, error) {
	matched, err := m.re.MatchString(string(line))
	if err != nil {
		return false, fmt.Errorf("scanning line: %w", err)
	}
	return matched, nil
}

// Close is a no-op; the portable engine holds no foreign resources.
func (m *PortableMatcher) Close() error {
	return nil
}

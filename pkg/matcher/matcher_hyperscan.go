//go:build cgo && hyperscan

package matcher

// New creates a Hyperscan-based matcher.
func New(cfg Config) (Matcher, error) {
	return NewHyperscan(cfg)
}

//go:build !cgo || !hyperscan

package matcher

// New creates a regexp2-based matcher (no CGO required).
// For maximum throughput on large inputs, build with CGO_ENABLED=1 and
// -tags=hyperscan to select the Hyperscan implementation instead.
func New(cfg Config) (Matcher, error) {
	return NewPortable(cfg)
}

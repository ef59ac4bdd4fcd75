//go:build !cgo || !hyperscan

package matcher

// hyperscanAvailable returns false when Hyperscan is not compiled in.
func hyperscanAvailable() bool {
	return false
}

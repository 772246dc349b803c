//go:build !amd64 && !arm64

package runtimeopt

// enableDenormalSuppression is a no-op on architectures without a known
// flush-to-zero control. Filter feedback paths still function correctly,
// just without the CPU-stall protection subnormal inputs would otherwise
// need.
func enableDenormalSuppression() {}

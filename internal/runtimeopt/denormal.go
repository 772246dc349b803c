// Package runtimeopt isolates platform-specific CPU feature toggles behind
// explicit initialization functions rather than implicit construction
// side effects. Denormal (subnormal) floats can stall the CPU pipeline by
// orders of magnitude when they appear in a filter's feedback path after
// long silence; flushing them to zero keeps the DSP path's worst-case
// latency bounded.
package runtimeopt

import "sync"

var once sync.Once

// EnableDenormalSuppression enables flush-to-zero and denormals-are-zero
// behavior for floating-point arithmetic on this process, on platforms
// that support it. It is idempotent: only the first call has any effect.
func EnableDenormalSuppression() {
	once.Do(enableDenormalSuppression)
}

//go:build amd64

package runtimeopt

import "golang.org/x/sys/cpu"

// mxcsrFTZDAZ sets the flush-to-zero (bit 15) and denormals-are-zero
// (bit 6) bits of the SSE control/status register.
const mxcsrFTZDAZ = 0x8040

//go:noescape
func getMXCSR() uint32

//go:noescape
func setMXCSR(v uint32)

func enableDenormalSuppression() {
	// MXCSR is an SSE register; HasSSE2 is Go's own minimum amd64
	// baseline, so this is always true in practice, but we still probe
	// it rather than assume it so the intent (gate on feature, not on
	// GOARCH alone) survives if that baseline ever changes.
	if !cpu.X86.HasSSE2 {
		return
	}
	setMXCSR(getMXCSR() | mxcsrFTZDAZ)
}

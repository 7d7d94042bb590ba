//go:build arm64

package rtm

import "golang.org/x/sys/cpu"

func init() {
	// Check for RTM_NO_SIMD environment variable first
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		currentLevel = DispatchScalar
		currentWidth = 16
		currentName = "scalar"
	}
}

// HasAVX2 returns false on ARM (AVX2 is x86-specific).
func HasAVX2() bool {
	return false
}

// HasAVX512 returns false on ARM (AVX-512 is x86-specific).
func HasAVX512() bool {
	return false
}

//go:build !amd64 && !arm64

package rtm

func init() {
	// Other architectures fall back to scalar mode for now.
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

// HasAVX2 returns false on non-x86 architectures.
func HasAVX2() bool {
	return false
}

// HasAVX512 returns false on non-x86 architectures.
func HasAVX512() bool {
	return false
}

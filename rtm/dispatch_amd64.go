// Copyright 2026 go-rtm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !goexperiment.simd

package rtm

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled. The batch kernels
// run their scalar paths; CPU capability getters still report the real
// hardware so callers can log what a simd-enabled build would use.

var (
	hasAVX2   bool
	hasAVX512 bool
)

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// Without GOEXPERIMENT=simd the vector kernels cannot run, so the
	// dispatch level stays scalar. Build with GOEXPERIMENT=simd for
	// AVX2/AVX512 paths.
	setScalarMode()

	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

// HasAVX2 returns true if the CPU supports AVX2 instructions, whether or
// not this build can use them.
func HasAVX2() bool {
	return hasAVX2
}

// HasAVX512 returns true if the CPU supports AVX-512 instructions, whether
// or not this build can use them.
func HasAVX512() bool {
	return hasAVX512
}

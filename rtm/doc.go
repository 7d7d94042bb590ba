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

// Package rtm provides realtime transform math: 4-wide vectors, unit
// quaternions, affine matrices, and the VQM transform decomposition
// (translation vector + rotation quaternion + 3x3 scale/shear matrix),
// in float32 and float64 precision.
//
// All types are plain values. Every operation is a pure function that
// returns a new value; nothing mutates its inputs, nothing allocates,
// and concurrent use on independently-owned values needs no
// synchronization.
//
// # Conventions
//
// Row-vector convention throughout: points multiply on the left,
//
//	world = MatrixMulPoint3(local, localToWorld)
//	localToWorld = MatrixMul(localToObject, objectToWorld)
//
// and quaternion composition follows the same local-to-parent chaining,
// QuatMul(lhs, rhs) applies lhs first.
//
// # Error handling
//
// There is no failure channel. Operations with preconditions (normalized
// quaternion, non-singular scale/shear for inverses) document them and
// produce unspecified but memory-safe results when violated. Degenerate
// inputs propagate NaN/Inf, which callers detect with the *IsFinite
// functions; VectorNormalize3 is the one guarded path, taking an explicit
// fallback and threshold.
//
// # Backends
//
// The implementations in this package are the portable reference and the
// semantic ground truth. Hardware SIMD kernels live in the batch
// subpackage and are selected at build time (amd64 with GOEXPERIMENT=simd)
// the same way the active dispatch level is reported by CurrentLevel.
// Setting RTM_NO_SIMD forces the scalar level regardless of CPU support.
package rtm

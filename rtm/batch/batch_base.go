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

//go:build !amd64 || !goexperiment.simd

package batch

import "github.com/ajroetker/go-rtm/rtm"

// Pure Go implementations of the batch kernels. The SIMD versions in
// batch_avx2.go replace these via build tags when GOEXPERIMENT=simd is
// enabled on amd64.

// Add32 writes a[i] + b[i] into dst.
func Add32(dst, a, b []float32) { addScalar(dst, a, b, 0) }

// Add64 writes a[i] + b[i] into dst.
func Add64(dst, a, b []float64) { addScalar(dst, a, b, 0) }

// Sub32 writes a[i] - b[i] into dst.
func Sub32(dst, a, b []float32) { subScalar(dst, a, b, 0) }

// Sub64 writes a[i] - b[i] into dst.
func Sub64(dst, a, b []float64) { subScalar(dst, a, b, 0) }

// Mul32 writes a[i] * b[i] into dst.
func Mul32(dst, a, b []float32) { mulScalar(dst, a, b, 0) }

// Mul64 writes a[i] * b[i] into dst.
func Mul64(dst, a, b []float64) { mulScalar(dst, a, b, 0) }

// MulAdd32 writes (a[i] * b[i]) + c[i] into dst with separate rounding.
func MulAdd32(dst, a, b, c []float32) { mulAddScalar(dst, a, b, c, 0) }

// MulAdd64 writes (a[i] * b[i]) + c[i] into dst with separate rounding.
func MulAdd64(dst, a, b, c []float64) { mulAddScalar(dst, a, b, c, 0) }

// Min32 writes the lane-wise minimum of a and b into dst.
func Min32(dst, a, b []float32) { minScalar(dst, a, b, 0) }

// Min64 writes the lane-wise minimum of a and b into dst.
func Min64(dst, a, b []float64) { minScalar(dst, a, b, 0) }

// Max32 writes the lane-wise maximum of a and b into dst.
func Max32(dst, a, b []float32) { maxScalar(dst, a, b, 0) }

// Max64 writes the lane-wise maximum of a and b into dst.
func Max64(dst, a, b []float64) { maxScalar(dst, a, b, 0) }

// Abs32 writes |src[i]| into dst.
func Abs32(dst, src []float32) { absScalar(dst, src, 0) }

// Abs64 writes |src[i]| into dst.
func Abs64(dst, src []float64) { absScalar(dst, src, 0) }

// Sqrt32 writes sqrt(src[i]) into dst.
func Sqrt32(dst, src []float32) { sqrtScalar(dst, src, 0) }

// Sqrt64 writes sqrt(src[i]) into dst.
func Sqrt64(dst, src []float64) { sqrtScalar(dst, src, 0) }

// SqrtReciprocal32 writes 1/sqrt(src[i]) into dst.
func SqrtReciprocal32(dst, src []float32) { sqrtReciprocalScalar(dst, src, 0) }

// SqrtReciprocal64 writes 1/sqrt(src[i]) into dst.
func SqrtReciprocal64(dst, src []float64) { sqrtReciprocalScalar(dst, src, 0) }

// Scale32 writes src[i] * scalar into dst.
func Scale32(dst, src []float32, scalar float32) { scaleScalar(dst, src, scalar, 0) }

// Scale64 writes src[i] * scalar into dst.
func Scale64(dst, src []float64, scalar float64) { scaleScalar(dst, src, scalar, 0) }

// Lerp32 writes start[i] + (end[i] - start[i]) * alpha into dst.
func Lerp32(dst, start, end []float32, alpha float32) { lerpScalar(dst, start, end, alpha, 0) }

// Lerp64 writes start[i] + (end[i] - start[i]) * alpha into dst.
func Lerp64(dst, start, end []float64, alpha float64) { lerpScalar(dst, start, end, alpha, 0) }

// TransformPoints3F transforms a structure-of-arrays point stream by an
// affine matrix, applying translation.
func TransformPoints3F(dstX, dstY, dstZ, srcX, srcY, srcZ []float32, mtx rtm.Matrix3x4F) {
	transformPoints3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
}

// TransformPoints3D transforms a structure-of-arrays point stream by an
// affine matrix, applying translation.
func TransformPoints3D(dstX, dstY, dstZ, srcX, srcY, srcZ []float64, mtx rtm.Matrix3x4D) {
	transformPoints3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
}

// TransformVectors3F transforms a structure-of-arrays direction stream by
// an affine matrix; translation is not applied.
func TransformVectors3F(dstX, dstY, dstZ, srcX, srcY, srcZ []float32, mtx rtm.Matrix3x4F) {
	transformVectors3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
}

// TransformVectors3D transforms a structure-of-arrays direction stream by
// an affine matrix; translation is not applied.
func TransformVectors3D(dstX, dstY, dstZ, srcX, srcY, srcZ []float64, mtx rtm.Matrix3x4D) {
	transformVectors3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
}

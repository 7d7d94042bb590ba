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

// Package batch provides SIMD-accelerated kernels over slices of scalars
// and structure-of-arrays point streams. Every function processes
// min(len(dst), len(inputs)...) elements; the scalar fallback runs when
// the build lacks GOEXPERIMENT=simd, when the CPU lacks AVX2, or when
// RTM_NO_SIMD is set.
//
// Point transforms use separate X/Y/Z slices rather than interleaved
// vectors: one broadcast per matrix element turns the whole stream into
// plain fused multiply-adds.
package batch

import "github.com/ajroetker/go-rtm/rtm"

// Scalar reference kernels. These are the fallback implementations and
// the tail loops of the SIMD paths; the elementwise SIMD kernels mirror
// their exact operation order so both paths round identically.

func addScalar[T rtm.Float](dst, a, b []T, start int) {
	n := min(len(dst), len(a), len(b))
	for i := start; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subScalar[T rtm.Float](dst, a, b []T, start int) {
	n := min(len(dst), len(a), len(b))
	for i := start; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulScalar[T rtm.Float](dst, a, b []T, start int) {
	n := min(len(dst), len(a), len(b))
	for i := start; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func mulAddScalar[T rtm.Float](dst, a, b, c []T, start int) {
	n := min(len(dst), len(a), len(b), len(c))
	for i := start; i < n; i++ {
		// Multiply then add with separate rounding, not fused.
		dst[i] = (a[i] * b[i]) + c[i]
	}
}

func minScalar[T rtm.Float](dst, a, b []T, start int) {
	n := min(len(dst), len(a), len(b))
	for i := start; i < n; i++ {
		dst[i] = rtm.Min(a[i], b[i])
	}
}

func maxScalar[T rtm.Float](dst, a, b []T, start int) {
	n := min(len(dst), len(a), len(b))
	for i := start; i < n; i++ {
		dst[i] = rtm.Max(a[i], b[i])
	}
}

func absScalar[T rtm.Float](dst, src []T, start int) {
	n := min(len(dst), len(src))
	for i := start; i < n; i++ {
		dst[i] = rtm.Abs(src[i])
	}
}

func sqrtScalar[T rtm.Float](dst, src []T, start int) {
	n := min(len(dst), len(src))
	for i := start; i < n; i++ {
		dst[i] = rtm.Sqrt(src[i])
	}
}

func sqrtReciprocalScalar[T rtm.Float](dst, src []T, start int) {
	n := min(len(dst), len(src))
	for i := start; i < n; i++ {
		dst[i] = rtm.SqrtReciprocal(src[i])
	}
}

func scaleScalar[T rtm.Float](dst, src []T, scalar T, start int) {
	n := min(len(dst), len(src))
	for i := start; i < n; i++ {
		dst[i] = src[i] * scalar
	}
}

func lerpScalar[T rtm.Float](dst, start, end []T, alpha T, from int) {
	n := min(len(dst), len(start), len(end))
	for i := from; i < n; i++ {
		dst[i] = rtm.Lerp(start[i], end[i], alpha)
	}
}

func transformPoints3Scalar[T rtm.Float](dstX, dstY, dstZ, srcX, srcY, srcZ []T, mtx rtm.Matrix3x4[T], start int) {
	n := min(len(dstX), len(dstY), len(dstZ), len(srcX), len(srcY), len(srcZ))
	for i := start; i < n; i++ {
		p := rtm.MatrixMulPoint3(rtm.VectorSet3(srcX[i], srcY[i], srcZ[i]), mtx)
		dstX[i] = p.X
		dstY[i] = p.Y
		dstZ[i] = p.Z
	}
}

func transformVectors3Scalar[T rtm.Float](dstX, dstY, dstZ, srcX, srcY, srcZ []T, mtx rtm.Matrix3x4[T], start int) {
	n := min(len(dstX), len(dstY), len(dstZ), len(srcX), len(srcY), len(srcZ))
	for i := start; i < n; i++ {
		v := rtm.MatrixMulVector3(rtm.VectorSet3(srcX[i], srcY[i], srcZ[i]), mtx)
		dstX[i] = v.X
		dstY[i] = v.Y
		dstZ[i] = v.Z
	}
}

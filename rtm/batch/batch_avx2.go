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

//go:build amd64 && goexperiment.simd

package batch

import (
	"simd/archsimd"

	"github.com/ajroetker/go-rtm/rtm"
)

// AVX2 implementations of the batch kernels, 8 float32 or 4 float64 lanes
// per iteration with a scalar tail. Each function falls back to the scalar
// kernel when the detected dispatch level is below AVX2 (SSE2-only CPU or
// RTM_NO_SIMD set).
//
// The elementwise kernels keep the scalar operation order (multiply then
// add, no contraction) so both paths produce bit-identical results. The
// point transforms use fused multiply-adds and are only accurate to within
// normal rounding differences of the scalar path.

func useAVX2() bool {
	return rtm.CurrentLevel() >= rtm.DispatchAVX2
}

// Add32 writes a[i] + b[i] into dst.
func Add32(dst, a, b []float32) {
	if !useAVX2() {
		addScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	addScalar(dst[:n], a, b, i)
}

// Add64 writes a[i] + b[i] into dst.
func Add64(dst, a, b []float64) {
	if !useAVX2() {
		addScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Add(vb).StoreSlice(dst[i:])
	}
	addScalar(dst[:n], a, b, i)
}

// Sub32 writes a[i] - b[i] into dst.
func Sub32(dst, a, b []float32) {
	if !useAVX2() {
		subScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	subScalar(dst[:n], a, b, i)
}

// Sub64 writes a[i] - b[i] into dst.
func Sub64(dst, a, b []float64) {
	if !useAVX2() {
		subScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Sub(vb).StoreSlice(dst[i:])
	}
	subScalar(dst[:n], a, b, i)
}

// Mul32 writes a[i] * b[i] into dst.
func Mul32(dst, a, b []float32) {
	if !useAVX2() {
		mulScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
	}
	mulScalar(dst[:n], a, b, i)
}

// Mul64 writes a[i] * b[i] into dst.
func Mul64(dst, a, b []float64) {
	if !useAVX2() {
		mulScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Mul(vb).StoreSlice(dst[i:])
	}
	mulScalar(dst[:n], a, b, i)
}

// MulAdd32 writes (a[i] * b[i]) + c[i] into dst with separate rounding.
func MulAdd32(dst, a, b, c []float32) {
	if !useAVX2() {
		mulAddScalar(dst, a, b, c, 0)
		return
	}
	n := min(len(dst), len(a), len(b), len(c))
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		vc := archsimd.LoadFloat32x8Slice(c[i:])
		// Mul then Add, not MulAdd: keeps bit-parity with the scalar path.
		va.Mul(vb).Add(vc).StoreSlice(dst[i:])
	}
	mulAddScalar(dst[:n], a, b, c, i)
}

// MulAdd64 writes (a[i] * b[i]) + c[i] into dst with separate rounding.
func MulAdd64(dst, a, b, c []float64) {
	if !useAVX2() {
		mulAddScalar(dst, a, b, c, 0)
		return
	}
	n := min(len(dst), len(a), len(b), len(c))
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		vc := archsimd.LoadFloat64x4Slice(c[i:])
		va.Mul(vb).Add(vc).StoreSlice(dst[i:])
	}
	mulAddScalar(dst[:n], a, b, c, i)
}

// Min32 writes the lane-wise minimum of a and b into dst.
func Min32(dst, a, b []float32) {
	if !useAVX2() {
		minScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Min(vb).StoreSlice(dst[i:])
	}
	minScalar(dst[:n], a, b, i)
}

// Min64 writes the lane-wise minimum of a and b into dst.
func Min64(dst, a, b []float64) {
	if !useAVX2() {
		minScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Min(vb).StoreSlice(dst[i:])
	}
	minScalar(dst[:n], a, b, i)
}

// Max32 writes the lane-wise maximum of a and b into dst.
func Max32(dst, a, b []float32) {
	if !useAVX2() {
		maxScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+8 <= n; i += 8 {
		va := archsimd.LoadFloat32x8Slice(a[i:])
		vb := archsimd.LoadFloat32x8Slice(b[i:])
		va.Max(vb).StoreSlice(dst[i:])
	}
	maxScalar(dst[:n], a, b, i)
}

// Max64 writes the lane-wise maximum of a and b into dst.
func Max64(dst, a, b []float64) {
	if !useAVX2() {
		maxScalar(dst, a, b, 0)
		return
	}
	n := min(len(dst), len(a), len(b))
	i := 0
	for ; i+4 <= n; i += 4 {
		va := archsimd.LoadFloat64x4Slice(a[i:])
		vb := archsimd.LoadFloat64x4Slice(b[i:])
		va.Max(vb).StoreSlice(dst[i:])
	}
	maxScalar(dst[:n], a, b, i)
}

// Abs32 writes |src[i]| into dst.
func Abs32(dst, src []float32) {
	if !useAVX2() {
		absScalar(dst, src, 0)
		return
	}
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		archsimd.LoadFloat32x8Slice(src[i:]).Abs().StoreSlice(dst[i:])
	}
	absScalar(dst[:n], src, i)
}

// Abs64 writes |src[i]| into dst.
func Abs64(dst, src []float64) {
	if !useAVX2() {
		absScalar(dst, src, 0)
		return
	}
	n := min(len(dst), len(src))
	i := 0
	for ; i+4 <= n; i += 4 {
		archsimd.LoadFloat64x4Slice(src[i:]).Abs().StoreSlice(dst[i:])
	}
	absScalar(dst[:n], src, i)
}

// Sqrt32 writes sqrt(src[i]) into dst. VSQRTPS is correctly rounded, so
// this matches the scalar path exactly.
func Sqrt32(dst, src []float32) {
	if !useAVX2() {
		sqrtScalar(dst, src, 0)
		return
	}
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		archsimd.LoadFloat32x8Slice(src[i:]).Sqrt().StoreSlice(dst[i:])
	}
	sqrtScalar(dst[:n], src, i)
}

// Sqrt64 writes sqrt(src[i]) into dst.
func Sqrt64(dst, src []float64) {
	if !useAVX2() {
		sqrtScalar(dst, src, 0)
		return
	}
	n := min(len(dst), len(src))
	i := 0
	for ; i+4 <= n; i += 4 {
		archsimd.LoadFloat64x4Slice(src[i:]).Sqrt().StoreSlice(dst[i:])
	}
	sqrtScalar(dst[:n], src, i)
}

// SqrtReciprocal32 writes 1/sqrt(src[i]) into dst using the VRSQRTPS
// estimate refined with one Newton-Raphson step, accurate to roughly
// 1 ulp of relative error rather than bit-identical to the scalar path.
func SqrtReciprocal32(dst, src []float32) {
	if !useAVX2() {
		sqrtReciprocalScalar(dst, src, 0)
		return
	}
	half := archsimd.BroadcastFloat32x8(0.5)
	threeHalves := archsimd.BroadcastFloat32x8(1.5)
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		x := archsimd.LoadFloat32x8Slice(src[i:])
		y := x.ReciprocalSqrt()
		// y' = y * (1.5 - 0.5 * x * y * y)
		y = y.Mul(threeHalves.Sub(half.Mul(x).Mul(y).Mul(y)))
		y.StoreSlice(dst[i:])
	}
	sqrtReciprocalScalar(dst[:n], src, i)
}

// SqrtReciprocal64 writes 1/sqrt(src[i]) into dst. AVX2 has no float64
// rsqrt estimate, so this divides 1 by the exact square root and matches
// the scalar path bit for bit.
func SqrtReciprocal64(dst, src []float64) {
	if !useAVX2() {
		sqrtReciprocalScalar(dst, src, 0)
		return
	}
	one := archsimd.BroadcastFloat64x4(1.0)
	n := min(len(dst), len(src))
	i := 0
	for ; i+4 <= n; i += 4 {
		x := archsimd.LoadFloat64x4Slice(src[i:])
		one.Div(x.Sqrt()).StoreSlice(dst[i:])
	}
	sqrtReciprocalScalar(dst[:n], src, i)
}

// Scale32 writes src[i] * scalar into dst.
func Scale32(dst, src []float32, scalar float32) {
	if !useAVX2() {
		scaleScalar(dst, src, scalar, 0)
		return
	}
	vs := archsimd.BroadcastFloat32x8(scalar)
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		archsimd.LoadFloat32x8Slice(src[i:]).Mul(vs).StoreSlice(dst[i:])
	}
	scaleScalar(dst[:n], src, scalar, i)
}

// Scale64 writes src[i] * scalar into dst.
func Scale64(dst, src []float64, scalar float64) {
	if !useAVX2() {
		scaleScalar(dst, src, scalar, 0)
		return
	}
	vs := archsimd.BroadcastFloat64x4(scalar)
	n := min(len(dst), len(src))
	i := 0
	for ; i+4 <= n; i += 4 {
		archsimd.LoadFloat64x4Slice(src[i:]).Mul(vs).StoreSlice(dst[i:])
	}
	scaleScalar(dst[:n], src, scalar, i)
}

// Lerp32 writes start[i] + (end[i] - start[i]) * alpha into dst.
func Lerp32(dst, start, end []float32, alpha float32) {
	if !useAVX2() {
		lerpScalar(dst, start, end, alpha, 0)
		return
	}
	va := archsimd.BroadcastFloat32x8(alpha)
	n := min(len(dst), len(start), len(end))
	i := 0
	for ; i+8 <= n; i += 8 {
		vs := archsimd.LoadFloat32x8Slice(start[i:])
		ve := archsimd.LoadFloat32x8Slice(end[i:])
		ve.Sub(vs).Mul(va).Add(vs).StoreSlice(dst[i:])
	}
	lerpScalar(dst[:n], start, end, alpha, i)
}

// Lerp64 writes start[i] + (end[i] - start[i]) * alpha into dst.
func Lerp64(dst, start, end []float64, alpha float64) {
	if !useAVX2() {
		lerpScalar(dst, start, end, alpha, 0)
		return
	}
	va := archsimd.BroadcastFloat64x4(alpha)
	n := min(len(dst), len(start), len(end))
	i := 0
	for ; i+4 <= n; i += 4 {
		vs := archsimd.LoadFloat64x4Slice(start[i:])
		ve := archsimd.LoadFloat64x4Slice(end[i:])
		ve.Sub(vs).Mul(va).Add(vs).StoreSlice(dst[i:])
	}
	lerpScalar(dst[:n], start, end, alpha, i)
}

// TransformPoints3F transforms a structure-of-arrays point stream by an
// affine matrix, applying translation. Eight points per iteration; each
// matrix element is broadcast once so the loop body is nine fused
// multiply-adds.
func TransformPoints3F(dstX, dstY, dstZ, srcX, srcY, srcZ []float32, mtx rtm.Matrix3x4F) {
	if !useAVX2() {
		transformPoints3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
		return
	}
	m00 := archsimd.BroadcastFloat32x8(mtx.XAxis.X)
	m01 := archsimd.BroadcastFloat32x8(mtx.XAxis.Y)
	m02 := archsimd.BroadcastFloat32x8(mtx.XAxis.Z)
	m10 := archsimd.BroadcastFloat32x8(mtx.YAxis.X)
	m11 := archsimd.BroadcastFloat32x8(mtx.YAxis.Y)
	m12 := archsimd.BroadcastFloat32x8(mtx.YAxis.Z)
	m20 := archsimd.BroadcastFloat32x8(mtx.ZAxis.X)
	m21 := archsimd.BroadcastFloat32x8(mtx.ZAxis.Y)
	m22 := archsimd.BroadcastFloat32x8(mtx.ZAxis.Z)
	m30 := archsimd.BroadcastFloat32x8(mtx.WAxis.X)
	m31 := archsimd.BroadcastFloat32x8(mtx.WAxis.Y)
	m32 := archsimd.BroadcastFloat32x8(mtx.WAxis.Z)

	n := min(len(dstX), len(dstY), len(dstZ), len(srcX), len(srcY), len(srcZ))
	i := 0
	for ; i+8 <= n; i += 8 {
		px := archsimd.LoadFloat32x8Slice(srcX[i:])
		py := archsimd.LoadFloat32x8Slice(srcY[i:])
		pz := archsimd.LoadFloat32x8Slice(srcZ[i:])

		px.MulAdd(m00, py.MulAdd(m10, pz.MulAdd(m20, m30))).StoreSlice(dstX[i:])
		px.MulAdd(m01, py.MulAdd(m11, pz.MulAdd(m21, m31))).StoreSlice(dstY[i:])
		px.MulAdd(m02, py.MulAdd(m12, pz.MulAdd(m22, m32))).StoreSlice(dstZ[i:])
	}
	transformPoints3Scalar(dstX[:n], dstY, dstZ, srcX, srcY, srcZ, mtx, i)
}

// TransformPoints3D transforms a structure-of-arrays point stream by an
// affine matrix, applying translation. Four points per iteration.
func TransformPoints3D(dstX, dstY, dstZ, srcX, srcY, srcZ []float64, mtx rtm.Matrix3x4D) {
	if !useAVX2() {
		transformPoints3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
		return
	}
	m00 := archsimd.BroadcastFloat64x4(mtx.XAxis.X)
	m01 := archsimd.BroadcastFloat64x4(mtx.XAxis.Y)
	m02 := archsimd.BroadcastFloat64x4(mtx.XAxis.Z)
	m10 := archsimd.BroadcastFloat64x4(mtx.YAxis.X)
	m11 := archsimd.BroadcastFloat64x4(mtx.YAxis.Y)
	m12 := archsimd.BroadcastFloat64x4(mtx.YAxis.Z)
	m20 := archsimd.BroadcastFloat64x4(mtx.ZAxis.X)
	m21 := archsimd.BroadcastFloat64x4(mtx.ZAxis.Y)
	m22 := archsimd.BroadcastFloat64x4(mtx.ZAxis.Z)
	m30 := archsimd.BroadcastFloat64x4(mtx.WAxis.X)
	m31 := archsimd.BroadcastFloat64x4(mtx.WAxis.Y)
	m32 := archsimd.BroadcastFloat64x4(mtx.WAxis.Z)

	n := min(len(dstX), len(dstY), len(dstZ), len(srcX), len(srcY), len(srcZ))
	i := 0
	for ; i+4 <= n; i += 4 {
		px := archsimd.LoadFloat64x4Slice(srcX[i:])
		py := archsimd.LoadFloat64x4Slice(srcY[i:])
		pz := archsimd.LoadFloat64x4Slice(srcZ[i:])

		px.MulAdd(m00, py.MulAdd(m10, pz.MulAdd(m20, m30))).StoreSlice(dstX[i:])
		px.MulAdd(m01, py.MulAdd(m11, pz.MulAdd(m21, m31))).StoreSlice(dstY[i:])
		px.MulAdd(m02, py.MulAdd(m12, pz.MulAdd(m22, m32))).StoreSlice(dstZ[i:])
	}
	transformPoints3Scalar(dstX[:n], dstY, dstZ, srcX, srcY, srcZ, mtx, i)
}

// TransformVectors3F transforms a structure-of-arrays direction stream by
// an affine matrix; translation is not applied.
func TransformVectors3F(dstX, dstY, dstZ, srcX, srcY, srcZ []float32, mtx rtm.Matrix3x4F) {
	if !useAVX2() {
		transformVectors3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
		return
	}
	m00 := archsimd.BroadcastFloat32x8(mtx.XAxis.X)
	m01 := archsimd.BroadcastFloat32x8(mtx.XAxis.Y)
	m02 := archsimd.BroadcastFloat32x8(mtx.XAxis.Z)
	m10 := archsimd.BroadcastFloat32x8(mtx.YAxis.X)
	m11 := archsimd.BroadcastFloat32x8(mtx.YAxis.Y)
	m12 := archsimd.BroadcastFloat32x8(mtx.YAxis.Z)
	m20 := archsimd.BroadcastFloat32x8(mtx.ZAxis.X)
	m21 := archsimd.BroadcastFloat32x8(mtx.ZAxis.Y)
	m22 := archsimd.BroadcastFloat32x8(mtx.ZAxis.Z)

	n := min(len(dstX), len(dstY), len(dstZ), len(srcX), len(srcY), len(srcZ))
	i := 0
	for ; i+8 <= n; i += 8 {
		px := archsimd.LoadFloat32x8Slice(srcX[i:])
		py := archsimd.LoadFloat32x8Slice(srcY[i:])
		pz := archsimd.LoadFloat32x8Slice(srcZ[i:])

		px.MulAdd(m00, py.MulAdd(m10, pz.Mul(m20))).StoreSlice(dstX[i:])
		px.MulAdd(m01, py.MulAdd(m11, pz.Mul(m21))).StoreSlice(dstY[i:])
		px.MulAdd(m02, py.MulAdd(m12, pz.Mul(m22))).StoreSlice(dstZ[i:])
	}
	transformVectors3Scalar(dstX[:n], dstY, dstZ, srcX, srcY, srcZ, mtx, i)
}

// TransformVectors3D transforms a structure-of-arrays direction stream by
// an affine matrix; translation is not applied.
func TransformVectors3D(dstX, dstY, dstZ, srcX, srcY, srcZ []float64, mtx rtm.Matrix3x4D) {
	if !useAVX2() {
		transformVectors3Scalar(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx, 0)
		return
	}
	m00 := archsimd.BroadcastFloat64x4(mtx.XAxis.X)
	m01 := archsimd.BroadcastFloat64x4(mtx.XAxis.Y)
	m02 := archsimd.BroadcastFloat64x4(mtx.XAxis.Z)
	m10 := archsimd.BroadcastFloat64x4(mtx.YAxis.X)
	m11 := archsimd.BroadcastFloat64x4(mtx.YAxis.Y)
	m12 := archsimd.BroadcastFloat64x4(mtx.YAxis.Z)
	m20 := archsimd.BroadcastFloat64x4(mtx.ZAxis.X)
	m21 := archsimd.BroadcastFloat64x4(mtx.ZAxis.Y)
	m22 := archsimd.BroadcastFloat64x4(mtx.ZAxis.Z)

	n := min(len(dstX), len(dstY), len(dstZ), len(srcX), len(srcY), len(srcZ))
	i := 0
	for ; i+4 <= n; i += 4 {
		px := archsimd.LoadFloat64x4Slice(srcX[i:])
		py := archsimd.LoadFloat64x4Slice(srcY[i:])
		pz := archsimd.LoadFloat64x4Slice(srcZ[i:])

		px.MulAdd(m00, py.MulAdd(m10, pz.Mul(m20))).StoreSlice(dstX[i:])
		px.MulAdd(m01, py.MulAdd(m11, pz.Mul(m21))).StoreSlice(dstY[i:])
		px.MulAdd(m02, py.MulAdd(m12, pz.Mul(m22))).StoreSlice(dstZ[i:])
	}
	transformVectors3Scalar(dstX[:n], dstY, dstZ, srcX, srcY, srcZ, mtx, i)
}

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

package rtm

// MatrixSet3x4 creates a 3x4 affine matrix from three axis rows and a
// translation row.
func MatrixSet3x4[T Float](xAxis, yAxis, zAxis, wAxis Vector4[T]) Matrix3x4[T] {
	return Matrix3x4[T]{XAxis: xAxis, YAxis: yAxis, ZAxis: zAxis, WAxis: wAxis}
}

// Matrix3x4Identity returns the identity transform.
func Matrix3x4Identity[T Float]() Matrix3x4[T] {
	return Matrix3x4[T]{
		XAxis: Vector4[T]{X: 1},
		YAxis: Vector4[T]{Y: 1},
		ZAxis: Vector4[T]{Z: 1},
		WAxis: Vector4[T]{W: 1},
	}
}

// MatrixFromTranslation builds a pure-translation affine matrix.
func MatrixFromTranslation[T Float](translation Vector4[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		XAxis: Vector4[T]{X: 1},
		YAxis: Vector4[T]{Y: 1},
		ZAxis: Vector4[T]{Z: 1},
		WAxis: VectorSet(translation.X, translation.Y, translation.Z, T(1)),
	}
}

// MatrixFromQVV builds the affine matrix for rotation quat, translation,
// and per-axis scale: each rotation row is scaled by its axis' scale
// component. quat must be normalized.
func MatrixFromQVV[T Float](quat Quat[T], translation, scale Vector4[T]) Matrix3x4[T] {
	rotation := Matrix3x3FromQuat(quat)
	return Matrix3x4[T]{
		XAxis: VectorMulScalar(rotation.XAxis, scale.X),
		YAxis: VectorMulScalar(rotation.YAxis, scale.Y),
		ZAxis: VectorMulScalar(rotation.ZAxis, scale.Z),
		WAxis: VectorSet(translation.X, translation.Y, translation.Z, T(1)),
	}
}

// MatrixGetAxis returns the requested row; AxisW is the translation row.
func MatrixGetAxis[T Float](input Matrix3x4[T], axis Axis4) Vector4[T] {
	switch axis {
	case AxisX:
		return input.XAxis
	case AxisY:
		return input.YAxis
	case AxisZ:
		return input.ZAxis
	case AxisW:
		return input.WAxis
	default:
		panic("rtm: invalid matrix axis")
	}
}

// MatrixMul multiplies two affine matrices:
// localToWorld = MatrixMul(localToObject, objectToWorld).
func MatrixMul[T Float](lhs, rhs Matrix3x4[T]) Matrix3x4[T] {
	xAxis := VectorMulScalar(rhs.XAxis, lhs.XAxis.X)
	xAxis = VectorMulAddScalar(rhs.YAxis, lhs.XAxis.Y, xAxis)
	xAxis = VectorMulAddScalar(rhs.ZAxis, lhs.XAxis.Z, xAxis)

	yAxis := VectorMulScalar(rhs.XAxis, lhs.YAxis.X)
	yAxis = VectorMulAddScalar(rhs.YAxis, lhs.YAxis.Y, yAxis)
	yAxis = VectorMulAddScalar(rhs.ZAxis, lhs.YAxis.Z, yAxis)

	zAxis := VectorMulScalar(rhs.XAxis, lhs.ZAxis.X)
	zAxis = VectorMulAddScalar(rhs.YAxis, lhs.ZAxis.Y, zAxis)
	zAxis = VectorMulAddScalar(rhs.ZAxis, lhs.ZAxis.Z, zAxis)

	wAxis := VectorMulScalar(rhs.XAxis, lhs.WAxis.X)
	wAxis = VectorMulAddScalar(rhs.YAxis, lhs.WAxis.Y, wAxis)
	wAxis = VectorMulAddScalar(rhs.ZAxis, lhs.WAxis.Z, wAxis)
	wAxis = VectorAdd(rhs.WAxis, wAxis)

	return Matrix3x4[T]{XAxis: xAxis, YAxis: yAxis, ZAxis: zAxis, WAxis: wAxis}
}

// MatrixMulPoint3 transforms a 3D point, applying translation:
// worldPosition = MatrixMulPoint3(localPosition, localToWorld).
func MatrixMulPoint3[T Float](point Vector4[T], mtx Matrix3x4[T]) Vector4[T] {
	tmp0 := VectorMulScalar(mtx.XAxis, point.X)
	tmp0 = VectorMulAddScalar(mtx.YAxis, point.Y, tmp0)
	tmp1 := VectorMulAddScalar(mtx.ZAxis, point.Z, mtx.WAxis)
	return VectorAdd(tmp0, tmp1)
}

// MatrixMulVector3 transforms a 3D direction; translation is not applied.
func MatrixMulVector3[T Float](vec Vector4[T], mtx Matrix3x4[T]) Vector4[T] {
	tmp := VectorMulScalar(mtx.XAxis, vec.X)
	tmp = VectorMulAddScalar(mtx.YAxis, vec.Y, tmp)
	return VectorMulAddScalar(mtx.ZAxis, vec.Z, tmp)
}

// MatrixTranspose transposes the 3x4 matrix together with its implicit
// [0,0,0,1] column. The result is a generic 4x4 matrix and no longer
// affine: its last row is not [0,0,0,1].
func MatrixTranspose[T Float](input Matrix3x4[T]) Matrix4x4[T] {
	return Matrix4x4Transpose(Matrix4x4FromMatrix3x4(input))
}

// MatrixInverse computes the full cofactor-based inverse of the affine
// matrix, treating it as a 4x4 with the implicit [0,0,0,1] column made
// explicit. Exact up to floating-point rounding; undefined if the
// determinant is exactly 0.
func MatrixInverse[T Float](input Matrix3x4[T]) Matrix3x4[T] {
	inverse := Matrix4x4Inverse(Matrix4x4FromMatrix3x4(input))
	return Matrix3x4FromMatrix4x4(inverse)
}

// MatrixRemoveScale re-normalizes each axis row, leaving directions and
// translation unchanged. Shear is discarded, not preserved. Undefined for
// a zero-length axis.
func MatrixRemoveScale[T Float](input Matrix3x4[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		XAxis: VectorNormalize3(input.XAxis, input.XAxis, T(DefaultNormalizeThreshold)),
		YAxis: VectorNormalize3(input.YAxis, input.YAxis, T(DefaultNormalizeThreshold)),
		ZAxis: VectorNormalize3(input.ZAxis, input.ZAxis, T(DefaultNormalizeThreshold)),
		WAxis: input.WAxis,
	}
}

// QuatFromMatrix extracts the rotation from an affine matrix whose axes
// are orthonormal (use MatrixRemoveScale first if they are not).
func QuatFromMatrix[T Float](input Matrix3x4[T]) Quat[T] {
	return quatFromAxes(input.XAxis, input.YAxis, input.ZAxis)
}

// quatFromAxes is the standard trace-based conversion with the usual
// branch on the largest diagonal element for stability.
func quatFromAxes[T Float](xAxis, yAxis, zAxis Vector4[T]) Quat[T] {
	trace := xAxis.X + yAxis.Y + zAxis.Z
	if trace > 0 {
		s := Sqrt(trace + 1)
		invS := T(0.5) / s
		return QuatNormalize(Quat[T]{
			X: (yAxis.Z - zAxis.Y) * invS,
			Y: (zAxis.X - xAxis.Z) * invS,
			Z: (xAxis.Y - yAxis.X) * invS,
			W: s * T(0.5),
		})
	}
	if xAxis.X >= yAxis.Y && xAxis.X >= zAxis.Z {
		s := Sqrt(1 + xAxis.X - yAxis.Y - zAxis.Z)
		invS := T(0.5) / s
		return QuatNormalize(Quat[T]{
			X: s * T(0.5),
			Y: (xAxis.Y + yAxis.X) * invS,
			Z: (xAxis.Z + zAxis.X) * invS,
			W: (yAxis.Z - zAxis.Y) * invS,
		})
	}
	if yAxis.Y > zAxis.Z {
		s := Sqrt(1 + yAxis.Y - xAxis.X - zAxis.Z)
		invS := T(0.5) / s
		return QuatNormalize(Quat[T]{
			X: (xAxis.Y + yAxis.X) * invS,
			Y: s * T(0.5),
			Z: (yAxis.Z + zAxis.Y) * invS,
			W: (zAxis.X - xAxis.Z) * invS,
		})
	}
	s := Sqrt(1 + zAxis.Z - xAxis.X - yAxis.Y)
	invS := T(0.5) / s
	return QuatNormalize(Quat[T]{
		X: (xAxis.Z + zAxis.X) * invS,
		Y: (yAxis.Z + zAxis.Y) * invS,
		Z: s * T(0.5),
		W: (xAxis.Y - yAxis.X) * invS,
	})
}

// Matrix3x4IsFinite returns true if all four rows are finite in their
// first three lanes.
func Matrix3x4IsFinite[T Float](input Matrix3x4[T]) bool {
	return VectorIsFinite3(input.XAxis) && VectorIsFinite3(input.YAxis) &&
		VectorIsFinite3(input.ZAxis) && VectorIsFinite3(input.WAxis)
}

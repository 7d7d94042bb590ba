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

// MatrixSet3x3 creates a 3x3 matrix from three row vectors. W lanes are
// carried as given; the algebra below never reads them.
func MatrixSet3x3[T Float](xAxis, yAxis, zAxis Vector4[T]) Matrix3x3[T] {
	return Matrix3x3[T]{XAxis: xAxis, YAxis: yAxis, ZAxis: zAxis}
}

// Matrix3x3Identity returns the identity matrix.
func Matrix3x3Identity[T Float]() Matrix3x3[T] {
	return Matrix3x3[T]{
		XAxis: Vector4[T]{X: 1},
		YAxis: Vector4[T]{Y: 1},
		ZAxis: Vector4[T]{Z: 1},
	}
}

// Matrix3x3FromQuat converts a normalized rotation quaternion into a 3x3
// rotation matrix.
func Matrix3x3FromQuat[T Float](quat Quat[T]) Matrix3x3[T] {
	x2 := quat.X + quat.X
	y2 := quat.Y + quat.Y
	z2 := quat.Z + quat.Z
	xx := quat.X * x2
	xy := quat.X * y2
	xz := quat.X * z2
	yy := quat.Y * y2
	yz := quat.Y * z2
	zz := quat.Z * z2
	wx := quat.W * x2
	wy := quat.W * y2
	wz := quat.W * z2

	return Matrix3x3[T]{
		XAxis: VectorSet(1-(yy+zz), xy+wz, xz-wy, T(0)),
		YAxis: VectorSet(xy-wz, 1-(xx+zz), yz+wx, T(0)),
		ZAxis: VectorSet(xz+wy, yz-wx, 1-(xx+yy), T(0)),
	}
}

// Matrix3x3GetAxis returns the requested row. AxisW is not a valid 3x3
// row and panics.
func Matrix3x3GetAxis[T Float](input Matrix3x3[T], axis Axis4) Vector4[T] {
	switch axis {
	case AxisX:
		return input.XAxis
	case AxisY:
		return input.YAxis
	case AxisZ:
		return input.ZAxis
	default:
		panic("rtm: invalid matrix3x3 axis")
	}
}

// Matrix3x3Mul multiplies two 3x3 matrices with the row-vector chaining
// convention: localToWorld = Matrix3x3Mul(localToObject, objectToWorld).
func Matrix3x3Mul[T Float](lhs, rhs Matrix3x3[T]) Matrix3x3[T] {
	return Matrix3x3[T]{
		XAxis: Matrix3x3MulVector3(lhs.XAxis, rhs),
		YAxis: Matrix3x3MulVector3(lhs.YAxis, rhs),
		ZAxis: Matrix3x3MulVector3(lhs.ZAxis, rhs),
	}
}

// Matrix3x3MulVector3 transforms a 3D vector: vec.X*XAxis + vec.Y*YAxis +
// vec.Z*ZAxis.
func Matrix3x3MulVector3[T Float](vec Vector4[T], mtx Matrix3x3[T]) Vector4[T] {
	tmp := VectorMulScalar(mtx.XAxis, vec.X)
	tmp = VectorMulAddScalar(mtx.YAxis, vec.Y, tmp)
	return VectorMulAddScalar(mtx.ZAxis, vec.Z, tmp)
}

// Matrix3x3Transpose mirrors the matrix across its diagonal. W lanes of
// the result are 0.
func Matrix3x3Transpose[T Float](input Matrix3x3[T]) Matrix3x3[T] {
	return Matrix3x3[T]{
		XAxis: VectorSet3(input.XAxis.X, input.YAxis.X, input.ZAxis.X),
		YAxis: VectorSet3(input.XAxis.Y, input.YAxis.Y, input.ZAxis.Y),
		ZAxis: VectorSet3(input.XAxis.Z, input.YAxis.Z, input.ZAxis.Z),
	}
}

// Matrix3x3Inverse inverts via the cross-product cofactors and a single
// reciprocal of the determinant. Undefined if the determinant is 0; the
// NaN/Inf lanes that result are detectable with Matrix3x3IsFinite.
func Matrix3x3Inverse[T Float](input Matrix3x3[T]) Matrix3x3[T] {
	c0 := VectorCross3(input.YAxis, input.ZAxis)
	c1 := VectorCross3(input.ZAxis, input.XAxis)
	c2 := VectorCross3(input.XAxis, input.YAxis)
	invDet := Reciprocal(VectorDot3(input.XAxis, c0))

	adjugate := Matrix3x3Transpose(MatrixSet3x3(c0, c1, c2))
	return Matrix3x3[T]{
		XAxis: VectorMulScalar(adjugate.XAxis, invDet),
		YAxis: VectorMulScalar(adjugate.YAxis, invDet),
		ZAxis: VectorMulScalar(adjugate.ZAxis, invDet),
	}
}

// Matrix3x3RemoveScale re-normalizes each axis row, discarding scale and
// shear magnitude but keeping direction. Undefined for a zero-length axis.
func Matrix3x3RemoveScale[T Float](input Matrix3x3[T]) Matrix3x3[T] {
	return Matrix3x3[T]{
		XAxis: VectorNormalize3(input.XAxis, input.XAxis, T(DefaultNormalizeThreshold)),
		YAxis: VectorNormalize3(input.YAxis, input.YAxis, T(DefaultNormalizeThreshold)),
		ZAxis: VectorNormalize3(input.ZAxis, input.ZAxis, T(DefaultNormalizeThreshold)),
	}
}

// Matrix3x3IsFinite returns true if every row is finite in its first
// three lanes.
func Matrix3x3IsFinite[T Float](input Matrix3x3[T]) bool {
	return VectorIsFinite3(input.XAxis) && VectorIsFinite3(input.YAxis) && VectorIsFinite3(input.ZAxis)
}

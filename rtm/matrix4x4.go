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

// MatrixSet4x4 creates a generic 4x4 matrix from four row vectors.
func MatrixSet4x4[T Float](xAxis, yAxis, zAxis, wAxis Vector4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{XAxis: xAxis, YAxis: yAxis, ZAxis: zAxis, WAxis: wAxis}
}

// Matrix4x4Identity returns the identity matrix.
func Matrix4x4Identity[T Float]() Matrix4x4[T] {
	return Matrix4x4[T]{
		XAxis: Vector4[T]{X: 1},
		YAxis: Vector4[T]{Y: 1},
		ZAxis: Vector4[T]{Z: 1},
		WAxis: Vector4[T]{W: 1},
	}
}

// Matrix4x4GetAxis returns the requested row.
func Matrix4x4GetAxis[T Float](input Matrix4x4[T], axis Axis4) Vector4[T] {
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

// Matrix4x4Mul multiplies two generic 4x4 matrices with the row-vector
// chaining convention.
func Matrix4x4Mul[T Float](lhs, rhs Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		XAxis: Matrix4x4MulPoint4(lhs.XAxis, rhs),
		YAxis: Matrix4x4MulPoint4(lhs.YAxis, rhs),
		ZAxis: Matrix4x4MulPoint4(lhs.ZAxis, rhs),
		WAxis: Matrix4x4MulPoint4(lhs.WAxis, rhs),
	}
}

// Matrix4x4MulPoint4 transforms a homogeneous 4D point.
func Matrix4x4MulPoint4[T Float](point Vector4[T], mtx Matrix4x4[T]) Vector4[T] {
	tmp := VectorMulScalar(mtx.XAxis, point.X)
	tmp = VectorMulAddScalar(mtx.YAxis, point.Y, tmp)
	tmp = VectorMulAddScalar(mtx.ZAxis, point.Z, tmp)
	return VectorMulAddScalar(mtx.WAxis, point.W, tmp)
}

// Matrix4x4Transpose mirrors the matrix across its diagonal.
func Matrix4x4Transpose[T Float](input Matrix4x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		XAxis: VectorSet(input.XAxis.X, input.YAxis.X, input.ZAxis.X, input.WAxis.X),
		YAxis: VectorSet(input.XAxis.Y, input.YAxis.Y, input.ZAxis.Y, input.WAxis.Y),
		ZAxis: VectorSet(input.XAxis.Z, input.YAxis.Z, input.ZAxis.Z, input.WAxis.Z),
		WAxis: VectorSet(input.XAxis.W, input.YAxis.W, input.ZAxis.W, input.WAxis.W),
	}
}

// Matrix4x4Inverse computes the cofactor-based inverse from the 2x2
// sub-determinants of the top and bottom halves, with a single reciprocal
// of the determinant. Undefined if the determinant is exactly 0.
func Matrix4x4Inverse[T Float](input Matrix4x4[T]) Matrix4x4[T] {
	m00, m01, m02, m03 := input.XAxis.X, input.XAxis.Y, input.XAxis.Z, input.XAxis.W
	m10, m11, m12, m13 := input.YAxis.X, input.YAxis.Y, input.YAxis.Z, input.YAxis.W
	m20, m21, m22, m23 := input.ZAxis.X, input.ZAxis.Y, input.ZAxis.Z, input.ZAxis.W
	m30, m31, m32, m33 := input.WAxis.X, input.WAxis.Y, input.WAxis.Z, input.WAxis.W

	s0 := m00*m11 - m01*m10
	s1 := m00*m12 - m02*m10
	s2 := m00*m13 - m03*m10
	s3 := m01*m12 - m02*m11
	s4 := m01*m13 - m03*m11
	s5 := m02*m13 - m03*m12

	c5 := m22*m33 - m23*m32
	c4 := m21*m33 - m23*m31
	c3 := m21*m32 - m22*m31
	c2 := m20*m33 - m23*m30
	c1 := m20*m32 - m22*m30
	c0 := m20*m31 - m21*m30

	invDet := Reciprocal(s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0)

	return Matrix4x4[T]{
		XAxis: VectorSet(
			(m11*c5-m12*c4+m13*c3)*invDet,
			(-m01*c5+m02*c4-m03*c3)*invDet,
			(m31*s5-m32*s4+m33*s3)*invDet,
			(-m21*s5+m22*s4-m23*s3)*invDet,
		),
		YAxis: VectorSet(
			(-m10*c5+m12*c2-m13*c1)*invDet,
			(m00*c5-m02*c2+m03*c1)*invDet,
			(-m30*s5+m32*s2-m33*s1)*invDet,
			(m20*s5-m22*s2+m23*s1)*invDet,
		),
		ZAxis: VectorSet(
			(m10*c4-m11*c2+m13*c0)*invDet,
			(-m00*c4+m01*c2-m03*c0)*invDet,
			(m30*s4-m31*s2+m33*s0)*invDet,
			(-m20*s4+m21*s2-m23*s0)*invDet,
		),
		WAxis: VectorSet(
			(-m10*c3+m11*c1-m12*c0)*invDet,
			(m00*c3-m01*c1+m02*c0)*invDet,
			(-m30*s3+m31*s1-m32*s0)*invDet,
			(m20*s3-m21*s1+m22*s0)*invDet,
		),
	}
}

// Matrix4x4IsFinite returns true if all sixteen components are finite.
func Matrix4x4IsFinite[T Float](input Matrix4x4[T]) bool {
	return VectorIsFinite(input.XAxis) && VectorIsFinite(input.YAxis) &&
		VectorIsFinite(input.ZAxis) && VectorIsFinite(input.WAxis)
}

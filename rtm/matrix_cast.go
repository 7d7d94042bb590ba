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

// Shape conversions between the matrix types and the lane-width casts.
// Widening a 3x4 makes the implicit [0,0,0,1] column explicit; narrowing
// drops the fourth column and assumes it was [0,0,0,1].

// Matrix4x4FromMatrix3x4 widens an affine matrix, writing the implicit
// fourth column explicitly: axis rows get W = 0, the translation row W = 1.
func Matrix4x4FromMatrix3x4[T Float](input Matrix3x4[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		XAxis: VectorSet3(input.XAxis.X, input.XAxis.Y, input.XAxis.Z),
		YAxis: VectorSet3(input.YAxis.X, input.YAxis.Y, input.YAxis.Z),
		ZAxis: VectorSet3(input.ZAxis.X, input.ZAxis.Y, input.ZAxis.Z),
		WAxis: VectorSet(input.WAxis.X, input.WAxis.Y, input.WAxis.Z, T(1)),
	}
}

// Matrix3x4FromMatrix4x4 narrows a 4x4 matrix by dropping its fourth
// column. Lossy unless that column is [0,0,0,1].
func Matrix3x4FromMatrix4x4[T Float](input Matrix4x4[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		XAxis: input.XAxis,
		YAxis: input.YAxis,
		ZAxis: input.ZAxis,
		WAxis: input.WAxis,
	}
}

// Matrix3x4FromMatrix3x3 extends a 3x3 matrix with a zero translation row.
func Matrix3x4FromMatrix3x3[T Float](input Matrix3x3[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		XAxis: input.XAxis,
		YAxis: input.YAxis,
		ZAxis: input.ZAxis,
		WAxis: Vector4[T]{W: 1},
	}
}

// Matrix3x3FromMatrix3x4 drops the translation row of an affine matrix.
func Matrix3x3FromMatrix3x4[T Float](input Matrix3x4[T]) Matrix3x3[T] {
	return Matrix3x3[T]{XAxis: input.XAxis, YAxis: input.YAxis, ZAxis: input.ZAxis}
}

// Matrix4x4FromMatrix3x3 widens a 3x3 matrix into a 4x4 with zero
// translation.
func Matrix4x4FromMatrix3x3[T Float](input Matrix3x3[T]) Matrix4x4[T] {
	return Matrix4x4[T]{
		XAxis: VectorSet3(input.XAxis.X, input.XAxis.Y, input.XAxis.Z),
		YAxis: VectorSet3(input.YAxis.X, input.YAxis.Y, input.YAxis.Z),
		ZAxis: VectorSet3(input.ZAxis.X, input.ZAxis.Y, input.ZAxis.Z),
		WAxis: Vector4[T]{W: 1},
	}
}

// Matrix3x3FromMatrix4x4 keeps the upper-left 3x3 rows of a 4x4 matrix.
func Matrix3x3FromMatrix4x4[T Float](input Matrix4x4[T]) Matrix3x3[T] {
	return Matrix3x3[T]{XAxis: input.XAxis, YAxis: input.YAxis, ZAxis: input.ZAxis}
}

// Matrix3x3CastF converts each component to float32.
func Matrix3x3CastF[T Float](input Matrix3x3[T]) Matrix3x3F {
	return Matrix3x3F{
		XAxis: VectorCastF(input.XAxis),
		YAxis: VectorCastF(input.YAxis),
		ZAxis: VectorCastF(input.ZAxis),
	}
}

// Matrix3x3CastD converts each component to float64.
func Matrix3x3CastD[T Float](input Matrix3x3[T]) Matrix3x3D {
	return Matrix3x3D{
		XAxis: VectorCastD(input.XAxis),
		YAxis: VectorCastD(input.YAxis),
		ZAxis: VectorCastD(input.ZAxis),
	}
}

// Matrix3x4CastF converts each component to float32.
func Matrix3x4CastF[T Float](input Matrix3x4[T]) Matrix3x4F {
	return Matrix3x4F{
		XAxis: VectorCastF(input.XAxis),
		YAxis: VectorCastF(input.YAxis),
		ZAxis: VectorCastF(input.ZAxis),
		WAxis: VectorCastF(input.WAxis),
	}
}

// Matrix3x4CastD converts each component to float64.
func Matrix3x4CastD[T Float](input Matrix3x4[T]) Matrix3x4D {
	return Matrix3x4D{
		XAxis: VectorCastD(input.XAxis),
		YAxis: VectorCastD(input.YAxis),
		ZAxis: VectorCastD(input.ZAxis),
		WAxis: VectorCastD(input.WAxis),
	}
}

// Matrix4x4CastF converts each component to float32.
func Matrix4x4CastF[T Float](input Matrix4x4[T]) Matrix4x4F {
	return Matrix4x4F{
		XAxis: VectorCastF(input.XAxis),
		YAxis: VectorCastF(input.YAxis),
		ZAxis: VectorCastF(input.ZAxis),
		WAxis: VectorCastF(input.WAxis),
	}
}

// Matrix4x4CastD converts each component to float64.
func Matrix4x4CastD[T Float](input Matrix4x4[T]) Matrix4x4D {
	return Matrix4x4D{
		XAxis: VectorCastD(input.XAxis),
		YAxis: VectorCastD(input.YAxis),
		ZAxis: VectorCastD(input.ZAxis),
		WAxis: VectorCastD(input.WAxis),
	}
}

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

// Float is the set of scalar precisions supported by the library.
type Float interface {
	float32 | float64
}

// Vector4 is a 4-wide vector of a fixed scalar precision.
//
// The storage attaches no meaning to the W lane; the consuming operation
// does. Operations suffixed 3 ignore W (reductions) or zero it
// (constructors). A Vector4 also serves as raw storage for a quaternion's
// components via QuatToVector/VectorToQuat.
type Vector4[T Float] struct {
	X, Y, Z, W T
}

// Quat is a rotation quaternion. Callers are expected to keep it
// normalized; operations that assume a unit quaternion say so and do not
// re-normalize on their own.
type Quat[T Float] struct {
	X, Y, Z, W T
}

// Matrix3x3 is a 3x3 matrix stored as three row vectors. The W lane of
// each row is implicitly 0.
type Matrix3x3[T Float] struct {
	XAxis, YAxis, ZAxis Vector4[T]
}

// Matrix3x4 is an affine transform stored as three axis rows plus a
// translation row, with an implicit [0,0,0,1] last column. Axis rows carry
// W=0 and the translation row W=1.
type Matrix3x4[T Float] struct {
	XAxis, YAxis, ZAxis, WAxis Vector4[T]
}

// Matrix4x4 is a generic 4x4 matrix stored as four row vectors. Unlike
// Matrix3x4 it makes no affine guarantee; it is what a general transpose
// of an affine matrix produces.
type Matrix4x4[T Float] struct {
	XAxis, YAxis, ZAxis, WAxis Vector4[T]
}

// VQM is an affine transform decomposed as translation, rotation, and a
// 3x3 scale/shear matrix expressed in the pre-rotation local frame. It
// forms a group under VQMMul/VQMInverse; see those functions for the
// composition law. Rotation is assumed normalized.
type VQM[T Float] struct {
	Rotation    Quat[T]
	Translation Vector4[T]
	XAxis       Vector4[T]
	YAxis       Vector4[T]
	ZAxis       Vector4[T]
}

// Aliases for the two concrete precisions.
type (
	Vector4F = Vector4[float32]
	Vector4D = Vector4[float64]

	QuatF = Quat[float32]
	QuatD = Quat[float64]

	Matrix3x3F = Matrix3x3[float32]
	Matrix3x3D = Matrix3x3[float64]

	Matrix3x4F = Matrix3x4[float32]
	Matrix3x4D = Matrix3x4[float64]

	Matrix4x4F = Matrix4x4[float32]
	Matrix4x4D = Matrix4x4[float64]

	VQMF = VQM[float32]
	VQMD = VQM[float64]
)

// Mix4 selects an input lane for shuffle operations. X..W name the lanes
// of the first input, A..D the lanes of the second.
type Mix4 uint8

const (
	MixX Mix4 = iota
	MixY
	MixZ
	MixW
	MixA
	MixB
	MixC
	MixD
)

// Axis4 names a matrix row.
type Axis4 uint8

const (
	AxisX Axis4 = iota
	AxisY
	AxisZ
	AxisW
)

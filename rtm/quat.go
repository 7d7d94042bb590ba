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

// Unit-quaternion rotations. Composition follows the library-wide
// local-to-parent convention: QuatMul(lhs, rhs) applies lhs first, and a
// quaternion acts on 3D vectors through the sandwich product q * v * q^-1
// without ever building a matrix.

// DefaultQuatNormalizedThreshold bounds |length^2 - 1| in QuatIsNormalized.
const DefaultQuatNormalizedThreshold = 1.0e-5

// QuatSet creates a quaternion from its four components.
func QuatSet[T Float](x, y, z, w T) Quat[T] {
	return Quat[T]{X: x, Y: y, Z: z, W: w}
}

// QuatIdentity returns the identity rotation.
func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{W: 1}
}

// QuatToVector reinterprets a quaternion as raw vector storage.
func QuatToVector[T Float](input Quat[T]) Vector4[T] {
	return Vector4[T]{input.X, input.Y, input.Z, input.W}
}

// VectorToQuat reinterprets vector storage as a quaternion.
func VectorToQuat[T Float](input Vector4[T]) Quat[T] {
	return Quat[T]{input.X, input.Y, input.Z, input.W}
}

// QuatGetX returns the X component.
func QuatGetX[T Float](input Quat[T]) T { return input.X }

// QuatGetY returns the Y component.
func QuatGetY[T Float](input Quat[T]) T { return input.Y }

// QuatGetZ returns the Z component.
func QuatGetZ[T Float](input Quat[T]) T { return input.Z }

// QuatGetW returns the W component.
func QuatGetW[T Float](input Quat[T]) T { return input.W }

// QuatMul multiplies two quaternions such that lhs rotates first:
// QuatMulVector3(v, QuatMul(lhs, rhs)) == QuatMulVector3(QuatMulVector3(v, lhs), rhs).
// Inputs are expected to be normalized.
func QuatMul[T Float](lhs, rhs Quat[T]) Quat[T] {
	return Quat[T]{
		X: rhs.W*lhs.X + rhs.X*lhs.W + rhs.Y*lhs.Z - rhs.Z*lhs.Y,
		Y: rhs.W*lhs.Y - rhs.X*lhs.Z + rhs.Y*lhs.W + rhs.Z*lhs.X,
		Z: rhs.W*lhs.Z + rhs.X*lhs.Y - rhs.Y*lhs.X + rhs.Z*lhs.W,
		W: rhs.W*lhs.W - rhs.X*lhs.X - rhs.Y*lhs.Y - rhs.Z*lhs.Z,
	}
}

// QuatMulVector3 rotates a 3D vector by the sandwich product
// rotation * v * rotation^-1. The input's W lane is ignored and the result
// is a pure vector (W = 0). rotation must be normalized.
func QuatMulVector3[T Float](vec Vector4[T], rotation Quat[T]) Vector4[T] {
	// v' = v + 2r x (r x v + w*v), with r the quaternion's vector part.
	r := VectorSet3(rotation.X, rotation.Y, rotation.Z)
	v := VectorSet3(vec.X, vec.Y, vec.Z)
	t := VectorCross3(r, VectorAdd(VectorCross3(r, v), VectorMulScalar(v, rotation.W)))
	return VectorAdd(v, VectorMulScalar(t, 2))
}

// QuatConjugate negates the vector part. For a normalized quaternion this
// is its inverse.
func QuatConjugate[T Float](input Quat[T]) Quat[T] {
	return Quat[T]{X: -input.X, Y: -input.Y, Z: -input.Z, W: input.W}
}

// QuatNeg negates all four components. The result represents the same
// rotation (quaternion double cover).
func QuatNeg[T Float](input Quat[T]) Quat[T] {
	return Quat[T]{X: -input.X, Y: -input.Y, Z: -input.Z, W: -input.W}
}

// QuatAdd adds component-wise. The result is generally not normalized;
// it is the building block for weighted blending, not a rotation by itself.
func QuatAdd[T Float](lhs, rhs Quat[T]) Quat[T] {
	return Quat[T]{lhs.X + rhs.X, lhs.Y + rhs.Y, lhs.Z + rhs.Z, lhs.W + rhs.W}
}

// QuatMulScalar scales all four components.
func QuatMulScalar[T Float](input Quat[T], scalar T) Quat[T] {
	return Quat[T]{input.X * scalar, input.Y * scalar, input.Z * scalar, input.W * scalar}
}

// QuatDot returns the 4D dot product.
func QuatDot[T Float](lhs, rhs Quat[T]) T {
	return lhs.X*rhs.X + lhs.Y*rhs.Y + lhs.Z*rhs.Z + lhs.W*rhs.W
}

// QuatLengthSquared returns the squared magnitude.
func QuatLengthSquared[T Float](input Quat[T]) T {
	return QuatDot(input, input)
}

// QuatLength returns the magnitude.
func QuatLength[T Float](input Quat[T]) T {
	return Sqrt(QuatLengthSquared(input))
}

// QuatNormalize scales input to unit length. Undefined for a zero
// quaternion.
func QuatNormalize[T Float](input Quat[T]) Quat[T] {
	return QuatMulScalar(input, SqrtReciprocal(QuatLengthSquared(input)))
}

// QuatLerp interpolates component-wise toward end (negated if the inputs
// are in opposite hemispheres) and normalizes the result.
func QuatLerp[T Float](start, end Quat[T], alpha T) Quat[T] {
	if QuatDot(start, end) < 0 {
		end = QuatNeg(end)
	}
	v := VectorLerp(QuatToVector(start), QuatToVector(end), alpha)
	return QuatNormalize(VectorToQuat(v))
}

// QuatFromEuler builds a rotation from intrinsic Euler angles in radians:
// pitch about X, then yaw about Y, then roll about Z.
func QuatFromEuler[T Float](pitch, yaw, roll T) Quat[T] {
	sp, cp := SinCos(pitch * T(0.5))
	sy, cy := SinCos(yaw * T(0.5))
	sr, cr := SinCos(roll * T(0.5))

	qx := Quat[T]{X: sp, W: cp}
	qy := Quat[T]{Y: sy, W: cy}
	qz := Quat[T]{Z: sr, W: cr}
	return QuatMul(QuatMul(qx, qy), qz)
}

// QuatIsFinite returns true if no component is NaN or infinite.
func QuatIsFinite[T Float](input Quat[T]) bool {
	return IsFinite(input.X) && IsFinite(input.Y) && IsFinite(input.Z) && IsFinite(input.W)
}

// QuatIsNormalized returns true if the magnitude is 1 within threshold.
func QuatIsNormalized[T Float](input Quat[T], threshold T) bool {
	return Abs(QuatLengthSquared(input)-1) <= threshold
}

// QuatNearEqual compares two rotations within threshold, treating q and -q
// as the same rotation.
func QuatNearEqual[T Float](lhs, rhs Quat[T], threshold T) bool {
	return VectorAllNearEqual(QuatToVector(lhs), QuatToVector(rhs), threshold) ||
		VectorAllNearEqual(QuatToVector(lhs), QuatToVector(QuatNeg(rhs)), threshold)
}

// QuatCastF converts each component to float32.
func QuatCastF[T Float](input Quat[T]) QuatF {
	return QuatF{float32(input.X), float32(input.Y), float32(input.Z), float32(input.W)}
}

// QuatCastD converts each component to float64.
func QuatCastD[T Float](input Quat[T]) QuatD {
	return QuatD{float64(input.X), float64(input.Y), float64(input.Z), float64(input.W)}
}

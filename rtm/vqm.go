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

// VQM transforms keep rotation (quaternion), translation (vector), and
// scale/shear (3x3 matrix) as separate parts so each interpolates on its
// own terms; the scale/shear matrix never mixes with the rotation the way
// the upper 3x3 of an affine matrix does. The group law and inverse follow
// "The VQM-Group and its Applications" by Michael Aristidou and Xin Li.
// The rotation part is assumed normalized throughout.

// VQMSet creates a VQM transform from a translation, a rotation
// quaternion, and a per-axis 3D scale. The scale/shear part starts as the
// diagonal matrix of the scale.
func VQMSet[T Float](translation Vector4[T], rotation Quat[T], scale Vector4[T]) VQM[T] {
	return VQM[T]{
		Rotation:    rotation,
		Translation: translation,
		XAxis:       Vector4[T]{X: scale.X},
		YAxis:       Vector4[T]{Y: scale.Y},
		ZAxis:       Vector4[T]{Z: scale.Z},
	}
}

// VQMIdentity returns the identity transform.
func VQMIdentity[T Float]() VQM[T] {
	return VQM[T]{
		Rotation: QuatIdentity[T](),
		XAxis:    Vector4[T]{X: 1},
		YAxis:    Vector4[T]{Y: 1},
		ZAxis:    Vector4[T]{Z: 1},
	}
}

// VQMGetRotation returns the rotation part.
func VQMGetRotation[T Float](input VQM[T]) Quat[T] {
	return input.Rotation
}

// VQMSetRotation returns a copy with the rotation part replaced.
func VQMSetRotation[T Float](input VQM[T], rotation Quat[T]) VQM[T] {
	input.Rotation = rotation
	return input
}

// VQMGetTranslation returns the translation part.
func VQMGetTranslation[T Float](input VQM[T]) Vector4[T] {
	return input.Translation
}

// VQMSetTranslation returns a copy with the translation part replaced.
func VQMSetTranslation[T Float](input VQM[T], translation Vector4[T]) VQM[T] {
	input.Translation = translation
	return input
}

// VQMGetScale returns the diagonal of the scale/shear matrix.
func VQMGetScale[T Float](input VQM[T]) Vector4[T] {
	xyxy := VectorMix(input.XAxis, input.YAxis, MixX, MixB, MixX, MixB)
	return VectorMix(xyxy, input.ZAxis, MixX, MixY, MixC, MixD)
}

// VQMSetScale returns a copy with the diagonal of the scale/shear matrix
// replaced. Existing shear (the off-diagonal terms) is preserved.
func VQMSetScale[T Float](input VQM[T], scale Vector4[T]) VQM[T] {
	input.XAxis = VectorSetX(input.XAxis, scale.X)
	input.YAxis = VectorSetY(input.YAxis, scale.Y)
	input.ZAxis = VectorSetZ(input.ZAxis, scale.Z)
	return input
}

// VQMAdd adds two transforms part-wise:
// [v2, q2, M2] + [v1, q1, M1] = [v2 + v1, q2 + q1, M2 + M1].
func VQMAdd[T Float](lhs, rhs VQM[T]) VQM[T] {
	return VQM[T]{
		Rotation:    QuatAdd(lhs.Rotation, rhs.Rotation),
		Translation: VectorAdd(lhs.Translation, rhs.Translation),
		XAxis:       VectorAdd(lhs.XAxis, rhs.XAxis),
		YAxis:       VectorAdd(lhs.YAxis, rhs.YAxis),
		ZAxis:       VectorAdd(lhs.ZAxis, rhs.ZAxis),
	}
}

// VQMMul multiplies two transforms:
// localToWorld = VQMMul(localToObject, objectToWorld).
//
// The group law is
// [v2, q2, M2] * [v1, q1, M1] = [q2*(M2*v1)*q2^-1 + v2, q2*q1, (q1^-1*M2*q1)(q1*M1*q1^-1)]
// with the scale/shear product carried out in matrix form after rotating
// each factor's axes through the sandwich product.
func VQMMul[T Float](lhs, rhs VQM[T]) VQM[T] {
	invLhsRotation := QuatConjugate(lhs.Rotation)

	lhsScaleShear := MatrixSet3x3(lhs.XAxis, lhs.YAxis, lhs.ZAxis)
	rhsScaleShear := MatrixSet3x3(rhs.XAxis, rhs.YAxis, rhs.ZAxis)

	rotation := QuatMul(lhs.Rotation, rhs.Rotation)
	translation := VectorAdd(
		QuatMulVector3(Matrix3x3MulVector3(lhs.Translation, rhsScaleShear), rhs.Rotation),
		rhs.Translation)

	rhsScaleShear.XAxis = QuatMulVector3(rhsScaleShear.XAxis, invLhsRotation)
	rhsScaleShear.YAxis = QuatMulVector3(rhsScaleShear.YAxis, invLhsRotation)
	rhsScaleShear.ZAxis = QuatMulVector3(rhsScaleShear.ZAxis, invLhsRotation)

	lhsScaleShear.XAxis = QuatMulVector3(lhsScaleShear.XAxis, lhs.Rotation)
	lhsScaleShear.YAxis = QuatMulVector3(lhsScaleShear.YAxis, lhs.Rotation)
	lhsScaleShear.ZAxis = QuatMulVector3(lhsScaleShear.ZAxis, lhs.Rotation)

	scaleShear := Matrix3x3Mul(lhsScaleShear, rhsScaleShear)
	return VQM[T]{
		Rotation:    rotation,
		Translation: translation,
		XAxis:       scaleShear.XAxis,
		YAxis:       scaleShear.YAxis,
		ZAxis:       scaleShear.ZAxis,
	}
}

// VQMMulScalar scales every part:
// s * [v, q, M] = [s * v, s * q, s * M].
func VQMMulScalar[T Float](input VQM[T], scalar T) VQM[T] {
	return VQM[T]{
		Rotation:    QuatMulScalar(input.Rotation, scalar),
		Translation: VectorMulScalar(input.Translation, scalar),
		XAxis:       VectorMulScalar(input.XAxis, scalar),
		YAxis:       VectorMulScalar(input.YAxis, scalar),
		ZAxis:       VectorMulScalar(input.ZAxis, scalar),
	}
}

// VQMMulPoint3 transforms a 3D point:
// worldPosition = VQMMulPoint3(localPosition, localToWorld).
//
// T * p = (q * (M * p) * q^-1) + v
func VQMMulPoint3[T Float](point Vector4[T], vqm VQM[T]) Vector4[T] {
	scaleShear := MatrixSet3x3(vqm.XAxis, vqm.YAxis, vqm.ZAxis)
	return VectorAdd(
		QuatMulVector3(Matrix3x3MulVector3(point, scaleShear), vqm.Rotation),
		vqm.Translation)
}

// VQMMulVector3 transforms a 3D direction; translation is not applied.
//
// T * d = q * (M * d) * q^-1
func VQMMulVector3[T Float](vec Vector4[T], vqm VQM[T]) Vector4[T] {
	scaleShear := MatrixSet3x3(vqm.XAxis, vqm.YAxis, vqm.ZAxis)
	return QuatMulVector3(Matrix3x3MulVector3(vec, scaleShear), vqm.Rotation)
}

// VQMInverse returns the inverse transform. Undefined if the scale/shear
// matrix is singular (e.g. contains a zero scale); the NaN/Inf parts that
// result are detectable with VQMIsFinite.
//
// T^-1 = [M^-1 * (q^-1 * -v * q), q^-1, q * (q * M * q^-1)^-1 * q^-1]
//
// The scale/shear part reduces to a single matrix inverse: with Mq the
// rotation in matrix form,
// q * (q * M * q^-1)^-1 * q^-1 = (q * M^-1 * q^-1) * (q^-1 * I * q)
// so we invert M once, rotate its axes by q, and multiply by the identity
// axes rotated by q^-1.
func VQMInverse[T Float](input VQM[T]) VQM[T] {
	scaleShear := MatrixSet3x3(input.XAxis, input.YAxis, input.ZAxis)
	invScaleShear := Matrix3x3Inverse(scaleShear)
	invRotation := QuatConjugate(input.Rotation)

	invRotatedScaleShear := Matrix3x3[T]{
		XAxis: QuatMulVector3(invScaleShear.XAxis, input.Rotation),
		YAxis: QuatMulVector3(invScaleShear.YAxis, input.Rotation),
		ZAxis: QuatMulVector3(invScaleShear.ZAxis, input.Rotation),
	}

	identity := Matrix3x3Identity[T]()
	invRotationMtx := Matrix3x3[T]{
		XAxis: QuatMulVector3(identity.XAxis, invRotation),
		YAxis: QuatMulVector3(identity.YAxis, invRotation),
		ZAxis: QuatMulVector3(identity.ZAxis, invRotation),
	}

	invRotatedScaleShear = Matrix3x3Mul(invRotationMtx, invRotatedScaleShear)

	return VQM[T]{
		Rotation: invRotation,
		Translation: Matrix3x3MulVector3(
			QuatMulVector3(VectorNeg(input.Translation), invRotation),
			invScaleShear),
		XAxis: invRotatedScaleShear.XAxis,
		YAxis: invRotatedScaleShear.YAxis,
		ZAxis: invRotatedScaleShear.ZAxis,
	}
}

// VQMToMatrix converts the transform into a 3x4 affine matrix by rotating
// the scale/shear axes into world orientation.
func VQMToMatrix[T Float](input VQM[T]) Matrix3x4[T] {
	return Matrix3x4[T]{
		XAxis: QuatMulVector3(input.XAxis, input.Rotation),
		YAxis: QuatMulVector3(input.YAxis, input.Rotation),
		ZAxis: QuatMulVector3(input.ZAxis, input.Rotation),
		WAxis: input.Translation,
	}
}

// VQMNormalize re-normalizes the rotation part; the other parts are
// returned untouched.
func VQMNormalize[T Float](input VQM[T]) VQM[T] {
	input.Rotation = QuatNormalize(input.Rotation)
	return input
}

// VQMIsFinite returns true if no part contains a NaN or Inf. Only the
// first three lanes of the vector parts are inspected.
func VQMIsFinite[T Float](input VQM[T]) bool {
	return QuatIsFinite(input.Rotation) &&
		VectorIsFinite3(input.Translation) &&
		VectorIsFinite3(input.XAxis) &&
		VectorIsFinite3(input.YAxis) &&
		VectorIsFinite3(input.ZAxis)
}

// VQMCastF converts every part to float32.
func VQMCastF[T Float](input VQM[T]) VQMF {
	return VQMF{
		Rotation:    QuatCastF(input.Rotation),
		Translation: VectorCastF(input.Translation),
		XAxis:       VectorCastF(input.XAxis),
		YAxis:       VectorCastF(input.YAxis),
		ZAxis:       VectorCastF(input.ZAxis),
	}
}

// VQMCastD converts every part to float64.
func VQMCastD[T Float](input VQM[T]) VQMD {
	return VQMD{
		Rotation:    QuatCastD(input.Rotation),
		Translation: VectorCastD(input.Translation),
		XAxis:       VectorCastD(input.XAxis),
		YAxis:       VectorCastD(input.YAxis),
		ZAxis:       VectorCastD(input.ZAxis),
	}
}

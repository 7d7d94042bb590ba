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

// Portable reference implementations of the Vector4 primitives. These
// define the numerical contract that any accelerated backend must match;
// the batch subpackage's SIMD kernels are cross-checked against them.

// DefaultNormalizeThreshold is the squared-length threshold below which
// VectorNormalize3 returns its fallback instead of dividing.
const DefaultNormalizeThreshold = 1.0e-8

// VectorSet creates a vector from its four components.
func VectorSet[T Float](x, y, z, w T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z, W: w}
}

// VectorSet3 creates a vector from three components, with W = 0.
func VectorSet3[T Float](x, y, z T) Vector4[T] {
	return Vector4[T]{X: x, Y: y, Z: z}
}

// VectorSplat creates a vector with all four lanes set to v.
func VectorSplat[T Float](v T) Vector4[T] {
	return Vector4[T]{X: v, Y: v, Z: v, W: v}
}

// VectorZero returns the zero vector.
func VectorZero[T Float]() Vector4[T] {
	return Vector4[T]{}
}

// VectorGetX returns the X lane.
func VectorGetX[T Float](input Vector4[T]) T { return input.X }

// VectorGetY returns the Y lane.
func VectorGetY[T Float](input Vector4[T]) T { return input.Y }

// VectorGetZ returns the Z lane.
func VectorGetZ[T Float](input Vector4[T]) T { return input.Z }

// VectorGetW returns the W lane.
func VectorGetW[T Float](input Vector4[T]) T { return input.W }

// VectorGetComponent returns the lane named by component. Second-input
// selectors (MixA..MixD) alias the corresponding lane of input.
func VectorGetComponent[T Float](input Vector4[T], component Mix4) T {
	switch component {
	case MixX, MixA:
		return input.X
	case MixY, MixB:
		return input.Y
	case MixZ, MixC:
		return input.Z
	case MixW, MixD:
		return input.W
	default:
		panic("rtm: invalid mix component")
	}
}

// VectorSetX returns input with the X lane replaced.
func VectorSetX[T Float](input Vector4[T], value T) Vector4[T] {
	input.X = value
	return input
}

// VectorSetY returns input with the Y lane replaced.
func VectorSetY[T Float](input Vector4[T], value T) Vector4[T] {
	input.Y = value
	return input
}

// VectorSetZ returns input with the Z lane replaced.
func VectorSetZ[T Float](input Vector4[T], value T) Vector4[T] {
	input.Z = value
	return input
}

// VectorSetW returns input with the W lane replaced.
func VectorSetW[T Float](input Vector4[T], value T) Vector4[T] {
	input.W = value
	return input
}

// VectorAdd returns lhs + rhs per lane.
func VectorAdd[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{lhs.X + rhs.X, lhs.Y + rhs.Y, lhs.Z + rhs.Z, lhs.W + rhs.W}
}

// VectorSub returns lhs - rhs per lane.
func VectorSub[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{lhs.X - rhs.X, lhs.Y - rhs.Y, lhs.Z - rhs.Z, lhs.W - rhs.W}
}

// VectorMul returns lhs * rhs per lane.
func VectorMul[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{lhs.X * rhs.X, lhs.Y * rhs.Y, lhs.Z * rhs.Z, lhs.W * rhs.W}
}

// VectorMulScalar returns lhs scaled by rhs.
func VectorMulScalar[T Float](lhs Vector4[T], rhs T) Vector4[T] {
	return Vector4[T]{lhs.X * rhs, lhs.Y * rhs, lhs.Z * rhs, lhs.W * rhs}
}

// VectorDiv returns lhs / rhs per lane.
func VectorDiv[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{lhs.X / rhs.X, lhs.Y / rhs.Y, lhs.Z / rhs.Z, lhs.W / rhs.W}
}

// VectorNeg returns -input per lane.
func VectorNeg[T Float](input Vector4[T]) Vector4[T] {
	return Vector4[T]{-input.X, -input.Y, -input.Z, -input.W}
}

// VectorAbs returns |input| per lane.
func VectorAbs[T Float](input Vector4[T]) Vector4[T] {
	return Vector4[T]{Abs(input.X), Abs(input.Y), Abs(input.Z), Abs(input.W)}
}

// VectorMin returns the per-lane minimum.
func VectorMin[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{Min(lhs.X, rhs.X), Min(lhs.Y, rhs.Y), Min(lhs.Z, rhs.Z), Min(lhs.W, rhs.W)}
}

// VectorMax returns the per-lane maximum.
func VectorMax[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{Max(lhs.X, rhs.X), Max(lhs.Y, rhs.Y), Max(lhs.Z, rhs.Z), Max(lhs.W, rhs.W)}
}

// VectorClamp constrains each lane of input to [minValue, maxValue].
func VectorClamp[T Float](input, minValue, maxValue Vector4[T]) Vector4[T] {
	return VectorMin(VectorMax(input, minValue), maxValue)
}

// VectorReciprocal returns 1/input per lane.
//
// Accelerated backends may compute this from a hardware estimate refined
// by Newton-Raphson iteration; such results are only guaranteed within a
// small relative error of the reference, never bit-identical.
func VectorReciprocal[T Float](input Vector4[T]) Vector4[T] {
	return Vector4[T]{Reciprocal(input.X), Reciprocal(input.Y), Reciprocal(input.Z), Reciprocal(input.W)}
}

// VectorFloor rounds each lane toward negative infinity.
func VectorFloor[T Float](input Vector4[T]) Vector4[T] {
	return Vector4[T]{Floor(input.X), Floor(input.Y), Floor(input.Z), Floor(input.W)}
}

// VectorCeil rounds each lane toward positive infinity.
func VectorCeil[T Float](input Vector4[T]) Vector4[T] {
	return Vector4[T]{Ceil(input.X), Ceil(input.Y), Ceil(input.Z), Ceil(input.W)}
}

// VectorFraction returns input - Floor(input) per lane.
func VectorFraction[T Float](input Vector4[T]) Vector4[T] {
	return Vector4[T]{Fraction(input.X), Fraction(input.Y), Fraction(input.Z), Fraction(input.W)}
}

// VectorSign returns 1 for lanes >= 0, -1 otherwise.
func VectorSign[T Float](input Vector4[T]) Vector4[T] {
	return Vector4[T]{Sign(input.X), Sign(input.Y), Sign(input.Z), Sign(input.W)}
}

// VectorMulAdd returns v0*v1 + v2 per lane, with separate rounding of the
// multiply and the add.
func VectorMulAdd[T Float](v0, v1, v2 Vector4[T]) Vector4[T] {
	return Vector4[T]{v0.X*v1.X + v2.X, v0.Y*v1.Y + v2.Y, v0.Z*v1.Z + v2.Z, v0.W*v1.W + v2.W}
}

// VectorMulAddScalar returns v0*s1 + v2 per lane.
func VectorMulAddScalar[T Float](v0 Vector4[T], s1 T, v2 Vector4[T]) Vector4[T] {
	return Vector4[T]{v0.X*s1 + v2.X, v0.Y*s1 + v2.Y, v0.Z*s1 + v2.Z, v0.W*s1 + v2.W}
}

// VectorNegMulSub returns v2 - v0*v1 per lane.
func VectorNegMulSub[T Float](v0, v1, v2 Vector4[T]) Vector4[T] {
	return Vector4[T]{v2.X - v0.X*v1.X, v2.Y - v0.Y*v1.Y, v2.Z - v0.Z*v1.Z, v2.W - v0.W*v1.W}
}

// VectorLerp interpolates per lane from start to end by alpha.
func VectorLerp[T Float](start, end Vector4[T], alpha T) Vector4[T] {
	return Vector4[T]{
		Lerp(start.X, end.X, alpha),
		Lerp(start.Y, end.Y, alpha),
		Lerp(start.Z, end.Z, alpha),
		Lerp(start.W, end.W, alpha),
	}
}

// VectorCross3 returns the 3D cross product; the W lane of the result is 0.
func VectorCross3[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{
		X: lhs.Y*rhs.Z - lhs.Z*rhs.Y,
		Y: lhs.Z*rhs.X - lhs.X*rhs.Z,
		Z: lhs.X*rhs.Y - lhs.Y*rhs.X,
	}
}

// VectorDot returns the 4D dot product.
func VectorDot[T Float](lhs, rhs Vector4[T]) T {
	return lhs.X*rhs.X + lhs.Y*rhs.Y + lhs.Z*rhs.Z + lhs.W*rhs.W
}

// VectorDot3 returns the 3D dot product, ignoring W.
func VectorDot3[T Float](lhs, rhs Vector4[T]) T {
	return lhs.X*rhs.X + lhs.Y*rhs.Y + lhs.Z*rhs.Z
}

// VectorLengthSquared returns the squared 4D length.
func VectorLengthSquared[T Float](input Vector4[T]) T {
	return VectorDot(input, input)
}

// VectorLengthSquared3 returns the squared 3D length.
func VectorLengthSquared3[T Float](input Vector4[T]) T {
	return VectorDot3(input, input)
}

// VectorLength returns the 4D length.
func VectorLength[T Float](input Vector4[T]) T {
	return Sqrt(VectorLengthSquared(input))
}

// VectorLength3 returns the 3D length.
func VectorLength3[T Float](input Vector4[T]) T {
	return Sqrt(VectorLengthSquared3(input))
}

// VectorLengthReciprocal returns 1 / the 4D length.
func VectorLengthReciprocal[T Float](input Vector4[T]) T {
	return SqrtReciprocal(VectorLengthSquared(input))
}

// VectorLengthReciprocal3 returns 1 / the 3D length.
func VectorLengthReciprocal3[T Float](input Vector4[T]) T {
	return SqrtReciprocal(VectorLengthSquared3(input))
}

// VectorDistance3 returns the 3D distance between two points.
func VectorDistance3[T Float](lhs, rhs Vector4[T]) T {
	return VectorLength3(VectorSub(rhs, lhs))
}

// VectorNormalize3 returns input scaled to unit 3D length. If the squared
// 3D length is below threshold, fallback is returned unchanged, guarding
// the near-zero-vector case without a division. The W lane is scaled along
// with the rest.
func VectorNormalize3[T Float](input, fallback Vector4[T], threshold T) Vector4[T] {
	lenSq := VectorLengthSquared3(input)
	if lenSq >= threshold {
		return VectorMulScalar(input, SqrtReciprocal(lenSq))
	}
	return fallback
}

// Comparisons return a mask vector: all-1-bits lanes where the predicate
// holds, all-0-bits lanes where it does not.

// VectorLessThan returns the lhs < rhs lane mask.
func VectorLessThan[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{
		maskLane[T](lhs.X < rhs.X),
		maskLane[T](lhs.Y < rhs.Y),
		maskLane[T](lhs.Z < rhs.Z),
		maskLane[T](lhs.W < rhs.W),
	}
}

// VectorLessEqual returns the lhs <= rhs lane mask.
func VectorLessEqual[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{
		maskLane[T](lhs.X <= rhs.X),
		maskLane[T](lhs.Y <= rhs.Y),
		maskLane[T](lhs.Z <= rhs.Z),
		maskLane[T](lhs.W <= rhs.W),
	}
}

// VectorGreaterThan returns the lhs > rhs lane mask.
func VectorGreaterThan[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{
		maskLane[T](lhs.X > rhs.X),
		maskLane[T](lhs.Y > rhs.Y),
		maskLane[T](lhs.Z > rhs.Z),
		maskLane[T](lhs.W > rhs.W),
	}
}

// VectorGreaterEqual returns the lhs >= rhs lane mask.
func VectorGreaterEqual[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{
		maskLane[T](lhs.X >= rhs.X),
		maskLane[T](lhs.Y >= rhs.Y),
		maskLane[T](lhs.Z >= rhs.Z),
		maskLane[T](lhs.W >= rhs.W),
	}
}

// VectorEqual returns the lhs == rhs lane mask.
func VectorEqual[T Float](lhs, rhs Vector4[T]) Vector4[T] {
	return Vector4[T]{
		maskLane[T](lhs.X == rhs.X),
		maskLane[T](lhs.Y == rhs.Y),
		maskLane[T](lhs.Z == rhs.Z),
		maskLane[T](lhs.W == rhs.W),
	}
}

// VectorSelect blends per lane: ifTrue's bits where the mask lane is set,
// ifFalse's bits elsewhere. The blend is bitwise, so partial masks select
// partial bit patterns.
func VectorSelect[T Float](mask, ifTrue, ifFalse Vector4[T]) Vector4[T] {
	return Vector4[T]{
		selectLane(mask.X, ifTrue.X, ifFalse.X),
		selectLane(mask.Y, ifTrue.Y, ifFalse.Y),
		selectLane(mask.Z, ifTrue.Z, ifFalse.Z),
		selectLane(mask.W, ifTrue.W, ifFalse.W),
	}
}

// VectorAllLessThan returns true if lhs < rhs in all four lanes.
func VectorAllLessThan[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X < rhs.X && lhs.Y < rhs.Y && lhs.Z < rhs.Z && lhs.W < rhs.W
}

// VectorAllLessThan3 returns true if lhs < rhs in the first three lanes.
func VectorAllLessThan3[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X < rhs.X && lhs.Y < rhs.Y && lhs.Z < rhs.Z
}

// VectorAnyLessThan returns true if lhs < rhs in any lane.
func VectorAnyLessThan[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X < rhs.X || lhs.Y < rhs.Y || lhs.Z < rhs.Z || lhs.W < rhs.W
}

// VectorAnyLessThan3 returns true if lhs < rhs in any of the first three lanes.
func VectorAnyLessThan3[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X < rhs.X || lhs.Y < rhs.Y || lhs.Z < rhs.Z
}

// VectorAllLessEqual returns true if lhs <= rhs in all four lanes.
func VectorAllLessEqual[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X <= rhs.X && lhs.Y <= rhs.Y && lhs.Z <= rhs.Z && lhs.W <= rhs.W
}

// VectorAllLessEqual3 returns true if lhs <= rhs in the first three lanes.
func VectorAllLessEqual3[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X <= rhs.X && lhs.Y <= rhs.Y && lhs.Z <= rhs.Z
}

// VectorAnyLessEqual returns true if lhs <= rhs in any lane.
func VectorAnyLessEqual[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X <= rhs.X || lhs.Y <= rhs.Y || lhs.Z <= rhs.Z || lhs.W <= rhs.W
}

// VectorAnyLessEqual3 returns true if lhs <= rhs in any of the first three lanes.
func VectorAnyLessEqual3[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X <= rhs.X || lhs.Y <= rhs.Y || lhs.Z <= rhs.Z
}

// VectorAllGreaterEqual returns true if lhs >= rhs in all four lanes.
func VectorAllGreaterEqual[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X >= rhs.X && lhs.Y >= rhs.Y && lhs.Z >= rhs.Z && lhs.W >= rhs.W
}

// VectorAllGreaterEqual3 returns true if lhs >= rhs in the first three lanes.
func VectorAllGreaterEqual3[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X >= rhs.X && lhs.Y >= rhs.Y && lhs.Z >= rhs.Z
}

// VectorAnyGreaterEqual returns true if lhs >= rhs in any lane.
func VectorAnyGreaterEqual[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X >= rhs.X || lhs.Y >= rhs.Y || lhs.Z >= rhs.Z || lhs.W >= rhs.W
}

// VectorAnyGreaterEqual3 returns true if lhs >= rhs in any of the first three lanes.
func VectorAnyGreaterEqual3[T Float](lhs, rhs Vector4[T]) bool {
	return lhs.X >= rhs.X || lhs.Y >= rhs.Y || lhs.Z >= rhs.Z
}

// VectorAllNearEqual returns true if all four lanes are within threshold.
func VectorAllNearEqual[T Float](lhs, rhs Vector4[T], threshold T) bool {
	delta := VectorAbs(VectorSub(lhs, rhs))
	return VectorAllLessEqual(delta, VectorSplat(threshold))
}

// VectorAllNearEqual3 returns true if the first three lanes are within threshold.
func VectorAllNearEqual3[T Float](lhs, rhs Vector4[T], threshold T) bool {
	delta := VectorAbs(VectorSub(lhs, rhs))
	return VectorAllLessEqual3(delta, VectorSplat(threshold))
}

// VectorAnyNearEqual returns true if any lane is within threshold.
func VectorAnyNearEqual[T Float](lhs, rhs Vector4[T], threshold T) bool {
	delta := VectorAbs(VectorSub(lhs, rhs))
	return VectorAnyLessEqual(delta, VectorSplat(threshold))
}

// VectorAnyNearEqual3 returns true if any of the first three lanes is within threshold.
func VectorAnyNearEqual3[T Float](lhs, rhs Vector4[T], threshold T) bool {
	delta := VectorAbs(VectorSub(lhs, rhs))
	return VectorAnyLessEqual3(delta, VectorSplat(threshold))
}

// VectorIsFinite returns true if no lane is NaN or infinite.
func VectorIsFinite[T Float](input Vector4[T]) bool {
	return IsFinite(input.X) && IsFinite(input.Y) && IsFinite(input.Z) && IsFinite(input.W)
}

// VectorIsFinite3 returns true if none of the first three lanes is NaN or
// infinite.
func VectorIsFinite3[T Float](input Vector4[T]) bool {
	return IsFinite(input.X) && IsFinite(input.Y) && IsFinite(input.Z)
}

// VectorMix builds a vector whose lanes are selected from the eight input
// lanes: MixX..MixW name input0's lanes, MixA..MixD name input1's. The
// per-lane switch below is the semantic reference for every shuffle
// specialization.
func VectorMix[T Float](input0, input1 Vector4[T], c0, c1, c2, c3 Mix4) Vector4[T] {
	return Vector4[T]{
		mixLane(input0, input1, c0),
		mixLane(input0, input1, c1),
		mixLane(input0, input1, c2),
		mixLane(input0, input1, c3),
	}
}

func mixLane[T Float](input0, input1 Vector4[T], c Mix4) T {
	switch c {
	case MixX:
		return input0.X
	case MixY:
		return input0.Y
	case MixZ:
		return input0.Z
	case MixW:
		return input0.W
	case MixA:
		return input1.X
	case MixB:
		return input1.Y
	case MixC:
		return input1.Z
	case MixD:
		return input1.W
	default:
		panic("rtm: invalid mix component")
	}
}

// VectorDupX broadcasts the X lane to all four lanes.
func VectorDupX[T Float](input Vector4[T]) Vector4[T] {
	return VectorSplat(input.X)
}

// VectorDupY broadcasts the Y lane to all four lanes.
func VectorDupY[T Float](input Vector4[T]) Vector4[T] {
	return VectorSplat(input.Y)
}

// VectorDupZ broadcasts the Z lane to all four lanes.
func VectorDupZ[T Float](input Vector4[T]) Vector4[T] {
	return VectorSplat(input.Z)
}

// VectorDupW broadcasts the W lane to all four lanes.
func VectorDupW[T Float](input Vector4[T]) Vector4[T] {
	return VectorSplat(input.W)
}

// VectorCastF converts each lane to float32.
func VectorCastF[T Float](input Vector4[T]) Vector4F {
	return Vector4F{float32(input.X), float32(input.Y), float32(input.Z), float32(input.W)}
}

// VectorCastD converts each lane to float64.
func VectorCastD[T Float](input Vector4[T]) Vector4D {
	return Vector4D{float64(input.X), float64(input.Y), float64(input.Z), float64(input.W)}
}

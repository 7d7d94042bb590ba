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

import "math"

// Scalar primitives shared by the vector/quaternion/matrix layers.
// Transcendentals go through the float64 stdlib and narrow; arithmetic
// stays in the input precision so float32 results round once, like the
// hardware paths they mirror.

// Sqrt returns the square root of v.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// SqrtReciprocal returns 1/sqrt(v).
func SqrtReciprocal[T Float](v T) T {
	return T(1) / Sqrt(v)
}

// Reciprocal returns 1/v.
func Reciprocal[T Float](v T) T {
	return T(1) / v
}

// Floor returns the largest integer value not greater than v.
func Floor[T Float](v T) T {
	return T(math.Floor(float64(v)))
}

// Ceil returns the smallest integer value not less than v.
func Ceil[T Float](v T) T {
	return T(math.Ceil(float64(v)))
}

// Fraction returns v - Floor(v).
func Fraction[T Float](v T) T {
	return v - Floor(v)
}

// Abs returns the absolute value of v, clearing the sign bit so that
// -0.0 maps to +0.0.
func Abs[T Float](v T) T {
	return fromBits[T](toBits(v) &^ signBit[T]())
}

// Min returns the smaller of lhs and rhs.
func Min[T Float](lhs, rhs T) T {
	if rhs < lhs {
		return rhs
	}
	return lhs
}

// Max returns the larger of lhs and rhs.
func Max[T Float](lhs, rhs T) T {
	if rhs > lhs {
		return rhs
	}
	return lhs
}

// Clamp returns v constrained to [minValue, maxValue].
func Clamp[T Float](v, minValue, maxValue T) T {
	return Min(Max(v, minValue), maxValue)
}

// Sign returns 1 if v >= 0, -1 otherwise.
func Sign[T Float](v T) T {
	if v >= 0 {
		return 1
	}
	return -1
}

// Lerp linearly interpolates from start to end by alpha.
func Lerp[T Float](start, end, alpha T) T {
	return start + (end-start)*alpha
}

// IsFinite returns false if v is NaN or infinite.
func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// DegToRad converts degrees to radians.
func DegToRad[T Float](deg T) T {
	return deg * T(math.Pi/180.0)
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](rad T) T {
	return rad * T(180.0/math.Pi)
}

// Sin returns the sine of v (radians).
func Sin[T Float](v T) T {
	return T(math.Sin(float64(v)))
}

// Cos returns the cosine of v (radians).
func Cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}

// SinCos returns the sine and cosine of v (radians).
func SinCos[T Float](v T) (sin, cos T) {
	s, c := math.Sincos(float64(v))
	return T(s), T(c)
}

// Lane bit helpers. Masks hold all-1-bits (true) or all-0-bits (false)
// lanes rather than boolean 0/1, matching what vector compare instructions
// produce; select is then a pure bitwise blend.

func toBits[T Float](v T) uint64 {
	switch f := any(v).(type) {
	case float32:
		return uint64(math.Float32bits(f))
	default:
		return math.Float64bits(any(v).(float64))
	}
}

func fromBits[T Float](bits uint64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(uint32(bits))).(T)
	default:
		return any(math.Float64frombits(bits)).(T)
	}
}

func signBit[T Float]() uint64 {
	var zero T
	switch any(zero).(type) {
	case float32:
		return 1 << 31
	default:
		return 1 << 63
	}
}

func maskLane[T Float](cond bool) T {
	if !cond {
		var zero T
		return zero
	}
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(math.Float32frombits(0xFFFFFFFF)).(T)
	default:
		return any(math.Float64frombits(0xFFFFFFFFFFFFFFFF)).(T)
	}
}

func selectLane[T Float](mask, ifTrue, ifFalse T) T {
	bits := toBits(mask)
	return fromBits[T]((toBits(ifTrue) & bits) | (toBits(ifFalse) &^ bits))
}

func laneTrue[T Float](mask T) bool {
	return toBits(mask) != 0
}

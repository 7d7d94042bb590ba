package rtm

import (
	"math"
	"testing"
)

// The two reference operands reused across the arithmetic tests. The mix
// of small, fractional, and large magnitudes shakes out lane mixups that
// symmetric values would hide.
func testOperands[T Float]() (Vector4[T], Vector4[T]) {
	return VectorSet(T(2.0), T(9.34), T(-54.12), T(6000.0)),
		VectorSet(T(0.75), T(-4.52), T(44.68), T(-54225.0))
}

func vectorCheck[T Float](t *testing.T, name string, got, want Vector4[T], threshold T) {
	t.Helper()
	if !VectorAllNearEqual(got, want, threshold) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func testVectorArithmetic[T Float](t *testing.T, threshold T) {
	a, b := testOperands[T]()

	vectorCheck(t, "add", VectorAdd(a, b), VectorSet(a.X+b.X, a.Y+b.Y, a.Z+b.Z, a.W+b.W), 0)
	vectorCheck(t, "sub", VectorSub(a, b), VectorSet(a.X-b.X, a.Y-b.Y, a.Z-b.Z, a.W-b.W), 0)
	vectorCheck(t, "mul", VectorMul(a, b), VectorSet(a.X*b.X, a.Y*b.Y, a.Z*b.Z, a.W*b.W), 0)
	vectorCheck(t, "div", VectorDiv(a, b), VectorSet(a.X/b.X, a.Y/b.Y, a.Z/b.Z, a.W/b.W), 0)
	vectorCheck(t, "neg", VectorNeg(a), VectorSet(-a.X, -a.Y, -a.Z, -a.W), 0)
	vectorCheck(t, "mul scalar", VectorMulScalar(a, T(3)), VectorSet(a.X*3, a.Y*3, a.Z*3, a.W*3), 0)
	vectorCheck(t, "abs", VectorAbs(b), VectorSet(b.X, -b.Y, b.Z, -b.W), 0)

	vectorCheck(t, "mul add", VectorMulAdd(a, b, a),
		VectorSet(a.X*b.X+a.X, a.Y*b.Y+a.Y, a.Z*b.Z+a.Z, a.W*b.W+a.W), 0)
	vectorCheck(t, "neg mul sub", VectorNegMulSub(a, b, a),
		VectorSet(a.X-a.X*b.X, a.Y-a.Y*b.Y, a.Z-a.Z*b.Z, a.W-a.W*b.W), 0)

	vectorCheck(t, "min", VectorMin(a, b), VectorSet(b.X, b.Y, a.Z, b.W), 0)
	vectorCheck(t, "max", VectorMax(a, b), VectorSet(a.X, a.Y, b.Z, a.W), 0)

	lo, hi := VectorSplat(T(-1)), VectorSplat(T(1))
	vectorCheck(t, "clamp", VectorClamp(a, lo, hi), VectorSet(T(1), T(1), T(-1), T(1)), 0)

	vectorCheck(t, "sign", VectorSign(b), VectorSet(T(1), T(-1), T(1), T(-1)), 0)
	vectorCheck(t, "reciprocal", VectorReciprocal(a),
		VectorSet(1/a.X, 1/a.Y, 1/a.Z, 1/a.W), threshold)
}

func testVectorRounding[T Float](t *testing.T) {
	v := VectorSet(T(1.75), T(-0.25), T(3.0), T(-2.5))
	vectorCheck(t, "floor", VectorFloor(v), VectorSet(T(1), T(-1), T(3), T(-3)), 0)
	vectorCheck(t, "ceil", VectorCeil(v), VectorSet(T(2), T(0), T(3), T(-2)), 0)
	vectorCheck(t, "fraction", VectorFraction(v), VectorSet(T(0.75), T(0.75), T(0), T(0.5)), 0)
}

func testVectorGeometry[T Float](t *testing.T, threshold T) {
	x := VectorSet3(T(1), T(0), T(0))
	y := VectorSet3(T(0), T(1), T(0))
	z := VectorSet3(T(0), T(0), T(1))

	vectorCheck3(t, "x cross y", VectorCross3(x, y), z, threshold)
	vectorCheck3(t, "y cross z", VectorCross3(y, z), x, threshold)
	vectorCheck3(t, "y cross x", VectorCross3(y, x), VectorNeg(z), threshold)

	a, b := testOperands[T]()
	if got, want := VectorDot(a, b), a.X*b.X+a.Y*b.Y+a.Z*b.Z+a.W*b.W; got != want {
		t.Errorf("dot: got %v, want %v", got, want)
	}
	if got, want := VectorDot3(a, b), a.X*b.X+a.Y*b.Y+a.Z*b.Z; got != want {
		t.Errorf("dot3: got %v, want %v", got, want)
	}

	// The cross product is orthogonal to both inputs.
	c := VectorCross3(a, b)
	relThreshold := Max(threshold, threshold*VectorLength3(a)*VectorLength3(a)*VectorLength3(b))
	if got := VectorDot3(c, a); Abs(got) > relThreshold {
		t.Errorf("cross not orthogonal to lhs: %v", got)
	}
	if got := VectorDot3(c, b); Abs(got) > relThreshold {
		t.Errorf("cross not orthogonal to rhs: %v", got)
	}

	v := VectorSet(T(3), T(4), T(12), T(100))
	if got := VectorLength3(v); Abs(got-13) > threshold {
		t.Errorf("length3: got %v", got)
	}
	if got := VectorLengthSquared3(v); got != 169 {
		t.Errorf("lengthsq3: got %v", got)
	}
	if got := VectorLengthReciprocal3(v); Abs(got-T(1.0/13.0)) > threshold {
		t.Errorf("length reciprocal3: got %v", got)
	}
	if got := VectorLength(VectorSet(T(2), T(0), T(0), T(0))); Abs(got-2) > threshold {
		t.Errorf("length4: got %v", got)
	}
	if got := VectorDistance3(VectorSet3(T(1), T(2), T(3)), VectorSet3(T(4), T(6), T(3))); Abs(got-5) > threshold {
		t.Errorf("distance3: got %v", got)
	}
}

func testVectorNormalize[T Float](t *testing.T, threshold T) {
	v := VectorSet3(T(3), T(4), T(12))
	fallback := VectorSet3(T(1), T(0), T(0))

	n := VectorNormalize3(v, fallback, T(DefaultNormalizeThreshold))
	if got := VectorLength3(n); Abs(got-1) > threshold {
		t.Errorf("normalized length: got %v", got)
	}
	vectorCheck3(t, "normalize direction", VectorMulScalar(n, 13), v, threshold*16)

	// Below threshold the fallback comes back untouched.
	tiny := VectorSet3(T(1e-10), T(0), T(0))
	vectorCheck3(t, "normalize fallback",
		VectorNormalize3(tiny, fallback, T(DefaultNormalizeThreshold)), fallback, 0)
	vectorCheck3(t, "normalize zero",
		VectorNormalize3(VectorZero[T](), fallback, T(DefaultNormalizeThreshold)), fallback, 0)
}

func testVectorComparisons[T Float](t *testing.T) {
	a := VectorSet(T(1), T(5), T(3), T(3))
	b := VectorSet(T(2), T(4), T(3), T(1))

	mask := VectorLessThan(a, b)
	if !laneTrue(mask.X) || laneTrue(mask.Y) || laneTrue(mask.Z) || laneTrue(mask.W) {
		t.Errorf("less than mask: %v", mask)
	}
	mask = VectorLessEqual(a, b)
	if !laneTrue(mask.X) || laneTrue(mask.Y) || !laneTrue(mask.Z) || laneTrue(mask.W) {
		t.Errorf("less equal mask: %v", mask)
	}
	mask = VectorGreaterThan(a, b)
	if laneTrue(mask.X) || !laneTrue(mask.Y) || laneTrue(mask.Z) || !laneTrue(mask.W) {
		t.Errorf("greater than mask: %v", mask)
	}
	mask = VectorEqual(a, b)
	if laneTrue(mask.X) || laneTrue(mask.Y) || !laneTrue(mask.Z) || laneTrue(mask.W) {
		t.Errorf("equal mask: %v", mask)
	}

	if VectorAllLessThan(a, b) || !VectorAnyLessThan(a, b) {
		t.Error("all/any less than")
	}
	if !VectorAllLessThan3(VectorSet3(T(0), T(0), T(0)), VectorSet3(T(1), T(1), T(1))) {
		t.Error("all less than 3")
	}
	if !VectorAllLessEqual(a, VectorSet(T(1), T(5), T(3), T(3))) {
		t.Error("all less equal with equal lanes")
	}
	if !VectorAllGreaterEqual(a, VectorSet(T(1), T(5), T(3), T(3))) {
		t.Error("all greater equal with equal lanes")
	}
	if VectorAnyGreaterEqual3(VectorSet3(T(0), T(0), T(0)), VectorSet3(T(1), T(1), T(1))) {
		t.Error("any greater equal 3")
	}
}

func testVectorSelect[T Float](t *testing.T) {
	a, b := testOperands[T]()

	all := VectorGreaterEqual(a, a)
	vectorCheck(t, "select all true", VectorSelect(all, a, b), a, 0)

	none := VectorLessThan(a, a)
	vectorCheck(t, "select all false", VectorSelect(none, a, b), b, 0)

	mask := VectorLessThan(a, b)
	want := Vector4[T]{X: a.X, Y: b.Y, Z: a.Z, W: b.W}
	vectorCheck(t, "select mixed", VectorSelect(mask, a, b), want, 0)
}

func testVectorMix[T Float](t *testing.T) {
	v0 := VectorSet(T(0.0), T(2.34), T(-3.12), T(10000.0))
	v1 := VectorSet(T(1), T(2), T(3), T(4))

	vectorCheck(t, "mix passthrough", VectorMix(v0, v1, MixX, MixY, MixZ, MixW), v0, 0)
	vectorCheck(t, "mix second", VectorMix(v0, v1, MixA, MixB, MixC, MixD), v1, 0)
	vectorCheck(t, "mix interleave", VectorMix(v0, v1, MixX, MixB, MixX, MixB),
		VectorSet(v0.X, v1.Y, v0.X, v1.Y), 0)
	vectorCheck(t, "mix reverse", VectorMix(v0, v1, MixW, MixZ, MixY, MixX),
		VectorSet(v0.W, v0.Z, v0.Y, v0.X), 0)

	vectorCheck(t, "dup x", VectorDupX(v0), VectorSplat(v0.X), 0)
	vectorCheck(t, "dup y", VectorDupY(v0), VectorSplat(v0.Y), 0)
	vectorCheck(t, "dup z", VectorDupZ(v0), VectorSplat(v0.Z), 0)
	vectorCheck(t, "dup w", VectorDupW(v0), VectorSplat(v0.W), 0)
}

func testVectorAccessors[T Float](t *testing.T) {
	v := VectorSet(T(1), T(2), T(3), T(4))
	if VectorGetX(v) != 1 || VectorGetY(v) != 2 || VectorGetZ(v) != 3 || VectorGetW(v) != 4 {
		t.Errorf("getters: %v", v)
	}

	if got := VectorGetComponent(v, MixZ); got != 3 {
		t.Errorf("get component z: %v", got)
	}
	// Second-input selectors alias the same lanes.
	if got := VectorGetComponent(v, MixC); got != 3 {
		t.Errorf("get component c: %v", got)
	}

	v = VectorSetX(v, T(10))
	v = VectorSetY(v, T(20))
	v = VectorSetZ(v, T(30))
	v = VectorSetW(v, T(40))
	vectorCheck(t, "setters", v, VectorSet(T(10), T(20), T(30), T(40)), 0)

	vectorCheck(t, "set3 zeroes w", VectorSet3(T(1), T(2), T(3)), Vector4[T]{X: 1, Y: 2, Z: 3}, 0)
	vectorCheck(t, "zero", VectorZero[T](), Vector4[T]{}, 0)
}

func testVectorLerp[T Float](t *testing.T, threshold T) {
	a, b := testOperands[T]()
	vectorCheck(t, "lerp 0", VectorLerp(a, b, T(0)), a, 0)
	vectorCheck(t, "lerp 1", VectorLerp(a, b, T(1)), b, threshold*T(55000))
	mid := VectorLerp(a, b, T(0.5))
	want := VectorMulScalar(VectorAdd(a, b), T(0.5))
	vectorCheck(t, "lerp 0.5", mid, want, threshold*T(55000))
}

func testVectorImpl[T Float](t *testing.T, threshold T) {
	t.Run("arithmetic", func(t *testing.T) { testVectorArithmetic(t, threshold) })
	t.Run("rounding", func(t *testing.T) { testVectorRounding[T](t) })
	t.Run("geometry", func(t *testing.T) { testVectorGeometry(t, threshold) })
	t.Run("normalize", func(t *testing.T) { testVectorNormalize(t, threshold) })
	t.Run("comparisons", func(t *testing.T) { testVectorComparisons[T](t) })
	t.Run("select", func(t *testing.T) { testVectorSelect[T](t) })
	t.Run("mix", func(t *testing.T) { testVectorMix[T](t) })
	t.Run("accessors", func(t *testing.T) { testVectorAccessors[T](t) })
	t.Run("lerp", func(t *testing.T) { testVectorLerp(t, threshold) })
}

func TestVectorFloat32(t *testing.T) {
	testVectorImpl[float32](t, 1.0e-6)
}

func TestVectorFloat64(t *testing.T) {
	testVectorImpl[float64](t, 1.0e-12)
}

func TestVectorNearEqual(t *testing.T) {
	a := VectorSet(1.0, 2.0, 3.0, 4.0)
	b := VectorSet(1.0005, 2.0, 3.0, 4.0)
	if !VectorAllNearEqual(a, b, 1e-3) {
		t.Error("within threshold should compare equal")
	}
	if VectorAllNearEqual(a, b, 1e-4) {
		t.Error("outside threshold should not compare equal")
	}

	c := VectorSet(1.0005, 50.0, 60.0, 70.0)
	if !VectorAnyNearEqual(a, c, 1e-3) {
		t.Error("one matching lane should satisfy any")
	}
	if !VectorAllNearEqual3(VectorSet(1.0, 2.0, 3.0, 999.0), a, 1e-6) {
		t.Error("w lane must not affect 3-lane compare")
	}
	if VectorAnyNearEqual3(VectorSet(10.0, 20.0, 30.0, 4.0), a, 1e-3) {
		t.Error("w lane must not affect 3-lane any-compare")
	}
}

func TestVectorIsFinite(t *testing.T) {
	a, _ := testOperands[float64]()
	if !VectorIsFinite(a) || !VectorIsFinite3(a) {
		t.Error("finite vector reported non-finite")
	}
	if VectorIsFinite(VectorSet(1.0, math.NaN(), 3.0, 4.0)) {
		t.Error("NaN vector reported finite")
	}
	if VectorIsFinite(VectorSet(1.0, 2.0, 3.0, math.Inf(-1))) {
		t.Error("Inf vector reported finite")
	}
	// The 3-lane variant ignores W.
	if !VectorIsFinite3(VectorSet(1.0, 2.0, 3.0, math.NaN())) {
		t.Error("NaN in w must not affect 3-lane check")
	}
}

func TestVectorMixInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invalid mix component should panic")
		}
	}()
	VectorMix(VectorZero[float32](), VectorZero[float32](), Mix4(42), MixX, MixX, MixX)
}

func TestVectorGetComponentInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("invalid component should panic")
		}
	}()
	VectorGetComponent(VectorZero[float32](), Mix4(8))
}

func TestVectorPrecisionCasts(t *testing.T) {
	v := VectorSet(1.5, -2.25, 3.75, -4.5)
	f := VectorCastF(v)
	if f != (Vector4F{1.5, -2.25, 3.75, -4.5}) {
		t.Errorf("cast to float32: %v", f)
	}
	if got := VectorCastD(f); got != v {
		t.Errorf("round trip: %v", got)
	}
}

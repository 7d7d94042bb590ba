package batch

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-rtm/rtm"
)

// Odd lengths exercise the SIMD tail loops.
var testLengths = []int{0, 1, 3, 7, 8, 9, 16, 31, 64, 100, 257}

// Fixed leading lanes mixing small, negative, and large-magnitude
// operands; the rest of each slice is seeded random.
var (
	lhsLanes32 = []float32{2.0, 9.34, -54.12, 6000.0}
	rhsLanes32 = []float32{0.75, -4.52, 44.68, -54225.0}
	lhsLanes64 = []float64{2.0, 9.34, -54.12, 6000.0}
	rhsLanes64 = []float64{0.75, -4.52, 44.68, -54225.0}
)

func randomSlice32(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = rng.Float32()*200 - 100
	}
	return s
}

func randomSlice64(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*200 - 100
	}
	return s
}

func positiveSlice32(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = rng.Float32()*1000 + 0.001
	}
	return s
}

func positiveSlice64(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*1000 + 0.001
	}
	return s
}

func TestElementwise32(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	kernels := []struct {
		name string
		fn   func(dst, a, b []float32)
		ref  func(dst, a, b []float32, start int)
	}{
		{"add", Add32, addScalar[float32]},
		{"sub", Sub32, subScalar[float32]},
		{"mul", Mul32, mulScalar[float32]},
		{"min", Min32, minScalar[float32]},
		{"max", Max32, maxScalar[float32]},
	}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for _, n := range testLengths {
				a := randomSlice32(rng, n)
				b := randomSlice32(rng, n)
				copy(a, lhsLanes32)
				copy(b, rhsLanes32)
				got := make([]float32, n)
				want := make([]float32, n)
				k.fn(got, a, b)
				k.ref(want, a, b, 0)
				for i := range got {
					if got[i] != want[i] {
						t.Fatalf("n=%d lane %d: got %v, want %v", n, i, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestElementwise64(t *testing.T) {
	rng := rand.New(rand.NewSource(18))
	kernels := []struct {
		name string
		fn   func(dst, a, b []float64)
		ref  func(dst, a, b []float64, start int)
	}{
		{"add", Add64, addScalar[float64]},
		{"sub", Sub64, subScalar[float64]},
		{"mul", Mul64, mulScalar[float64]},
		{"min", Min64, minScalar[float64]},
		{"max", Max64, maxScalar[float64]},
	}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			for _, n := range testLengths {
				a := randomSlice64(rng, n)
				b := randomSlice64(rng, n)
				copy(a, lhsLanes64)
				copy(b, rhsLanes64)
				got := make([]float64, n)
				want := make([]float64, n)
				k.fn(got, a, b)
				k.ref(want, a, b, 0)
				for i := range got {
					if got[i] != want[i] {
						t.Fatalf("n=%d lane %d: got %v, want %v", n, i, got[i], want[i])
					}
				}
			}
		})
	}
}

func TestMulAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	for _, n := range testLengths {
		a := randomSlice32(rng, n)
		b := randomSlice32(rng, n)
		c := randomSlice32(rng, n)
		copy(a, lhsLanes32)
		copy(b, rhsLanes32)
		got := make([]float32, n)
		MulAdd32(got, a, b, c)
		for i := range got {
			if want := (a[i] * b[i]) + c[i]; got[i] != want {
				t.Fatalf("float32 n=%d lane %d: got %v, want %v", n, i, got[i], want)
			}
		}

		a64 := randomSlice64(rng, n)
		b64 := randomSlice64(rng, n)
		c64 := randomSlice64(rng, n)
		copy(a64, lhsLanes64)
		copy(b64, rhsLanes64)
		got64 := make([]float64, n)
		MulAdd64(got64, a64, b64, c64)
		for i := range got64 {
			if want := (a64[i] * b64[i]) + c64[i]; got64[i] != want {
				t.Fatalf("float64 n=%d lane %d: got %v, want %v", n, i, got64[i], want)
			}
		}
	}
}

func TestUnary(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for _, n := range testLengths {
		src := randomSlice32(rng, n)
		got := make([]float32, n)
		Abs32(got, src)
		for i := range got {
			if want := rtm.Abs(src[i]); got[i] != want {
				t.Fatalf("abs32 n=%d lane %d: got %v, want %v", n, i, got[i], want)
			}
		}

		pos := positiveSlice32(rng, n)
		Sqrt32(got, pos)
		for i := range got {
			if want := rtm.Sqrt(pos[i]); got[i] != want {
				t.Fatalf("sqrt32 n=%d lane %d: got %v, want %v", n, i, got[i], want)
			}
		}

		src64 := randomSlice64(rng, n)
		got64 := make([]float64, n)
		Abs64(got64, src64)
		for i := range got64 {
			if want := rtm.Abs(src64[i]); got64[i] != want {
				t.Fatalf("abs64 n=%d lane %d: got %v, want %v", n, i, got64[i], want)
			}
		}

		pos64 := positiveSlice64(rng, n)
		Sqrt64(got64, pos64)
		for i := range got64 {
			if want := rtm.Sqrt(pos64[i]); got64[i] != want {
				t.Fatalf("sqrt64 n=%d lane %d: got %v, want %v", n, i, got64[i], want)
			}
		}
	}
}

func TestSqrtReciprocal(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, n := range testLengths {
		// The float32 SIMD path refines a hardware estimate, so allow
		// a relative tolerance instead of bit equality.
		pos := positiveSlice32(rng, n)
		got := make([]float32, n)
		SqrtReciprocal32(got, pos)
		for i := range got {
			want := rtm.SqrtReciprocal(pos[i])
			if rel := math.Abs(float64(got[i]-want)) / float64(want); rel > 1e-6 {
				t.Fatalf("float32 n=%d lane %d: got %v, want %v (rel %v)", n, i, got[i], want, rel)
			}
		}

		pos64 := positiveSlice64(rng, n)
		got64 := make([]float64, n)
		SqrtReciprocal64(got64, pos64)
		for i := range got64 {
			if want := rtm.SqrtReciprocal(pos64[i]); got64[i] != want {
				t.Fatalf("float64 n=%d lane %d: got %v, want %v", n, i, got64[i], want)
			}
		}
	}
}

func TestScaleLerp(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	for _, n := range testLengths {
		src := randomSlice32(rng, n)
		got := make([]float32, n)
		Scale32(got, src, 2.5)
		for i := range got {
			if want := src[i] * 2.5; got[i] != want {
				t.Fatalf("scale32 n=%d lane %d: got %v, want %v", n, i, got[i], want)
			}
		}

		start := randomSlice64(rng, n)
		end := randomSlice64(rng, n)
		got64 := make([]float64, n)
		Lerp64(got64, start, end, 0.25)
		for i := range got64 {
			if want := rtm.Lerp(start[i], end[i], 0.25); got64[i] != want {
				t.Fatalf("lerp64 n=%d lane %d: got %v, want %v", n, i, got64[i], want)
			}
		}

		Lerp64(got64, start, end, 0.0)
		for i := range got64 {
			if got64[i] != start[i] {
				t.Fatalf("lerp64 alpha=0 n=%d lane %d: got %v, want %v", n, i, got64[i], start[i])
			}
		}
	}
}

func TestShortestInputWins(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	b := []float32{1, 1, 1}
	dst := make([]float32, 10)
	for i := range dst {
		dst[i] = -99
	}
	Add32(dst, a, b)
	for i := 0; i < 3; i++ {
		if dst[i] != a[i]+1 {
			t.Errorf("lane %d: got %v", i, dst[i])
		}
	}
	for i := 3; i < 10; i++ {
		if dst[i] != -99 {
			t.Errorf("lane %d written past shortest input: %v", i, dst[i])
		}
	}
}

func testTransformMatrix[T rtm.Float]() rtm.Matrix3x4[T] {
	rotation := rtm.QuatFromEuler[T](
		rtm.DegToRad[T](10.1), rtm.DegToRad[T](41.6), rtm.DegToRad[T](-12.7))
	return rtm.MatrixFromQVV(rotation,
		rtm.VectorSet3[T](1, 2, 3), rtm.VectorSet3[T](4, 5, 6))
}

func TestTransformPoints3(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	mtxF := testTransformMatrix[float32]()
	mtxD := testTransformMatrix[float64]()
	for _, n := range testLengths {
		srcX := randomSlice32(rng, n)
		srcY := randomSlice32(rng, n)
		srcZ := randomSlice32(rng, n)
		dstX := make([]float32, n)
		dstY := make([]float32, n)
		dstZ := make([]float32, n)
		TransformPoints3F(dstX, dstY, dstZ, srcX, srcY, srcZ, mtxF)
		for i := 0; i < n; i++ {
			want := rtm.MatrixMulPoint3(rtm.VectorSet3(srcX[i], srcY[i], srcZ[i]), mtxF)
			// The SIMD path fuses the multiply-adds; allow rounding slack.
			if rtm.Abs(dstX[i]-want.X) > 1e-3 || rtm.Abs(dstY[i]-want.Y) > 1e-3 || rtm.Abs(dstZ[i]-want.Z) > 1e-3 {
				t.Fatalf("float32 n=%d point %d: got (%v %v %v), want %v", n, i, dstX[i], dstY[i], dstZ[i], want)
			}
		}

		srcX64 := randomSlice64(rng, n)
		srcY64 := randomSlice64(rng, n)
		srcZ64 := randomSlice64(rng, n)
		dstX64 := make([]float64, n)
		dstY64 := make([]float64, n)
		dstZ64 := make([]float64, n)
		TransformPoints3D(dstX64, dstY64, dstZ64, srcX64, srcY64, srcZ64, mtxD)
		for i := 0; i < n; i++ {
			want := rtm.MatrixMulPoint3(rtm.VectorSet3(srcX64[i], srcY64[i], srcZ64[i]), mtxD)
			if rtm.Abs(dstX64[i]-want.X) > 1e-10 || rtm.Abs(dstY64[i]-want.Y) > 1e-10 || rtm.Abs(dstZ64[i]-want.Z) > 1e-10 {
				t.Fatalf("float64 n=%d point %d: got (%v %v %v), want %v", n, i, dstX64[i], dstY64[i], dstZ64[i], want)
			}
		}
	}
}

func TestTransformVectors3(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	mtxF := testTransformMatrix[float32]()
	for _, n := range testLengths {
		srcX := randomSlice32(rng, n)
		srcY := randomSlice32(rng, n)
		srcZ := randomSlice32(rng, n)
		dstX := make([]float32, n)
		dstY := make([]float32, n)
		dstZ := make([]float32, n)
		TransformVectors3F(dstX, dstY, dstZ, srcX, srcY, srcZ, mtxF)
		for i := 0; i < n; i++ {
			want := rtm.MatrixMulVector3(rtm.VectorSet3(srcX[i], srcY[i], srcZ[i]), mtxF)
			if rtm.Abs(dstX[i]-want.X) > 1e-3 || rtm.Abs(dstY[i]-want.Y) > 1e-3 || rtm.Abs(dstZ[i]-want.Z) > 1e-3 {
				t.Fatalf("n=%d vector %d: got (%v %v %v), want %v", n, i, dstX[i], dstY[i], dstZ[i], want)
			}
		}
	}
}

// Vectors ignore translation; points apply it. Transforming the zero
// vector must give zero, while the zero point lands on the translation.
func TestTransformTranslationHandling(t *testing.T) {
	mtx := rtm.MatrixFromTranslation(rtm.VectorSet3(10.0, 20.0, 30.0))
	zero := []float64{0}
	px := make([]float64, 1)
	py := make([]float64, 1)
	pz := make([]float64, 1)

	TransformPoints3D(px, py, pz, zero, zero, zero, mtx)
	if px[0] != 10 || py[0] != 20 || pz[0] != 30 {
		t.Errorf("point: got (%v %v %v)", px[0], py[0], pz[0])
	}

	TransformVectors3D(px, py, pz, zero, zero, zero, mtx)
	if px[0] != 0 || py[0] != 0 || pz[0] != 0 {
		t.Errorf("vector: got (%v %v %v)", px[0], py[0], pz[0])
	}
}

const benchLen = 4096

func BenchmarkAdd32(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x := randomSlice32(rng, benchLen)
	y := randomSlice32(rng, benchLen)
	dst := make([]float32, benchLen)
	b.SetBytes(benchLen * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Add32(dst, x, y)
	}
}

func BenchmarkMulAdd32(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	x := randomSlice32(rng, benchLen)
	y := randomSlice32(rng, benchLen)
	z := randomSlice32(rng, benchLen)
	dst := make([]float32, benchLen)
	b.SetBytes(benchLen * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MulAdd32(dst, x, y, z)
	}
}

func BenchmarkSqrtReciprocal32(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	src := positiveSlice32(rng, benchLen)
	dst := make([]float32, benchLen)
	b.SetBytes(benchLen * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SqrtReciprocal32(dst, src)
	}
}

func BenchmarkTransformPoints3F(b *testing.B) {
	rng := rand.New(rand.NewSource(4))
	mtx := testTransformMatrix[float32]()
	srcX := randomSlice32(rng, benchLen)
	srcY := randomSlice32(rng, benchLen)
	srcZ := randomSlice32(rng, benchLen)
	dstX := make([]float32, benchLen)
	dstY := make([]float32, benchLen)
	dstZ := make([]float32, benchLen)
	b.SetBytes(benchLen * 3 * 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TransformPoints3F(dstX, dstY, dstZ, srcX, srcY, srcZ, mtx)
	}
}

package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalizeDegrees(t *testing.T) {
	tcs := []struct {
		in, want float32
	}{
		{in: 0, want: 0},
		{in: 180, want: 180},
		{in: -180, want: 180},
		{in: 190, want: -170},
		{in: -190, want: 170},
		{in: 360, want: 0},
		{in: 540, want: 180},
		{in: -540, want: 180},
		{in: 725, want: 5},
		{in: -90, want: -90},
		{in: 179.5, want: 179.5},
	}

	for _, tc := range tcs {
		got := NormalizeDegrees(tc.in)
		if math32.Abs(got-tc.want) > 1e-4 {
			t.Fatalf("NormalizeDegrees(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDegrees_Range(t *testing.T) {
	for a := float32(-2000); a <= 2000; a += 7.3 {
		got := NormalizeDegrees(a)
		if !(got > -180 && got <= 180) {
			t.Fatalf("NormalizeDegrees(%v) = %v; outside (-180, 180]", a, got)
		}
	}
}

func TestNormalizeDegrees_LargeMagnitudes(t *testing.T) {
	for _, a := range []float32{3.4e38, -3.4e38, 1e20, -1e20, 123456789, math32.MaxFloat32} {
		got := NormalizeDegrees(a)
		if !(got > -180 && got <= 180) {
			t.Fatalf("NormalizeDegrees(%v) = %v; outside (-180, 180]", a, got)
		}
	}
	if got := NormalizeDegrees(360*1e6 + 90); math32.Abs(got-90) > 1 {
		t.Fatalf("NormalizeDegrees(360e6+90) = %v; want about 90", got)
	}
}

func TestFinite(t *testing.T) {
	tcs := []struct {
		in   []float32
		want bool
	}{
		{in: nil, want: true},
		{in: []float32{0, -1, math32.MaxFloat32}, want: true},
		{in: []float32{1, math32.NaN()}, want: false},
		{in: []float32{math32.Inf(1)}, want: false},
		{in: []float32{math32.Inf(-1), 2}, want: false},
	}
	for _, tc := range tcs {
		if got := Finite(tc.in...); got != tc.want {
			t.Fatalf("Finite(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

func TestMul4_Identity(t *testing.T) {
	id := [16]float32(mgl32.Ident4())
	m := [16]float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	var out [16]float32
	Mul4(out[:], id[:], m[:])
	if out != m {
		t.Fatalf("I*M = %v; want %v", out, m)
	}
	Mul4(out[:], m[:], id[:])
	if out != m {
		t.Fatalf("M*I = %v; want %v", out, m)
	}
}

func TestMul4_ColumnMajorTranslation(t *testing.T) {
	// Two translations compose additively: translation lives in elements 12..14.
	a := [16]float32(mgl32.Ident4())
	b := [16]float32(mgl32.Ident4())
	var out [16]float32
	a[12], a[13], a[14] = 1, 2, 3
	b[12], b[13], b[14] = 10, 20, 30

	Mul4(out[:], a[:], b[:])
	if out[12] != 11 || out[13] != 22 || out[14] != 33 || out[15] != 1 {
		t.Fatalf("translation = (%v, %v, %v, %v); want (11, 22, 33, 1)", out[12], out[13], out[14], out[15])
	}
}

func TestSliceToBytes(t *testing.T) {
	if SliceToBytes([]float32{}) != nil {
		t.Fatalf("SliceToBytes(empty) should be nil")
	}
	b := SliceToBytes([]uint32{1, 2, 3})
	if len(b) != 12 {
		t.Fatalf("len = %d; want 12", len(b))
	}
}

package common

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func assertMatrixNear(t *testing.T, name string, got [16]float32, want [16]float32, tol float32) {
	t.Helper()
	for i := range got {
		if math32.Abs(got[i]-want[i]) > tol*math32.Max(1, math32.Abs(want[i])) {
			t.Fatalf("%s[%d] = %v; want %v (got %v, want %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestBuildViewMatrix_IdentityRotation(t *testing.T) {
	m, err := BuildViewMatrix(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	if err != nil {
		t.Fatalf("BuildViewMatrix: %v", err)
	}
	want := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -5, 1,
	}
	assertMatrixNear(t, "view", m, want, 1e-6)
}

func TestBuildViewMatrix_MatchesLookAtV(t *testing.T) {
	tcs := []struct {
		eye, target, up mgl32.Vec3
	}{
		{eye: mgl32.Vec3{3, 4, 5}, target: mgl32.Vec3{0, 1, 0}, up: mgl32.Vec3{0, 1, 0}},
		{eye: mgl32.Vec3{-2, 7, 1}, target: mgl32.Vec3{1, -1, 2}, up: mgl32.Vec3{0, 0, 1}},
		{eye: mgl32.Vec3{0, -5, 0.5}, target: mgl32.Vec3{0, 0, 0}, up: mgl32.Vec3{0, 0, -1}},
		{eye: mgl32.Vec3{10, 0, 0}, target: mgl32.Vec3{2, 2, 2}, up: mgl32.Vec3{0, 1, 0}},
	}

	for _, tc := range tcs {
		got, err := BuildViewMatrix(tc.eye, tc.target, tc.up)
		if err != nil {
			t.Fatalf("BuildViewMatrix(%v, %v, %v): %v", tc.eye, tc.target, tc.up, err)
		}
		want := mgl32.LookAtV(tc.eye, tc.target, tc.up)
		assertMatrixNear(t, "view", got, [16]float32(want), 1e-5)
	}
}

func TestBuildViewMatrix_Degenerate(t *testing.T) {
	tcs := []struct {
		name            string
		eye, target, up mgl32.Vec3
	}{
		{name: "eye equals target", eye: mgl32.Vec3{1, 2, 3}, target: mgl32.Vec3{1, 2, 3}, up: mgl32.Vec3{0, 1, 0}},
		{name: "up parallel to forward", eye: mgl32.Vec3{0, 5, 0}, target: mgl32.Vec3{0, 0, 0}, up: mgl32.Vec3{0, 1, 0}},
		{name: "zero up", eye: mgl32.Vec3{0, 0, 5}, target: mgl32.Vec3{0, 0, 0}, up: mgl32.Vec3{}},
	}

	for _, tc := range tcs {
		_, err := BuildViewMatrix(tc.eye, tc.target, tc.up)
		if !errors.Is(err, ErrDegenerateBasis) {
			t.Fatalf("%s: err = %v; want ErrDegenerateBasis", tc.name, err)
		}
	}
}

func TestBuildPerspectiveMatrix_MatchesFrustum(t *testing.T) {
	tcs := []struct {
		fovy, aspect, near, far float32
	}{
		{fovy: 40, aspect: 1.5, near: 2, far: 1000},
		{fovy: 90, aspect: 1, near: 0.1, far: 100},
		{fovy: 10, aspect: 16.0 / 9.0, near: 1, far: 2},
		{fovy: 170, aspect: 1e4, near: 0.5, far: 50},
	}

	for _, tc := range tcs {
		got, err := BuildPerspectiveMatrix(tc.fovy, tc.aspect, tc.near, tc.far)
		if err != nil {
			t.Fatalf("BuildPerspectiveMatrix(%v, %v, %v, %v): %v", tc.fovy, tc.aspect, tc.near, tc.far, err)
		}
		right := math32.Tan(Radians(tc.fovy)/2) * tc.near
		top := right / tc.aspect
		want := mgl32.Frustum(-right, right, -top, top, tc.near, tc.far)
		assertMatrixNear(t, "projection", got, [16]float32(want), 1e-4)

		if got[8] != 0 || got[9] != 0 {
			t.Fatalf("symmetric frustum off-axis terms = (%v, %v); want 0", got[8], got[9])
		}
	}
}

func TestBuildPerspectiveMatrix_InvalidConfig(t *testing.T) {
	tcs := []struct {
		name                    string
		fovy, aspect, near, far float32
	}{
		{name: "zero fovy", fovy: 0, aspect: 1, near: 1, far: 10},
		{name: "fovy 180", fovy: 180, aspect: 1, near: 1, far: 10},
		{name: "negative fovy", fovy: -10, aspect: 1, near: 1, far: 10},
		{name: "near equals far", fovy: 40, aspect: 1, near: 10, far: 10},
		{name: "near beyond far", fovy: 40, aspect: 1, near: 20, far: 10},
		{name: "zero near", fovy: 40, aspect: 1, near: 0, far: 10},
		{name: "zero aspect", fovy: 40, aspect: 0, near: 1, far: 10},
		{name: "nan fovy", fovy: math32.NaN(), aspect: 1, near: 1, far: 10},
		{name: "overflowing fovy", fovy: 1e-38, aspect: 1, near: 2, far: 10},
		{name: "infinite far", fovy: 40, aspect: 1, near: 1, far: math32.Inf(1)},
	}

	for _, tc := range tcs {
		_, err := BuildPerspectiveMatrix(tc.fovy, tc.aspect, tc.near, tc.far)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err = %v; want ErrInvalidConfig", tc.name, err)
		}
	}
}

func TestMatrixBuilders_Deterministic(t *testing.T) {
	eye, target, up := mgl32.Vec3{1.25, -3.5, 2.75}, mgl32.Vec3{0.1, 0.2, 0.3}, mgl32.Vec3{0, 0, 1}
	v1, err1 := BuildViewMatrix(eye, target, up)
	v2, err2 := BuildViewMatrix(eye, target, up)
	if err1 != nil || err2 != nil {
		t.Fatalf("BuildViewMatrix errors: %v, %v", err1, err2)
	}
	if v1 != v2 {
		t.Fatalf("view matrices differ: %v vs %v", v1, v2)
	}

	p1, err1 := BuildPerspectiveMatrix(37.5, 1.3, 0.7, 321)
	p2, err2 := BuildPerspectiveMatrix(37.5, 1.3, 0.7, 321)
	if err1 != nil || err2 != nil {
		t.Fatalf("BuildPerspectiveMatrix errors: %v, %v", err1, err2)
	}
	if p1 != p2 {
		t.Fatalf("projection matrices differ: %v vs %v", p1, p2)
	}
}

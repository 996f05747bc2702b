package camera

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"
)

func TestGPUCameraUniform_Layout(t *testing.T) {
	var u GPUCameraUniform
	if u.Size() != 144 {
		t.Fatalf("Size() = %d; want 144", u.Size())
	}

	for i := range 16 {
		u.View[i] = float32(i + 1)
		u.Projection[i] = float32(-(i + 1))
	}
	u.CameraPosition = [3]float32{7, 8, 9}

	buf := u.Marshal()
	if len(buf) != 144 {
		t.Fatalf("len(Marshal()) = %d; want 144", len(buf))
	}

	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	tcs := []struct {
		name   string
		offset int
		want   float32
	}{
		{name: "view[0]", offset: 0, want: 1},
		{name: "view[15]", offset: 60, want: 16},
		{name: "projection[0]", offset: 64, want: -1},
		{name: "projection[15]", offset: 124, want: -16},
		{name: "eye.x", offset: 128, want: 7},
		{name: "eye.z", offset: 136, want: 9},
		{name: "pad", offset: 140, want: 0},
	}
	for _, tc := range tcs {
		if got := read(tc.offset); got != tc.want {
			t.Fatalf("%s at %d = %v; want %v", tc.name, tc.offset, got, tc.want)
		}
	}
}

func TestGPUCameraUniformSource(t *testing.T) {
	for _, field := range []string{"struct CameraUniform", "view: mat4x4<f32>", "projection: mat4x4<f32>", "camera_position: vec3<f32>"} {
		if !strings.Contains(GPUCameraUniformSource, field) {
			t.Fatalf("embedded WGSL missing %q", field)
		}
	}
}

func TestUniform_CarriesEye(t *testing.T) {
	cam := mustCamera(t, WithTarget(1, 2, 3))
	u, err := cam.Uniform()
	if err != nil {
		t.Fatalf("Uniform: %v", err)
	}
	eye := cam.Eye()
	if u.CameraPosition != [3]float32(eye) {
		t.Fatalf("camera position = %v; want %v", u.CameraPosition, eye)
	}
	view, _ := cam.ViewMatrix()
	if u.View != view {
		t.Fatalf("uniform view differs from ViewMatrix")
	}
}

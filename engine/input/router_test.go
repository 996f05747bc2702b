package input

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/chewxy/math32"
)

func newCamera(t *testing.T) camera.OrbitCamera {
	t.Helper()
	cam, err := camera.NewOrbitCamera()
	if err != nil {
		t.Fatalf("NewOrbitCamera: %v", err)
	}
	return cam
}

// fakeSource records the callbacks a Router binds.
type fakeSource struct {
	down   func(common.MouseButton, float32, float32)
	up     func(common.MouseButton, float32, float32)
	move   func(float32, float32)
	scroll func(float32)
	key    func(uint32)
}

func (f *fakeSource) SetMouseDownCallback(cb func(common.MouseButton, float32, float32)) { f.down = cb }
func (f *fakeSource) SetMouseUpCallback(cb func(common.MouseButton, float32, float32))   { f.up = cb }
func (f *fakeSource) SetMouseMoveCallback(cb func(float32, float32))                    { f.move = cb }
func (f *fakeSource) SetScrollCallback(cb func(float32))                                { f.scroll = cb }
func (f *fakeSource) SetKeyDownCallback(cb func(uint32))                                { f.key = cb }

func TestRouter_PrimaryDrag(t *testing.T) {
	cam := newCamera(t)
	r := NewRouter(cam)

	r.PointerMove(50, 50)
	if cam.Azimuth() != 0 {
		t.Fatalf("move without press changed azimuth to %v", cam.Azimuth())
	}

	r.PointerDown(common.MouseButtonPrimary, 0, 0)
	if cam.DragState() != camera.DragActive {
		t.Fatalf("drag state = %v; want active", cam.DragState())
	}
	r.PointerMove(96, 0)
	if math32.Abs(cam.Azimuth()+18) > 1e-4 {
		t.Fatalf("azimuth = %v; want -18", cam.Azimuth())
	}
	r.PointerUp(common.MouseButtonPrimary, 96, 0)
	if cam.DragState() != camera.DragIdle {
		t.Fatalf("drag state = %v; want idle", cam.DragState())
	}
}

func TestRouter_OtherButtonsDoNotDrag(t *testing.T) {
	for _, b := range []common.MouseButton{common.MouseButtonSecondary, common.MouseButtonMiddle} {
		cam := newCamera(t)
		r := NewRouter(cam)
		r.PointerDown(b, 0, 0)
		if cam.DragState() != camera.DragIdle {
			t.Fatalf("%v press started a drag", b)
		}
	}
}

func TestRouter_SecondaryReleaseResets(t *testing.T) {
	cam := newCamera(t)
	r := NewRouter(cam)

	r.PointerDown(common.MouseButtonPrimary, 0, 0)
	r.PointerMove(300, 200)
	r.PointerUp(common.MouseButtonPrimary, 300, 200)
	r.Scroll(1)

	r.PointerDown(common.MouseButtonSecondary, 0, 0)
	if cam.Azimuth() == 0 {
		t.Fatalf("secondary press reset the pose; only release should")
	}
	r.PointerUp(common.MouseButtonSecondary, 0, 0)
	if cam.Azimuth() != 0 || cam.Elevation() != 0 || cam.Fovy() != 40 {
		t.Fatalf("after reset: azimuth=%v elevation=%v fovy=%v", cam.Azimuth(), cam.Elevation(), cam.Fovy())
	}
}

func TestRouter_Scroll(t *testing.T) {
	tcs := []struct {
		name  string
		delta float32
		want  float32
	}{
		{name: "forward", delta: 2.5, want: 38},
		{name: "back", delta: -0.1, want: 40 + 140.0/180.0},
		{name: "zero", delta: 0, want: 40},
	}
	for _, tc := range tcs {
		cam := newCamera(t)
		NewRouter(cam).Scroll(tc.delta)
		if math32.Abs(cam.Fovy()-tc.want) > 1e-4 {
			t.Fatalf("%s: fovy = %v; want %v", tc.name, cam.Fovy(), tc.want)
		}
	}
}

func TestRouter_ResetKeys(t *testing.T) {
	tcs := []struct {
		name    string
		options []RouterOption
		key     uint32
		reset   bool
	}{
		{name: "R", key: common.KeyR, reset: true},
		{name: "Home", key: common.KeyHome, reset: true},
		{name: "other key", key: 65, reset: false},
		{name: "custom key", options: []RouterOption{WithResetKeys(32)}, key: 32, reset: true},
		{name: "custom replaces R", options: []RouterOption{WithResetKeys(32)}, key: common.KeyR, reset: false},
	}
	for _, tc := range tcs {
		cam := newCamera(t)
		r := NewRouter(cam, tc.options...)
		r.Scroll(1)
		r.KeyDown(tc.key)
		if reset := cam.Fovy() == 40; reset != tc.reset {
			t.Fatalf("%s: reset = %v; want %v", tc.name, reset, tc.reset)
		}
	}
}

func TestRouter_Resize(t *testing.T) {
	cam := newCamera(t)
	NewRouter(cam).Resize(400, 0)
	if w, h := cam.Viewport(); w != 400 || h != 0 {
		t.Fatalf("viewport = %dx%d; want 400x0", w, h)
	}
	if cam.Aspect() != 1e4 {
		t.Fatalf("aspect = %v; want 1e4", cam.Aspect())
	}
}

func TestRouter_Bind(t *testing.T) {
	cam := newCamera(t)
	src := &fakeSource{}
	NewRouter(cam, WithVerbose(true)).Bind(src)

	if src.down == nil || src.up == nil || src.move == nil || src.scroll == nil || src.key == nil {
		t.Fatalf("Bind left a callback unset: %+v", src)
	}

	src.down(common.MouseButtonPrimary, 0, 0)
	src.move(0, 64)
	src.up(common.MouseButtonPrimary, 0, 64)
	if math32.Abs(cam.Elevation()-9) > 1e-4 {
		t.Fatalf("elevation = %v; want 9", cam.Elevation())
	}

	src.scroll(1)
	src.key(common.KeyR)
	if cam.Elevation() != 0 || cam.Fovy() != 40 {
		t.Fatalf("key reset left elevation=%v fovy=%v", cam.Elevation(), cam.Fovy())
	}
}

package input

import (
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// EventSource is the subset of window.Window the Router subscribes to.
type EventSource interface {
	SetMouseDownCallback(callback func(button common.MouseButton, x, y float32))
	SetMouseUpCallback(callback func(button common.MouseButton, x, y float32))
	SetMouseMoveCallback(callback func(x, y float32))
	SetScrollCallback(callback func(delta float32))
	SetKeyDownCallback(callback func(keyCode uint32))
}

// Router translates host input events into OrbitCamera operations.
//
// Mapping:
//   - primary press starts a drag, primary release ends it
//   - cursor movement continues an active drag
//   - secondary release restores the home pose
//   - wheel forward narrows the view, wheel back widens it
//   - the reset keys (R and Home by default) restore the home pose
type Router interface {
	// PointerDown handles a button press.
	//
	// Parameters:
	//   - button: the pressed button
	//   - x, y: cursor position in pixels
	PointerDown(button common.MouseButton, x, y float32)

	// PointerMove handles cursor movement.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	PointerMove(x, y float32)

	// PointerUp handles a button release.
	//
	// Parameters:
	//   - button: the released button
	//   - x, y: cursor position in pixels
	PointerUp(button common.MouseButton, x, y float32)

	// Scroll handles a wheel event. Only the sign of delta is used; zero is ignored.
	//
	// Parameters:
	//   - delta: positive for wheel forward, negative for wheel back
	Scroll(delta float32)

	// Resize forwards a new viewport size to the camera.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	Resize(width, height int)

	// KeyDown handles a key press.
	//
	// Parameters:
	//   - keyCode: GLFW-compatible key code (see common.KeyR)
	KeyDown(keyCode uint32)

	// Bind registers the router's handlers on an event source.
	// Resize is not bound; the engine owns resize so it can reconfigure the renderer too.
	//
	// Parameters:
	//   - src: the window (or any EventSource) to subscribe to
	Bind(src EventSource)
}

type routerImpl struct {
	camera    camera.OrbitCamera
	resetKeys map[uint32]struct{}
	verbose   bool
}

var _ Router = &routerImpl{}

// NewRouter creates a Router that drives cam.
//
// Parameters:
//   - cam: the camera to control
//   - options: functional options to configure the router
//
// Returns:
//   - Router: the new router
func NewRouter(cam camera.OrbitCamera, options ...RouterOption) Router {
	r := &routerImpl{
		camera: cam,
		resetKeys: map[uint32]struct{}{
			common.KeyR:    {},
			common.KeyHome: {},
		},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func (r *routerImpl) PointerDown(button common.MouseButton, x, y float32) {
	if button == common.MouseButtonPrimary {
		r.camera.OnDragStart(x, y)
		if r.verbose {
			log.Printf("input: drag start at (%.0f, %.0f)", x, y)
		}
	}
}

func (r *routerImpl) PointerMove(x, y float32) {
	r.camera.OnDragMove(x, y)
}

func (r *routerImpl) PointerUp(button common.MouseButton, x, y float32) {
	switch button {
	case common.MouseButtonPrimary:
		r.camera.OnDragEnd()
		if r.verbose {
			log.Printf("input: drag end at (%.0f, %.0f) azimuth=%.2f elevation=%.2f",
				x, y, r.camera.Azimuth(), r.camera.Elevation())
		}
	case common.MouseButtonSecondary:
		r.reset()
	}
}

func (r *routerImpl) Scroll(delta float32) {
	switch {
	case delta > 0:
		r.camera.OnScroll(1)
	case delta < 0:
		r.camera.OnScroll(-1)
	default:
		return
	}
	if r.verbose {
		log.Printf("input: fovy=%.3f", r.camera.Fovy())
	}
}

func (r *routerImpl) Resize(width, height int) {
	r.camera.OnViewportResize(width, height)
}

func (r *routerImpl) KeyDown(keyCode uint32) {
	if _, ok := r.resetKeys[keyCode]; ok {
		r.reset()
	}
}

func (r *routerImpl) Bind(src EventSource) {
	src.SetMouseDownCallback(r.PointerDown)
	src.SetMouseUpCallback(r.PointerUp)
	src.SetMouseMoveCallback(r.PointerMove)
	src.SetScrollCallback(r.Scroll)
	src.SetKeyDownCallback(r.KeyDown)
}

func (r *routerImpl) reset() {
	r.camera.ResetToHome()
	if r.verbose {
		log.Println("input: reset to home pose")
	}
}

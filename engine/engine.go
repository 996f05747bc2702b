package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/profiler"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the window's thread: events, camera updates and drawing.
type engine struct {
	window   window.Window
	camera   camera.OrbitCamera
	renderer renderer.Renderer
	router   input.Router

	routerOptions []input.RouterOption

	profiler         *profiler.Profiler
	profilingEnabled bool

	updateCallback func(deltaTime float32)
	lastFrame      time.Time

	// lastUniform is redrawn when the pose has no valid view basis.
	lastUniform camera.GPUCameraUniform
	haveUniform bool
}

// Engine drives one orbit camera and one renderer from a window's event loop.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Camera returns the orbit camera driven by the window's input.
	//
	// Returns:
	//   - camera.OrbitCamera: the camera instance
	Camera() camera.OrbitCamera

	// Router returns the input router bound to the window.
	//
	// Returns:
	//   - input.Router: the router instance
	Router() input.Router

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetUpdateCallback registers the function called every frame before drawing.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds since the previous frame
	SetUpdateCallback(callback func(deltaTime float32))

	// Run processes window events and draws frames until the window closes,
	// then releases the renderer and closes the window. Blocks.
	//
	// Returns:
	//   - error: an error if closing the window fails
	Run() error

	// Quit stops the loop after the current frame.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// A window and a camera are required; the renderer is optional.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: wraps common.ErrInvalidConfig if the window or camera is missing
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{}
	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		return nil, fmt.Errorf("engine requires a window: %w", common.ErrInvalidConfig)
	}
	if e.camera == nil {
		return nil, fmt.Errorf("engine requires a camera: %w", common.ErrInvalidConfig)
	}

	e.profiler = profiler.NewProfiler(profiler.WithCamera(e.camera))
	e.router = input.NewRouter(e.camera, e.routerOptions...)
	e.router.Bind(e.window)

	e.camera.OnViewportResize(e.window.Width(), e.window.Height())
	e.window.SetResizeCallback(e.resize)

	return e, nil
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Camera() camera.OrbitCamera {
	return e.camera
}

func (e *engine) Router() input.Router {
	return e.router
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetUpdateCallback(callback func(deltaTime float32)) {
	e.updateCallback = callback
}

func (e *engine) Run() error {
	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()

	if e.renderer != nil {
		e.renderer.Release()
	}
	return e.window.Close()
}

func (e *engine) Quit() {
	e.window.RequestClose()
}

// resize forwards a framebuffer resize to the camera and the renderer.
func (e *engine) resize(width, height int) {
	e.router.Resize(width, height)
	if e.renderer == nil {
		return
	}
	if err := e.renderer.Resize(width, height); err != nil {
		log.Printf("engine: resize to %dx%d failed: %v", width, height, err)
	}
}

// frame runs one loop iteration: update callback, camera uniform, draw, profiler.
func (e *engine) frame() {
	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	if e.updateCallback != nil {
		e.updateCallback(dt)
	}

	uniform, err := e.camera.Uniform()
	switch {
	case err == nil:
		e.lastUniform = uniform
		e.haveUniform = true
	case errors.Is(err, common.ErrDegenerateBasis):
		// Eye exactly on a pole: keep the previous frame's matrices.
	default:
		log.Printf("engine: camera uniform: %v", err)
	}

	if e.renderer != nil && e.haveUniform {
		if err := e.renderer.DrawFrame(e.lastUniform, e.camera.Background()); err != nil {
			log.Printf("engine: draw frame: %v", err)
		}
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

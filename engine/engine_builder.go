package engine

import (
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer"
	"github.com/Carmen-Shannon/oxy-orbit/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, logs FPS and the camera pose once per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets the window whose events drive the camera.
//
// Parameters:
//   - w: a spawned Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithCamera sets the orbit camera. Its viewport is overwritten with the window size.
//
// Parameters:
//   - c: the camera to drive
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.OrbitCamera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithRenderer sets the renderer that draws each frame. Without one the engine
// still runs the camera from input.
//
// Parameters:
//   - r: the renderer, already bound to the same window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithRouterOptions passes options to the input router the engine creates.
//
// Parameters:
//   - options: router options such as input.WithResetKeys
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRouterOptions(options ...input.RouterOption) EngineBuilderOption {
	return func(e *engine) {
		e.routerOptions = append(e.routerOptions, options...)
	}
}

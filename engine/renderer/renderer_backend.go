package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how orbit frames reach the display.
type PresentMode int

const (
	// PresentModeVSync waits for vertical blank. Drag input is then sampled at the refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately and may tear.
	PresentModeUncapped
)

// wgpu maps the mode onto the surface present mode. Unknown values fall back to FIFO,
// the only mode every surface supports.
func (m PresentMode) wgpu() wgpu.PresentMode {
	if m == PresentModeUncapped {
		return wgpu.PresentModeImmediate
	}
	return wgpu.PresentModeFifo
}

func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	}
	return fmt.Sprintf("PresentMode(%d)", int(m))
}

// MSAASampleCount is the sample count of the colour and depth attachments.
// WebGPU only guarantees 1 and 4.
type MSAASampleCount uint32

const (
	// MSAAOff renders single-sampled straight into the surface texture.
	MSAAOff MSAASampleCount = 1

	// MSAA4x resolves a 4-sample attachment into the surface texture. This is the default.
	MSAA4x MSAASampleCount = 4
)

// validate rejects counts the pipeline cannot be built with.
func (c MSAASampleCount) validate() error {
	if c != MSAAOff && c != MSAA4x {
		return fmt.Errorf("msaa sample count %d not supported (use 1 or 4): %w", uint32(c), common.ErrInvalidConfig)
	}
	return nil
}

// RendererBackend is the top-level backend interface for the Renderer.
type RendererBackend interface {
	wgpuRendererBackend
}

package renderer

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/model"
	"github.com/Carmen-Shannon/oxy-orbit/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/orbit.wgsl
var orbitShaderSource string

// ShaderSource expands the orbit shader's annotations into the full WGSL program and
// returns it with the camera uniform's binding declaration.
//
// Returns:
//   - string: WGSL source
//   - shader.Annotation: the camera uniform declaration
//   - error: an error if the shader fails to pre-process or does not bind the camera in group 0
func ShaderSource() (string, shader.Annotation, error) {
	pp := shader.NewPreProcessor()
	src, err := pp.Process(orbitShaderSource)
	if err != nil {
		return "", shader.Annotation{}, fmt.Errorf("failed to pre-process orbit shader: %w", err)
	}
	cam, ok := shader.FindDeclaration(pp.Declarations(), shader.AnnotationArgCamera)
	if !ok || *cam.Group != 0 {
		return "", shader.Annotation{}, errors.New("orbit shader must bind the camera uniform in group 0")
	}
	return src, cam, nil
}

// SurfaceSource is what the renderer needs from a window: a surface to draw into
// and its initial pixel size. window.Window satisfies it.
type SurfaceSource interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	msaa                 MSAASampleCount
}

// Renderer draws uploaded models from the orbit camera's point of view.
//
// All methods must be called from the thread that created the renderer.
type Renderer interface {
	// Resize reconfigures the surface for a new size. Sizes of zero (a minimised
	// window) suspend drawing until the next non-zero resize.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the size-dependent attachments could not be created
	Resize(width, height int) error

	// UploadMesh copies a model's vertices and indices to the GPU and adds it to
	// the set drawn every frame.
	//
	// Parameters:
	//   - m: the model to upload
	//
	// Returns:
	//   - error: an error if the model is empty or buffer creation fails
	UploadMesh(m model.Model) error

	// DrawFrame renders one frame with the given camera uniform and clear colour.
	//
	// Parameters:
	//   - uniform: view, projection and eye position from the camera
	//   - background: RGB clear colour
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired or the frame could not be submitted
	DrawFrame(uniform camera.GPUCameraUniform, background [3]float32) error

	// Release frees all GPU resources. The renderer must not be used afterwards.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer drawing into the given surface.
//
// Parameters:
//   - surface: the window to draw into
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if no adapter or device is available or the pipeline fails to build
func NewRenderer(surface SurfaceSource, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		backendType: BackendTypeWGPU,
		presentMode: PresentModeVSync,
		msaa:        MSAA4x,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	if err := r.msaa.validate(); err != nil {
		return nil, err
	}

	switch r.backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		b, err := newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, r.msaa)
		if err != nil {
			return nil, err
		}
		r.backend = b
	}

	r.backend.SetPresentMode(r.presentMode)
	if err := r.backend.ConfigureSurface(surface.Width(), surface.Height()); err != nil {
		r.backend.Release()
		return nil, err
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) error {
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) UploadMesh(m model.Model) error {
	return r.backend.UploadMesh(m.VertexData(), m.IndexData(), m.IndexCount())
}

func (r *renderer) DrawFrame(uniform camera.GPUCameraUniform, background [3]float32) error {
	return r.backend.DrawFrame(uniform.Marshal(), clearColor(background))
}

func (r *renderer) Release() {
	r.backend.Release()
}

// clearColor converts an RGB background into an opaque wgpu clear value.
func clearColor(rgb [3]float32) wgpu.Color {
	return wgpu.Color{R: float64(rgb[0]), G: float64(rgb[1]), B: float64(rgb[2]), A: 1}
}

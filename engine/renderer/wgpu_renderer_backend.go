package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/model"
	"github.com/cogentcore/webgpu/wgpu"
)

// gpuMesh holds the GPU buffers for one uploaded model.
type gpuMesh struct {
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer
	indexCount   uint32
}

type wgpuRendererBackendImpl struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat wgpu.TextureFormat
	alphaMode     wgpu.CompositeAlphaMode
	presentMode   wgpu.PresentMode // defaults to PresentModeFifo (VSync)
	sampleCount   MSAASampleCount

	// Size-dependent attachments, rebuilt by ConfigureSurface
	width            int
	height           int
	msaaTexture      *wgpu.Texture
	msaaTextureView  *wgpu.TextureView
	depthTexture     *wgpu.Texture
	depthTextureView *wgpu.TextureView

	pipeline        *wgpu.RenderPipeline
	bindGroupLayout *wgpu.BindGroupLayout
	uniformBuffer   *wgpu.Buffer
	bindGroup       *wgpu.BindGroup

	meshes []gpuMesh
}

type wgpuRendererBackend interface {
	// ConfigureSurface (re)configures the swapchain and rebuilds the depth and MSAA
	// attachments for a new surface size. A zero size marks the surface unusable
	// until the next non-zero resize.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if an attachment texture could not be created
	ConfigureSurface(width, height int) error

	// SetPresentMode sets the surface present mode. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// UploadMesh creates vertex and index buffers for a model and appends it to the draw list.
	//
	// Parameters:
	//   - vertexData: the packed vertex bytes
	//   - indexData: the packed uint32 index bytes
	//   - indexCount: number of indices
	//
	// Returns:
	//   - error: an error if buffer creation fails
	UploadMesh(vertexData, indexData []byte, indexCount int) error

	// DrawFrame writes the camera uniform, clears to the given colour, draws every
	// uploaded mesh and presents the frame.
	//
	// Parameters:
	//   - uniformData: the marshalled camera uniform
	//   - clear: the background colour
	//
	// Returns:
	//   - error: an error if the frame could not be acquired or submitted
	DrawFrame(uniformData []byte, clear wgpu.Color) error

	// Release frees every GPU resource held by the backend.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, sampleCount MSAASampleCount) (*wgpuRendererBackendImpl, error) {
	if surfaceDescriptor == nil {
		return nil, errors.New("window has no surface descriptor")
	}
	runtime.LockOSThread()

	b := &wgpuRendererBackendImpl{
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		sampleCount: sampleCount,
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Orbit Device",
	})
	if err != nil {
		b.Release()
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	b.device = d
	b.queue = d.GetQueue()

	capabilities := b.surface.GetCapabilities(b.adapter)
	if len(capabilities.Formats) == 0 || len(capabilities.AlphaModes) == 0 {
		b.Release()
		return nil, errors.New("surface reports no supported formats")
	}
	b.surfaceFormat = capabilities.Formats[0]
	b.alphaMode = capabilities.AlphaModes[0]

	if err := b.createPipeline(); err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

// createPipeline builds the single colour pipeline and the camera uniform bind group.
func (b *wgpuRendererBackendImpl) createPipeline() error {
	code, cameraDecl, err := ShaderSource()
	if err != nil {
		return err
	}
	cameraBinding := uint32(*cameraDecl.Binding)

	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Orbit Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: code,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to compile orbit shader: %w", err)
	}
	defer module.Release()

	var uniform camera.GPUCameraUniform
	uniformSize := uint64(uniform.Size())

	b.bindGroupLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    cameraBinding,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group layout for group 0: %w", err)
	}

	b.uniformBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	b.bindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: b.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: cameraBinding, Buffer: b.uniformBuffer, Offset: 0, Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		return err
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Orbit Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.bindGroupLayout},
	})
	if err != nil {
		return err
	}
	defer pipelineLayout.Release()

	b.pipeline, err = b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Orbit Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexBufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			// The camera can orbit below the floor, so both faces stay visible.
			CullMode: wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: uint32(b.sampleCount),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create orbit pipeline: %w", err)
	}
	return nil
}

func (b *wgpuRendererBackendImpl) ConfigureSurface(width, height int) error {
	b.releaseAttachments()
	b.width, b.height = width, height
	if width <= 0 || height <= 0 {
		return nil
	}

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   b.alphaMode,
	})

	count := uint32(b.sampleCount)
	size := wgpu.Extent3D{
		Width:              uint32(width),
		Height:             uint32(height),
		DepthOrArrayLayers: 1,
	}

	var err error
	if count > 1 {
		// The pass draws into the MSAA texture and resolves into the swapchain view.
		b.msaaTexture, err = b.device.CreateTexture(&wgpu.TextureDescriptor{
			Label:         "MSAA Texture",
			Size:          size,
			MipLevelCount: 1,
			SampleCount:   count,
			Dimension:     wgpu.TextureDimension2D,
			Format:        b.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("failed to create MSAA texture: %w", err)
		}
		b.msaaTextureView, err = b.msaaTexture.CreateView(nil)
		if err != nil {
			return err
		}
	}

	// Depth texture sample count must match the color attachment.
	b.depthTexture, err = b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "Depth Texture",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   count,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("failed to create depth texture: %w", err)
	}
	b.depthTextureView, err = b.depthTexture.CreateView(nil)
	return err
}

func (b *wgpuRendererBackendImpl) SetPresentMode(mode PresentMode) {
	b.presentMode = mode.wgpu()
}

func (b *wgpuRendererBackendImpl) UploadMesh(vertexData, indexData []byte, indexCount int) error {
	if len(vertexData) == 0 || len(indexData) == 0 {
		return errors.New("mesh has no vertex or index data")
	}

	vb, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Mesh Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.queue.WriteBuffer(vb, 0, vertexData)

	ib, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Mesh Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		vb.Release()
		return err
	}
	b.queue.WriteBuffer(ib, 0, indexData)

	b.meshes = append(b.meshes, gpuMesh{vertexBuffer: vb, indexBuffer: ib, indexCount: uint32(indexCount)})
	return nil
}

func (b *wgpuRendererBackendImpl) DrawFrame(uniformData []byte, clear wgpu.Color) error {
	if b.depthTextureView == nil {
		// Minimised or not yet configured.
		return nil
	}

	b.queue.WriteBuffer(b.uniformBuffer, 0, uniformData)

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return err
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	color := wgpu.RenderPassColorAttachment{
		View:       view,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: clear,
	}
	if b.msaaTextureView != nil {
		color.View = b.msaaTextureView
		color.ResolveTarget = view
		color.StoreOp = wgpu.StoreOpDiscard
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{color},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	})
	pass.SetPipeline(b.pipeline)
	pass.SetBindGroup(0, b.bindGroup, nil)
	for _, m := range b.meshes {
		pass.SetVertexBuffer(0, m.vertexBuffer, 0, wgpu.WholeSize)
		pass.SetIndexBuffer(m.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		pass.DrawIndexed(m.indexCount, 1, 0, 0, 0)
	}
	pass.End()
	pass.Release()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	b.queue.Submit(commandBuffer)
	commandBuffer.Release()

	b.surface.Present()
	return nil
}

// releaseAttachments frees the size-dependent textures.
func (b *wgpuRendererBackendImpl) releaseAttachments() {
	if b.msaaTextureView != nil {
		b.msaaTextureView.Release()
		b.msaaTextureView = nil
	}
	if b.msaaTexture != nil {
		b.msaaTexture.Release()
		b.msaaTexture = nil
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
		b.depthTextureView = nil
	}
	if b.depthTexture != nil {
		b.depthTexture.Release()
		b.depthTexture = nil
	}
}

func (b *wgpuRendererBackendImpl) Release() {
	for _, m := range b.meshes {
		m.vertexBuffer.Release()
		m.indexBuffer.Release()
	}
	b.meshes = nil
	b.releaseAttachments()

	if b.bindGroup != nil {
		b.bindGroup.Release()
		b.bindGroup = nil
	}
	if b.uniformBuffer != nil {
		b.uniformBuffer.Release()
		b.uniformBuffer = nil
	}
	if b.bindGroupLayout != nil {
		b.bindGroupLayout.Release()
		b.bindGroupLayout = nil
	}
	if b.pipeline != nil {
		b.pipeline.Release()
		b.pipeline = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

// vertexBufferLayout describes model.GPUVertex to the pipeline.
func vertexBufferLayout() wgpu.VertexBufferLayout {
	var v model.GPUVertex
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(v.Size()),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: model.GPUVertexColorOffset, ShaderLocation: 1},
		},
	}
}

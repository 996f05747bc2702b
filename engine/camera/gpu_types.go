package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (144 bytes, std140/WGSL uniform aligned).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// Matches the WGSL CameraUniform struct layout exactly (see GPUCameraUniformSource).
// Size: 144 bytes.
type GPUCameraUniform struct {
	View           [16]float32 // offset   0: world-to-eye matrix (mat4x4<f32>)
	Projection     [16]float32 // offset  64: eye-to-clip matrix, OpenGL depth range (mat4x4<f32>)
	CameraPosition [3]float32  // offset 128: world-space eye position (vec3<f32>)
	_pad           float32     // offset 140: padding to 144 bytes
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	binary.LittleEndian.PutUint32(buf[140:], 0) // _pad
	return buf
}

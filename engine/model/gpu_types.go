package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSource is the WGSL definition of the VertexInput struct matching GPUVertex.
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single coloured mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 28 bytes, tightly packed.
type GPUVertex struct {
	Position [3]float32 // offset  0: world-space position (12 bytes)
	Color    [4]float32 // offset 12: RGBA colour (16 bytes)
}

// GPUVertexColorOffset is the byte offset of Color within GPUVertex.
const GPUVertexColorOffset = 12

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 28-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 28)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[GPUVertexColorOffset+i*4:], math.Float32bits(g.Color[i]))
	}
	return buf
}

package model

import (
	"sort"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/chewxy/math32"
)

// model is the implementation of the Model interface.
type model struct {
	name     string
	vertices []GPUVertex
	indices  []uint32
}

// Model is an indexed triangle mesh with per-vertex colour.
// The WebGPU renderer draws it filled; the preview draws its edges.
type Model interface {
	// Name returns the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices returns the mesh vertices.
	//
	// Returns:
	//   - []GPUVertex: the vertices, in index order
	Vertices() []GPUVertex

	// Indices returns the triangle list indices.
	//
	// Returns:
	//   - []uint32: three indices per triangle
	Indices() []uint32

	// VertexData returns the vertices as raw bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the packed vertex data
	VertexData() []byte

	// IndexData returns the indices as raw bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the packed index data
	IndexData() []byte

	// IndexCount returns the number of indices.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Edges returns every distinct triangle edge once, as vertex index pairs with
	// the smaller index first, sorted.
	//
	// Returns:
	//   - [][2]uint32: the edge list
	Edges() [][2]uint32

	// BoundingRadius returns the maximum vertex distance from the origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) VertexData() []byte {
	return common.SliceToBytes(m.vertices)
}

func (m *model) IndexData() []byte {
	return common.SliceToBytes(m.indices)
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) Edges() [][2]uint32 {
	seen := make(map[[2]uint32]struct{}, len(m.indices))
	edges := make([][2]uint32, 0, len(m.indices))
	for t := 0; t+2 < len(m.indices); t += 3 {
		tri := m.indices[t : t+3]
		for k := range 3 {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]uint32{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

func (m *model) BoundingRadius() float32 {
	var r float32
	for _, v := range m.vertices {
		p := v.Position
		if d := math32.Sqrt(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]); d > r {
			r = d
		}
	}
	return r
}

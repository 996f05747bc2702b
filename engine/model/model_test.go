package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestGPUVertex_Layout(t *testing.T) {
	v := GPUVertex{Position: [3]float32{1, 2, 3}, Color: [4]float32{0.1, 0.2, 0.3, 0.4}}
	if v.Size() != 28 {
		t.Fatalf("Size() = %d; want 28", v.Size())
	}

	buf := v.Marshal()
	read := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if read(0) != 1 || read(8) != 3 {
		t.Fatalf("position = %v, %v; want 1, 3", read(0), read(8))
	}
	if read(GPUVertexColorOffset) != 0.1 || read(24) != 0.4 {
		t.Fatalf("color = %v, %v; want 0.1, 0.4", read(GPUVertexColorOffset), read(24))
	}
}

func TestModel_VertexDataMatchesMarshal(t *testing.T) {
	m := Cube(2)
	data := m.VertexData()
	if len(data) != 8*28 {
		t.Fatalf("len(VertexData()) = %d; want %d", len(data), 8*28)
	}
	for i, v := range m.Vertices() {
		want := v.Marshal()
		got := data[i*28 : (i+1)*28]
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("vertex %d byte %d = %d; want %d", i, j, got[j], want[j])
			}
		}
	}
	if len(m.IndexData()) != 4*m.IndexCount() {
		t.Fatalf("len(IndexData()) = %d; want %d", len(m.IndexData()), 4*m.IndexCount())
	}
}

func TestCube(t *testing.T) {
	m := Cube(1)
	if len(m.Vertices()) != 8 || m.IndexCount() != 36 {
		t.Fatalf("cube has %d vertices, %d indices; want 8, 36", len(m.Vertices()), m.IndexCount())
	}
	if r := m.BoundingRadius(); math.Abs(float64(r)-math.Sqrt(0.75)) > 1e-6 {
		t.Fatalf("BoundingRadius() = %v; want %v", r, math.Sqrt(0.75))
	}

	// 12 cube edges plus one diagonal per face.
	edges := m.Edges()
	if len(edges) != 18 {
		t.Fatalf("len(Edges()) = %d; want 18", len(edges))
	}
	for i, e := range edges {
		if e[0] >= e[1] {
			t.Fatalf("edge %d = %v; want ascending pair", i, e)
		}
		if i > 0 {
			p := edges[i-1]
			if p[0] > e[0] || (p[0] == e[0] && p[1] >= e[1]) {
				t.Fatalf("edges not sorted and unique at %d: %v then %v", i, p, e)
			}
		}
	}
}

func TestFloor(t *testing.T) {
	tcs := []struct {
		name   string
		cells  int
		zUp    bool
		quads  int
		height int
	}{
		{name: "y up", cells: 4, zUp: false, quads: 16, height: 1},
		{name: "z up", cells: 3, zUp: true, quads: 9, height: 2},
		{name: "clamped", cells: 0, zUp: true, quads: 1, height: 2},
	}
	for _, tc := range tcs {
		m := Floor(tc.cells, tc.zUp, -1)
		if len(m.Vertices()) != tc.quads*4 || m.IndexCount() != tc.quads*6 {
			t.Fatalf("%s: %d vertices, %d indices; want %d, %d", tc.name, len(m.Vertices()), m.IndexCount(), tc.quads*4, tc.quads*6)
		}
		for _, v := range m.Vertices() {
			if v.Position[tc.height] != -1 {
				t.Fatalf("%s: vertex %v not on the floor plane", tc.name, v.Position)
			}
		}
	}
}

func TestEdges_Empty(t *testing.T) {
	if edges := NewModel().Edges(); len(edges) != 0 {
		t.Fatalf("Edges() = %v; want empty", edges)
	}
}

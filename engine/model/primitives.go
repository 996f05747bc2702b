package model

// Cube returns an axis-aligned cube centred on the origin with a distinct colour
// at each corner. All outward faces wind counter-clockwise.
//
// Parameters:
//   - size: edge length
//
// Returns:
//   - Model: 8 vertices, 12 triangles
func Cube(size float32) Model {
	h := size / 2
	pos := [8][3]float32{
		{-h, -h, -h}, {h, -h, -h},
		{h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h},
		{h, h, h}, {-h, h, h},
	}
	col := [8][4]float32{
		{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 0, 1},
		{0, 1, 1, 1}, {1, 0, 1, 1}, {1, 1, 1, 1}, {1, 0.5, 0, 1},
	}

	vertices := make([]GPUVertex, 8)
	for i := range vertices {
		vertices[i] = GPUVertex{Position: pos[i], Color: col[i]}
	}

	indices := []uint32{
		4, 5, 6, 4, 6, 7, // +Z
		1, 0, 3, 1, 3, 2, // -Z
		5, 1, 2, 5, 2, 6, // +X
		0, 4, 7, 0, 7, 3, // -X
		3, 7, 6, 3, 6, 2, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}

	return NewModel(WithName("cube"), WithVertices(vertices), WithIndices(indices))
}

// Floor returns a flat square of cells x cells unit squares, lying in the
// plane perpendicular to the height axis, in a checker of two greys.
//
// Parameters:
//   - cells: number of cells along each side
//   - zUp: true for the XY plane (Z up), false for the XZ plane (Y up)
//   - height: offset of the plane along the height axis
//
// Returns:
//   - Model: a checkerboard floor
func Floor(cells int, zUp bool, height float32) Model {
	if cells < 1 {
		cells = 1
	}
	light := [4]float32{0.45, 0.45, 0.45, 1}
	dark := [4]float32{0.25, 0.25, 0.25, 1}

	vertices := make([]GPUVertex, 0, cells*cells*4)
	indices := make([]uint32, 0, cells*cells*6)
	half := float32(cells) / 2
	place := func(u, v float32) [3]float32 {
		if zUp {
			return [3]float32{u, v, height}
		}
		// (u, v) -> (x, z) with v negated so the winding stays counter-clockwise seen from +Y.
		return [3]float32{u, height, -v}
	}

	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			c := light
			if (i+j)%2 == 1 {
				c = dark
			}
			u0, v0 := float32(i)-half, float32(j)-half
			base := uint32(len(vertices))
			vertices = append(vertices,
				GPUVertex{Position: place(u0, v0), Color: c},
				GPUVertex{Position: place(u0+1, v0), Color: c},
				GPUVertex{Position: place(u0+1, v0+1), Color: c},
				GPUVertex{Position: place(u0, v0+1), Color: c},
			)
			indices = append(indices, base, base+1, base+2, base, base+2, base+3)
		}
	}

	return NewModel(WithName("floor"), WithVertices(vertices), WithIndices(indices))
}

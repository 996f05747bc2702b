package preview

import "github.com/go-gl/mathgl/mgl32"

// clipEpsilon is the smallest clip-space w treated as in front of the eye.
const clipEpsilon = 1e-6

// Project maps a world-space point through a column-major view-projection matrix
// to pixel coordinates, with y growing downwards.
//
// Parameters:
//   - m: the view-projection matrix
//   - p: the world-space point
//   - width, height: viewport size in pixels
//
// Returns:
//   - x, y: pixel coordinates
//   - ok: false when the point is at or behind the eye plane
func Project(m [16]float32, p mgl32.Vec3, width, height int) (x, y float32, ok bool) {
	clip := mgl32.Mat4(m).Mul4x1(p.Vec4(1))
	if clip[3] <= clipEpsilon {
		return 0, 0, false
	}
	x, y = toScreen(clip, width, height)
	return x, y, true
}

// toScreen performs the perspective divide and viewport transform for a point with w > 0.
func toScreen(clip mgl32.Vec4, width, height int) (float32, float32) {
	nx := clip[0] / clip[3]
	ny := clip[1] / clip[3]
	return (nx + 1) / 2 * float32(width), (1 - ny) / 2 * float32(height)
}

// clipNear clips the clip-space segment a-b against the near plane (z >= -w).
// Returns false when the whole segment is behind it.
func clipNear(a, b mgl32.Vec4) (mgl32.Vec4, mgl32.Vec4, bool) {
	da := a[2] + a[3]
	db := b[2] + b[3]
	switch {
	case da < 0 && db < 0:
		return a, b, false
	case da < 0:
		a = a.Add(b.Sub(a).Mul(da / (da - db)))
	case db < 0:
		b = b.Add(a.Sub(b).Mul(db / (db - da)))
	}
	return a, b, true
}

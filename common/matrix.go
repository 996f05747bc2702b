package common

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// basisEpsilon is the minimum length accepted for the forward and right vectors of a view basis.
const basisEpsilon = 1e-6

// BuildViewMatrix creates a right-handed look-at view matrix that transforms world
// coordinates into eye space. The result is stored in column-major order:
//
//	[ s.x, u.x, -f.x, 0,
//	  s.y, u.y, -f.y, 0,
//	  s.z, u.z, -f.z, 0,
//	  -s·eye, -u·eye, f·eye, 1 ]
//
// where f = normalize(target - eye), s = normalize(f × up) and u = s × f.
//
// Parameters:
//   - eye: camera position in world space
//   - target: point the camera looks at
//   - up: approximate up direction, must not be parallel to target - eye
//
// Returns:
//   - [16]float32: the view matrix
//   - error: wraps ErrDegenerateBasis if eye coincides with target or up is parallel to the view direction
func BuildViewMatrix(eye, target, up mgl32.Vec3) ([16]float32, error) {
	var out [16]float32

	f := target.Sub(eye)
	fLen := f.Len()
	if fLen < basisEpsilon {
		return out, fmt.Errorf("eye %v coincides with target %v: %w", eye, target, ErrDegenerateBasis)
	}
	f = f.Mul(1 / fLen)

	s := f.Cross(up)
	sLen := s.Len()
	if sLen < basisEpsilon {
		return out, fmt.Errorf("up %v is parallel to view direction %v: %w", up, f, ErrDegenerateBasis)
	}
	s = s.Mul(1 / sLen)

	u := s.Cross(f)

	out[0], out[1], out[2], out[3] = s[0], u[0], -f[0], 0
	out[4], out[5], out[6], out[7] = s[1], u[1], -f[1], 0
	out[8], out[9], out[10], out[11] = s[2], u[2], -f[2], 0
	out[12], out[13], out[14], out[15] = -s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1
	return out, nil
}

// BuildPerspectiveMatrix creates a symmetric-frustum perspective projection matrix
// in OpenGL clip-space convention (depth mapped to [-1, 1]), column-major.
// The field of view spans the horizontal extent: right = tan(fovy/2) * near and
// top = right / aspect.
//
// Parameters:
//   - fovy: field of view in degrees, in (0, 180)
//   - aspect: viewport aspect ratio (width / height), must be > 0
//   - near: near clipping plane distance, must be > 0
//   - far: far clipping plane distance, must be > near
//
// Returns:
//   - [16]float32: the projection matrix
//   - error: wraps ErrInvalidConfig if any parameter is out of range or an entry is not finite
func BuildPerspectiveMatrix(fovy, aspect, near, far float32) ([16]float32, error) {
	var out [16]float32
	if err := ValidateProjection(fovy, aspect, near, far); err != nil {
		return out, err
	}

	right := math32.Tan(Radians(fovy)/2) * near
	left := -right
	top := right / aspect
	bottom := -top

	rw := 1 / (right - left)
	rh := 1 / (top - bottom)
	rd := 1 / (far - near)

	out[0] = 2 * near * rw
	out[5] = 2 * near * rh
	out[8] = (right + left) * rw
	out[9] = (top + bottom) * rh
	out[10] = -(far + near) * rd
	out[11] = -1
	out[14] = -2 * far * near * rd

	if !Finite(out[:]...) {
		return [16]float32{}, fmt.Errorf("perspective fovy=%v aspect=%v near=%v far=%v overflows: %w",
			fovy, aspect, near, far, ErrInvalidConfig)
	}
	return out, nil
}

// ValidateProjection checks the perspective parameters accepted by BuildPerspectiveMatrix.
//
// Parameters:
//   - fovy: field of view in degrees
//   - aspect: viewport aspect ratio
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//
// Returns:
//   - error: wraps ErrInvalidConfig describing the first violated constraint, or nil
func ValidateProjection(fovy, aspect, near, far float32) error {
	switch {
	case !(fovy > 0 && fovy < 180):
		return fmt.Errorf("fovy %v outside (0, 180): %w", fovy, ErrInvalidConfig)
	case !(aspect > 0):
		return fmt.Errorf("aspect %v must be positive: %w", aspect, ErrInvalidConfig)
	case !(near > 0):
		return fmt.Errorf("near %v must be positive: %w", near, ErrInvalidConfig)
	case !(near < far):
		return fmt.Errorf("near %v must be less than far %v: %w", near, far, ErrInvalidConfig)
	}
	return nil
}

package camera

import "github.com/go-gl/mathgl/mgl32"

// OrbitCameraOption is a functional option for configuring an OrbitCamera.
// Options edit the Config that NewOrbitCamera validates before construction.
type OrbitCameraOption func(*Config)

// WithSize sets the initial viewport size.
//
// Parameters:
//   - width: viewport width in pixels
//   - height: viewport height in pixels
//
// Returns:
//   - OrbitCameraOption: functional option to set the viewport size
func WithSize(width, height int) OrbitCameraOption {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithBackground sets the clear colour renderers should use.
//
// Parameters:
//   - r, g, b: colour components in [0, 1]
//
// Returns:
//   - OrbitCameraOption: functional option to set the background colour
func WithBackground(r, g, b float32) OrbitCameraOption {
	return func(c *Config) {
		c.Background = [3]float32{r, g, b}
	}
}

// WithHeightAxis selects the world axis treated as vertical.
//
// Parameters:
//   - axis: HeightAxisY or HeightAxisZ
//
// Returns:
//   - OrbitCameraOption: functional option to set the height axis
func WithHeightAxis(axis HeightAxis) OrbitCameraOption {
	return func(c *Config) {
		c.HeightAxis = axis
	}
}

// WithTarget sets the orbit centre.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - OrbitCameraOption: functional option to set the target
func WithTarget(x, y, z float32) OrbitCameraOption {
	return func(c *Config) {
		c.Target = mgl32.Vec3{x, y, z}
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - OrbitCameraOption: functional option to set the near plane
func WithNear(near float32) OrbitCameraOption {
	return func(c *Config) {
		c.Near = near
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - OrbitCameraOption: functional option to set the far plane
func WithFar(far float32) OrbitCameraOption {
	return func(c *Config) {
		c.Far = far
	}
}

// WithFovy sets the field of view in degrees.
//
// Parameters:
//   - fovy: field of view in degrees, in (0, 180)
//
// Returns:
//   - OrbitCameraOption: functional option to set the field of view
func WithFovy(fovy float32) OrbitCameraOption {
	return func(c *Config) {
		c.Fovy = fovy
	}
}

// WithDistance sets the initial eye-to-target distance.
//
// Parameters:
//   - distance: orbit radius, must be positive
//
// Returns:
//   - OrbitCameraOption: functional option to set the distance
func WithDistance(distance float32) OrbitCameraOption {
	return func(c *Config) {
		c.Distance = distance
	}
}

// WithAzimuth sets the initial azimuth in degrees.
//
// Parameters:
//   - azimuth: horizontal angle in degrees
//
// Returns:
//   - OrbitCameraOption: functional option to set the azimuth
func WithAzimuth(azimuth float32) OrbitCameraOption {
	return func(c *Config) {
		c.Azimuth = azimuth
	}
}

// WithElevation sets the initial elevation in degrees.
//
// Parameters:
//   - elevation: vertical angle in degrees (0 = horizontal)
//
// Returns:
//   - OrbitCameraOption: functional option to set the elevation
func WithElevation(elevation float32) OrbitCameraOption {
	return func(c *Config) {
		c.Elevation = elevation
	}
}

// WithConfig replaces the whole configuration. Options after it still apply.
//
// Parameters:
//   - cfg: the configuration to start from
//
// Returns:
//   - OrbitCameraOption: functional option to set every field
func WithConfig(cfg Config) OrbitCameraOption {
	return func(c *Config) {
		*c = cfg
	}
}

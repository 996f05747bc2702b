package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/go-gl/mathgl/mgl32"
)

// HeightAxis selects which world axis is treated as vertical for the orbit.
type HeightAxis int

const (
	// HeightAxisY treats +Y as up. Azimuth 0 places the eye on +Z.
	HeightAxisY HeightAxis = iota

	// HeightAxisZ treats +Z as up. Azimuth 0 places the eye on -Y.
	HeightAxisZ
)

// String returns the lower-case axis name.
func (a HeightAxis) String() string {
	switch a {
	case HeightAxisY:
		return "y"
	case HeightAxisZ:
		return "z"
	default:
		return fmt.Sprintf("HeightAxis(%d)", int(a))
	}
}

// ParseHeightAxis converts "y"/"Y" or "z"/"Z" into a HeightAxis.
//
// Parameters:
//   - s: the axis name
//
// Returns:
//   - HeightAxis: the parsed axis
//   - error: wraps common.ErrInvalidConfig for any other input
func ParseHeightAxis(s string) (HeightAxis, error) {
	switch s {
	case "y", "Y":
		return HeightAxisY, nil
	case "z", "Z":
		return HeightAxisZ, nil
	}
	return HeightAxisY, fmt.Errorf("unknown height axis %q: %w", s, common.ErrInvalidConfig)
}

// Config is the full set of construction parameters for an OrbitCamera.
// Angles are in degrees. Use DefaultConfig as the starting point.
type Config struct {
	// Width and Height are the initial viewport size in pixels.
	Width  int
	Height int

	// Background is the RGB clear colour handed to renderers.
	Background [3]float32

	// HeightAxis is the world axis treated as up. Fixed for the camera lifetime.
	HeightAxis HeightAxis

	// Target is the orbit centre.
	Target mgl32.Vec3

	Near float32
	Far  float32

	// Fovy is the field of view in degrees, in (0, 180).
	Fovy float32

	// Distance is the eye-to-target distance, must be positive.
	Distance float32

	Azimuth   float32
	Elevation float32
}

// DefaultConfig returns the stock camera configuration: a 960x640 viewport,
// black background, Y-up, orbiting the origin at distance 5 with a 40° field of view.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	return Config{
		Width:      960,
		Height:     640,
		Background: [3]float32{0, 0, 0},
		HeightAxis: HeightAxisY,
		Target:     mgl32.Vec3{0, 0, 0},
		Near:       2.0,
		Far:        1000.0,
		Fovy:       40.0,
		Distance:   5.0,
		Azimuth:    0.0,
		Elevation:  0.0,
	}
}

// Validate checks the configuration for out-of-range values.
//
// Returns:
//   - error: wraps common.ErrInvalidConfig describing the first violation, or nil
func (c Config) Validate() error {
	if c.HeightAxis != HeightAxisY && c.HeightAxis != HeightAxisZ {
		return fmt.Errorf("unknown height axis %v: %w", c.HeightAxis, common.ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport %dx%d must be positive: %w", c.Width, c.Height, common.ErrInvalidConfig)
	}
	if !(c.Distance > 0) || !common.Finite(c.Distance) {
		return fmt.Errorf("distance %v must be positive and finite: %w", c.Distance, common.ErrInvalidConfig)
	}
	if !common.Finite(c.Azimuth, c.Elevation) || !common.Finite(c.Target[:]...) {
		return fmt.Errorf("azimuth %v, elevation %v and target %v must be finite: %w",
			c.Azimuth, c.Elevation, c.Target, common.ErrInvalidConfig)
	}
	return common.ValidateProjection(c.Fovy, float32(c.Width)/float32(c.Height), c.Near, c.Far)
}

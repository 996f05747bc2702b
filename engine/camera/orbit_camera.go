package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// degenerateAspect is the aspect ratio used when the viewport has no area.
const degenerateAspect = 1e4

// minZoomFovy is the narrowest field of view, in degrees, that zooming in reaches.
const minZoomFovy = 1e-3

// OrbitCamera defines a single camera orbiting a target point.
// It owns the spherical pose (azimuth, elevation, distance), the projection
// settings, and the drag/scroll interaction rules, and derives eye and up from them.
// OrbitCamera is not safe for concurrent use; drive it from the event loop thread.
type OrbitCamera interface {
	// Azimuth returns the horizontal orbit angle.
	//
	// Returns:
	//   - float32: azimuth in degrees, in (-180, 180]
	Azimuth() float32

	// Elevation returns the vertical orbit angle.
	//
	// Returns:
	//   - float32: elevation in degrees, in (-180, 180]
	Elevation() float32

	// Distance returns the eye-to-target distance.
	//
	// Returns:
	//   - float32: the orbit radius
	Distance() float32

	// Fovy returns the field of view.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fovy() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Aspect returns the viewport aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Target returns the orbit centre.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Eye returns the derived camera position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space eye position
	Eye() mgl32.Vec3

	// Up returns the derived up vector.
	//
	// Returns:
	//   - mgl32.Vec3: unit vector along the height axis, negated past the poles
	Up() mgl32.Vec3

	// HeightAxis returns the vertical axis convention.
	//
	// Returns:
	//   - HeightAxis: HeightAxisY or HeightAxisZ
	HeightAxis() HeightAxis

	// Viewport returns the stored viewport size.
	//
	// Returns:
	//   - width, height: viewport size in pixels
	Viewport() (width, height int)

	// Background returns the configured clear colour.
	//
	// Returns:
	//   - [3]float32: RGB components
	Background() [3]float32

	// Home returns the pose captured at construction.
	//
	// Returns:
	//   - HomePose: the saved fovy, azimuth, elevation and distance
	Home() HomePose

	// DragState reports whether a drag session is in progress.
	//
	// Returns:
	//   - DragState: DragIdle or DragActive
	DragState() DragState

	// UpdatePose applies any subset of pose changes, normalises the angles and
	// recomputes eye and up. A zero PoseDelta leaves the camera unchanged.
	//
	// Parameters:
	//   - delta: the changes to apply
	//
	// Returns:
	//   - error: wraps common.ErrInvalidConfig if the new distance is not positive; the state is unchanged
	UpdatePose(delta PoseDelta) error

	// OnDragStart begins a drag session at the given pointer position.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	OnDragStart(x, y float32)

	// OnDragMove rotates the camera by the pointer movement since the last event.
	// Does nothing unless a drag session is active.
	//
	// Parameters:
	//   - x, y: pointer position in pixels
	OnDragMove(x, y float32)

	// OnDragEnd ends the current drag session.
	OnDragEnd()

	// OnScroll narrows (direction > 0) or widens (direction < 0) the field of view.
	//
	// Parameters:
	//   - direction: scroll direction, only the sign is used
	OnScroll(direction float32)

	// ResetToHome restores fovy, azimuth, elevation and distance to the values
	// captured at construction. Target and height axis are kept.
	ResetToHome()

	// OnViewportResize stores a new viewport size and recomputes the aspect ratio.
	// A size with no area uses a fixed wide aspect so the projection stays valid.
	//
	// Parameters:
	//   - width, height: viewport size in pixels
	OnViewportResize(width, height int)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: new near plane distance
	//
	// Returns:
	//   - error: wraps common.ErrInvalidConfig unless 0 < near < far
	SetNear(near float32) error

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: new far plane distance
	//
	// Returns:
	//   - error: wraps common.ErrInvalidConfig unless far > near
	SetFar(far float32) error

	// ViewMatrix builds the current view matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	//   - error: wraps common.ErrDegenerateBasis when the eye sits exactly on a pole
	ViewMatrix() ([16]float32, error)

	// ProjectionMatrix builds the current perspective matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	//   - error: wraps common.ErrInvalidConfig if the projection parameters are out of range
	ProjectionMatrix() ([16]float32, error)

	// ViewProjectionMatrix builds projection * view (column-major).
	//
	// Returns:
	//   - [16]float32: the combined matrix
	//   - error: any error from ViewMatrix or ProjectionMatrix
	ViewProjectionMatrix() ([16]float32, error)

	// Uniform packs the current matrices and eye position for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	//   - error: any error from ViewMatrix or ProjectionMatrix
	Uniform() (GPUCameraUniform, error)
}

// PoseDelta describes a pose change for UpdatePose. Angles are relative,
// Distance and Target are absolute and only applied when non-nil.
type PoseDelta struct {
	DeltaAzimuth   float32
	DeltaElevation float32
	Distance       *float32
	Target         *mgl32.Vec3
}

// HomePose is the orientation snapshot restored by ResetToHome.
type HomePose struct {
	Fovy      float32
	Azimuth   float32
	Elevation float32
	Distance  float32
}

// orbitCameraImpl is the single implementation of OrbitCamera.
type orbitCameraImpl struct {
	heightAxis HeightAxis
	target     mgl32.Vec3

	// Spherical pose, degrees
	azimuth   float32
	elevation float32
	distance  float32

	fovy   float32
	near   float32
	far    float32
	aspect float32

	width      int
	height     int
	background [3]float32

	// Derived, see updateEyeAndUp
	eye mgl32.Vec3
	up  mgl32.Vec3

	home HomePose
	drag dragSession
}

// Compile-time interface compliance check
var _ OrbitCamera = &orbitCameraImpl{}

// NewOrbitCamera creates an OrbitCamera from DefaultConfig modified by the given options.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrbitCamera: the newly created camera
//   - error: wraps common.ErrInvalidConfig if the resulting configuration is invalid
func NewOrbitCamera(options ...OrbitCameraOption) (OrbitCamera, error) {
	cfg := DefaultConfig()
	for _, option := range options {
		option(&cfg)
	}
	return NewOrbitCameraFromConfig(cfg)
}

// NewOrbitCameraFromConfig creates an OrbitCamera from an explicit configuration.
//
// Parameters:
//   - cfg: the camera configuration
//
// Returns:
//   - OrbitCamera: the newly created camera
//   - error: wraps common.ErrInvalidConfig if cfg is invalid
func NewOrbitCameraFromConfig(cfg Config) (OrbitCamera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new orbit camera: %w", err)
	}

	c := &orbitCameraImpl{
		heightAxis: cfg.HeightAxis,
		target:     cfg.Target,
		azimuth:    common.NormalizeDegrees(cfg.Azimuth),
		elevation:  common.NormalizeDegrees(cfg.Elevation),
		distance:   cfg.Distance,
		fovy:       cfg.Fovy,
		near:       cfg.Near,
		far:        cfg.Far,
		background: cfg.Background,
	}
	c.OnViewportResize(cfg.Width, cfg.Height)
	c.updateEyeAndUp()

	c.home = HomePose{
		Fovy:      c.fovy,
		Azimuth:   c.azimuth,
		Elevation: c.elevation,
		Distance:  c.distance,
	}
	return c, nil
}

// --- internal helpers ---

// updateEyeAndUp recomputes eye and up from the spherical pose and target.
// Must be called whenever azimuth, elevation, distance, or target changes.
func (c *orbitCameraImpl) updateEyeAndUp() {
	upSign := float32(1)
	if c.elevation < -90 || c.elevation > 90 {
		upSign = -1
	}

	azim := common.Radians(c.azimuth)
	elev := common.Radians(c.elevation)
	planar := c.distance * math32.Cos(elev)
	height := c.distance * math32.Sin(elev)

	switch c.heightAxis {
	case HeightAxisZ:
		azim -= math32.Pi / 2
		c.eye = c.target.Add(mgl32.Vec3{planar * math32.Cos(azim), planar * math32.Sin(azim), height})
		c.up = mgl32.Vec3{0, 0, upSign}
	default:
		c.eye = c.target.Add(mgl32.Vec3{planar * math32.Sin(azim), height, planar * math32.Cos(azim)})
		c.up = mgl32.Vec3{0, upSign, 0}
	}
}

// upComponent returns the up vector's component along the height axis (+1 or -1).
func (c *orbitCameraImpl) upComponent() float32 {
	if c.heightAxis == HeightAxisZ {
		return c.up[2]
	}
	return c.up[1]
}

// --- accessors ---

func (c *orbitCameraImpl) Azimuth() float32 {
	return c.azimuth
}

func (c *orbitCameraImpl) Elevation() float32 {
	return c.elevation
}

func (c *orbitCameraImpl) Distance() float32 {
	return c.distance
}

func (c *orbitCameraImpl) Fovy() float32 {
	return c.fovy
}

func (c *orbitCameraImpl) Near() float32 {
	return c.near
}

func (c *orbitCameraImpl) Far() float32 {
	return c.far
}

func (c *orbitCameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *orbitCameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *orbitCameraImpl) Eye() mgl32.Vec3 {
	return c.eye
}

func (c *orbitCameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *orbitCameraImpl) HeightAxis() HeightAxis {
	return c.heightAxis
}

func (c *orbitCameraImpl) Viewport() (width, height int) {
	return c.width, c.height
}

func (c *orbitCameraImpl) Background() [3]float32 {
	return c.background
}

func (c *orbitCameraImpl) Home() HomePose {
	return c.home
}

func (c *orbitCameraImpl) DragState() DragState {
	return c.drag.state
}

// --- pose updates ---

func (c *orbitCameraImpl) UpdatePose(delta PoseDelta) error {
	if !common.Finite(delta.DeltaAzimuth, delta.DeltaElevation) {
		return fmt.Errorf("update pose: angle delta (%v, %v) must be finite: %w",
			delta.DeltaAzimuth, delta.DeltaElevation, common.ErrInvalidConfig)
	}
	if delta.Distance != nil && !(*delta.Distance > 0 && common.Finite(*delta.Distance)) {
		return fmt.Errorf("update pose: distance %v must be positive and finite: %w", *delta.Distance, common.ErrInvalidConfig)
	}
	if delta.Target != nil && !common.Finite(delta.Target[:]...) {
		return fmt.Errorf("update pose: target %v must be finite: %w", *delta.Target, common.ErrInvalidConfig)
	}

	if delta.Target != nil {
		c.target = *delta.Target
	}
	if delta.Distance != nil {
		c.distance = *delta.Distance
	}
	c.azimuth = common.NormalizeDegrees(c.azimuth + delta.DeltaAzimuth)
	c.elevation = common.NormalizeDegrees(c.elevation + delta.DeltaElevation)
	c.updateEyeAndUp()
	return nil
}

func (c *orbitCameraImpl) OnScroll(direction float32) {
	var fovy float32
	switch {
	case direction > 0:
		if c.fovy <= minZoomFovy {
			return
		}
		fovy = max(c.fovy*0.95, minZoomFovy)
	case direction < 0:
		fovy = c.fovy + (180-c.fovy)/180
	default:
		return
	}
	// Both steps are asymptotic; float rounding must not push fovy onto a bound.
	if fovy > 0 && fovy < 180 {
		c.fovy = fovy
	}
}

func (c *orbitCameraImpl) ResetToHome() {
	c.fovy = c.home.Fovy
	c.azimuth = c.home.Azimuth
	c.elevation = c.home.Elevation
	c.distance = c.home.Distance
	c.updateEyeAndUp()
}

func (c *orbitCameraImpl) OnViewportResize(width, height int) {
	c.width = width
	c.height = height
	if width > 0 && height > 0 {
		c.aspect = float32(width) / float32(height)
	} else {
		c.aspect = degenerateAspect
	}
}

func (c *orbitCameraImpl) SetNear(near float32) error {
	if !(near > 0 && near < c.far) {
		return fmt.Errorf("set near %v with far %v: %w", near, c.far, common.ErrInvalidConfig)
	}
	c.near = near
	return nil
}

func (c *orbitCameraImpl) SetFar(far float32) error {
	if !(far > c.near) {
		return fmt.Errorf("set far %v with near %v: %w", far, c.near, common.ErrInvalidConfig)
	}
	c.far = far
	return nil
}

// --- matrices ---

func (c *orbitCameraImpl) ViewMatrix() ([16]float32, error) {
	return common.BuildViewMatrix(c.eye, c.target, c.up)
}

func (c *orbitCameraImpl) ProjectionMatrix() ([16]float32, error) {
	return common.BuildPerspectiveMatrix(c.fovy, c.aspect, c.near, c.far)
}

func (c *orbitCameraImpl) ViewProjectionMatrix() ([16]float32, error) {
	var out [16]float32
	view, err := c.ViewMatrix()
	if err != nil {
		return out, err
	}
	proj, err := c.ProjectionMatrix()
	if err != nil {
		return out, err
	}
	common.Mul4(out[:], proj[:], view[:])
	return out, nil
}

func (c *orbitCameraImpl) Uniform() (GPUCameraUniform, error) {
	view, err := c.ViewMatrix()
	if err != nil {
		return GPUCameraUniform{}, err
	}
	proj, err := c.ProjectionMatrix()
	if err != nil {
		return GPUCameraUniform{}, err
	}
	return GPUCameraUniform{
		View:           view,
		Projection:     proj,
		CameraPosition: c.eye,
	}, nil
}

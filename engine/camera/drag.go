package camera

// DragState is the state of the pointer-drag interaction.
type DragState int

const (
	// DragIdle means no button is held; pointer moves are ignored.
	DragIdle DragState = iota

	// DragActive means the primary button is held and moves orbit the camera.
	DragActive
)

// String returns the state name.
func (s DragState) String() string {
	if s == DragActive {
		return "active"
	}
	return "idle"
}

// dragSession tracks the transient state of one press-to-release drag.
// Deltas are computed per event and never stored.
type dragSession struct {
	state DragState
	lastX float32
	lastY float32
}

func (c *orbitCameraImpl) OnDragStart(x, y float32) {
	c.drag.state = DragActive
	c.drag.lastX = x
	c.drag.lastY = y
}

func (c *orbitCameraImpl) OnDragMove(x, y float32) {
	if c.drag.state != DragActive {
		return
	}
	dx := x - c.drag.lastX
	dy := y - c.drag.lastY
	c.drag.lastX = x
	c.drag.lastY = y

	var delta PoseDelta
	if c.width > 0 {
		// Past a pole the view is upside down; the azimuth step follows the up sign.
		delta.DeltaAzimuth = -180 * dx / float32(c.width) * c.upComponent()
	}
	if c.height > 0 {
		delta.DeltaElevation = 90 * dy / float32(c.height)
	}
	// Angle-only deltas cannot fail validation.
	_ = c.UpdatePose(delta)
}

func (c *orbitCameraImpl) OnDragEnd() {
	c.drag.state = DragIdle
}

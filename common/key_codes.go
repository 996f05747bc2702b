package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR    = 82  // R key (ASCII)
	KeyEsc  = 256 // Escape key (GLFW)
	KeyHome = 268 // Home key (GLFW)
)

// MouseButton identifies a pointer button independently of the windowing backend.
type MouseButton int

const (
	// MouseButtonPrimary is the left button; holding it drags the orbit.
	MouseButtonPrimary MouseButton = iota

	// MouseButtonSecondary is the right button; releasing it restores the home pose.
	MouseButtonSecondary

	// MouseButtonMiddle is the wheel button.
	MouseButtonMiddle
)

// String returns a human readable button name.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonPrimary:
		return "primary"
	case MouseButtonSecondary:
		return "secondary"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

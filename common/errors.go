package common

import "errors"

var (
	// ErrInvalidConfig reports an out-of-range camera or projection parameter:
	// a non-positive distance, near >= far, or a field of view outside (0, 180).
	ErrInvalidConfig = errors.New("invalid camera configuration")

	// ErrDegenerateBasis reports an eye/target/up combination that cannot form
	// an orthonormal view basis, e.g. eye == target or up parallel to the view direction.
	ErrDegenerateBasis = errors.New("degenerate view basis")
)

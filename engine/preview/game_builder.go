package preview

import (
	"image/color"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/model"
	"github.com/go-gl/mathgl/mgl32"
)

// GameOption is a functional option for configuring a Game via NewGame.
type GameOption func(*Game)

// WithModel adds a model's edges as wireframe segments.
//
// Parameters:
//   - m: the model to outline
//
// Returns:
//   - GameOption: option function to apply
func WithModel(m model.Model) GameOption {
	return func(g *Game) {
		g.segments = append(g.segments, modelSegments(m)...)
	}
}

// WithSegments adds raw line segments.
//
// Parameters:
//   - segments: world-space lines to draw
//
// Returns:
//   - GameOption: option function to apply
func WithSegments(segments ...Segment) GameOption {
	return func(g *Game) {
		g.segments = append(g.segments, segments...)
	}
}

// WithAxes adds the world X (red), Y (green) and Z (blue) axes from the origin.
//
// Parameters:
//   - length: axis length
//
// Returns:
//   - GameOption: option function to apply
func WithAxes(length float32) GameOption {
	return func(g *Game) {
		var origin mgl32.Vec3
		g.segments = append(g.segments,
			Segment{A: origin, B: mgl32.Vec3{length, 0, 0}, Color: color.RGBA{R: 0xff, A: 0xff}},
			Segment{A: origin, B: mgl32.Vec3{0, length, 0}, Color: color.RGBA{G: 0xff, A: 0xff}},
			Segment{A: origin, B: mgl32.Vec3{0, 0, length}, Color: color.RGBA{B: 0xff, A: 0xff}},
		)
	}
}

// WithLineWidth sets the stroke width in pixels.
//
// Parameters:
//   - width: stroke width, must be positive
//
// Returns:
//   - GameOption: option function to apply
func WithLineWidth(width float32) GameOption {
	return func(g *Game) {
		if width > 0 {
			g.lineWidth = width
		}
	}
}

// WithRouterOptions passes options to the input router the preview creates.
//
// Parameters:
//   - options: router options such as input.WithResetKeys
//
// Returns:
//   - GameOption: option function to apply
func WithRouterOptions(options ...input.RouterOption) GameOption {
	return func(g *Game) {
		g.routerOptions = append(g.routerOptions, options...)
	}
}

package preview

import (
	"image/color"
	"log"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Segment is one world-space line drawn by the preview.
type Segment struct {
	A, B  mgl32.Vec3
	Color color.RGBA
}

// Game is a wireframe orbit viewer implementing ebiten.Game. It drives the same
// OrbitCamera and input.Router the WebGPU engine uses, but draws with ebiten's
// vector package.
type Game struct {
	camera   camera.OrbitCamera
	router   input.Router
	segments []Segment

	routerOptions []input.RouterOption
	lineWidth     float32

	width, height int
	lastX, lastY  int
	lastVP        [16]float32
	haveVP        bool
}

var _ ebiten.Game = &Game{}

// NewGame creates a preview for cam.
//
// Parameters:
//   - cam: the camera to drive and draw from
//   - options: functional options adding geometry or tuning the preview
//
// Returns:
//   - *Game: the preview, ready for ebiten.RunGame
func NewGame(cam camera.OrbitCamera, options ...GameOption) *Game {
	g := &Game{
		camera:    cam,
		lineWidth: 1.5,
	}
	for _, opt := range options {
		opt(g)
	}
	g.router = input.NewRouter(cam, g.routerOptions...)
	g.width, g.height = cam.Viewport()
	return g
}

// Segments returns the lines the preview draws.
func (g *Game) Segments() []Segment {
	return g.segments
}

// Update polls ebiten input and forwards it to the router.
// Escape ends the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	fx, fy := float32(x), float32(y)
	for _, b := range []struct {
		from ebiten.MouseButton
		to   common.MouseButton
	}{
		{ebiten.MouseButtonLeft, common.MouseButtonPrimary},
		{ebiten.MouseButtonRight, common.MouseButtonSecondary},
		{ebiten.MouseButtonMiddle, common.MouseButtonMiddle},
	} {
		if inpututil.IsMouseButtonJustPressed(b.from) {
			g.router.PointerDown(b.to, fx, fy)
		}
		if inpututil.IsMouseButtonJustReleased(b.from) {
			g.router.PointerUp(b.to, fx, fy)
		}
	}
	if x != g.lastX || y != g.lastY {
		g.router.PointerMove(fx, fy)
		g.lastX, g.lastY = x, y
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.router.Scroll(float32(dy))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.router.KeyDown(common.KeyR)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.router.KeyDown(common.KeyHome)
	}
	return nil
}

// Draw clears to the camera background and strokes every visible segment.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.camera.Background()
	screen.Fill(color.RGBA{R: unit8(bg[0]), G: unit8(bg[1]), B: unit8(bg[2]), A: 0xff})

	for _, l := range g.lines() {
		vector.StrokeLine(screen, l.x0, l.y0, l.x1, l.y1, g.lineWidth, l.color, true)
	}
}

// Layout tracks the window size so the camera aspect follows it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.router.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// screenLine is a segment after projection.
type screenLine struct {
	x0, y0, x1, y1 float32
	color          color.RGBA
}

// lines projects every segment for the current pose. At a pole, where no view
// basis exists, the previous matrix is reused.
func (g *Game) lines() []screenLine {
	vp, err := g.camera.ViewProjectionMatrix()
	switch {
	case err == nil:
		g.lastVP = vp
		g.haveVP = true
	case !g.haveVP:
		return nil
	default:
		vp = g.lastVP
	}

	m := mgl32.Mat4(vp)
	out := make([]screenLine, 0, len(g.segments))
	for _, s := range g.segments {
		a, b, ok := clipNear(m.Mul4x1(s.A.Vec4(1)), m.Mul4x1(s.B.Vec4(1)))
		if !ok || a[3] <= clipEpsilon || b[3] <= clipEpsilon {
			continue
		}
		x0, y0 := toScreen(a, g.width, g.height)
		x1, y1 := toScreen(b, g.width, g.height)
		out = append(out, screenLine{x0: x0, y0: y0, x1: x1, y1: y1, color: s.Color})
	}
	return out
}

// Run opens a resizable window sized to the camera viewport and blocks until it closes.
//
// Parameters:
//   - g: the preview to run
//   - title: the window title
//
// Returns:
//   - error: any error from ebiten other than a normal Escape exit
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	log.Printf("preview: closed at azimuth=%.2f elevation=%.2f fovy=%.2f",
		g.camera.Azimuth(), g.camera.Elevation(), g.camera.Fovy())
	return nil
}

// unit8 converts a [0, 1] colour component to a byte, clamping out-of-range values.
func unit8(c float32) uint8 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 0xff
	}
	return uint8(c*255 + 0.5)
}

// modelSegments turns a model's triangle edges into coloured segments. Each
// segment takes the colour of its first vertex.
func modelSegments(m model.Model) []Segment {
	verts := m.Vertices()
	edges := m.Edges()
	out := make([]Segment, 0, len(edges))
	for _, e := range edges {
		if int(e[0]) >= len(verts) || int(e[1]) >= len(verts) {
			continue
		}
		a, b := verts[e[0]], verts[e[1]]
		out = append(out, Segment{
			A:     mgl32.Vec3(a.Position),
			B:     mgl32.Vec3(b.Position),
			Color: color.RGBA{R: unit8(a.Color[0]), G: unit8(a.Color[1]), B: unit8(a.Color[2]), A: 0xff},
		})
	}
	return out
}

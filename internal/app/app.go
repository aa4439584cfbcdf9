//go:build ebiten

package app

import (
	"image/color"

	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var materialKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts an editing session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int

	cursor   core.Point
	onGrid   bool
	erasing  bool
	lastSize core.Size
}

// New constructs a Game drawing each tile as a scale×scale block with a HUD
// panel of hudWidth pixels on the right.
func New(session *Session, scale, hudWidth int) *Game {
	size := session.World().Size()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(session, hudWidth),
		overlay:  ui.NewOverlay(scale),
		scale:    scale,
		hudWidth: hudWidth,
		lastSize: size,
	}
}

// Update handles per-frame input and advances the simulation when a tick is
// due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.handleMouse()

	size := g.session.World().Size()
	if g.hud != nil {
		g.hud.Update(size.W * g.scale)
	}
	g.session.Advance()
	return nil
}

func (g *Game) handleKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ) && shift:
		g.session.Redo()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.session.Undo()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyY):
		g.session.Redo()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}

	brush := g.session.Brush()
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.session.SetIntParameter("brush_radius", brush.Radius-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.session.SetIntParameter("brush_radius", brush.Radius+1)
	}
	tps := g.session.TPS()
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.session.SetIntParameter("tps", tps-5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.session.SetIntParameter("tps", tps+5)
	}
	for i, key := range materialKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.session.SetIntParameter("material", i)
		}
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	size := g.session.World().Size()
	g.onGrid = mx >= 0 && my >= 0 && mx < size.W*g.scale && my < size.H*g.scale
	g.cursor = core.Point{X: mx / g.scale, Y: my / g.scale}

	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	g.erasing = erase
	if !paint && !erase {
		g.session.EndStroke()
		return
	}
	if !g.onGrid {
		return
	}
	g.session.BeginStroke()
	if erase {
		g.session.EraseAt(g.cursor)
		return
	}
	g.session.PaintAt(g.cursor)
}

// Draw renders the world, the HUD and the brush outline.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	world := g.session.World()
	size := world.Size()
	if size != g.lastSize {
		g.painter = render.NewGridPainter(size.W, size.H)
		g.lastSize = size
	}
	g.painter.BlitPalette(screen, world.Cells(), world.Palette(), g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, size.W*g.scale, g.scale)
	}
	if g.onGrid && g.overlay != nil {
		g.overlay.DrawBrush(screen, g.cursor, g.session.Brush().Radius, g.erasing)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.World().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

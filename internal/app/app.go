//go:build ebiten

package app

import (
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/session"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface. The board is drawn at
// the top of the window with the HUD strip underneath.
type Game struct {
	session *session.Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.FixedStep

	seed int64
}

// New constructs a Game for the provided session.
func New(s *session.Session, cfg *Config) *Game {
	size := s.Size()
	painter := render.NewGridPainter(size.W, size.H, cfg.Scale, render.DefaultPalette())
	w, h := painter.Size()
	return &Game{
		session: s,
		painter: painter,
		hud:     ui.NewHUD(s, w, h),
		overlay: ui.NewOverlay(painter.Scale()),
		pacer:   core.NewFixedStep(cfg.Interval),
		seed:    cfg.Seed,
	}
}

// WindowSize returns the window dimensions for this game.
func (g *Game) WindowSize() (int, int) {
	w, h := g.painter.Size()
	return w, h + ui.PanelHeight
}

// Update handles per-frame input and advances the simulation when its
// interval has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.session.Randomize(g.seed)
	}
	g.overlay.Update()

	switch g.hud.Update(g.session.Playing()) {
	case ui.ActionPlay:
		g.togglePlay()
	case ui.ActionStep:
		g.session.Step()
	case ui.ActionReset:
		g.session.Reset()
	case ui.ActionNone:
		g.handleCellClick()
	}

	if g.pacer.ShouldStep() && g.session.Playing() {
		g.session.Step()
	}
	return nil
}

func (g *Game) togglePlay() {
	if g.session.TogglePlay() {
		g.pacer.Restart()
	}
}

func (g *Game) handleCellClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	scale := g.painter.Scale()
	core.ToggleAt(g.session, scale, scale, x, y)
}

// Draw renders the board, the neighbor overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.session.Frame()
	g.painter.Blit(screen, frame.Grid.Cells())
	g.overlay.Draw(screen, frame.Grid)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}

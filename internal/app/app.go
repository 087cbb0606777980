//go:build ebiten

package app

import (
	"time"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/sims/life"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxStepsPerFrame bounds catch-up work when the tick rate exceeds the frame rate.
const maxStepsPerFrame = 8

// Options configures a Game.
type Options struct {
	Scale int
	Seed  int64
	Step  time.Duration
	Mode  render.Mode
}

// Game adapts a Life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Life
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep

	mode     render.Mode
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, opts Options) *Game {
	size := sim.Size()
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim),
		overlay: ui.NewOverlay(size.W, size.H, opts.Scale),
		clock:   core.NewFixedStep(opts.Step),
		mode:    opts.Mode,
		scale:   opts.Scale,
		seed:    opts.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on schedule.
// Stamping and selection changes happen here, never during a step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mode = g.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sim.NextRule()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sim.PreviousRule()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.sim.NextPattern()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.sim.PreviousPattern()
	}

	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.Stamp(cx, cy)
	}
	g.overlay.Update(cx, cy, g.sim.Pattern())

	steps := g.clock.Pending(time.Now(), maxStepsPerFrame)
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}

	status := "Mode: " + g.mode.String()
	if g.paused {
		status += "  [paused]"
	}
	g.hud.Update(status)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid().Cells(), g.mode, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}

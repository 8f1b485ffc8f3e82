//go:build ebiten

package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-life/sim"
	"github.com/sheikhrachel/go-life/utils"
)

// Classic purple-on-blue Life palette.
var (
	aliveColor = color.RGBA{R: 0x5e, G: 0x48, B: 0xe8, A: 0xff}
	deadColor  = color.RGBA{R: 0x48, G: 0xb2, B: 0xe8, A: 0xff}
	hudColor   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Game adapts the simulator to the ebiten.Game interface. Ebiten owns the
// frame loop here, so generation pacing uses a fixed-step accumulator
// instead of the terminal path's ticker.
type Game struct {
	sim     *sim.Simulator
	painter *gridPainter
	pacer   *fixedStep
	scale   int

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulator.
func New(s *sim.Simulator, cfg utils.Config) *Game {
	return &Game{
		sim:     s,
		painter: newGridPainter(cfg.Width, cfg.Height),
		pacer:   newFixedStep(cfg.FrameInterval),
		scale:   cfg.Scale,
	}
}

// Update handles input and advances the simulation when a frame is due.
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
		if err := g.sim.Reseed(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if (!g.paused && g.pacer.shouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation and the HUD line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.blit(screen, g.sim.Grid(), aliveColor, deadColor, g.scale)

	hud := fmt.Sprintf("gen %d  pop %d", g.sim.Generation(), g.sim.Population())
	if g.paused {
		hud += "  [paused]"
	}
	text.Draw(screen, hud, basicfont.Face7x13, 4, 14, hudColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := g.sim.Grid()
	return grid.GetWidth() * g.scale, grid.GetHeight() * g.scale
}

// Run opens the window and blocks until it is closed or the user quits.
func Run(cfg utils.Config, s *sim.Simulator) error {
	game := New(s, cfg)

	ebiten.SetWindowTitle("go-life")
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] window loop")
	}
	return nil
}

// fixedStep accumulates wall time so the simulation advances once per
// configured interval regardless of the display TPS.
type fixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func newFixedStep(step time.Duration) *fixedStep {
	if step <= 0 {
		step = time.Second / 60
	}
	return &fixedStep{step: step, accumulator: step}
}

// shouldStep reports whether the simulation should advance by one tick.
func (f *fixedStep) shouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

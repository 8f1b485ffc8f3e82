package sim

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// historyDepth bounds the fingerprint window used for stagnation detection,
// catching still lifes and oscillators up to period 4.
const historyDepth = 5

// Next computes the following generation into an independent grid, leaving
// the source untouched. Grids from the pool are cleared before reuse; a nil
// pool falls back to a fresh allocation. Deterministic: identical inputs
// produce identical outputs.
func Next(g *model.Grid, pool *model.GridPool) *model.Grid {
	width, height := g.GetWidth(), g.GetHeight()

	var next *model.Grid
	if pool != nil {
		next = pool.Get(width, height)
	} else {
		next = model.NewEmptyGrid(width, height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if rules.Next(g.Get(x, y), g.LiveNeighborCount(x, y)) {
				next.Set(x, y, true)
			}
		}
	}
	return next
}

// Run is the blocking entry point: it seeds a board of the given dimensions
// and fill rate, then drives the generation loop at the given frame interval
// until ctx is cancelled.
func Run(ctx context.Context, width, height int, fillRate float64, frameInterval time.Duration, renderer model.Renderer) error {
	cfg := utils.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.FillRate = fillRate
	cfg.FrameInterval = frameInterval
	cfg.MaxGenerations = 0

	s, err := NewSimulator(cfg, renderer, nil, utils.NewRNG(utils.SeedOrNow(cfg.Seed)))
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// Simulator owns the current generation and drives the
// compute -> render -> wait loop.
type Simulator struct {
	cfg      utils.Config
	renderer model.Renderer
	ticker   Ticker
	pool     *model.GridPool
	stats    *utils.Stats

	grid       *model.Grid
	generation int
	history    []string // recent grid fingerprints, oldest first

	// OnFrame, when set, runs once per frame between Clear and Display.
	// The status line hooks in here.
	OnFrame func(s *Simulator)
}

// NewSimulator seeds the initial generation from src; this is the only
// fallible step. A nil ticker selects an IntervalTicker at the configured
// frame interval.
func NewSimulator(cfg utils.Config, renderer model.Renderer, ticker Ticker, src utils.RandSource) (*Simulator, error) {
	grid, err := model.NewGrid(cfg.Width, cfg.Height, cfg.FillRate, src)
	if err != nil {
		return nil, errors.Wrap(err, "[NewSimulator] initial grid")
	}

	if ticker == nil {
		ticker = NewIntervalTicker(cfg.FrameInterval)
	}

	s := &Simulator{
		cfg:      cfg,
		renderer: renderer,
		ticker:   ticker,
		pool:     model.NewGridPool(),
		stats:    utils.NewStats(),
		grid:     grid,
	}
	s.recordHistory()
	return s, nil
}

// Grid exposes the current generation as a read-only snapshot. Callers must
// not hold it across a Step.
func (s *Simulator) Grid() *model.Grid { return s.grid }

// Generation returns the number of steps taken so far.
func (s *Simulator) Generation() int { return s.generation }

// Population returns the number of living cells in the current generation.
func (s *Simulator) Population() int { return s.grid.CountLivingCells() }

// Stats exposes the running performance figures.
func (s *Simulator) Stats() *utils.Stats { return s.stats }

// Step advances the simulation by one generation, swapping in a freshly
// built grid and recycling the old one.
func (s *Simulator) Step() {
	next := Next(s.grid, s.pool)
	s.pool.Put(s.grid)
	s.grid = next
	s.generation++
	s.recordHistory()
}

// Reseed replaces the board with a fresh random fill from the given seed.
// The generation counter keeps counting; only the cells reset.
func (s *Simulator) Reseed(seed int64) error {
	grid, err := model.NewGrid(s.cfg.Width, s.cfg.Height, s.cfg.FillRate, utils.NewRNG(seed))
	if err != nil {
		return errors.Wrap(err, "[Reseed] replacement grid")
	}
	s.pool.Put(s.grid)
	s.grid = grid
	s.history = s.history[:0]
	s.recordHistory()
	return nil
}

func (s *Simulator) recordHistory() {
	s.history = append(s.history, s.grid.Hash())
	if len(s.history) > historyDepth {
		s.history = s.history[1:]
	}
}

// IsStagnant reports whether the board has settled into a still life or a
// short cycle within the fingerprint window.
func (s *Simulator) IsStagnant() bool {
	if len(s.history) < 2 {
		return false
	}
	current := s.history[len(s.history)-1]
	for _, h := range s.history[:len(s.history)-1] {
		if h == current {
			return true
		}
	}
	return false
}

// Run drives the generation loop: render, wait for the next tick, step.
// It blocks until ctx is cancelled or the configured generation limit is
// reached, then returns nil; each generation boundary is a consistent
// snapshot, so cancellation never leaves partial state.
func (s *Simulator) Run(ctx context.Context) error {
	lastFrame := time.Now()

	for {
		if ctx.Err() != nil {
			return nil
		}

		s.renderer.Clear()
		s.stats.Update(s.generation, s.Population(), time.Since(lastFrame))
		lastFrame = time.Now()

		if s.OnFrame != nil {
			s.OnFrame(s)
		}
		s.renderer.Display(s.grid)

		if s.cfg.MaxGenerations > 0 && s.generation >= s.cfg.MaxGenerations {
			return nil
		}

		if err := s.ticker.Wait(ctx); err != nil {
			return nil
		}
		s.Step()
	}
}

package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// Construction is the only fallible operation in the core. The caller must
// fix its input; there is nothing to retry.
var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrInvalidFillRate   = errors.New("fill rate must be within [0, 1]")
)

// Grid holds one generation of the board. Coordinates wrap toroidally, so
// the last row and column are adjacent to the first and neighbor lookups
// have no edge case.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid constructs a width x height grid, setting each cell alive with
// probability fillRate via an independent draw from src.
func NewGrid(width, height int, fillRate float64, src utils.RandSource) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] got %dx%d", width, height)
	}
	if fillRate < 0 || fillRate > 1 {
		return nil, errors.Wrapf(ErrInvalidFillRate, "[NewGrid] got %v", fillRate)
	}

	g := NewEmptyGrid(width, height)
	for y := range height {
		for x := range width {
			g.cells[y][x] = src.Float64() < fillRate
		}
	}
	return g, nil
}

// NewEmptyGrid allocates an all-dead grid. It performs no validation; it
// exists for the pool and for the simulator, which derive dimensions from an
// already-validated grid.
func NewEmptyGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int { return g.width }

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int { return g.height }

// wrap maps any integer coordinate pair onto the torus.
func (g *Grid) wrap(x, y int) (int, int) {
	x = (x%g.width + g.width) % g.width
	y = (y%g.height + g.height) % g.height
	return x, y
}

// Get returns the state of the cell at the wrapped coordinate. It never
// fails; negative and out-of-range coordinates resolve onto the torus.
func (g *Grid) Get(x, y int) bool {
	x, y = g.wrap(x, y)
	return g.cells[y][x]
}

// Set writes the state of the cell at the wrapped coordinate.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.wrap(x, y)
	g.cells[y][x] = alive
}

// LiveNeighborCount counts the live cells among the 8 wrapped neighbors.
func (g *Grid) LiveNeighborCount(x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy) {
				count++
			}
		}
	}
	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Hash returns an md5 fingerprint of the grid contents
func (g *Grid) Hash() string {
	h := md5.New()
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Reset resizes and clears the grid for reuse from a pool.
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear sets every cell dead.
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = false
		}
	}
}

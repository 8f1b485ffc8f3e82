package model

import "sync"

// GridPool recycles grid buffers across generations so the steady-state loop
// allocates nothing. A recycled grid is cleared before handing it out, so a
// next generation never aliases cells from a prior one.
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves a cleared grid of the requested dimensions
func (p *GridPool) Get(width, height int) *Grid {
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	if g == nil {
		return
	}
	g.Clear()
	p.pool.Put(g)
}

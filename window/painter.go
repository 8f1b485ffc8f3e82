//go:build ebiten

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/model"
)

// gridPainter updates a single RGBA image from grid state and draws it
// scaled onto the screen.
type gridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

func newGridPainter(w, h int) *gridPainter {
	return &gridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// blit uploads the grid into the painter image and draws it at the given
// integer scale.
func (gp *gridPainter) blit(dst *ebiten.Image, g *model.Grid, on, off color.RGBA, scale int) {
	if g.GetWidth() != gp.w || g.GetHeight() != gp.h {
		return
	}

	for y := 0; y < gp.h; y++ {
		for x := 0; x < gp.w; x++ {
			col := off
			if g.Get(x, y) {
				col = on
			}
			base := (y*gp.w + x) * 4
			gp.buf[base+0] = col.R
			gp.buf[base+1] = col.G
			gp.buf[base+2] = col.B
			gp.buf[base+3] = col.A
		}
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

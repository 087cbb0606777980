//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"life-ca/internal/core"
)

const heatLevels = 32

// GridPainter uploads cell state into a single RGBA image, or draws one
// sprite per cell in image mode.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA

	spriteSize int
	alive      *ebiten.Image
	dead       *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: HeatPalette(heatLevels)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws cells onto dst using the chosen mode and pixel scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.Cell, mode Mode, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	if mode == ModeImage {
		gp.blitSprites(dst, cells, scale)
		return
	}
	if mode == ModeHeat {
		fillHeatRGBA(gp.buf, cells, AliveColor, gp.palette)
	} else {
		fillBinaryRGBA(gp.buf, cells, AliveColor, DeadColor)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

func (gp *GridPainter) blitSprites(dst *ebiten.Image, cells []core.Cell, scale int) {
	if gp.spriteSize != scale {
		gp.alive = ebiten.NewImage(scale, scale)
		gp.alive.WritePixels(spriteRGBA(scale, true))
		gp.dead = ebiten.NewImage(scale, scale)
		gp.dead.WritePixels(spriteRGBA(scale, false))
		gp.spriteSize = scale
	}
	dst.Fill(DeadColor)
	op := &ebiten.DrawImageOptions{}
	for i, c := range cells {
		x, y := i%gp.w, i/gp.w
		op.GeoM.Reset()
		op.GeoM.Translate(float64(x*scale), float64(y*scale))
		if c.Alive {
			dst.DrawImage(gp.alive, op)
			continue
		}
		dst.DrawImage(gp.dead, op)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/patterns"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay previews where the selected pattern would land under the cursor.
type Overlay struct {
	scale   int
	w, h    int
	pixel   *ebiten.Image
	visible bool
	cx, cy  int
	pattern patterns.ID
}

// NewOverlay constructs an overlay for a w x h grid drawn at scale.
func NewOverlay(w, h, scale int) *Overlay {
	o := &Overlay{scale: scale, w: w, h: h}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update records the hovered cell and pattern. Coordinates outside the grid
// hide the preview.
func (o *Overlay) Update(cx, cy int, pattern patterns.ID) {
	o.cx, o.cy = cx, cy
	o.pattern = pattern
	o.visible = cx >= 0 && cx < o.w && cy >= 0 && cy < o.h
}

// Draw paints translucent markers over the cells the stamp would set,
// skipping those that would be clipped.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	op := &ebiten.DrawImageOptions{}
	for _, off := range patterns.Offsets(o.pattern) {
		x, y := o.cx+off.DX, o.cy+off.DY
		if x < 0 || x >= o.w || y < 0 || y >= o.h {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Scale(float64(o.scale), float64(o.scale))
		op.GeoM.Translate(float64(x*o.scale), float64(y*o.scale))
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(color.RGBA{R: 80, G: 160, B: 255, A: 110})
		screen.DrawImage(o.pixel, op)
	}
}

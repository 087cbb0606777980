//go:build ebiten

package ui

import (
	"image/color"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 16
	hudPadding    = 6
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the selection and world status along the bottom of the view.
type HUD struct {
	sim   core.Sim
	lines []string
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the cached status lines from the simulation.
func (h *HUD) Update(extra ...string) {
	if h == nil {
		return
	}
	provider, ok := h.sim.(parameterProvider)
	if !ok {
		h.lines = StatusLines(core.ParameterSnapshot{}, extra...)
		return
	}
	h.lines = StatusLines(provider.Parameters(), extra...)
}

// Draw paints the status panel anchored to the bottom edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || len(h.lines) == 0 {
		return
	}
	b := screen.Bounds()
	height := len(h.lines)*hudLineHeight + 2*hudPadding
	top := b.Dy() - height

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(height))
	op.GeoM.Translate(0, float64(top))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := top + hudPadding + (i+1)*hudLineHeight - 4
		text.Draw(screen, line, face, hudPadding, y, color.White)
	}
}

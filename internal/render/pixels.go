package render

import (
	"fmt"
	"image/color"
	"strings"

	"life-ca/internal/core"
)

// Mode selects how cells are turned into pixels.
type Mode int

const (
	// ModeColor paints alive and dead cells with two flat colors.
	ModeColor Mode = iota
	// ModeImage draws one of two fixed sprites per cell.
	ModeImage
	// ModeHeat tints dead cells by how often they have been born.
	ModeHeat
)

var modeNames = [...]string{"color", "image", "heat"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Next cycles through the display modes.
func (m Mode) Next() Mode { return (m + 1) % Mode(len(modeNames)) }

// ParseMode resolves a display mode name.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == key {
			return Mode(i), nil
		}
	}
	return ModeColor, fmt.Errorf("unknown display mode %q (want one of %s)", s, strings.Join(modeNames[:], ", "))
}

var (
	// AliveColor is the green used for live cells.
	AliveColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	// DeadColor is the background used for dead cells.
	DeadColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// fillBinaryRGBA converts cell liveness into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillHeatRGBA paints live cells with on and dead cells with the palette
// entry for their activation count, clamped to the last entry. When the
// palette is empty dead cells are transparent black.
func fillHeatRGBA(buf []byte, cells []core.Cell, on color.RGBA, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		base := i * 4
		col := color.RGBA{}
		switch {
		case c.Alive:
			col = on
		case last >= 0:
			idx := last
			if c.Activations < uint32(last) {
				idx = int(c.Activations)
			}
			col = palette[idx]
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// HeatPalette ramps from black through dark red to orange over n entries.
func HeatPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = color.RGBA{
			R: uint8(200 * t),
			G: uint8(80 * t * t),
			B: uint8(40 * (1 - t) * t),
			A: 255,
		}
	}
	return out
}

// spriteRGBA renders a size x size cell sprite: a filled disc for live cells
// and a faint grid corner for dead ones.
func spriteRGBA(size int, alive bool) []byte {
	if size <= 0 {
		return nil
	}
	buf := make([]byte, 4*size*size)
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			base := (y*size + x) * 4
			if alive {
				dx := float64(x) + 0.5 - r
				dy := float64(y) + 0.5 - r
				if dx*dx+dy*dy <= r*r*0.8 {
					buf[base+0] = 255
					buf[base+1] = 120
					buf[base+2] = 20
					buf[base+3] = 255
				}
				continue
			}
			if x == 0 || y == 0 {
				buf[base+0] = 24
				buf[base+1] = 24
				buf[base+2] = 24
				buf[base+3] = 255
			}
		}
	}
	return buf
}

package app

import (
	"fmt"
	"image/color"

	"rotate/gfx"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}

// hud writes a status line onto the display framebuffer. It runs after the
// frame buffer has been copied out, so the cube buffer itself is never touched.
type hud struct {
	d    targetDisplayer
	font tinyfont.Fonter
}

func newHUD(t gfx.Target) *hud {
	return &hud{
		d:    targetDisplayer{t: t},
		font: &proggy.TinySZ8pt7b,
	}
}

func (h *hud) draw(frame uint64, angle float32) {
	tinyfont.WriteLine(h.d, h.font, 4, 10, fmt.Sprintf("frame %d  angle %.2f", frame, angle), hudColor)
	tinyfont.WriteLine(h.d, h.font, 4, 20, "esc to quit", hudColor)
}

// targetDisplayer adapts a gfx.Target to the drivers.Displayer tinyfont draws on.
type targetDisplayer struct {
	t gfx.Target
}

var _ drivers.Displayer = targetDisplayer{}

func (d targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), gfx.RGBA(c.R, c.G, c.B, c.A))
}

func (d targetDisplayer) Display() error { return nil }

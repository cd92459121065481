package gfx

import (
	"image"
	"image/color"
)

// Buffer is an owned, fixed-size grid of colors.
//
// SetPixel clips: writes outside the grid are dropped and counted, so a camera or
// size change that pushes the model off-screen shows up in Clipped instead of
// corrupting memory. Clear restores the background snapshot in full.
type Buffer struct {
	w, h    int
	pix     []Color
	blank   []Color
	bg      Color
	clipped uint64
}

// NewBuffer allocates a w×h buffer filled with bg. Non-positive sizes yield an
// empty buffer.
func NewBuffer(w, h int, bg Color) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{
		w:     w,
		h:     h,
		pix:   make([]Color, w*h),
		blank: make([]Color, w*h),
		bg:    bg,
	}
	for i := range b.blank {
		b.blank[i] = bg
	}
	copy(b.pix, b.blank)
	return b
}

func (b *Buffer) Size() (w, h int)  { return b.w, b.h }
func (b *Buffer) Background() Color { return b.bg }

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

// SetPixel writes c at (x, y).
func (b *Buffer) SetPixel(x, y int, c Color) {
	if !b.inBounds(x, y) {
		b.clipped++
		return
	}
	b.pix[y*b.w+x] = c
}

// Clear overwrites every pixel with c and makes c the new background.
func (b *Buffer) Clear(c Color) {
	if c != b.bg {
		b.bg = c
		for i := range b.blank {
			b.blank[i] = c
		}
	}
	b.Reset()
}

// Reset copies the background snapshot over the whole grid.
func (b *Buffer) Reset() {
	copy(b.pix, b.blank)
}

// ColorAt returns the pixel at (x, y), or the zero Color out of bounds.
func (b *Buffer) ColorAt(x, y int) Color {
	if !b.inBounds(x, y) {
		return Color{}
	}
	return b.pix[y*b.w+x]
}

// Count returns how many pixels equal c.
func (b *Buffer) Count(c Color) int {
	n := 0
	for _, p := range b.pix {
		if p == c {
			n++
		}
	}
	return n
}

// Lit returns how many pixels differ from the background.
func (b *Buffer) Lit() int { return len(b.pix) - b.Count(b.bg) }

// Clipped returns the number of dropped out-of-bounds writes since the last
// ResetClipped.
func (b *Buffer) Clipped() uint64 { return b.clipped }

func (b *Buffer) ResetClipped() { b.clipped = 0 }

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		w:       b.w,
		h:       b.h,
		pix:     append([]Color(nil), b.pix...),
		blank:   append([]Color(nil), b.blank...),
		bg:      b.bg,
		clipped: b.clipped,
	}
	return c
}

// Equal reports whether both buffers have the same size and pixels.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.w != o.w || b.h != o.h {
		return false
	}
	for i := range b.pix {
		if b.pix[i] != o.pix[i] {
			return false
		}
	}
	return true
}

// CopyTo writes every pixel into t. Pixels beyond t's size are clipped by t.
func (b *Buffer) CopyTo(t Target) {
	if t == nil {
		return
	}
	for y := 0; y < b.h; y++ {
		row := b.pix[y*b.w : (y+1)*b.w]
		for x, c := range row {
			t.SetPixel(x, y, c)
		}
	}
}

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.w, b.h) }

// At implements image.Image.
func (b *Buffer) At(x, y int) color.Color { return b.ColorAt(x, y) }

//go:build cgo

package hal

import (
	"image"

	"rotate/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Title string
	// Width and Height are the framebuffer size; the window is Scale times larger.
	Width  int
	Height int
	Scale  int
	TPS    int
}

// RunWindow starts a desktop window that displays the framebuffer, calling the
// app's step function once per tick. It blocks until the window closes or
// Escape is pressed.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, scale: cfg.Scale}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	scale int

	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	shown   uint64
}

func (g *hostGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.shown = 0
	}

	if n := fb.snapshotRGB565(g.scratch); n != g.shown {
		g.shown = n
		rgbaFrom565(g.img.Pix, g.scratch)
		g.fbImg.WritePixels(g.img.Pix)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.fbImg, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width * g.scale, g.h.fb.height * g.scale
}

// Package app wires the cube driver to a HAL display: each step renders one
// frame, copies it into the display framebuffer and presents it.
package app

import (
	"fmt"
	"time"

	"rotate/config"
	"rotate/cube"
	"rotate/gfx"
	"rotate/hal"
	"rotate/log"
)

var logger = log.New("app")

// Session is one running renderer bound to a display.
type Session struct {
	cfg    config.Config
	d      *cube.Driver
	fb     hal.Framebuffer
	target *gfx.RGB565Target
	hud    *hud

	stats      Stats
	lastLit    int
	lastClip   uint64
	presentErr error
}

// New builds a session that renders into h's framebuffer.
func New(h hal.HAL, cfg config.Config) (*Session, error) {
	disp := h.Display()
	if disp == nil {
		return nil, hal.ErrNoDisplay
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil, hal.ErrNoDisplay
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("unsupported pixel format %d", fb.Format())
	}
	if fb.Width() != cfg.BufferWidth || fb.Height() != cfg.BufferHeight {
		logger.Warningf("framebuffer is %dx%d, buffer is %dx%d; output will be clipped or padded",
			fb.Width(), fb.Height(), cfg.BufferWidth, cfg.BufferHeight)
	}

	s := &Session{
		cfg: cfg,
		fb:  fb,
		target: &gfx.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
	}
	if cfg.HUD {
		s.hud = newHUD(s.target)
	}

	d, err := cube.New(cfg, cube.PresenterFunc(s.present))
	if err != nil {
		return nil, err
	}
	s.d = d
	s.target.Clear(cfg.Background)

	logger.Infof("renderer ready: buffer %dx%d, step %v rad, camera at %v",
		cfg.BufferWidth, cfg.BufferHeight, cfg.AngleStep, cfg.CameraDistance)
	return s, nil
}

// Step renders and presents one frame.
func (s *Session) Step() error {
	start := time.Now()
	s.d.Step()
	s.stats.record(time.Since(start), s.lastLit, s.lastClip, s.d.Angle())

	err := s.presentErr
	s.presentErr = nil
	if err != nil {
		return fmt.Errorf("present frame %d: %w", s.d.Frame()-1, err)
	}
	if s.d.Frame()%600 == 0 {
		logger.Debugf("frame %d, angle %.3f, avg step %s", s.d.Frame(), s.d.Angle(), s.stats.Avg())
	}
	return nil
}

func (s *Session) present(b *gfx.Buffer) {
	s.lastLit = b.Lit()
	s.lastClip = b.Clipped()
	b.CopyTo(s.target)
	if s.hud != nil {
		s.hud.draw(s.d.Frame(), s.d.Angle())
	}
	s.presentErr = s.fb.Present()
}

// Driver returns the underlying frame driver.
func (s *Session) Driver() *cube.Driver { return s.d }

// Stats returns the statistics gathered so far.
func (s *Session) Stats() Stats { return s.stats }

// Package cube animates the wireframe cube: it owns the angle and the pixel
// buffer, and turns one tick into one rendered frame.
package cube

import (
	"rotate/config"
	"rotate/gfx"
	"rotate/log"
)

var logger = log.New("cube")

// State is the driver's position in the frame cycle.
type State uint8

const (
	Idle State = iota
	Rendering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	default:
		return "unknown"
	}
}

// Presenter receives the finished buffer once per frame. The buffer is only
// valid for the duration of the call; it is cleared right after.
type Presenter interface {
	Present(b *gfx.Buffer)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(b *gfx.Buffer)

func (f PresenterFunc) Present(b *gfx.Buffer) { f(b) }

// Driver renders the cube frame by frame. It is not safe for concurrent use;
// Step is meant to be called from a single display loop.
type Driver struct {
	buf       *gfx.Buffer
	proj      gfx.Projector
	color     gfx.Color
	step      gfx.Scalar
	presenter Presenter

	angle     gfx.Scalar
	frame     uint64
	state     State
	projected [len(Vertices)]gfx.Vec2
	warned    bool
}

// New creates a driver for cfg. A nil presenter discards frames.
func New(cfg config.Config, p Presenter) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if p == nil {
		p = PresenterFunc(func(*gfx.Buffer) {})
	}
	return &Driver{
		buf:       gfx.NewBuffer(cfg.BufferWidth, cfg.BufferHeight, cfg.Background),
		proj:      gfx.NewProjector(cfg.BufferWidth, cfg.BufferHeight, cfg.CameraDistance),
		color:     cfg.PixelColor,
		step:      cfg.AngleStep,
		presenter: p,
	}, nil
}

// Step renders one frame: draw at the current angle, present, clear the buffer
// and advance the angle.
func (d *Driver) Step() {
	d.state = Rendering
	d.Draw()
	d.presenter.Present(d.buf)
	d.clear()
	d.angle += d.step
	d.frame++
	d.state = Idle
}

// Draw rotates and projects every vertex at the current angle and rasterizes
// the edges into the buffer. It does not present, clear or advance.
func (d *Driver) Draw() {
	sc := gfx.AngleSinCos(d.angle)
	for i, v := range Vertices {
		d.projected[i] = d.proj.Project(gfx.Rotate(v, sc))
	}
	for _, e := range Edges {
		gfx.DrawLine(d.buf, d.projected[e[0]], d.projected[e[1]], d.color)
	}
}

func (d *Driver) clear() {
	if n := d.buf.Clipped(); n > 0 {
		if !d.warned {
			w, h := d.buf.Size()
			logger.Warningf("frame %d: %d pixel writes fell outside the %dx%d buffer", d.frame, n, w, h)
			d.warned = true
		}
		d.buf.ResetClipped()
	}
	d.buf.Reset()
}

// Advance moves the animation n frames forward without drawing.
//
// The angle is accumulated one step at a time so the result matches n calls to
// Step bit for bit.
func (d *Driver) Advance(n uint64) {
	for i := uint64(0); i < n; i++ {
		d.angle += d.step
	}
	d.frame += n
}

func (d *Driver) Angle() gfx.Scalar        { return d.angle }
func (d *Driver) Frame() uint64            { return d.frame }
func (d *Driver) State() State             { return d.state }
func (d *Driver) Buffer() *gfx.Buffer      { return d.buf }
func (d *Driver) Projector() gfx.Projector { return d.proj }

// Projected returns the screen positions computed by the last Draw.
func (d *Driver) Projected() [len(Vertices)]gfx.Vec2 { return d.projected }

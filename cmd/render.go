package cmd

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"os"
	"os/signal"

	"rotate/app"
	"rotate/cube"
	"rotate/hal"

	"github.com/urfave/cli"
)

// RunWindow animates the cube in a desktop window until it is closed.
func RunWindow(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var sess *app.Session
	err = hal.RunWindow(hal.WindowConfig{
		Title:  "Software Renderer",
		Width:  cfg.BufferWidth,
		Height: cfg.BufferHeight,
		Scale:  cfg.Scale,
		TPS:    cfg.TPS,
	}, func(h hal.HAL) (func() error, error) {
		s, err := app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		sess = s
		return s.Step, nil
	})
	if sess != nil {
		logger.Noticef("window closed after %d frames", sess.Stats().Frames)
	}
	return err
}

// RunHeadless animates the cube without a window and prints frame statistics.
func RunHeadless(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var sess *app.Session
	err = hal.RunHeadless(sigCtx, func(h hal.HAL) (func() error, error) {
		s, err := app.New(h, cfg)
		if err != nil {
			return nil, err
		}
		sess = s
		return s.Step, nil
	}, hal.HeadlessConfig{
		Width:  cfg.BufferWidth,
		Height: cfg.BufferHeight,
		Hz:     ctx.Int("hz"),
		Ticks:  ctx.Uint64("frames"),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if sess != nil {
		app.WriteStats(ctx.App.Writer, sess.Stats())
	}
	return nil
}

// Snapshot renders a single frame and writes it as a PNG.
func Snapshot(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	d, err := cube.New(cfg, nil)
	if err != nil {
		return err
	}
	frame := ctx.Uint64("frame")
	d.Advance(frame)
	d.Draw()
	if n := d.Buffer().Clipped(); n > 0 {
		logger.Warningf("frame %d: %d pixel writes clipped", frame, n)
	}

	out := ctx.String("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := png.Encode(f, d.Buffer()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode snapshot %q: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot %q: %w", out, err)
	}
	logger.Noticef("wrote frame %d (angle %.3f, %d lit pixels) to %s", frame, d.Angle(), d.Buffer().Lit(), out)
	return nil
}

package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"rotate/config"
	"rotate/gfx"

	"github.com/urfave/cli"
)

func runLoadConfig(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()
	var cfg config.Config
	var loadErr error
	a := cli.NewApp()
	a.Flags = configFlags
	a.Action = func(ctx *cli.Context) error {
		cfg, loadErr = loadConfig(ctx)
		return nil
	}
	if err := a.Run(append([]string{"rotate"}, args...)); err != nil {
		t.Fatalf("Run(%v) = %v", args, err)
	}
	return cfg, loadErr
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := runLoadConfig(t)
	if err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg != config.Default() {
		t.Fatalf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFlagsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotate.yaml")
	if err := os.WriteFile(path, []byte("bufferWidth: 100\nangleStep: 0.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := runLoadConfig(t, "--config", path, "--width", "320", "--color", "#00ff00", "--hud")
	if err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg.BufferWidth != 320 {
		t.Fatalf("BufferWidth = %d, want flag value 320", cfg.BufferWidth)
	}
	if cfg.AngleStep != 0.5 {
		t.Fatalf("AngleStep = %v, want file value 0.5", cfg.AngleStep)
	}
	if cfg.PixelColor != gfx.RGB(0, 0xFF, 0) || !cfg.HUD {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadConfigFlagRescuesFileValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rotate.yaml")
	if err := os.WriteFile(path, []byte("cameraDistance: 0.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := runLoadConfig(t, "--config", path); err == nil {
		t.Fatalf("loadConfig(file distance 0.5) = nil error")
	}
	cfg, err := runLoadConfig(t, "--config", path, "--distance", "3")
	if err != nil {
		t.Fatalf("loadConfig(--distance 3) = %v", err)
	}
	if cfg.CameraDistance != 3 {
		t.Fatalf("CameraDistance = %v, want flag value 3", cfg.CameraDistance)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	if _, err := runLoadConfig(t, "--distance", "0.1"); err == nil {
		t.Fatalf("loadConfig(--distance 0.1) = nil error")
	}
	if _, err := runLoadConfig(t, "--color", "red"); err == nil {
		t.Fatalf("loadConfig(--color red) = nil error")
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	if err := NewApp().Run([]string{"rotate", "snapshot", "--frame", "0", "--out", out}); err != nil {
		t.Fatalf("snapshot = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 400 {
		t.Fatalf("snapshot bounds = %v, want 400x400", b)
	}
	lit := 0
	for y := 0; y < 400; y++ {
		for x := 0; x < 400; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r != 0 {
				lit++
			}
		}
	}
	if lit != 960 {
		t.Fatalf("snapshot lit pixels = %d, want 960", lit)
	}
}

func TestHeadlessRunsFrames(t *testing.T) {
	a := NewApp()
	out, err := os.CreateTemp(t.TempDir(), "stats")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer out.Close()
	a.Writer = out
	if err := a.Run([]string{"rotate", "--width", "64", "--height", "64", "headless", "--hz", "1000", "--frames", "3"}); err != nil {
		t.Fatalf("headless = %v", err)
	}
	body, err := os.ReadFile(out.Name())
	if err != nil {
		t.Fatalf("read stats: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("headless printed no statistics")
	}
}

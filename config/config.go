// Package config holds the renderer's recognized options and loads them from
// defaults, an optional config file and ROTATE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"rotate/gfx"
)

// Option keys as they appear in config files.
const (
	KeyBufferWidth    = "bufferWidth"
	KeyBufferHeight   = "bufferHeight"
	KeyPixelColor     = "pixelColor"
	KeyBackground     = "background"
	KeyAngleStep      = "angleStep"
	KeyCameraDistance = "cameraDistance"
	KeyScale          = "scale"
	KeyTPS            = "tps"
	KeyHUD            = "hud"
)

// cubeRadius is the bounding-sphere radius of the unit cube (sqrt(3)/2).
const cubeRadius = 0.8660254

var (
	ErrBufferSize     = errors.New("buffer width and height must be positive")
	ErrAngleStep      = errors.New("angle step must be finite")
	ErrCameraDistance = errors.New("camera distance must exceed the cube's bounding radius")
	ErrScale          = errors.New("display scale must be positive")
	ErrTPS            = errors.New("ticks per second must be positive")
)

// Config is the full renderer configuration.
type Config struct {
	BufferWidth    int
	BufferHeight   int
	PixelColor     gfx.Color
	Background     gfx.Color
	AngleStep      float32
	CameraDistance float32

	// Scale is the display magnification of the buffer.
	Scale int
	// TPS limits frames per second in window mode.
	TPS int
	// HUD draws a status line on the display framebuffer.
	HUD bool
}

// Default returns the stock configuration: an 800×800 display backed by a
// 400×400 buffer, red lines on black, 0.02 rad per frame at 60 frames per second.
func Default() Config {
	return Config{
		BufferWidth:    400,
		BufferHeight:   400,
		PixelColor:     gfx.Red,
		Background:     gfx.Black,
		AngleStep:      0.02,
		CameraDistance: 2,
		Scale:          2,
		TPS:            60,
	}
}

// DisplaySize returns the window size in pixels.
func (c Config) DisplaySize() (w, h int) {
	return c.BufferWidth * c.Scale, c.BufferHeight * c.Scale
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.BufferWidth <= 0 || c.BufferHeight <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrBufferSize, c.BufferWidth, c.BufferHeight)
	}
	step := float64(c.AngleStep)
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return ErrAngleStep
	}
	if !(c.CameraDistance > cubeRadius) {
		return fmt.Errorf("%w: got %v", ErrCameraDistance, c.CameraDistance)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: got %d", ErrScale, c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: got %d", ErrTPS, c.TPS)
	}
	return nil
}

// Load reads the configuration like Read and validates it.
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Read builds a Config from defaults, the file at path (if non-empty) and the
// environment. Only malformed values are rejected; callers layering further
// overrides on top validate the final result themselves.
func Read(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	def := Default()
	v := viper.New()
	v.SetDefault(KeyBufferWidth, def.BufferWidth)
	v.SetDefault(KeyBufferHeight, def.BufferHeight)
	v.SetDefault(KeyPixelColor, def.PixelColor.Hex())
	v.SetDefault(KeyBackground, def.Background.Hex())
	v.SetDefault(KeyAngleStep, def.AngleStep)
	v.SetDefault(KeyCameraDistance, def.CameraDistance)
	v.SetDefault(KeyScale, def.Scale)
	v.SetDefault(KeyTPS, def.TPS)
	v.SetDefault(KeyHUD, def.HUD)

	v.SetEnvPrefix("rotate")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (Config, error) {
	pixel, err := gfx.ParseHexColor(v.GetString(KeyPixelColor))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyPixelColor, err)
	}
	bg, err := gfx.ParseHexColor(v.GetString(KeyBackground))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", KeyBackground, err)
	}
	return Config{
		BufferWidth:    v.GetInt(KeyBufferWidth),
		BufferHeight:   v.GetInt(KeyBufferHeight),
		PixelColor:     pixel,
		Background:     bg,
		AngleStep:      float32(v.GetFloat64(KeyAngleStep)),
		CameraDistance: float32(v.GetFloat64(KeyCameraDistance)),
		Scale:          v.GetInt(KeyScale),
		TPS:            v.GetInt(KeyTPS),
		HUD:            v.GetBool(KeyHUD),
	}, nil
}

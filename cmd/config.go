package cmd

import (
	"fmt"

	"rotate/config"
	"rotate/gfx"

	"github.com/urfave/cli"
)

// configFlags are accepted on every command and override the config file.
var configFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "config, c",
		Usage:  "load options from a YAML, TOML or JSON file",
		EnvVar: "ROTATE_CONFIG",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "pixel buffer width (display is scale times larger)",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "pixel buffer height (display is scale times larger)",
	},
	cli.StringFlag{
		Name:  "color",
		Usage: "line color as #rrggbb",
	},
	cli.StringFlag{
		Name:  "background",
		Usage: "background color as #rrggbb",
	},
	cli.Float64Flag{
		Name:  "step",
		Usage: "rotation per frame in radians",
	},
	cli.Float64Flag{
		Name:  "distance",
		Usage: "camera distance from the cube center",
	},
	cli.IntFlag{
		Name:  "scale",
		Usage: "display magnification of the pixel buffer",
	},
	cli.IntFlag{
		Name:  "tps",
		Usage: "frames per second in window mode",
	},
	cli.BoolFlag{
		Name:  "hud",
		Usage: "draw a frame counter on the display",
	},
}

// loadConfig reads the config file named by --config, applies any flags given
// on the command line on top of it and validates the result.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Read(ctx.GlobalString("config"))
	if err != nil {
		return config.Config{}, err
	}

	if ctx.GlobalIsSet("width") {
		cfg.BufferWidth = ctx.GlobalInt("width")
	}
	if ctx.GlobalIsSet("height") {
		cfg.BufferHeight = ctx.GlobalInt("height")
	}
	if ctx.GlobalIsSet("color") {
		if cfg.PixelColor, err = gfx.ParseHexColor(ctx.GlobalString("color")); err != nil {
			return config.Config{}, fmt.Errorf("--color: %w", err)
		}
	}
	if ctx.GlobalIsSet("background") {
		if cfg.Background, err = gfx.ParseHexColor(ctx.GlobalString("background")); err != nil {
			return config.Config{}, fmt.Errorf("--background: %w", err)
		}
	}
	if ctx.GlobalIsSet("step") {
		cfg.AngleStep = float32(ctx.GlobalFloat64("step"))
	}
	if ctx.GlobalIsSet("distance") {
		cfg.CameraDistance = float32(ctx.GlobalFloat64("distance"))
	}
	if ctx.GlobalIsSet("scale") {
		cfg.Scale = ctx.GlobalInt("scale")
	}
	if ctx.GlobalIsSet("tps") {
		cfg.TPS = ctx.GlobalInt("tps")
	}
	if ctx.GlobalBool("hud") {
		cfg.HUD = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	logger.Debugf("config: %+v", cfg)
	return cfg, nil
}

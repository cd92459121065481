package cmd

import (
	"rotate/internal/buildinfo"

	"github.com/urfave/cli"
)

// NewApp returns the rotate command-line application.
func NewApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "rotate"
	app.Usage = "spin a wireframe cube with a software renderer"
	app.Version = buildinfo.Short()
	app.Flags = append([]cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}, configFlags...)
	app.Action = RunWindow
	app.Commands = []cli.Command{
		{
			Name:   "window",
			Usage:  "open a window and animate the cube until it is closed",
			Action: RunWindow,
		},
		{
			Name:  "headless",
			Usage: "animate without a window and print frame statistics",
			Description: `
Drive the renderer from a timer instead of a window. The loop stops after
--frames frames (0 runs until interrupted) and prints a statistics table.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "hz",
					Value: 60,
					Usage: "frames per second",
				},
				cli.Uint64Flag{
					Name:  "frames, n",
					Value: 0,
					Usage: "stop after N frames (0 = run until interrupted)",
				},
			},
			Action: RunHeadless,
		},
		{
			Name:  "snapshot",
			Usage: "render one frame to a PNG file",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "frame, f",
					Value: 0,
					Usage: "frame number to render",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: Snapshot,
		},
	}
	return app
}

// Command ldtkbake composites a level headlessly and writes PNG files.
package main

import (
	"log/slog"
	"os"

	"github.com/milk9111/ldtkrender/config"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "ldtkbake"
	app.Usage = "ldtkbake [options] [level.json]"
	app.Description = "Composite a level into PNG images without a window"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Usage: "Level JSON file (default: embedded sample)",
		},
		cli.StringFlag{
			Name:  "bundle",
			Usage: "Directory of extensionless image assets",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "Flattened output PNG",
			Value: "level.png",
		},
		cli.StringFlag{
			Name:  "layers",
			Usage: "Directory to write one PNG per composited surface",
		},
		cli.StringFlag{
			Name:  "clear",
			Usage: "Background clear color (#rrggbb or #rrggbbaa)",
		},
		cli.BoolFlag{
			Name:  "intgrid",
			Usage: "Overlay int-grid cells",
		},
		cli.BoolFlag{
			Name:  "entities",
			Usage: "Draw entity tiles",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error baking level", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := c.String("level")
	if level == "" && c.NArg() > 0 {
		level = c.Args().Get(0)
	}

	lvl := slog.LevelInfo
	if c.Bool("debug") {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	opts := bakeOptions{
		Level:     level,
		Bundle:    c.String("bundle"),
		Out:       c.String("out"),
		LayersDir: c.String("layers"),
		IntGrid:   c.Bool("intgrid"),
		Entities:  c.Bool("entities"),
		Log:       logger,
	}
	bg, ok, err := config.ParseHexColor(c.String("clear"))
	if err != nil {
		return err
	}
	if ok {
		opts.Clear = &bg
	}

	_, err = bake(opts)
	return err
}

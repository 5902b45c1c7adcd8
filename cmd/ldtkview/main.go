// Command ldtkview opens a window on a level and redraws it from the
// prerender cache, reloading when the level or its images change.
package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ldtkrender/config"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "ldtkview"
	app.Usage = "ldtkview [options] [level.json]"
	app.Description = "View a level through the prerender cache"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML configuration file",
		},
		cli.StringFlag{
			Name:  "level",
			Usage: "Level JSON file (default: embedded sample)",
		},
		cli.StringFlag{
			Name:  "bundle",
			Usage: "Directory of extensionless image assets",
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
			Name:  "watch",
			Usage: "Reload when the level or its images change",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running viewer", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if v := c.String("level"); v != "" {
		cfg.Level = v
	} else if c.NArg() > 0 {
		cfg.Level = c.Args().Get(0)
	}
	if v := c.String("bundle"); v != "" {
		cfg.Bundle = v
	}
	if v := c.String("clear"); v != "" {
		cfg.ClearColor = v
	}
	if c.Bool("intgrid") {
		cfg.Debug.IntGrid = true
	}
	if c.Bool("watch") {
		cfg.Watch = true
	}
	if c.Bool("debug") {
		cfg.Debug.Log = true
	}
	return cfg, cfg.Validate()
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	lvl := slog.LevelInfo
	if cfg.Debug.Log {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	v, err := NewViewer(cfg, logger)
	if err != nil {
		return err
	}
	defer v.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	return ebiten.RunGame(v)
}

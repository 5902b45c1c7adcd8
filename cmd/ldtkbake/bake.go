package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/milk9111/ldtkrender/assets"
	"github.com/milk9111/ldtkrender/common"
	"github.com/milk9111/ldtkrender/gfx/softgfx"
	"github.com/milk9111/ldtkrender/ldtk"
	"github.com/milk9111/ldtkrender/levels"
	"github.com/milk9111/ldtkrender/render"
	"github.com/pkg/errors"
)

type bakeOptions struct {
	Level     string // empty bakes the embedded sample
	Bundle    string
	Out       string
	LayersDir string
	Clear     *color.RGBA
	IntGrid   bool
	Entities  bool
	Log       *slog.Logger
}

type bakeResult struct {
	Level    string
	Size     image.Point
	Surfaces int
	Files    []string
}

func bake(opts bakeOptions) (bakeResult, error) {
	var res bakeResult
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	level, ropts, err := loadLevel(opts)
	if err != nil {
		return res, err
	}
	if level.PixelWidth <= 0 || level.PixelHeight <= 0 {
		return res, errors.Errorf("level %s has no pixel size", level.Identifier)
	}
	res.Level = level.Identifier
	res.Size = image.Pt(level.PixelWidth, level.PixelHeight)

	ropts = append(ropts, render.WithLogger(opts.Log))
	if opts.Clear != nil {
		ropts = append(ropts, render.WithBackgroundClear(*opts.Clear))
	}

	dev := softgfx.New(level.PixelWidth, level.PixelHeight)
	r := render.New(dev, ropts...)
	defer r.Close()

	r.PrerenderLevel(level)

	// Bake at the origin regardless of the level's world position.
	flat := *level
	flat.Position = image.Point{}
	if err := r.DrawPrerenderedLevel(&flat); err != nil {
		return res, err
	}
	if opts.IntGrid {
		for i := range flat.Layers {
			if flat.Layers[i].Type == ldtk.IntGridLayer {
				r.DrawIntGrid(ldtk.IntGridFromLayer(&flat, &flat.Layers[i]))
			}
		}
	}
	if opts.Entities {
		for i := range level.Entities {
			e := level.Entities[i]
			e.Position = e.Position.Sub(common.V(float64(level.Position.X), float64(level.Position.Y)))
			r.DrawEntity(&e, r.Image(level, e.TilesetRelPath))
		}
	}

	rl, _ := r.Prerendered(level.Identifier)
	res.Surfaces = len(rl.Layers)

	if opts.Out != "" {
		if err := writePNG(opts.Out, dev.Screen()); err != nil {
			return res, err
		}
		res.Files = append(res.Files, opts.Out)
	}
	if opts.LayersDir != "" {
		if err := os.MkdirAll(opts.LayersDir, 0o755); err != nil {
			return res, errors.Wrapf(err, "create %s", opts.LayersDir)
		}
		for i, s := range rl.Layers {
			name := filepath.Join(opts.LayersDir, fmt.Sprintf("%s_%02d.png", level.Identifier, i))
			if err := writePNG(name, s.(*softgfx.Surface).RGBA); err != nil {
				return res, err
			}
			res.Files = append(res.Files, name)
		}
	}
	opts.Log.Info("baked level", "level", level.Identifier, "size", res.Size, "surfaces", res.Surfaces, "files", len(res.Files))
	return res, nil
}

func loadLevel(opts bakeOptions) (*ldtk.Level, []render.Option, error) {
	var ropts []render.Option
	if opts.Bundle != "" {
		ropts = append(ropts, render.WithBundle(assets.NewBundle(os.DirFS(opts.Bundle))))
	}
	if opts.Level == "" {
		level, err := levels.LoadSample()
		if err != nil {
			return nil, nil, err
		}
		if opts.Bundle == "" {
			ropts = append(ropts, render.WithBundle(assets.NewBundle(levels.LevelsFS)))
		}
		return level, ropts, nil
	}
	level, err := ldtk.LoadLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	return level, ropts, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

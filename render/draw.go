package render

import (
	"image"
	"image/color"

	"github.com/milk9111/ldtkrender/common"
	"github.com/milk9111/ldtkrender/gfx"
	"github.com/milk9111/ldtkrender/ldtk"
)

// DrawLevel composites level without touching the cache and draws the
// result. It is slow; use PrerenderLevel for anything drawn every frame.
func (r *Renderer) DrawLevel(level *ldtk.Level) {
	r.dev.Begin()
	layers := r.renderLevel(level)
	r.dev.End()
	r.dev.SetTarget(nil)

	r.drawSurfaces(layers, level)
	for _, s := range layers {
		r.dev.Dispose(s)
	}
}

func (r *Renderer) drawSurfaces(layers []gfx.Surface, level *ldtk.Level) {
	pos := common.V(float64(level.Position.X), float64(level.Position.Y))
	for _, s := range layers {
		r.dev.Draw(s, gfx.At(pos))
	}
}

// DrawIntGrid draws a filled square for every non-zero cell, row by row.
func (r *Renderer) DrawIntGrid(grid ldtk.IntGrid) {
	ts := float64(grid.TileSize)
	for y := 0; y < grid.GridSize.Y; y++ {
		for x := 0; x < grid.GridSize.X; x++ {
			v := grid.At(x, y)
			if v == 0 {
				continue
			}
			tint := toRGBA(r.intGridColor(v))
			if tint.A == 0 {
				continue
			}
			op := gfx.At(common.V(
				float64(grid.WorldPosition.X)+float64(x)*ts,
				float64(grid.WorldPosition.Y)+float64(y)*ts,
			))
			op.Scale = common.V(ts, ts)
			op.Tint = tint
			r.dev.Draw(r.pixel, op)
		}
	}
}

type entityDraw struct {
	mirror gfx.Mirror
	frame  int
}

type EntityOption func(*entityDraw)

// WithMirror flips the entity sprite.
func WithMirror(m gfx.Mirror) EntityOption {
	return func(d *entityDraw) {
		d.mirror = m
	}
}

// WithFrame selects an animation frame. Frames sit to the right of the
// entity tile in the same image and share its width.
func WithFrame(frame int) EntityOption {
	return func(d *entityDraw) {
		d.frame = frame
	}
}

// DrawEntity draws the entity's tile from img so that its pivot lands on
// the entity position.
func (r *Renderer) DrawEntity(e *ldtk.Entity, img gfx.Surface, opts ...EntityOption) {
	var cfg entityDraw
	for _, opt := range opts {
		opt(&cfg)
	}

	src := e.Tile.Rect()
	if cfg.frame != 0 {
		src = src.Add(image.Pt(src.Dx()*cfg.frame, 0))
	}

	op := gfx.At(e.Position)
	op.Src = src
	op.Origin = e.Origin()
	op.Mirror = cfg.mirror
	r.dev.Draw(img, op)
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return gfx.White
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

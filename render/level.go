package render

import (
	"github.com/milk9111/ldtkrender/common"
	"github.com/milk9111/ldtkrender/gfx"
	"github.com/milk9111/ldtkrender/ldtk"
)

// renderLevel composites the background and every drawable layer, bottom
// layer first. Layers come topmost-first in the level, so they are walked
// in reverse. Entity layers and layers without a tileset path are left
// out of the result.
func (r *Renderer) renderLevel(level *ldtk.Level) []gfx.Surface {
	out := make([]gfx.Surface, 0, len(level.Layers)+1)
	if level.BgRelPath != "" {
		out = append(out, r.renderBackground(level))
	}

	for i := len(level.Layers) - 1; i >= 0; i-- {
		layer := &level.Layers[i]
		if layer.TilesetRelPath == "" || layer.Type == ldtk.Entities {
			continue
		}
		s, err := r.renderLayer(level, layer)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// renderBackground paints the level background onto a level-sized
// surface. Without a placement the surface gets no draws.
func (r *Renderer) renderBackground(level *ldtk.Level) gfx.Surface {
	texture := r.Image(level, level.BgRelPath)

	target := r.dev.NewSurface(level.PixelWidth, level.PixelHeight)
	r.dev.SetTarget(target)
	defer r.dev.SetTarget(nil)

	if r.backgroundClear != nil {
		r.dev.Clear(r.backgroundClear)
	}

	bg := level.BgPos
	if bg == nil {
		return target
	}
	crop := bg.Crop()
	if crop.Empty() {
		return target
	}
	op := gfx.At(common.V(float64(bg.TopLeftPixel.X), float64(bg.TopLeftPixel.Y)))
	op.Src = crop
	scale := bg.Scale
	if scale <= 0 {
		scale = 1
	}
	op.Scale = common.V(scale, scale)
	r.dev.Draw(texture, op)
	return target
}

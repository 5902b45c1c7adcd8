package render

import (
	"image"

	"github.com/milk9111/ldtkrender/common"
	"github.com/milk9111/ldtkrender/gfx"
	"github.com/milk9111/ldtkrender/ldtk"
)

// renderLayer composites one layer onto a fresh surface the size of the
// layer grid. Entity layers are never composited.
func (r *Renderer) renderLayer(level *ldtk.Level, layer *ldtk.Layer) (gfx.Surface, error) {
	if layer.Type == ldtk.Entities {
		return nil, ErrEntityLayer
	}

	size := layer.PixelSize()
	target := r.dev.NewSurface(size.X, size.Y)
	r.dev.SetTarget(target)
	defer r.dev.SetTarget(nil)

	switch layer.Type {
	case ldtk.Tiles:
		r.paintTiles(level, layer, layer.GridTiles)
	case ldtk.AutoLayer, ldtk.IntGridLayer:
		r.paintTiles(level, layer, layer.AutoLayerTiles)
	}
	return target, nil
}

// paintTiles draws tiles onto the bound target. A layer without a tileset
// paints nothing at all.
func (r *Renderer) paintTiles(level *ldtk.Level, layer *ldtk.Layer, tiles []ldtk.TileInstance) {
	if !layer.HasTileset() || len(tiles) == 0 {
		return
	}
	texture := r.Image(level, layer.TilesetRelPath)
	for _, tile := range tiles {
		r.dev.Draw(texture, tileOp(layer, tile))
	}
}

func tileOp(layer *ldtk.Layer, tile ldtk.TileInstance) gfx.DrawOp {
	pos := tile.Px.Add(layer.PixelTotalOffset)
	op := gfx.At(common.V(float64(pos.X), float64(pos.Y)))
	op.Src = image.Rectangle{Min: tile.Src, Max: tile.Src.Add(image.Pt(layer.GridSize, layer.GridSize))}
	op.Mirror = gfx.MirrorFromFlipBits(tile.F)
	return op
}

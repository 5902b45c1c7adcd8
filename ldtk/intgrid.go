package ldtk

import "image"

// IntGrid is a grid of integer cell values in row-major order.
type IntGrid struct {
	Identifier    string
	Values        []int
	GridSize      image.Point
	TileSize      int
	WorldPosition image.Point
}

// IntGridFromLayer builds the int-grid view of an IntGrid layer. The grid
// is placed at the level position plus the layer offset.
func IntGridFromLayer(level *Level, layer *Layer) IntGrid {
	var pos image.Point
	if level != nil {
		pos = level.Position
	}
	return IntGrid{
		Identifier:    layer.Identifier,
		Values:        layer.IntGridCSV,
		GridSize:      image.Pt(layer.CellWidth, layer.CellHeight),
		TileSize:      layer.GridSize,
		WorldPosition: pos.Add(layer.PixelTotalOffset),
	}
}

// At returns the value at cell x,y, or 0 outside the grid.
func (g IntGrid) At(x, y int) int {
	if x < 0 || y < 0 || x >= g.GridSize.X || y >= g.GridSize.Y {
		return 0
	}
	idx := y*g.GridSize.X + x
	if idx >= len(g.Values) {
		return 0
	}
	return g.Values[idx]
}

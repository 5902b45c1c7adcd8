package ldtk

import "image"

// Layer is one grid-aligned drawing plane of a level.
type Layer struct {
	// Identifier is the designer-facing name. IID is unique per run and is
	// the key used for prerendered layers.
	Identifier string    `json:"identifier"`
	IID        string    `json:"iid"`
	Type       LayerType `json:"type"`

	GridSize   int `json:"grid_size"`
	CellWidth  int `json:"c_wid"`
	CellHeight int `json:"c_hei"`

	TilesetDefUID  *int   `json:"tileset_def_uid,omitempty"`
	TilesetRelPath string `json:"tileset_rel_path,omitempty"`

	// PixelTotalOffset is layer offset plus parallax offset, precomputed
	// by whoever produced the record.
	PixelTotalOffset image.Point `json:"px_total_offset"`

	GridTiles      []TileInstance `json:"grid_tiles,omitempty"`
	AutoLayerTiles []TileInstance `json:"auto_layer_tiles,omitempty"`
	IntGridCSV     []int          `json:"int_grid_csv,omitempty"`
}

// HasTileset reports whether the layer references a tileset definition
// and an image to draw it from.
func (l *Layer) HasTileset() bool {
	return l.TilesetDefUID != nil && l.TilesetRelPath != ""
}

// PixelSize is the size of the layer's grid in pixels.
func (l *Layer) PixelSize() image.Point {
	return image.Pt(l.CellWidth*l.GridSize, l.CellHeight*l.GridSize)
}

// TileInstance is one placed tile. Px is the destination inside the layer
// before the layer offset, Src the top-left of the tile in the tileset.
type TileInstance struct {
	Px  image.Point `json:"px"`
	Src image.Point `json:"src"`

	// F holds the flip bits: bit 0 horizontal, bit 1 vertical.
	F int `json:"f"`
}

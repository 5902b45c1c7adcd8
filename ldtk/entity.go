package ldtk

import (
	"image"

	"github.com/milk9111/ldtkrender/common"
)

// TilesetRectangle is a region of a tileset image in pixels.
type TilesetRectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// Rect converts the tileset rectangle to an image rectangle.
func (r TilesetRectangle) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Entity is a placed entity with the tile it is drawn with. Pivot is
// normalized to the entity's size.
type Entity struct {
	Identifier string `json:"identifier"`
	IID        string `json:"iid,omitempty"`

	Position common.Vec       `json:"position"`
	Pivot    common.Vec       `json:"pivot"`
	Size     common.Vec       `json:"size"`
	Tile     TilesetRectangle `json:"tile"`

	TilesetRelPath string `json:"tileset_rel_path,omitempty"`
}

// Origin is the pivot expressed in pixels of the entity's box.
func (e *Entity) Origin() common.Vec {
	return e.Pivot.Mul(e.Size)
}

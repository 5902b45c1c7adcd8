package ldtk

import (
	"image"
	"path/filepath"
)

// Level is one map region: a world position, a pixel size, an optional
// background and the layers in source order (index 0 is topmost).
type Level struct {
	Identifier string `json:"identifier"`
	IID        string `json:"iid,omitempty"`

	// WorldFilePath is the file the level was read from. Relative image
	// paths are resolved against its directory.
	WorldFilePath string `json:"-"`

	Position    image.Point `json:"position"`
	PixelWidth  int         `json:"pixel_width"`
	PixelHeight int         `json:"pixel_height"`

	BgRelPath string              `json:"bg_rel_path,omitempty"`
	BgPos     *BackgroundPosition `json:"bg_pos,omitempty"`

	Layers   []Layer  `json:"layers,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

// BackgroundPosition places the background image inside the level.
// CropRect is x, y, width, height in source-image pixels.
type BackgroundPosition struct {
	TopLeftPixel image.Point `json:"top_left_px"`
	CropRect     [4]float64  `json:"crop_rect"`
	Scale        float64     `json:"scale"`
}

// Crop returns CropRect as an integer rectangle.
func (b BackgroundPosition) Crop() image.Rectangle {
	x, y := int(b.CropRect[0]), int(b.CropRect[1])
	return image.Rect(x, y, x+int(b.CropRect[2]), y+int(b.CropRect[3]))
}

// Dir is the directory image paths of this level are relative to.
func (l *Level) Dir() string {
	if l == nil || l.WorldFilePath == "" {
		return ""
	}
	return filepath.Dir(l.WorldFilePath)
}

// Bounds is the level's pixel rectangle in world space.
func (l *Level) Bounds() image.Rectangle {
	return image.Rectangle{Min: l.Position, Max: l.Position.Add(image.Pt(l.PixelWidth, l.PixelHeight))}
}

// LayerByIdentifier returns the first layer with the given name.
func (l *Level) LayerByIdentifier(name string) (*Layer, bool) {
	if l == nil {
		return nil, false
	}
	for i := range l.Layers {
		if l.Layers[i].Identifier == name {
			return &l.Layers[i], true
		}
	}
	return nil, false
}

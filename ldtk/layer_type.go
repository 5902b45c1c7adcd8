package ldtk

import (
	"fmt"
	"strings"
)

// LayerType tags the four kinds of layer a level can hold.
type LayerType int

const (
	Tiles LayerType = iota
	AutoLayer
	IntGridLayer
	Entities
)

func (t LayerType) String() string {
	switch t {
	case Tiles:
		return "Tiles"
	case AutoLayer:
		return "AutoLayer"
	case IntGridLayer:
		return "IntGrid"
	case Entities:
		return "Entities"
	default:
		return "Unknown"
	}
}

func (t LayerType) MarshalText() ([]byte, error) {
	s := t.String()
	if s == "Unknown" {
		return nil, fmt.Errorf("ldtk: invalid layer type %d", int(t))
	}
	return []byte(s), nil
}

func (t *LayerType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "tiles":
		*t = Tiles
	case "autolayer":
		*t = AutoLayer
	case "intgrid":
		*t = IntGridLayer
	case "entities":
		*t = Entities
	default:
		return fmt.Errorf("ldtk: unknown layer type %q", string(b))
	}
	return nil
}

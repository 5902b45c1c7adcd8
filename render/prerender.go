package render

import (
	"fmt"

	"github.com/milk9111/ldtkrender/gfx"
	"github.com/milk9111/ldtkrender/ldtk"
	"github.com/pkg/errors"
)

var (
	// ErrNotPrerendered matches every NotPrerenderedError.
	ErrNotPrerendered = errors.New("render: not prerendered")
	// ErrEntityLayer is returned when an entity layer is asked to be
	// composited. Entities are drawn with DrawEntity.
	ErrEntityLayer = errors.New("render: entity layers are not composited")
)

// NotPrerenderedError reports a cached draw of an identifier that was
// never prerendered.
type NotPrerenderedError struct {
	Kind string // "level" or "layer"
	ID   string
}

func (e *NotPrerenderedError) Error() string {
	return fmt.Sprintf("render: no prerendered %s with identifier %s", e.Kind, e.ID)
}

func (e *NotPrerenderedError) Is(target error) bool {
	return target == ErrNotPrerendered
}

// PrerenderLevel composites the level once and caches the surfaces under
// level.Identifier. Calling it again for the same identifier does nothing,
// even if the level changed; use ForgetPrerendered to rebuild.
func (r *Renderer) PrerenderLevel(level *ldtk.Level) {
	if _, ok := r.prerendered[level.Identifier]; ok {
		r.log.Debug("render: level already prerendered", "level", level.Identifier)
		return
	}

	r.dev.Begin()
	layers := r.renderLevel(level)
	r.dev.End()
	r.dev.SetTarget(nil)

	r.prerendered[level.Identifier] = RenderedLevel{Layers: layers}
	r.log.Debug("render: prerendered level", "level", level.Identifier, "surfaces", len(layers))
}

// PrerenderLayer composites a single layer and caches it under layer.IID.
// Repeated calls for the same layer do nothing.
func (r *Renderer) PrerenderLayer(layer *ldtk.Layer, level *ldtk.Level) error {
	if layer.Type == ldtk.Entities {
		return errors.Wrapf(ErrEntityLayer, "layer %s", layer.IID)
	}
	if _, ok := r.prerendered[layer.IID]; ok {
		r.log.Debug("render: layer already prerendered", "layer", layer.IID)
		return nil
	}

	r.dev.Begin()
	s, err := r.renderLayer(level, layer)
	r.dev.End()
	r.dev.SetTarget(nil)
	if err != nil {
		return err
	}

	r.prerendered[layer.IID] = RenderedLevel{Layers: []gfx.Surface{s}}
	r.log.Debug("render: prerendered layer", "layer", layer.IID, "identifier", layer.Identifier, "level", level.Identifier)
	return nil
}

// DrawPrerenderedLevel blits the cached surfaces of level at its world
// position onto the current target.
func (r *Renderer) DrawPrerenderedLevel(level *ldtk.Level) error {
	rl, ok := r.prerendered[level.Identifier]
	if !ok {
		return &NotPrerenderedError{Kind: "level", ID: level.Identifier}
	}
	r.drawSurfaces(rl.Layers, level)
	return nil
}

// DrawPrerenderedLayer blits the cached surface of layer at the level's
// world position.
func (r *Renderer) DrawPrerenderedLayer(layer *ldtk.Layer, level *ldtk.Level) error {
	rl, ok := r.prerendered[layer.IID]
	if !ok {
		return &NotPrerenderedError{Kind: "layer", ID: layer.IID}
	}
	r.drawSurfaces(rl.Layers, level)
	return nil
}

// Package render composites levels and layers into surfaces and caches
// the results.
//
// Drawing a level is a two-phase protocol: PrerenderLevel (or
// PrerenderLayer) composites once and stores the surfaces under the
// level's (or layer's) identifier, then DrawPrerenderedLevel (or
// DrawPrerenderedLayer) blits the cached surfaces every frame. DrawLevel
// skips the cache and composites on every call.
//
// A Renderer is not safe for concurrent use.
package render

import (
	"image"
	"image/color"
	"log/slog"
	"sort"

	"github.com/milk9111/ldtkrender/assets"
	"github.com/milk9111/ldtkrender/gfx"
	"golang.org/x/image/colornames"
)

// RenderedLevel is the cached unit: composited surfaces in back-to-front
// order.
type RenderedLevel struct {
	Layers []gfx.Surface
}

type Renderer struct {
	dev    gfx.Device
	loader assets.Loader
	// bundle is set when loader addresses assets by extensionless name.
	bundle bool
	log    *slog.Logger

	backgroundClear color.Color
	intGridColor    func(value int) color.Color

	prerendered map[string]RenderedLevel
	images      map[string]gfx.Surface

	pixel   gfx.Surface
	missing gfx.Surface
	closed  bool
}

type Option func(*Renderer)

// WithBundle resolves images through an asset bundle. File extensions are
// stripped from relative paths before lookup.
func WithBundle(b assets.Loader) Option {
	return func(r *Renderer) {
		r.loader = b
		r.bundle = true
	}
}

// WithLoader resolves images through l using full file paths. The default
// is assets.Files{}.
func WithLoader(l assets.Loader) Option {
	return func(r *Renderer) {
		r.loader = l
		r.bundle = false
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithBackgroundClear clears background surfaces to c before painting the
// background image. Without it they start transparent.
func WithBackgroundClear(c color.Color) Option {
	return func(r *Renderer) {
		r.backgroundClear = c
	}
}

// WithIntGridColors sets the tint DrawIntGrid uses for each cell value.
func WithIntGridColors(fn func(value int) color.Color) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.intGridColor = fn
		}
	}
}

// DefaultIntGridColor is the tint of every non-zero int-grid cell.
func DefaultIntGridColor(int) color.Color {
	return colornames.Pink
}

func New(dev gfx.Device, opts ...Option) *Renderer {
	r := &Renderer{
		dev:          dev,
		loader:       assets.Files{},
		log:          slog.New(slog.DiscardHandler),
		intGridColor: DefaultIntGridColor,
		prerendered:  make(map[string]RenderedLevel),
		images:       make(map[string]gfx.Surface),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.pixel = dev.NewSurfaceFromImage(pixelImage())
	r.missing = dev.NewSurfaceFromImage(missingImage())
	return r
}

// Close releases the placeholder images. Cached surfaces are left to the
// caller, see ClearPrerendered and ClearImages.
func (r *Renderer) Close() {
	if r == nil || r.closed {
		return
	}
	r.closed = true
	r.dev.Dispose(r.pixel)
	r.dev.Dispose(r.missing)
}

// Prerendered returns the cached entry for a level or layer identifier.
func (r *Renderer) Prerendered(id string) (RenderedLevel, bool) {
	rl, ok := r.prerendered[id]
	return rl, ok
}

// PrerenderedIDs lists the cached identifiers in sorted order.
func (r *Renderer) PrerenderedIDs() []string {
	ids := make([]string, 0, len(r.prerendered))
	for id := range r.prerendered {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ForgetPrerendered drops and releases one cached entry.
func (r *Renderer) ForgetPrerendered(id string) bool {
	rl, ok := r.prerendered[id]
	if !ok {
		return false
	}
	for _, s := range rl.Layers {
		r.dev.Dispose(s)
	}
	delete(r.prerendered, id)
	return true
}

// ClearPrerendered drops and releases every cached composite.
func (r *Renderer) ClearPrerendered() {
	for id := range r.prerendered {
		r.ForgetPrerendered(id)
	}
}

// CachedImages is the number of source images loaded so far.
func (r *Renderer) CachedImages() int {
	return len(r.images)
}

// ClearImages drops and releases every cached source image.
func (r *Renderer) ClearImages() {
	for path, s := range r.images {
		r.dev.Dispose(s)
		delete(r.images, path)
	}
}

func pixelImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, gfx.White)
	return img
}

// missingImage is a 2x2 magenta and black checkerboard.
func missingImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, colornames.Magenta)
	img.Set(1, 0, colornames.Black)
	img.Set(0, 1, colornames.Black)
	img.Set(1, 1, colornames.Magenta)
	return img
}

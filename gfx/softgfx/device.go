// Package softgfx is a CPU gfx.Device backed by *image.RGBA. It is used
// for headless baking and for pixel-exact tests.
package softgfx

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/milk9111/ldtkrender/gfx"
	xdraw "golang.org/x/image/draw"
)

// Surface wraps an RGBA image.
type Surface struct {
	*image.RGBA
}

// Device draws with nearest-neighbour sampling, the equivalent of a
// point-clamp sampler.
type Device struct {
	screen *Surface
	target *Surface
	batch  int
}

var _ gfx.Device = (*Device)(nil)

// New returns a device whose default target is a width x height screen.
func New(width, height int) *Device {
	s := &Surface{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
	return &Device{screen: s, target: s}
}

// Screen is the default target.
func (d *Device) Screen() *image.RGBA {
	return d.screen.RGBA
}

func (d *Device) NewSurface(width, height int) gfx.Surface {
	return &Surface{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (d *Device) NewSurfaceFromImage(img image.Image) gfx.Surface {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Surface{RGBA: dst}
}

func (d *Device) SetTarget(s gfx.Surface) {
	if s == nil {
		d.target = d.screen
		return
	}
	d.target = s.(*Surface)
}

func (d *Device) Clear(c color.Color) {
	draw.Draw(d.target.RGBA, d.target.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (d *Device) Draw(src gfx.Surface, op gfx.DrawOp) {
	s, ok := src.(*Surface)
	if !ok || s == nil {
		return
	}
	sr := op.SourceRect(s.Bounds()).Intersect(s.Bounds())
	if sr.Empty() {
		return
	}

	// Transform works in absolute source coordinates.
	m := op.Transform(float64(sr.Dx()), float64(sr.Dy()))
	m[2] -= m[0]*float64(sr.Min.X) + m[1]*float64(sr.Min.Y)
	m[5] -= m[3]*float64(sr.Min.X) + m[4]*float64(sr.Min.Y)

	var img image.Image = s.RGBA
	if tint := op.EffectiveTint(); tint != gfx.White {
		img = tinted{Image: s.RGBA, tint: tint}
	}
	xdraw.NearestNeighbor.Transform(d.target.RGBA, m, img, sr, xdraw.Over, nil)
}

func (d *Device) Begin() { d.batch++ }
func (d *Device) End()   { d.batch-- }

func (d *Device) Dispose(s gfx.Surface) {
	if ss, ok := s.(*Surface); ok && ss != d.screen {
		ss.RGBA = image.NewRGBA(image.Rectangle{})
	}
}

// tinted multiplies every pixel by a color, like a sprite tint.
type tinted struct {
	image.Image
	tint color.RGBA
}

func (t tinted) At(x, y int) color.Color {
	r, g, b, a := t.Image.At(x, y).RGBA()
	return color.RGBA64{
		R: uint16(r * uint32(t.tint.R) / 0xff),
		G: uint16(g * uint32(t.tint.G) / 0xff),
		B: uint16(b * uint32(t.tint.B) / 0xff),
		A: uint16(a * uint32(t.tint.A) / 0xff),
	}
}

// Package ebitengfx implements gfx.Device on top of ebiten images.
package ebitengfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ldtkrender/gfx"
)

// Device draws onto *ebiten.Image surfaces. The default target is the
// screen handed to SetScreen each frame; draws to it go through the
// camera transform, draws to off-screen surfaces do not.
type Device struct {
	screen *ebiten.Image
	target *ebiten.Image

	camX, camY float64
	zoom       float64
}

var _ gfx.Device = (*Device)(nil)

func New() *Device {
	return &Device{zoom: 1}
}

// SetScreen sets the default target, typically from ebiten.Game.Draw.
func (d *Device) SetScreen(screen *ebiten.Image) {
	if d.target == d.screen {
		d.target = screen
	}
	d.screen = screen
}

// SetCamera sets the view's top-left in world coordinates and its zoom.
func (d *Device) SetCamera(camX, camY, zoom float64) {
	if zoom <= 0 {
		zoom = 1
	}
	d.camX, d.camY, d.zoom = camX, camY, zoom
}

func (d *Device) NewSurface(width, height int) gfx.Surface {
	return ebiten.NewImage(width, height)
}

func (d *Device) NewSurfaceFromImage(img image.Image) gfx.Surface {
	return ebiten.NewImageFromImage(img)
}

func (d *Device) SetTarget(s gfx.Surface) {
	if s == nil {
		d.target = d.screen
		return
	}
	d.target = s.(*ebiten.Image)
}

func (d *Device) Clear(c color.Color) {
	if d.target == nil {
		return
	}
	d.target.Fill(c)
}

func (d *Device) Draw(src gfx.Surface, op gfx.DrawOp) {
	img, ok := src.(*ebiten.Image)
	if !ok || img == nil || d.target == nil {
		return
	}
	if !op.Src.Empty() {
		sub, ok := img.SubImage(op.Src).(*ebiten.Image)
		if !ok {
			return
		}
		img = sub
	}
	b := img.Bounds()

	m := op.Transform(float64(b.Dx()), float64(b.Dy()))
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.SetElement(0, 0, m[0])
	opts.GeoM.SetElement(0, 1, m[1])
	opts.GeoM.SetElement(0, 2, m[2])
	opts.GeoM.SetElement(1, 0, m[3])
	opts.GeoM.SetElement(1, 1, m[4])
	opts.GeoM.SetElement(1, 2, m[5])
	if d.target == d.screen {
		opts.GeoM.Translate(-d.camX, -d.camY)
		opts.GeoM.Scale(d.zoom, d.zoom)
	}
	opts.ColorScale.ScaleWithColor(op.EffectiveTint())
	opts.Filter = ebiten.FilterNearest

	d.target.DrawImage(img, opts)
}

// Begin and End are no-ops: ebiten batches draw calls itself.
func (d *Device) Begin() {}
func (d *Device) End()   {}

func (d *Device) Dispose(s gfx.Surface) {
	if img, ok := s.(*ebiten.Image); ok && img != nil && img != d.screen {
		img.Deallocate()
	}
}

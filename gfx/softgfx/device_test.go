package softgfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/ldtkrender/common"
	"github.com/milk9111/ldtkrender/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red         = color.RGBA{R: 0xff, A: 0xff}
	green       = color.RGBA{G: 0xff, A: 0xff}
	blue        = color.RGBA{B: 0xff, A: 0xff}
	transparent = color.RGBA{}
)

// quad returns a 2x2 image: red green / blue white.
func quad() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, green)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 1, gfx.White)
	return img
}

func TestDrawMirrors(t *testing.T) {
	cases := []struct {
		mirror gfx.Mirror
		want   [4]color.RGBA // (0,0) (1,0) (0,1) (1,1)
	}{
		{gfx.MirrorNone, [4]color.RGBA{red, green, blue, gfx.White}},
		{gfx.MirrorHorizontal, [4]color.RGBA{green, red, gfx.White, blue}},
		{gfx.MirrorVertical, [4]color.RGBA{blue, gfx.White, red, green}},
		{gfx.MirrorBoth, [4]color.RGBA{gfx.White, blue, green, red}},
	}
	for _, c := range cases {
		t.Run(c.mirror.String(), func(t *testing.T) {
			d := New(4, 4)
			src := d.NewSurfaceFromImage(quad())
			op := gfx.At(common.V(1, 1))
			op.Mirror = c.mirror
			d.Draw(src, op)

			scr := d.Screen()
			assert.Equal(t, c.want[0], scr.RGBAAt(1, 1))
			assert.Equal(t, c.want[1], scr.RGBAAt(2, 1))
			assert.Equal(t, c.want[2], scr.RGBAAt(1, 2))
			assert.Equal(t, c.want[3], scr.RGBAAt(2, 2))
			assert.Equal(t, transparent, scr.RGBAAt(0, 0))
			assert.Equal(t, transparent, scr.RGBAAt(3, 3))
		})
	}
}

func TestDrawSourceRectAndScale(t *testing.T) {
	d := New(8, 8)
	src := d.NewSurfaceFromImage(quad())

	op := gfx.At(common.V(2, 2))
	op.Src = image.Rect(1, 0, 2, 1)
	op.Scale = common.V(3, 3)
	d.Draw(src, op)

	scr := d.Screen()
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			require.Equal(t, green, scr.RGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
	assert.Equal(t, transparent, scr.RGBAAt(5, 2))
	assert.Equal(t, transparent, scr.RGBAAt(2, 5))
	assert.Equal(t, transparent, scr.RGBAAt(1, 1))
}

func TestDrawOriginAndTint(t *testing.T) {
	d := New(8, 8)
	px := image.NewRGBA(image.Rect(0, 0, 1, 1))
	px.SetRGBA(0, 0, gfx.White)
	src := d.NewSurfaceFromImage(px)

	op := gfx.At(common.V(4, 4))
	op.Scale = common.V(2, 2)
	op.Origin = common.V(1, 1)
	op.Tint = blue
	d.Draw(src, op)

	scr := d.Screen()
	assert.Equal(t, blue, scr.RGBAAt(2, 2))
	assert.Equal(t, blue, scr.RGBAAt(3, 3))
	assert.Equal(t, transparent, scr.RGBAAt(4, 4))
	assert.Equal(t, transparent, scr.RGBAAt(1, 1))
}

func TestTargetsAndClear(t *testing.T) {
	d := New(4, 4)
	off := d.NewSurface(2, 2)

	d.SetTarget(off)
	d.Clear(red)
	d.SetTarget(nil)

	assert.Equal(t, red, off.(*Surface).RGBAAt(1, 1))
	assert.Equal(t, transparent, d.Screen().RGBAAt(1, 1))

	d.Draw(off, gfx.At(common.V(2, 2)))
	assert.Equal(t, red, d.Screen().RGBAAt(3, 3))
	assert.Equal(t, transparent, d.Screen().RGBAAt(1, 1))

	d.Dispose(off)
	assert.True(t, off.Bounds().Empty())
}

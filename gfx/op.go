package gfx

import (
	"image"
	"image/color"
	"math"

	"github.com/milk9111/ldtkrender/common"
	"golang.org/x/image/math/f64"
)

// Mirror selects which axes of the source rectangle are flipped.
type Mirror uint8

const (
	MirrorNone       Mirror = 0
	MirrorHorizontal Mirror = 1 << 0
	MirrorVertical   Mirror = 1 << 1
	MirrorBoth              = MirrorHorizontal | MirrorVertical
)

// MirrorFromFlipBits maps tile flip bits (bit 0 horizontal, bit 1
// vertical) onto a Mirror. Higher bits are ignored.
func MirrorFromFlipBits(bits int) Mirror {
	return Mirror(bits) & MirrorBoth
}

func (m Mirror) Horizontal() bool { return m&MirrorHorizontal != 0 }
func (m Mirror) Vertical() bool   { return m&MirrorVertical != 0 }

func (m Mirror) String() string {
	switch m & MirrorBoth {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorBoth:
		return "both"
	default:
		return "none"
	}
}

// White is the neutral tint.
var White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// DrawOp holds the parameters of a single blit.
//
// The source rectangle is mirrored in place, then Origin (in source
// pixels) is moved to the destination: the quad is shifted by -Origin,
// scaled, rotated by Rotation radians and translated to Dst.
type DrawOp struct {
	Dst common.Vec
	// Src is the region of the source surface. The empty rectangle means
	// the whole surface.
	Src      image.Rectangle
	Tint     color.RGBA
	Rotation float64
	Origin   common.Vec
	Scale    common.Vec
	Mirror   Mirror
}

// At returns an op that draws the whole source at dst with no transform.
func At(dst common.Vec) DrawOp {
	return DrawOp{
		Dst:   dst,
		Tint:  White,
		Scale: common.V(1, 1),
	}
}

// EffectiveTint returns Tint, treating the zero value as White.
func (op DrawOp) EffectiveTint() color.RGBA {
	if op.Tint == (color.RGBA{}) {
		return White
	}
	return op.Tint
}

// SourceRect resolves Src against the bounds of the source surface.
func (op DrawOp) SourceRect(src image.Rectangle) image.Rectangle {
	if op.Src.Empty() {
		return src
	}
	return op.Src
}

// Transform returns the affine matrix mapping source-local pixel
// coordinates of a w x h region onto the target.
func (op DrawOp) Transform(w, h float64) f64.Aff3 {
	m := identity()
	if op.Mirror.Horizontal() {
		m = scale(m, -1, 1)
		m = translate(m, w, 0)
	}
	if op.Mirror.Vertical() {
		m = scale(m, 1, -1)
		m = translate(m, 0, h)
	}
	m = translate(m, -op.Origin.X, -op.Origin.Y)
	m = scale(m, op.Scale.X, op.Scale.Y)
	if op.Rotation != 0 {
		m = rotate(m, op.Rotation)
	}
	return translate(m, op.Dst.X, op.Dst.Y)
}

// Apply maps a point through an affine matrix.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

func identity() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// concat returns t applied after m.
func concat(t, m f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		t[0]*m[0] + t[1]*m[3],
		t[0]*m[1] + t[1]*m[4],
		t[0]*m[2] + t[1]*m[5] + t[2],
		t[3]*m[0] + t[4]*m[3],
		t[3]*m[1] + t[4]*m[4],
		t[3]*m[2] + t[4]*m[5] + t[5],
	}
}

func translate(m f64.Aff3, tx, ty float64) f64.Aff3 {
	return concat(f64.Aff3{1, 0, tx, 0, 1, ty}, m)
}

func scale(m f64.Aff3, sx, sy float64) f64.Aff3 {
	return concat(f64.Aff3{sx, 0, 0, 0, sy, 0}, m)
}

func rotate(m f64.Aff3, theta float64) f64.Aff3 {
	sin, cos := math.Sincos(theta)
	return concat(f64.Aff3{cos, -sin, 0, sin, cos, 0}, m)
}

package gfx

import (
	"image"
	"math"
	"testing"

	"github.com/milk9111/ldtkrender/common"
	"github.com/stretchr/testify/assert"
)

func TestMirrorFromFlipBits(t *testing.T) {
	cases := []struct {
		bits int
		want Mirror
		h, v bool
	}{
		{0, MirrorNone, false, false},
		{1, MirrorHorizontal, true, false},
		{2, MirrorVertical, false, true},
		{3, MirrorBoth, true, true},
		{7, MirrorBoth, true, true},
	}
	for _, c := range cases {
		t.Run(c.want.String(), func(t *testing.T) {
			m := MirrorFromFlipBits(c.bits)
			assert.Equal(t, c.want, m)
			assert.Equal(t, c.h, m.Horizontal())
			assert.Equal(t, c.v, m.Vertical())
		})
	}
}

func TestSourceRect(t *testing.T) {
	full := image.Rect(0, 0, 64, 32)
	assert.Equal(t, full, At(common.V(0, 0)).SourceRect(full))

	op := At(common.V(0, 0))
	op.Src = image.Rect(16, 0, 32, 16)
	assert.Equal(t, image.Rect(16, 0, 32, 16), op.SourceRect(full))
}

func TestTransform(t *testing.T) {
	type pt struct{ x, y float64 }
	cases := []struct {
		name string
		op   DrawOp
		in   pt
		want pt
	}{
		{"translate", At(common.V(10, 20)), pt{0, 0}, pt{10, 20}},
		{"mirror_h", DrawOp{Dst: common.V(10, 0), Scale: common.V(1, 1), Mirror: MirrorHorizontal}, pt{0, 0}, pt{26, 0}},
		{"mirror_v", DrawOp{Dst: common.V(0, 10), Scale: common.V(1, 1), Mirror: MirrorVertical}, pt{0, 4}, pt{0, 22}},
		{"mirror_both", DrawOp{Scale: common.V(1, 1), Mirror: MirrorBoth}, pt{16, 16}, pt{0, 0}},
		{"origin", DrawOp{Dst: common.V(100, 100), Scale: common.V(1, 1), Origin: common.V(8, 16)}, pt{8, 16}, pt{100, 100}},
		{"scale", DrawOp{Dst: common.V(4, 4), Scale: common.V(2, 3)}, pt{1, 1}, pt{6, 7}},
		{"scaled_origin", DrawOp{Scale: common.V(2, 2), Origin: common.V(1, 1)}, pt{0, 0}, pt{-2, -2}},
		{"rotate", DrawOp{Scale: common.V(1, 1), Rotation: math.Pi / 2}, pt{1, 0}, pt{0, 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x, y := Apply(c.op.Transform(16, 16), c.in.x, c.in.y)
			assert.InDelta(t, c.want.x, x, 1e-9)
			assert.InDelta(t, c.want.y, y, 1e-9)
		})
	}
}

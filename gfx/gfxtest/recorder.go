// Package gfxtest provides a gfx.Device that records every call instead
// of painting, for tests that assert on the draw sequence.
package gfxtest

import (
	"fmt"
	"image"
	"image/color"

	"github.com/milk9111/ldtkrender/gfx"
)

// Surface is a recorded surface. Image is set for surfaces created from
// decoded images.
type Surface struct {
	ID       int
	W, H     int
	Image    image.Image
	Disposed bool
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.W, s.H)
}

func (s *Surface) String() string {
	return fmt.Sprintf("surface#%d(%dx%d)", s.ID, s.W, s.H)
}

// Call is one recorded Draw. Target is nil for the default target.
type Call struct {
	Target *Surface
	Src    *Surface
	Op     gfx.DrawOp
}

// Recorder implements gfx.Device.
type Recorder struct {
	Surfaces []*Surface
	Calls    []Call
	Clears   []color.Color
	Targets  []*Surface // every SetTarget argument in order

	Begins, Ends int

	target *Surface
	depth  int
}

var _ gfx.Device = (*Recorder)(nil)

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) NewSurface(width, height int) gfx.Surface {
	s := &Surface{ID: len(r.Surfaces) + 1, W: width, H: height}
	r.Surfaces = append(r.Surfaces, s)
	return s
}

func (r *Recorder) NewSurfaceFromImage(img image.Image) gfx.Surface {
	b := img.Bounds()
	s := r.NewSurface(b.Dx(), b.Dy()).(*Surface)
	s.Image = img
	return s
}

func (r *Recorder) SetTarget(s gfx.Surface) {
	if s == nil {
		r.target = nil
		r.Targets = append(r.Targets, nil)
		return
	}
	r.target = s.(*Surface)
	r.Targets = append(r.Targets, r.target)
}

func (r *Recorder) Target() *Surface {
	return r.target
}

func (r *Recorder) Clear(c color.Color) {
	r.Clears = append(r.Clears, c)
}

func (r *Recorder) Draw(src gfx.Surface, op gfx.DrawOp) {
	r.Calls = append(r.Calls, Call{Target: r.target, Src: src.(*Surface), Op: op})
}

func (r *Recorder) Begin() {
	r.Begins++
	r.depth++
}

func (r *Recorder) End() {
	r.Ends++
	r.depth--
}

// InBatch reports whether a Begin is still open.
func (r *Recorder) InBatch() bool {
	return r.depth > 0
}

func (r *Recorder) Dispose(s gfx.Surface) {
	if rs, ok := s.(*Surface); ok {
		rs.Disposed = true
	}
}

// CallsOn returns the draws made while target was bound.
func (r *Recorder) CallsOn(target *Surface) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Target == target {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls but keeps allocated surfaces.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Clears = nil
	r.Targets = nil
	r.Begins, r.Ends = 0, 0
}

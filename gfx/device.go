// Package gfx defines the drawing primitive the renderer composites with.
//
// A Device owns one bound paint target at a time. SetTarget(nil) restores
// the default presentation surface. Draw paints a source surface onto the
// bound target with the parameters of a DrawOp.
package gfx

import (
	"image"
	"image/color"
)

// Surface is an image a Device can draw from or into.
type Surface interface {
	Bounds() image.Rectangle
}

type Device interface {
	// NewSurface allocates an off-screen surface. Its contents persist
	// across draws and it has no depth buffer.
	NewSurface(width, height int) Surface
	NewSurfaceFromImage(img image.Image) Surface

	// SetTarget redirects subsequent draws. nil is the default target.
	SetTarget(s Surface)
	// Clear fills the bound target with c.
	Clear(c color.Color)
	Draw(src Surface, op DrawOp)

	// Begin and End bracket a batch of draws.
	Begin()
	End()

	// Dispose releases a surface allocated by this device.
	Dispose(s Surface)
}

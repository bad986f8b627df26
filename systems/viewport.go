// Package systems implements the particle field: construction, per-frame
// stepping, pointer tracking and connection lines.
package systems

import "github.com/pthm-cable/plexus/surface"

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width, Height float64
}

// Area returns the viewport area, or 0 when either side is not positive.
func (v Viewport) Area() float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 0
	}
	return v.Width * v.Height
}

// ViewportMonitor mirrors host resize and pointer events into the surface,
// the pointer tracker and the field.
type ViewportMonitor struct {
	viewport Viewport
	pointer  *PointerTracker
	surface  surface.Surface
	onResize func(Viewport)
}

// NewViewportMonitor creates a monitor. onResize runs after every resize
// with the new viewport; the simulation uses it to rebuild the field.
func NewViewportMonitor(vp Viewport, pointer *PointerTracker, s surface.Surface, onResize func(Viewport)) *ViewportMonitor {
	pointer.SetViewport(vp)
	return &ViewportMonitor{
		viewport: vp,
		pointer:  pointer,
		surface:  s,
		onResize: onResize,
	}
}

// Viewport returns the current viewport.
func (m *ViewportMonitor) Viewport() Viewport {
	return m.viewport
}

// Resize stores the new size, resizes the surface, recomputes the pointer
// radius and triggers a rebuild. Existing particles are never repositioned.
func (m *ViewportMonitor) Resize(width, height float64) {
	m.viewport = Viewport{Width: width, Height: height}
	if m.surface != nil {
		m.surface.Resize(width, height)
	}
	m.pointer.SetViewport(m.viewport)
	if m.onResize != nil {
		m.onResize(m.viewport)
	}
}

// PointerMove records the pointer position in viewport coordinates.
func (m *ViewportMonitor) PointerMove(x, y float64) {
	m.pointer.Move(x, y)
}

// PointerLeave marks the pointer absent.
func (m *ViewportMonitor) PointerLeave() {
	m.pointer.Leave()
}

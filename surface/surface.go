// Package surface defines the drawing target the particle field renders onto.
package surface

import "github.com/pthm-cable/plexus/theme"

// Surface is the 2D drawing target the field renders onto.
type Surface interface {
	// Clear wipes the whole surface.
	Clear()
	// FillCircle draws a filled circle centered at (x, y).
	FillCircle(x, y, radius float64, c theme.Color)
	// StrokeLine draws a straight line between two points.
	StrokeLine(x1, y1, x2, y2, width float64, c theme.Color)
	// Resize changes the surface dimensions.
	Resize(width, height float64)
}

// Presenter is implemented by surfaces that need a frame bracketed,
// such as raylib's BeginDrawing/EndDrawing.
type Presenter interface {
	BeginFrame()
	EndFrame()
}

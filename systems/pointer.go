package systems

// PointerState is a per-frame snapshot of the pointer.
type PointerState struct {
	X, Y    float64
	Present bool
	Radius  float64 // influence radius
}

// PointerTracker holds the last known pointer position.
type PointerTracker struct {
	state   PointerState
	divisor float64
}

// NewPointerTracker creates an absent pointer. divisor scales the
// influence radius: (height/divisor) * (width/divisor).
func NewPointerTracker(divisor float64) *PointerTracker {
	return &PointerTracker{divisor: divisor}
}

// InfluenceRadius returns the pointer radius for a viewport.
func InfluenceRadius(vp Viewport, divisor float64) float64 {
	return (vp.Height / divisor) * (vp.Width / divisor)
}

// SetViewport recomputes the influence radius.
func (p *PointerTracker) SetViewport(vp Viewport) {
	p.state.Radius = InfluenceRadius(vp, p.divisor)
}

// Move records a pointer position.
func (p *PointerTracker) Move(x, y float64) {
	p.state.X = x
	p.state.Y = y
	p.state.Present = true
}

// Leave marks the pointer absent. The stale coordinates are zeroed so
// nothing can read them as a position.
func (p *PointerTracker) Leave() {
	p.state.X = 0
	p.state.Y = 0
	p.state.Present = false
}

// Snapshot returns a copy of the current state.
func (p *PointerTracker) Snapshot() PointerState {
	return p.state
}

package systems

import (
	"github.com/pthm-cable/plexus/components"
	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/theme"
)

// ConnectionRenderer draws fading lines between nearby particles.
type ConnectionRenderer struct {
	cfg config.LinksConfig
}

// NewConnectionRenderer creates a renderer.
func NewConnectionRenderer(cfg config.LinksConfig) *ConnectionRenderer {
	return &ConnectionRenderer{cfg: cfg}
}

// Threshold returns the squared-distance cutoff for a viewport. It is the
// product of the two scaled sides, compared directly against squared
// distances.
func (r *ConnectionRenderer) Threshold(vp Viewport) float64 {
	return (vp.Width / r.cfg.DistanceDivisor) * (vp.Height / r.cfg.DistanceDivisor)
}

// Opacity returns the line alpha for a squared distance. The result is not
// clamped and goes negative past the fade distance.
func (r *ConnectionRenderer) Opacity(distSq float64) float64 {
	return 1 - distSq/r.cfg.FadeDistanceSq
}

// Link is one connection found by ForEachLink.
type Link struct {
	A, B    int
	DistSq  float64
	Opacity float64
}

// ForEachLink calls fn for every pair under the threshold. Pairs run
// a = 0..n-1, b = a..n-1, so each particle is also paired with itself
// (distance 0, a zero-length line).
func (r *ConnectionRenderer) ForEachLink(positions []components.Position, vp Viewport, fn func(Link)) {
	threshold := r.Threshold(vp)
	for a := range positions {
		pa := positions[a]
		for b := a; b < len(positions); b++ {
			dx := pa.X - positions[b].X
			dy := pa.Y - positions[b].Y
			d := dx*dx + dy*dy
			if d < threshold {
				fn(Link{A: a, B: b, DistSq: d, Opacity: r.Opacity(d)})
			}
		}
	}
}

// Draw strokes every link in the link color of t and returns how many
// lines were drawn.
func (r *ConnectionRenderer) Draw(s surface.Surface, positions []components.Position, vp Viewport, t theme.Theme) int {
	drawn := 0
	r.ForEachLink(positions, vp, func(l Link) {
		pa, pb := positions[l.A], positions[l.B]
		s.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, r.cfg.LineWidth, theme.LinkColor(t, l.Opacity))
		drawn++
	})
	return drawn
}

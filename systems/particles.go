package systems

import (
	"math"

	"github.com/pthm-cable/plexus/components"
	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/theme"
)

// StepParticle advances one particle by a frame.
//
// The order is fixed: reflect velocity off the viewport edges, nudge away
// from the pointer, then integrate. Reflection is detected after the fact,
// so a particle can sit up to one step outside the viewport for a frame.
func StepParticle(pos *components.Position, vel *components.Velocity, size float64, vp Viewport, ptr PointerState, cfg config.PointerConfig) {
	if pos.X > vp.Width || pos.X < 0 {
		vel.DX = -vel.DX
	}
	if pos.Y > vp.Height || pos.Y < 0 {
		vel.DY = -vel.DY
	}

	if ptr.Present {
		repel(pos, size, vp, ptr, cfg)
	}

	pos.X += vel.DX
	pos.Y += vel.DY
}

// repel pushes a particle inside the pointer radius a fixed step away from
// the pointer, per axis. A step that would leave the inner margin of
// size*EdgeMargin is dropped on that axis only.
func repel(pos *components.Position, size float64, vp Viewport, ptr PointerState, cfg config.PointerConfig) {
	dist := math.Hypot(ptr.X-pos.X, ptr.Y-pos.Y)
	if dist >= ptr.Radius+size {
		return
	}

	margin := size * cfg.EdgeMargin
	pos.X = nudge(pos.X, ptr.X, cfg.RepulsionStep, margin, vp.Width-margin)
	pos.Y = nudge(pos.Y, ptr.Y, cfg.RepulsionStep, margin, vp.Height-margin)
}

// nudge moves v by step away from from, if the result stays in [lo, hi].
func nudge(v, from, step, lo, hi float64) float64 {
	switch {
	case from < v:
		if next := v + step; next <= hi {
			return next
		}
	case from > v:
		if next := v - step; next >= lo {
			return next
		}
	}
	return v
}

// DrawParticle fills a circle of the particle's size in its own color.
func DrawParticle(s surface.Surface, pos components.Position, size float64, c theme.Color) {
	s.FillCircle(pos.X, pos.Y, size, c)
}

package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plexus/components"
)

// BoundsAudit counts particles currently outside the viewport. Positions
// overshoot for at most one frame before reflection turns them around.
type BoundsAudit struct {
	filter *ecs.Filter1[components.Position]
}

// NewBoundsAudit creates an audit over the field's world.
func NewBoundsAudit(f *ParticleField) *BoundsAudit {
	return &BoundsAudit{filter: ecs.NewFilter1[components.Position](f.World())}
}

// OutOfBounds returns the number of particles outside [0, w] x [0, h].
func (a *BoundsAudit) OutOfBounds(vp Viewport) int {
	n := 0
	query := a.filter.Query()
	for query.Next() {
		pos := query.Get()
		if pos.X < 0 || pos.X > vp.Width || pos.Y < 0 || pos.Y > vp.Height {
			n++
		}
	}
	return n
}

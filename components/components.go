// Package components defines ECS components for the particle field.
package components

import "github.com/pthm-cable/plexus/theme"

// Position is a particle's location in viewport pixels.
type Position struct {
	X, Y float64
}

// Velocity is the per-frame displacement. Components start in [-1, 1];
// reflection only flips their sign.
type Velocity struct {
	DX, DY float64
}

// Body holds the particle radius, fixed at creation.
type Body struct {
	Size float64
}

// Tint is the fill color assigned at creation. It is not updated on theme change.
type Tint struct {
	Color theme.Color
}

// Particle is a read-only copy of one particle's components.
type Particle struct {
	Position
	Velocity
	Size  float64
	Color theme.Color
}

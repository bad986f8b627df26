package game

import (
	"math/rand"

	"github.com/pthm-cable/plexus/components"
	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/systems"
	"github.com/pthm-cable/plexus/theme"
)

// Simulation is the explicit context the render loop owns: the field, the
// pointer, the viewport and the surface they draw on.
type Simulation struct {
	cfg     *config.Config
	surface surface.Surface
	themes  theme.Source

	field   *systems.ParticleField
	links   *systems.ConnectionRenderer
	pointer *systems.PointerTracker
	monitor *systems.ViewportMonitor
	audit   *systems.BoundsAudit

	// Reused each frame by the connection pass
	positions []components.Position

	onRebuild func(count int)
}

// FrameResult summarizes one frame.
type FrameResult struct {
	Particles      int
	Links          int
	OutOfBounds    int
	PointerPresent bool
	Theme          theme.Theme
}

// NewSimulation creates a simulation for the given viewport. The field stays
// empty until InitParticles is called.
func NewSimulation(cfg *config.Config, s surface.Surface, themes theme.Source, vp systems.Viewport, rng *rand.Rand) *Simulation {
	sim := &Simulation{
		cfg:     cfg,
		surface: s,
		themes:  themes,
		field:   systems.NewParticleField(cfg.Field, rng),
		links:   systems.NewConnectionRenderer(cfg.Links),
		pointer: systems.NewPointerTracker(cfg.Pointer.RadiusDivisor),
	}
	sim.audit = systems.NewBoundsAudit(sim.field)
	sim.monitor = systems.NewViewportMonitor(vp, sim.pointer, s, func(systems.Viewport) {
		sim.InitParticles()
	})
	return sim
}

// InitParticles rebuilds the field from the current viewport and theme.
func (s *Simulation) InitParticles() {
	s.field.Rebuild(s.monitor.Viewport(), s.themes.Current())
	if s.onRebuild != nil {
		s.onRebuild(s.field.Len())
	}
}

// Frame runs one frame: clear, step and draw every particle, then draw
// connections. Pointer and viewport are read once up front so events
// delivered mid-frame cannot split it. phase, if set, is called with the
// name of each stage as it starts.
func (s *Simulation) Frame(phase func(string)) FrameResult {
	vp := s.monitor.Viewport()
	ptr := s.pointer.Snapshot()
	t := s.themes.Current()
	if phase == nil {
		phase = func(string) {}
	}

	phase(phaseClear)
	s.surface.Clear()

	phase(phaseParticles)
	s.field.Update(s.surface, vp, ptr, s.cfg.Pointer)

	phase(phaseLinks)
	s.positions = s.field.Positions(s.positions)
	links := s.links.Draw(s.surface, s.positions, vp, t)

	return FrameResult{
		Particles:      s.field.Len(),
		Links:          links,
		OutOfBounds:    s.audit.OutOfBounds(vp),
		PointerPresent: ptr.Present,
		Theme:          t,
	}
}

// Resize forwards a host resize. The field is rebuilt.
func (s *Simulation) Resize(width, height float64) {
	s.monitor.Resize(width, height)
}

// PointerMove forwards a host pointer position.
func (s *Simulation) PointerMove(x, y float64) {
	s.monitor.PointerMove(x, y)
}

// PointerLeave forwards the pointer leaving the surface.
func (s *Simulation) PointerLeave() {
	s.monitor.PointerLeave()
}

// Viewport returns the current viewport.
func (s *Simulation) Viewport() systems.Viewport {
	return s.monitor.Viewport()
}

// Pointer returns the current pointer state.
func (s *Simulation) Pointer() systems.PointerState {
	return s.pointer.Snapshot()
}

// Field returns the particle field for read-only inspection.
func (s *Simulation) Field() *systems.ParticleField {
	return s.field
}

// Surface returns the drawing surface.
func (s *Simulation) Surface() surface.Surface {
	return s.surface
}

package systems

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plexus/components"
	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/theme"
)

// ParticleField owns the particles. They live as entities in an ECS world;
// entities keeps them in creation order, which is both the render order and
// the pair order of the connection pass.
type ParticleField struct {
	world    *ecs.World
	mapper   *ecs.Map4[components.Position, components.Velocity, components.Body, components.Tint]
	posMap   *ecs.Map[components.Position]
	velMap   *ecs.Map[components.Velocity]
	bodyMap  *ecs.Map[components.Body]
	tintMap  *ecs.Map[components.Tint]
	entities []ecs.Entity

	cfg config.FieldConfig
	rng *rand.Rand
}

// NewParticleField creates an empty field.
func NewParticleField(cfg config.FieldConfig, rng *rand.Rand) *ParticleField {
	world := ecs.NewWorld()
	return &ParticleField{
		world:   world,
		mapper:  ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Tint](world),
		posMap:  ecs.NewMap[components.Position](world),
		velMap:  ecs.NewMap[components.Velocity](world),
		bodyMap: ecs.NewMap[components.Body](world),
		tintMap: ecs.NewMap[components.Tint](world),
		cfg:     cfg,
		rng:     rng,
	}
}

// ParticleCount returns floor(area / divisor), or 0 for a degenerate viewport.
func ParticleCount(vp Viewport, divisor float64) int {
	area := vp.Area()
	if area == 0 || divisor <= 0 {
		return 0
	}
	return int(math.Floor(area / divisor))
}

// Rebuild discards every particle and creates a fresh set for the viewport.
// New particles take the particle color of t; nothing recolors them later.
func (f *ParticleField) Rebuild(vp Viewport, t theme.Theme) {
	f.reset()

	color := theme.ParticleColor(t)
	n := ParticleCount(vp, f.cfg.DensityDivisor)
	for i := 0; i < n; i++ {
		size := f.cfg.MinSize + f.rng.Float64()*f.cfg.SizeRange
		margin := size * f.cfg.SpawnMargin
		x := f.spread(margin, vp.Width-margin)
		y := f.spread(margin, vp.Height-margin)
		dx := (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed
		dy := (f.rng.Float64()*2 - 1) * f.cfg.MaxSpeed

		f.spawn(components.Particle{
			Position: components.Position{X: x, Y: y},
			Velocity: components.Velocity{DX: dx, DY: dy},
			Size:     size,
			Color:    color,
		})
	}

	slog.Debug("field rebuilt", "count", n, "width", vp.Width, "height", vp.Height, "theme", t.String())
}

// spread draws uniformly from [lo, hi]. An inverted range collapses to its
// midpoint so small viewports still get a position.
func (f *ParticleField) spread(lo, hi float64) float64 {
	r := f.rng.Float64()
	if hi < lo {
		return (lo + hi) / 2
	}
	return lo + r*(hi-lo)
}

func (f *ParticleField) reset() {
	for _, e := range f.entities {
		f.world.RemoveEntity(e)
	}
	f.entities = f.entities[:0]
}

func (f *ParticleField) spawn(p components.Particle) {
	pos := p.Position
	vel := p.Velocity
	body := components.Body{Size: p.Size}
	tint := components.Tint{Color: p.Color}
	f.entities = append(f.entities, f.mapper.NewEntity(&pos, &vel, &body, &tint))
}

// Len returns the number of particles.
func (f *ParticleField) Len() int {
	return len(f.entities)
}

// Particle returns a copy of particle i.
func (f *ParticleField) Particle(i int) components.Particle {
	e := f.entities[i]
	return components.Particle{
		Position: *f.posMap.Get(e),
		Velocity: *f.velMap.Get(e),
		Size:     f.bodyMap.Get(e).Size,
		Color:    f.tintMap.Get(e).Color,
	}
}

// Particles returns copies of all particles in order.
func (f *ParticleField) Particles() []components.Particle {
	out := make([]components.Particle, len(f.entities))
	for i := range f.entities {
		out[i] = f.Particle(i)
	}
	return out
}

// Update steps and draws every particle in order.
func (f *ParticleField) Update(s surface.Surface, vp Viewport, ptr PointerState, cfg config.PointerConfig) {
	for _, e := range f.entities {
		pos := f.posMap.Get(e)
		vel := f.velMap.Get(e)
		size := f.bodyMap.Get(e).Size

		StepParticle(pos, vel, size, vp, ptr, cfg)
		DrawParticle(s, *pos, size, f.tintMap.Get(e).Color)
	}
}

// Positions appends the current positions to dst in order and returns it.
func (f *ParticleField) Positions(dst []components.Position) []components.Position {
	dst = dst[:0]
	for _, e := range f.entities {
		dst = append(dst, *f.posMap.Get(e))
	}
	return dst
}

// World exposes the ECS world for read-only queries.
func (f *ParticleField) World() *ecs.World {
	return f.world
}

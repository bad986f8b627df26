package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/plexus/components"
	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/theme"
)

func newTestField(seed int64) *ParticleField {
	return NewParticleField(config.Default().Field, rand.New(rand.NewSource(seed)))
}

func TestParticleCount(t *testing.T) {
	tests := []struct {
		name string
		vp   Viewport
		want int
	}{
		{"800x600", Viewport{800, 600}, 53},
		{"400x300", Viewport{400, 300}, 13},
		{"exact multiple", Viewport{9000, 1}, 1},
		{"just under one", Viewport{8999, 1}, 0},
		{"zero width", Viewport{0, 600}, 0},
		{"zero area", Viewport{0, 0}, 0},
		{"negative sides", Viewport{-300, -300}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParticleCount(tc.vp, 9000); got != tc.want {
				t.Errorf("ParticleCount(%v) = %d, want %d", tc.vp, got, tc.want)
			}
		})
	}
}

func TestRebuildDarkScenario(t *testing.T) {
	f := newTestField(1)
	f.Rebuild(Viewport{800, 600}, theme.Dark)

	if f.Len() != 53 {
		t.Fatalf("expected 53 particles, got %d", f.Len())
	}
	for i, p := range f.Particles() {
		if p.Color.Hex() != "#00f3ff" {
			t.Errorf("particle %d: color %s, want #00f3ff", i, p.Color.Hex())
		}
	}
}

func TestRebuildRanges(t *testing.T) {
	vps := []Viewport{{800, 600}, {1920, 1080}, {320, 640}}
	for seed := int64(1); seed <= 5; seed++ {
		for _, vp := range vps {
			f := newTestField(seed)
			f.Rebuild(vp, theme.Light)

			if f.Len() != ParticleCount(vp, 9000) {
				t.Fatalf("%v: count %d, want %d", vp, f.Len(), ParticleCount(vp, 9000))
			}
			for i, p := range f.Particles() {
				if p.Size < 1 || p.Size >= 3 {
					t.Errorf("%v particle %d: size %v out of [1,3)", vp, i, p.Size)
				}
				if p.DX < -1 || p.DX > 1 || p.DY < -1 || p.DY > 1 {
					t.Errorf("%v particle %d: velocity (%v,%v) out of [-1,1]", vp, i, p.DX, p.DY)
				}
				m := 2 * p.Size
				if p.X < m || p.X > vp.Width-m || p.Y < m || p.Y > vp.Height-m {
					t.Errorf("%v particle %d: position (%v,%v) outside margin %v", vp, i, p.X, p.Y, m)
				}
				if p.Color.Hex() != "#008cff" {
					t.Errorf("%v particle %d: color %s, want #008cff", vp, i, p.Color.Hex())
				}
			}
		}
	}
}

func TestRebuildNarrowViewportCollapsesRange(t *testing.T) {
	// 2px wide: the x range [2*size, 2-2*size] is inverted for every size.
	vp := Viewport{2, 9000}
	f := newTestField(3)
	f.Rebuild(vp, theme.Dark)

	if f.Len() != 2 {
		t.Fatalf("expected 2 particles, got %d", f.Len())
	}
	for i, p := range f.Particles() {
		if math.Abs(p.X-1) > 1e-9 {
			t.Errorf("particle %d: expected x collapsed to 1, got %v", i, p.X)
		}
	}
}

func TestRebuildEmptyViewport(t *testing.T) {
	f := newTestField(1)
	f.Rebuild(Viewport{800, 600}, theme.Dark)
	f.Rebuild(Viewport{0, 0}, theme.Dark)

	if f.Len() != 0 {
		t.Fatalf("expected empty field, got %d", f.Len())
	}

	// Update on an empty field draws nothing and must not panic.
	rec := surface.NewRecorder(0, 0)
	f.Update(rec, Viewport{0, 0}, PointerState{}, config.Default().Pointer)
	if len(rec.Ops()) != 0 {
		t.Errorf("expected no draw calls, got %d", len(rec.Ops()))
	}
}

func TestRebuildReplacesAllParticles(t *testing.T) {
	f := newTestField(7)
	f.Rebuild(Viewport{800, 600}, theme.Dark)
	oldEntities := append(f.entities[:0:0], f.entities...)

	f.Rebuild(Viewport{400, 300}, theme.Dark)
	if f.Len() != 13 {
		t.Fatalf("expected 13 particles, got %d", f.Len())
	}
	for _, e := range oldEntities {
		if f.World().Alive(e) {
			t.Fatalf("entity %v survived a rebuild", e)
		}
	}
	for i, p := range f.Particles() {
		if p.X > 400 || p.Y > 300 {
			t.Errorf("particle %d at (%v,%v) outside the new viewport", i, p.X, p.Y)
		}
	}
}

func TestThemeChangeDoesNotRecolor(t *testing.T) {
	f := newTestField(2)
	vp := Viewport{800, 600}
	f.Rebuild(vp, theme.Dark)

	rec := surface.NewRecorder(vp.Width, vp.Height)
	f.Update(rec, vp, PointerState{}, config.Default().Pointer)
	lines := NewConnectionRenderer(config.Default().Links)
	lines.Draw(rec, f.Positions(nil), vp, theme.Light)

	for _, op := range rec.Circles() {
		if op.Color.Hex() != "#00f3ff" {
			t.Fatalf("particle drawn in %s after theme change, want #00f3ff", op.Color.Hex())
		}
	}
	for _, op := range rec.Lines() {
		if op.Color.R != 0 || op.Color.G != 140 || op.Color.B != 255 {
			t.Fatalf("link drawn in %+v, want light link color", op.Color)
		}
	}

	// The next rebuild picks up the new theme.
	f.Rebuild(vp, theme.Light)
	if got := f.Particle(0).Color.Hex(); got != "#008cff" {
		t.Errorf("expected rebuilt particle in #008cff, got %s", got)
	}
}

func TestUpdateDrawsInOrder(t *testing.T) {
	f := newTestField(1)
	f.Rebuild(Viewport{}, theme.Dark)
	f.spawn(components.Particle{Position: components.Position{X: 10, Y: 10}, Velocity: components.Velocity{DX: 1}, Size: 1, Color: theme.ParticleColor(theme.Dark)})
	f.spawn(components.Particle{Position: components.Position{X: 20, Y: 20}, Velocity: components.Velocity{DY: -1}, Size: 2, Color: theme.ParticleColor(theme.Light)})

	rec := surface.NewRecorder(100, 100)
	f.Update(rec, Viewport{100, 100}, PointerState{}, config.Default().Pointer)

	circles := rec.Circles()
	if len(circles) != 2 {
		t.Fatalf("expected 2 circles, got %d", len(circles))
	}
	if circles[0].X1 != 11 || circles[0].Y1 != 10 || circles[0].Radius != 1 {
		t.Errorf("first circle: %+v", circles[0])
	}
	if circles[1].X1 != 20 || circles[1].Y1 != 19 || circles[1].Radius != 2 {
		t.Errorf("second circle: %+v", circles[1])
	}
	if circles[1].Color.Hex() != "#008cff" {
		t.Errorf("second circle color %s", circles[1].Color.Hex())
	}

	pos := f.Positions(nil)
	if pos[0].X != 11 || pos[1].Y != 19 {
		t.Errorf("positions not updated: %+v", pos)
	}
}

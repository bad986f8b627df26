package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/telemetry"
	"github.com/pthm-cable/plexus/theme"
)

func newTestGame(t *testing.T, w, h float64, sched Scheduler) (*Game, *surface.Recorder) {
	t.Helper()
	rec := surface.NewRecorder(w, h)
	g, err := NewGameWithOptions(Options{
		Surface:   rec,
		Scheduler: sched,
		Width:     w,
		Height:    h,
		Seed:      42,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	return g, rec
}

func TestDarkScenarioFrame(t *testing.T) {
	g, rec := newTestGame(t, 800, 600, nil)
	g.InitParticles()

	res := g.Step()
	if res.Particles != 53 {
		t.Fatalf("expected 53 particles, got %d", res.Particles)
	}

	circles := rec.Circles()
	if len(circles) != 53 {
		t.Fatalf("expected 53 circles, got %d", len(circles))
	}
	for i, c := range circles {
		if c.Color.Hex() != "#00f3ff" {
			t.Errorf("circle %d: color %s", i, c.Color.Hex())
		}
	}

	// Every particle links to itself at least.
	if res.Links < 53 || len(rec.Lines()) != res.Links {
		t.Errorf("links = %d, recorded lines = %d", res.Links, len(rec.Lines()))
	}
}

func TestFrameOrder(t *testing.T) {
	g, rec := newTestGame(t, 800, 600, nil)
	g.InitParticles()

	for frame := 1; frame <= 3; frame++ {
		g.Step()
		if rec.Clears() != frame {
			t.Fatalf("frame %d: expected %d clears, got %d", frame, frame, rec.Clears())
		}

		// Clear wipes the recorder, so Ops holds exactly this frame:
		// all circles, then all lines.
		seenLine := false
		for i, op := range rec.Ops() {
			if op.Kind == surface.OpLine {
				seenLine = true
			} else if seenLine {
				t.Fatalf("frame %d: circle at op %d after a line", frame, i)
			}
		}
	}
}

func TestAnimateParticlesRunsUntilSchedulerEnds(t *testing.T) {
	g, rec := newTestGame(t, 800, 600, &FrameBudget{Remaining: 5})
	g.InitParticles()
	g.AnimateParticles()

	if g.Loop().Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", g.Loop().Frames())
	}
	if rec.Clears() != 5 {
		t.Errorf("expected 5 clears, got %d", rec.Clears())
	}
	if g.Loop().Running() {
		t.Error("loop should not be running after Start returns")
	}
}

func TestAnimateParticlesIgnoresSecondStart(t *testing.T) {
	budget := &FrameBudget{Remaining: 4}
	var g *Game
	reentered := false
	sched := SchedulerFunc(func() bool {
		if !reentered {
			reentered = true
			// A second start from inside the running loop must not nest.
			g.AnimateParticles()
		}
		return budget.Next()
	})
	g, _ = newTestGame(t, 800, 600, sched)
	g.InitParticles()
	g.AnimateParticles()

	if g.Loop().Frames() != 4 {
		t.Errorf("expected exactly 4 frames from a single loop, got %d", g.Loop().Frames())
	}
}

func TestStopEndsLoop(t *testing.T) {
	g, _ := newTestGame(t, 800, 600, &FrameBudget{Remaining: 100})
	g.InitParticles()
	g.AddOverlay(OverlayFunc(func(FrameResult) {
		if g.Loop().Frames() == 2 {
			g.Stop()
		}
	}))
	g.AnimateParticles()

	// Overlay runs before the frame counter advances: stop requested during frame 3.
	if g.Loop().Frames() != 3 {
		t.Errorf("expected loop to stop after 3 frames, got %d", g.Loop().Frames())
	}
}

func TestResizeMidRunRebuilds(t *testing.T) {
	var g *Game
	frames := 0
	sched := SchedulerFunc(func() bool {
		frames++
		if frames == 3 {
			g.Resize(400, 300)
		}
		return frames <= 5
	})
	g, rec := newTestGame(t, 800, 600, sched)
	g.InitParticles()
	before := g.Simulation().Field().Particles()

	g.AnimateParticles()

	field := g.Simulation().Field()
	if field.Len() != 13 {
		t.Fatalf("expected 13 particles after resize, got %d", field.Len())
	}
	if rec.Width != 400 || rec.Height != 300 {
		t.Errorf("surface not resized: %vx%v", rec.Width, rec.Height)
	}
	if len(rec.Circles()) != 13 {
		t.Errorf("expected 13 circles in the last frame, got %d", len(rec.Circles()))
	}
	if g.Simulation().Pointer().Radius != 18.75 {
		t.Errorf("expected radius 18.75, got %v", g.Simulation().Pointer().Radius)
	}
	// Fresh particles, not a rescaled copy of the first set.
	after := field.Particles()
	if after[0].Size == before[0].Size && after[0].DX == before[0].DX {
		t.Error("first particle looks carried over from before the resize")
	}
}

func TestPointerEventsBetweenFrames(t *testing.T) {
	g, _ := newTestGame(t, 800, 600, nil)
	g.InitParticles()

	g.PointerMove(300, 200)
	if res := g.Step(); !res.PointerPresent {
		t.Error("expected pointer present after move")
	}
	g.PointerLeave()
	if res := g.Step(); res.PointerPresent {
		t.Error("expected pointer absent after leave")
	}
}

func TestToggleThemeRebuilds(t *testing.T) {
	g, rec := newTestGame(t, 800, 600, nil)
	g.InitParticles()

	notified := theme.Dark
	g.OnThemeChange(func(th theme.Theme) { notified = th })

	if got := g.ToggleTheme(); got != theme.Light {
		t.Fatalf("expected light, got %s", got)
	}
	if notified != theme.Light || g.Theme() != theme.Light {
		t.Error("theme change not propagated")
	}

	g.Step()
	for _, c := range rec.Circles() {
		if c.Color.Hex() != "#008cff" {
			t.Fatalf("expected rebuilt particles in #008cff, got %s", c.Color.Hex())
		}
	}
	for _, l := range rec.Lines() {
		if l.Color.G != 140 {
			t.Fatalf("expected light link color, got %+v", l.Color)
		}
	}
}

func TestZeroViewportIsNoOp(t *testing.T) {
	g, rec := newTestGame(t, 0, 0, &FrameBudget{Remaining: 3})
	g.InitParticles()
	g.AnimateParticles()

	if g.Simulation().Field().Len() != 0 {
		t.Errorf("expected empty field, got %d", g.Simulation().Field().Len())
	}
	if len(rec.Ops()) != 0 {
		t.Errorf("expected no draw calls, got %d", len(rec.Ops()))
	}
	if res := g.Loop().LastFrame(); res.Links != 0 || res.Particles != 0 {
		t.Errorf("unexpected frame result %+v", res)
	}
}

func TestInitialThemeFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Theme.Initial = "light"
	rec := surface.NewRecorder(800, 600)
	g, err := NewGameWithOptions(Options{Config: cfg, Surface: rec, Width: 800, Height: 600})
	if err != nil {
		t.Fatal(err)
	}
	g.InitParticles()
	if got := g.Simulation().Field().Particle(0).Color.Hex(); got != "#008cff" {
		t.Errorf("expected light particles, got %s", got)
	}
}

func TestTelemetryWindows(t *testing.T) {
	cfg := config.Default()
	cfg.Telemetry.StatsWindow = 2
	dir := filepath.Join(t.TempDir(), "out")

	g, err := NewGameWithOptions(Options{
		Config:    cfg,
		Surface:   surface.NewRecorder(800, 600),
		Scheduler: &FrameBudget{Remaining: 6},
		Width:     800,
		Height:    600,
		OutputDir: dir,
	})
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}

	var windows []telemetry.WindowStats
	g.Loop().OnWindow(func(s telemetry.WindowStats) { windows = append(windows, s) })

	g.InitParticles()
	g.AnimateParticles()
	g.Unload()

	if len(windows) != 3 {
		t.Fatalf("expected 3 windows, got %d", len(windows))
	}
	if windows[0].Rebuilds != 1 || windows[1].Rebuilds != 0 {
		t.Errorf("rebuild counts: %d, %d", windows[0].Rebuilds, windows[1].Rebuilds)
	}
	if windows[2].Particles != 53 || windows[2].Theme != "dark" || windows[2].LinksMean < 53 {
		t.Errorf("unexpected last window %+v", windows[2])
	}

	for _, name := range []string{"frames.csv", "perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestSetSchedulerBeforeStart(t *testing.T) {
	g, _ := newTestGame(t, 800, 600, &FrameBudget{Remaining: 100})
	g.InitParticles()

	var inner Scheduler
	g.SetScheduler(SchedulerFunc(func() bool {
		// Swapping while running is ignored.
		g.SetScheduler(&FrameBudget{Remaining: 100})
		return inner.Next()
	}))
	inner = &FrameBudget{Remaining: 2}
	g.AnimateParticles()

	if g.Loop().Frames() != 2 {
		t.Errorf("expected 2 frames from the bound scheduler, got %d", g.Loop().Frames())
	}
}

// Package game wires the particle field into a render loop with the two
// lifecycle entry points the host calls.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/systems"
	"github.com/pthm-cable/plexus/telemetry"
	"github.com/pthm-cable/plexus/theme"
)

// Options configures a Game.
type Options struct {
	Config    *config.Config // nil = embedded defaults
	Surface   surface.Surface
	Scheduler Scheduler
	Width     float64
	Height    float64
	Theme     *theme.Selector // nil = selector at Config.Theme.Initial
	Seed      int64
	LogStats  bool
	OutputDir string
}

// Game is the particle field as the host sees it.
type Game struct {
	cfg    *config.Config
	sim    *Simulation
	loop   *Loop
	themes *theme.Selector
	output *telemetry.OutputManager

	// Called after a theme toggle so the host can restyle itself.
	onTheme func(theme.Theme)
}

// NewGameWithOptions creates a game. The field is empty until InitParticles.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	themes := opts.Theme
	if themes == nil {
		themes = theme.NewSelector(theme.Parse(cfg.Theme.Initial))
	}
	s := opts.Surface
	if s == nil {
		s = surface.NewRecorder(opts.Width, opts.Height)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewTicker(cfg.Screen.TargetFPS, 0, WallClock)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	vp := systems.Viewport{Width: opts.Width, Height: opts.Height}
	sim := NewSimulation(cfg, s, themes, vp, rng)
	loop := NewLoop(sim, sched, cfg.Telemetry.PerfWindow, cfg.Telemetry.StatsWindow)
	loop.SetLogStats(opts.LogStats)

	g := &Game{
		cfg:    cfg,
		sim:    sim,
		loop:   loop,
		themes: themes,
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("creating output manager: %w", err)
		}
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, fmt.Errorf("writing config snapshot: %w", err)
		}
		g.output = om
		loop.SetOutput(om)
	}

	return g, nil
}

// InitParticles rebuilds the field from the current viewport and theme.
func (g *Game) InitParticles() {
	g.sim.InitParticles()
}

// AnimateParticles starts the render loop and blocks until the scheduler
// ends it. A second call while the loop runs is ignored.
func (g *Game) AnimateParticles() {
	g.loop.Start()
}

// SetScheduler replaces the frame scheduler before AnimateParticles.
func (g *Game) SetScheduler(s Scheduler) {
	g.loop.SetScheduler(s)
}

// Stop ends the render loop after the current frame.
func (g *Game) Stop() {
	g.loop.Stop()
}

// Step runs a single frame.
func (g *Game) Step() FrameResult {
	return g.loop.Step()
}

// ToggleTheme flips the theme and rebuilds the field so new particles
// take the new color. Links switch color on the next frame either way.
func (g *Game) ToggleTheme() theme.Theme {
	t := g.themes.Toggle()
	slog.Info("theme toggled", "theme", t.String())
	g.InitParticles()
	if g.onTheme != nil {
		g.onTheme(t)
	}
	return t
}

// OnThemeChange registers a callback run after ToggleTheme.
func (g *Game) OnThemeChange(fn func(theme.Theme)) {
	g.onTheme = fn
}

// Theme returns the active theme.
func (g *Game) Theme() theme.Theme {
	return g.themes.Current()
}

// Resize forwards a host resize; the field is rebuilt.
func (g *Game) Resize(width, height float64) {
	g.sim.Resize(width, height)
}

// PointerMove forwards a host pointer position.
func (g *Game) PointerMove(x, y float64) {
	g.sim.PointerMove(x, y)
}

// PointerLeave forwards the pointer leaving the window.
func (g *Game) PointerLeave() {
	g.sim.PointerLeave()
}

// AddOverlay registers an overlay drawn on top of every frame.
func (g *Game) AddOverlay(o Overlay) {
	g.loop.AddOverlay(o)
}

// Simulation returns the simulation context.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Loop returns the render loop.
func (g *Game) Loop() *Loop {
	return g.loop
}

// Config returns the active configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Unload releases output files.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

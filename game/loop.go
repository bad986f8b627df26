package game

import (
	"log/slog"

	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/telemetry"
)

const (
	phaseClear     = telemetry.PhaseClear
	phaseParticles = telemetry.PhaseParticles
	phaseLinks     = telemetry.PhaseLinks
	phaseOverlay   = telemetry.PhaseOverlay
)

// Overlay draws on top of a finished frame, before it is presented.
type Overlay interface {
	DrawOverlay(FrameResult)
}

// OverlayFunc adapts a function to Overlay.
type OverlayFunc func(FrameResult)

// DrawOverlay implements Overlay.
func (f OverlayFunc) DrawOverlay(r FrameResult) {
	f(r)
}

// Loop drives one Simulation frame per scheduler tick.
type Loop struct {
	sim   *Simulation
	sched Scheduler

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	overlays []Overlay
	onWindow func(telemetry.WindowStats)

	running bool
	stopped bool
	frames  int
	last    FrameResult
}

// NewLoop creates a loop. It does nothing until Start or Step is called.
func NewLoop(sim *Simulation, sched Scheduler, perfWindow, statsWindow int) *Loop {
	l := &Loop{
		sim:       sim,
		sched:     sched,
		perf:      telemetry.NewPerfCollector(perfWindow),
		collector: telemetry.NewCollector(statsWindow),
	}
	sim.onRebuild = l.collector.RecordRebuild
	return l
}

// AddOverlay registers an overlay drawn after the connection pass.
func (l *Loop) AddOverlay(o Overlay) {
	l.overlays = append(l.overlays, o)
}

// Start runs frames until the scheduler ends or Stop is called. Calling
// Start on a loop that is already running does nothing: there is only ever
// one loop per simulation.
func (l *Loop) Start() {
	if l.running {
		slog.Warn("render loop already running", "frame", l.frames)
		return
	}
	l.running = true
	l.stopped = false
	defer func() { l.running = false }()

	for !l.stopped && l.sched.Next() {
		l.Step()
	}
}

// SetScheduler replaces the scheduler for the next Start. Hosts whose
// scheduler needs the game itself bind it after construction.
func (l *Loop) SetScheduler(s Scheduler) {
	if l.running {
		slog.Warn("scheduler change ignored while running", "frame", l.frames)
		return
	}
	l.sched = s
}

// Stop makes Start return after the current frame.
func (l *Loop) Stop() {
	l.stopped = true
}

// Running reports whether Start is executing.
func (l *Loop) Running() bool {
	return l.running
}

// Step runs exactly one frame.
func (l *Loop) Step() FrameResult {
	presenter, _ := l.sim.Surface().(surface.Presenter)
	if presenter != nil {
		presenter.BeginFrame()
	}

	l.perf.StartFrame()
	result := l.sim.Frame(l.perf.StartPhase)

	if len(l.overlays) > 0 {
		l.perf.StartPhase(phaseOverlay)
		for _, o := range l.overlays {
			o.DrawOverlay(result)
		}
	}
	d := l.perf.EndFrame()

	if presenter != nil {
		presenter.EndFrame()
	}

	l.frames++
	l.last = result
	l.collector.RecordFrame(telemetry.FrameSample{
		Particles:      result.Particles,
		Links:          result.Links,
		OutOfBounds:    result.OutOfBounds,
		PointerPresent: result.PointerPresent,
		Duration:       d,
	})
	l.flushTelemetry(result)

	return result
}

// Frames returns the number of frames run.
func (l *Loop) Frames() int {
	return l.frames
}

// LastFrame returns the result of the most recent frame.
func (l *Loop) LastFrame() FrameResult {
	return l.last
}

// Perf returns the frame timing collector.
func (l *Loop) Perf() *telemetry.PerfCollector {
	return l.perf
}

package game

import (
	"log/slog"

	"github.com/pthm-cable/plexus/telemetry"
)

// flushTelemetry closes a stats window when it is full.
func (l *Loop) flushTelemetry(last FrameResult) {
	if !l.collector.ShouldFlush() {
		return
	}

	stats := l.collector.Flush(last.Theme.String())
	perfStats := l.perf.Stats()

	if l.onWindow != nil {
		l.onWindow(stats)
	}

	if l.logStats {
		slog.Info("window", "stats", stats, "perf", perfStats)
	}

	if l.output != nil {
		if err := l.output.WriteWindow(stats); err != nil {
			slog.Error("failed to write frames", "error", err)
		}
		if err := l.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// SetOutput enables CSV output of every stats window.
func (l *Loop) SetOutput(om *telemetry.OutputManager) {
	l.output = om
}

// SetLogStats enables logging every stats window.
func (l *Loop) SetLogStats(enabled bool) {
	l.logStats = enabled
}

// OnWindow registers a callback run with each flushed stats window.
func (l *Loop) OnWindow(fn func(telemetry.WindowStats)) {
	l.onWindow = fn
}

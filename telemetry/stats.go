package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int `csv:"-"`
	WindowEndFrame   int `csv:"window_end"`
	Frames           int `csv:"frames"`

	// Field state at window end
	Particles int    `csv:"particles"`
	Theme     string `csv:"theme"`
	Rebuilds  int    `csv:"rebuilds"`

	// Connection pass
	LinksMean float64 `csv:"links_mean"`
	LinksStd  float64 `csv:"links_std"`
	LinksMax  float64 `csv:"links_max"`

	// Frame cost in milliseconds
	FrameMSMean float64 `csv:"frame_ms_mean"`
	FrameMSP50  float64 `csv:"frame_ms_p50"`
	FrameMSP90  float64 `csv:"frame_ms_p90"`

	// Largest single-frame overshoot count
	OutOfBoundsMax int `csv:"out_of_bounds_max"`

	// Frames with the pointer inside the window
	PointerFrames int `csv:"pointer_frames"`
}

// Summary is the mean, standard deviation and maximum of a sample.
type Summary struct {
	Mean, Std, Max float64
}

// Summarize computes a Summary. The standard deviation is 0 for fewer than
// two values.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	if len(values) == 1 {
		return Summary{Mean: values[0], Max: values[0]}
	}
	mean, std := stat.MeanStdDev(values, nil)
	return Summary{Mean: mean, Std: std, Max: floats.Max(values)}
}

// Quantiles returns the empirical quantiles of values at each p in ps.
// values is not modified. Returns zeros if values is empty.
func Quantiles(values []float64, ps ...float64) []float64 {
	out := make([]float64, len(ps))
	if len(values) == 0 {
		return out
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	for i, p := range ps {
		out[i] = stat.Quantile(p, stat.Empirical, sorted, nil)
	}
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", s.WindowStartFrame),
		slog.Int("window_end", s.WindowEndFrame),
		slog.Int("particles", s.Particles),
		slog.String("theme", s.Theme),
		slog.Int("rebuilds", s.Rebuilds),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_max", s.LinksMax),
		slog.Float64("frame_ms_p50", s.FrameMSP50),
		slog.Float64("frame_ms_p90", s.FrameMSP90),
		slog.Int("out_of_bounds_max", s.OutOfBoundsMax),
		slog.Int("pointer_frames", s.PointerFrames),
	)
}

package telemetry

import "time"

// FrameSample is what the render loop reports after each frame.
type FrameSample struct {
	Particles      int
	Links          int
	OutOfBounds    int
	PointerPresent bool
	Duration       time.Duration
}

// Collector accumulates frame samples within windows and produces WindowStats.
type Collector struct {
	windowFrames int

	// Current window tracking
	windowStartFrame int
	frame            int

	links          []float64
	frameMS        []float64
	outOfBoundsMax int
	pointerFrames  int
	rebuilds       int
	particles      int
}

// NewCollector creates a new stats collector flushing every windowFrames frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{
		windowFrames: windowFrames,
		links:        make([]float64, 0, windowFrames),
		frameMS:      make([]float64, 0, windowFrames),
	}
}

// RecordFrame records one finished frame.
func (c *Collector) RecordFrame(s FrameSample) {
	c.frame++
	c.particles = s.Particles
	c.links = append(c.links, float64(s.Links))
	c.frameMS = append(c.frameMS, float64(s.Duration)/float64(time.Millisecond))
	if s.OutOfBounds > c.outOfBoundsMax {
		c.outOfBoundsMax = s.OutOfBounds
	}
	if s.PointerPresent {
		c.pointerFrames++
	}
}

// RecordRebuild records a field rebuild.
func (c *Collector) RecordRebuild(count int) {
	c.rebuilds++
	c.particles = count
}

// Frame returns the number of frames recorded so far.
func (c *Collector) Frame() int {
	return c.frame
}

// ShouldFlush returns true if the current window is full.
func (c *Collector) ShouldFlush() bool {
	return c.frame-c.windowStartFrame >= c.windowFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(themeName string) WindowStats {
	links := Summarize(c.links)
	frameMS := Summarize(c.frameMS)
	q := Quantiles(c.frameMS, 0.5, 0.9)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   c.frame,
		Frames:           c.frame - c.windowStartFrame,
		Particles:        c.particles,
		Theme:            themeName,
		Rebuilds:         c.rebuilds,
		LinksMean:        links.Mean,
		LinksStd:         links.Std,
		LinksMax:         links.Max,
		FrameMSMean:      frameMS.Mean,
		FrameMSP50:       q[0],
		FrameMSP90:       q[1],
		OutOfBoundsMax:   c.outOfBoundsMax,
		PointerFrames:    c.pointerFrames,
	}

	// Reset for next window
	c.windowStartFrame = c.frame
	c.links = c.links[:0]
	c.frameMS = c.frameMS[:0]
	c.outOfBoundsMax = 0
	c.pointerFrames = 0
	c.rebuilds = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int {
	return c.windowFrames
}

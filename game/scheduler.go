package game

import "time"

// Scheduler paces the render loop. Next blocks until the next frame is due,
// dispatching any pending host events first, and reports false when the
// loop should end.
type Scheduler interface {
	Next() bool
}

// SchedulerFunc adapts a function to Scheduler.
type SchedulerFunc func() bool

// Next implements Scheduler.
func (f SchedulerFunc) Next() bool {
	return f()
}

// FrameBudget allows a fixed number of frames, as fast as possible.
type FrameBudget struct {
	Remaining int
}

// Next implements Scheduler.
func (b *FrameBudget) Next() bool {
	if b.Remaining <= 0 {
		return false
	}
	b.Remaining--
	return true
}

// Clock is the time source of a Ticker.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type wallClock struct{}

func (wallClock) Now() time.Time        { return time.Now() }
func (wallClock) Sleep(d time.Duration) { time.Sleep(d) }

// WallClock is the real clock.
var WallClock Clock = wallClock{}

// Ticker paces frames at a fixed rate, standing in for a display refresh
// callback. A zero MaxFrames runs forever.
type Ticker struct {
	Interval  time.Duration
	MaxFrames int

	clock  Clock
	next   time.Time
	frames int
}

// NewTicker creates a ticker at fps frames per second. fps <= 0 means unpaced.
func NewTicker(fps int, maxFrames int, clock Clock) *Ticker {
	var interval time.Duration
	if fps > 0 {
		interval = time.Second / time.Duration(fps)
	}
	if clock == nil {
		clock = WallClock
	}
	return &Ticker{Interval: interval, MaxFrames: maxFrames, clock: clock}
}

// Next implements Scheduler. A frame that overran its slot starts the next
// one immediately rather than trying to catch up.
func (t *Ticker) Next() bool {
	if t.MaxFrames > 0 && t.frames >= t.MaxFrames {
		return false
	}
	t.frames++

	if t.Interval <= 0 {
		return true
	}
	now := t.clock.Now()
	if t.next.IsZero() {
		t.next = now
	}
	if wait := t.next.Sub(now); wait > 0 {
		t.clock.Sleep(wait)
		now = now.Add(wait)
	}
	t.next = now.Add(t.Interval)
	return true
}

// Frames returns how many frames the ticker has released.
func (t *Ticker) Frames() int {
	return t.frames
}

// Limit caps another scheduler at maxFrames. maxFrames <= 0 returns s.
func Limit(s Scheduler, maxFrames int) Scheduler {
	if maxFrames <= 0 {
		return s
	}
	n := 0
	return SchedulerFunc(func() bool {
		if n >= maxFrames {
			return false
		}
		n++
		return s.Next()
	})
}

package surface

import "github.com/pthm-cable/plexus/theme"

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpCircle OpKind = iota
	OpLine
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	X1, Y1 float64 // circle center or line start
	X2, Y2 float64 // line end
	Radius float64
	Width  float64
	Color  theme.Color
}

// Recorder is an in-memory Surface. Like a canvas, Clear wipes everything
// drawn so far, so Ops holds the calls of the current frame only.
type Recorder struct {
	Width, Height float64

	ops     []Op
	clears  int
	resizes int
}

// NewRecorder creates a recorder with the given dimensions.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Clear implements Surface.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
	r.clears++
}

// FillCircle implements Surface.
func (r *Recorder) FillCircle(x, y, radius float64, c theme.Color) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X1: x, Y1: y, Radius: radius, Color: c})
}

// StrokeLine implements Surface.
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c theme.Color) {
	r.ops = append(r.ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// Resize implements Surface.
func (r *Recorder) Resize(width, height float64) {
	r.Width = width
	r.Height = height
	r.resizes++
}

// Ops returns the calls recorded since the last Clear.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Circles returns the recorded circle calls in order.
func (r *Recorder) Circles() []Op {
	return r.filter(OpCircle)
}

// Lines returns the recorded line calls in order.
func (r *Recorder) Lines() []Op {
	return r.filter(OpLine)
}

// Clears returns how many times Clear was called.
func (r *Recorder) Clears() int {
	return r.clears
}

// Resizes returns how many times Resize was called.
func (r *Recorder) Resizes() int {
	return r.resizes
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

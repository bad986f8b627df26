package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/theme"
)

// ThemeToggle is an on-screen button switching between dark and light.
// A press is only recorded while drawing; the window scheduler applies it
// before the next frame so the field never rebuilds mid-frame.
type ThemeToggle struct {
	width, height float32
	margin        float32
	pressed       bool
}

// NewThemeToggle creates the button anchored to the top-right corner.
func NewThemeToggle() *ThemeToggle {
	return &ThemeToggle{width: 90, height: 28, margin: 12}
}

// DrawOverlay implements game.Overlay.
func (b *ThemeToggle) DrawOverlay(res game.FrameResult) {
	x := float32(rl.GetScreenWidth()) - b.width - b.margin
	bounds := rl.Rectangle{X: x, Y: b.margin, Width: b.width, Height: b.height}
	if gui.Button(bounds, label(res.Theme.Toggle())) {
		b.pressed = true
	}
}

// TakePressed reports and clears a pending press.
func (b *ThemeToggle) TakePressed() bool {
	p := b.pressed
	b.pressed = false
	return p
}

func label(t theme.Theme) string {
	if t == theme.Light {
		return "Light"
	}
	return "Dark"
}

// Package ui draws the desktop host's overlays and translates raylib window
// input into field events.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/theme"
)

// Style holds overlay colors and metrics for one theme.
type Style struct {
	PanelBg     rl.Color
	PanelBorder rl.Color
	Text        rl.Color
	Accent      rl.Color

	FontSize   int32
	LineHeight int32
	Padding    int32
}

// StyleFor returns the overlay style matching a page theme.
func StyleFor(t theme.Theme) Style {
	accent := theme.ParticleColor(t)
	s := Style{
		Accent:     rl.Color{R: accent.R, G: accent.G, B: accent.B, A: 255},
		FontSize:   16,
		LineHeight: 20,
		Padding:    8,
	}
	if t == theme.Light {
		s.PanelBg = rl.Color{R: 255, G: 255, B: 255, A: 200}
		s.PanelBorder = rl.Color{R: 180, G: 190, B: 205, A: 255}
		s.Text = rl.Color{R: 40, G: 44, B: 52, A: 255}
		return s
	}
	s.PanelBg = rl.Color{R: 10, G: 12, B: 20, A: 200}
	s.PanelBorder = rl.Color{R: 40, G: 60, B: 80, A: 255}
	s.Text = rl.LightGray
	return s
}

// drawPanel draws a panel background with border.
func drawPanel(s Style, x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, s.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, s.PanelBorder)
}

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/game"
)

// HUD renders frame statistics in the top-left corner.
type HUD struct {
	visible bool
}

// NewHUD creates a hidden HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// Toggle switches HUD visibility.
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// DrawOverlay implements game.Overlay.
func (h *HUD) DrawOverlay(res game.FrameResult) {
	if !h.visible {
		return
	}
	s := StyleFor(res.Theme)
	x, y := int32(10), int32(10)

	lines := []string{
		fmt.Sprintf("FPS: %d", rl.GetFPS()),
		fmt.Sprintf("Particles: %d | Links: %d", res.Particles, res.Links),
		fmt.Sprintf("Theme: %s | Pointer: %v", res.Theme, res.PointerPresent),
		"[T] theme  [H] hud  [F11] fullscreen",
	}

	drawPanel(s, x, y, 320, int32(len(lines))*s.LineHeight+s.Padding*2)
	y += s.Padding
	for i, line := range lines {
		c := s.Text
		if i == 0 {
			c = s.Accent
		}
		rl.DrawText(line, x+s.Padding, y, s.FontSize, c)
		y += s.LineHeight
	}
}

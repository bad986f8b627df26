package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/theme"
)

// Host is the part of the game the window forwards events to.
type Host interface {
	Resize(width, height float64)
	PointerMove(x, y float64)
	PointerLeave()
	ToggleTheme() theme.Theme
}

// WindowScheduler paces frames by the raylib window and dispatches its
// input between frames. Vsync pacing happens in EndDrawing.
type WindowScheduler struct {
	host   Host
	hud    *HUD
	toggle *ThemeToggle

	width, height int
	pointerIn     bool
	lastX, lastY  float32
}

// NewWindowScheduler creates a scheduler for the open window.
func NewWindowScheduler(host Host, hud *HUD, toggle *ThemeToggle) *WindowScheduler {
	return &WindowScheduler{
		host:   host,
		hud:    hud,
		toggle: toggle,
		width:  rl.GetScreenWidth(),
		height: rl.GetScreenHeight(),
	}
}

// Next implements game.Scheduler.
func (s *WindowScheduler) Next() bool {
	if rl.WindowShouldClose() {
		return false
	}
	s.handleResize()
	s.handlePointer()
	s.handleKeys()
	return true
}

// handleResize checks for window resize and propagates new dimensions.
func (s *WindowScheduler) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	s.host.Resize(float64(w), float64(h))
}

// handlePointer reports moves while the cursor is over the window and a
// single leave when it exits.
func (s *WindowScheduler) handlePointer() {
	if !rl.IsCursorOnScreen() {
		if s.pointerIn {
			s.pointerIn = false
			s.host.PointerLeave()
		}
		return
	}

	pos := rl.GetMousePosition()
	if s.pointerIn && pos.X == s.lastX && pos.Y == s.lastY {
		return
	}
	s.pointerIn = true
	s.lastX, s.lastY = pos.X, pos.Y
	s.host.PointerMove(float64(pos.X), float64(pos.Y))
}

// handleKeys processes keyboard shortcuts and pending button presses.
func (s *WindowScheduler) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if s.hud != nil && rl.IsKeyPressed(rl.KeyH) {
		s.hud.Toggle()
	}

	toggleTheme := rl.IsKeyPressed(rl.KeyT)
	if s.toggle != nil && s.toggle.TakePressed() {
		toggleTheme = true
	}
	if toggleTheme {
		s.host.ToggleTheme()
	}
}

// Package renderer draws the particle field with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/theme"
)

// RaylibSurface draws on the raylib window, or on a render texture when
// created with NewTextureSurface.
type RaylibSurface struct {
	background rl.Color
	target     *rl.RenderTexture2D
	width      int32
	height     int32
}

// NewRaylibSurface creates a surface for the current window.
// The window must already be open.
func NewRaylibSurface(background theme.Color) *RaylibSurface {
	return &RaylibSurface{
		background: ToRaylib(background),
		width:      int32(rl.GetScreenWidth()),
		height:     int32(rl.GetScreenHeight()),
	}
}

// NewTextureSurface creates an offscreen surface of the given size.
func NewTextureSurface(width, height int32, background theme.Color) *RaylibSurface {
	target := rl.LoadRenderTexture(width, height)
	return &RaylibSurface{
		background: ToRaylib(background),
		target:     &target,
		width:      width,
		height:     height,
	}
}

// SetBackground changes the color Clear fills with.
func (s *RaylibSurface) SetBackground(c theme.Color) {
	s.background = ToRaylib(c)
}

// BeginFrame implements Presenter.
func (s *RaylibSurface) BeginFrame() {
	if s.target != nil {
		rl.BeginTextureMode(*s.target)
		return
	}
	rl.BeginDrawing()
}

// EndFrame implements Presenter.
func (s *RaylibSurface) EndFrame() {
	if s.target != nil {
		rl.EndTextureMode()
		return
	}
	rl.EndDrawing()
}

// Clear implements Surface.
func (s *RaylibSurface) Clear() {
	rl.ClearBackground(s.background)
}

// FillCircle implements Surface.
func (s *RaylibSurface) FillCircle(x, y, radius float64, c theme.Color) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(radius), ToRaylib(c))
}

// StrokeLine implements Surface.
func (s *RaylibSurface) StrokeLine(x1, y1, x2, y2, width float64, c theme.Color) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		rl.Vector2{X: float32(x2), Y: float32(y2)},
		float32(width),
		ToRaylib(c),
	)
}

// Resize implements Surface. A window surface follows the window when the
// user resized it; otherwise the window is resized to match.
func (s *RaylibSurface) Resize(width, height float64) {
	w, h := int32(width), int32(height)
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h

	if s.target != nil {
		rl.UnloadRenderTexture(*s.target)
		target := rl.LoadRenderTexture(w, h)
		s.target = &target
		return
	}
	if int32(rl.GetScreenWidth()) != w || int32(rl.GetScreenHeight()) != h {
		rl.SetWindowSize(int(w), int(h))
	}
}

// Texture returns the offscreen target, or nil for a window surface.
func (s *RaylibSurface) Texture() *rl.RenderTexture2D {
	return s.target
}

// Unload releases the offscreen target.
func (s *RaylibSurface) Unload() {
	if s.target != nil {
		rl.UnloadRenderTexture(*s.target)
		s.target = nil
	}
}

// ToRaylib converts a theme color, clamping alpha into [0, 1] the way a
// canvas fill style does.
func ToRaylib(c theme.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.ClampedAlpha() * 255))}
}

// Package theme maps the active page theme to particle and link colors.
package theme

import (
	"fmt"
	"strconv"
)

// Theme is the page color scheme.
type Theme uint8

const (
	Dark Theme = iota
	Light
)

// String returns the attribute value the page stores for the theme.
func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse converts a stored theme name. Anything unrecognized (including an
// empty value for "no saved preference") is dark.
func Parse(s string) Theme {
	if s == "light" {
		return Light
	}
	return Dark
}

// Source reports the currently active theme.
type Source interface {
	Current() Theme
}

// Selector is a mutable theme holder owned by the host.
type Selector struct {
	theme Theme
}

// NewSelector creates a selector starting at t.
func NewSelector(t Theme) *Selector {
	return &Selector{theme: t}
}

// Current implements Source.
func (s *Selector) Current() Theme {
	return s.theme
}

// Set replaces the active theme.
func (s *Selector) Set(t Theme) {
	s.theme = t
}

// Toggle flips the active theme and returns the new value.
func (s *Selector) Toggle() Theme {
	s.theme = s.theme.Toggle()
	return s.theme
}

// Color is an RGB color with a floating point alpha.
// A is not clamped: out-of-range values are passed through to the surface.
type Color struct {
	R, G, B uint8
	A       float64
}

// Hex returns the #rrggbb form, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the rgba(r, g, b, a) form with the shortest alpha literal.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'g', -1, 64))
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// ClampedAlpha returns A limited to [0, 1].
func (c Color) ClampedAlpha() float64 {
	switch {
	case c.A < 0:
		return 0
	case c.A > 1:
		return 1
	}
	return c.A
}

// Palette holds the colors associated with a theme.
type Palette struct {
	Particle   Color
	Link       Color // alpha is set per line
	Background Color
}

var palettes = [...]Palette{
	Dark: {
		Particle:   Color{R: 0x00, G: 0xf3, B: 0xff, A: 1},
		Link:       Color{R: 0, G: 243, B: 255, A: 1},
		Background: Color{R: 0x0a, G: 0x0a, B: 0x12, A: 1},
	},
	Light: {
		Particle:   Color{R: 0x00, G: 0x8c, B: 0xff, A: 1},
		Link:       Color{R: 0, G: 140, B: 255, A: 1},
		Background: Color{R: 0xf4, G: 0xf6, B: 0xfa, A: 1},
	},
}

// PaletteFor returns the palette of t.
func PaletteFor(t Theme) Palette {
	if int(t) >= len(palettes) {
		return palettes[Dark]
	}
	return palettes[t]
}

// ParticleColor returns the fill color new particles get under t.
func ParticleColor(t Theme) Color {
	return PaletteFor(t).Particle
}

// LinkColor returns the stroke color of a connection line under t.
func LinkColor(t Theme, alpha float64) Color {
	return PaletteFor(t).Link.WithAlpha(alpha)
}

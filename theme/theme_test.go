package theme

import "testing"

func TestParticleColor(t *testing.T) {
	tests := []struct {
		theme Theme
		want  string
	}{
		{Dark, "#00f3ff"},
		{Light, "#008cff"},
	}
	for _, tc := range tests {
		if got := ParticleColor(tc.theme).Hex(); got != tc.want {
			t.Errorf("ParticleColor(%s) = %s, want %s", tc.theme, got, tc.want)
		}
	}
}

func TestLinkColor(t *testing.T) {
	tests := []struct {
		theme Theme
		alpha float64
		want  string
	}{
		{Dark, 0.995, "rgba(0, 243, 255, 0.995)"},
		{Light, 0.5, "rgba(0, 140, 255, 0.5)"},
		{Dark, 1, "rgba(0, 243, 255, 1)"},
		{Light, -0.25, "rgba(0, 140, 255, -0.25)"},
	}
	for _, tc := range tests {
		if got := LinkColor(tc.theme, tc.alpha).CSS(); got != tc.want {
			t.Errorf("LinkColor(%s, %v) = %s, want %s", tc.theme, tc.alpha, got, tc.want)
		}
	}
}

func TestLinkColorNotClamped(t *testing.T) {
	c := LinkColor(Dark, -1.5)
	if c.A != -1.5 {
		t.Errorf("expected alpha passed through as -1.5, got %v", c.A)
	}
	if c.ClampedAlpha() != 0 {
		t.Errorf("expected clamped alpha 0, got %v", c.ClampedAlpha())
	}
	if LinkColor(Dark, 3).ClampedAlpha() != 1 {
		t.Error("expected clamped alpha 1 for alpha > 1")
	}
}

func TestParseAndToggle(t *testing.T) {
	if Parse("light") != Light {
		t.Error("expected light")
	}
	if Parse("") != Dark || Parse("solarized") != Dark {
		t.Error("unknown or empty theme should be dark")
	}
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Error("toggle should flip between dark and light")
	}

	s := NewSelector(Dark)
	if s.Toggle() != Light || s.Current() != Light {
		t.Errorf("selector toggle failed, current = %s", s.Current())
	}
	s.Set(Dark)
	if s.Current() != Dark {
		t.Errorf("expected dark after Set, got %s", s.Current())
	}
}

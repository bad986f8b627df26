package renderer

import (
	"testing"

	"github.com/pthm-cable/plexus/theme"
)

func TestToRaylibClampsAlpha(t *testing.T) {
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{1, 255},
		{0.5, 128},
		{0, 0},
		{-0.4, 0},
		{1.7, 255},
	}
	for _, tc := range tests {
		got := ToRaylib(theme.LinkColor(theme.Dark, tc.alpha))
		if got.A != tc.want {
			t.Errorf("alpha %v: got %d, want %d", tc.alpha, got.A, tc.want)
		}
		if got.R != 0 || got.G != 243 || got.B != 255 {
			t.Errorf("alpha %v: rgb changed: %+v", tc.alpha, got)
		}
	}
}

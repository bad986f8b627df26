// Frame dump tool - renders the particle field offscreen and writes the
// last frame to a PNG file for inspection.
//
// Usage: go run ./cmd/framedump -frames 120 -theme light -out field.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/renderer"
	"github.com/pthm-cable/plexus/theme"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "frame.png", "Output PNG path")
	width := flag.Int("width", 800, "Render width")
	height := flag.Int("height", 600, "Render height")
	frames := flag.Int("frames", 60, "Frames to simulate before capture")
	seed := flag.Int64("seed", 1, "RNG seed")
	themeName := flag.String("theme", "dark", "Theme: dark or light")
	pointerX := flag.Float64("pointer-x", -1, "Pointer x (negative = no pointer)")
	pointerY := flag.Float64("pointer-y", -1, "Pointer y")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Frame Dump")
	defer rl.CloseWindow()

	t := theme.Parse(*themeName)
	surf := renderer.NewTextureSurface(int32(*width), int32(*height), theme.PaletteFor(t).Background)
	defer surf.Unload()

	g, err := game.NewGameWithOptions(game.Options{
		Config:    cfg,
		Surface:   surf,
		Scheduler: &game.FrameBudget{Remaining: *frames},
		Width:     float64(*width),
		Height:    float64(*height),
		Theme:     theme.NewSelector(t),
		Seed:      *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	defer g.Unload()

	if *pointerX >= 0 && *pointerY >= 0 {
		g.PointerMove(*pointerX, *pointerY)
	}
	g.InitParticles()
	g.AnimateParticles()
	last := g.Loop().LastFrame()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(surf.Texture().Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Frame %d rendered to: %s (%dx%d, %d particles, %d links)\n",
			g.Loop().Frames(), *outPath, *width, *height, last.Particles, last.Links)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}

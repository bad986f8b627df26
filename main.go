package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plexus/config"
	"github.com/pthm-cable/plexus/game"
	"github.com/pthm-cable/plexus/renderer"
	"github.com/pthm-cable/plexus/surface"
	"github.com/pthm-cable/plexus/theme"
	"github.com/pthm-cable/plexus/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	themeName := flag.String("theme", "", "Initial theme: dark or light (empty = use config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	initial := cfg.Theme.Initial
	if *themeName != "" {
		initial = *themeName
	}
	themes := theme.NewSelector(theme.Parse(initial))

	opts := game.Options{
		Config:    cfg,
		Width:     float64(cfg.Screen.Width),
		Height:    float64(cfg.Screen.Height),
		Theme:     themes,
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	if *headless {
		runHeadless(opts, *maxFrames)
		return
	}
	runWindow(opts, *maxFrames)
}

// runHeadless drives the loop on a recording surface, paced like a display.
func runHeadless(opts game.Options, maxFrames int) {
	opts.Surface = surface.NewRecorder(opts.Width, opts.Height)
	opts.Scheduler = game.NewTicker(opts.Config.Screen.TargetFPS, maxFrames, game.WallClock)

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless field",
		"seed", opts.Seed,
		"width", opts.Width,
		"height", opts.Height,
		"theme", g.Theme().String(),
		"max_frames", maxFrames,
	)

	g.InitParticles()
	g.AnimateParticles()
	slog.Info("field stopped", "frames", g.Loop().Frames())
}

// runWindow opens a resizable raylib window and hands it the loop.
func runWindow(opts game.Options, maxFrames int) {
	cfg := opts.Config
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	surf := renderer.NewRaylibSurface(theme.PaletteFor(opts.Theme.Current()).Background)
	opts.Surface = surf

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	g.OnThemeChange(func(t theme.Theme) {
		surf.SetBackground(theme.PaletteFor(t).Background)
	})

	hud := ui.NewHUD()
	toggle := ui.NewThemeToggle()
	g.AddOverlay(hud)
	g.AddOverlay(toggle)
	g.SetScheduler(game.Limit(ui.NewWindowScheduler(g, hud, toggle), maxFrames))

	slog.Info("starting window",
		"seed", opts.Seed,
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"theme", g.Theme().String(),
	)

	g.InitParticles()
	g.AnimateParticles()
}

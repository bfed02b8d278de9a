package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/harshwardhansinghshaktawat/website-effects/config"
	"github.com/harshwardhansinghshaktawat/website-effects/overlay"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := overlay.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Headless:  *headless,
	}

	if *headless {
		// Headless mode - pure CPU simulation, no raylib needed
		o := overlay.New(opts)
		defer o.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_ticks", *maxTicks,
		)

		for {
			o.UpdateHeadless()

			if *maxTicks > 0 && int(o.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", o.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Website Effects")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	o := overlay.New(opts)
	defer o.Unload()

	// A demo hover zone in the middle of the window to show the ring growing.
	zone := overlay.HoverZone{
		X: cfg.Derived.ScreenW/2 - 120,
		Y: cfg.Derived.ScreenH/2 - 60,
		W: 240,
		H: 120,
	}
	o.RegisterHoverZone(zone)

	for !rl.WindowShouldClose() {
		o.Update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 8, G: 12, B: 24, A: 255})
		rl.DrawRectangleLines(int32(zone.X), int32(zone.Y), int32(zone.W), int32(zone.H),
			rl.Color{R: 80, G: 100, B: 140, A: 120})
		o.Draw()
		rl.EndDrawing()

		if *maxTicks > 0 && int(o.Tick()) >= *maxTicks {
			break
		}
	}
}

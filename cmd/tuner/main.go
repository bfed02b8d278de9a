// Overlay tuning tool - interactive preview with sliders.
//
// Usage: go run ./cmd/tuner
package main

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/harshwardhansinghshaktawat/website-effects/config"
	"github.com/harshwardhansinghshaktawat/website-effects/follower"
	"github.com/harshwardhansinghshaktawat/website-effects/particle"
	"github.com/harshwardhansinghshaktawat/website-effects/policy"
	"github.com/harshwardhansinghshaktawat/website-effects/renderer"
)

const (
	windowWidth   = 1100
	windowHeight  = 720
	previewWidth  = 760
	previewHeight = 700
	panelWidth    = windowWidth - previewWidth - 30
)

func main() {
	config.MustInit("")
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Overlay Tuner")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	seed := time.Now().UnixNano()

	field := particle.NewField(
		previewWidth, previewHeight,
		particle.AmbientTuning{
			MinRadius: cfg.Snow.MinRadius, MaxRadius: cfg.Snow.MaxRadius,
			MinFall: cfg.Snow.MinFall, MaxFall: cfg.Snow.MaxFall,
			MinDrift: cfg.Snow.MinDrift, MaxDrift: cfg.Snow.MaxDrift,
			MinDecay: cfg.Snow.MinDecay, MaxDecay: cfg.Snow.MaxDecay,
			MinDepth: cfg.Snow.MinDepth, MaxDepth: cfg.Snow.MaxDepth,
			SwingEnabled:      cfg.Snow.SwingEnabled,
			MinSwingAmplitude: cfg.Snow.MinSwingAmplitude,
			MaxSwingAmplitude: cfg.Snow.MaxSwingAmplitude,
			MinSwingRate:      cfg.Snow.MinSwingRate,
			MaxSwingRate:      cfg.Snow.MaxSwingRate,
			Margin:            cfg.Snow.Margin,
		},
		particle.BurstTuning{
			Decay:   cfg.Burst.Decay,
			Gravity: cfg.Burst.Gravity,
			Radius:  cfg.Burst.Radius,
		},
		particle.Wind{Strength: cfg.Wind.Strength, Rate: cfg.Wind.Rate},
		particle.ParsePalette(cfg.Snow.Palette),
		particle.ParsePalette(cfg.Burst.Palette),
		seed,
	)

	points := make([]follower.Point, len(cfg.Follower.Points))
	styles := make([]renderer.PointStyle, len(cfg.Follower.Points))
	for i, pc := range cfg.Follower.Points {
		points[i] = follower.Point{Name: pc.Name, Smoothing: pc.Smoothing}
		styles[i] = renderer.PointStyle{Radius: pc.Radius, Color: particle.ParseHex(pc.Color)}
	}
	rig := follower.NewRig(points, cfg.Follower.ScaleSmoothing)
	rig.Initialize(previewWidth/2, previewHeight/2)

	particleRenderer := renderer.NewParticleRenderer(cfg.Sparkle.Chance, cfg.Sparkle.Length, seed+1)
	followerRenderer := renderer.NewFollowerRenderer(styles)

	// Tunable state
	divisor := float32(cfg.Population.AreaDivisor)
	windStrength := float32(cfg.Wind.Strength)
	ringSmoothing := float32(0.08)
	burstCount := float32(cfg.Burst.Count)

	pol := policy.Policy{
		AreaDivisor:        float64(divisor),
		CompactAreaDivisor: cfg.Population.CompactAreaDivisor,
		MaxCount:           cfg.Population.MaxCount,
		CompactMaxCount:    cfg.Population.CompactMaxCount,
	}
	policy.Reconcile(field, pol.TargetCount(previewWidth, previewHeight, false))

	for !rl.WindowShouldClose() {
		// Pointer drives the rig inside the preview area.
		mouse := rl.GetMousePosition()
		if mouse.X < previewWidth {
			rig.SetTarget(float64(mouse.X), float64(mouse.Y))
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				field.SpawnBurst(float64(mouse.X), float64(mouse.Y),
					int(burstCount), cfg.Burst.MinSpeed, cfg.Burst.MaxSpeed)
			}
		}

		field.Tick(1)
		rig.Tick(1)

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 8, G: 12, B: 24, A: 255})

		particleRenderer.Draw(field)
		followerRenderer.Draw(rig)
		rl.DrawRectangleLines(0, 0, previewWidth, previewHeight, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("particles: %d", field.Count()), 10, previewHeight-24, 16, rl.Gray)

		// Control panel
		panelX := float32(previewWidth + 20)
		panelY := float32(10)

		rl.DrawText("Overlay Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		// Density divisor slider
		rl.DrawText("Density divisor (area per particle)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newDivisor := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"4k", "40k",
			divisor, 4000, 40000,
		)
		rl.DrawText(fmt.Sprintf("%.0f", divisor), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.Gray)
		if newDivisor != divisor {
			divisor = newDivisor
			pol.AreaDivisor = float64(divisor)
			policy.Reconcile(field, pol.TargetCount(previewWidth, previewHeight, false))
		}
		panelY += 35

		// Wind strength slider
		rl.DrawText("Wind strength", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newWind := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "1.5",
			windStrength, 0, 1.5,
		)
		rl.DrawText(fmt.Sprintf("%.2f", windStrength), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.Gray)
		if newWind != windStrength {
			windStrength = newWind
			field.SetWind(particle.Wind{Strength: float64(windStrength), Rate: cfg.Wind.Rate})
		}
		panelY += 35

		// Ring smoothing slider
		rl.DrawText("Ring smoothing (trail lag)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSmoothing := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.02", "0.40",
			ringSmoothing, 0.02, 0.40,
		)
		rl.DrawText(fmt.Sprintf("%.2f", ringSmoothing), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.Gray)
		if newSmoothing != ringSmoothing {
			ringSmoothing = newSmoothing
			rig.SetSmoothing("ring", float64(ringSmoothing))
		}
		panelY += 35

		// Burst count slider
		rl.DrawText("Burst count (click in preview)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		burstCount = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"4", "32",
			burstCount, 4, 32,
		)
		rl.DrawText(fmt.Sprintf("%d", int(burstCount)), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.Gray)

		rl.EndDrawing()
	}
}

// Package overlay ties the particle field, follower rig, and population
// policy into a single frame-driven effect layer over the host window.
package overlay

import (
	"log/slog"
	"time"

	"github.com/harshwardhansinghshaktawat/website-effects/config"
	"github.com/harshwardhansinghshaktawat/website-effects/follower"
	"github.com/harshwardhansinghshaktawat/website-effects/particle"
	"github.com/harshwardhansinghshaktawat/website-effects/policy"
	"github.com/harshwardhansinghshaktawat/website-effects/renderer"
	"github.com/harshwardhansinghshaktawat/website-effects/telemetry"
)

// Options configures overlay construction.
type Options struct {
	Seed      int64
	LogStats  bool
	OutputDir string
	Headless  bool
}

// HoverZone is a screen rectangle that grows the follower ring while the
// pointer is inside it, the hover-grow feedback of the original trail.
type HoverZone struct {
	X, Y, W, H float64
}

// Overlay owns the effect engines and drives them once per frame.
type Overlay struct {
	field *particle.Field
	rig   *follower.Rig
	pol   policy.Policy

	particleRenderer *renderer.ParticleRenderer
	followerRenderer *renderer.FollowerRenderer

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	width, height float64
	compactWidth  int
	burstCount    int
	burstMinSpeed float64
	burstMaxSpeed float64
	hoverScale    float64

	hoverZones []HoverZone

	// Resize debounce: reconcile only after the window has been quiet
	// for resizeDebounce ticks.
	resizeDebounce  int
	resizeCountdown int

	// Throttle for pointer-move ambient spawns.
	spawnGapTicks int
	sinceSpawn    int

	pointerSeen bool
	disposed    bool
}

// New creates an overlay from the loaded config.
func New(opts Options) *Overlay {
	cfg := config.Cfg()

	ambient := particle.AmbientTuning{
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
	}
	burst := particle.BurstTuning{
		Decay:   cfg.Burst.Decay,
		Gravity: cfg.Burst.Gravity,
		Radius:  cfg.Burst.Radius,
	}
	wind := particle.Wind{
		Strength: cfg.Wind.Strength,
		Rate:     cfg.Wind.Rate,
	}

	o := &Overlay{
		field: particle.NewField(
			cfg.Derived.ScreenW, cfg.Derived.ScreenH,
			ambient, burst, wind,
			particle.ParsePalette(cfg.Snow.Palette),
			particle.ParsePalette(cfg.Burst.Palette),
			opts.Seed,
		),
		pol: policy.Policy{
			AreaDivisor:        cfg.Population.AreaDivisor,
			CompactAreaDivisor: cfg.Population.CompactAreaDivisor,
			MaxCount:           cfg.Population.MaxCount,
			CompactMaxCount:    cfg.Population.CompactMaxCount,
		},
		collector:      telemetry.NewCollector(cfg.Telemetry.WindowTicks, opts.LogStats),
		width:          cfg.Derived.ScreenW,
		height:         cfg.Derived.ScreenH,
		compactWidth:   cfg.Population.CompactWidth,
		burstCount:     cfg.Burst.Count,
		burstMinSpeed:  cfg.Burst.MinSpeed,
		burstMaxSpeed:  cfg.Burst.MaxSpeed,
		hoverScale:     cfg.Follower.HoverScale,
		resizeDebounce: cfg.Population.ResizeDebounce,
		spawnGapTicks:  3,
	}

	points := make([]follower.Point, len(cfg.Follower.Points))
	styles := make([]renderer.PointStyle, len(cfg.Follower.Points))
	for i, pc := range cfg.Follower.Points {
		points[i] = follower.Point{Name: pc.Name, Smoothing: pc.Smoothing}
		styles[i] = renderer.PointStyle{Radius: pc.Radius, Color: particle.ParseHex(pc.Color)}
	}
	o.rig = follower.NewRig(points, cfg.Follower.ScaleSmoothing)

	if !opts.Headless {
		o.particleRenderer = renderer.NewParticleRenderer(cfg.Sparkle.Chance, cfg.Sparkle.Length, opts.Seed+1)
		o.followerRenderer = renderer.NewFollowerRenderer(styles)
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("telemetry output disabled", "error", err)
		} else {
			o.output = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Warn("writing config snapshot", "error", err)
			}
		}
	}

	// Seed the ambient field to the policy target for the initial viewport.
	policy.Reconcile(o.field, o.targetCount())

	slog.Info("overlay activated",
		"width", o.width,
		"height", o.height,
		"initial_particles", o.field.Count(),
	)

	return o
}

// RegisterHoverZone adds a hover-grow rectangle.
func (o *Overlay) RegisterHoverZone(z HoverZone) {
	o.hoverZones = append(o.hoverZones, z)
}

// Update samples input and advances both engines by one tick.
func (o *Overlay) Update() {
	if o.disposed {
		return
	}
	o.handleInput()
	o.step(1)
}

// UpdateHeadless advances the engines without touching raylib, for soak runs.
func (o *Overlay) UpdateHeadless() {
	if o.disposed {
		return
	}
	o.step(1)
}

// step runs one simulation tick and records telemetry.
func (o *Overlay) step(dt float64) {
	start := time.Now()

	o.tickResize()
	o.field.Tick(dt)
	o.rig.Tick(dt)
	o.sinceSpawn++

	ambient, burst := o.field.Counts()
	if stats := o.collector.RecordTick(ambient, burst, o.targetCount(), time.Since(start)); stats != nil {
		if err := o.output.WriteWindow(*stats); err != nil {
			slog.Warn("writing telemetry window", "error", err)
		}
	}
}

// Draw renders the overlay. Particles sit under the follower trail so the
// cursor always reads on top.
func (o *Overlay) Draw() {
	if o.disposed || o.particleRenderer == nil {
		return
	}
	o.particleRenderer.Draw(o.field)
	if o.pointerSeen {
		o.followerRenderer.Draw(o.rig)
	}
}

// Tick returns the number of ticks run so far.
func (o *Overlay) Tick() int64 {
	return o.collector.Tick()
}

// Field exposes the particle field snapshot source for custom rendering.
func (o *Overlay) Field() *particle.Field {
	return o.field
}

// Rig exposes the follower rig snapshot source for custom rendering.
func (o *Overlay) Rig() *follower.Rig {
	return o.rig
}

// targetCount returns the policy target for the current viewport.
func (o *Overlay) targetCount() int {
	return o.pol.TargetCount(o.width, o.height, int(o.width) < o.compactWidth)
}

// Unload drops all internal state. Idempotent; a disposed overlay ignores
// further Update/Draw calls.
func (o *Overlay) Unload() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.field.Clear()
	o.hoverZones = nil
	if err := o.output.Close(); err != nil {
		slog.Warn("closing telemetry output", "error", err)
	}
	slog.Info("overlay disposed", "ticks", o.collector.Tick())
}

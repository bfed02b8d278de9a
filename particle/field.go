package particle

import (
	"math"
	"math/rand"
)

// AmbientTuning holds the spawn ranges for ambient snow particles. Each
// range is sampled uniformly at spawn and fixed for the particle's life.
type AmbientTuning struct {
	MinRadius, MaxRadius float64
	MinFall, MaxFall     float64 // vertical speed per tick
	MinDrift, MaxDrift   float64 // horizontal speed per tick, signed
	MinDecay, MaxDecay   float64
	MinDepth, MaxDepth   float64

	SwingEnabled                         bool
	MinSwingAmplitude, MaxSwingAmplitude float64
	MinSwingRate, MaxSwingRate           float64

	Margin float64 // off-screen band for wrap and respawn
}

// BurstTuning holds the shared parameters of click-burst sparks.
type BurstTuning struct {
	Decay   float64
	Gravity float64 // downward acceleration per tick
	Radius  float64
}

// Wind is the slow global horizontal drift, a function of elapsed time
// scaled per particle by depth.
type Wind struct {
	Strength float64
	Rate     float64 // radians per tick
}

// Field owns the particle population and advances it once per frame.
// All operations are in-memory with no failure modes.
type Field struct {
	particles []Particle

	width, height float64
	elapsed       float64

	ambient AmbientTuning
	burst   BurstTuning
	wind    Wind

	ambientPalette []RGB
	burstPalette   []RGB

	rng *rand.Rand
}

// NewField creates an empty field for the given viewport. Dimensions are
// clamped to at least 1x1.
func NewField(width, height float64, ambient AmbientTuning, burst BurstTuning, wind Wind, ambientPalette, burstPalette []RGB, seed int64) *Field {
	f := &Field{
		particles:      make([]Particle, 0, 256),
		ambient:        ambient,
		burst:          burst,
		wind:           wind,
		ambientPalette: ambientPalette,
		burstPalette:   burstPalette,
		rng:            rand.New(rand.NewSource(seed)),
	}
	if len(f.ambientPalette) == 0 {
		f.ambientPalette = []RGB{{255, 255, 255}}
	}
	if len(f.burstPalette) == 0 {
		f.burstPalette = f.ambientPalette
	}
	f.Resize(width, height)
	return f
}

// SetWind replaces the wind model. Used by the tuner.
func (f *Field) SetWind(w Wind) {
	f.wind = w
}

// Resize updates the viewport bounds used for wrapping and respawning.
func (f *Field) Resize(width, height float64) {
	f.width = clampDim(width)
	f.height = clampDim(height)
}

// Particles returns the live population for rendering. The slice is only
// valid until the next Tick.
func (f *Field) Particles() []Particle {
	return f.particles
}

// Count returns the current number of live particles.
func (f *Field) Count() int {
	return len(f.particles)
}

// Len implements policy.Population.
func (f *Field) Len() int {
	return len(f.particles)
}

// Counts returns the live population split by kind.
func (f *Field) Counts() (ambient, burst int) {
	for i := range f.particles {
		if f.particles[i].Kind == KindBurst {
			burst++
		} else {
			ambient++
		}
	}
	return ambient, burst
}

// Palette returns the RGB value for a particle's palette index. Out-of-range
// indexes resolve to the first entry.
func (f *Field) Palette(p *Particle) RGB {
	pal := f.ambientPalette
	if p.Kind == KindBurst {
		pal = f.burstPalette
	}
	if int(p.Color) >= len(pal) {
		return pal[0]
	}
	return pal[p.Color]
}

// SpawnAmbient adds one snow particle at the given position. Always succeeds;
// the population grows by one.
func (f *Field) SpawnAmbient(x, y float64) {
	f.particles = append(f.particles, f.makeAmbient(x, y))
}

// TopUp implements policy.Population: spawns n ambient particles at random
// on-screen positions so a resize does not paint a band at the top edge.
func (f *Field) TopUp(n int) {
	for i := 0; i < n; i++ {
		x := f.rng.Float64() * f.width
		y := f.rng.Float64() * f.height
		f.SpawnAmbient(x, y)
	}
}

// Truncate implements policy.Population: keeps the first n particles.
// Order within the slice is not meaningful; no particle is privileged.
func (f *Field) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(f.particles) {
		f.particles = f.particles[:n]
	}
}

// Clear drops the entire population.
func (f *Field) Clear() {
	f.particles = f.particles[:0]
}

// SpawnBurst adds count sparks at equal angular increments around a full
// circle, each launched radially outward at a random speed in
// [minSpeed, maxSpeed]. Negative counts are clamped to zero.
func (f *Field) SpawnBurst(x, y float64, count int, minSpeed, maxSpeed float64) {
	if count <= 0 {
		return
	}
	if maxSpeed < minSpeed {
		maxSpeed = minSpeed
	}
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := step * float64(i)
		speed := minSpeed + f.rng.Float64()*(maxSpeed-minSpeed)
		f.particles = append(f.particles, Particle{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: f.burst.Radius,
			Color:  uint8(f.rng.Intn(len(f.burstPalette))),
			Life:   1,
			Decay:  f.burst.Decay,
			Depth:  1,
			Kind:   KindBurst,
		})
	}
}

// makeAmbient samples a fresh snow particle at the given position.
func (f *Field) makeAmbient(x, y float64) Particle {
	a := &f.ambient
	p := Particle{
		X:      x,
		Y:      y,
		VX:     f.rangeF(a.MinDrift, a.MaxDrift),
		VY:     f.rangeF(a.MinFall, a.MaxFall),
		Radius: f.rangeF(a.MinRadius, a.MaxRadius),
		Color:  uint8(f.rng.Intn(len(f.ambientPalette))),
		Life:   1,
		Decay:  f.rangeF(a.MinDecay, a.MaxDecay),
		Depth:  f.rangeF(a.MinDepth, a.MaxDepth),
		Kind:   KindAmbient,
	}
	if a.SwingEnabled {
		p.SwingPhase = f.rng.Float64() * 2 * math.Pi
		p.SwingAmplitude = f.rangeF(a.MinSwingAmplitude, a.MaxSwingAmplitude)
		p.SwingRate = f.rangeF(a.MinSwingRate, a.MaxSwingRate)
	}
	return p
}

// rangeF samples uniformly from [lo, hi].
func (f *Field) rangeF(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + f.rng.Float64()*(hi-lo)
}

// clampDim keeps viewport dimensions at a safe minimum.
func clampDim(v float64) float64 {
	if math.IsNaN(v) || v < 1 {
		return 1
	}
	return v
}

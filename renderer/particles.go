// Package renderer draws particle and follower snapshots with raylib.
package renderer

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/harshwardhansinghshaktawat/website-effects/particle"
)

// ParticleRenderer draws the particle field.
type ParticleRenderer struct {
	sparkleChance float64
	sparkleLength float64
	rng           *rand.Rand
}

// NewParticleRenderer creates a particle renderer. sparkleChance is the
// per-particle per-frame probability of drawing a small cross flare on
// ambient snow; sparkleLength is the arm length as a multiple of the radius.
func NewParticleRenderer(sparkleChance, sparkleLength float64, seed int64) *ParticleRenderer {
	return &ParticleRenderer{
		sparkleChance: sparkleChance,
		sparkleLength: sparkleLength,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Draw renders all particles as soft disks faded by remaining life.
func (r *ParticleRenderer) Draw(field *particle.Field) {
	particles := field.Particles()
	for i := range particles {
		p := &particles[i]
		if p.Life <= 0 {
			continue
		}

		col := field.Palette(p)
		alpha := p.Life
		if alpha > 1 {
			alpha = 1
		}

		center := rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
		inner := rl.Color{R: col.R, G: col.G, B: col.B, A: uint8(alpha * 255)}
		outer := rl.Color{R: col.R, G: col.G, B: col.B, A: 0}

		// Soft disk: opaque core fading to transparent at the rim.
		rl.DrawCircleGradient(int32(p.X), int32(p.Y), float32(p.Radius)*2, inner, outer)
		rl.DrawCircleV(center, float32(p.Radius), inner)

		if p.Kind == particle.KindAmbient && r.sparkleChance > 0 && r.rng.Float64() < r.sparkleChance {
			r.drawSparkle(center, float32(p.Radius*r.sparkleLength), inner)
		}
	}
}

// drawSparkle draws a small four-armed cross flare.
func (r *ParticleRenderer) drawSparkle(c rl.Vector2, arm float32, col rl.Color) {
	rl.DrawLineV(rl.Vector2{X: c.X - arm, Y: c.Y}, rl.Vector2{X: c.X + arm, Y: c.Y}, col)
	rl.DrawLineV(rl.Vector2{X: c.X, Y: c.Y - arm}, rl.Vector2{X: c.X, Y: c.Y + arm}, col)
}

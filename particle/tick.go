package particle

import "math"

// Tick advances every particle by dt frames. Constants are tuned for dt=1 at
// a nominal 60 Hz cadence; hosts with variable frame pacing can pass the
// measured frame count to keep apparent speed stable.
//
// Per particle: integrate velocity, gravity for sparks, sway for snow,
// depth-scaled wind, life decrement. Dead ambient particles respawn above the
// top edge; dead sparks are removed. Ambient particles wrap at the horizontal
// bounds, sparks that leave them are dropped.
func (f *Field) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	f.elapsed += dt
	wind := math.Sin(f.elapsed*f.wind.Rate) * f.wind.Strength
	margin := f.ambient.Margin

	alive := 0
	for i := range f.particles {
		p := &f.particles[i]

		p.X += p.VX * dt
		p.Y += p.VY * dt

		if p.Kind == KindBurst {
			p.VY += f.burst.Gravity * dt
		}

		if p.SwingAmplitude != 0 {
			p.X += math.Sin(p.SwingPhase) * p.SwingAmplitude * dt
			p.SwingPhase += p.SwingRate * dt
		}

		p.X += wind * p.Depth * dt

		p.Life -= p.Decay * dt
		if p.Life <= 0 {
			if p.Kind == KindBurst {
				continue
			}
			f.respawn(p)
		}

		if p.Kind == KindAmbient {
			// Wrap across the horizontal bounds.
			if p.X < -margin {
				p.X = f.width + margin
			} else if p.X > f.width+margin {
				p.X = -margin
			}
			// Snow that drifts below the viewport comes back at the top.
			if p.Y > f.height+margin {
				f.respawn(p)
			}
		} else if p.X < -margin || p.X > f.width+margin {
			// Sparks are short-lived; off-screen ones are not worth keeping.
			continue
		}

		f.particles[alive] = f.particles[i]
		alive++
	}
	f.particles = f.particles[:alive]
}

// respawn resets an ambient particle to a fresh spawn just above the top
// edge at a random x, re-rolling all spawn-time attributes.
func (f *Field) respawn(p *Particle) {
	*p = f.makeAmbient(f.rng.Float64()*f.width, -f.ambient.Margin)
}

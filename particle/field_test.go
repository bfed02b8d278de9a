package particle

import (
	"math"
	"testing"
)

// quietAmbient is a tuning with no randomness-driven motion so positions are
// predictable in tests.
func quietAmbient() AmbientTuning {
	return AmbientTuning{
		MinRadius: 2, MaxRadius: 2,
		MinDecay: 0.001, MaxDecay: 0.001,
		MinDepth: 1, MaxDepth: 1,
		Margin: 2,
	}
}

func newTestField(w, h float64, ambient AmbientTuning, burst BurstTuning) *Field {
	return NewField(w, h, ambient, burst, Wind{}, nil, nil, 1)
}

func TestSpawnBurstAngles(t *testing.T) {
	f := newTestField(400, 400, quietAmbient(), BurstTuning{Decay: 0.025, Radius: 2})

	f.SpawnBurst(100, 100, 8, 1.5, 3.5)

	particles := f.Particles()
	if len(particles) != 8 {
		t.Fatalf("expected 8 burst particles, got %d", len(particles))
	}

	for i := range particles {
		p := &particles[i]

		want := 2 * math.Pi * float64(i) / 8
		got := math.Atan2(p.VY, p.VX)
		if got < 0 {
			got += 2 * math.Pi
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("particle %d: expected angle %f, got %f", i, want, got)
		}

		speed := math.Hypot(p.VX, p.VY)
		if speed < 1.5 || speed > 3.5 {
			t.Errorf("particle %d: speed %f outside [1.5, 3.5]", i, speed)
		}
	}
}

func TestSpawnBurstClampsCount(t *testing.T) {
	f := newTestField(400, 400, quietAmbient(), BurstTuning{Decay: 0.025})

	f.SpawnBurst(100, 100, -3, 1, 2)
	if f.Count() != 0 {
		t.Errorf("expected negative count to spawn nothing, got %d particles", f.Count())
	}
}

func TestBurstLifetime(t *testing.T) {
	// Zero speed keeps sparks in bounds, so removal is driven by decay alone.
	f := newTestField(400, 400, quietAmbient(), BurstTuning{Decay: 0.025})
	f.SpawnBurst(200, 200, 8, 0, 0)

	// ceil(1/0.025) = 40 ticks to empty
	for tick := 1; tick <= 39; tick++ {
		f.Tick(1)
	}
	if f.Count() != 8 {
		t.Errorf("expected all 8 sparks alive after 39 ticks, got %d", f.Count())
	}

	f.Tick(1)
	if f.Count() != 0 {
		t.Errorf("expected all sparks removed after 40 ticks, got %d", f.Count())
	}
}

func TestLifeStrictlyDecreasing(t *testing.T) {
	f := newTestField(400, 400, quietAmbient(), BurstTuning{Decay: 0.025})
	f.SpawnBurst(200, 200, 1, 0, 0)

	prev := f.Particles()[0].Life
	for tick := 0; tick < 20; tick++ {
		f.Tick(1)
		life := f.Particles()[0].Life
		if life >= prev {
			t.Fatalf("tick %d: life %f did not decrease from %f", tick, life, prev)
		}
		if math.Abs(prev-life-0.025) > 1e-9 {
			t.Fatalf("tick %d: expected decay step 0.025, got %f", tick, prev-life)
		}
		prev = life
	}
}

func TestAmbientRespawnsNotRemoved(t *testing.T) {
	ambient := quietAmbient()
	// Fast decay so particles die repeatedly during the run.
	ambient.MinDecay = 0.1
	ambient.MaxDecay = 0.1
	f := newTestField(400, 400, ambient, BurstTuning{})

	for i := 0; i < 12; i++ {
		f.SpawnAmbient(float64(i)*20, 100)
	}

	for tick := 0; tick < 200; tick++ {
		f.Tick(1)
		if f.Count() != 12 {
			t.Fatalf("tick %d: expected stable population 12, got %d", tick, f.Count())
		}
	}
}

func TestAmbientRespawnAtTopEdge(t *testing.T) {
	ambient := quietAmbient()
	ambient.MinDecay = 0.5
	ambient.MaxDecay = 0.5
	f := newTestField(400, 400, ambient, BurstTuning{})

	f.SpawnAmbient(200, 300)
	f.Tick(1) // life 0.5
	f.Tick(1) // life 0 -> respawn

	p := f.Particles()[0]
	if p.Life != 1 {
		t.Errorf("expected respawned particle with full life, got %f", p.Life)
	}
	if p.Y != -ambient.Margin {
		t.Errorf("expected respawn at y=%f, got %f", -ambient.Margin, p.Y)
	}
}

func TestAmbientWrapsHorizontally(t *testing.T) {
	ambient := quietAmbient()
	ambient.MinDrift = -5
	ambient.MaxDrift = -5
	f := newTestField(50, 50, ambient, BurstTuning{})

	f.SpawnAmbient(1, 25)
	f.Tick(1) // x = -4, beyond -margin(2) -> wrap to width+margin

	p := f.Particles()[0]
	if p.X != 52 {
		t.Errorf("expected wrap to x=52, got %f", p.X)
	}

	for tick := 0; tick < 100; tick++ {
		f.Tick(1)
		x := f.Particles()[0].X
		if x < -2-1e-9 || x > 52+1e-9 {
			t.Fatalf("tick %d: x=%f escaped wrap bounds", tick, x)
		}
	}
}

func TestBurstGravity(t *testing.T) {
	f := newTestField(400, 400, quietAmbient(), BurstTuning{Decay: 0.01, Gravity: 0.06})
	f.SpawnBurst(200, 200, 1, 0, 0)

	f.Tick(1)
	p := f.Particles()[0]
	if math.Abs(p.VY-0.06) > 1e-9 {
		t.Errorf("expected vy 0.06 after one tick of gravity, got %f", p.VY)
	}

	f.Tick(1)
	p = f.Particles()[0]
	if math.Abs(p.VY-0.12) > 1e-9 {
		t.Errorf("expected vy 0.12 after two ticks, got %f", p.VY)
	}
}

func TestWindScalesByDepth(t *testing.T) {
	ambient := quietAmbient()
	ambient.MinDepth = 0.5
	ambient.MaxDepth = 0.5
	f := NewField(400, 400, ambient, BurstTuning{}, Wind{Strength: 1, Rate: math.Pi / 2}, nil, nil, 1)

	f.SpawnAmbient(100, 100)
	f.Tick(1) // wind offset = sin(pi/2)*1 = 1, scaled by depth 0.5

	p := f.Particles()[0]
	if math.Abs(p.X-100.5) > 1e-9 {
		t.Errorf("expected x=100.5 after depth-scaled wind, got %f", p.X)
	}
}

func TestTruncateAndTopUp(t *testing.T) {
	f := newTestField(400, 400, quietAmbient(), BurstTuning{})

	f.TopUp(10)
	if f.Len() != 10 {
		t.Fatalf("expected 10 particles after TopUp, got %d", f.Len())
	}
	for i := range f.Particles() {
		p := &f.Particles()[i]
		if p.X < 0 || p.X > 400 || p.Y < 0 || p.Y > 400 {
			t.Errorf("particle %d topped up off-screen at (%f, %f)", i, p.X, p.Y)
		}
	}

	f.Truncate(4)
	if f.Len() != 4 {
		t.Errorf("expected 4 particles after Truncate, got %d", f.Len())
	}

	f.Truncate(-1)
	if f.Len() != 0 {
		t.Errorf("expected empty population after negative Truncate, got %d", f.Len())
	}
}

func TestCounts(t *testing.T) {
	f := newTestField(400, 400, quietAmbient(), BurstTuning{Decay: 0.025})
	f.SpawnAmbient(10, 10)
	f.SpawnAmbient(20, 20)
	f.SpawnBurst(100, 100, 3, 0, 0)

	ambient, burst := f.Counts()
	if ambient != 2 || burst != 3 {
		t.Errorf("expected counts (2, 3), got (%d, %d)", ambient, burst)
	}
}

func TestViewportClampedToMinimum(t *testing.T) {
	f := newTestField(-10, math.NaN(), quietAmbient(), BurstTuning{})
	f.TopUp(5)
	for i := range f.Particles() {
		p := &f.Particles()[i]
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			t.Errorf("particle %d spawned outside clamped 1x1 viewport at (%f, %f)", i, p.X, p.Y)
		}
	}
}

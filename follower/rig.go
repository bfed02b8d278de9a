// Package follower implements the lagged cursor-trail rig: named points that
// exponentially approach a shared moving target at distinct smoothing rates.
package follower

// Point is one follower of the shared target. Smoothing is the fraction of
// the remaining gap closed per tick: 0.08 trails elastically, 0.25 is
// near-instant.
type Point struct {
	Name      string
	X, Y      float64
	Smoothing float64
}

// Rig holds an ordered list of follower points chasing one target position
// and one target scale. Target writes are last-write-wins; motion only
// happens in Tick.
type Rig struct {
	points []Point

	targetX, targetY float64
	targetScale      float64

	scale          float64
	scaleSmoothing float64
}

// NewRig creates a rig from the given points. Points with a smoothing
// outside (0,1] are clamped so the contraction toward the target holds.
func NewRig(points []Point, scaleSmoothing float64) *Rig {
	r := &Rig{
		points:         make([]Point, len(points)),
		targetScale:    1,
		scale:          1,
		scaleSmoothing: clampSmoothing(scaleSmoothing),
	}
	copy(r.points, points)
	for i := range r.points {
		r.points[i].Smoothing = clampSmoothing(r.points[i].Smoothing)
	}
	return r
}

// SetTarget records the latest desired position. No motion is applied until
// the next Tick.
func (r *Rig) SetTarget(x, y float64) {
	r.targetX = x
	r.targetY = y
}

// SetTargetScale records the desired scale multiplier, independent of
// position. Used for hover-grow effects.
func (r *Rig) SetTargetScale(s float64) {
	if s <= 0 {
		s = 1
	}
	r.targetScale = s
}

// Initialize snaps every point and the target to (x, y), bypassing easing,
// so first activation does not show a visible jump from the origin.
func (r *Rig) Initialize(x, y float64) {
	r.targetX = x
	r.targetY = y
	for i := range r.points {
		r.points[i].X = x
		r.points[i].Y = y
	}
}

// Tick moves each point a smoothing-sized fraction of the way to the target
// and eases the scale toward the target scale with the same law.
func (r *Rig) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	for i := range r.points {
		p := &r.points[i]
		k := step(p.Smoothing, dt)
		p.X += (r.targetX - p.X) * k
		p.Y += (r.targetY - p.Y) * k
	}
	r.scale += (r.targetScale - r.scale) * step(r.scaleSmoothing, dt)
}

// SetSmoothing changes the smoothing constant of the named point. Unknown
// names are ignored. Used by the tuner.
func (r *Rig) SetSmoothing(name string, s float64) {
	for i := range r.points {
		if r.points[i].Name == name {
			r.points[i].Smoothing = clampSmoothing(s)
		}
	}
}

// Points returns the follower points for rendering. The slice is only valid
// until the next Tick.
func (r *Rig) Points() []Point {
	return r.points
}

// Scale returns the current eased scale multiplier.
func (r *Rig) Scale() float64 {
	return r.scale
}

// Target returns the last recorded target position.
func (r *Rig) Target() (x, y float64) {
	return r.targetX, r.targetY
}

// step scales a per-tick smoothing fraction by dt, capped at 1 so a long
// frame never overshoots the target.
func step(smoothing, dt float64) float64 {
	k := smoothing * dt
	if k > 1 {
		return 1
	}
	return k
}

// clampSmoothing keeps a smoothing constant inside (0,1].
func clampSmoothing(s float64) float64 {
	if s <= 0 || s > 1 {
		return 1
	}
	return s
}

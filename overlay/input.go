package overlay

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/harshwardhansinghshaktawat/website-effects/policy"
)

// handleInput samples the pointer and window state for this frame.
func (o *Overlay) handleInput() {
	o.handleResize()

	mouse := rl.GetMousePosition()
	mx := float64(mouse.X)
	my := float64(mouse.Y)

	// Snap the trail to the pointer on the first sample so activation does
	// not show the rig easing in from the origin.
	if !o.pointerSeen {
		o.pointerSeen = true
		o.rig.Initialize(mx, my)
	}
	o.rig.SetTarget(mx, my)

	// A moving pointer sheds the occasional ambient particle.
	delta := rl.GetMouseDelta()
	moved := delta.X != 0 || delta.Y != 0
	if moved && o.sinceSpawn >= o.spawnGapTicks {
		o.field.SpawnAmbient(mx, my)
		o.sinceSpawn = 0
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		o.field.SpawnBurst(mx, my, o.burstCount, o.burstMinSpeed, o.burstMaxSpeed)
		o.collector.RecordBurst()
	}

	// Hover-grow: the ring eases toward hoverScale while the pointer is
	// inside any registered zone.
	scale := 1.0
	for _, z := range o.hoverZones {
		if mx >= z.X && mx <= z.X+z.W && my >= z.Y && my <= z.Y+z.H {
			scale = o.hoverScale
			break
		}
	}
	o.rig.SetTargetScale(scale)
}

// handleResize notes new window dimensions and arms the reconcile debounce.
// The population is only reconciled after the window has stopped changing
// for resizeDebounce ticks.
func (o *Overlay) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w == o.width && h == o.height {
		return
	}
	o.width = w
	o.height = h
	o.field.Resize(w, h)
	o.resizeCountdown = o.resizeDebounce
	if o.resizeCountdown < 1 {
		o.resizeCountdown = 1
	}
}

// tickResize counts down the resize debounce and reconciles when it expires.
func (o *Overlay) tickResize() {
	if o.resizeCountdown == 0 {
		return
	}
	o.resizeCountdown--
	if o.resizeCountdown > 0 {
		return
	}
	o.reconcile()
}

// reconcile brings the ambient population to the policy target.
func (o *Overlay) reconcile() {
	policy.Reconcile(o.field, o.targetCount())
	o.collector.RecordReconcile()
}

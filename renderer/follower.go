package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/harshwardhansinghshaktawat/website-effects/follower"
	"github.com/harshwardhansinghshaktawat/website-effects/particle"
)

// PointStyle is the visual style of one follower point, matched to the rig's
// points by position in the slice.
type PointStyle struct {
	Radius float64
	Color  particle.RGB
}

// FollowerRenderer draws the cursor-trail rig.
type FollowerRenderer struct {
	styles []PointStyle
}

// NewFollowerRenderer creates a renderer for a rig whose points carry the
// given styles.
func NewFollowerRenderer(styles []PointStyle) *FollowerRenderer {
	return &FollowerRenderer{styles: styles}
}

// Draw renders the rig: the first point as a filled dot, the rest as rings.
// The rig's eased scale multiplies every radius for the hover-grow effect.
func (r *FollowerRenderer) Draw(rig *follower.Rig) {
	points := rig.Points()
	scale := rig.Scale()

	for i := range points {
		p := &points[i]
		style := r.style(i)
		col := rl.Color{R: style.Color.R, G: style.Color.G, B: style.Color.B, A: 255}
		center := rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
		radius := float32(style.Radius * scale)

		if i == 0 {
			rl.DrawCircleV(center, radius, col)
		} else {
			rl.DrawRing(center, radius-1.5, radius, 0, 360, 0, col)
		}
	}
}

// style returns the style for point i, falling back to a plain white dot.
func (r *FollowerRenderer) style(i int) PointStyle {
	if i < len(r.styles) {
		return r.styles[i]
	}
	return PointStyle{Radius: 4, Color: particle.RGB{R: 255, G: 255, B: 255}}
}

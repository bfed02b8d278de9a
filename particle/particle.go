// Package particle implements the snow/spark particle field: a bounded
// population of short-lived particles advanced once per frame.
package particle

// Kind distinguishes the two end-of-life policies. Ambient particles respawn
// at the top edge when their life runs out; burst particles are removed.
type Kind uint8

const (
	KindAmbient Kind = iota
	KindBurst
)

// Particle is a single ephemeral visual element. Particles live by value in
// the field's population slice and are never referenced from outside a tick.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Radius float64
	Color  uint8   // palette index, fixed at spawn
	Life   float64 // 1 at spawn, rendered as alpha
	Decay  float64 // life lost per tick, fixed at spawn
	Depth  float64 // parallax weight (0,1], scales wind; 1 = nearest

	// Horizontal sway, used by ambient snow. Zero for burst sparks.
	SwingPhase     float64
	SwingAmplitude float64
	SwingRate      float64

	Kind Kind
}

// RGB is a palette entry. Alpha comes from the particle's remaining life.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#rrggbb" color string. Malformed input falls back to
// white rather than failing; a bad palette entry degrades, it never crashes.
func ParseHex(s string) RGB {
	if len(s) != 7 || s[0] != '#' {
		return RGB{255, 255, 255}
	}
	var v [6]uint8
	for i := 0; i < 6; i++ {
		c := s[i+1]
		switch {
		case c >= '0' && c <= '9':
			v[i] = c - '0'
		case c >= 'a' && c <= 'f':
			v[i] = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v[i] = c - 'A' + 10
		default:
			return RGB{255, 255, 255}
		}
	}
	return RGB{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
	}
}

// ParsePalette parses a list of hex colors. An empty list yields a single
// white entry so a palette index is always resolvable.
func ParsePalette(hex []string) []RGB {
	if len(hex) == 0 {
		return []RGB{{255, 255, 255}}
	}
	out := make([]RGB, len(hex))
	for i, s := range hex {
		out[i] = ParseHex(s)
	}
	return out
}

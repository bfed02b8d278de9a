// Package policy computes the desired ambient particle count from viewport
// size and device class, and reconciles a live population toward it.
package policy

import "math"

// Population is the minimal view of a particle population that Reconcile
// adjusts. TopUp spawns ambient particles at random on-screen positions so a
// resize does not produce a visible band of fresh particles at the top edge.
type Population interface {
	Len() int
	TopUp(n int)
	Truncate(n int)
}

// Policy maps viewport area to a target particle count. Compact values apply
// to narrow viewports (phones, split panes) where a denser but smaller field
// reads better.
type Policy struct {
	AreaDivisor        float64
	CompactAreaDivisor float64
	MaxCount           int
	CompactMaxCount    int
}

// TargetCount returns floor(width*height/divisor) clamped to [0, maxCount].
// Malformed dimensions (negative, NaN) are treated as zero.
func (p Policy) TargetCount(width, height float64, compact bool) int {
	width = sanitize(width)
	height = sanitize(height)

	divisor := p.AreaDivisor
	maxCount := p.MaxCount
	if compact {
		divisor = p.CompactAreaDivisor
		maxCount = p.CompactMaxCount
	}
	if divisor <= 0 || maxCount <= 0 {
		return 0
	}

	count := int(math.Floor(width * height / divisor))
	if count < 0 {
		count = 0
	}
	if count > maxCount {
		count = maxCount
	}
	return count
}

// Reconcile brings the population to exactly target entries in one call.
// Shrinking truncates the tail; no particle is privileged.
func Reconcile(pop Population, target int) {
	if target < 0 {
		target = 0
	}
	switch n := pop.Len(); {
	case target > n:
		pop.TopUp(target - n)
	case target < n:
		pop.Truncate(target)
	}
}

// sanitize maps NaN and negative dimensions to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

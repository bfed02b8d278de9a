package policy

import (
	"math"
	"testing"
)

func testPolicy() Policy {
	return Policy{
		AreaDivisor:        10000,
		CompactAreaDivisor: 6000,
		MaxCount:           100,
		CompactMaxCount:    50,
	}
}

func TestTargetCount(t *testing.T) {
	p := testPolicy()

	// floor(1200*800/10000) = 96, under the cap
	if got := p.TargetCount(1200, 800, false); got != 96 {
		t.Errorf("expected 96, got %d", got)
	}
}

func TestTargetCountClampsToMax(t *testing.T) {
	p := testPolicy()

	if got := p.TargetCount(4000, 3000, false); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
	if got := p.TargetCount(4000, 3000, true); got != 50 {
		t.Errorf("expected compact clamp to 50, got %d", got)
	}
}

func TestTargetCountCompactIsDenser(t *testing.T) {
	p := testPolicy()

	// Same small viewport: the compact divisor yields more particles per area.
	regular := p.TargetCount(600, 400, false)
	compact := p.TargetCount(600, 400, true)
	if compact <= regular {
		t.Errorf("expected compact count (%d) to exceed regular count (%d)", compact, regular)
	}
}

func TestTargetCountMonotonicInArea(t *testing.T) {
	p := testPolicy()

	widths := []float64{0, 100, 320, 640, 800, 1024, 1280, 1920, 2560}
	prev := -1
	for _, w := range widths {
		got := p.TargetCount(w, w*0.75, false)
		if got < prev {
			t.Errorf("width %f: count %d decreased from %d", w, got, prev)
		}
		prev = got
	}
}

func TestTargetCountMalformedDimensions(t *testing.T) {
	p := testPolicy()

	cases := []struct {
		name string
		w, h float64
	}{
		{"negative width", -100, 500},
		{"negative height", 500, -100},
		{"nan width", math.NaN(), 500},
		{"nan height", 500, math.NaN()},
	}
	for _, tc := range cases {
		if got := p.TargetCount(tc.w, tc.h, false); got != 0 {
			t.Errorf("%s: expected 0, got %d", tc.name, got)
		}
	}
}

func TestTargetCountZeroDivisor(t *testing.T) {
	p := Policy{AreaDivisor: 0, MaxCount: 100}
	if got := p.TargetCount(1200, 800, false); got != 0 {
		t.Errorf("expected 0 with zero divisor, got %d", got)
	}
}

// fakePop records Reconcile's calls against it.
type fakePop struct {
	size      int
	topUps    int
	truncates int
}

func (f *fakePop) Len() int { return f.size }
func (f *fakePop) TopUp(n int) {
	f.topUps++
	f.size += n
}
func (f *fakePop) Truncate(n int) {
	f.truncates++
	if n < f.size {
		f.size = n
	}
}

func TestReconcileGrows(t *testing.T) {
	pop := &fakePop{size: 10}
	Reconcile(pop, 25)
	if pop.size != 25 {
		t.Errorf("expected population 25, got %d", pop.size)
	}
	if pop.topUps != 1 || pop.truncates != 0 {
		t.Errorf("expected exactly one top-up, got %d top-ups and %d truncates", pop.topUps, pop.truncates)
	}
}

func TestReconcileShrinks(t *testing.T) {
	pop := &fakePop{size: 40}
	Reconcile(pop, 15)
	if pop.size != 15 {
		t.Errorf("expected population 15, got %d", pop.size)
	}
	if pop.truncates != 1 || pop.topUps != 0 {
		t.Errorf("expected exactly one truncate, got %d truncates and %d top-ups", pop.truncates, pop.topUps)
	}
}

func TestReconcileAlreadyAtTarget(t *testing.T) {
	pop := &fakePop{size: 30}
	Reconcile(pop, 30)
	if pop.topUps != 0 || pop.truncates != 0 {
		t.Errorf("expected no calls at target, got %d top-ups and %d truncates", pop.topUps, pop.truncates)
	}
}

func TestReconcileNegativeTarget(t *testing.T) {
	pop := &fakePop{size: 5}
	Reconcile(pop, -10)
	if pop.size != 0 {
		t.Errorf("expected negative target to empty the population, got %d", pop.size)
	}
}

package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestCollectorClosesWindow(t *testing.T) {
	c := NewCollector(4, false)

	for i := 0; i < 3; i++ {
		if stats := c.RecordTick(10, 2, 12, time.Millisecond); stats != nil {
			t.Fatalf("tick %d: window closed early", i+1)
		}
	}

	stats := c.RecordTick(10, 2, 12, time.Millisecond)
	if stats == nil {
		t.Fatal("expected window to close on tick 4")
	}
	if stats.WindowEndTick != 4 {
		t.Errorf("expected window end tick 4, got %d", stats.WindowEndTick)
	}
	if stats.AmbientCount != 10 || stats.BurstCount != 2 || stats.TargetCount != 12 {
		t.Errorf("expected counts (10, 2, 12), got (%d, %d, %d)",
			stats.AmbientCount, stats.BurstCount, stats.TargetCount)
	}
	if math.Abs(stats.CountMean-12) > 1e-9 {
		t.Errorf("expected count mean 12, got %f", stats.CountMean)
	}
	if math.Abs(stats.TickMsMean-1) > 1e-9 {
		t.Errorf("expected tick mean 1ms, got %f", stats.TickMsMean)
	}
}

func TestCollectorEventCountsReset(t *testing.T) {
	c := NewCollector(2, false)

	c.RecordBurst()
	c.RecordBurst()
	c.RecordReconcile()
	c.RecordTick(5, 0, 5, 0)
	stats := c.RecordTick(5, 0, 5, 0)
	if stats == nil {
		t.Fatal("expected window to close")
	}
	if stats.BurstsSpawned != 2 || stats.Reconciles != 1 {
		t.Errorf("expected 2 bursts and 1 reconcile, got %d and %d",
			stats.BurstsSpawned, stats.Reconciles)
	}

	// Next window starts clean.
	c.RecordTick(5, 0, 5, 0)
	stats = c.RecordTick(5, 0, 5, 0)
	if stats == nil {
		t.Fatal("expected second window to close")
	}
	if stats.BurstsSpawned != 0 || stats.Reconciles != 0 {
		t.Errorf("expected event counts reset, got %d bursts and %d reconciles",
			stats.BurstsSpawned, stats.Reconciles)
	}
}

func TestCollectorDefaultWindow(t *testing.T) {
	c := NewCollector(0, false)
	if c.windowTicks != 300 {
		t.Errorf("expected default window 300, got %d", c.windowTicks)
	}
}

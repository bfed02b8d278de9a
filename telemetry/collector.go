package telemetry

import (
	"log/slog"
	"time"
)

// Collector accumulates per-tick samples and closes a WindowStats every
// windowTicks ticks. All methods are called from the frame loop; no locking.
type Collector struct {
	windowTicks int
	tick        int64
	windowStart int64

	counts []float64
	tickMs []float64

	bursts  int
	reconcs int

	lastAmbient int
	lastBurst   int
	lastTarget  int

	logStats bool
}

// NewCollector creates a collector that closes a window every windowTicks
// ticks. windowTicks below 1 defaults to 300 (five seconds at 60 Hz).
func NewCollector(windowTicks int, logStats bool) *Collector {
	if windowTicks < 1 {
		windowTicks = 300
	}
	return &Collector{
		windowTicks: windowTicks,
		counts:      make([]float64, 0, windowTicks),
		tickMs:      make([]float64, 0, windowTicks),
		logStats:    logStats,
	}
}

// RecordTick records one frame's population counts and tick duration.
// Returns the closed window's stats when the window ends, nil otherwise.
func (c *Collector) RecordTick(ambient, burst, target int, dur time.Duration) *WindowStats {
	c.tick++
	c.lastAmbient = ambient
	c.lastBurst = burst
	c.lastTarget = target
	c.counts = append(c.counts, float64(ambient+burst))
	c.tickMs = append(c.tickMs, float64(dur.Nanoseconds())/1e6)

	if c.tick-c.windowStart < int64(c.windowTicks) {
		return nil
	}
	stats := c.closeWindow()
	return &stats
}

// RecordBurst counts a click burst within the current window.
func (c *Collector) RecordBurst() {
	c.bursts++
}

// RecordReconcile counts a population reconcile within the current window.
func (c *Collector) RecordReconcile() {
	c.reconcs++
}

// Tick returns the number of ticks recorded so far.
func (c *Collector) Tick() int64 {
	return c.tick
}

// closeWindow summarizes the current window and resets it.
func (c *Collector) closeWindow() WindowStats {
	countMean, countStd, _, _ := summarize(c.counts)
	tickMean, _, tickP50, tickP90 := summarize(c.tickMs)

	stats := WindowStats{
		WindowEndTick: c.tick,
		WindowTicks:   c.windowTicks,
		AmbientCount:  c.lastAmbient,
		BurstCount:    c.lastBurst,
		TargetCount:   c.lastTarget,
		BurstsSpawned: c.bursts,
		Reconciles:    c.reconcs,
		CountMean:     countMean,
		CountStd:      countStd,
		TickMsMean:    tickMean,
		TickMsP50:     tickP50,
		TickMsP90:     tickP90,
	}

	if c.logStats {
		slog.Info("overlay window",
			"tick", stats.WindowEndTick,
			"ambient", stats.AmbientCount,
			"burst", stats.BurstCount,
			"target", stats.TargetCount,
			"count_mean", stats.CountMean,
			"tick_ms_mean", stats.TickMsMean,
			"tick_ms_p90", stats.TickMsP90,
		)
	}

	c.windowStart = c.tick
	c.counts = c.counts[:0]
	c.tickMs = c.tickMs[:0]
	c.bursts = 0
	c.reconcs = 0
	return stats
}

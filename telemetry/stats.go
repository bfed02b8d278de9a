// Package telemetry aggregates per-frame overlay metrics into windowed stats
// and writes them to CSV for offline tuning.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated overlay statistics for a window of ticks.
type WindowStats struct {
	WindowEndTick int64 `csv:"window_end"`
	WindowTicks   int   `csv:"window_ticks"`

	// Population counts at window end
	AmbientCount int `csv:"ambient"`
	BurstCount   int `csv:"burst"`
	TargetCount  int `csv:"target"`

	// Events during the window
	BurstsSpawned int `csv:"bursts_spawned"`
	Reconciles    int `csv:"reconciles"`

	// Population over the window
	CountMean float64 `csv:"count_mean"`
	CountStd  float64 `csv:"count_std"`

	// Tick duration in milliseconds
	TickMsMean float64 `csv:"tick_ms_mean"`
	TickMsP50  float64 `csv:"tick_ms_p50"`
	TickMsP90  float64 `csv:"tick_ms_p90"`
}

// summarize computes mean, stddev, and p50/p90 for a sample window.
// Returns zeros for an empty window.
func summarize(values []float64) (mean, std, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	mean = stat.Mean(values, nil)
	if len(values) > 1 {
		std = stat.StdDev(values, nil)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}

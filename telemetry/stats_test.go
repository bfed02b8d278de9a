package telemetry

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	mean, std, p50, p90 := summarize([]float64{1, 2, 3, 4})

	if math.Abs(mean-2.5) > 1e-9 {
		t.Errorf("expected mean 2.5, got %f", mean)
	}
	// Sample standard deviation of {1,2,3,4}
	if math.Abs(std-math.Sqrt(5.0/3.0)) > 1e-9 {
		t.Errorf("expected std %f, got %f", math.Sqrt(5.0/3.0), std)
	}
	if p50 != 2 {
		t.Errorf("expected p50 2, got %f", p50)
	}
	if p90 != 4 {
		t.Errorf("expected p90 4, got %f", p90)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	mean, std, p50, p90 := summarize(nil)
	if mean != 0 || std != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("expected all zeros for empty window, got %f %f %f %f", mean, std, p50, p90)
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	mean, std, p50, p90 := summarize([]float64{7})
	if mean != 7 || p50 != 7 || p90 != 7 {
		t.Errorf("expected 7 for all stats, got mean=%f p50=%f p90=%f", mean, p50, p90)
	}
	if std != 0 {
		t.Errorf("expected zero std for single sample, got %f", std)
	}
}

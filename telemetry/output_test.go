package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// All methods must be safe on the nil manager.
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("nil WriteWindow: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("nil Dir: expected empty, got %q", om.Dir())
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}

func TestOutputManagerWritesFrames(t *testing.T) {
	dir := t.TempDir()

	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output manager: %v", err)
	}

	if err := om.WriteWindow(WindowStats{WindowEndTick: 300, AmbientCount: 90}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteWindow(WindowStats{WindowEndTick: 600, AmbientCount: 91}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("reading frames.csv: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 records, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("expected header with window_end, got %q", lines[0])
	}
	// Header must not repeat on the second record.
	if strings.Contains(lines[2], "window_end") {
		t.Errorf("header repeated in record line %q", lines[2])
	}
}

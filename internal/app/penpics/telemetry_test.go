package penpics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/preston-bernstein/pen-pictures/internal/config"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
)

func TestBuildTelemetryFallsBackOnSetupError(t *testing.T) {
	orig := metricsSetup
	t.Cleanup(func() { metricsSetup = orig })
	metricsSetup = func(context.Context, metrics.TelemetryConfig) (*metrics.Recorder, prometheus.Gatherer, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("boom")
	}

	tel := BuildTelemetry(context.Background(), config.Config{}, nil)
	if tel.Recorder == nil {
		t.Fatalf("expected fallback recorder")
	}
	if err := tel.Close(context.Background()); err != nil {
		t.Fatalf("expected nil close error, got %v", err)
	}
}

func TestBuildTelemetryWritesTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "penpics.prom")
	cfg := config.Config{Metrics: config.MetricsConfig{Enabled: true, TextfilePath: path, ServiceName: "pen-pictures-test"}}

	tel := BuildTelemetry(context.Background(), cfg, nil)
	tel.Recorder.RecordPlayers(9)
	if err := tel.Close(context.Background()); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected textfile, got %v", err)
	}
	if !strings.Contains(string(data), "players") {
		t.Fatalf("expected players metric in textfile, got %s", data)
	}
}

func TestNewSnapshotWriter(t *testing.T) {
	if NewSnapshotWriter(config.Config{}) != nil {
		t.Fatalf("expected nil writer without snapshot dir")
	}
	dir := t.TempDir()
	w := NewSnapshotWriter(config.Config{Report: config.ReportConfig{SnapshotDir: dir}})
	if w == nil || w.BasePath() != dir {
		t.Fatalf("expected writer rooted at %s", dir)
	}
}

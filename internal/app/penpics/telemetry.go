package penpics

import (
	"context"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/preston-bernstein/pen-pictures/internal/config"
	"github.com/preston-bernstein/pen-pictures/internal/logging"
	"github.com/preston-bernstein/pen-pictures/internal/metrics"
	"github.com/preston-bernstein/pen-pictures/internal/snapshots"
)

var metricsSetup = metrics.Setup

// Telemetry bundles the run recorder with its export hooks.
type Telemetry struct {
	Recorder *metrics.Recorder
	gatherer prometheus.Gatherer
	textfile string
	shutdown func(context.Context) error
	logger   *slog.Logger
}

// BuildTelemetry sets up metrics from cfg. Setup failures degrade to an in-memory recorder.
func BuildTelemetry(ctx context.Context, cfg config.Config, logger *slog.Logger) Telemetry {
	rec, gatherer, shutdown, err := metricsSetup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return Telemetry{Recorder: metrics.NewRecorder(), logger: logger}
	}
	return Telemetry{
		Recorder: rec,
		gatherer: gatherer,
		textfile: cfg.Metrics.TextfilePath,
		shutdown: shutdown,
		logger:   logger,
	}
}

// Close writes the textfile when configured and flushes exporters.
func (t Telemetry) Close(ctx context.Context) error {
	if t.gatherer != nil && t.textfile != "" {
		if err := metrics.WriteTextfile(t.textfile, t.gatherer); err != nil {
			logging.Warn(t.logger, "metrics textfile write failed", logging.FieldPath, t.textfile, "err", err)
		}
	}
	if t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

// NewSnapshotWriter returns a writer when a snapshot directory is configured.
func NewSnapshotWriter(cfg config.Config) *snapshots.Writer {
	if cfg.Report.SnapshotDir == "" {
		return nil
	}
	return snapshots.NewWriter(cfg.Report.SnapshotDir, cfg.Report.SnapshotRetention)
}

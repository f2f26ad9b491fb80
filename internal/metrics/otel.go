package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const meterName = "pen-pictures"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics backed by a Prometheus registry and an optional OTLP exporter.
// It returns a Recorder, the registry to gather from (nil when disabled), and a shutdown function
// that flushes pending exports.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, prometheus.Gatherer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = meterName
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, gatherer, shutdown, nil
}

// WriteTextfile writes the gathered metrics in Prometheus text format, for node_exporter's textfile collector.
func WriteTextfile(path string, gatherer prometheus.Gatherer) error {
	if path == "" {
		return errors.New("metrics textfile path required")
	}
	if gatherer == nil {
		return errors.New("metrics not enabled")
	}
	return prometheus.WriteToTextfile(path, gatherer)
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx               context.Context
	documentLoads     metric.Int64Counter
	documentErrors    metric.Int64Counter
	documentLatency   metric.Float64Histogram
	playersAggregated metric.Int64Counter
	leaderSentences   metric.Int64Counter
	runs              metric.Int64Counter
	runErrors         metric.Int64Counter
	runLatencyMs      metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(meterName)

	documentLoads, err := meter.Int64Counter("document_loads_total")
	if err != nil {
		return nil, err
	}
	documentErrors, err := meter.Int64Counter("document_errors_total")
	if err != nil {
		return nil, err
	}
	documentLatency, err := meter.Float64Histogram("document_load_duration_ms")
	if err != nil {
		return nil, err
	}
	players, err := meter.Int64Counter("players_aggregated_total")
	if err != nil {
		return nil, err
	}
	sentences, err := meter.Int64Counter("leader_sentences_total")
	if err != nil {
		return nil, err
	}
	runs, err := meter.Int64Counter("report_runs_total")
	if err != nil {
		return nil, err
	}
	runErrors, err := meter.Int64Counter("report_run_errors_total")
	if err != nil {
		return nil, err
	}
	runLatency, err := meter.Float64Histogram("report_run_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               context.Background(),
		documentLoads:     documentLoads,
		documentErrors:    documentErrors,
		documentLatency:   documentLatency,
		playersAggregated: players,
		leaderSentences:   sentences,
		runs:              runs,
		runErrors:         runErrors,
		runLatencyMs:      runLatency,
	}, nil
}

func (o *otelInstruments) recordDocumentLoad(document string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrDocument, document)}
	o.recordCounter(o.documentLoads, 1, attrs...)
	o.recordHistogram(o.documentLatency, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.documentErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordPlayers(count int) {
	if o == nil {
		return
	}
	o.recordCounter(o.playersAggregated, int64(count))
}

func (o *otelInstruments) recordSentence(stat string) {
	if o == nil {
		return
	}
	o.recordCounter(o.leaderSentences, 1, attribute.String(AttrStat, stat))
}

func (o *otelInstruments) recordRun(duration time.Duration, err error) {
	if o == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		o.recordCounter(o.runErrors, 1)
	}
	o.recordCounter(o.runs, 1, attribute.String(AttrStatus, status))
	o.recordHistogram(o.runLatencyMs, float64(duration.Milliseconds()))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}

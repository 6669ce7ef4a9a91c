// Package telemetry wires run tracing and the batch metrics textfile.
package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/awantoch/iconflow/config"
	"github.com/awantoch/iconflow/constants"
	"github.com/awantoch/iconflow/utils"
)

// RunStats are the per-run numbers exported as metrics.
type RunStats struct {
	Assets     int
	Collisions int
	Written    int
	Unchanged  int
	Removed    int
	Duration   time.Duration
}

// Telemetry holds the tracer provider and metric registry of one process.
type Telemetry struct {
	provider trace.TracerProvider
	sdk      *sdktrace.TracerProvider
	textfile string

	registry            *prometheus.Registry
	assetsScanned       prometheus.Gauge
	collisionsEscalated prometheus.Gauge
	filesWritten        prometheus.Gauge
	filesUnchanged      prometheus.Gauge
	filesRemoved        prometheus.Gauge
	runDuration         prometheus.Gauge
}

// Init sets up tracing and metrics from config.
// Supported exporters: "" (off), "stdout", "otlp".
func Init(ctx context.Context, cfg *config.Config) (*Telemetry, error) {
	t := newTelemetry(cfg.Metrics.Textfile)

	var exp sdktrace.SpanExporter
	var err error
	switch cfg.Tracing.Exporter {
	case constants.TracingExporterOff:
		return t, nil
	case constants.TracingStdout:
		exp, err = stdouttrace.New(stdouttrace.WithWriter(&utils.LoggerWriter{Fn: utils.Info, Prefix: "trace: "}))
	case constants.TracingOTLP:
		var opts []otlptracehttp.Option
		if cfg.Tracing.Endpoint != "" {
			opts = append(opts, otlptracehttp.WithEndpointURL(cfg.Tracing.Endpoint))
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	default:
		return nil, utils.Errorf("unsupported tracing exporter: %s", cfg.Tracing.Exporter)
	}
	if err != nil {
		return nil, err
	}

	serviceName := constants.ServiceName
	if cfg.Tracing.ServiceName != "" {
		serviceName = cfg.Tracing.ServiceName
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, err
	}
	// A single batch run exports synchronously.
	t.sdk = sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exp),
		sdktrace.WithResource(res),
	)
	t.provider = t.sdk
	otel.SetTracerProvider(t.sdk)
	return t, nil
}

// Noop returns telemetry that records nothing.
func Noop() *Telemetry {
	return newTelemetry("")
}

func newTelemetry(textfile string) *Telemetry {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: constants.MetricsNamespace,
			Name:      name,
			Help:      help,
		})
	}
	t := &Telemetry{
		provider:            noop.NewTracerProvider(),
		textfile:            textfile,
		registry:            prometheus.NewRegistry(),
		assetsScanned:       gauge("assets_scanned", "SVG assets found by the last run."),
		collisionsEscalated: gauge("collisions_escalated", "Symbols that needed collision escalation in the last run."),
		filesWritten:        gauge("files_written", "Files written by the last run."),
		filesUnchanged:      gauge("files_unchanged", "Files left untouched because their content was current."),
		filesRemoved:        gauge("files_removed", "Stale generated files removed by the last run."),
		runDuration:         gauge("run_duration_seconds", "Wall time of the last run."),
	}
	t.registry.MustRegister(
		t.assetsScanned,
		t.collisionsEscalated,
		t.filesWritten,
		t.filesUnchanged,
		t.filesRemoved,
		t.runDuration,
	)
	return t
}

// Tracer returns the tracer for pipeline spans.
func (t *Telemetry) Tracer() trace.Tracer {
	return t.provider.Tracer(constants.TracerName)
}

// Registry exposes the metric registry.
func (t *Telemetry) Registry() *prometheus.Registry {
	return t.registry
}

// Record sets the run metrics.
func (t *Telemetry) Record(s RunStats) {
	t.assetsScanned.Set(float64(s.Assets))
	t.collisionsEscalated.Set(float64(s.Collisions))
	t.filesWritten.Set(float64(s.Written))
	t.filesUnchanged.Set(float64(s.Unchanged))
	t.filesRemoved.Set(float64(s.Removed))
	t.runDuration.Set(s.Duration.Seconds())
}

// Shutdown flushes spans and writes the metrics textfile when one is
// configured.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.sdk != nil {
		errs = append(errs, t.sdk.Shutdown(ctx))
	}
	if t.textfile != "" {
		errs = append(errs, prometheus.WriteToTextfile(t.textfile, t.registry))
	}
	return errors.Join(errs...)
}

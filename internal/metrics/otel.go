package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nba-standings"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
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

	return rec, promHandler, shutdown, nil
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
	ctx           context.Context
	meter         metric.Meter
	gamesApplied  metric.Int64Counter
	eliminations  metric.Int64Counter
	passes        metric.Int64Counter
	passLatencyMs metric.Float64Histogram
	sourceLoads   metric.Int64Counter
	sourceErrors  metric.Int64Counter
	sourceLatency metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)
	ctx := context.Background()

	gamesApplied, err := meter.Int64Counter("standings_games_applied_total")
	if err != nil {
		return nil, err
	}
	eliminations, err := meter.Int64Counter("standings_eliminations_total")
	if err != nil {
		return nil, err
	}
	passes, err := meter.Int64Counter("standings_passes_total")
	if err != nil {
		return nil, err
	}
	passLatency, err := meter.Float64Histogram("standings_pass_duration_ms")
	if err != nil {
		return nil, err
	}
	sourceLoads, err := meter.Int64Counter("source_loads_total")
	if err != nil {
		return nil, err
	}
	sourceErrors, err := meter.Int64Counter("source_errors_total")
	if err != nil {
		return nil, err
	}
	sourceLatency, err := meter.Float64Histogram("source_load_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:           ctx,
		meter:         meter,
		gamesApplied:  gamesApplied,
		eliminations:  eliminations,
		passes:        passes,
		passLatencyMs: passLatency,
		sourceLoads:   sourceLoads,
		sourceErrors:  sourceErrors,
		sourceLatency: sourceLatency,
	}, nil
}

func (o *otelInstruments) recordGameApplied(conference string) {
	if o == nil {
		return
	}
	o.recordCounter(o.gamesApplied, 1, attribute.String(AttrConference, conference))
}

func (o *otelInstruments) recordElimination(conference string) {
	if o == nil {
		return
	}
	o.recordCounter(o.eliminations, 1, attribute.String(AttrConference, conference))
}

func (o *otelInstruments) recordPass(duration time.Duration) {
	if o == nil {
		return
	}
	o.recordCounter(o.passes, 1)
	o.recordHistogram(o.passLatencyMs, float64(duration.Milliseconds()))
}

func (o *otelInstruments) recordSourceLoad(source string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrSource, source),
		attribute.String(AttrOutcome, outcome),
	}
	o.recordCounter(o.sourceLoads, 1, attrs...)
	o.recordHistogram(o.sourceLatency, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.sourceErrors, 1, attribute.String(AttrSource, source))
	}
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

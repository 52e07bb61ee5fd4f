package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "nba-standings-test",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil || handler == nil || shutdown == nil {
		t.Fatalf("expected recorder, handler and shutdown")
	}

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordGameApplied("West")
	rec.RecordElimination("West")
	rec.RecordPass(time.Millisecond)
	rec.RecordSourceLoad("csv", time.Millisecond, errors.New("boom"))

	if snap := rec.Snapshot(); snap.Passes != 1 || snap.Eliminations["West"] != 1 {
		t.Fatalf("expected in-memory counters alongside otel, got %+v", snap)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}
}

func TestSetupPropagatesPrometheusError(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("prom failed")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected prometheus setup error")
	}
}

func TestSetupPropagatesOTLPError(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp failed")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"})
	if err == nil {
		t.Fatalf("expected otlp setup error")
	}
}

func TestSetupPropagatesInstrumentError(t *testing.T) {
	orig := instrumentFactory
	t.Cleanup(func() { instrumentFactory = orig })
	instrumentFactory = func(metric.MeterProvider) (*otelInstruments, error) {
		return nil, errors.New("instruments failed")
	}

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected instrument setup error")
	}
}

func TestNilInstrumentsAreSafe(t *testing.T) {
	var o *otelInstruments
	o.recordGameApplied("West")
	o.recordElimination("West")
	o.recordPass(time.Millisecond)
	o.recordSourceLoad("csv", time.Millisecond, nil)
}

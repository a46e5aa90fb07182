package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// HTTPDurationBuckets are the latency buckets of http.server.request.duration, in seconds
var HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Meters pushes OTLP metrics to the collector every interval. The zero value
// hands out no-op meters.
type Meters struct {
	sdk *sdkmetric.MeterProvider
}

func startMetrics(ctx context.Context, col collector, interval time.Duration, log *zap.Logger) (*Meters, error) {
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(col.endpoint)}
	if col.insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp metric exporter: %w", err)
	}
	m, err := newMeters(col, sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)))
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(m.sdk)
	log.Info("Metric export enabled",
		zap.String("collector_endpoint", col.endpoint),
		zap.Duration("interval", interval),
	)
	return m, nil
}

func newMeters(col collector, reader sdkmetric.Reader) (*Meters, error) {
	res, err := col.resource()
	if err != nil {
		return nil, err
	}
	return &Meters{sdk: sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)}, nil
}

func (m *Meters) IsEnabled() bool { return m != nil && m.sdk != nil }

// Meter returns the named meter, or a no-op one when export is off
func (m *Meters) Meter(name string) metric.Meter {
	if !m.IsEnabled() {
		return noop.NewMeterProvider().Meter(name)
	}
	return m.sdk.Meter(name)
}

func (m *Meters) Shutdown(ctx context.Context) error {
	if !m.IsEnabled() {
		return nil
	}
	if err := m.sdk.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown meter provider: %w", err)
	}
	return nil
}

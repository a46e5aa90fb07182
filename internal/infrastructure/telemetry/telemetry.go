// Package telemetry wires OpenTelemetry tracing, metric and log export plus
// Pyroscope profiling into the storefront. Every part is optional; a
// disabled part is a harmless no-op value.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alshbh/storefront/internal/infrastructure/config"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// collector is the OTLP/gRPC endpoint shared by spans, metrics and log records
type collector struct {
	endpoint string
	insecure bool
	service  string
	version  string
}

func (c collector) resource() (*resource.Resource, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(c.service),
		semconv.ServiceVersion(c.version),
	))
	if err != nil {
		return nil, fmt.Errorf("telemetry resource: %w", err)
	}
	return res, nil
}

// Telemetry owns every exporter started at boot
type Telemetry struct {
	cfg      config.TelemetryConfig
	Tracer   *TracerProvider
	Metrics  *Meters
	Logs     *LogExporter
	Profiler *Profiler
}

// Setup starts every exporter and the profiler as configured. version is
// reported on every span and log record.
func Setup(ctx context.Context, cfg config.TelemetryConfig, version string, log *zap.Logger) (*Telemetry, error) {
	col := collector{
		endpoint: cfg.CollectorEndpoint,
		insecure: cfg.Insecure,
		service:  cfg.ServiceName,
		version:  version,
	}
	t := &Telemetry{cfg: cfg, Tracer: &TracerProvider{log: log}, Metrics: &Meters{}, Logs: &LogExporter{}, Profiler: &Profiler{}}

	var err error
	if cfg.Enabled {
		if t.Tracer, err = startTracing(ctx, col, cfg.SamplingRatio, log); err != nil {
			return nil, err
		}
		if cfg.MetricsEnabled {
			if t.Metrics, err = startMetrics(ctx, col, cfg.MetricsInterval, log); err != nil {
				return nil, errors.Join(err, t.Tracer.Shutdown(ctx))
			}
		}
		if cfg.LogsEnabled {
			if t.Logs, err = startLogExport(ctx, col, log); err != nil {
				return nil, errors.Join(err, t.Metrics.Shutdown(ctx), t.Tracer.Shutdown(ctx))
			}
		}
	} else {
		log.Info("Telemetry disabled")
	}

	if cfg.ProfilingEnabled {
		t.Profiler, err = startProfiler(cfg, log)
		if err != nil {
			return nil, errors.Join(err, t.Logs.Shutdown(ctx), t.Metrics.Shutdown(ctx), t.Tracer.Shutdown(ctx))
		}
		// span ids only make sense on CPU samples once the profiler runs
		if cfg.SpanProfiles {
			t.Tracer.EnableSpanProfiles()
		}
	}
	return t, nil
}

// Logger tees base into the OTLP log exporter when log export is on
func (t *Telemetry) Logger(base *zap.Logger, level zapcore.LevelEnabler) *zap.Logger {
	if !t.Logs.IsEnabled() {
		return base
	}
	return Bridge(base, t.Logs.Core(t.cfg.ServiceName, level))
}

// InstrumentDB registers otelgorm on db when database tracing is on
func (t *Telemetry) InstrumentDB(db *gorm.DB, dbName string, log *zap.Logger) error {
	return RegisterDBTracing(db, DBTracingConfig{
		Enabled:         t.cfg.Enabled && t.cfg.DBTraceEnabled,
		LogFullSQL:      t.cfg.DBLogFullSQL,
		SlowQueryThresh: t.cfg.DBSlowQueryThresh,
		DBName:          dbName,
	}, log)
}

// Shutdown stops the profiler then flushes logs, metrics and spans
func (t *Telemetry) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return errors.Join(
		t.Profiler.Stop(),
		t.Logs.Shutdown(ctx),
		t.Metrics.Shutdown(ctx),
		t.Tracer.Shutdown(ctx),
	)
}

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogExporter ships zap entries to the collector as OTLP log records.
// The zero value is disabled.
type LogExporter struct {
	sdk *sdklog.LoggerProvider
}

func startLogExport(ctx context.Context, col collector, log *zap.Logger) (*LogExporter, error) {
	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(col.endpoint)}
	if col.insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("otlp log exporter: %w", err)
	}
	res, err := col.resource()
	if err != nil {
		return nil, err
	}

	le := &LogExporter{sdk: sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)}
	global.SetLoggerProvider(le.sdk)
	log.Info("Log export enabled", zap.String("collector_endpoint", col.endpoint))
	return le, nil
}

func (le *LogExporter) IsEnabled() bool { return le != nil && le.sdk != nil }

// Core forwards entries at or above level to the exporter. It drops
// everything when export is disabled.
func (le *LogExporter) Core(serviceName string, level zapcore.LevelEnabler) zapcore.Core {
	if !le.IsEnabled() {
		return zapcore.NewNopCore()
	}
	return &levelFilterCore{
		Core:  otelzap.NewCore(serviceName, otelzap.WithLoggerProvider(le.sdk)),
		level: level,
	}
}

func (le *LogExporter) Shutdown(ctx context.Context) error {
	if !le.IsEnabled() {
		return nil
	}
	if err := le.sdk.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown log exporter: %w", err)
	}
	return nil
}

// levelFilterCore gates the otelzap core, which accepts every level, with
// the same atomic level as the console core
type levelFilterCore struct {
	zapcore.Core
	level zapcore.LevelEnabler
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return c.level.Enabled(lvl) && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return c.Core.Check(entry, ce)
	}
	return ce
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), level: c.level}
}

// Bridge tees base with extra, keeping the caller and stacktrace options of base
func Bridge(base *zap.Logger, extra zapcore.Core) *zap.Logger {
	return base.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, extra)
	}))
}

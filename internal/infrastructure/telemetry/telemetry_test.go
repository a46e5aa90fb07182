package telemetry

import (
	"context"
	"testing"

	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetup_AllDisabled(t *testing.T) {
	ctx := context.Background()
	tel, err := Setup(ctx, config.TelemetryConfig{ServiceName: "storefront"}, "test", zap.NewNop())
	require.NoError(t, err)

	base := zap.NewNop()
	assert.Same(t, base, tel.Logger(base, zapcore.InfoLevel))

	db := openTestDB(t)
	require.NoError(t, tel.InstrumentDB(db, "storefront", zap.NewNop()))
	assert.Nil(t, db.Callback().Create().Get("telemetry:after_create"))

	assert.False(t, tel.Tracer.IsEnabled())
	assert.False(t, tel.Metrics.IsEnabled())
	assert.False(t, tel.Profiler.IsEnabled())
	assert.NoError(t, tel.Shutdown(ctx))
}

func TestSetup_ProfilingMisconfigured(t *testing.T) {
	_, err := Setup(context.Background(), config.TelemetryConfig{
		ServiceName:      "storefront",
		ProfilingEnabled: true,
	}, "test", zap.NewNop())
	assert.Error(t, err)
}

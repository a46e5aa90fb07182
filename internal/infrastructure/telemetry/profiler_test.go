package telemetry

import (
	"testing"

	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProfiler_Disabled(t *testing.T) {
	p := &Profiler{}
	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())
}

func TestStartProfiler_RequiresAddressAndName(t *testing.T) {
	_, err := startProfiler(config.TelemetryConfig{ServiceName: "storefront"}, zap.NewNop())
	assert.ErrorContains(t, err, "server address")

	_, err = startProfiler(config.TelemetryConfig{PyroscopeAddress: "http://pyroscope:4040"}, zap.NewNop())
	assert.ErrorContains(t, err, "service name")
}

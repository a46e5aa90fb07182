package telemetry

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/alshbh/storefront/internal/infrastructure/config"
	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// Mutex and block profiles need runtime sampling rates and stay off
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Profiler uploads continuous profiles to Pyroscope. The zero value is disabled.
type Profiler struct {
	p    *pyroscope.Profiler
	once sync.Once
	err  error
}

func startProfiler(cfg config.TelemetryConfig, log *zap.Logger) (*Profiler, error) {
	switch {
	case cfg.PyroscopeAddress == "":
		return nil, errors.New("profiling enabled without a pyroscope server address")
	case cfg.ServiceName == "":
		return nil, errors.New("profiling enabled without a service name")
	}

	tags := map[string]string{}
	if host, err := os.Hostname(); err == nil {
		tags["hostname"] = host
	}
	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.ServiceName,
		ServerAddress:     cfg.PyroscopeAddress,
		BasicAuthUser:     cfg.PyroscopeUser,
		BasicAuthPassword: cfg.PyroscopePassword,
		Logger:            pyroscopeLogger{log.Sugar()},
		Tags:              tags,
		ProfileTypes:      profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}
	log.Info("Profiling enabled", zap.String("server_address", cfg.PyroscopeAddress))
	return &Profiler{p: p}, nil
}

func (p *Profiler) IsEnabled() bool { return p.p != nil }

// Stop flushes and stops the profiler; later calls return the first result
func (p *Profiler) Stop() error {
	if p.p == nil {
		return nil
	}
	p.once.Do(func() { p.err = p.p.Stop() })
	return p.err
}

// pyroscopeLogger demotes the profiler's chatty info lines to debug
type pyroscopeLogger struct{ s *zap.SugaredLogger }

func (l pyroscopeLogger) Infof(format string, args ...any)  { l.s.Debugf(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

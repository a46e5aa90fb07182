package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// validate reports every problem at once
func (c *Config) validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	db := c.Database
	check(db.MaxOpenConns > 0, "database.max_open_conns must be positive")
	check(db.MaxIdleConns >= 0, "database.max_idle_conns cannot be negative")
	check(db.MaxIdleConns <= db.MaxOpenConns,
		"database.max_idle_conns (%d) cannot exceed database.max_open_conns (%d)", db.MaxIdleConns, db.MaxOpenConns)

	switch c.Storage.Driver {
	case "local":
	case "s3":
		check(c.Storage.Bucket != "", "storage.bucket is required when storage.driver is s3")
	default:
		check(false, "storage.driver must be s3 or local, got %q", c.Storage.Driver)
	}

	check(slices.Contains([]string{"strict", "lax", "none"}, c.Cookie.SameSite),
		"cookie.same_site must be strict, lax or none, got %q", c.Cookie.SameSite)
	check(c.Cookie.SameSite != "none" || c.Cookie.Secure, "cookie.same_site=none requires cookie.secure=true")

	tel := c.Telemetry
	check(tel.SamplingRatio >= 0 && tel.SamplingRatio <= 1,
		"telemetry.sampling_ratio must be between 0 and 1, got %g", tel.SamplingRatio)
	check(!tel.ProfilingEnabled || tel.PyroscopeAddress != "",
		"telemetry.pyroscope_address is required when profiling is enabled")
	check(!tel.MetricsEnabled || tel.MetricsInterval >= time.Second,
		"telemetry.metrics_interval must be at least 1s, got %s", tel.MetricsInterval)

	if c.IsProduction() {
		check(len(c.JWT.Secret) >= 32, "jwt.secret must be at least 32 characters in production")
		check(db.Password != "", "database.password is required in production")
		check(db.SSLMode != "disable", "database.sslmode cannot be disable in production")
		check(c.Cookie.Secure, "cookie.secure must be true in production")
		check(!slices.Contains(c.HTTP.CORSAllowOrigins, "*"), "http.cors_allow_origins cannot contain * in production")
		check(!c.Swagger.Enabled || c.Swagger.RequireAuth || len(c.Swagger.AllowedIPs) > 0,
			"swagger must be disabled, authenticated or IP restricted in production")
		check(!tel.DBLogFullSQL, "telemetry.db_log_full_sql must be false in production")
		check(c.Admin.BootstrapPassword == "" || len(c.Admin.BootstrapPassword) >= 12,
			"admin.bootstrap_password must be at least 12 characters in production")
	}

	return errors.Join(errs...)
}

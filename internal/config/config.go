// Package config defines the configuration of the catalog service.
package config

import (
	"strings"

	"github.com/abgdnv/gocatalog/internal/platform/config"
	"github.com/abgdnv/gocatalog/internal/platform/config/configloader"
)

// ServiceName prefixes environment variables (CATALOG_SERVER_PORT) and names the service in
// logs, metrics and traces.
const ServiceName = "catalog"

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig       `koanf:"server"`
	Log        config.LogConfig        `koanf:"log"`
	PProf      config.PProfConfig      `koanf:"pprof"`
	GRPC       config.GrpcServerConfig `koanf:"grpc"`
	Metrics    config.MetricsConfig    `koanf:"metrics"`
	Telemetry  config.TelemetryConfig  `koanf:"telemetry"`
	Shutdown   config.ShutdownConfig   `koanf:"shutdown"`
}

// Defaults lets the service start without a config file.
func Defaults() map[string]any {
	return map[string]any{
		"server.port":                        8080,
		"server.maxheaderbytes":              1 << 20,
		"server.timeout.read":                "10s",
		"server.timeout.write":               "10s",
		"server.timeout.idle":                "60s",
		"server.timeout.readheader":          "5s",
		"log.level":                          "info",
		"pprof.enabled":                      false,
		"pprof.addr":                         "localhost:6060",
		"grpc.enabled":                       true,
		"grpc.port":                          "9090",
		"grpc.reflection":                    false,
		"metrics.enabled":                    true,
		"metrics.path":                       "/metrics",
		"telemetry.enabled":                  false,
		"telemetry.traces.otlphttp.endpoint": "localhost:4318",
		"telemetry.traces.otlphttp.insecure": true,
		"telemetry.traces.otlphttp.timeout":  "5s",
		"shutdown.timeout":                   "30s",
	}
}

// Load reads the catalog configuration from defaults, config.yaml, .env and CATALOG_* variables.
func Load() (*Config, error) {
	return configloader.Load[*Config](ServiceName, Defaults())
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.GRPC.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Metrics.String())
	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Shutdown.String())
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.HTTPServer.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.PProf.Validate(); err != nil {
		return err
	}
	if err := c.GRPC.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.Telemetry.Validate(); err != nil {
		return err
	}
	if err := c.Shutdown.Validate(); err != nil {
		return err
	}
	return nil
}

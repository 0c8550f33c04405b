package config

import (
	"flag"

	"go.uber.org/zap"
)

// ServerConfig holds the configuration settings for the catalog service.
type ServerConfig struct {
	Addr         string // Listen address
	OtelEndpoint string // OTLP trace collector endpoint, empty disables tracing
	Logger       *zap.SugaredLogger
}

// NewServerConfig creates and returns a new ServerConfig by parsing flags and
// environment variables. Environment variables win over flags.
func NewServerConfig() *ServerConfig {
	cfg := &ServerConfig{}
	flag.StringVar(&cfg.Addr, "a", "localhost:5060", "HTTP server address")
	flag.StringVar(&cfg.OtelEndpoint, "otel", "", "OTLP trace endpoint (host:port), empty disables span export")
	flag.Parse()

	readServerEnvironment(cfg)

	cfg.Logger = newLogger("server.log")

	return cfg
}

func readServerEnvironment(cfg *ServerConfig) {
	envString("ADDRESS", &cfg.Addr)
	envString("OTEL_EXPORTER_OTLP_ENDPOINT", &cfg.OtelEndpoint)
}

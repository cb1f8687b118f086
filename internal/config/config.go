// Package config loads server configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// Environment is the deployment environment name (development, production).
	Environment string

	// OTLPEndpoint is the OpenTelemetry collector gRPC endpoint.
	OTLPEndpoint string

	// TelemetryEnabled controls whether traces and metrics are exported.
	TelemetryEnabled bool
}

// Load reads configuration from a .env file (if present) and the process
// environment. Environment variables take precedence over .env entries.
func Load() Config {
	// Missing .env is fine; containers set the environment directly
	_ = godotenv.Load()

	return Config{
		Port:             getEnv("APP_PORT", "8080"),
		Environment:      getEnv("APP_ENV", "development"),
		OTLPEndpoint:     getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		TelemetryEnabled: os.Getenv("OTEL_ENABLED") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"
	"strings"
)

type Config struct {
	GRPCPort     string
	RedisAddr    string
	OtelEndpoint string
	Env          string // "local" ou "prod"
}

func Load() Config {
	return Config{
		GRPCPort:     getEnv("GRPC_PORT", "50055"),
		RedisAddr:    getEnv("REDIS_ADDR", "redis:6379"),
		OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "jaeger:4317"),
		Env:          getEnv("APP_ENV", "local"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

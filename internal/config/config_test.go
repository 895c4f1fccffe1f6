package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"OTEL_SERVICE_NAME", "ENVIRONMENT", "LOG_LEVEL", "HTTP_PORT",
		"STORAGE_BACKEND", "DATA_DIR", "KAFKA_BROKERS", "JAEGER_ENDPOINT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "storefront", cfg.ServiceName)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "http://localhost:14268/api/traces", cfg.JaegerEndpoint)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STORAGE_BACKEND", BackendRedis)
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("JAEGER_ENDPOINT", "http://jaeger:14268/api/traces")

	cfg := Load()

	assert.Equal(t, "production", cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "http://jaeger:14268/api/traces", cfg.JaegerEndpoint)
}

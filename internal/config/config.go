package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backend names
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config holds the storefront service configuration
type Config struct {
	ServiceName    string
	Environment    string
	LogLevel       string
	HTTPPort       string
	StorageBackend string
	DataDir        string
	RedisAddr      string
	RedisPassword  string
	KafkaBrokers   []string
	JaegerEndpoint string
}

// Load reads configuration from the environment, with an optional .env file
func Load() Config {
	// Missing .env is fine, environment variables still apply
	_ = godotenv.Load()

	return Config{
		ServiceName:    getenv("OTEL_SERVICE_NAME", "storefront"),
		Environment:    getenv("ENVIRONMENT", "development"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		HTTPPort:       getenv("HTTP_PORT", "8080"),
		StorageBackend: getenv("STORAGE_BACKEND", BackendFile),
		DataDir:        getenv("DATA_DIR", "./data"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getenv("REDIS_PASSWORD", ""),
		KafkaBrokers:   splitCSV(getenv("KAFKA_BROKERS", "")),
		JaegerEndpoint: getenv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
	}
}

// IsDevelopment reports whether the service runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

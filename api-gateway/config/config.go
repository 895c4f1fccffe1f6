package config

import (
	"os"
	"time"
)

// ServiceConfig holds configuration for the backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port       string
	Storefront ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Storefront: ServiceConfig{
			Name:        "storefront",
			BaseURL:     getEnv("STOREFRONT_SERVICE_URL", "http://localhost:8080"),
			Timeout:     30 * time.Second,
			HealthCheck: "/health",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

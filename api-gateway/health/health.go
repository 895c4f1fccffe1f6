package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/crismov/storefront/api-gateway/config"
)

// ServiceHealth represents the health status of the storefront service
type ServiceHealth struct {
	Name      string        `json:"name"`
	Status    string        `json:"status"` // healthy, unhealthy
	URL       string        `json:"url"`
	Latency   time.Duration `json:"latency_ms"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// GatewayHealth represents the overall gateway health
type GatewayHealth struct {
	Gateway    string        `json:"gateway"`
	Status     string        `json:"status"`
	Storefront ServiceHealth `json:"storefront"`
	Uptime     float64       `json:"uptime_seconds"`
}

// HealthChecker checks health of the storefront service
type HealthChecker struct {
	config    *config.GatewayConfig
	client    *http.Client
	startTime time.Time
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(cfg *config.GatewayConfig) *HealthChecker {
	return &HealthChecker{
		config: cfg,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		startTime: time.Now(),
	}
}

// CheckStorefront probes the storefront health endpoint
func (h *HealthChecker) CheckStorefront(ctx context.Context) ServiceHealth {
	svc := h.config.Storefront
	start := time.Now()

	result := ServiceHealth{
		Name:      svc.Name,
		URL:       svc.BaseURL,
		Timestamp: time.Now(),
	}

	req, err := http.NewRequestWithContext(ctx, "GET", svc.BaseURL+svc.HealthCheck, nil)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to create request: %v", err)
		result.Latency = time.Since(start)
		return result
	}

	resp, err := h.client.Do(req)
	if err != nil {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Failed to reach service: %v", err)
		result.Latency = time.Since(start)
		return result
	}
	defer resp.Body.Close()

	result.Latency = time.Since(start)

	if resp.StatusCode == http.StatusOK {
		result.Status = "healthy"
	} else {
		result.Status = "unhealthy"
		result.Error = fmt.Sprintf("Unexpected status code: %d", resp.StatusCode)
	}

	return result
}

// Check reports the gateway health including the storefront upstream
func (h *HealthChecker) Check(ctx context.Context) GatewayHealth {
	storefront := h.CheckStorefront(ctx)

	status := "healthy"
	if storefront.Status != "healthy" {
		status = "unhealthy"
	}

	return GatewayHealth{
		Gateway:    "api-gateway",
		Status:     status,
		Storefront: storefront,
		Uptime:     time.Since(h.startTime).Seconds(),
	}
}

// QuickCheck performs a health check of the gateway itself only
func (h *HealthChecker) QuickCheck() map[string]interface{} {
	return map[string]interface{}{
		"status":    "healthy",
		"gateway":   "api-gateway",
		"uptime":    time.Since(h.startTime).Seconds(),
		"timestamp": time.Now(),
	}
}

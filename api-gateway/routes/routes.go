package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crismov/storefront/api-gateway/config"
	"github.com/crismov/storefront/api-gateway/health"
	"github.com/crismov/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	Description string
}

// Routes holds all storefront route prefixes exposed through the gateway
var Routes = []RouteDefinition{
	{Prefix: "/products", Description: "Catalog and search endpoints"},
	{Prefix: "/categories", Description: "Category endpoints"},
	{Prefix: "/cart", Description: "Shopping cart endpoints"},
	{Prefix: "/favorites", Description: "Favorites endpoints"},
	{Prefix: "/reviews", Description: "Review endpoints"},
	{Prefix: "/auth", Description: "Authentication endpoints (login, register, me, logout)"},
	{Prefix: "/orders", Description: "Order endpoints"},
	{Prefix: "/checkout", Description: "Checkout endpoint"},
	{Prefix: "/profile", Description: "User profile endpoints"},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream probe)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks the storefront upstream)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.Check(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	handler := func(c *fiber.Ctx) error {
		return reverseProxy.ProxyRequest(c)
	}

	for _, route := range Routes {
		group := app.Group(route.Prefix)
		group.All("/*", handler)
		app.All(route.Prefix, handler)
	}
}

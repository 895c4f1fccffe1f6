package main

// @title Storefront API
// @version 1.0
// @description Storefront state service: catalog, cart, favorites, reviews, orders and mock authentication with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/crismov/storefront
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Catalog
// @tag.description Product and category endpoints

// @tag.name Search
// @tag.description Product search and filtering

// @tag.name Cart
// @tag.description Shopping cart endpoints

// @tag.name Favorites
// @tag.description Favorites endpoints

// @tag.name Reviews
// @tag.description Product review endpoints

// @tag.name Auth
// @tag.description Mock authentication endpoints

// @tag.name Orders
// @tag.description Order and checkout endpoints

// @tag.name Health
// @tag.description Health check endpoints

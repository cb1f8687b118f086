// Package api provides the HTTP API for JewGo.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jewgo/jewgo/internal/api/handler"
	"github.com/jewgo/jewgo/internal/api/middleware"
	"github.com/jewgo/jewgo/internal/restaurant"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version           string
	BuildTime         string
	Logger            zerolog.Logger
	ServiceName       string
	Metrics           *middleware.Metrics
	RestaurantService *restaurant.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "jewgo-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.RestaurantService)
	restaurantHandler := handler.NewRestaurantHandler(cfg.RestaurantService)
	metadataHandler := handler.NewMetadataHandler()

	// Create rate limit middleware for different endpoint categories
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min
	statusRateLimit := middleware.RateLimitByIP(middleware.StatusRateLimit)     // 300 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// Metadata endpoints (public) - standard rate limiting
		r.Route("/metadata", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/enums", metadataHandler.GetEnums)
		})

		// Restaurant directory endpoints
		r.Route("/restaurants", func(r chi.Router) {
			r.With(standardRateLimit).Get("/", restaurantHandler.ListRestaurants)

			r.Route("/{restaurantId}", func(r chi.Router) {
				r.With(standardRateLimit).Get("/", restaurantHandler.GetRestaurant)

				// Status endpoints are hit on every card render, so they
				// carry a higher limit
				r.Route("/hours", func(r chi.Router) {
					r.Use(statusRateLimit)
					r.Get("/status", restaurantHandler.GetHoursStatus)
					r.Get("/week", restaurantHandler.GetWeeklyHours)
				})
			})
		})
	})

	return r
}

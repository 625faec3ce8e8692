package router

import (
	"laptop-inventory-api/internal/config"
	"laptop-inventory-api/internal/handler"
	"laptop-inventory-api/internal/middleware"

	"github.com/gorilla/mux"
)

// NewRouter creates a new router and sets up the routes with security middleware.
// The paths match the original API surface consumed by the existing frontend.
func NewRouter(h handler.AssetHandlerInterface, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	// Initialize security middleware
	securityMW := middleware.NewSecurityMiddleware(&cfg.Security)

	// Apply global middleware in order
	r.Use(securityMW.SecurityHeaders)
	r.Use(securityMW.CORS)
	r.Use(securityMW.TrustedProxy)
	r.Use(securityMW.RateLimit)
	r.Use(securityMW.RequestTimeout)

	api := r.PathPrefix("/api").Subrouter()

	// Asset registration and lookup
	api.HandleFunc("/LaptopDetails", h.RegisterLaptopHandler).Methods("POST", "OPTIONS")
	api.HandleFunc("/laptop/{assetId}", h.GetLaptopHandler).Methods("GET", "OPTIONS")

	// Health check
	api.HandleFunc("/health", h.HealthHandler).Methods("GET")

	return r
}

package handler

import (
	"net/http"
)

// AssetHandlerInterface defines the contract for asset HTTP handlers.
// This interface enables easy testing, mocking, and dependency injection.
type AssetHandlerInterface interface {
	// Asset operations
	RegisterLaptopHandler(w http.ResponseWriter, r *http.Request)
	GetLaptopHandler(w http.ResponseWriter, r *http.Request)

	// Health and monitoring
	HealthHandler(w http.ResponseWriter, r *http.Request)
}

// Ensure AssetHandler implements AssetHandlerInterface at compile time
var _ AssetHandlerInterface = (*AssetHandler)(nil)

package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"laptop-inventory-api/internal/model"
	"laptop-inventory-api/internal/notification"
	"laptop-inventory-api/internal/repository"
	"laptop-inventory-api/internal/warranty"
	"laptop-inventory-api/pkg/validation"

	"github.com/gorilla/mux"
)

// Constants for timeouts
const (
	DefaultTimeout      = 10 * time.Second
	NotificationTimeout = 5 * time.Second
)

// Error response structure for consistent JSON error responses
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Success response structure for consistent JSON success responses
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// AssetHandler handles the HTTP requests for laptop assets.
type AssetHandler struct {
	Repo     repository.AssetRepository
	Notifier notification.Notifier
	Logger   *log.Logger

	// Helper components for cleaner code organization
	ErrorHandler   *ErrorHandler
	ResponseHelper *ResponseHelper
}

// NewAssetHandler creates a new AssetHandler with dependencies and helpers.
// The notifier may be nil, in which case registration events are not published.
func NewAssetHandler(repo repository.AssetRepository, notifier notification.Notifier, logger *log.Logger) *AssetHandler {
	if logger == nil {
		logger = log.Default()
	}

	return &AssetHandler{
		Repo:           repo,
		Notifier:       notifier,
		Logger:         logger,
		ErrorHandler:   NewErrorHandler(logger),
		ResponseHelper: NewResponseHelper(),
	}
}

// RegisterLaptopHandler handles the registration of a new laptop asset.
// It validates the payload, computes the warranty expiry date and writes the
// laptop and device rows in a single transaction.
func (h *AssetHandler) RegisterLaptopHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var reg model.LaptopRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	// Presence validation only; type checks happen when the record is built
	if validationErrors := validation.ValidateRegistration(&reg); len(validationErrors) > 0 {
		errorMap := make(map[string]string)
		for i, err := range validationErrors {
			errorMap[fmt.Sprintf("error_%d", i)] = err
		}
		h.ErrorHandler.HandleValidationErrors(w, errorMap)
		return
	}

	record, err := model.NewLaptopRecord(reg)
	if err != nil {
		h.ErrorHandler.SendErrorResponse(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR", nil)
		return
	}

	record.WarrentyExpieryDate = warranty.ExpiryDate(record.PurchaseDate, record.WarentyMonths)

	if err := h.Repo.RegisterAsset(ctx, *record); err != nil {
		h.ErrorHandler.HandleRegistrationError(w, err)
		return
	}

	// Async notification (non-blocking)
	if h.Notifier != nil {
		go h.notifyRegistered(*record)
	}

	successData := h.ResponseHelper.CreateAssetSuccessData(record.AssetID, record.LaptopID)
	h.ErrorHandler.SendSuccessResponse(w, http.StatusCreated, "Device added successfully to both tables", successData)
}

// GetLaptopHandler handles the retrieval of a laptop record by asset ID.
func (h *AssetHandler) GetLaptopHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	vars := mux.Vars(r)
	assetID := vars["assetId"]
	if assetID == "" {
		h.ErrorHandler.SendErrorResponse(w, http.StatusBadRequest, "Asset ID is required", "VALIDATION_ERROR", nil)
		return
	}

	laptop, err := h.Repo.GetLaptopByAssetID(ctx, assetID)
	if err != nil {
		h.ErrorHandler.HandleLookupError(w, err)
		return
	}

	h.ErrorHandler.SendJSONResponse(w, http.StatusOK, laptop)
}

// notifyRegistered publishes a registration event to the configured webhook.
// Failures are logged and never affect the HTTP response.
func (h *AssetHandler) notifyRegistered(record model.LaptopRecord) {
	event := notification.RegistrationEvent{
		AssetID:             record.AssetID,
		LaptopID:            record.LaptopID,
		SerialNumber:        record.SerialNumber,
		Model:               record.Model,
		DeviceBrand:         record.DeviceBrand,
		WarrentyExpieryDate: record.WarrentyExpieryDate.String(),
	}

	if err := h.Notifier.NotifyRegistration(event); err != nil {
		h.Logger.Printf("Failed to send registration notification for asset %s: %v", record.AssetID, err)
		return
	}
	h.Logger.Printf("Registration notification sent for asset %s", record.AssetID)
}

// HealthHandler provides a health check endpoint
func (h *AssetHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	healthData := h.ResponseHelper.CreateHealthCheckData()
	h.ErrorHandler.SendSuccessResponse(w, http.StatusOK, "Service is healthy", healthData)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"laptop-inventory-api/internal/repository"
)

// ErrorHandler provides centralized error handling functionality for handlers
type ErrorHandler struct {
	Logger *log.Logger
}

// NewErrorHandler creates a new ErrorHandler instance
func NewErrorHandler(logger *log.Logger) *ErrorHandler {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorHandler{
		Logger: logger,
	}
}

// SendErrorResponse sends a structured error response
func (e *ErrorHandler) SendErrorResponse(w http.ResponseWriter, statusCode int, message, code string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		e.Logger.Printf("Failed to encode error response: %v", err)
	}
}

// SendSuccessResponse sends a structured success response
func (e *ErrorHandler) SendSuccessResponse(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := SuccessResponse{
		Message: message,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		e.Logger.Printf("Failed to encode success response: %v", err)
	}
}

// SendJSONResponse sends a generic JSON response
func (e *ErrorHandler) SendJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		e.Logger.Printf("Failed to encode JSON response: %v", err)
	}
}

// HandleRegistrationError maps registration write failures to HTTP responses.
// The underlying message is surfaced to the caller: a rolled-back transaction
// and a connection that never produced one are both server errors, but the
// rollback path carries the insert failure detail.
func (e *ErrorHandler) HandleRegistrationError(w http.ResponseWriter, err error) {
	e.Logger.Printf("Registration error: %v", err)

	switch {
	case errors.Is(err, repository.ErrTransactionStart):
		e.SendErrorResponse(w, http.StatusInternalServerError, "Server error: "+err.Error(), "CONNECTION_ERROR", nil)
	case errors.Is(err, context.DeadlineExceeded):
		e.SendErrorResponse(w, http.StatusRequestTimeout, "Operation timed out", "TIMEOUT", nil)
	default:
		e.SendErrorResponse(w, http.StatusInternalServerError, "Error inserting data: "+err.Error(), "TRANSACTION_ERROR", nil)
	}
}

// HandleLookupError maps lookup failures to HTTP responses. A missing record
// is a defined outcome (404), not a failure.
func (e *ErrorHandler) HandleLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrLaptopNotFound):
		e.SendErrorResponse(w, http.StatusNotFound, "Laptop not found", "LAPTOP_NOT_FOUND", nil)
	case errors.Is(err, context.DeadlineExceeded):
		e.Logger.Printf("Lookup error: %v", err)
		e.SendErrorResponse(w, http.StatusRequestTimeout, "Operation timed out", "TIMEOUT", nil)
	default:
		e.Logger.Printf("Lookup error: %v", err)
		e.SendErrorResponse(w, http.StatusInternalServerError, "Server error: "+err.Error(), "QUERY_ERROR", nil)
	}
}

// HandleValidationErrors handles validation errors and sends appropriate response
func (e *ErrorHandler) HandleValidationErrors(w http.ResponseWriter, validationErrors map[string]string) {
	if len(validationErrors) > 0 {
		e.SendErrorResponse(w, http.StatusBadRequest, "All required fields must be provided", "VALIDATION_ERROR", validationErrors)
	}
}

// HandleJSONDecodeError handles JSON decoding errors
func (e *ErrorHandler) HandleJSONDecodeError(w http.ResponseWriter, err error) {
	e.Logger.Printf("JSON decode error: %v", err)
	e.SendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", "INVALID_JSON", nil)
}

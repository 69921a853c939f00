package errors

import (
	"encoding/json"
	"net/http"

	"github.com/docsmith/go-docgen-api/internal/logger"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "validation_error"
	ErrorTypeProvider      ErrorType = "provider_error"
	ErrorTypeInternal      ErrorType = "internal_error"
	ErrorTypeConfiguration ErrorType = "configuration_error"
)

// APIError represents a structured API error
type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// ErrorResponse is the JSON error body this API exposes: a flat error string
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAPIError creates a new APIError
func NewAPIError(errorType ErrorType, message string) *APIError {
	return &APIError{
		Type:    errorType,
		Message: message,
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *APIError {
	return NewAPIError(ErrorTypeValidation, message)
}

// NewProviderError creates an error for a failed provider call
func NewProviderError(message string) *APIError {
	return NewAPIError(ErrorTypeProvider, message)
}

// NewInternalError creates an internal error
func NewInternalError(message string) *APIError {
	return NewAPIError(ErrorTypeInternal, message)
}

// NewConfigurationError creates a configuration error
func NewConfigurationError(message string) *APIError {
	return NewAPIError(ErrorTypeConfiguration, message)
}

// StatusCode maps the error type to its HTTP status
func (e *APIError) StatusCode() int {
	switch e.Type {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes the standardized error response to the HTTP response writer
func HandleError(w http.ResponseWriter, err error, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	var apiError *APIError
	if ae, ok := err.(*APIError); ok {
		apiError = ae
	} else {
		apiError = inferErrorType(err, statusCode)
	}

	response := ErrorResponse{Error: apiError.Message}

	if jsonBytes, jsonErr := json.Marshal(response); jsonErr == nil {
		_, _ = w.Write(jsonBytes)
	} else {
		logger.Error("Error marshaling error response", "error", jsonErr)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
	}

	logger.Error("API error",
		"status_code", statusCode,
		"error_type", string(apiError.Type),
		"message", apiError.Message,
	)
}

// inferErrorType infers the error type from the status code for plain errors
func inferErrorType(err error, statusCode int) *APIError {
	message := err.Error()

	switch statusCode {
	case http.StatusBadRequest:
		return NewValidationError(message)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return NewProviderError(message)
	default:
		return NewInternalError(message)
	}
}

package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/planning-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeTooLarge indicates an oversized upload.
	ErrCodeTooLarge = "payload_too_large"
	// ErrCodeUnavailable indicates plan storage is disabled or failing.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-03-02T08:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Invalid value for this field"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-03-02T08:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// CalculationResponse is a recalculated plan line.
// @Description Recalculated plan line
type CalculationResponse struct {
	Plan model.Plan `json:"plan"`
	// Direction is the figure the calculation was driven from
	Direction string `json:"direction" example:"meters"`
	// Valid is false when the line was zeroed for lack of a usable cut
	Valid bool `json:"valid" example:"true"`
	// Adjusted is true when the edited figure was lowered to whole cycles
	Adjusted bool `json:"adjusted" example:"true"`
} // @name CalculationResponse

// PlanListResponse is a page of plan lines.
// @Description Plan lines sorted by day and order
type PlanListResponse struct {
	Plans []model.Plan `json:"plans"`
	Count int          `json:"count" example:"12"`
} // @name PlanListResponse

// ImportResponse is the outcome of a spreadsheet import.
// @Description Spreadsheet import outcome
type ImportResponse struct {
	BatchID    string       `json:"batch_id" example:"4f1c1a7e-3a4b-4c8e-9d2f-0b6a5e7c8d90"`
	Plans      []model.Plan `json:"plans"`
	Imported   int          `json:"imported" example:"10"`
	Unresolved int          `json:"unresolved" example:"1"`
	Skipped    int          `json:"skipped" example:"1"`
	Warnings   []string     `json:"warnings,omitempty"`
	// Saved reports whether the lines were persisted
	Saved bool `json:"saved"`
} // @name ImportResponse

// PlanHistoryResponse is a page of a plan's audit trail, newest first.
// @Description Recorded changes of a plan line
type PlanHistoryResponse struct {
	Entries []model.LogEntry `json:"entries"`
	Total   int64            `json:"total" example:"7"`
} // @name PlanHistoryResponse

// MessageResponse carries a translated confirmation.
// @Description Confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Plan deleted"`
	ID      string `json:"id,omitempty" example:"65f1c2a9e13b4a0012345678"`
} // @name MessageResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusRequestEntityTooLarge:
		return ErrCodeTooLarge
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

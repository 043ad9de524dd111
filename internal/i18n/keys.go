package i18n

// Error message keys shared by the middleware.
const (
	ErrKeyInvalidRequest      = "error.invalid_request"
	ErrKeyInvalidRequestBody  = "error.invalid_request_body"
	ErrKeyInternalError       = "error.internal_error"
	ErrKeyAPIKeyRequired      = "error.api_key_required"
	ErrKeyInvalidAPIKey       = "error.invalid_api_key"
	ErrKeyNotFound            = "error.not_found"
	ErrKeyRateLimitExceeded   = "error.rate_limit_exceeded"
	ErrKeyInvalidToken        = "error.invalid_token"
	ErrKeyTokenRequired       = "error.token_required"
	ErrKeyTimeout             = "error.timeout"
	ErrKeyIdempotencyMismatch = "error.idempotency_mismatch"
	// ErrKeyServiceUnavailable covers disabled plan storage and open circuits.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Error message keys of the plan and catalog endpoints.
const (
	ErrKeyPlanNotFound   = "error.plan_not_found"
	ErrKeyEntityNotFound = "error.entity_not_found"
	ErrKeyUnknownField   = "error.unknown_field"
	ErrKeyInvalidValue   = "error.invalid_value"
	ErrKeyInvalidID      = "error.invalid_id"
	ErrKeyInvalidDate    = "error.invalid_date"
	ErrKeyImportFile     = "error.import_file"
	ErrKeyImportTooLarge = "error.import_too_large"
)

// Success message keys.
const (
	SuccessKeyPlanSaved   = "success.plan_saved"
	SuccessKeyPlanDeleted = "success.plan_deleted"
)

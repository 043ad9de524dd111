package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/guttosm/planning-service/internal/circuitbreaker"
	"github.com/guttosm/planning-service/internal/domain/dto"
	"github.com/guttosm/planning-service/internal/i18n"
	"github.com/guttosm/planning-service/internal/importer"
	"github.com/guttosm/planning-service/internal/service"
)

// statusOf maps an error from the planning layer to an HTTP status and the
// message key shown to the operator.
func statusOf(err error) (int, string) {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, validationKey(verr)
	case errors.Is(err, service.ErrPlanNotFound):
		return http.StatusNotFound, i18n.ErrKeyPlanNotFound
	case errors.Is(err, service.ErrEntityNotFound):
		return http.StatusNotFound, i18n.ErrKeyEntityNotFound
	case errors.Is(err, service.ErrUnknownField):
		return http.StatusBadRequest, i18n.ErrKeyUnknownField
	case errors.Is(err, service.ErrInvalidValue):
		return http.StatusBadRequest, i18n.ErrKeyInvalidValue
	case errors.Is(err, importer.ErrInvalidWorkbook):
		return http.StatusBadRequest, i18n.ErrKeyImportFile
	case errors.Is(err, service.ErrRepositoryNotConfigured), errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, i18n.ErrKeyTimeout
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}

func validationKey(err *dto.ValidationError) string {
	switch err.Field {
	case "ref", "machine_id", "material_id", "id":
		return i18n.ErrKeyInvalidID
	case "date", "from", "to":
		return i18n.ErrKeyInvalidDate
	case "number", "limit", "skip":
		return i18n.ErrKeyInvalidValue
	default:
		return i18n.ErrKeyInvalidRequest
	}
}

// Fail sends the error response matching err.
func (b *ResponseBuilder) Fail(err error) {
	status, key := statusOf(err)
	b.Error(status, key, err)
}

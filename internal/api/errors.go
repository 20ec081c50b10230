package api

import (
	"errors"
	"net/http"

	"fieldtrack/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes. Access
// denial never appears here: the services collapse it into NotFound before
// the error reaches the transport.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var unauthorized *domain.UnauthorizedError
	var validation *domain.ValidationError
	var invalidRef *domain.InvalidReferenceError
	var invalidRange *domain.InvalidTimeRangeError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &validation), errors.As(err, &invalidRef), errors.As(err, &invalidRange):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

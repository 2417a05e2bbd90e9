package httpadapter

import (
	"net/http"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrEmptyQuery),
		domain.IsKind(err, domain.ErrQueryTooLong),
		domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrQuotaExhausted):
		return http.StatusTooManyRequests
	case domain.IsKind(err, domain.ErrSubmissionInFlight):
		return http.StatusConflict
	case domain.IsKind(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

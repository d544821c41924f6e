package http

import (
	"errors"
	"net/http"

	"github.com/dmarrero/jobtrack/internal/adapter"
	"github.com/dmarrero/jobtrack/internal/logger"
	"github.com/dmarrero/jobtrack/internal/service"
	"github.com/dmarrero/jobtrack/internal/store"
	"github.com/dmarrero/jobtrack/internal/utils"
	"github.com/dmarrero/jobtrack/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidJobStatus:    http.StatusBadRequest,
	service.ErrInvalidTriageAnswer: http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNoActiveSession:         http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusUnauthorized,

	adapter.ErrSearchUnavailable: http.StatusBadGateway,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrJobNotFound:           http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes a JSON error body.
// Internal failures are masked with the generic status text so that storage
// details never reach the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	log.Err(err).Int("status", status).Msg("request failed")
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}

// writeValidationError writes the per-field messages of a validation
// rejection as a 400 with an {errors: {field: message}} body. Failed logins
// go through here too, carrying the same generic field map.
func (h *Handler) writeValidationError(w http.ResponseWriter, r *http.Request, validationErr *service.ValidationError) {
	log := logger.FromRequest(r)

	log.Info().Any("fields", validationErr.Fields).Msg("request rejected by validation")
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Errors: validationErr.Fields}, http.StatusBadRequest)
}

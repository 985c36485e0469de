package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/internal/store"
	"github.com/MKhiriev/go-trips/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidDate:             http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	// duplicate email stays a plain 400 for API compatibility
	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusUnauthorized,
	store.ErrTripNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes the JSON error body {"error": message}.
func writeError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	if _, err := utils.WriteError(w, message, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write error response")
	}
}

// writeJSON writes data as the JSON response body.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, statusCode int) {
	if _, err := utils.WriteJSON(w, data, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}

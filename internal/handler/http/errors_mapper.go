package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrWrongPassword:  http.StatusUnauthorized,
	service.ErrNotCourseOwner: http.StatusForbidden,

	store.ErrUserNotFound:   http.StatusUnauthorized,
	store.ErrCourseNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrWrongPassword:  msgPasswordMismatch,
	service.ErrNotCourseOwner: msgNotCourseOwner,

	store.ErrUserNotFound:   msgNoUserFound,
	store.ErrCourseNotFound: msgCourseNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError translates a service or store error into an HTTP response.
//
// A *service.ValidationError becomes 400 with the full ordered list of
// violation messages. Classified errors get their mapped status and a single
// consistent error key. Everything else collapses to a bare 500 so that no
// internal detail leaks to the caller.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		log.Err(err).Msg("validation failed")
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: validationErr.Messages}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	message := http.StatusText(status)
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			message = msg
			break
		}
	}

	log.Err(err).Int("status", status).Msg(message)
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/blood-press-log/internal/adapter"
	"github.com/MKhiriev/blood-press-log/internal/service"
	"github.com/MKhiriev/blood-press-log/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:          http.StatusBadRequest,
	service.ErrPrimaryMeasurementIncomplete: http.StatusBadRequest,
	service.ErrInvalidCredentials:           http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	adapter.ErrRecognitionFailed: http.StatusInternalServerError,
	adapter.ErrEmptyCompletion:   http.StatusInternalServerError,
	adapter.ErrMalformedReply:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/blended-mgmt/internal/app"
	"github.com/MKhiriev/blended-mgmt/internal/service"
	"github.com/MKhiriev/blended-mgmt/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrBundleNotFound:        http.StatusNotFound,
	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	store.ErrBundleNotFound:    http.StatusNotFound,
	store.ErrNoBundlesProvided: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
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

func messageFromStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return app.MsgBundleNotFound
	case http.StatusBadRequest:
		return app.MsgInvalidBundleID
	default:
		return app.MsgInternalServerError
	}
}

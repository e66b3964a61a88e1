package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{errInvalidJSON, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrNoDomainSupplied, errorResponse{http.StatusBadRequest, app.MsgNoDomainSupplied}},
	{service.ErrInvalidDomain, errorResponse{http.StatusBadRequest, app.MsgInvalidDomain}},
	{service.ErrInvalidPayload, errorResponse{http.StatusBadRequest, app.MsgInvalidPayload}},
	{service.ErrInvalidField, errorResponse{http.StatusBadRequest, app.MsgInvalidField}},
	{service.ErrInvalidPatch, errorResponse{http.StatusBadRequest, app.MsgInvalidPatch}},
	{service.ErrInvalidResetScope, errorResponse{http.StatusBadRequest, app.MsgInvalidResetScope}},

	{store.ErrConfigNotFound, errorResponse{http.StatusNotFound, app.MsgNotFound}},

	{store.ErrStorageClosed, errorResponse{http.StatusServiceUnavailable, app.MsgInternalServerError}},
	{store.ErrBuildingSQLQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingQuery, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrExecutingStatement, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRow, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
	{store.ErrScanningRows, errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

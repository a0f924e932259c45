package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/internal/service"
	"github.com/MKhiriev/go-pattern-keeper/internal/store"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	status int
	msg    string
}{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{app.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNoAccountID, http.StatusUnauthorized, app.MsgNoAccountIDProvided},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{app.ErrNotFound, http.StatusNotFound, app.MsgDocumentNotFound},
	{store.ErrDocumentAlreadyExists, http.StatusConflict, "document already exists"},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

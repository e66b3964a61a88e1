// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/app"
)

// saveErrorMessage builds the notice of a failed save: the server message
// when the server answered, a connection message when it did not.
func saveErrorMessage(err error) string {
	var serverErr *adapter.ServerError
	switch {
	case errors.As(err, &serverErr):
		msg := serverErr.Message
		if msg == "" {
			msg = app.MsgSaveFallback
		}
		return app.MsgSaveErrorPrefix + msg
	case errors.Is(err, adapter.ErrMalformedResponse):
		return app.MsgSaveErrorPrefix + app.MsgSaveFallback
	default:
		return app.MsgConnectionError
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/service"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var transportErr *adapter.TransportError
	if errors.As(err, &transportErr) {
		return app.MsgConnectionError
	}
	if errors.Is(err, service.ErrSaveInProgress) {
		return "Guardado en curso, espere"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return app.MsgConnectionError
	}

	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/internal/store"
	"github.com/MKhiriev/go-admin-config/models"
)

func serve(h *Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// GET /api/admin/configuracion
// ─────────────────────────────────────────────

func TestGetConfig(t *testing.T) {
	h := newTestHandler(&mockConfigService{
		getFn: func(context.Context) (models.GlobalConfig, error) {
			return models.GlobalConfig{IDCardConfig: json.RawMessage(`{"qrDiasExpiracion":7}`)}, nil
		},
	})

	rr := serve(h, http.MethodGet, configPath, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"idCardConfig":{"qrDiasExpiracion":7}}}`, rr.Body.String())
}

func TestGetConfig_Empty(t *testing.T) {
	rr := serve(newTestHandler(nil), http.MethodGet, configPath, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"data":{}}`, rr.Body.String())
}

func TestGetConfig_StoreFailure(t *testing.T) {
	h := newTestHandler(&mockConfigService{
		getFn: func(context.Context) (models.GlobalConfig, error) {
			return models.GlobalConfig{}, fmt.Errorf("select: %w", store.ErrExecutingQuery)
		},
	})

	rr := serve(h, http.MethodGet, configPath, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"success":false,"message":%q}`, app.MsgInternalServerError), rr.Body.String())
}

// ─────────────────────────────────────────────
// PUT /api/admin/configuracion
// ─────────────────────────────────────────────

func TestPutConfig_PassesSuppliedDomains(t *testing.T) {
	var got models.GlobalConfig
	h := newTestHandler(&mockConfigService{
		updateFn: func(_ context.Context, update models.GlobalConfig) (models.GlobalConfig, error) {
			got = update
			return update, nil
		},
	})

	rr := serve(h, http.MethodPut, configPath, `{"notificationsConfig":{"legalText":"x"}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, got.IDCardConfig)
	assert.JSONEq(t, `{"legalText":"x"}`, string(got.NotificationsConfig))
	assert.JSONEq(t, `{"success":true,"data":{"notificationsConfig":{"legalText":"x"}}}`, rr.Body.String())
}

func TestPutConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "invalid json", body: `{"idCardConfig":`, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidDataProvided},
		{name: "no domain", body: `{}`, err: service.ErrNoDomainSupplied, wantStatus: http.StatusBadRequest, wantMsg: app.MsgNoDomainSupplied},
		{name: "bad payload", body: `{"idCardConfig":[]}`, err: service.ErrInvalidPayload, wantStatus: http.StatusBadRequest, wantMsg: app.MsgInvalidPayload},
		{name: "storage closed", body: `{"idCardConfig":{}}`, err: store.ErrStorageClosed, wantStatus: http.StatusServiceUnavailable, wantMsg: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&mockConfigService{
				updateFn: func(context.Context, models.GlobalConfig) (models.GlobalConfig, error) {
					return models.GlobalConfig{}, tt.err
				},
			})

			rr := serve(h, http.MethodPut, configPath, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var resp models.APIResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

// ─────────────────────────────────────────────
// PATCH /api/admin/configuracion/field
// ─────────────────────────────────────────────

func TestPatchConfigField(t *testing.T) {
	var got models.FieldPatchRequest
	h := newTestHandler(&mockConfigService{
		updateFieldFn: func(_ context.Context, req models.FieldPatchRequest) (models.GlobalConfig, error) {
			got = req
			return models.GlobalConfig{}, nil
		},
	})

	rr := serve(h, http.MethodPatch, configFieldPath, `{"field":"idCardConfig.qrDiasExpiracion","value":30}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "idCardConfig.qrDiasExpiracion", got.Field)
	assert.Equal(t, float64(30), got.Value)
}

func TestPatchConfigField_Rejected(t *testing.T) {
	h := newTestHandler(&mockConfigService{
		updateFieldFn: func(context.Context, models.FieldPatchRequest) (models.GlobalConfig, error) {
			return models.GlobalConfig{}, service.ErrInvalidPatch
		},
	})

	rr := serve(h, http.MethodPatch, configFieldPath, `{"field":"idCardConfig.email.visible","value":"yes"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgInvalidPatch)
}

// ─────────────────────────────────────────────
// POST /api/admin/configuracion/reset
// ─────────────────────────────────────────────

func TestResetConfig(t *testing.T) {
	var got models.ResetScope
	h := newTestHandler(&mockConfigService{
		resetFn: func(_ context.Context, req models.ResetRequest) (models.GlobalConfig, error) {
			got = req.Scope
			return models.GlobalConfig{}, nil
		},
	})

	rr := serve(h, http.MethodPost, configResetPath, `{"tipo":"todo"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, models.ResetAll, got)
}

func TestResetConfig_InvalidScope(t *testing.T) {
	h := newTestHandler(&mockConfigService{
		resetFn: func(context.Context, models.ResetRequest) (models.GlobalConfig, error) {
			return models.GlobalConfig{}, fmt.Errorf("validate: %w", service.ErrInvalidResetScope)
		},
	})

	rr := serve(h, http.MethodPost, configResetPath, `{"tipo":"nada"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), app.MsgInvalidResetScope)
}

// ─────────────────────────────────────────────
// statusFromError
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDomain, http.StatusBadRequest},
		{service.ErrInvalidField, http.StatusBadRequest},
		{store.ErrConfigNotFound, http.StatusNotFound},
		{store.ErrScanningRows, http.StatusInternalServerError},
		{fmt.Errorf("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(fmt.Errorf("wrapped: %w", tt.err)))
		})
	}
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/utils"
	"github.com/MKhiriev/go-admin-config/models"
	"github.com/go-resty/resty/v2"
)

const (
	configPath      = "/api/admin/configuracion"
	configFieldPath = configPath + "/field"
	configResetPath = configPath + "/reset"
)

type httpConfigStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPConfigStore constructs the HTTP/REST implementation of [ConfigStore]
// against adapterCfg.HTTPAddress.
func NewHTTPConfigStore(adapterCfg config.ClientAdapter, log *logger.Logger) (ConfigStore, error) {
	client, err := utils.NewJSONClient(adapterCfg.HTTPAddress, adapterCfg.RequestTimeout, adapterCfg.RetryCount)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpConfigStore{client: client, logger: log}, nil
}

// GetGlobalConfig implements [ConfigStore] with GET /api/admin/configuracion.
func (h *httpConfigStore) GetGlobalConfig(ctx context.Context) (models.GlobalConfig, error) {
	resp, err := h.request(ctx).Get(configPath)
	return h.handle("get global config", resp, err)
}

// UpdateDomain implements [ConfigStore] with PUT /api/admin/configuracion and
// a body holding only the given domain.
func (h *httpConfigStore) UpdateDomain(ctx context.Context, domain models.Domain, payload json.RawMessage) (models.GlobalConfig, error) {
	var body models.GlobalConfig
	body.Set(domain, payload)

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(configPath)
	return h.handle("update "+domain.String(), resp, err)
}

// UpdateConfigField implements [ConfigStore] with
// PATCH /api/admin/configuracion/field.
func (h *httpConfigStore) UpdateConfigField(ctx context.Context, field string, value any) (models.GlobalConfig, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.FieldPatchRequest{Field: field, Value: value}).
		Patch(configFieldPath)
	return h.handle("update field "+field, resp, err)
}

// ResetConfig implements [ConfigStore] with
// POST /api/admin/configuracion/reset.
func (h *httpConfigStore) ResetConfig(ctx context.Context, scope models.ResetScope) (models.GlobalConfig, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ResetRequest{Scope: scope}).
		Post(configResetPath)
	return h.handle("reset "+string(scope), resp, err)
}

func (h *httpConfigStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}
	return req
}

func (h *httpConfigStore) handle(op string, resp *resty.Response, err error) (models.GlobalConfig, error) {
	if err != nil {
		h.logger.Err(err).Str("func", "httpConfigStore.handle").Str("op", op).Msg("request failed")
		return models.GlobalConfig{}, &TransportError{Op: op, Err: err}
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().Err(err).Str("op", op).Int("status", resp.StatusCode()).Msg("server rejected request")
		return models.GlobalConfig{}, err
	}

	cfg, err := decodeEnvelope(resp.Body())
	if err != nil {
		return models.GlobalConfig{}, fmt.Errorf("%s: %w", op, err)
	}
	return cfg, nil
}

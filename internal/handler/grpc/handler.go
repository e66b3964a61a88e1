// Package grpc implements the gRPC transport of the configuration server.
//
// adminconfig.ConfigService is described by hand in service_desc.go and
// carries the REST wire types through the JSON codec registered in utils.
// [Handler] implements the service on top of service.ConfigService.
package grpc

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

// Handler is the root gRPC transport handler. A single instance is created
// at startup and registered on the gRPC server.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

var _ ConfigServiceServer = (*Handler)(nil)

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) GetGlobalConfig(ctx context.Context, _ *models.GlobalConfigRequest) (*models.APIResponse, error) {
	cfg, err := h.services.ConfigService.GetGlobalConfig(ctx)
	return h.respond(ctx, "GetGlobalConfig", cfg, err)
}

func (h *Handler) UpdateDomain(ctx context.Context, req *models.DomainUpdateRequest) (*models.APIResponse, error) {
	cfg, err := h.services.ConfigService.UpdateDomain(ctx, *req)
	return h.respond(ctx, "UpdateDomain", cfg, err)
}

func (h *Handler) UpdateConfigField(ctx context.Context, req *models.FieldPatchRequest) (*models.APIResponse, error) {
	cfg, err := h.services.ConfigService.UpdateField(ctx, *req)
	return h.respond(ctx, "UpdateConfigField", cfg, err)
}

func (h *Handler) ResetConfig(ctx context.Context, req *models.ResetRequest) (*models.APIResponse, error) {
	cfg, err := h.services.ConfigService.Reset(ctx, *req)
	return h.respond(ctx, "ResetConfig", cfg, err)
}

func (h *Handler) respond(ctx context.Context, method string, cfg models.GlobalConfig, err error) (*models.APIResponse, error) {
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("method", method).Msg("request failed")
		return nil, statusFromError(err)
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &models.APIResponse{Success: true, Data: data}, nil
}

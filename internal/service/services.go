package service

import (
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/store"
)

type Services struct {
	ConfigService  ConfigService
	AppInfoService AppInfoService
}

func NewServices(repo store.ConfigRepository, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ConfigService:  NewConfigValidationService().Wrap(NewConfigService(repo, logger)),
		AppInfoService: appInfo,
	}, nil
}

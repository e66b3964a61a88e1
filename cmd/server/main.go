package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/handler"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/server"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/internal/store"
	"github.com/MKhiriev/go-admin-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("config-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repo, err := store.NewConfigRepository(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating config repository")
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing config repository")
		}
	}()

	services, err := service.NewServices(repo, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return
	}

	srv.RunServer()
}

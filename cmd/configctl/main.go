package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/cli"
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	load := func(_ context.Context, args []string) (*service.ClientServices, error) {
		cfg, err := config.GetClientConfig(args)
		if err != nil {
			return nil, err
		}
		// stdout carries command output
		log := logger.NewClientLogger("configctl", cfg.Console.LogFile)
		logger.SetLevel(cfg.App.LogLevel)

		configStore, err := adapter.New(cfg.Adapter, log)
		if err != nil {
			return nil, err
		}
		return service.NewClientServices(configStore, log), nil
	}

	root := cli.NewRootCmd(load, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

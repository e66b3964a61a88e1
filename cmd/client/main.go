package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-admin-config/internal/client"
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		os.Exit(1)
	}

	// stdout belongs to the terminal UI
	log := logger.NewClientLogger("admin-console", cfg.Console.LogFile)
	logger.SetLevel(cfg.App.LogLevel)

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init console app error")
	}

	if err = app.Run(); err != nil {
		log.Err(err).Msg("console run error")
		fmt.Fprintln(os.Stderr, "console error:", err)
		os.Exit(1)
	}
}

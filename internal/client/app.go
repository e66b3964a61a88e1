package client

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/config"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/internal/tui"
	"github.com/MKhiriev/go-admin-config/models"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context, startScreen string) error
}

type App struct {
	ui          UI
	store       adapter.ConfigStore
	startScreen string
	logger      *logger.Logger
}

// NewApp builds the config store selected by cfg, the client services and
// the terminal UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	store, err := adapter.New(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create config store: %w", err)
	}

	ui, err := tui.New(service.NewClientServices(store, log), buildInfo, log)
	if err != nil {
		closeStore(store)
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return newApp(ui, store, cfg.Console.StartScreen, log), nil
}

func newApp(ui UI, store adapter.ConfigStore, startScreen string, log *logger.Logger) *App {
	return &App{ui: ui, store: store, startScreen: startScreen, logger: log}
}

// Run blocks until the UI exits or the process gets SIGTERM or SIGQUIT.
// Ctrl+C is a key of the UI, not a signal, while the terminal is in raw mode.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	defer closeStore(a.store)

	a.logger.Info().Str("func", "App.Run").Str("screen", a.startScreen).Msg("console started")
	if err := a.ui.Run(ctx, a.startScreen); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Str("func", "App.Run").Msg("console stopped")
	return nil
}

// closeStore releases the gRPC connection; the HTTP store holds none.
func closeStore(store adapter.ConfigStore) {
	if c, ok := store.(io.Closer); ok {
		_ = c.Close()
	}
}

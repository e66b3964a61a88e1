// Package tui is the terminal admin console. It shows one screen per
// configuration domain and drives the client panels of package service.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

var errNoClientServices = errors.New("client services are not provided")

type TUI struct {
	services  *service.ClientServices
	logger    *logger.Logger
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoClientServices
	}
	return &TUI{services: services, logger: log, buildInfo: buildInfo}, nil
}

// Run blocks until the user quits or ctx is cancelled. startScreen is a
// console route; an unknown route opens the identity-card screen.
func (t *TUI) Run(ctx context.Context, startScreen string) error {
	root := NewRootModel(newScreens(ctx, t.services), startScreen, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	// Panels may change from command goroutines; Send must not block the
	// event loop when the change comes from Update itself.
	refresh := func() { go program.Send(panelChangedMsg{}) }
	t.services.IDCard.OnChange(func(service.PanelState[models.IDCardConfig]) { refresh() })
	t.services.Notifications.OnChange(func(service.PanelState[models.NotificationsConfig]) { refresh() })

	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Str("func", "TUI.Run").Msg("console stopped by context")
		return nil
	}
	if err != nil {
		return err
	}

	if result, ok := final.(RootModel); ok {
		t.logger.Debug().Str("func", "TUI.Run").Str("screen", result.Route()).Msg("console closed")
	}
	return nil
}

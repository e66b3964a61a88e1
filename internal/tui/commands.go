package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

const (
	statusTTL = 2 * time.Second
	noticeTTL = 4 * time.Second
)

func cmdLoad(ctx context.Context, p service.Panel) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{domain: p.Domain(), err: p.Load(ctx)}
	}
}

func cmdSave(ctx context.Context, p service.Panel) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{domain: p.Domain(), err: p.Save(ctx)}
	}
}

func cmdReset(ctx context.Context, domain models.Domain, reset func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{domain: domain, err: reset(ctx)}
	}
}

func cmdCopyToClipboard(domain models.Domain, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{domain: domain, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{domain: domain}
	}
}

func cmdClearStatus(domain models.Domain) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{domain: domain}
	})
}

func cmdExpireNotice(domain models.Domain) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{domain: domain}
	})
}

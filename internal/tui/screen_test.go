package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/app"
	"github.com/MKhiriev/go-admin-config/internal/configmodel"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/mock"
	"github.com/MKhiriev/go-admin-config/internal/service"
	"github.com/MKhiriev/go-admin-config/models"
)

type idCardScreen = panelScreen[models.IDCardConfig, models.IDCardStats]
type notificationsScreen = panelScreen[models.NotificationsConfig, models.NotificationStats]

func newTestServices(t *testing.T) (*service.ClientServices, *mock.MockConfigStore) {
	t.Helper()
	store := mock.NewMockConfigStore(gomock.NewController(t))
	return service.NewClientServices(store, logger.Nop()), store
}

func newTestScreens(t *testing.T) (*service.ClientServices, *mock.MockConfigStore, screen, screen) {
	t.Helper()
	svcs, store := newTestServices(t)
	screens := newScreens(context.Background(), svcs)
	require.Len(t, screens, 2)
	return svcs, store, screens[0], screens[1]
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func send(s screen, msg tea.Msg) (screen, tea.Cmd) {
	updated, cmd := s.Update(msg)
	return updated.(screen), cmd
}

func press(s screen, keys ...string) (screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		s, cmd = send(s, keyMsg(k))
	}
	return s, cmd
}

func cursorPath(s screen) string {
	switch m := s.(type) {
	case idCardScreen:
		return m.rows[m.cursor].path
	case notificationsScreen:
		return m.rows[m.cursor].path
	}
	return ""
}

func moveTo(t *testing.T, s screen, path string) screen {
	t.Helper()
	for range 64 {
		if cursorPath(s) == path {
			return s
		}
		s, _ = press(s, "down")
	}
	t.Fatalf("row %q not reached", path)
	return s
}

// ─────────────────────────────────────────────
// Navigation
// ─────────────────────────────────────────────

func TestPanelScreen_CursorSkipsSections(t *testing.T) {
	_, _, idCard, _ := newTestScreens(t)

	assert.Equal(t, "nombreCompleto.visible", cursorPath(idCard))

	s, _ := press(idCard, "up")
	assert.Equal(t, "nombreCompleto.visible", cursorPath(s))

	s = moveTo(t, s, "tipoSangre.orden")
	s, _ = press(s, "down")
	assert.Equal(t, models.QRIncludePhoto, cursorPath(s), "section header must be skipped")

	s, _ = press(s, "up")
	assert.Equal(t, "tipoSangre.orden", cursorPath(s))

	s = moveTo(t, s, models.QRExpiryDays)
	s, _ = press(s, "down")
	assert.Equal(t, models.QRExpiryDays, cursorPath(s), "last row stays selected")
}

// ─────────────────────────────────────────────
// Toggles and numbers
// ─────────────────────────────────────────────

func TestPanelScreen_ToggleFlipsField(t *testing.T) {
	svcs, _, idCard, _ := newTestScreens(t)
	require.True(t, svcs.IDCard.Config().FullName.Visible)

	s, cmd := press(idCard, " ")
	assert.Nil(t, cmd)
	assert.False(t, svcs.IDCard.Config().FullName.Visible)

	s = moveTo(t, s, models.QRMedicalInfo)
	press(s, "enter")
	assert.True(t, svcs.IDCard.Config().MedicalInfo)
}

func TestPanelScreen_ChannelEventToggle(t *testing.T) {
	svcs, _, _, notif := newTestScreens(t)
	require.False(t, svcs.Notifications.Config().SMS.Event(models.EventRouteEnd))

	s := moveTo(t, notif, models.ChannelSMS+"."+string(models.EventRouteEnd))
	press(s, " ")

	assert.True(t, svcs.Notifications.Config().SMS.Event(models.EventRouteEnd))
}

func TestPanelScreen_ExpirySliderAndPresets(t *testing.T) {
	svcs, _, idCard, _ := newTestScreens(t)
	expiry := func() int { return svcs.IDCard.Config().ExpiryDays }
	require.Equal(t, configmodel.DefaultQRExpiryDays, expiry())

	s := moveTo(t, idCard, models.QRExpiryDays)

	s, _ = press(s, "right")
	assert.Equal(t, 31, expiry())

	s, _ = press(s, "p")
	assert.Equal(t, 90, expiry())

	s, _ = press(s, "right")
	assert.Equal(t, 90, expiry(), "slider is clamped at the upper bound")

	s, _ = press(s, "p")
	assert.Equal(t, 7, expiry(), "presets wrap around")

	press(s, "left")
	assert.Equal(t, 6, expiry())
}

func TestPanelScreen_OrderIsClamped(t *testing.T) {
	svcs, _, idCard, _ := newTestScreens(t)

	s := moveTo(t, idCard, "nombreCompleto.orden")
	s, _ = press(s, "left")
	assert.Equal(t, 1, svcs.IDCard.Config().FullName.Order)

	press(s, "right", "right")
	assert.Equal(t, 3, svcs.IDCard.Config().FullName.Order)
}

// ─────────────────────────────────────────────
// Text editing
// ─────────────────────────────────────────────

func TestPanelScreen_EditSubject(t *testing.T) {
	svcs, _, _, notif := newTestScreens(t)
	before := svcs.Notifications.Config().RouteStart.Subject

	s := moveTo(t, notif, models.TemplateRouteStart+".subject")
	s, _ = press(s, "enter")
	require.True(t, s.capturesInput())

	s, _ = press(s, "!", "enter")
	assert.False(t, s.capturesInput())
	assert.Equal(t, before+"!", svcs.Notifications.Config().RouteStart.Subject)
}

func TestPanelScreen_EditCancelled(t *testing.T) {
	svcs, _, _, notif := newTestScreens(t)
	before := svcs.Notifications.Config().RouteStart.Subject

	s := moveTo(t, notif, models.TemplateRouteStart+".subject")
	s, _ = press(s, "enter", "x", "y", "esc")

	assert.False(t, s.capturesInput())
	assert.Equal(t, before, svcs.Notifications.Config().RouteStart.Subject)
}

func TestPanelScreen_EditMultilineBody(t *testing.T) {
	svcs, _, _, notif := newTestScreens(t)
	before := svcs.Notifications.Config().Emergency.Body

	s := moveTo(t, notif, models.TemplateEmergency+".body")
	assert.Contains(t, s.View(), "Variables: {{userName}} {{location}}")

	s, _ = press(s, "enter", "X", "enter")
	require.True(t, s.capturesInput(), "enter adds a line in a multiline field")

	s, _ = press(s, "ctrl+s")
	assert.False(t, s.capturesInput())
	assert.Equal(t, before+"X\n", svcs.Notifications.Config().Emergency.Body)
}

func TestPanelScreen_CopyOnlyOnTextRows(t *testing.T) {
	_, _, _, notif := newTestScreens(t)

	_, cmd := press(notif, "c")
	assert.Nil(t, cmd)

	s := moveTo(t, notif, models.KeyLegalText)
	_, cmd = press(s, "c")
	assert.NotNil(t, cmd)
}

func TestPanelScreen_CopiedStatus(t *testing.T) {
	_, _, _, notif := newTestScreens(t)

	s, cmd := send(notif, copiedMsg{domain: models.DomainNotifications})
	assert.NotNil(t, cmd)
	assert.Contains(t, s.View(), app.MsgCopied)

	s, _ = send(s, clearStatusMsg{domain: models.DomainNotifications})
	assert.NotContains(t, s.View(), app.MsgCopied)
}

func TestPanelScreen_IgnoresOtherDomains(t *testing.T) {
	_, _, idCard, _ := newTestScreens(t)

	s, cmd := send(idCard, copiedMsg{domain: models.DomainNotifications})
	assert.Nil(t, cmd)
	assert.NotContains(t, s.View(), app.MsgCopied)
}

// ─────────────────────────────────────────────
// Load, save and reset
// ─────────────────────────────────────────────

func TestPanelScreen_HeaderStats(t *testing.T) {
	_, _, idCard, notif := newTestScreens(t)

	assert.Contains(t, idCard.View(), idCardHeader(configmodel.ProjectIDCard(configmodel.DefaultIDCard())))

	stats := configmodel.ProjectNotifications(configmodel.DefaultNotifications())
	assert.Contains(t, notif.View(), fmt.Sprintf("Canales activos: %d/3", stats.ActiveChannelCount))
	assert.Contains(t, notif.View(), fmt.Sprintf("Plantillas activas: %d/5", stats.ActiveTemplateCount))
}

func TestPanelScreen_LoadTransportError(t *testing.T) {
	svcs, store, idCard, _ := newTestScreens(t)
	store.EXPECT().GetGlobalConfig(gomock.Any()).
		Return(models.GlobalConfig{}, &adapter.TransportError{Op: "get config", Err: errors.New("dial tcp: connection refused")})

	msg := cmdLoad(context.Background(), svcs.IDCard)()
	s, _ := send(idCard, msg)

	view := s.View()
	assert.Contains(t, view, app.MsgConnectionError)
	assert.Contains(t, view, "No se pudo cargar la configuración")
	assert.Equal(t, configmodel.DefaultIDCard().FullName, svcs.IDCard.Config().FullName)
}

func TestPanelScreen_SaveSuccess(t *testing.T) {
	svcs, store, idCard, _ := newTestScreens(t)
	gomock.InOrder(
		store.EXPECT().UpdateDomain(gomock.Any(), models.DomainIDCard, gomock.Any()).Return(models.GlobalConfig{}, nil),
		store.EXPECT().GetGlobalConfig(gomock.Any()).Return(models.GlobalConfig{}, nil),
	)

	s, _ := press(idCard, " ")
	s, cmd := press(s, "s")
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, saveDoneMsg{}, msg)
	assert.NoError(t, msg.(saveDoneMsg).err)
	assert.Equal(t, app.MsgIDCardSaved, svcs.IDCard.Notice().Message)

	s, cmd = send(s, msg)
	assert.NotNil(t, cmd, "notice expiry is scheduled")
	assert.Contains(t, s.View(), app.MsgIDCardSaved)

	s, _ = send(s, noticeExpiredMsg{domain: models.DomainIDCard})
	assert.Equal(t, service.NoticeNone, svcs.IDCard.Notice().Kind)
	assert.NotContains(t, s.View(), app.MsgIDCardSaved)
}

func TestPanelScreen_SaveRejected(t *testing.T) {
	svcs, store, idCard, _ := newTestScreens(t)
	store.EXPECT().UpdateDomain(gomock.Any(), models.DomainIDCard, gomock.Any()).
		Return(models.GlobalConfig{}, &adapter.ServerError{Status: 500, Message: "db down"})

	s, _ := press(idCard, " ")
	_, cmd := press(s, "s")
	msg := cmd()
	s, _ = send(s, msg)

	assert.Contains(t, s.View(), "Error: db down")
	assert.False(t, svcs.IDCard.Config().FullName.Visible, "edits survive a failed save")
}

func TestPanelScreen_ResetConfirm(t *testing.T) {
	svcs, store, idCard, _ := newTestScreens(t)

	s, _ := press(idCard, " ", "x")
	require.True(t, s.capturesInput())
	assert.Contains(t, s.View(), "¿Restablecer")

	s, cmd := press(s, "n")
	assert.Nil(t, cmd)
	assert.False(t, s.capturesInput())

	gomock.InOrder(
		store.EXPECT().ResetConfig(gomock.Any(), models.ResetIDCard).Return(models.GlobalConfig{}, nil),
		store.EXPECT().GetGlobalConfig(gomock.Any()).Return(models.GlobalConfig{}, nil),
	)
	s, cmd = press(s, "x", "y")
	require.NotNil(t, cmd)

	s, _ = send(s, cmd())
	assert.Contains(t, s.View(), app.MsgConfigReset)
	assert.True(t, svcs.IDCard.Config().FullName.Visible)
}

func TestPanelScreen_ReloadAndResetBlockedWhileSaving(t *testing.T) {
	svcs, store, idCard, _ := newTestScreens(t)

	entered := make(chan struct{})
	release := make(chan struct{})
	store.EXPECT().UpdateDomain(gomock.Any(), models.DomainIDCard, gomock.Any()).
		DoAndReturn(func(context.Context, models.Domain, json.RawMessage) (models.GlobalConfig, error) {
			close(entered)
			<-release
			return models.GlobalConfig{}, &adapter.ServerError{Status: 500, Message: "db down"}
		})

	s, _ := press(idCard, " ")
	s, cmd := press(s, "s")
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	<-entered

	s, _ = press(s, "r")
	assert.Contains(t, s.View(), "Guardado en curso, espere")

	s, _ = press(s, "x")
	assert.False(t, s.capturesInput(), "no reset confirmation while saving")

	close(release)
	s, _ = send(s, <-done)

	assert.Contains(t, s.View(), "Error: db down")
	assert.False(t, svcs.IDCard.Config().FullName.Visible, "edits survive a failed save")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, app.MsgConnectionError, humanizeError(&adapter.TransportError{Op: "get", Err: errors.New("boom")}))
	assert.Equal(t, app.MsgConnectionError, humanizeError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.Equal(t, "Guardado en curso, espere", humanizeError(fmt.Errorf("save: %w", service.ErrSaveInProgress)))
	assert.Equal(t, "something else", humanizeError(errors.New("something else")))
}

func TestViewHelpers(t *testing.T) {
	assert.Equal(t, "[x]", checkbox(true))
	assert.Equal(t, "[ ]", checkbox(false))

	assert.Equal(t, "hola ⏎ mundo", fitText("hola\nmundo", 0))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ñandú", fitText("ñandú", 5))

	assert.True(t, strings.HasPrefix(slider(1, 1, 90, 10), "◀ ░"))
	assert.True(t, strings.HasSuffix(slider(90, 1, 90, 10), "▶ 90"))
	assert.Equal(t, "7", slider(7, 1, 1, 10))

	assert.Equal(t, "-", orDash("  "))
}

func TestRow_NextPreset(t *testing.T) {
	r := row{presets: models.QRExpiryPresets, lo: 1, hi: 90}

	assert.Equal(t, 7, r.nextPreset(1))
	assert.Equal(t, 30, r.nextPreset(7))
	assert.Equal(t, 90, r.nextPreset(45))
	assert.Equal(t, 7, r.nextPreset(90))

	assert.Equal(t, 1, r.clamp(-3))
	assert.Equal(t, 90, r.clamp(120))
}

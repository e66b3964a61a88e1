package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-admin-config/internal/adapter"
	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/mock"
	"github.com/MKhiriev/go-admin-config/models"
)

func newClientServices(t *testing.T) (*ClientServices, *mock.MockConfigStore) {
	t.Helper()
	store := mock.NewMockConfigStore(gomock.NewController(t))
	return NewClientServices(store, logger.Nop()), store
}

// ─────────────────────────────────────────────
// ClientServices
// ─────────────────────────────────────────────

func TestClientServices_Panel(t *testing.T) {
	c, _ := newClientServices(t)

	assert.Equal(t, models.DomainIDCard, c.Panel(models.DomainIDCard).Domain())
	assert.Equal(t, models.DomainNotifications, c.Panel(models.DomainNotifications).Domain())
	assert.Nil(t, c.Panel("theme"))
	assert.Len(t, c.Panels(), 2)
}

func TestClientServices_LoadAll(t *testing.T) {
	c, store := newClientServices(t)
	store.EXPECT().GetGlobalConfig(gomock.Any()).Return(models.GlobalConfig{
		IDCardConfig:        json.RawMessage(`{"qrDiasExpiracion":7}`),
		NotificationsConfig: json.RawMessage(`{"legalText":"remoto"}`),
	}, nil).Times(2)

	require.NoError(t, c.LoadAll(context.Background()))

	assert.Equal(t, 7, c.IDCard.Config().ExpiryDays)
	assert.Equal(t, "remoto", c.Notifications.Config().LegalText)
}

func TestClientServices_LoadAll_JoinsErrors(t *testing.T) {
	c, store := newClientServices(t)
	refused := &adapter.TransportError{Op: "get", Err: errors.New("refused")}
	store.EXPECT().GetGlobalConfig(gomock.Any()).Return(models.GlobalConfig{}, refused).Times(2)

	err := c.LoadAll(context.Background())

	assert.ErrorIs(t, err, refused)
	assert.Equal(t, LoadError, c.IDCard.LoadStatus())
	assert.Equal(t, LoadError, c.Notifications.LoadStatus())
}

func TestClientServices_Reset(t *testing.T) {
	c, store := newClientServices(t)
	require.NoError(t, c.IDCard.ApplyPatch("email.visible", false))
	require.NoError(t, c.Notifications.ApplyPatch("legalText", "local"))

	gomock.InOrder(
		store.EXPECT().ResetConfig(gomock.Any(), models.ResetIDCard).Return(models.GlobalConfig{}, nil),
		store.EXPECT().GetGlobalConfig(gomock.Any()).Return(models.GlobalConfig{}, nil),
	)

	require.NoError(t, c.Reset(context.Background(), models.ResetIDCard))

	assert.True(t, c.IDCard.Config().Email.Visible)
	assert.Equal(t, "local", c.Notifications.Config().LegalText, "other domains are untouched")
}

func TestClientServices_Reset_RefusedWhileSaving(t *testing.T) {
	c, store := newClientServices(t)
	require.NoError(t, c.Notifications.ApplyPatch("legalText", "local"))
	entered, release := blockSave(store, nil)
	store.EXPECT().GetGlobalConfig(gomock.Any()).Return(models.GlobalConfig{}, nil)

	done := make(chan error, 1)
	go func() { done <- c.Notifications.Save(context.Background()) }()
	<-entered

	assert.ErrorIs(t, c.Reset(context.Background(), models.ResetAll), ErrSaveInProgress)

	close(release)
	require.NoError(t, <-done)
}

func TestClientServices_Reset_InvalidScope(t *testing.T) {
	c, _ := newClientServices(t)

	assert.ErrorIs(t, c.Reset(context.Background(), "everything"), ErrInvalidResetScope)
}

func TestClientServices_SetField(t *testing.T) {
	c, store := newClientServices(t)

	var saved json.RawMessage
	gomock.InOrder(
		store.EXPECT().GetGlobalConfig(gomock.Any()).Return(models.GlobalConfig{}, nil),
		store.EXPECT().UpdateDomain(gomock.Any(), models.DomainNotifications, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.Domain, payload json.RawMessage) (models.GlobalConfig, error) {
				saved = payload
				return models.GlobalConfig{}, nil
			}),
		store.EXPECT().GetGlobalConfig(gomock.Any()).DoAndReturn(func(context.Context) (models.GlobalConfig, error) {
			return models.GlobalConfig{NotificationsConfig: saved}, nil
		}),
	)

	require.NoError(t, c.SetField(context.Background(), "notificationsConfig.smsNotifications.enabled", true))

	assert.True(t, c.Notifications.Config().SMS.Enabled)
	assert.Equal(t, 2, c.Notifications.Stats().ActiveChannelCount)
}

func TestClientServices_SetField_InvalidField(t *testing.T) {
	c, _ := newClientServices(t)

	assert.ErrorIs(t, c.SetField(context.Background(), "legalText", "x"), ErrInvalidField)
}

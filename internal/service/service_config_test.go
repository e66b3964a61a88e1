package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/internal/mock"
	"github.com/MKhiriev/go-admin-config/internal/store"
	"github.com/MKhiriev/go-admin-config/models"
)

func newConfigService(t *testing.T) (ConfigService, *mock.MockConfigRepository) {
	t.Helper()
	repo := mock.NewMockConfigRepository(gomock.NewController(t))
	return NewConfigValidationService().Wrap(NewConfigService(repo, logger.Nop())), repo
}

// ─────────────────────────────────────────────
// GetGlobalConfig
// ─────────────────────────────────────────────

func TestConfigService_GetGlobalConfig(t *testing.T) {
	svc, repo := newConfigService(t)
	stored := models.GlobalConfig{IDCardConfig: json.RawMessage(`{"qrDiasExpiracion":7}`)}
	repo.EXPECT().GetAll(gomock.Any()).Return(stored, nil)

	got, err := svc.GetGlobalConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

// ─────────────────────────────────────────────
// UpdateConfig
// ─────────────────────────────────────────────

func TestConfigService_UpdateConfig_NormalizesAndClamps(t *testing.T) {
	svc, repo := newConfigService(t)

	var saved json.RawMessage
	repo.EXPECT().Save(gomock.Any(), models.DomainIDCard, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Domain, payload json.RawMessage) error {
			saved = payload
			return nil
		})
	repo.EXPECT().GetAll(gomock.Any()).DoAndReturn(func(context.Context) (models.GlobalConfig, error) {
		return models.GlobalConfig{IDCardConfig: saved}, nil
	})

	got, err := svc.UpdateConfig(context.Background(), models.GlobalConfig{
		IDCardConfig: json.RawMessage(`{"qrDiasExpiracion":365,"custom":"kept"}`),
	})

	require.NoError(t, err)
	var card models.IDCardConfig
	require.NoError(t, json.Unmarshal(got.IDCardConfig, &card))
	assert.Equal(t, models.QRExpiryMaxDays, card.ExpiryDays)
	assert.True(t, card.FullName.Visible, "absent keys come from defaults")
	assert.JSONEq(t, `"kept"`, string(card.Extra["custom"]))
	assert.Nil(t, got.NotificationsConfig)
}

func TestConfigService_UpdateConfig_BothDomains(t *testing.T) {
	svc, repo := newConfigService(t)
	gomock.InOrder(
		repo.EXPECT().Save(gomock.Any(), models.DomainIDCard, gomock.Any()).Return(nil),
		repo.EXPECT().Save(gomock.Any(), models.DomainNotifications, gomock.Any()).Return(nil),
		repo.EXPECT().GetAll(gomock.Any()).Return(models.GlobalConfig{}, nil),
	)

	_, err := svc.UpdateConfig(context.Background(), models.GlobalConfig{
		IDCardConfig:        json.RawMessage(`{}`),
		NotificationsConfig: json.RawMessage(`{"legalText":"x"}`),
	})

	require.NoError(t, err)
}

func TestConfigService_UpdateConfig_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		update models.GlobalConfig
		want   error
	}{
		{name: "nothing supplied", update: models.GlobalConfig{}, want: ErrNoDomainSupplied},
		{name: "only nulls", update: models.GlobalConfig{IDCardConfig: json.RawMessage(`null`)}, want: ErrNoDomainSupplied},
		{name: "array payload", update: models.GlobalConfig{IDCardConfig: json.RawMessage(`[1]`)}, want: ErrInvalidPayload},
		{
			name: "one bad domain stores nothing",
			update: models.GlobalConfig{
				IDCardConfig:        json.RawMessage(`{}`),
				NotificationsConfig: json.RawMessage(`"text"`),
			},
			want: ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newConfigService(t)

			_, err := svc.UpdateConfig(context.Background(), tt.update)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigService_UpdateConfig_RepositoryError(t *testing.T) {
	svc, repo := newConfigService(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrExecutingStatement)

	_, err := svc.UpdateConfig(context.Background(), models.GlobalConfig{IDCardConfig: json.RawMessage(`{}`)})

	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestConfigService_UpdateDomain(t *testing.T) {
	svc, repo := newConfigService(t)
	repo.EXPECT().Save(gomock.Any(), models.DomainNotifications, gomock.Any()).Return(nil)
	repo.EXPECT().GetAll(gomock.Any()).Return(models.GlobalConfig{}, nil)

	_, err := svc.UpdateDomain(context.Background(), models.DomainUpdateRequest{
		Domain:  models.DomainNotifications,
		Payload: json.RawMessage(`{"legalText":"x"}`),
	})
	require.NoError(t, err)

	_, err = svc.UpdateDomain(context.Background(), models.DomainUpdateRequest{
		Domain:  "notifications",
		Payload: json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

// ─────────────────────────────────────────────
// UpdateField
// ─────────────────────────────────────────────

func TestConfigService_UpdateField_StartsFromDefaults(t *testing.T) {
	svc, repo := newConfigService(t)
	repo.EXPECT().Get(gomock.Any(), models.DomainNotifications).Return(nil, store.ErrConfigNotFound)

	var saved json.RawMessage
	repo.EXPECT().Save(gomock.Any(), models.DomainNotifications, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Domain, payload json.RawMessage) error {
			saved = payload
			return nil
		})
	repo.EXPECT().GetAll(gomock.Any()).Return(models.GlobalConfig{}, nil)

	_, err := svc.UpdateField(context.Background(), models.FieldPatchRequest{
		Field: "notificationsConfig.pushNotifications.enabled",
		Value: false,
	})

	require.NoError(t, err)
	var cfg models.NotificationsConfig
	require.NoError(t, json.Unmarshal(saved, &cfg))
	assert.False(t, cfg.Push.Enabled)
	assert.True(t, cfg.Push.Event(models.EventRouteStart))
}

func TestConfigService_UpdateField_ClampsExpiry(t *testing.T) {
	svc, repo := newConfigService(t)
	repo.EXPECT().Get(gomock.Any(), models.DomainIDCard).Return(json.RawMessage(`{"qrDiasExpiracion":30}`), nil)

	var saved json.RawMessage
	repo.EXPECT().Save(gomock.Any(), models.DomainIDCard, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Domain, payload json.RawMessage) error {
			saved = payload
			return nil
		})
	repo.EXPECT().GetAll(gomock.Any()).Return(models.GlobalConfig{}, nil)

	// JSON numbers arrive as float64
	_, err := svc.UpdateField(context.Background(), models.FieldPatchRequest{
		Field: "idCardConfig.qrDiasExpiracion",
		Value: float64(0),
	})

	require.NoError(t, err)
	var card models.IDCardConfig
	require.NoError(t, json.Unmarshal(saved, &card))
	assert.Equal(t, models.QRExpiryMinDays, card.ExpiryDays)
}

func TestConfigService_UpdateField_Rejected(t *testing.T) {
	tests := []struct {
		name string
		req  models.FieldPatchRequest
		want error
	}{
		{name: "empty field", req: models.FieldPatchRequest{Value: true}, want: ErrInvalidField},
		{name: "no domain", req: models.FieldPatchRequest{Field: "legalText", Value: "x"}, want: ErrInvalidField},
		{name: "unknown domain", req: models.FieldPatchRequest{Field: "theme.color", Value: "x"}, want: ErrInvalidField},
		{name: "object value", req: models.FieldPatchRequest{Field: "idCardConfig.email.visible", Value: map[string]any{}}, want: ErrInvalidPatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newConfigService(t)

			_, err := svc.UpdateField(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConfigService_UpdateField_TypeMismatch(t *testing.T) {
	svc, repo := newConfigService(t)
	repo.EXPECT().Get(gomock.Any(), models.DomainIDCard).Return(nil, store.ErrConfigNotFound)

	_, err := svc.UpdateField(context.Background(), models.FieldPatchRequest{
		Field: "idCardConfig.email.visible",
		Value: "yes",
	})

	assert.ErrorIs(t, err, ErrInvalidPatch)
}

func TestConfigService_UpdateField_RepositoryError(t *testing.T) {
	svc, repo := newConfigService(t)
	boom := errors.New("boom")
	repo.EXPECT().Get(gomock.Any(), models.DomainIDCard).Return(nil, boom)

	_, err := svc.UpdateField(context.Background(), models.FieldPatchRequest{Field: "idCardConfig.email.visible", Value: true})

	assert.ErrorIs(t, err, boom)
}

// ─────────────────────────────────────────────
// Reset
// ─────────────────────────────────────────────

func TestConfigService_Reset(t *testing.T) {
	tests := []struct {
		scope models.ResetScope
		want  []any
	}{
		{scope: models.ResetAll, want: []any{models.DomainIDCard, models.DomainNotifications}},
		{scope: models.ResetIDCard, want: []any{models.DomainIDCard}},
		{scope: models.ResetNotifications, want: []any{models.DomainNotifications}},
	}

	for _, tt := range tests {
		t.Run(string(tt.scope), func(t *testing.T) {
			svc, repo := newConfigService(t)
			repo.EXPECT().Delete(gomock.Any(), tt.want...).Return(nil)
			repo.EXPECT().GetAll(gomock.Any()).Return(models.GlobalConfig{}, nil)

			got, err := svc.Reset(context.Background(), models.ResetRequest{Scope: tt.scope})

			require.NoError(t, err)
			assert.Equal(t, models.GlobalConfig{}, got)
		})
	}
}

func TestConfigService_Reset_InvalidScope(t *testing.T) {
	svc, _ := newConfigService(t)

	_, err := svc.Reset(context.Background(), models.ResetRequest{Scope: "everything"})

	assert.ErrorIs(t, err, ErrInvalidResetScope)
}

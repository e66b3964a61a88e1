package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-admin-config/internal/logger"
	"github.com/MKhiriev/go-admin-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepo(t *testing.T) ConfigRepository {
	t.Helper()
	repo, err := NewBadgerConfigRepository("", true, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestBadger_SaveGetAll(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.GlobalConfig{}, all)

	require.NoError(t, repo.Save(ctx, models.DomainIDCard, json.RawMessage(`{"qrDiasExpiracion":7}`)))
	require.NoError(t, repo.Save(ctx, models.DomainIDCard, json.RawMessage(`{"qrDiasExpiracion":9}`)))

	got, err := repo.Get(ctx, models.DomainIDCard)
	require.NoError(t, err)
	assert.JSONEq(t, `{"qrDiasExpiracion":9}`, string(got))

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"qrDiasExpiracion":9}`, string(all.IDCardConfig))
	assert.Nil(t, all.NotificationsConfig)
}

func TestBadger_GetMissing(t *testing.T) {
	repo := newMemoryRepo(t)

	_, err := repo.Get(context.Background(), models.DomainNotifications)

	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestBadger_Delete(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, models.DomainIDCard, json.RawMessage(`{}`)))
	require.NoError(t, repo.Save(ctx, models.DomainNotifications, json.RawMessage(`{}`)))

	require.NoError(t, repo.Delete(ctx, models.DomainIDCard))
	_, err := repo.Get(ctx, models.DomainIDCard)
	assert.ErrorIs(t, err, ErrConfigNotFound)

	_, err = repo.Get(ctx, models.DomainNotifications)
	assert.NoError(t, err)

	// deleting an absent key is fine
	assert.NoError(t, repo.Delete(ctx, models.DomainIDCard))
}

func TestBadger_Persists(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewBadgerConfigRepository(dir, false, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, models.DomainNotifications, json.RawMessage(`{"legalText":"persistido"}`)))
	require.NoError(t, repo.Close())

	reopened, err := NewBadgerConfigRepository(dir, false, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, models.DomainNotifications)
	require.NoError(t, err)
	assert.JSONEq(t, `{"legalText":"persistido"}`, string(got))
}

func TestBadger_Closed(t *testing.T) {
	repo, err := NewBadgerConfigRepository("", true, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, repo.Close())
	require.NoError(t, repo.Close())

	_, err = repo.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrStorageClosed)
}

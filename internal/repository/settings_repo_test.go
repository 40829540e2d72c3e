package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

func TestSettingsGetDefaultsWhenUnsaved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	got, err := repo.Get(tenantA)
	require.NoError(t, err)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "MAD", got.Currency)
	assert.True(t, got.LowStockAlerts)
	assert.True(t, got.PaymentAlerts)
}

func TestSettingsUpsertPersistsDisabledAlerts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	// First-ever save with both alerts off must store false, not fall back
	// to the defaults.
	settings := model.DefaultSettings(tenantA)
	settings.LowStockAlerts = false
	settings.PaymentAlerts = false
	require.NoError(t, repo.Upsert(settings))

	got, err := repo.Get(tenantA)
	require.NoError(t, err)
	assert.False(t, got.LowStockAlerts)
	assert.False(t, got.PaymentAlerts)
}

func TestSettingsUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSettingsRepo(db)

	first := model.DefaultSettings(tenantA)
	first.Language = "ar"
	require.NoError(t, repo.Upsert(first))

	got, err := repo.Get(tenantA)
	require.NoError(t, err)
	assert.Equal(t, "ar", got.Language)

	// Second upsert rewrites the same row.
	second := model.DefaultSettings(tenantA)
	second.Currency = "EUR"
	require.NoError(t, repo.Upsert(second))

	got, err = repo.Get(tenantA)
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, first.ID, got.ID)

	var count int64
	db.Model(&model.UserSettings{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

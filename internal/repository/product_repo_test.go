package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

func TestAdjustQuantityGuard(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	p := &model.Product{UserID: tenantA, SKU: "SKU-1", Name: "Flour", Quantity: 3}
	require.NoError(t, repo.Create(p))

	// Guarded decrement beyond stock is rejected without touching the row.
	ok, err := repo.AdjustQuantity(nil, tenantA, p.ID, -5, true)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(tenantA, p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(3), got.Quantity)

	// Exact stock is sufficient.
	ok, err = repo.AdjustQuantity(nil, tenantA, p.ID, -3, true)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.FindByID(tenantA, p.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Quantity)

	// Unguarded deltas always apply; cancels restore through this path.
	ok, err = repo.AdjustQuantity(nil, tenantA, p.ID, 10, false)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AdjustQuantity(nil, tenantA, p.ID, -4, false)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.FindByID(tenantA, p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(6), got.Quantity)
}

func TestAdjustQuantityMissingOrForeignRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepo(db)

	p := &model.Product{UserID: tenantA, SKU: "SKU-1", Name: "Flour", Quantity: 3}
	require.NoError(t, repo.Create(p))

	ok, err := repo.AdjustQuantity(nil, tenantA, uuid.New(), 1, false)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.AdjustQuantity(nil, tenantB, p.ID, 1, false)
	require.NoError(t, err)
	assert.False(t, ok)
}

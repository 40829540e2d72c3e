package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
)

func TestGetStatsAggregates(t *testing.T) {
	db := setupTestDB(t)
	txRepo := repository.NewTransactionRepo(db)
	svc := NewDashboardService(txRepo, 5)
	now := time.Now()

	seedProduct(t, db, tenantA, "SKU-1", 10, 0) // price 10, stock value 100
	seedProduct(t, db, tenantA, "SKU-2", 2, 5)  // low stock, value 20
	require.NoError(t, db.Create(&model.Category{UserID: tenantA, Name: "Grains"}).Error)
	require.NoError(t, db.Create(&model.Supplier{UserID: tenantA, Name: "Coop"}).Error)
	c := seedClient(t, db, tenantA, "Aicha")
	require.NoError(t, repository.NewClientRepo(db).ApplyLedgerDelta(nil, tenantA, c.ID, 500, 200))

	txns := []*model.Transaction{
		{UserID: tenantA, Type: model.TxSale, Status: model.TxCompleted, Total: 1000, AmountPaid: 1000},
		{UserID: tenantA, Type: model.TxSale, Status: model.TxPending, Total: 500, AmountPaid: 200, RemainingAmount: 300},
		{UserID: tenantA, Type: model.TxPurchase, Status: model.TxCompleted, Total: 400, AmountPaid: 400},
		// Cancelled money never counts.
		{UserID: tenantA, Type: model.TxSale, Status: model.TxCancelled, Total: 999, AmountPaid: 999},
		// Other tenants never leak in.
		{UserID: tenantB, Type: model.TxSale, Status: model.TxCompleted, Total: 777, AmountPaid: 777},
	}
	for _, txn := range txns {
		require.NoError(t, db.Create(txn).Error)
	}
	require.NoError(t, db.Create(&model.Expense{
		UserID: tenantA, Description: "rent", Amount: 100, Date: now,
	}).Error)

	stats, err := svc.GetStats(tenantA, now.Add(-24*time.Hour), now.Add(24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(1), stats.CategoryCount)
	assert.Equal(t, int64(1), stats.SupplierCount)
	assert.Equal(t, int64(1), stats.ClientCount)
	assert.Equal(t, float64(120), stats.StockValue)

	assert.Equal(t, float64(1500), stats.SalesTotal)
	assert.Equal(t, float64(400), stats.PurchasesTotal)
	assert.Equal(t, float64(1100), stats.Profit)
	assert.Equal(t, float64(1200), stats.AmountReceived)
	assert.Equal(t, float64(400), stats.AmountPaidOut)
	assert.Equal(t, float64(300), stats.PendingReceivables)
	assert.Equal(t, float64(100), stats.ExpensesTotal)

	assert.Equal(t, int64(1), stats.DebtorCount)
	assert.Equal(t, float64(300), stats.DebtorsTotal)

	// Recent includes cancelled rows; only money sums exclude them.
	assert.Len(t, stats.RecentTransactions, 4)
}

func TestGetStatsDefaultsRangeToLastMonth(t *testing.T) {
	db := setupTestDB(t)
	svc := NewDashboardService(repository.NewTransactionRepo(db), 5)

	old := &model.Transaction{UserID: tenantA, Type: model.TxSale, Status: model.TxCompleted, Total: 100}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Model(old).Update("created_at", time.Now().AddDate(0, -2, 0)).Error)

	stats, err := svc.GetStats(tenantA, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, stats.SalesTotal)
}

package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sraidytech/Inventory-Management-sub001/internal/apperr"
	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

const tenantA = "auth0|tenant-a"
const tenantB = "auth0|tenant-b"

func saleOf(productID uuid.UUID, qty, price, paid float64, clientID *uuid.UUID) *model.Transaction {
	return &model.Transaction{
		Type:       model.TxSale,
		AmountPaid: paid,
		ClientID:   clientID,
		Items: []model.TransactionItem{
			{ProductID: productID, Quantity: qty, Price: price},
		},
	}
}

func asAppErr(t *testing.T, err error) *apperr.Error {
	t.Helper()
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func TestCreateSaleDecrementsStock(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	txn := saleOf(p.ID, 4, 25, 40, nil)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))

	assert.Equal(t, float64(100), txn.Total)
	assert.Equal(t, float64(60), txn.RemainingAmount)
	assert.Equal(t, float64(6), reloadProduct(t, f.db, p).Quantity)
}

func TestCreateSaleInsufficientStockLeavesNoTrace(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 3, 0)

	err := f.svc.CreateTransaction(tenantA, saleOf(p.ID, 5, 10, 0, nil))
	appErr := asAppErr(t, err)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Contains(t, appErr.Fields, p.ID.String())

	// Rolled back: quantity untouched, no transaction row written.
	assert.Equal(t, float64(3), reloadProduct(t, f.db, p).Quantity)
	var count int64
	f.db.Model(&model.Transaction{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreatePurchaseIncrementsStock(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	txn := &model.Transaction{
		Type: model.TxPurchase,
		Items: []model.TransactionItem{
			{ProductID: p.ID, Quantity: 5, Price: 8},
		},
	}
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))
	assert.Equal(t, float64(15), reloadProduct(t, f.db, p).Quantity)
}

func TestCreateAdjustmentAppliesSignedQuantity(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 3, 0)

	down := &model.Transaction{
		Type: model.TxAdjustment,
		Items: []model.TransactionItem{
			{ProductID: p.ID, Quantity: -2},
		},
	}
	require.NoError(t, f.svc.CreateTransaction(tenantA, down))
	assert.Equal(t, float64(1), reloadProduct(t, f.db, p).Quantity)

	// A negative adjustment is guarded like a sale.
	tooFar := &model.Transaction{
		Type: model.TxAdjustment,
		Items: []model.TransactionItem{
			{ProductID: p.ID, Quantity: -5},
		},
	}
	err := f.svc.CreateTransaction(tenantA, tooFar)
	assert.Equal(t, apperr.KindConflict, asAppErr(t, err).Kind)
	assert.Equal(t, float64(1), reloadProduct(t, f.db, p).Quantity)
}

func TestCreateRejectsBornCancelled(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)
	c := seedClient(t, f.db, tenantA, "Aicha")

	txn := saleOf(p.ID, 4, 25, 0, &c.ID)
	txn.Status = model.TxCancelled
	err := f.svc.CreateTransaction(tenantA, txn)
	appErr := asAppErr(t, err)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.Contains(t, appErr.Fields, "Status")

	// Nothing moved: no stock decrement, no client charge, no row.
	assert.Equal(t, float64(10), reloadProduct(t, f.db, p).Quantity)
	assert.Zero(t, reloadClient(t, f.db, c).Balance)
	var count int64
	f.db.Model(&model.Transaction{}).Count(&count)
	assert.Zero(t, count)

	// COMPLETED at birth stays valid.
	completed := saleOf(p.ID, 4, 25, 100, &c.ID)
	completed.Status = model.TxCompleted
	require.NoError(t, f.svc.CreateTransaction(tenantA, completed))
}

func TestCreateSaleRejectsNonPositiveQuantity(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	err := f.svc.CreateTransaction(tenantA, saleOf(p.ID, -1, 10, 0, nil))
	appErr := asAppErr(t, err)
	assert.Equal(t, apperr.KindBadRequest, appErr.Kind)
	assert.NotEmpty(t, appErr.Fields)
}

func TestCreateUnknownProduct(t *testing.T) {
	f := newLedgerFixture(t)
	ghost := uuid.New()

	err := f.svc.CreateTransaction(tenantA, saleOf(ghost, 1, 10, 0, nil))
	appErr := asAppErr(t, err)
	assert.Equal(t, apperr.KindNotFound, appErr.Kind)
	assert.Contains(t, appErr.Fields, ghost.String())
}

func TestCreateAmountPaidExceedsTotal(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	err := f.svc.CreateTransaction(tenantA, saleOf(p.ID, 1, 10, 50, nil))
	assert.Equal(t, apperr.KindBadRequest, asAppErr(t, err).Kind)
}

func TestCreateSaleUpdatesClientLedger(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)
	c := seedClient(t, f.db, tenantA, "Aicha")

	require.NoError(t, f.svc.CreateTransaction(tenantA, saleOf(p.ID, 4, 250, 200, &c.ID)))

	got := reloadClient(t, f.db, c)
	assert.Equal(t, float64(1000), got.TotalDue)
	assert.Equal(t, float64(200), got.AmountPaid)
	assert.Equal(t, float64(800), got.Balance)
	assert.Equal(t, got.TotalDue-got.AmountPaid, got.Balance)
}

func TestUpdateAmountPaidAppliesDeltaOnce(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)
	c := seedClient(t, f.db, tenantA, "Aicha")

	txn := saleOf(p.ID, 4, 250, 200, &c.ID)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))

	paid := 350.0
	updated, err := f.svc.UpdateTransaction(tenantA, txn.ID, &model.TransactionUpdate{AmountPaid: &paid})
	require.NoError(t, err)

	assert.Equal(t, float64(350), updated.AmountPaid)
	assert.Equal(t, float64(650), updated.RemainingAmount)

	got := reloadClient(t, f.db, c)
	assert.Equal(t, float64(1000), got.TotalDue)
	assert.Equal(t, float64(350), got.AmountPaid)
	assert.Equal(t, float64(650), got.Balance)

	// A positive payment delta emits a bilingual notification pair.
	var notifs []model.Notification
	require.NoError(t, f.db.Where("type = ?", model.NotifPaymentReceived).Find(&notifs).Error)
	assert.Len(t, notifs, 2)
}

func TestUpdateAmountPaidExceedingTotal(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	txn := saleOf(p.ID, 4, 250, 200, nil)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))

	paid := 1500.0
	_, err := f.svc.UpdateTransaction(tenantA, txn.ID, &model.TransactionUpdate{AmountPaid: &paid})
	assert.Equal(t, apperr.KindBadRequest, asAppErr(t, err).Kind)
}

func TestCancelRestoresStockAndLedger(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)
	c := seedClient(t, f.db, tenantA, "Aicha")

	txn := saleOf(p.ID, 4, 250, 200, &c.ID)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))
	assert.Equal(t, float64(6), reloadProduct(t, f.db, p).Quantity)

	cancelled, err := f.svc.CancelTransaction(tenantA, txn.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TxCancelled, cancelled.Status)

	assert.Equal(t, float64(10), reloadProduct(t, f.db, p).Quantity)
	got := reloadClient(t, f.db, c)
	assert.Zero(t, got.TotalDue)
	assert.Zero(t, got.AmountPaid)
	assert.Zero(t, got.Balance)
}

func TestCancelTwiceIsRejected(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	txn := saleOf(p.ID, 2, 10, 0, nil)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))

	_, err := f.svc.CancelTransaction(tenantA, txn.ID)
	require.NoError(t, err)

	_, err = f.svc.CancelTransaction(tenantA, txn.ID)
	appErr := asAppErr(t, err)
	assert.Equal(t, apperr.KindConflict, appErr.Kind)
	assert.Equal(t, "transaction already finalized", appErr.Message)

	// Stock restored exactly once.
	assert.Equal(t, float64(10), reloadProduct(t, f.db, p).Quantity)
}

func TestUpdateAfterCompletionIsRejected(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	txn := saleOf(p.ID, 2, 10, 20, nil)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))

	completed := model.TxCompleted
	_, err := f.svc.UpdateTransaction(tenantA, txn.ID, &model.TransactionUpdate{Status: &completed})
	require.NoError(t, err)

	notes := "late edit"
	_, err = f.svc.UpdateTransaction(tenantA, txn.ID, &model.TransactionUpdate{Notes: &notes})
	assert.Equal(t, apperr.KindConflict, asAppErr(t, err).Kind)

	_, err = f.svc.CancelTransaction(tenantA, txn.ID)
	assert.Equal(t, apperr.KindConflict, asAppErr(t, err).Kind)
}

func TestUpdateStatusCancelledRunsCancel(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	txn := saleOf(p.ID, 4, 10, 0, nil)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))

	cancelled := model.TxCancelled
	updated, err := f.svc.UpdateTransaction(tenantA, txn.ID, &model.TransactionUpdate{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, model.TxCancelled, updated.Status)
	assert.Equal(t, float64(10), reloadProduct(t, f.db, p).Quantity)
}

func TestTenantIsolation(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 10, 0)

	txn := saleOf(p.ID, 2, 10, 0, nil)
	require.NoError(t, f.svc.CreateTransaction(tenantA, txn))

	_, err := f.svc.GetTransaction(tenantB, txn.ID)
	assert.Equal(t, apperr.KindNotFound, asAppErr(t, err).Kind)

	_, err = f.svc.CancelTransaction(tenantB, txn.ID)
	assert.Equal(t, apperr.KindNotFound, asAppErr(t, err).Kind)

	// Another tenant cannot sell against this tenant's stock either.
	err = f.svc.CreateTransaction(tenantB, saleOf(p.ID, 1, 10, 0, nil))
	assert.Equal(t, apperr.KindNotFound, asAppErr(t, err).Kind)
}

func TestListTransactionsFilters(t *testing.T) {
	f := newLedgerFixture(t)
	p := seedProduct(t, f.db, tenantA, "SKU-1", 100, 0)

	require.NoError(t, f.svc.CreateTransaction(tenantA, saleOf(p.ID, 1, 10, 0, nil)))
	purchase := &model.Transaction{
		Type:  model.TxPurchase,
		Items: []model.TransactionItem{{ProductID: p.ID, Quantity: 5, Price: 4}},
	}
	require.NoError(t, f.svc.CreateTransaction(tenantA, purchase))

	sales, err := f.svc.ListTransactions(tenantA, model.TransactionFilter{Type: model.TxSale})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, model.TxSale, sales[0].Type)

	all, err := f.svc.ListTransactions(tenantA, model.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := f.svc.ListTransactions(tenantB, model.TransactionFilter{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

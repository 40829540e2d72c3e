package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type TransactionRepository interface {
	Create(tx *gorm.DB, txn *model.Transaction) error
	FindByID(tx *gorm.DB, userID string, id uuid.UUID) (*model.Transaction, error)
	FindAll(userID string, filter model.TransactionFilter) ([]model.Transaction, error)
	UpdateFields(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	Recent(userID string, limit int) ([]model.Transaction, error)
	PaymentDueSoon(now time.Time, window time.Duration) ([]model.Transaction, error)
	HasForClient(userID string, clientID uuid.UUID) (bool, error)
	GetDashboardStats(userID string, from, to time.Time, recentLimit int) (*DashboardStats, error)
}

// DashboardStats is the read-only projection behind GET /dashboard/stats.
// Every money sum excludes cancelled transactions.
type DashboardStats struct {
	TotalProducts int64   `json:"total_products"`
	LowStockCount int64   `json:"low_stock_count"`
	CategoryCount int64   `json:"category_count"`
	SupplierCount int64   `json:"supplier_count"`
	ClientCount   int64   `json:"client_count"`
	StockValue    float64 `json:"stock_value"`

	SalesTotal         float64 `json:"sales_total"`
	PurchasesTotal     float64 `json:"purchases_total"`
	AmountReceived     float64 `json:"amount_received"`
	AmountPaidOut      float64 `json:"amount_paid_out"`
	PendingReceivables float64 `json:"pending_receivables"`
	PendingPayables    float64 `json:"pending_payables"`
	ExpensesTotal      float64 `json:"expenses_total"`
	Profit             float64 `json:"profit"`

	DebtorCount  int64   `json:"debtor_count"`
	DebtorsTotal float64 `json:"debtors_total"`

	RecentTransactions []model.Transaction `json:"recent_transactions"`
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *gorm.DB, txn *model.Transaction) error {
	if tx == nil {
		tx = r.db
	}
	return errors.Wrap(tx.Create(txn).Error, "transaction create")
}

func (r *transactionRepo) FindByID(tx *gorm.DB, userID string, id uuid.UUID) (*model.Transaction, error) {
	if tx == nil {
		tx = r.db
	}
	var txn model.Transaction
	err := tx.Preload("Items").Preload("Items.Product").
		Preload("Client").Preload("Supplier").
		Where("user_id = ?", userID).
		First(&txn, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *transactionRepo) FindAll(userID string, filter model.TransactionFilter) ([]model.Transaction, error) {
	var txns []model.Transaction
	q := r.db.Preload("Items").Preload("Client").Preload("Supplier").
		Where("user_id = ?", userID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ClientID != nil {
		q = q.Where("client_id = ?", *filter.ClientID)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at <= ?", *filter.To)
	}
	err := q.Order("created_at DESC").Find(&txns).Error
	return txns, err
}

func (r *transactionRepo) UpdateFields(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	if tx == nil {
		tx = r.db
	}
	return errors.Wrap(
		tx.Model(&model.Transaction{}).Where("id = ?", id).Updates(fields).Error,
		"transaction update",
	)
}

func (r *transactionRepo) Recent(userID string, limit int) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.Preload("Client").Preload("Supplier").
		Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&txns).Error
	return txns, err
}

// PaymentDueSoon spans every tenant; used by the cron-triggered scan.
func (r *transactionRepo) PaymentDueSoon(now time.Time, window time.Duration) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := r.db.Preload("Client").Preload("Supplier").
		Where("status = ? AND remaining_amount > 0", model.TxPending).
		Where("payment_due_date IS NOT NULL AND payment_due_date <= ?", now.Add(window)).
		Order("user_id ASC").Find(&txns).Error
	return txns, err
}

func (r *transactionRepo) HasForClient(userID string, clientID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Transaction{}).
		Where("user_id = ? AND client_id = ?", userID, clientID).
		Count(&count).Error
	return count > 0, err
}

func (r *transactionRepo) GetDashboardStats(userID string, from, to time.Time, recentLimit int) (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Product{}).Where("user_id = ?", userID).Count(&stats.TotalProducts)
	r.db.Model(&model.Product{}).
		Where("user_id = ? AND min_quantity > 0 AND quantity < min_quantity", userID).
		Count(&stats.LowStockCount)
	r.db.Model(&model.Category{}).Where("user_id = ?", userID).Count(&stats.CategoryCount)
	r.db.Model(&model.Supplier{}).Where("user_id = ?", userID).Count(&stats.SupplierCount)
	r.db.Model(&model.Client{}).Where("user_id = ?", userID).Count(&stats.ClientCount)

	r.db.Model(&model.Product{}).Where("user_id = ?", userID).
		Select("COALESCE(SUM(price * quantity), 0)").Scan(&stats.StockValue)

	ranged := func(txType model.TransactionType) *gorm.DB {
		return r.db.Model(&model.Transaction{}).
			Where("user_id = ? AND type = ? AND status <> ?", userID, txType, model.TxCancelled).
			Where("created_at BETWEEN ? AND ?", from, to)
	}

	if err := ranged(model.TxSale).Select("COALESCE(SUM(total), 0)").Scan(&stats.SalesTotal).Error; err != nil {
		return nil, errors.Wrap(err, "dashboard sales total")
	}
	if err := ranged(model.TxPurchase).Select("COALESCE(SUM(total), 0)").Scan(&stats.PurchasesTotal).Error; err != nil {
		return nil, errors.Wrap(err, "dashboard purchases total")
	}
	ranged(model.TxSale).Select("COALESCE(SUM(amount_paid), 0)").Scan(&stats.AmountReceived)
	ranged(model.TxPurchase).Select("COALESCE(SUM(amount_paid), 0)").Scan(&stats.AmountPaidOut)

	// Outstanding amounts are a current snapshot, not a per-range figure:
	// an old pending sale is still owed today regardless of the window.
	r.db.Model(&model.Transaction{}).
		Where("user_id = ? AND type = ? AND status = ?", userID, model.TxSale, model.TxPending).
		Select("COALESCE(SUM(remaining_amount), 0)").Scan(&stats.PendingReceivables)
	r.db.Model(&model.Transaction{}).
		Where("user_id = ? AND type = ? AND status = ?", userID, model.TxPurchase, model.TxPending).
		Select("COALESCE(SUM(remaining_amount), 0)").Scan(&stats.PendingPayables)

	r.db.Model(&model.Expense{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Select("COALESCE(SUM(amount), 0)").Scan(&stats.ExpensesTotal)

	stats.Profit = stats.SalesTotal - stats.PurchasesTotal

	r.db.Model(&model.Client{}).Where("user_id = ? AND balance > 0", userID).Count(&stats.DebtorCount)
	r.db.Model(&model.Client{}).Where("user_id = ? AND balance > 0", userID).
		Select("COALESCE(SUM(balance), 0)").Scan(&stats.DebtorsTotal)

	recent, err := r.Recent(userID, recentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "dashboard recent transactions")
	}
	stats.RecentTransactions = recent

	return &stats, nil
}

package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Category{}, &model.Supplier{}, &model.Client{},
		&model.Product{}, &model.Transaction{}, &model.TransactionItem{},
		&model.Expense{}, &model.ExpenseCategory{},
		&model.Notification{}, &model.UserSettings{},
	)
	require.NoError(t, err)

	return db
}

type ledgerFixture struct {
	db       *gorm.DB
	svc      LedgerService
	products repository.ProductRepository
	clients  repository.ClientRepository
	txns     repository.TransactionRepository
	notifs   repository.NotificationRepository
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db := setupTestDB(t)
	products := repository.NewProductRepo(db)
	txns := repository.NewTransactionRepo(db)
	clients := repository.NewClientRepo(db)
	notifs := repository.NewNotificationRepo(db)

	return &ledgerFixture{
		db:       db,
		svc:      NewLedgerService(products, txns, clients, notifs, db, nil),
		products: products,
		clients:  clients,
		txns:     txns,
		notifs:   notifs,
	}
}

func seedProduct(t *testing.T, db *gorm.DB, userID, sku string, quantity, minQuantity float64) *model.Product {
	t.Helper()

	product := &model.Product{
		UserID:      userID,
		SKU:         sku,
		Name:        "Product " + sku,
		Price:       10,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		Unit:        model.UnitPiece,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedClient(t *testing.T, db *gorm.DB, userID, name string) *model.Client {
	t.Helper()

	client := &model.Client{UserID: userID, Name: name}
	require.NoError(t, db.Create(client).Error)
	return client
}

func reloadProduct(t *testing.T, db *gorm.DB, p *model.Product) *model.Product {
	t.Helper()

	var out model.Product
	require.NoError(t, db.First(&out, "id = ?", p.ID).Error)
	return &out
}

func reloadClient(t *testing.T, db *gorm.DB, c *model.Client) *model.Client {
	t.Helper()

	var out model.Client
	require.NoError(t, db.First(&out, "id = ?", c.ID).Error)
	return &out
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

const tenantA = "auth0|tenant-a"
const tenantB = "auth0|tenant-b"

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

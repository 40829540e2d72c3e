package repository

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(userID string, search string) ([]model.Product, error)
	FindByID(userID string, id uuid.UUID) (*model.Product, error)
	FindBySKU(userID, sku string) (*model.Product, error)
	FindByIDs(tx *gorm.DB, userID string, ids []uuid.UUID) ([]model.Product, error)
	Update(product *model.Product) error
	Delete(userID string, id uuid.UUID) error
	HasTransactionItems(userID string, id uuid.UUID) (bool, error)
	LowStock(userID string) ([]model.Product, error)
	LowStockAll() ([]model.Product, error)
	AdjustQuantity(tx *gorm.DB, userID string, id uuid.UUID, delta float64, guard bool) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return errors.Wrap(r.db.Create(product).Error, "product create")
}

func (r *productRepo) FindAll(userID string, search string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Preload("Category").Preload("Supplier").Where("user_id = ?", userID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR sku LIKE ?", like, like)
	}
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(userID string, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").Preload("Supplier").
		Where("user_id = ?", userID).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(userID, sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("user_id = ?", userID).First(&product, "sku = ?", sku).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) FindByIDs(tx *gorm.DB, userID string, ids []uuid.UUID) ([]model.Product, error) {
	if tx == nil {
		tx = r.db
	}
	var products []model.Product
	err := tx.Where("user_id = ? AND id IN ?", userID, ids).Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return errors.Wrap(r.db.Save(product).Error, "product update")
}

func (r *productRepo) Delete(userID string, id uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) HasTransactionItems(userID string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.TransactionItem{}).
		Joins("JOIN transactions ON transactions.id = transaction_items.transaction_id").
		Where("transaction_items.product_id = ? AND transactions.user_id = ?", id, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *productRepo) LowStock(userID string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("user_id = ? AND min_quantity > 0 AND quantity < min_quantity", userID).
		Order("quantity ASC").Find(&products).Error
	return products, err
}

// LowStockAll spans every tenant; used by the cron-triggered scan.
func (r *productRepo) LowStockAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("min_quantity > 0 AND quantity < min_quantity").
		Order("user_id ASC").Find(&products).Error
	return products, err
}

// AdjustQuantity applies a stock delta as a single conditional UPDATE.
// With guard set, a negative delta only applies while sufficient stock
// remains; the check and the write happen in one statement so concurrent
// sales cannot drive the quantity negative. Returns false when the row is
// missing or the guard rejected the delta.
func (r *productRepo) AdjustQuantity(tx *gorm.DB, userID string, id uuid.UUID, delta float64, guard bool) (bool, error) {
	if tx == nil {
		tx = r.db
	}
	q := tx.Model(&model.Product{}).Where("id = ? AND user_id = ?", id, userID)
	if guard && delta < 0 {
		q = q.Where("quantity >= ?", -delta)
	}
	res := q.Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "product adjust quantity")
	}
	return res.RowsAffected > 0, nil
}

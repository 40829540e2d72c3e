package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type SupplierRepository interface {
	Create(supplier *model.Supplier) error
	FindAll(userID string, search string) ([]model.Supplier, error)
	FindByID(userID string, id uuid.UUID) (*model.Supplier, error)
	Update(supplier *model.Supplier) error
	Delete(userID string, id uuid.UUID) error
	HasProducts(userID string, id uuid.UUID) (bool, error)
}

type supplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db}
}

func (r *supplierRepo) Create(supplier *model.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *supplierRepo) FindAll(userID string, search string) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	q := r.db.Where("user_id = ?", userID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	err := q.Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) FindByID(userID string, id uuid.UUID) (*model.Supplier, error) {
	var supplier model.Supplier
	err := r.db.Where("user_id = ?", userID).First(&supplier, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepo) Update(supplier *model.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *supplierRepo) Delete(userID string, id uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Supplier{}, "id = ?", id).Error
}

func (r *supplierRepo) HasProducts(userID string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("user_id = ? AND supplier_id = ?", userID, id).
		Count(&count).Error
	return count > 0, err
}

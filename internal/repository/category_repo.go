package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(userID string) ([]model.Category, error)
	FindByID(userID string, id uuid.UUID) (*model.Category, error)
	FindByName(userID, name string) (*model.Category, error)
	Update(category *model.Category) error
	Delete(userID string, id uuid.UUID) error
	HasProducts(userID string, id uuid.UUID) (bool, error)
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll(userID string) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(userID string, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("user_id = ?", userID).First(&category, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) FindByName(userID, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.Where("user_id = ?", userID).First(&category, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(userID string, id uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Category{}, "id = ?", id).Error
}

func (r *categoryRepo) HasProducts(userID string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("user_id = ? AND category_id = ?", userID, id).
		Count(&count).Error
	return count > 0, err
}

package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	FindAll(userID string, from, to *time.Time) ([]model.Expense, error)
	FindByID(userID string, id uuid.UUID) (*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(userID string, id uuid.UUID) error

	CreateCategory(category *model.ExpenseCategory) error
	FindCategories(userID string) ([]model.ExpenseCategory, error)
	FindCategoryByName(userID, name string) (*model.ExpenseCategory, error)
	DeleteCategory(userID string, id uuid.UUID) error
	CategoryHasExpenses(userID string, id uuid.UUID) (bool, error)
}

type expenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db}
}

func (r *expenseRepo) Create(expense *model.Expense) error {
	return r.db.Create(expense).Error
}

func (r *expenseRepo) FindAll(userID string, from, to *time.Time) ([]model.Expense, error) {
	var expenses []model.Expense
	q := r.db.Preload("Category").Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	err := q.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) FindByID(userID string, id uuid.UUID) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.Preload("Category").Where("user_id = ?", userID).
		First(&expense, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepo) Update(expense *model.Expense) error {
	return r.db.Save(expense).Error
}

func (r *expenseRepo) Delete(userID string, id uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Expense{}, "id = ?", id).Error
}

func (r *expenseRepo) CreateCategory(category *model.ExpenseCategory) error {
	return r.db.Create(category).Error
}

func (r *expenseRepo) FindCategories(userID string) ([]model.ExpenseCategory, error) {
	var categories []model.ExpenseCategory
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *expenseRepo) FindCategoryByName(userID, name string) (*model.ExpenseCategory, error) {
	var category model.ExpenseCategory
	err := r.db.Where("user_id = ?", userID).First(&category, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *expenseRepo) DeleteCategory(userID string, id uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.ExpenseCategory{}, "id = ?", id).Error
}

func (r *expenseRepo) CategoryHasExpenses(userID string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Expense{}).
		Where("user_id = ? AND category_id = ?", userID, id).
		Count(&count).Error
	return count > 0, err
}

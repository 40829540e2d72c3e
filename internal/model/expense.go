package model

import (
	"time"

	"github.com/google/uuid"
)

// Expense is an outgoing cost independent of product stock.
type Expense struct {
	BaseModel
	UserID        string           `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Description   string           `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Amount        float64          `gorm:"not null" json:"amount" validate:"required,gt=0"`
	Date          time.Time        `gorm:"not null;index" json:"date"`
	PaymentMethod string           `gorm:"type:varchar(20)" json:"payment_method" validate:"omitempty,oneof=CASH TRANSFER CHECK CREDIT"`
	CategoryID    *uuid.UUID       `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category      *ExpenseCategory `json:"category,omitempty" validate:"-"`
}

type ExpenseCategory struct {
	BaseModel
	UserID string `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_expense_categories_user_name" json:"user_id"`
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex:idx_expense_categories_user_name" json:"name" validate:"required"`
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TxPurchase   TransactionType = "PURCHASE"
	TxSale       TransactionType = "SALE"
	TxAdjustment TransactionType = "ADJUSTMENT"
)

type TransactionStatus string

const (
	TxPending   TransactionStatus = "PENDING"
	TxCompleted TransactionStatus = "COMPLETED"
	TxCancelled TransactionStatus = "CANCELLED"
)

// Finalized statuses accept no further updates.
func (s TransactionStatus) Finalized() bool {
	return s == TxCompleted || s == TxCancelled
}

type Transaction struct {
	BaseModel
	UserID string          `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Type   TransactionType `gorm:"type:varchar(12);not null" json:"type" validate:"required,oneof=PURCHASE SALE ADJUSTMENT"`
	// A transaction is born PENDING or COMPLETED; CANCELLED is only ever
	// reached through the cancel path so its ledger effects stay reversible.
	Status TransactionStatus `gorm:"type:varchar(12);not null;default:'PENDING'" json:"status" validate:"omitempty,oneof=PENDING COMPLETED"`

	Total           float64 `gorm:"not null;default:0" json:"total" validate:"gte=0"`
	AmountPaid      float64 `gorm:"not null;default:0" json:"amount_paid" validate:"gte=0"`
	RemainingAmount float64 `gorm:"not null;default:0" json:"remaining_amount"`
	PaymentMethod   string  `gorm:"type:varchar(20)" json:"payment_method" validate:"omitempty,oneof=CASH TRANSFER CHECK CREDIT"`

	ClientID   *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Client     *Client    `json:"client,omitempty" validate:"-"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `json:"supplier,omitempty" validate:"-"`

	PaymentDueDate *time.Time `json:"payment_due_date,omitempty"`
	Notes          string     `gorm:"type:text" json:"notes"`

	// Line items are created atomically with the transaction and never
	// updated afterwards.
	Items []TransactionItem `gorm:"constraint:OnDelete:CASCADE" json:"items" validate:"required,min=1,dive"`
}

type TransactionItem struct {
	BaseModel
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transaction_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product       *Product  `json:"product,omitempty" validate:"-"`
	Quantity      float64   `gorm:"not null" json:"quantity" validate:"required"`
	Price         float64   `gorm:"not null;default:0" json:"price" validate:"gte=0"`
}

// TransactionUpdate is the mutable subset of a pending transaction.
// Nil fields are left untouched.
type TransactionUpdate struct {
	Status         *TransactionStatus `json:"status" validate:"omitempty,oneof=PENDING COMPLETED CANCELLED"`
	AmountPaid     *float64           `json:"amount_paid" validate:"omitempty,gte=0"`
	PaymentMethod  *string            `json:"payment_method" validate:"omitempty,oneof=CASH TRANSFER CHECK CREDIT"`
	PaymentDueDate *time.Time         `json:"payment_due_date"`
	Notes          *string            `json:"notes"`
}

// TransactionFilter narrows list queries.
type TransactionFilter struct {
	Type     TransactionType
	Status   TransactionStatus
	ClientID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

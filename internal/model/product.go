package model

import "github.com/google/uuid"

// Unit of measure for product stock.
type Unit string

const (
	UnitKG    Unit = "KG"
	UnitGram  Unit = "GRAM"
	UnitPiece Unit = "PIECE"
)

type Product struct {
	BaseModel
	UserID      string  `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_products_user_sku" json:"user_id"`
	SKU         string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_products_user_sku" json:"sku" validate:"required"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null;default:0" json:"price" validate:"gte=0"`
	Cost        float64 `gorm:"not null;default:0" json:"cost" validate:"gte=0"`
	Quantity    float64 `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	MinQuantity float64 `gorm:"not null;default:0" json:"min_quantity" validate:"gte=0"`
	Unit        Unit    `gorm:"type:varchar(10);default:'PIECE'" json:"unit" validate:"omitempty,oneof=KG GRAM PIECE"`

	CategoryID *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category   *Category  `json:"category,omitempty" validate:"-"`
	SupplierID *uuid.UUID `gorm:"type:uuid;index" json:"supplier_id,omitempty"`
	Supplier   *Supplier  `json:"supplier,omitempty" validate:"-"`
}

// LowStock reports whether the product is below its alert threshold.
func (p *Product) LowStock() bool {
	return p.MinQuantity > 0 && p.Quantity < p.MinQuantity
}

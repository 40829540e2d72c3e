package model

type Category struct {
	BaseModel
	UserID      string `gorm:"type:varchar(64);not null;index;uniqueIndex:idx_categories_user_name" json:"user_id"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description"`
}

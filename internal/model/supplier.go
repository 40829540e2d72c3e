package model

type Supplier struct {
	BaseModel
	UserID  string `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Name    string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email   string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Phone   string `gorm:"type:varchar(30)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`
}

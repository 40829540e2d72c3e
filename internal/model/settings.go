package model

// UserSettings holds per-tenant preferences consulted by the notification
// scanners and the UI.
type UserSettings struct {
	BaseModel
	UserID         string `gorm:"type:varchar(64);not null;uniqueIndex" json:"user_id"`
	Language       string `gorm:"type:varchar(5);not null;default:'en'" json:"language" validate:"omitempty,oneof=en ar"`
	Currency       string `gorm:"type:varchar(5);not null;default:'MAD'" json:"currency"`
	// No column defaults on the alert flags: with a default tag GORM drops
	// a false zero value on insert, turning a first-save opt-out into true.
	// Defaults live in DefaultSettings instead.
	LowStockAlerts bool `gorm:"not null" json:"low_stock_alerts"`
	PaymentAlerts  bool `gorm:"not null" json:"payment_alerts"`
}

// DefaultSettings returns the preferences a tenant gets before saving any.
func DefaultSettings(userID string) *UserSettings {
	return &UserSettings{
		UserID:         userID,
		Language:       "en",
		Currency:       "MAD",
		LowStockAlerts: true,
		PaymentAlerts:  true,
	}
}

package model

type NotificationType string

const (
	NotifStockAlert      NotificationType = "STOCK_ALERT"
	NotifPaymentDue      NotificationType = "PAYMENT_DUE"
	NotifPaymentReceived NotificationType = "PAYMENT_RECEIVED"
	NotifSystem          NotificationType = "SYSTEM"
)

type NotificationStatus string

const (
	NotifUnread   NotificationStatus = "UNREAD"
	NotifRead     NotificationStatus = "READ"
	NotifArchived NotificationStatus = "ARCHIVED"
)

// Notification rows come in pairs, one per language. The dedup key
// (user, link, calendar day) is language-agnostic so a pair counts as a
// single event.
type Notification struct {
	BaseModel
	UserID   string             `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Type     NotificationType   `gorm:"type:varchar(20);not null" json:"type"`
	Status   NotificationStatus `gorm:"type:varchar(10);not null;default:'UNREAD'" json:"status"`
	Title    string             `gorm:"type:varchar(255);not null" json:"title"`
	Message  string             `gorm:"type:text" json:"message"`
	Language string             `gorm:"type:varchar(5);not null;default:'en'" json:"language"`
	Link     string             `gorm:"type:varchar(255);index" json:"link"`
}

package service

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/apperr"
	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/internal/ws"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/logger"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/metrics"
)

// ScanResult summarizes a notification scan. One emitted event means one
// bilingual notification pair.
type ScanResult struct {
	Emitted int `json:"emitted"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type NotificationService interface {
	ScanLowStock(now time.Time, force bool) (*ScanResult, error)
	ScanPaymentDue(now time.Time) (*ScanResult, error)

	List(userID string, status model.NotificationStatus, notifType model.NotificationType) ([]model.Notification, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID string, id uuid.UUID) error
	MarkAllRead(userID string) error
	Archive(userID string, id uuid.UUID) error
	Delete(userID string, id uuid.UUID) error
}

type notificationService struct {
	notifRepo    repository.NotificationRepository
	productRepo  repository.ProductRepository
	txRepo       repository.TransactionRepository
	settingsRepo repository.SettingsRepository
	db           *gorm.DB
	wsHub        *ws.Hub
	dueWindow    time.Duration
}

func NewNotificationService(
	nRepo repository.NotificationRepository,
	pRepo repository.ProductRepository,
	tRepo repository.TransactionRepository,
	sRepo repository.SettingsRepository,
	db *gorm.DB,
	hub *ws.Hub,
	dueWindowDays int,
) NotificationService {
	if dueWindowDays <= 0 {
		dueWindowDays = 7
	}
	return &notificationService{
		notifRepo:    nRepo,
		productRepo:  pRepo,
		txRepo:       tRepo,
		settingsRepo: sRepo,
		db:           db,
		wsHub:        hub,
		dueWindow:    time.Duration(dueWindowDays) * 24 * time.Hour,
	}
}

// ScanLowStock emits a bilingual notification pair for every product under
// its minimum quantity, across all tenants. A failing candidate never aborts
// the rest of the scan.
func (s *notificationService) ScanLowStock(now time.Time, force bool) (*ScanResult, error) {
	products, err := s.productRepo.LowStockAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	result := &ScanResult{}
	settings := map[string]*model.UserSettings{}

	for _, p := range products {
		prefs, err := s.tenantSettings(settings, p.UserID)
		if err != nil {
			result.Failed++
			metrics.ScanFailure("low_stock")
			continue
		}
		if !prefs.LowStockAlerts {
			result.Skipped++
			continue
		}

		link := "/products/" + p.ID.String()
		if !force {
			exists, err := s.notifRepo.ExistsForDay(p.UserID, link, now)
			if err != nil {
				result.Failed++
				metrics.ScanFailure("low_stock")
				logger.Warn("low stock dedup check failed", "error", err, "product_id", p.ID)
				continue
			}
			if exists {
				result.Skipped++
				continue
			}
		}

		pair := []*model.Notification{
			{
				UserID:   p.UserID,
				Type:     model.NotifStockAlert,
				Title:    "Low stock alert",
				Message:  fmt.Sprintf("%s is below its minimum stock (%.2f < %.2f)", p.Name, p.Quantity, p.MinQuantity),
				Language: "en",
				Link:     link,
			},
			{
				UserID:   p.UserID,
				Type:     model.NotifStockAlert,
				Title:    "تنبيه انخفاض المخزون",
				Message:  fmt.Sprintf("%s أقل من الحد الأدنى للمخزون (%.2f < %.2f)", p.Name, p.Quantity, p.MinQuantity),
				Language: "ar",
				Link:     link,
			},
		}
		if s.emitPair(p.UserID, pair, "low_stock") {
			result.Emitted++
		} else {
			result.Failed++
		}
	}
	return result, nil
}

// ScanPaymentDue emits a bilingual pair for every pending transaction with
// an outstanding amount due within the window.
func (s *notificationService) ScanPaymentDue(now time.Time) (*ScanResult, error) {
	txns, err := s.txRepo.PaymentDueSoon(now, s.dueWindow)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	result := &ScanResult{}
	settings := map[string]*model.UserSettings{}

	for _, txn := range txns {
		prefs, err := s.tenantSettings(settings, txn.UserID)
		if err != nil {
			result.Failed++
			metrics.ScanFailure("payment_due")
			continue
		}
		if !prefs.PaymentAlerts {
			result.Skipped++
			continue
		}

		daysUntilDue := int(math.Ceil(txn.PaymentDueDate.Sub(now).Hours() / 24))
		if daysUntilDue < 0 {
			result.Skipped++
			continue
		}

		link := "/transactions/" + txn.ID.String()
		exists, err := s.notifRepo.ExistsForDay(txn.UserID, link, now)
		if err != nil {
			result.Failed++
			metrics.ScanFailure("payment_due")
			logger.Warn("payment due dedup check failed", "error", err, "transaction_id", txn.ID)
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		name := counterpartyName(&txn)
		pair := []*model.Notification{
			{
				UserID:   txn.UserID,
				Type:     model.NotifPaymentDue,
				Title:    fmt.Sprintf("Payment due in %d day(s)", daysUntilDue),
				Message:  fmt.Sprintf("%s: %.2f remaining, due in %d day(s)", name, txn.RemainingAmount, daysUntilDue),
				Language: "en",
				Link:     link,
			},
			{
				UserID:   txn.UserID,
				Type:     model.NotifPaymentDue,
				Title:    fmt.Sprintf("دفعة مستحقة خلال %d يوم", daysUntilDue),
				Message:  fmt.Sprintf("%s: المبلغ المتبقي %.2f، مستحق خلال %d يوم", name, txn.RemainingAmount, daysUntilDue),
				Language: "ar",
				Link:     link,
			},
		}
		if s.emitPair(txn.UserID, pair, "payment_due") {
			result.Emitted++
		} else {
			result.Failed++
		}
	}
	return result, nil
}

func (s *notificationService) tenantSettings(cache map[string]*model.UserSettings, userID string) (*model.UserSettings, error) {
	if prefs, ok := cache[userID]; ok {
		return prefs, nil
	}
	prefs, err := s.settingsRepo.Get(userID)
	if err != nil {
		logger.Warn("settings lookup failed", "error", err, "user_id", userID)
		return nil, err
	}
	cache[userID] = prefs
	return prefs, nil
}

// emitPair writes both language rows in one transaction. A half-written
// pair would satisfy the dedup key and block the other half forever.
func (s *notificationService) emitPair(userID string, pair []*model.Notification, scan string) bool {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range pair {
			if err := s.notifRepo.Create(tx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		metrics.ScanFailure(scan)
		logger.Warn("notification create failed", "error", err, "scan", scan, "user_id", userID)
		return false
	}
	for _, row := range pair {
		metrics.NotificationEmitted(string(row.Type))
	}
	if s.wsHub != nil {
		go s.wsHub.Notify(userID, map[string]interface{}{
			"type":         "notification",
			"notification": pair[0],
		})
	}
	return true
}

func counterpartyName(txn *model.Transaction) string {
	if txn.Client != nil {
		return txn.Client.Name
	}
	if txn.Supplier != nil {
		return txn.Supplier.Name
	}
	return "counterparty"
}

func (s *notificationService) List(userID string, status model.NotificationStatus, notifType model.NotificationType) ([]model.Notification, error) {
	return s.notifRepo.FindAll(userID, status, notifType)
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	return s.notifRepo.UnreadCount(userID)
}

func (s *notificationService) MarkRead(userID string, id uuid.UUID) error {
	return notFoundOrNil(s.notifRepo.MarkRead(userID, id))
}

func (s *notificationService) MarkAllRead(userID string) error {
	return s.notifRepo.MarkAllRead(userID)
}

func (s *notificationService) Archive(userID string, id uuid.UUID) error {
	return notFoundOrNil(s.notifRepo.Archive(userID, id))
}

func (s *notificationService) Delete(userID string, id uuid.UUID) error {
	return notFoundOrNil(s.notifRepo.Delete(userID, id))
}

func notFoundOrNil(err error) error {
	if err == nil {
		return nil
	}
	return notFoundOr(err, "notification")
}

package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type NotificationRepository interface {
	Create(tx *gorm.DB, notification *model.Notification) error
	FindAll(userID string, status model.NotificationStatus, notifType model.NotificationType) ([]model.Notification, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID string, id uuid.UUID) error
	MarkAllRead(userID string) error
	Archive(userID string, id uuid.UUID) error
	Delete(userID string, id uuid.UUID) error
	ExistsForDay(userID, link string, day time.Time) (bool, error)
}

type notificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db}
}

func (r *notificationRepo) Create(tx *gorm.DB, notification *model.Notification) error {
	if tx == nil {
		tx = r.db
	}
	return errors.Wrap(tx.Create(notification).Error, "notification create")
}

func (r *notificationRepo) FindAll(userID string, status model.NotificationStatus, notifType model.NotificationType) ([]model.Notification, error) {
	var notifications []model.Notification
	q := r.db.Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if notifType != "" {
		q = q.Where("type = ?", notifType)
	}
	err := q.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND status = ?", userID, model.NotifUnread).
		Count(&count).Error
	return count, err
}

func (r *notificationRepo) MarkRead(userID string, id uuid.UUID) error {
	return r.setStatus(userID, id, model.NotifRead)
}

func (r *notificationRepo) MarkAllRead(userID string) error {
	return r.db.Model(&model.Notification{}).
		Where("user_id = ? AND status = ?", userID, model.NotifUnread).
		Update("status", model.NotifRead).Error
}

func (r *notificationRepo) Archive(userID string, id uuid.UUID) error {
	return r.setStatus(userID, id, model.NotifArchived)
}

func (r *notificationRepo) setStatus(userID string, id uuid.UUID, status model.NotificationStatus) error {
	res := r.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepo) Delete(userID string, id uuid.UUID) error {
	res := r.db.Where("user_id = ?", userID).Delete(&model.Notification{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsForDay implements the (user, link, calendar day) dedup key. The day
// bounds are computed in Go so the query works on both postgres and sqlite.
func (r *notificationRepo) ExistsForDay(userID, link string, day time.Time) (bool, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("user_id = ? AND link = ?", userID, link).
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&count).Error
	return count > 0, err
}

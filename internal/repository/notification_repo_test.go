package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

func seedNotification(t *testing.T, db *gorm.DB, userID, link string, createdAt time.Time) *model.Notification {
	t.Helper()

	n := &model.Notification{
		UserID: userID,
		Type:   model.NotifStockAlert,
		Title:  "Low stock alert",
		Link:   link,
	}
	require.NoError(t, db.Create(n).Error)
	require.NoError(t, db.Model(n).Update("created_at", createdAt).Error)
	return n
}

func TestExistsForDayBounds(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepo(db)

	day := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	link := "/products/abc"

	seedNotification(t, db, tenantA, link, day.Add(-15*time.Hour)) // yesterday 23:30
	exists, err := repo.ExistsForDay(tenantA, link, day)
	require.NoError(t, err)
	assert.False(t, exists)

	seedNotification(t, db, tenantA, link, time.Date(2026, 3, 10, 0, 0, 1, 0, time.UTC))
	exists, err = repo.ExistsForDay(tenantA, link, day)
	require.NoError(t, err)
	assert.True(t, exists)

	// Same day, other link or other tenant: no match.
	exists, err = repo.ExistsForDay(tenantA, "/products/other", day)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsForDay(tenantB, link, day)
	require.NoError(t, err)
	assert.False(t, exists)

	// Next day is a fresh dedup window.
	exists, err = repo.ExistsForDay(tenantA, link, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNotificationStatusTransitions(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepo(db)

	n := &model.Notification{UserID: tenantA, Type: model.NotifSystem, Title: "hello"}
	require.NoError(t, repo.Create(nil, n))
	assert.Equal(t, model.NotifUnread, firstStatus(t, db, n))

	require.NoError(t, repo.MarkRead(tenantA, n.ID))
	assert.Equal(t, model.NotifRead, firstStatus(t, db, n))

	require.NoError(t, repo.Archive(tenantA, n.ID))
	assert.Equal(t, model.NotifArchived, firstStatus(t, db, n))

	require.NoError(t, repo.Delete(tenantA, n.ID))
	assert.ErrorIs(t, repo.Delete(tenantA, n.ID), gorm.ErrRecordNotFound)
}

func firstStatus(t *testing.T, db *gorm.DB, n *model.Notification) model.NotificationStatus {
	t.Helper()

	var out model.Notification
	require.NoError(t, db.First(&out, "id = ?", n.ID).Error)
	return out.Status
}

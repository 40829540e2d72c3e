package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/service"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	notifications, err := h.service.List(
		tenantID(c),
		model.NotificationStatus(c.Query("status")),
		model.NotificationType(c.Query("type")),
	)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.service.UnreadCount(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.Map{"count": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}
	if err := h.service.MarkRead(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.service.MarkAllRead(tenantID(c)); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

func (h *NotificationHandler) Archive(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}
	if err := h.service.Archive(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid notification id")
	}
	if err := h.service.Delete(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

// StockAlertCheck is the cron-triggered low stock scan over all tenants.
// ?force=true bypasses the daily dedup (testing only).
func (h *NotificationHandler) StockAlertCheck(c *fiber.Ctx) error {
	force := c.Query("force") == "true"
	result, err := h.service.ScanLowStock(time.Now(), force)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

// PaymentDueCheck is the cron-triggered payment due scan over all tenants.
func (h *NotificationHandler) PaymentDueCheck(c *fiber.Ctx) error {
	result, err := h.service.ScanPaymentDue(time.Now())
	if err != nil {
		return fail(c, err)
	}
	return ok(c, result)
}

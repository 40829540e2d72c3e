package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sraidytech/Inventory-Management-sub001/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// GetStats returns the aggregate projection for [from, to].
// Defaults to the last month when the range is omitted.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	var from, to time.Time
	if v := c.Query("from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return badRequest(c, "invalid 'from' date")
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return badRequest(c, "invalid 'to' date")
		}
		// Inclusive upper bound on plain dates.
		to = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	stats, err := h.service.GetStats(tenantID(c), from, to)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, stats)
}

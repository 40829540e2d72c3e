package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sraidytech/Inventory-Management-sub001/internal/apperr"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/logger"
)

// Envelope is the uniform response body: {success, data?, error?, errors?}.
type Envelope struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// fail translates a typed error to its HTTP status. Unexpected errors are
// logged and collapsed to a generic 500 without leaking internals.
func fail(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) && ae.Kind != apperr.KindInternal {
		return c.Status(ae.Kind.HTTPStatus()).JSON(Envelope{
			Success: false,
			Error:   ae.Message,
			Errors:  ae.Fields,
		})
	}
	logger.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(Envelope{
		Success: false,
		Error:   "internal server error",
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Envelope{Success: false, Error: msg})
}

// tenantID returns the authenticated tenant set by the auth middleware.
func tenantID(c *fiber.Ctx) string {
	userID, _ := c.Locals("user_id").(string)
	return userID
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

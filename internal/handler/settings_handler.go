package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/validator"
)

type SettingsHandler struct {
	repo repository.SettingsRepository
}

func NewSettingsHandler(repo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.repo.Get(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, settings)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var settings model.UserSettings
	if err := c.BodyParser(&settings); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&settings); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}

	settings.UserID = tenantID(c)
	if settings.Language == "" {
		settings.Language = "en"
	}
	if settings.Currency == "" {
		settings.Currency = "MAD"
	}

	if err := h.repo.Upsert(&settings); err != nil {
		return fail(c, err)
	}
	return ok(c, settings)
}

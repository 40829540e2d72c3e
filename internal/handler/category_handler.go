package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/validator"
)

type CategoryHandler struct {
	repo repository.CategoryRepository
}

func NewCategoryHandler(repo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.repo.FindAll(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, categories)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&category); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}

	dup, _ := h.repo.FindByName(tenantID(c), category.Name)
	if dup != nil && dup.ID != uuid.Nil {
		return c.Status(fiber.StatusConflict).JSON(Envelope{
			Success: false, Error: "category already exists",
		})
	}

	category.UserID = tenantID(c)
	if err := h.repo.Create(&category); err != nil {
		return fail(c, err)
	}
	return created(c, category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}
	var req model.Category
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&req); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}

	existing, err := h.repo.FindByID(tenantID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "category not found"})
		}
		return fail(c, err)
	}

	existing.Name = req.Name
	existing.Description = req.Description

	if err := h.repo.Update(existing); err != nil {
		return fail(c, err)
	}
	return ok(c, existing)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	used, err := h.repo.HasProducts(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	if used {
		return c.Status(fiber.StatusConflict).JSON(Envelope{
			Success: false, Error: "category has products",
		})
	}

	if err := h.repo.Delete(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

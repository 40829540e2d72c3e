package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/validator"
)

type SupplierHandler struct {
	repo repository.SupplierRepository
}

func NewSupplierHandler(repo repository.SupplierRepository) *SupplierHandler {
	return &SupplierHandler{repo: repo}
}

func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.repo.FindAll(tenantID(c), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, suppliers)
}

func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	supplier, err := h.repo.FindByID(tenantID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "supplier not found"})
		}
		return fail(c, err)
	}
	return ok(c, supplier)
}

func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var supplier model.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&supplier); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}
	supplier.UserID = tenantID(c)
	if err := h.repo.Create(&supplier); err != nil {
		return fail(c, err)
	}
	return created(c, supplier)
}

func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}
	var req model.Supplier
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
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "supplier not found"})
		}
		return fail(c, err)
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address

	if err := h.repo.Update(existing); err != nil {
		return fail(c, err)
	}
	return ok(c, existing)
}

func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid supplier id")
	}

	used, err := h.repo.HasProducts(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	if used {
		return c.Status(fiber.StatusConflict).JSON(Envelope{
			Success: false, Error: "supplier has products",
		})
	}

	if err := h.repo.Delete(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

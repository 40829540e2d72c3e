package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/service"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.service.List(tenantID(c), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	product, err := h.service.Get(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := h.service.Create(tenantID(c), &product); err != nil {
		return fail(c, err)
	}
	return created(c, product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	updated, err := h.service.Update(tenantID(c), id, &product)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, updated)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid product id")
	}
	if err := h.service.Delete(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

// StockAlerts lists the tenant's products currently below their minimum.
func (h *ProductHandler) StockAlerts(c *fiber.Ctx) error {
	products, err := h.service.StockAlerts(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, products)
}

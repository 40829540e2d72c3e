package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/validator"
)

type ExpenseHandler struct {
	repo repository.ExpenseRepository
}

func NewExpenseHandler(repo repository.ExpenseRepository) *ExpenseHandler {
	return &ExpenseHandler{repo: repo}
}

func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return badRequest(c, "invalid 'from' date")
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return badRequest(c, "invalid 'to' date")
		}
		to = &t
	}

	expenses, err := h.repo.FindAll(tenantID(c), from, to)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, expenses)
}

func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&expense); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}

	expense.UserID = tenantID(c)
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}
	if err := h.repo.Create(&expense); err != nil {
		return fail(c, err)
	}
	return created(c, expense)
}

func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid expense id")
	}
	var req model.Expense
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
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "expense not found"})
		}
		return fail(c, err)
	}

	existing.Description = req.Description
	existing.Amount = req.Amount
	existing.PaymentMethod = req.PaymentMethod
	existing.CategoryID = req.CategoryID
	existing.Category = nil
	if !req.Date.IsZero() {
		existing.Date = req.Date
	}

	if err := h.repo.Update(existing); err != nil {
		return fail(c, err)
	}
	return ok(c, existing)
}

func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid expense id")
	}
	if _, err := h.repo.FindByID(tenantID(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "expense not found"})
		}
		return fail(c, err)
	}
	if err := h.repo.Delete(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

func (h *ExpenseHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.repo.FindCategories(tenantID(c))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, categories)
}

func (h *ExpenseHandler) CreateCategory(c *fiber.Ctx) error {
	var category model.ExpenseCategory
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&category); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}

	dup, _ := h.repo.FindCategoryByName(tenantID(c), category.Name)
	if dup != nil && dup.ID != uuid.Nil {
		return c.Status(fiber.StatusConflict).JSON(Envelope{
			Success: false, Error: "expense category already exists",
		})
	}

	category.UserID = tenantID(c)
	if err := h.repo.CreateCategory(&category); err != nil {
		return fail(c, err)
	}
	return created(c, category)
}

func (h *ExpenseHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	used, err := h.repo.CategoryHasExpenses(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	if used {
		return c.Status(fiber.StatusConflict).JSON(Envelope{
			Success: false, Error: "category has expenses",
		})
	}

	if err := h.repo.DeleteCategory(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/validator"
)

type ClientHandler struct {
	clientRepo repository.ClientRepository
	txRepo     repository.TransactionRepository
}

func NewClientHandler(clientRepo repository.ClientRepository, txRepo repository.TransactionRepository) *ClientHandler {
	return &ClientHandler{clientRepo: clientRepo, txRepo: txRepo}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	clients, err := h.clientRepo.FindAll(tenantID(c), c.Query("search"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, clients)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}
	client, err := h.clientRepo.FindByID(tenantID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "client not found"})
		}
		return fail(c, err)
	}
	return ok(c, client)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var client model.Client
	if err := c.BodyParser(&client); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&client); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}

	client.UserID = tenantID(c)
	// Ledger fields always start at zero, whatever the payload says.
	client.TotalDue = 0
	client.AmountPaid = 0
	client.Balance = 0

	if err := h.clientRepo.Create(&client); err != nil {
		return fail(c, err)
	}
	return created(c, client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}
	var req model.Client
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if fields := validator.ValidateStruct(&req); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(Envelope{
			Success: false, Error: "validation failed", Errors: fields,
		})
	}

	existing, err := h.clientRepo.FindByID(tenantID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "client not found"})
		}
		return fail(c, err)
	}

	// Contact fields only; the ledger triple moves exclusively through
	// ApplyLedgerDelta.
	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.Address = req.Address

	if err := h.clientRepo.Update(existing); err != nil {
		return fail(c, err)
	}
	return ok(c, existing)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}

	if _, err := h.clientRepo.FindByID(tenantID(c), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(Envelope{Success: false, Error: "client not found"})
		}
		return fail(c, err)
	}

	used, err := h.txRepo.HasForClient(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	if used {
		return c.Status(fiber.StatusConflict).JSON(Envelope{
			Success: false, Error: "client has transactions",
		})
	}

	if err := h.clientRepo.Delete(tenantID(c), id); err != nil {
		return fail(c, err)
	}
	return ok(c, nil)
}

// Transactions lists the client's transaction history.
func (h *ClientHandler) Transactions(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid client id")
	}
	txns, err := h.txRepo.FindAll(tenantID(c), model.TransactionFilter{ClientID: &id})
	if err != nil {
		return fail(c, err)
	}
	return ok(c, txns)
}

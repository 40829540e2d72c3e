package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/service"
)

type TransactionHandler struct {
	ledger service.LedgerService
}

func NewTransactionHandler(ledger service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	filter := model.TransactionFilter{
		Type:   model.TransactionType(c.Query("type")),
		Status: model.TransactionStatus(c.Query("status")),
	}
	if from := c.Query("from"); from != "" {
		t, err := parseDate(from)
		if err != nil {
			return badRequest(c, "invalid 'from' date")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := parseDate(to)
		if err != nil {
			return badRequest(c, "invalid 'to' date")
		}
		filter.To = &t
	}

	txns, err := h.ledger.ListTransactions(tenantID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, txns)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid transaction id")
	}
	txn, err := h.ledger.GetTransaction(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, txn)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var txn model.Transaction
	if err := c.BodyParser(&txn); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := h.ledger.CreateTransaction(tenantID(c), &txn); err != nil {
		return fail(c, err)
	}
	return created(c, txn)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid transaction id")
	}
	var req model.TransactionUpdate
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	updated, err := h.ledger.UpdateTransaction(tenantID(c), id, &req)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, updated)
}

func (h *TransactionHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid transaction id")
	}
	cancelled, err := h.ledger.CancelTransaction(tenantID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, cancelled)
}

// parseDate accepts a plain date or a full RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

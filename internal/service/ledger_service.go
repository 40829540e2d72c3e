package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/apperr"
	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
	"github.com/sraidytech/Inventory-Management-sub001/internal/repository"
	"github.com/sraidytech/Inventory-Management-sub001/internal/ws"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/logger"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/metrics"
	"github.com/sraidytech/Inventory-Management-sub001/pkg/validator"
)

// LedgerService keeps product stock, transaction payment state and client
// running balances mutually consistent. Every mutation runs inside a single
// database transaction; the database's atomicity is the sole consistency
// guarantee.
type LedgerService interface {
	CreateTransaction(userID string, req *model.Transaction) error
	UpdateTransaction(userID string, id uuid.UUID, req *model.TransactionUpdate) (*model.Transaction, error)
	CancelTransaction(userID string, id uuid.UUID) (*model.Transaction, error)
	GetTransaction(userID string, id uuid.UUID) (*model.Transaction, error)
	ListTransactions(userID string, filter model.TransactionFilter) ([]model.Transaction, error)
}

type ledgerService struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	clientRepo  repository.ClientRepository
	notifRepo   repository.NotificationRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewLedgerService(
	pRepo repository.ProductRepository,
	tRepo repository.TransactionRepository,
	cRepo repository.ClientRepository,
	nRepo repository.NotificationRepository,
	db *gorm.DB,
	hub *ws.Hub,
) LedgerService {
	return &ledgerService{
		productRepo: pRepo,
		txRepo:      tRepo,
		clientRepo:  cRepo,
		notifRepo:   nRepo,
		db:          db,
		wsHub:       hub,
	}
}

func (s *ledgerService) CreateTransaction(userID string, req *model.Transaction) error {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return apperr.Validation(fields)
	}
	if fields := itemSignErrors(req); len(fields) > 0 {
		return apperr.Validation(fields)
	}

	req.UserID = userID
	if req.Status == "" {
		req.Status = model.TxPending
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		ids := make([]uuid.UUID, len(req.Items))
		for i, it := range req.Items {
			ids[i] = it.ProductID
		}

		products, err := s.productRepo.FindByIDs(tx, userID, ids)
		if err != nil {
			return apperr.Internal(err)
		}
		if missing := missingProducts(ids, products); len(missing) > 0 {
			return &apperr.Error{
				Kind:    apperr.KindNotFound,
				Message: "product not found",
				Fields:  missing,
			}
		}

		if req.Total == 0 {
			for _, it := range req.Items {
				req.Total += it.Quantity * it.Price
			}
		}
		if req.AmountPaid > req.Total {
			return apperr.BadRequest("amount_paid exceeds total")
		}
		req.RemainingAmount = req.Total - req.AmountPaid

		// Stock adjustments are conditional single-statement updates, so
		// the sufficiency check and the decrement cannot race.
		var short []uuid.UUID
		for _, it := range req.Items {
			delta := stockDelta(req.Type, it.Quantity)
			guard := req.Type == model.TxSale || (req.Type == model.TxAdjustment && delta < 0)
			ok, err := s.productRepo.AdjustQuantity(tx, userID, it.ProductID, delta, guard)
			if err != nil {
				return apperr.Internal(err)
			}
			if !ok {
				short = append(short, it.ProductID)
			}
		}
		if len(short) > 0 {
			return apperr.InsufficientStock(short)
		}

		if err := s.txRepo.Create(tx, req); err != nil {
			return apperr.Internal(err)
		}

		if req.Type == model.TxSale && req.ClientID != nil {
			if err := s.clientRepo.ApplyLedgerDelta(tx, userID, *req.ClientID, req.Total, req.AmountPaid); err != nil {
				return notFoundOr(err, "client")
			}
		}
		return nil
	})

	if err != nil {
		metrics.LedgerOp("create", "error")
		return err
	}
	metrics.LedgerOp("create", "ok")

	s.push(userID, map[string]interface{}{
		"type":           "ledger_update",
		"action":         "transaction_created",
		"transaction_id": req.ID,
	})
	return nil
}

func (s *ledgerService) UpdateTransaction(userID string, id uuid.UUID, req *model.TransactionUpdate) (*model.Transaction, error) {
	if fields := validator.ValidateStruct(req); len(fields) > 0 {
		return nil, apperr.Validation(fields)
	}

	var updated *model.Transaction
	var paymentReceived float64

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txn, err := s.txRepo.FindByID(tx, userID, id)
		if err != nil {
			return notFoundOr(err, "transaction")
		}
		if txn.Status.Finalized() {
			return apperr.Conflict("transaction already finalized")
		}

		if req.Status != nil && *req.Status == model.TxCancelled {
			if err := s.cancelInTx(tx, txn); err != nil {
				return err
			}
			updated = txn
			return nil
		}

		fields := map[string]interface{}{}

		if req.AmountPaid != nil && *req.AmountPaid != txn.AmountPaid {
			if *req.AmountPaid > txn.Total {
				return apperr.BadRequest("amount_paid exceeds total")
			}
			paidDelta := *req.AmountPaid - txn.AmountPaid
			fields["amount_paid"] = *req.AmountPaid
			// Total is immutable on update, so deriving the remaining
			// amount keeps it equal to total - amount_paid.
			fields["remaining_amount"] = txn.Total - *req.AmountPaid

			if txn.Type == model.TxSale && txn.ClientID != nil {
				if err := s.clientRepo.ApplyLedgerDelta(tx, userID, *txn.ClientID, 0, paidDelta); err != nil {
					return notFoundOr(err, "client")
				}
			}
			if paidDelta > 0 {
				paymentReceived = paidDelta
			}
		}

		if req.Status != nil {
			fields["status"] = *req.Status
		}
		if req.PaymentMethod != nil {
			fields["payment_method"] = *req.PaymentMethod
		}
		if req.PaymentDueDate != nil {
			fields["payment_due_date"] = *req.PaymentDueDate
		}
		if req.Notes != nil {
			fields["notes"] = *req.Notes
		}

		if len(fields) > 0 {
			if err := s.txRepo.UpdateFields(tx, txn.ID, fields); err != nil {
				return apperr.Internal(err)
			}
		}

		updated, err = s.txRepo.FindByID(tx, userID, id)
		if err != nil {
			return apperr.Internal(err)
		}
		return nil
	})

	if err != nil {
		metrics.LedgerOp("update", "error")
		return nil, err
	}
	metrics.LedgerOp("update", "ok")

	if paymentReceived > 0 {
		s.emitPaymentReceived(userID, updated, paymentReceived)
	}
	s.push(userID, map[string]interface{}{
		"type":           "ledger_update",
		"action":         "transaction_updated",
		"transaction_id": id,
		"status":         updated.Status,
	})
	return updated, nil
}

func (s *ledgerService) CancelTransaction(userID string, id uuid.UUID) (*model.Transaction, error) {
	var cancelled *model.Transaction

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txn, err := s.txRepo.FindByID(tx, userID, id)
		if err != nil {
			return notFoundOr(err, "transaction")
		}
		if txn.Status.Finalized() {
			return apperr.Conflict("transaction already finalized")
		}
		if err := s.cancelInTx(tx, txn); err != nil {
			return err
		}
		cancelled = txn
		return nil
	})

	if err != nil {
		metrics.LedgerOp("cancel", "error")
		return nil, err
	}
	metrics.LedgerOp("cancel", "ok")

	s.push(userID, map[string]interface{}{
		"type":           "ledger_update",
		"action":         "transaction_cancelled",
		"transaction_id": id,
	})
	return cancelled, nil
}

// cancelInTx restores product quantities by the inverse of the original
// adjustment and reverses the client ledger by the recorded totals.
func (s *ledgerService) cancelInTx(tx *gorm.DB, txn *model.Transaction) error {
	for _, it := range txn.Items {
		delta := -stockDelta(txn.Type, it.Quantity)
		ok, err := s.productRepo.AdjustQuantity(tx, txn.UserID, it.ProductID, delta, false)
		if err != nil {
			return apperr.Internal(err)
		}
		if !ok {
			return apperr.Internal(fmt.Errorf("product %s missing during cancel", it.ProductID))
		}
	}

	if txn.Type == model.TxSale && txn.ClientID != nil {
		if err := s.clientRepo.ApplyLedgerDelta(tx, txn.UserID, *txn.ClientID, -txn.Total, -txn.AmountPaid); err != nil {
			return notFoundOr(err, "client")
		}
	}

	if err := s.txRepo.UpdateFields(tx, txn.ID, map[string]interface{}{
		"status": model.TxCancelled,
	}); err != nil {
		return apperr.Internal(err)
	}
	txn.Status = model.TxCancelled
	return nil
}

func (s *ledgerService) GetTransaction(userID string, id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.txRepo.FindByID(nil, userID, id)
	if err != nil {
		return nil, notFoundOr(err, "transaction")
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(userID string, filter model.TransactionFilter) ([]model.Transaction, error) {
	return s.txRepo.FindAll(userID, filter)
}

func (s *ledgerService) emitPaymentReceived(userID string, txn *model.Transaction, amount float64) {
	counterparty := "client"
	if txn.Client != nil {
		counterparty = txn.Client.Name
	}
	link := "/transactions/" + txn.ID.String()

	rows := []*model.Notification{
		{
			UserID:   userID,
			Type:     model.NotifPaymentReceived,
			Title:    "Payment received",
			Message:  fmt.Sprintf("Received %.2f from %s", amount, counterparty),
			Language: "en",
			Link:     link,
		},
		{
			UserID:   userID,
			Type:     model.NotifPaymentReceived,
			Title:    "تم استلام الدفعة",
			Message:  fmt.Sprintf("تم استلام %.2f من %s", amount, counterparty),
			Language: "ar",
			Link:     link,
		},
	}
	// Both language rows or neither; a lone row would satisfy the daily
	// dedup key for this link.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if err := s.notifRepo.Create(tx, row); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Warn("payment notification failed", "error", err, "transaction_id", txn.ID)
		return
	}
	metrics.NotificationEmitted(string(model.NotifPaymentReceived))
	s.push(userID, map[string]interface{}{
		"type":         "notification",
		"notification": rows[0],
	})
}

func (s *ledgerService) push(userID string, payload map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	go s.wsHub.Notify(userID, payload)
}

// stockDelta is the signed quantity a transaction item applies to its
// product. SALE decrements, PURCHASE increments, ADJUSTMENT applies the
// item quantity as-is.
func stockDelta(txType model.TransactionType, quantity float64) float64 {
	if txType == model.TxSale {
		return -quantity
	}
	return quantity
}

func itemSignErrors(req *model.Transaction) map[string]string {
	fields := map[string]string{}
	if req.Type == model.TxAdjustment {
		return fields
	}
	for i, it := range req.Items {
		if it.Quantity <= 0 {
			fields[fmt.Sprintf("Items[%d].Quantity", i)] = "must be greater than 0"
		}
	}
	return fields
}

func missingProducts(wanted []uuid.UUID, found []model.Product) map[string]string {
	present := make(map[uuid.UUID]bool, len(found))
	for _, p := range found {
		present[p.ID] = true
	}
	missing := map[string]string{}
	for _, id := range wanted {
		if !present[id] {
			missing[id.String()] = "not found"
		}
	}
	return missing
}

func notFoundOr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity)
	}
	return apperr.Internal(err)
}

package repository

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sraidytech/Inventory-Management-sub001/internal/model"
)

type ClientRepository interface {
	Create(client *model.Client) error
	FindAll(userID string, search string) ([]model.Client, error)
	FindByID(userID string, id uuid.UUID) (*model.Client, error)
	Update(client *model.Client) error
	Delete(userID string, id uuid.UUID) error
	ApplyLedgerDelta(tx *gorm.DB, userID string, id uuid.UUID, dueDelta, paidDelta float64) error
}

type clientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) ClientRepository {
	return &clientRepo{db}
}

func (r *clientRepo) Create(client *model.Client) error {
	return errors.Wrap(r.db.Create(client).Error, "client create")
}

func (r *clientRepo) FindAll(userID string, search string) ([]model.Client, error) {
	var clients []model.Client
	q := r.db.Where("user_id = ?", userID)
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	err := q.Order("name ASC").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) FindByID(userID string, id uuid.UUID) (*model.Client, error) {
	var client model.Client
	err := r.db.Where("user_id = ?", userID).First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) Update(client *model.Client) error {
	return errors.Wrap(r.db.Save(client).Error, "client update")
}

func (r *clientRepo) Delete(userID string, id uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Client{}, "id = ?", id).Error
}

// ApplyLedgerDelta is the single writer of the client running ledger.
// Balance moves by dueDelta - paidDelta in the same UPDATE, so the
// balance = total_due - amount_paid invariant survives every write path.
func (r *clientRepo) ApplyLedgerDelta(tx *gorm.DB, userID string, id uuid.UUID, dueDelta, paidDelta float64) error {
	if tx == nil {
		tx = r.db
	}
	res := tx.Model(&model.Client{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"total_due":   gorm.Expr("total_due + ?", dueDelta),
			"amount_paid": gorm.Expr("amount_paid + ?", paidDelta),
			"balance":     gorm.Expr("balance + ?", dueDelta-paidDelta),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "client ledger delta")
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"medvisa/internal/model"
)

// PaymentRepository defines gateway transaction persistence operations.
type PaymentRepository interface {
	Create(ctx context.Context, txn *model.PaymentTransaction) error
	FindByOrderID(ctx context.Context, orderID string) (*model.PaymentTransaction, error)
	ListByUser(ctx context.Context, userID uint) ([]model.PaymentTransaction, error)
	// UpdateTx saves a transaction row within an existing database transaction.
	UpdateTx(ctx context.Context, tx interface{}, txn *model.PaymentTransaction) error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository builds a GORM-backed repository.
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, txn *model.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID string) (*model.PaymentTransaction, error) {
	var txn model.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&txn).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID uint) ([]model.PaymentTransaction, error) {
	var txns []model.PaymentTransaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *paymentRepository) UpdateTx(ctx context.Context, tx interface{}, txn *model.PaymentTransaction) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Save(txn).Error
}

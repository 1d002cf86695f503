package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"medvisa/internal/model"
)

// UserRepository defines applicant persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error
	UpdateSlipPathTx(ctx context.Context, tx interface{}, id uint, path string) error
	UpdatePaymentStatusTx(ctx context.Context, tx interface{}, id uint, status model.PaymentStatus, paymentID string) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// WithTransaction executes fn within a database transaction. The raw tx is
// passed through so sibling repositories can join the same atomic unit.
func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// UpdateSlipPathTx updates the appointment slip path within a transaction.
func (r *userRepository) UpdateSlipPathTx(ctx context.Context, tx interface{}, id uint, path string) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"appointment_slip_path": path,
			"updated_at":            time.Now(),
		}).Error
}

// UpdatePaymentStatusTx updates payment status and gateway payment id within a transaction.
func (r *userRepository) UpdatePaymentStatusTx(ctx context.Context, tx interface{}, id uint, status model.PaymentStatus, paymentID string) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"payment_id":     paymentID,
			"updated_at":     time.Now(),
		}).Error
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"medvisa/internal/model"
)

// OTPRepository defines one-time code persistence operations.
type OTPRepository interface {
	Create(ctx context.Context, token *model.OTPToken) error
	// FindLatestActive returns the most recently created unconsumed token for
	// phone that has not expired as of now. gorm.ErrRecordNotFound when none.
	FindLatestActive(ctx context.Context, phone string, now time.Time) (*model.OTPToken, error)
	// ConsumeForPhone marks every outstanding token for phone as used.
	ConsumeForPhone(ctx context.Context, phone string) error
	// DeleteExpired removes tokens whose expiry passed before cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) error
}

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository builds a GORM-backed repository.
func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, token *model.OTPToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *otpRepository) FindLatestActive(ctx context.Context, phone string, now time.Time) (*model.OTPToken, error) {
	var token model.OTPToken
	err := r.db.WithContext(ctx).
		Where("phone = ? AND used = ? AND expires_at > ?", phone, false, now).
		Order("created_at DESC, id DESC").
		First(&token).Error
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *otpRepository) ConsumeForPhone(ctx context.Context, phone string) error {
	return r.db.WithContext(ctx).Model(&model.OTPToken{}).
		Where("phone = ? AND used = ?", phone, false).
		Update("used", true).Error
}

func (r *otpRepository) DeleteExpired(ctx context.Context, cutoff time.Time) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", cutoff).
		Delete(&model.OTPToken{}).Error
}

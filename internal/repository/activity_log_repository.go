package repository

import (
	"context"

	"gorm.io/gorm"

	"medvisa/internal/model"
)

// ActivityLogRepository defines append-only audit log operations.
type ActivityLogRepository interface {
	Create(ctx context.Context, entry *model.ActivityLog) error
	// CreateTx appends an entry within an existing transaction.
	CreateTx(ctx context.Context, tx interface{}, entry *model.ActivityLog) error
	ListByUser(ctx context.Context, userID uint) ([]model.ActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository builds a GORM-backed repository.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepository) CreateTx(ctx context.Context, tx interface{}, entry *model.ActivityLog) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Create(entry).Error
}

func (r *activityLogRepository) ListByUser(ctx context.Context, userID uint) ([]model.ActivityLog, error) {
	var entries []model.ActivityLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

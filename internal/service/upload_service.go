package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medvisa/internal/errors"
	"medvisa/internal/metrics"
	"medvisa/internal/model"
	"medvisa/internal/repository"
	"medvisa/internal/storage"
)

const slipPurposeTag = "appointment-slip"

// UploadInput carries one appointment slip upload request.
type UploadInput struct {
	UserID          uint
	Data            []byte
	MimeType        string
	OriginalName    string
	Size            int64
	Notes           string
	ReplaceExisting bool
}

// FileInfo summarizes the stored file for the response.
type FileInfo struct {
	Filename      string    `json:"filename"`
	OriginalName  string    `json:"original_name"`
	Size          int64     `json:"size"`
	SizeFormatted string    `json:"size_formatted"`
	MimeType      string    `json:"mime_type"`
	UploadedAt    time.Time `json:"uploaded_at"`
	Path          string    `json:"path"`
}

// UploadResult is the updated user projection plus the file summary.
type UploadResult struct {
	User *model.User `json:"user"`
	File FileInfo    `json:"file"`
}

// UploadService coordinates slip validation, durable file storage, the
// metadata transaction and cleanup of superseded files.
type UploadService interface {
	UploadAppointmentSlip(ctx context.Context, in UploadInput) (*UploadResult, error)
}

type uploadService struct {
	users    repository.UserRepository
	logs     repository.ActivityLogRepository
	store    storage.FileStore
	maxBytes int64
	cache    Cache
	metrics  metrics.Recorder
}

// NewUploadService creates a new upload service.
func NewUploadService(
	users repository.UserRepository,
	logs repository.ActivityLogRepository,
	store storage.FileStore,
	maxBytes int64,
	cache Cache,
	recorder metrics.Recorder,
) UploadService {
	return &uploadService{
		users:    users,
		logs:     logs,
		store:    store,
		maxBytes: maxBytes,
		cache:    cache,
		metrics:  recorder,
	}
}

// UploadAppointmentSlip runs the upload pipeline. Preconditions are checked
// in order and the first failure wins; the file-store write happens before
// the metadata transaction opens so a storage failure never touches the
// database. The slip-path update and the audit-log insert commit as one
// atomic unit: an upload whose provenance cannot be recorded is treated as
// not having happened. After a committed replace the superseded file is
// deleted best-effort; an orphaned old file is acceptable, a missing new
// file is not.
func (s *uploadService) UploadAppointmentSlip(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if len(in.Data) == 0 {
		s.metrics.RecordUpload("rejected")
		return nil, errors.ErrFileRequired
	}
	if !storage.IsValidType(in.MimeType) {
		s.metrics.RecordUpload("rejected")
		return nil, errors.ErrInvalidFileType
	}
	if !storage.IsValidSize(in.Size, s.maxBytes) {
		s.metrics.RecordUpload("rejected")
		return nil, errors.ErrFileTooLarge
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			s.metrics.RecordUpload("rejected")
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	// Payment gate, applied inline on the freshly fetched row.
	if !user.IsPaymentComplete() {
		s.metrics.RecordUpload("rejected")
		return nil, errors.ErrPaymentRequired
	}

	replacing := user.HasAppointmentSlip()
	if replacing && !in.ReplaceExisting {
		s.metrics.RecordUpload("conflict")
		return nil, &errors.SlipExistsError{CurrentPath: user.AppointmentSlipPath}
	}

	filename := deriveFilename(in.OriginalName, in.UserID)

	newPath, err := s.store.Save(ctx, in.Data, filename)
	if err != nil {
		log.Printf("slip upload: storage write failed for user %d: %v", in.UserID, err)
		s.metrics.RecordUpload("storage_failed")
		return nil, errors.ErrStorageSave
	}

	oldPath := user.AppointmentSlipPath
	uploadedAt := time.Now()

	action := model.ActionSlipUploaded
	if replacing {
		action = model.ActionSlipReplaced
	}
	entry := &model.ActivityLog{
		UserID:       in.UserID,
		Action:       action,
		Filename:     filename,
		OriginalName: in.OriginalName,
		Size:         in.Size,
		MimeType:     in.MimeType,
		Notes:        in.Notes,
		Replaced:     replacing,
	}

	err = s.users.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		if err := s.users.UpdateSlipPathTx(ctx, tx, in.UserID, newPath); err != nil {
			return fmt.Errorf("update slip path: %w", err)
		}
		if err := s.logs.CreateTx(ctx, tx, entry); err != nil {
			return fmt.Errorf("append activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		// The new file is already on disk and becomes an orphan, reconciled
		// out of band.
		log.Printf("slip upload: metadata transaction failed for user %d: %v", in.UserID, err)
		s.metrics.RecordUpload("tx_failed")
		return nil, fmt.Errorf("commit slip metadata: %w", err)
	}

	// The committed log entry makes any cached activity listing stale.
	_ = s.cache.Delete(ctx, activityCacheKey(in.UserID))

	if replacing && oldPath != newPath {
		if err := s.store.Delete(ctx, oldPath); err != nil {
			// Orphaned old files are acceptable; the committed state is not
			// rolled back for a cleanup failure.
			log.Printf("slip upload: failed to delete superseded file %q: %v", oldPath, err)
		}
	}

	user.AppointmentSlipPath = newPath
	user.UpdatedAt = uploadedAt
	s.metrics.RecordUpload("success")

	return &UploadResult{
		User: user,
		File: FileInfo{
			Filename:      filename,
			OriginalName:  in.OriginalName,
			Size:          in.Size,
			SizeFormatted: formatSize(in.Size),
			MimeType:      in.MimeType,
			UploadedAt:    uploadedAt,
			Path:          newPath,
		},
	}, nil
}

// deriveFilename builds a per-user unique storage name. The random suffix
// keeps two concurrent uploads for the same user from colliding.
func deriveFilename(originalName string, userID uint) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitizeName(base)
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%d-%s-%s%s", slipPurposeTag, userID, base, suffix, ext)
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

func formatSize(size int64) string {
	return fmt.Sprintf("%.2f KB", float64(size)/1024.0)
}

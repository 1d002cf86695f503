package model

import "time"

// Activity log actions recorded by the portal.
const (
	ActionSlipUploaded = "appointment_slip_uploaded"
	ActionSlipReplaced = "appointment_slip_replaced"
)

// ActivityLog is an append-only audit record of a state-changing user event.
type ActivityLog struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	Action       string    `json:"action" gorm:"size:64;not null"`
	Filename     string    `json:"filename" gorm:"size:255"`
	OriginalName string    `json:"original_name" gorm:"size:255"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type" gorm:"size:128"`
	Notes        string    `json:"notes" gorm:"size:1024"`
	Replaced     bool      `json:"replaced"`
	CreatedAt    time.Time `json:"created_at"`
}

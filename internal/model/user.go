package model

import "time"

// PaymentStatus represents the payment state of an applicant.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// AppointmentDetails holds the appointment form fields filled in by the
// applicant after first login. Stored as JSON on the user row.
type AppointmentDetails struct {
	Country       string `json:"country"`
	City          string `json:"city"`
	PreferredDate string `json:"preferred_date"`
	VisaType      string `json:"visa_type"`
	Notes         string `json:"notes,omitempty"`
}

// User represents a medical-visa applicant. Created on first successful OTP
// verification for an unseen phone number with placeholder fields.
type User struct {
	ID                  uint                `json:"id" gorm:"primaryKey"`
	Name                string              `json:"name" gorm:"size:255"`
	Email               string              `json:"email" gorm:"size:255"`
	Phone               string              `json:"phone" gorm:"uniqueIndex;size:20;not null"`
	PassportNumber      string              `json:"passport_number" gorm:"size:32"`
	AppointmentDetails  *AppointmentDetails `json:"appointment_details,omitempty" gorm:"serializer:json"`
	PaymentStatus       PaymentStatus       `json:"payment_status" gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentID           string              `json:"payment_id,omitempty" gorm:"size:64"`
	AppointmentSlipPath string              `json:"appointment_slip_path,omitempty" gorm:"size:512"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// IsPaymentComplete is the payment gate predicate. It must be evaluated on a
// freshly fetched row: the status can change between requests via the
// payment webhook.
func (u *User) IsPaymentComplete() bool {
	return u.PaymentStatus == PaymentStatusCompleted
}

// HasAppointmentSlip reports whether a current uploaded artifact exists.
func (u *User) HasAppointmentSlip() bool {
	return u.AppointmentSlipPath != ""
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus represents the status of a gateway payment transaction.
type TransactionStatus string

const (
	TransactionStatusCreated   TransactionStatus = "created"
	TransactionStatusPaid      TransactionStatus = "paid"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// PaymentTransaction tracks a payment order through the external gateway.
// Status transitions are driven by the gateway webhook.
type PaymentTransaction struct {
	ID        uint              `json:"id" gorm:"primaryKey"`
	UserID    uint              `json:"user_id" gorm:"not null;index"`
	OrderID   string            `json:"order_id" gorm:"uniqueIndex;size:64;not null"`
	PaymentID string            `json:"payment_id" gorm:"size:64;index"`
	Amount    decimal.Decimal   `json:"amount" gorm:"type:decimal(20,2);not null"`
	Status    TransactionStatus `json:"status" gorm:"type:varchar(20);not null;default:'created';index"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

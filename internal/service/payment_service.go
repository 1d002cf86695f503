package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"medvisa/internal/errors"
	"medvisa/internal/metrics"
	"medvisa/internal/model"
	"medvisa/internal/repository"
)

// Webhook event names sent by the payment gateway.
const (
	WebhookEventPaid      = "paid"
	WebhookEventFailed    = "failed"
	WebhookEventCancelled = "cancelled"
	WebhookEventRefunded  = "refunded"
)

// SignatureVerifier is the opaque webhook authenticity collaborator.
type SignatureVerifier interface {
	Verify(payload []byte, signature string) error
}

// WebhookNotice is a parsed gateway notification plus its raw payload for
// signature verification.
type WebhookNotice struct {
	OrderID   string
	PaymentID string
	Event     string
	Signature string
	Raw       []byte
}

// PaymentService creates payment orders and applies gateway webhook events.
type PaymentService interface {
	CreateOrder(ctx context.Context, userID uint, amount decimal.Decimal) (*model.PaymentTransaction, error)
	HandleWebhook(ctx context.Context, notice WebhookNotice) (*model.PaymentTransaction, error)
	ListTransactions(ctx context.Context, userID uint) ([]model.PaymentTransaction, error)
}

type paymentService struct {
	users    repository.UserRepository
	payments repository.PaymentRepository
	verifier SignatureVerifier
	metrics  metrics.Recorder
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	users repository.UserRepository,
	payments repository.PaymentRepository,
	verifier SignatureVerifier,
	recorder metrics.Recorder,
) PaymentService {
	return &paymentService{
		users:    users,
		payments: payments,
		verifier: verifier,
		metrics:  recorder,
	}
}

// CreateOrder opens a gateway transaction in the created state.
func (s *paymentService) CreateOrder(ctx context.Context, userID uint, amount decimal.Decimal) (*model.PaymentTransaction, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	txn := &model.PaymentTransaction{
		UserID:  userID,
		OrderID: uuid.NewString(),
		Amount:  amount,
		Status:  model.TransactionStatusCreated,
	}
	if err := s.payments.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return txn, nil
}

// HandleWebhook verifies the notice and atomically transitions both the
// transaction row and the user's payment status.
func (s *paymentService) HandleWebhook(ctx context.Context, notice WebhookNotice) (*model.PaymentTransaction, error) {
	if err := s.verifier.Verify(notice.Raw, notice.Signature); err != nil {
		return nil, errors.ErrInvalidSignature
	}

	txn, err := s.payments.FindByOrderID(ctx, notice.OrderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}

	txnStatus, userStatus, ok := mapWebhookEvent(notice.Event)
	if !ok {
		return nil, fmt.Errorf("unknown webhook event %q", notice.Event)
	}

	txn.Status = txnStatus
	txn.PaymentID = notice.PaymentID

	err = s.users.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		if err := s.payments.UpdateTx(ctx, tx, txn); err != nil {
			return fmt.Errorf("update transaction: %w", err)
		}
		if err := s.users.UpdatePaymentStatusTx(ctx, tx, txn.UserID, userStatus, notice.PaymentID); err != nil {
			return fmt.Errorf("update user payment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("apply webhook: %w", err)
	}

	s.metrics.RecordWebhookEvent(notice.Event)
	return txn, nil
}

func (s *paymentService) ListTransactions(ctx context.Context, userID uint) ([]model.PaymentTransaction, error) {
	txns, err := s.payments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

func mapWebhookEvent(event string) (model.TransactionStatus, model.PaymentStatus, bool) {
	switch event {
	case WebhookEventPaid:
		return model.TransactionStatusPaid, model.PaymentStatusCompleted, true
	case WebhookEventFailed:
		return model.TransactionStatusFailed, model.PaymentStatusFailed, true
	case WebhookEventCancelled:
		return model.TransactionStatusCancelled, model.PaymentStatusFailed, true
	case WebhookEventRefunded:
		return model.TransactionStatusCancelled, model.PaymentStatusRefunded, true
	default:
		return "", "", false
	}
}

// HMACVerifier checks webhook signatures as hex HMAC-SHA256 of the raw body.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier over the shared webhook secret.
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Verify recomputes the signature and compares in constant time.
func (v *HMACVerifier) Verify(payload []byte, signature string) error {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature mismatch")
	}
	return nil
}

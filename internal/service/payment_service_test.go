package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"medvisa/internal/errors"
	"medvisa/internal/metrics"
	"medvisa/internal/model"
)

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func newTestPaymentService(users *MockUserRepository, payments *MockPaymentRepository, secret string) PaymentService {
	collector := metrics.NewCollector(prometheus.NewRegistry())
	return NewPaymentService(users, payments, NewHMACVerifier(secret), collector)
}

func TestPaymentService_CreateOrder(t *testing.T) {
	users := new(MockUserRepository)
	payments := new(MockPaymentRepository)

	users.On("FindByID", mock.Anything, uint(4)).
		Return(&model.User{ID: 4, PaymentStatus: model.PaymentStatusPending}, nil)
	payments.On("Create", mock.Anything, mock.AnythingOfType("*model.PaymentTransaction")).Return(nil)

	svc := newTestPaymentService(users, payments, "hook-secret")
	txn, err := svc.CreateOrder(context.Background(), 4, decimal.NewFromInt(150))

	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, uint(4), txn.UserID)
	assert.NotEmpty(t, txn.OrderID)
	assert.Equal(t, model.TransactionStatusCreated, txn.Status)
	payments.AssertExpectations(t)
}

func TestPaymentService_CreateOrder_UnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	payments := new(MockPaymentRepository)
	users.On("FindByID", mock.Anything, uint(4)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestPaymentService(users, payments, "hook-secret")
	_, err := svc.CreateOrder(context.Background(), 4, decimal.NewFromInt(150))

	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	const secret = "hook-secret"
	raw := []byte(`{"order_id":"ord-1","payment_id":"pay-9","event":"paid"}`)

	tests := []struct {
		name       string
		event      string
		txnStatus  model.TransactionStatus
		userStatus model.PaymentStatus
	}{
		{name: "paid completes payment", event: WebhookEventPaid, txnStatus: model.TransactionStatusPaid, userStatus: model.PaymentStatusCompleted},
		{name: "failed marks failure", event: WebhookEventFailed, txnStatus: model.TransactionStatusFailed, userStatus: model.PaymentStatusFailed},
		{name: "refunded marks refund", event: WebhookEventRefunded, txnStatus: model.TransactionStatusCancelled, userStatus: model.PaymentStatusRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			payments := new(MockPaymentRepository)

			payments.On("FindByOrderID", mock.Anything, "ord-1").
				Return(&model.PaymentTransaction{ID: 1, UserID: 4, OrderID: "ord-1", Status: model.TransactionStatusCreated}, nil)
			users.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
			payments.On("UpdateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(txn *model.PaymentTransaction) bool {
				return txn.Status == tt.txnStatus && txn.PaymentID == "pay-9"
			})).Return(nil)
			users.On("UpdatePaymentStatusTx", mock.Anything, mock.Anything, uint(4), tt.userStatus, "pay-9").Return(nil)

			svc := newTestPaymentService(users, payments, secret)
			txn, err := svc.HandleWebhook(context.Background(), WebhookNotice{
				OrderID:   "ord-1",
				PaymentID: "pay-9",
				Event:     tt.event,
				Signature: signPayload(secret, raw),
				Raw:       raw,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.txnStatus, txn.Status)
			users.AssertExpectations(t)
			payments.AssertExpectations(t)
		})
	}
}

func TestPaymentService_HandleWebhook_BadSignature(t *testing.T) {
	users := new(MockUserRepository)
	payments := new(MockPaymentRepository)

	svc := newTestPaymentService(users, payments, "hook-secret")
	raw := []byte(`{"order_id":"ord-1","event":"paid"}`)

	_, err := svc.HandleWebhook(context.Background(), WebhookNotice{
		OrderID:   "ord-1",
		Event:     WebhookEventPaid,
		Signature: "deadbeef",
		Raw:       raw,
	})

	assert.ErrorIs(t, err, errors.ErrInvalidSignature)
	payments.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
}

func TestPaymentService_HandleWebhook_UnknownOrder(t *testing.T) {
	const secret = "hook-secret"
	users := new(MockUserRepository)
	payments := new(MockPaymentRepository)
	payments.On("FindByOrderID", mock.Anything, "ord-x").Return(nil, gorm.ErrRecordNotFound)

	svc := newTestPaymentService(users, payments, secret)
	raw := []byte(`{"order_id":"ord-x","event":"paid"}`)

	_, err := svc.HandleWebhook(context.Background(), WebhookNotice{
		OrderID:   "ord-x",
		Event:     WebhookEventPaid,
		Signature: signPayload(secret, raw),
		Raw:       raw,
	})

	assert.ErrorIs(t, err, errors.ErrTransactionNotFound)
}

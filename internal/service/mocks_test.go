package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"medvisa/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// WithTransaction runs fn with a nil tx so Tx methods on sibling mocks see
// the call, unless the mock is told to fail the transaction outright.
func (m *MockUserRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, nil)
}

func (m *MockUserRepository) UpdateSlipPathTx(ctx context.Context, tx interface{}, id uint, path string) error {
	args := m.Called(ctx, tx, id, path)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePaymentStatusTx(ctx context.Context, tx interface{}, id uint, status model.PaymentStatus, paymentID string) error {
	args := m.Called(ctx, tx, id, status, paymentID)
	return args.Error(0)
}

// MockAdminRepository is a mock implementation of repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uint) (*model.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

// MockOTPRepository is a mock implementation of repository.OTPRepository.
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Create(ctx context.Context, token *model.OTPToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockOTPRepository) FindLatestActive(ctx context.Context, phone string, now time.Time) (*model.OTPToken, error) {
	args := m.Called(ctx, phone, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OTPToken), args.Error(1)
}

func (m *MockOTPRepository) ConsumeForPhone(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func (m *MockOTPRepository) DeleteExpired(ctx context.Context, cutoff time.Time) error {
	args := m.Called(ctx, cutoff)
	return args.Error(0)
}

// MockActivityLogRepository is a mock implementation of repository.ActivityLogRepository.
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Create(ctx context.Context, entry *model.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) CreateTx(ctx context.Context, tx interface{}, entry *model.ActivityLog) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) ListByUser(ctx context.Context, userID uint) ([]model.ActivityLog, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityLog), args.Error(1)
}

// MockPaymentRepository is a mock implementation of repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, txn *model.PaymentTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*model.PaymentTransaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID uint) ([]model.PaymentTransaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentRepository) UpdateTx(ctx context.Context, tx interface{}, txn *model.PaymentTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

// MockCache is a mock implementation of Cache.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockFileStore is a mock implementation of storage.FileStore. A Save
// expectation returning an empty string echoes the generated filename, since
// the name is derived inside the service and unknown to the test upfront.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, data []byte, filename string) (string, error) {
	args := m.Called(ctx, data, filename)
	if err := args.Error(1); err != nil {
		return "", err
	}
	if s := args.String(0); s != "" {
		return s, nil
	}
	return filename, nil
}

func (m *MockFileStore) Delete(ctx context.Context, relativePath string) error {
	args := m.Called(ctx, relativePath)
	return args.Error(0)
}

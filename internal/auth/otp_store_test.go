package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"medvisa/internal/model"
)

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

func TestOTPStore_IssuePersistsSixDigitCode(t *testing.T) {
	mockRepo := new(MockOTPRepository)
	var saved *model.OTPToken
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.OTPToken")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.OTPToken)
		}).Return(nil)

	store := NewOTPStore(mockRepo, 5*time.Minute)
	code, err := store.Issue(context.Background(), "+911234567890")

	assert.NoError(t, err)
	assert.Len(t, code, OTPCodeLength)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
	assert.Equal(t, code, saved.Code)
	assert.Equal(t, "+911234567890", saved.Phone)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), saved.ExpiresAt, time.Second)
	mockRepo.AssertExpectations(t)
}

func TestOTPStore_VerifyScenario(t *testing.T) {
	// Phone +911234567890 was issued 482193: verifying 482194 fails,
	// 482193 succeeds once, a repeat with 482193 fails.
	const phone = "+911234567890"
	live := &model.OTPToken{
		ID:        1,
		Phone:     phone,
		Code:      "482193",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	mockRepo := new(MockOTPRepository)
	// First two lookups see the live token, the post-consumption one does not.
	mockRepo.On("FindLatestActive", mock.Anything, phone, mock.Anything).Return(live, nil).Twice()
	mockRepo.On("FindLatestActive", mock.Anything, phone, mock.Anything).Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("ConsumeForPhone", mock.Anything, phone).Return(nil).Once()

	store := NewOTPStore(mockRepo, 5*time.Minute)
	ctx := context.Background()

	ok, err := store.Verify(ctx, phone, "482194")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Verify(ctx, phone, "482193")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Verify(ctx, phone, "482193")
	assert.NoError(t, err)
	assert.False(t, ok)

	mockRepo.AssertExpectations(t)
}

func TestOTPStore_VerifyNoActiveToken(t *testing.T) {
	mockRepo := new(MockOTPRepository)
	mockRepo.On("FindLatestActive", mock.Anything, "+4915112345678", mock.Anything).
		Return(nil, gorm.ErrRecordNotFound)

	store := NewOTPStore(mockRepo, 5*time.Minute)
	ok, err := store.Verify(context.Background(), "+4915112345678", "123456")

	assert.NoError(t, err)
	assert.False(t, ok)
	mockRepo.AssertNotCalled(t, "ConsumeForPhone", mock.Anything, mock.Anything)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		valid bool
	}{
		{name: "already canonical", raw: "+911234567890", want: "+911234567890", valid: true},
		{name: "separators stripped", raw: "+91 12345-67890", want: "+911234567890", valid: true},
		{name: "missing plus added", raw: "911234567890", want: "+911234567890", valid: true},
		{name: "letters rejected", raw: "+91abc4567890", valid: false},
		{name: "too short", raw: "+12345", valid: false},
		{name: "too long", raw: "+1234567890123456", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.raw)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"gorm.io/gorm"

	"medvisa/internal/model"
	"medvisa/internal/repository"
)

// OTPCodeLength is the number of digits in a generated code.
const OTPCodeLength = 6

var otpCodeSpace = big.NewInt(1000000)

// OTPStore issues, persists and consumes one-time codes bound to a phone
// number. State machine: issued -> consumed (terminal) or issued -> expired
// (terminal). A code is never accepted twice.
type OTPStore struct {
	repo repository.OTPRepository
	ttl  time.Duration
}

// NewOTPStore creates an OTP store with the given validity window.
func NewOTPStore(repo repository.OTPRepository, ttl time.Duration) *OTPStore {
	return &OTPStore{repo: repo, ttl: ttl}
}

// Issue generates a 6-digit code and persists it against the phone with an
// expiry. Multiple issuances per phone are allowed; Verify decides which one
// is authoritative.
func (s *OTPStore) Issue(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("generate otp code: %w", err)
	}

	token := &model.OTPToken{
		Phone:     phone,
		Code:      code,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("persist otp: %w", err)
	}

	return code, nil
}

// Verify checks code against the authoritative token for phone: the most
// recently created unconsumed, unexpired row. On match every outstanding code
// for the phone is consumed, so a replay with the same code fails afterwards.
// Returns false (never an error) for absent, expired or mismatched codes.
func (s *OTPStore) Verify(ctx context.Context, phone, code string) (bool, error) {
	token, err := s.repo.FindLatestActive(ctx, phone, time.Now())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, fmt.Errorf("lookup otp: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(token.Code), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.repo.ConsumeForPhone(ctx, phone); err != nil {
		return false, fmt.Errorf("consume otp: %w", err)
	}

	return true, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

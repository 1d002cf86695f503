package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"medvisa/internal/auth"
	"medvisa/internal/errors"
	"medvisa/internal/metrics"
	"medvisa/internal/model"
	"medvisa/internal/repository"
)

// AuthService handles applicant OTP login and staff credential login.
type AuthService interface {
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (token string, user *model.User, err error)
	AdminLogin(ctx context.Context, username, password string) (token string, admin *model.Admin, err error)
}

type authService struct {
	users   repository.UserRepository
	admins  repository.AdminRepository
	otp     *auth.OTPStore
	jwt     *auth.JWTService
	sms     SMSSender
	metrics metrics.Recorder
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	admins repository.AdminRepository,
	otp *auth.OTPStore,
	jwt *auth.JWTService,
	sms SMSSender,
	recorder metrics.Recorder,
) AuthService {
	return &authService{
		users:   users,
		admins:  admins,
		otp:     otp,
		jwt:     jwt,
		sms:     sms,
		metrics: recorder,
	}
}

// RequestOTP issues a one-time code for the phone and hands it to the SMS
// sender collaborator.
func (s *authService) RequestOTP(ctx context.Context, phone string) error {
	normalized, ok := auth.NormalizePhone(phone)
	if !ok {
		return errors.ErrInvalidPhone
	}

	code, err := s.otp.Issue(ctx, normalized)
	if err != nil {
		return fmt.Errorf("issue otp: %w", err)
	}
	s.metrics.RecordOTPIssued()

	if err := s.sms.Send(ctx, normalized, fmt.Sprintf("Your medical visa portal login code is %s", code)); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

// VerifyOTP consumes the code and returns a user-type bearer token. A user
// record is created with placeholder fields on the first successful
// verification for an unseen phone number.
func (s *authService) VerifyOTP(ctx context.Context, phone, code string) (string, *model.User, error) {
	normalized, ok := auth.NormalizePhone(phone)
	if !ok {
		return "", nil, errors.ErrInvalidPhone
	}

	valid, err := s.otp.Verify(ctx, normalized, code)
	if err != nil {
		return "", nil, fmt.Errorf("verify otp: %w", err)
	}
	if !valid {
		s.metrics.RecordOTPVerified(false)
		return "", nil, errors.ErrInvalidOTP
	}
	s.metrics.RecordOTPVerified(true)

	user, err := s.users.FindByPhone(ctx, normalized)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return "", nil, fmt.Errorf("find user: %w", err)
		}
		user = &model.User{
			Phone:         normalized,
			PaymentStatus: model.PaymentStatusPending,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return "", nil, fmt.Errorf("create user: %w", err)
		}
	}

	token, err := s.jwt.Issue(user.ID, auth.PrincipalUser)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	s.metrics.RecordLogin(string(auth.PrincipalUser), true)

	return token, user, nil
}

// AdminLogin authenticates a staff member and returns an admin-type token.
func (s *authService) AdminLogin(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.admins.FindByUsername(ctx, username)
	if err != nil {
		s.metrics.RecordLogin(string(auth.PrincipalAdmin), false)
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.metrics.RecordLogin(string(auth.PrincipalAdmin), false)
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwt.Issue(admin.ID, auth.PrincipalAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	s.metrics.RecordLogin(string(auth.PrincipalAdmin), true)

	return token, admin, nil
}

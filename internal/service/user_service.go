package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"medvisa/internal/errors"
	"medvisa/internal/model"
	"medvisa/internal/repository"
)

// UserService handles applicant profile operations and the admin read surface.
type UserService interface {
	GetProfile(ctx context.Context, id uint) (*model.User, error)
	UpdateAppointment(ctx context.Context, id uint, name, email, passport string, details model.AppointmentDetails) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	GetActivity(ctx context.Context, userID uint) ([]model.ActivityLog, error)
}

type userService struct {
	users repository.UserRepository
	logs  repository.ActivityLogRepository
	cache Cache
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository, logs repository.ActivityLogRepository, cache Cache) UserService {
	return &userService{users: users, logs: logs, cache: cache}
}

func (s *userService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateAppointment completes the appointment form for the applicant.
func (s *userService) UpdateAppointment(ctx context.Context, id uint, name, email, passport string, details model.AppointmentDetails) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	user.Name = name
	user.Email = email
	user.PassportNumber = passport
	user.AppointmentDetails = &details

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetActivity returns the user's audit trail with caching. The cached list
// is invalidated whenever a new entry is appended.
func (s *userService) GetActivity(ctx context.Context, userID uint) ([]model.ActivityLog, error) {
	// Try cache first
	if data, _ := s.cache.Get(ctx, activityCacheKey(userID)); data != nil {
		var cached []model.ActivityLog
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	entries, err := s.logs.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, activityCacheKey(userID), payload, activityCacheTTL)
	}

	return entries, nil
}

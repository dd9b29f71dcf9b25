package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/smolin2019/vehicle-auction-service/internal/logger"
	"github.com/smolin2019/vehicle-auction-service/internal/models"
)

// UserLister returns all user records.
type UserLister interface {
	ListAll(ctx context.Context) ([]models.UserDB, error)
}

// UserProfileWriter overwrites username, email, and balance of a user.
type UserProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, username, email string, balance float64) (int64, error)
}

// AdminService handles privileged user management. Access control is the
// caller's admin flag only; no ownership model exists.
type AdminService struct {
	reader UserLister
	writer UserProfileWriter
}

// NewAdminService creates a new AdminService.
func NewAdminService(reader UserLister, writer UserProfileWriter) *AdminService {
	return &AdminService{
		reader: reader,
		writer: writer,
	}
}

// ListUsers returns every user record.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := s.reader.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// UpdateUser overwrites a user's username, email, and balance.
func (s *AdminService) UpdateUser(ctx context.Context, userID uuid.UUID, username, email string, balance float64) error {
	rows, err := s.writer.UpdateProfile(ctx, userID, username, email, balance)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// UserService handles user-related operations.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

func (s *UserService) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return nil, errors.Wrap(model.ErrValidation, "a valid email is required")
	}
	if u.UserID == "" {
		u.UserID = uuid.New().String()
	}
	if u.TimeZone == "" {
		u.TimeZone = "UTC"
	}
	return s.store.Users().Create(ctx, u)
}

func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.Users().Get(ctx, userID)
}

func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.store.Users().Delete(ctx, userID)
}

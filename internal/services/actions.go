package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// ActionService manages the weekly action list.
type ActionService struct {
	store store.Store
}

func NewActionService(s store.Store) *ActionService { return &ActionService{store: s} }

func (s *ActionService) CreateAction(ctx context.Context, a *model.WeeklyAction) (*model.WeeklyAction, error) {
	if strings.TrimSpace(a.Text) == "" {
		return nil, errors.Wrap(model.ErrValidation, "action text is required")
	}
	return s.store.WeeklyActions().Create(ctx, a)
}

func (s *ActionService) ListActions(ctx context.Context, ownerID string) ([]*model.WeeklyAction, error) {
	return s.store.WeeklyActions().List(ctx, ownerID)
}

func (s *ActionService) UpdateActionText(ctx context.Context, ownerID, actionID, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.Wrap(model.ErrValidation, "action text is required")
	}
	return s.store.WeeklyActions().UpdateText(ctx, ownerID, actionID, text)
}

func (s *ActionService) SetActionCompleted(ctx context.Context, ownerID, actionID string, completed bool) error {
	return s.store.WeeklyActions().SetCompleted(ctx, ownerID, actionID, completed)
}

func (s *ActionService) DeleteAction(ctx context.Context, ownerID, actionID string) error {
	return s.store.WeeklyActions().Delete(ctx, ownerID, actionID)
}

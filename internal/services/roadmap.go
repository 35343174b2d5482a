package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// RoadmapService manages long-term goals.
type RoadmapService struct {
	store store.Store
}

func NewRoadmapService(s store.Store) *RoadmapService { return &RoadmapService{store: s} }

func (s *RoadmapService) CreateItem(ctx context.Context, it *model.RoadmapItem) (*model.RoadmapItem, error) {
	if strings.TrimSpace(it.Text) == "" {
		return nil, errors.Wrap(model.ErrValidation, "roadmap item text is required")
	}
	return s.store.Roadmap().Create(ctx, it)
}

func (s *RoadmapService) ListItems(ctx context.Context, ownerID string) ([]*model.RoadmapItem, error) {
	return s.store.Roadmap().List(ctx, ownerID)
}

func (s *RoadmapService) UpdateItemText(ctx context.Context, ownerID, itemID, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.Wrap(model.ErrValidation, "roadmap item text is required")
	}
	return s.store.Roadmap().UpdateText(ctx, ownerID, itemID, text)
}

func (s *RoadmapService) SetItemCompleted(ctx context.Context, ownerID, itemID string, completed bool) error {
	return s.store.Roadmap().SetCompleted(ctx, ownerID, itemID, completed)
}

func (s *RoadmapService) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	return s.store.Roadmap().Delete(ctx, ownerID, itemID)
}

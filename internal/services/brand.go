package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// BrandService manages the personal-brand note feed.
type BrandService struct {
	store store.Store
}

func NewBrandService(s store.Store) *BrandService { return &BrandService{store: s} }

func (s *BrandService) CreateNote(ctx context.Context, n *model.BrandNote) (*model.BrandNote, error) {
	if strings.TrimSpace(n.Text) == "" {
		return nil, errors.Wrap(model.ErrValidation, "note text is required")
	}
	return s.store.BrandNotes().Create(ctx, n)
}

func (s *BrandService) ListNotes(ctx context.Context, ownerID string) ([]*model.BrandNote, error) {
	return s.store.BrandNotes().List(ctx, ownerID)
}

func (s *BrandService) UpdateNoteText(ctx context.Context, ownerID, noteID, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.Wrap(model.ErrValidation, "note text is required")
	}
	return s.store.BrandNotes().UpdateText(ctx, ownerID, noteID, text)
}

func (s *BrandService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	return s.store.BrandNotes().Delete(ctx, ownerID, noteID)
}

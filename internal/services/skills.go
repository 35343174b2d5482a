package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// SkillService manages tracked skills and their practice-hour logs. Logs
// reference skills by name; deleting a skill removes its logs so hour totals
// never point at a skill that no longer exists.
type SkillService struct {
	store store.Store
}

func NewSkillService(s store.Store) *SkillService { return &SkillService{store: s} }

func (s *SkillService) CreateSkill(ctx context.Context, sk *model.Skill) (*model.Skill, error) {
	if strings.TrimSpace(sk.Name) == "" {
		return nil, errors.Wrap(model.ErrValidation, "skill name is required")
	}
	return s.store.Skills().Create(ctx, sk)
}

func (s *SkillService) ListSkills(ctx context.Context, ownerID string) ([]*model.Skill, error) {
	return s.store.Skills().List(ctx, ownerID)
}

func (s *SkillService) RenameSkill(ctx context.Context, ownerID, skillID, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.Wrap(model.ErrValidation, "skill name is required")
	}
	return s.store.Skills().Rename(ctx, ownerID, skillID, name)
}

// DeleteSkill removes the skill and every log recorded against its name.
func (s *SkillService) DeleteSkill(ctx context.Context, ownerID, skillID string) error {
	sk, err := s.store.Skills().Get(ctx, ownerID, skillID)
	if err != nil {
		return err
	}
	if err := s.store.Skills().Delete(ctx, ownerID, skillID); err != nil {
		return err
	}
	return s.store.SkillLogs().DeleteBySkill(ctx, ownerID, sk.Name)
}

func (s *SkillService) LogHours(ctx context.Context, l *model.SkillLog) (*model.SkillLog, error) {
	if strings.TrimSpace(l.Skill) == "" {
		return nil, errors.Wrap(model.ErrValidation, "skill name is required")
	}
	if l.Hours <= 0 {
		return nil, errors.Wrap(model.ErrValidation, "hours must be positive")
	}
	return s.store.SkillLogs().Create(ctx, l)
}

func (s *SkillService) ListLogs(ctx context.Context, ownerID string) ([]*model.SkillLog, error) {
	return s.store.SkillLogs().List(ctx, ownerID)
}

func (s *SkillService) UpdateLog(ctx context.Context, ownerID, logID, skill string, hours float64) error {
	if strings.TrimSpace(skill) == "" {
		return errors.Wrap(model.ErrValidation, "skill name is required")
	}
	if hours <= 0 {
		return errors.Wrap(model.ErrValidation, "hours must be positive")
	}
	return s.store.SkillLogs().Update(ctx, ownerID, logID, skill, hours)
}

func (s *SkillService) DeleteLog(ctx context.Context, ownerID, logID string) error {
	return s.store.SkillLogs().Delete(ctx, ownerID, logID)
}

// HoursBySkill aggregates total practiced hours per skill name.
func (s *SkillService) HoursBySkill(ctx context.Context, ownerID string) (map[string]float64, error) {
	logs, err := s.store.SkillLogs().List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64, len(logs))
	for _, l := range logs {
		totals[l.Skill] += l.Hours
	}
	return totals, nil
}

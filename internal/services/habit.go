package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
	"github.com/mentoro-app/mentoro-server/internal/streak"
)

// HabitService orchestrates habit CRUD and streak transitions. All streak
// math lives in the streak package; this service loads the record, applies
// the pure transition and persists the resulting triple atomically.
type HabitService struct {
	store store.Store
	clock streak.Clock
	log   zerolog.Logger
}

func NewHabitService(s store.Store, clock streak.Clock, log zerolog.Logger) *HabitService {
	if clock == nil {
		clock = streak.SystemClock()
	}
	return &HabitService{store: s, clock: clock, log: log}
}

func (s *HabitService) CreateHabit(ctx context.Context, h *model.Habit) (*model.Habit, error) {
	if strings.TrimSpace(h.Text) == "" {
		return nil, errors.Wrap(model.ErrValidation, "habit text is required")
	}
	return s.store.Habits().Create(ctx, h)
}

// ListHabits reconciles the owner's habits against the current day before
// returning them, so a dashboard opened days after the last visit never shows
// stale done-today flags or unbroken streaks.
func (s *HabitService) ListHabits(ctx context.Context, ownerID string) ([]*model.Habit, error) {
	if err := s.Reconcile(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.store.Habits().List(ctx, ownerID)
}

func (s *HabitService) GetHabit(ctx context.Context, ownerID, habitID string) (*model.Habit, error) {
	return s.store.Habits().Get(ctx, ownerID, habitID)
}

func (s *HabitService) UpdateHabitText(ctx context.Context, ownerID, habitID, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.Wrap(model.ErrValidation, "habit text is required")
	}
	return s.store.Habits().UpdateText(ctx, ownerID, habitID, text)
}

func (s *HabitService) DeleteHabit(ctx context.Context, ownerID, habitID string) error {
	return s.store.Habits().Delete(ctx, ownerID, habitID)
}

// ToggleDone flips the habit's done-today flag and returns the habit with its
// recomputed streak state.
func (s *HabitService) ToggleDone(ctx context.Context, ownerID, habitID string) (*model.Habit, error) {
	h, err := s.store.Habits().Get(ctx, ownerID, habitID)
	if err != nil {
		return nil, err
	}
	st := streak.Toggle(*h, s.clock.Now())
	if err := s.store.Habits().SetState(ctx, ownerID, habitID, st); err != nil {
		return nil, err
	}
	h.CompletedToday = st.CompletedToday
	h.Streak = st.Streak
	h.LastCompletedAt = st.LastCompletedAt
	return h, nil
}

// Reconcile corrects one owner's habits for any day boundaries crossed since
// their last write. Habits are corrected independently: a failed write is
// logged and skipped, never blocking the rest, and the next pass retries it
// because reconciliation is idempotent.
func (s *HabitService) Reconcile(ctx context.Context, ownerID string) error {
	habits, err := s.store.Habits().List(ctx, ownerID)
	if err != nil {
		return err
	}
	now := s.clock.Now()

	var wg sync.WaitGroup
	for _, h := range habits {
		st, changed := streak.ReconcileChange(*h, now)
		if !changed {
			continue
		}
		wg.Add(1)
		go func(h *model.Habit, st model.StreakState) {
			defer wg.Done()
			if err := s.store.Habits().SetState(ctx, ownerID, h.HabitID, st); err != nil {
				s.log.Error().Err(err).
					Str("owner_id", ownerID).
					Str("habit_id", h.HabitID).
					Msg("streak reconciliation write failed")
			}
		}(h, st)
	}
	wg.Wait()
	return nil
}

// ReconcileAll sweeps every owner with at least one habit. Used by the
// midnight scheduler.
func (s *HabitService) ReconcileAll(ctx context.Context, now time.Time) {
	owners, err := s.store.Habits().Owners(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reconciliation sweep could not list owners")
		return
	}
	start := time.Now()
	for _, ownerID := range owners {
		if ctx.Err() != nil {
			s.log.Warn().Err(ctx.Err()).Msg("reconciliation sweep interrupted")
			return
		}
		if err := s.Reconcile(ctx, ownerID); err != nil {
			s.log.Error().Err(err).Str("owner_id", ownerID).Msg("owner reconciliation failed")
		}
	}
	s.log.Info().
		Int("owners", len(owners)).
		Dur("elapsed", time.Since(start)).
		Time("as_of", now).
		Msg("streak reconciliation sweep complete")
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/streak"
)

func fixedClock(t time.Time) streak.Clock {
	return streak.ClockFunc(func() time.Time { return t })
}

func tp(t time.Time) *time.Time { return &t }

func TestHabitService_ToggleDoneExtendsStreak(t *testing.T) {
	now := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	fs := &fakeStore{habits: []*model.Habit{
		{HabitID: "h1", OwnerID: "u1", Text: "read", Streak: 2, LastCompletedAt: tp(now.AddDate(0, 0, -1))},
	}}
	svc := NewHabitService(fs, fixedClock(now), zerolog.Nop())

	h, err := svc.ToggleDone(context.Background(), "u1", "h1")
	if err != nil {
		t.Fatalf("ToggleDone: %v", err)
	}
	if !h.CompletedToday || h.Streak != 3 {
		t.Fatalf("toggled habit = %+v, want streak 3", h)
	}
	if len(fs.setStates) != 1 {
		t.Fatalf("SetState calls = %d, want 1", len(fs.setStates))
	}
	if got := fs.setStates[0]; got.ownerID != "u1" || got.habitID != "h1" || got.st.Streak != 3 {
		t.Fatalf("SetState call = %+v", got)
	}
}

func TestHabitService_ToggleDoneUnknownHabit(t *testing.T) {
	fs := &fakeStore{}
	svc := NewHabitService(fs, nil, zerolog.Nop())

	if _, err := svc.ToggleDone(context.Background(), "u1", "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestHabitService_CreateHabitRequiresText(t *testing.T) {
	svc := NewHabitService(&fakeStore{}, nil, zerolog.Nop())
	if _, err := svc.CreateHabit(context.Background(), &model.Habit{OwnerID: "u1", Text: "  "}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestHabitService_ReconcileCorrectsStaleHabits(t *testing.T) {
	now := time.Date(2024, 1, 4, 0, 0, 5, 0, time.UTC)
	fs := &fakeStore{habits: []*model.Habit{
		// completed two days ago: streak breaks
		{HabitID: "stale", OwnerID: "u1", Streak: 5, CompletedToday: true, LastCompletedAt: tp(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))},
		// completed yesterday: flag clears, streak survives
		{HabitID: "fresh", OwnerID: "u1", Streak: 2, CompletedToday: true, LastCompletedAt: tp(time.Date(2024, 1, 3, 22, 0, 0, 0, time.UTC))},
		// never completed: untouched
		{HabitID: "new", OwnerID: "u1"},
	}}
	svc := NewHabitService(fs, fixedClock(now), zerolog.Nop())

	if err := svc.Reconcile(context.Background(), "u1"); err != nil {
		t.Fatalf("Reconcile: %v", err)
	}

	byID := map[string]*model.Habit{}
	for _, h := range fs.habits {
		byID[h.HabitID] = h
	}
	if h := byID["stale"]; h.CompletedToday || h.Streak != 0 {
		t.Fatalf("stale habit = %+v, want zeroed streak", h)
	}
	if h := byID["fresh"]; h.CompletedToday || h.Streak != 2 {
		t.Fatalf("fresh habit = %+v, want streak preserved", h)
	}
	if len(fs.setStates) != 2 {
		t.Fatalf("SetState calls = %d, want 2 (consistent habit must not be written)", len(fs.setStates))
	}
}

func TestHabitService_ReconcileIsolatesWriteFailures(t *testing.T) {
	now := time.Date(2024, 1, 4, 0, 0, 5, 0, time.UTC)
	fs := &fakeStore{
		habits: []*model.Habit{
			{HabitID: "h1", OwnerID: "u1", Streak: 3, CompletedToday: true, LastCompletedAt: tp(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))},
			{HabitID: "h2", OwnerID: "u1", Streak: 3, CompletedToday: true, LastCompletedAt: tp(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))},
		},
		setStateErr: map[string]error{"h1": errors.New("write failed")},
	}
	svc := NewHabitService(fs, fixedClock(now), zerolog.Nop())

	if err := svc.Reconcile(context.Background(), "u1"); err != nil {
		t.Fatalf("Reconcile should not fail on a single habit write: %v", err)
	}
	if len(fs.setStates) != 1 || fs.setStates[0].habitID != "h2" {
		t.Fatalf("SetState calls = %+v, want only h2", fs.setStates)
	}
}

func TestHabitService_ListHabitsReconcilesFirst(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	fs := &fakeStore{habits: []*model.Habit{
		{HabitID: "h1", OwnerID: "u1", Streak: 4, CompletedToday: true, LastCompletedAt: tp(time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC))},
	}}
	svc := NewHabitService(fs, fixedClock(now), zerolog.Nop())

	habits, err := svc.ListHabits(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListHabits: %v", err)
	}
	if len(habits) != 1 {
		t.Fatalf("habits = %d, want 1", len(habits))
	}
	if habits[0].CompletedToday || habits[0].Streak != 0 {
		t.Fatalf("listed habit = %+v, want reconciled state", habits[0])
	}
}

func TestHabitService_ReconcileAllSweepsOwners(t *testing.T) {
	now := time.Date(2024, 1, 4, 0, 0, 5, 0, time.UTC)
	fs := &fakeStore{
		owners: []string{"u1", "u2"},
		habits: []*model.Habit{
			{HabitID: "a", OwnerID: "u1", Streak: 1, CompletedToday: true, LastCompletedAt: tp(time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC))},
			{HabitID: "b", OwnerID: "u2", Streak: 7, CompletedToday: true, LastCompletedAt: tp(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))},
		},
	}
	svc := NewHabitService(fs, fixedClock(now), zerolog.Nop())

	svc.ReconcileAll(context.Background(), now)

	byID := map[string]*model.Habit{}
	for _, h := range fs.habits {
		byID[h.HabitID] = h
	}
	if h := byID["a"]; h.CompletedToday || h.Streak != 1 {
		t.Fatalf("u1 habit = %+v, want flag cleared, streak kept", h)
	}
	if h := byID["b"]; h.CompletedToday || h.Streak != 0 {
		t.Fatalf("u2 habit = %+v, want streak broken", h)
	}
}

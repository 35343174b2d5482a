package store

import (
	"context"

	"github.com/mentoro-app/mentoro-server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
// Every operation is scoped by the owning user's id; adapters must never
// return or mutate records belonging to another owner.
type Store interface {
	Users() Users
	Habits() Habits
	Roadmap() RoadmapItems
	WeeklyActions() WeeklyActions
	Skills() Skills
	SkillLogs() SkillLogs
	BrandNotes() BrandNotes
	Transactions() Transactions
}

type Users interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Get(ctx context.Context, userID string) (*model.User, error)
	Delete(ctx context.Context, userID string) error
}

// Habits persists habit records. List returns habits ordered by creation
// time ascending. SetState replaces the streak triple atomically in a single
// record update; partial writes must never be observable.
type Habits interface {
	Create(ctx context.Context, h *model.Habit) (*model.Habit, error)
	List(ctx context.Context, ownerID string) ([]*model.Habit, error)
	Get(ctx context.Context, ownerID, habitID string) (*model.Habit, error)
	UpdateText(ctx context.Context, ownerID, habitID, text string) error
	SetState(ctx context.Context, ownerID, habitID string, st model.StreakState) error
	Delete(ctx context.Context, ownerID, habitID string) error
	// Owners lists distinct owner ids that have at least one habit.
	// Used by the midnight reconciliation sweep.
	Owners(ctx context.Context) ([]string, error)
}

type RoadmapItems interface {
	Create(ctx context.Context, it *model.RoadmapItem) (*model.RoadmapItem, error)
	List(ctx context.Context, ownerID string) ([]*model.RoadmapItem, error)
	UpdateText(ctx context.Context, ownerID, itemID, text string) error
	SetCompleted(ctx context.Context, ownerID, itemID string, completed bool) error
	Delete(ctx context.Context, ownerID, itemID string) error
}

type WeeklyActions interface {
	Create(ctx context.Context, a *model.WeeklyAction) (*model.WeeklyAction, error)
	List(ctx context.Context, ownerID string) ([]*model.WeeklyAction, error)
	UpdateText(ctx context.Context, ownerID, actionID, text string) error
	SetCompleted(ctx context.Context, ownerID, actionID string, completed bool) error
	Delete(ctx context.Context, ownerID, actionID string) error
}

type Skills interface {
	Create(ctx context.Context, s *model.Skill) (*model.Skill, error)
	List(ctx context.Context, ownerID string) ([]*model.Skill, error)
	Get(ctx context.Context, ownerID, skillID string) (*model.Skill, error)
	Rename(ctx context.Context, ownerID, skillID, name string) error
	Delete(ctx context.Context, ownerID, skillID string) error
}

// SkillLogs persists practice-hour entries. List returns logs ordered by log
// time descending (newest first).
type SkillLogs interface {
	Create(ctx context.Context, l *model.SkillLog) (*model.SkillLog, error)
	List(ctx context.Context, ownerID string) ([]*model.SkillLog, error)
	Update(ctx context.Context, ownerID, logID, skill string, hours float64) error
	Delete(ctx context.Context, ownerID, logID string) error
	// DeleteBySkill removes every log carrying the given skill name,
	// used when the skill itself is deleted.
	DeleteBySkill(ctx context.Context, ownerID, skill string) error
}

// BrandNotes persists brand-feed entries, listed newest first.
type BrandNotes interface {
	Create(ctx context.Context, n *model.BrandNote) (*model.BrandNote, error)
	List(ctx context.Context, ownerID string) ([]*model.BrandNote, error)
	UpdateText(ctx context.Context, ownerID, noteID, text string) error
	Delete(ctx context.Context, ownerID, noteID string) error
}

// Transactions persists income/expense records, listed newest first.
type Transactions interface {
	Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	List(ctx context.Context, ownerID string) ([]*model.Transaction, error)
	Update(ctx context.Context, ownerID, txID string, txType string, amount float64, description string) error
	Delete(ctx context.Context, ownerID, txID string) error
}

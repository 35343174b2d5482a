package model

import "time"

// User represents an account in the system.
type User struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	DisplayName  *string   `json:"displayName,omitempty"`
	TimeZone     string    `json:"timeZone"`
	CreationTime time.Time `json:"creationTime"`
}

// Habit is a daily recurring task with streak state.
//
// CompletedToday and Streak are only meaningful relative to the calendar day
// of LastCompletedAt; the streak engine owns every mutation of these three
// fields and writes them together in a single update.
type Habit struct {
	HabitID         string     `json:"habitId"`
	OwnerID         string     `json:"ownerId"`
	Text            string     `json:"text"`
	CompletedToday  bool       `json:"completedToday"`
	Streak          int        `json:"streak"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	CreationTime    time.Time  `json:"creationTime"`
}

// StreakState is the triple of habit fields the streak engine owns. The
// three fields are always persisted together in one single-record update so
// readers never observe a partial transition.
type StreakState struct {
	CompletedToday  bool       `json:"completedToday"`
	Streak          int        `json:"streak"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
}

// RoadmapItem is a long-term goal on the user's roadmap.
type RoadmapItem struct {
	ItemID       string    `json:"itemId"`
	OwnerID      string    `json:"ownerId"`
	Text         string    `json:"text"`
	Completed    bool      `json:"completed"`
	CreationTime time.Time `json:"creationTime"`
}

// WeeklyAction is a checkable action item for the current week.
type WeeklyAction struct {
	ActionID     string    `json:"actionId"`
	OwnerID      string    `json:"ownerId"`
	Text         string    `json:"text"`
	Completed    bool      `json:"completed"`
	CreationTime time.Time `json:"creationTime"`
}

// Skill names a skill the user is deliberately practicing.
type Skill struct {
	SkillID      string    `json:"skillId"`
	OwnerID      string    `json:"ownerId"`
	Name         string    `json:"name"`
	CreationTime time.Time `json:"creationTime"`
}

// SkillLog records hours practiced against a skill name.
type SkillLog struct {
	LogID   string    `json:"logId"`
	OwnerID string    `json:"ownerId"`
	Skill   string    `json:"skill"`
	Hours   float64   `json:"hours"`
	LogTime time.Time `json:"logTime"`
}

// BrandNote is a personal-brand feed entry.
type BrandNote struct {
	NoteID       string    `json:"noteId"`
	OwnerID      string    `json:"ownerId"`
	Text         string    `json:"text"`
	CreationTime time.Time `json:"creationTime"`
}

// Transaction types.
const (
	TxIncome  = "income"
	TxExpense = "expense"
)

// Transaction is a single income or expense record.
type Transaction struct {
	TxID        string    `json:"txId"`
	OwnerID     string    `json:"ownerId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	TxTime      time.Time `json:"txTime"`
}

// FinanceSummary aggregates a user's transactions.
type FinanceSummary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Net          float64 `json:"net"`
}

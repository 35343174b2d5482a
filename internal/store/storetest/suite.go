// Package storetest holds a compliance suite shared by store adapters.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mentoro-app/mentoro-server/internal/model"
	"github.com/mentoro-app/mentoro-server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	ownerID := "u-" + uuid.New().String()
	email := ownerID + "@example.test"

	// Users
	u := &model.User{UserID: ownerID, Email: email, TimeZone: "UTC"}
	if _, err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if got, err := s.Users().Get(ctx, ownerID); err != nil || got == nil || got.UserID != ownerID {
		t.Fatalf("GetUser: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Get(ctx, "no-such-user"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetUser missing: want ErrNotFound, got %v", err)
	}

	// Habits
	h, err := s.Habits().Create(ctx, &model.Habit{OwnerID: ownerID, Text: "read 20 pages"})
	if err != nil {
		t.Fatalf("CreateHabit: %v", err)
	}
	if h.HabitID == "" || h.CompletedToday || h.Streak != 0 || h.LastCompletedAt != nil {
		t.Fatalf("CreateHabit defaults wrong: %+v", h)
	}
	time.Sleep(5 * time.Millisecond) // keep creation-time ordering monotonic
	h2, err := s.Habits().Create(ctx, &model.Habit{OwnerID: ownerID, Text: "morning run"})
	if err != nil {
		t.Fatalf("CreateHabit 2: %v", err)
	}
	lst, err := s.Habits().List(ctx, ownerID)
	if err != nil || len(lst) != 2 {
		t.Fatalf("ListHabits: n=%d err=%v", len(lst), err)
	}
	if lst[0].HabitID != h.HabitID || lst[1].HabitID != h2.HabitID {
		t.Fatalf("ListHabits order: want oldest first, got %s then %s", lst[0].HabitID, lst[1].HabitID)
	}

	// Atomic streak-state update
	done := time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)
	st := model.StreakState{CompletedToday: true, Streak: 3, LastCompletedAt: &done}
	if err := s.Habits().SetState(ctx, ownerID, h.HabitID, st); err != nil {
		t.Fatalf("SetState: %v", err)
	}
	got, err := s.Habits().Get(ctx, ownerID, h.HabitID)
	if err != nil {
		t.Fatalf("GetHabit: %v", err)
	}
	if !got.CompletedToday || got.Streak != 3 || got.LastCompletedAt == nil {
		t.Fatalf("SetState not applied: %+v", got)
	}
	if y, m, d := got.LastCompletedAt.Date(); y != 2024 || m != time.January || d != 2 {
		t.Fatalf("LastCompletedAt round-trip: got %v", got.LastCompletedAt)
	}
	// Clearing LastCompletedAt must persist NULL, not zero time.
	if err := s.Habits().SetState(ctx, ownerID, h.HabitID, model.StreakState{}); err != nil {
		t.Fatalf("SetState clear: %v", err)
	}
	if got, err = s.Habits().Get(ctx, ownerID, h.HabitID); err != nil || got.LastCompletedAt != nil || got.Streak != 0 {
		t.Fatalf("SetState clear not applied: got=%+v err=%v", got, err)
	}

	if err := s.Habits().UpdateText(ctx, ownerID, h.HabitID, "read 30 pages"); err != nil {
		t.Fatalf("UpdateText: %v", err)
	}
	if err := s.Habits().SetState(ctx, "someone-else", h.HabitID, st); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("SetState foreign owner: want ErrNotFound, got %v", err)
	}
	owners, err := s.Habits().Owners(ctx)
	if err != nil || len(owners) == 0 {
		t.Fatalf("Owners: n=%d err=%v", len(owners), err)
	}
	if err := s.Habits().Delete(ctx, ownerID, h2.HabitID); err != nil {
		t.Fatalf("DeleteHabit: %v", err)
	}
	if _, err := s.Habits().Get(ctx, ownerID, h2.HabitID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetHabit after delete: want ErrNotFound, got %v", err)
	}

	// Roadmap
	it, err := s.Roadmap().Create(ctx, &model.RoadmapItem{OwnerID: ownerID, Text: "launch MVP"})
	if err != nil {
		t.Fatalf("CreateRoadmapItem: %v", err)
	}
	if err := s.Roadmap().SetCompleted(ctx, ownerID, it.ItemID, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	items, err := s.Roadmap().List(ctx, ownerID)
	if err != nil || len(items) != 1 || !items[0].Completed {
		t.Fatalf("ListRoadmap: items=%v err=%v", items, err)
	}

	// Weekly actions
	a, err := s.WeeklyActions().Create(ctx, &model.WeeklyAction{OwnerID: ownerID, Text: "publish article"})
	if err != nil {
		t.Fatalf("CreateWeeklyAction: %v", err)
	}
	if err := s.WeeklyActions().UpdateText(ctx, ownerID, a.ActionID, "publish two articles"); err != nil {
		t.Fatalf("UpdateText action: %v", err)
	}

	// Skills and logs
	sk, err := s.Skills().Create(ctx, &model.Skill{OwnerID: ownerID, Name: "golang"})
	if err != nil {
		t.Fatalf("CreateSkill: %v", err)
	}
	if _, err := s.SkillLogs().Create(ctx, &model.SkillLog{OwnerID: ownerID, Skill: "golang", Hours: 1.5}); err != nil {
		t.Fatalf("CreateSkillLog: %v", err)
	}
	if _, err := s.SkillLogs().Create(ctx, &model.SkillLog{OwnerID: ownerID, Skill: "golang", Hours: 2}); err != nil {
		t.Fatalf("CreateSkillLog 2: %v", err)
	}
	logs, err := s.SkillLogs().List(ctx, ownerID)
	if err != nil || len(logs) != 2 {
		t.Fatalf("ListSkillLogs: n=%d err=%v", len(logs), err)
	}
	if err := s.SkillLogs().DeleteBySkill(ctx, ownerID, "golang"); err != nil {
		t.Fatalf("DeleteBySkill: %v", err)
	}
	if logs, err = s.SkillLogs().List(ctx, ownerID); err != nil || len(logs) != 0 {
		t.Fatalf("ListSkillLogs after DeleteBySkill: n=%d err=%v", len(logs), err)
	}
	if err := s.Skills().Delete(ctx, ownerID, sk.SkillID); err != nil {
		t.Fatalf("DeleteSkill: %v", err)
	}

	// Brand notes (newest first)
	if _, err := s.BrandNotes().Create(ctx, &model.BrandNote{OwnerID: ownerID, Text: "first note"}); err != nil {
		t.Fatalf("CreateBrandNote: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	n2, err := s.BrandNotes().Create(ctx, &model.BrandNote{OwnerID: ownerID, Text: "second note"})
	if err != nil {
		t.Fatalf("CreateBrandNote 2: %v", err)
	}
	notes, err := s.BrandNotes().List(ctx, ownerID)
	if err != nil || len(notes) != 2 || notes[0].NoteID != n2.NoteID {
		t.Fatalf("ListBrandNotes: want newest first, got=%v err=%v", notes, err)
	}

	// Transactions
	tx, err := s.Transactions().Create(ctx, &model.Transaction{OwnerID: ownerID, Type: model.TxIncome, Amount: 1200, Description: "contract"})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if err := s.Transactions().Update(ctx, ownerID, tx.TxID, model.TxExpense, 80, "hosting"); err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	txs, err := s.Transactions().List(ctx, ownerID)
	if err != nil || len(txs) != 1 || txs[0].Type != model.TxExpense {
		t.Fatalf("ListTransactions: txs=%v err=%v", txs, err)
	}
	if err := s.Transactions().Delete(ctx, ownerID, tx.TxID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}

	// Owner scoping: a different owner sees nothing.
	other := "u-" + uuid.New().String()
	if lst, err := s.Habits().List(ctx, other); err != nil || len(lst) != 0 {
		t.Fatalf("ListHabits foreign owner: n=%d err=%v", len(lst), err)
	}
}

package streak

import (
	"testing"
	"time"

	"github.com/mentoro-app/mentoro-server/internal/model"
)

func at(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func ts(t time.Time) *time.Time { return &t }

func TestSameDay(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same day different hours", at(2024, 1, 1, 1), at(2024, 1, 1, 23), true},
		{"adjacent days near midnight", at(2024, 1, 1, 23), at(2024, 1, 2, 0), false},
		{"same day-of-month different month", at(2024, 1, 5, 12), at(2024, 2, 5, 12), false},
		{"same month-day different year", at(2023, 3, 5, 12), at(2024, 3, 5, 12), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameDay(tc.a, tc.b); got != tc.want {
				t.Fatalf("SameDay(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestToggle_FirstCompletionStartsStreak(t *testing.T) {
	now := at(2024, 1, 1, 10)
	h := model.Habit{HabitID: "h1", Text: "write"}

	st := Toggle(h, now)
	if !st.CompletedToday || st.Streak != 1 {
		t.Fatalf("first toggle: got %+v", st)
	}
	if st.LastCompletedAt == nil || !st.LastCompletedAt.Equal(now) {
		t.Fatalf("lastCompletedAt: got %v, want %v", st.LastCompletedAt, now)
	}
}

func TestToggle_UndoSameDayRestoresFreshState(t *testing.T) {
	now := at(2024, 1, 1, 10)
	h := model.Habit{HabitID: "h1"}

	st := Toggle(h, now)
	h.CompletedToday = st.CompletedToday
	h.Streak = st.Streak
	h.LastCompletedAt = st.LastCompletedAt

	st = Toggle(h, now)
	if st.CompletedToday || st.Streak != 0 || st.LastCompletedAt != nil {
		t.Fatalf("toggle twice should restore fresh state, got %+v", st)
	}
}

func TestToggle_ConsecutiveDaysExtendStreak(t *testing.T) {
	h := model.Habit{HabitID: "h1"}
	const days = 7
	for i := 0; i < days; i++ {
		now := at(2024, 1, 1+i, 9)
		st := Toggle(h, now)
		if st.Streak != i+1 {
			t.Fatalf("day %d: streak = %d, want %d", i+1, st.Streak, i+1)
		}
		h.CompletedToday = st.CompletedToday
		h.Streak = st.Streak
		h.LastCompletedAt = st.LastCompletedAt
		// next morning the flag has been cleared by reconciliation
		h.CompletedToday = false
	}
	if h.Streak != days {
		t.Fatalf("final streak = %d, want %d", h.Streak, days)
	}
}

func TestToggle_MissedDayStartsFresh(t *testing.T) {
	h := model.Habit{HabitID: "h1"}

	st := Toggle(h, at(2024, 1, 1, 9))
	if st.Streak != 1 {
		t.Fatalf("day 1 streak = %d, want 1", st.Streak)
	}
	h.Streak = st.Streak
	h.LastCompletedAt = st.LastCompletedAt
	h.CompletedToday = false // cleared by reconciliation on day 2

	// no toggle on Jan 2; completes again on Jan 3
	st = Toggle(h, at(2024, 1, 3, 9))
	if st.Streak != 1 {
		t.Fatalf("streak after missed day = %d, want 1 (fresh start)", st.Streak)
	}
}

func TestToggle_MarkDoneWhenTimestampAlreadyToday(t *testing.T) {
	// Reconciliation cleared the flag but the timestamp stayed on today;
	// re-marking must not double-count.
	now := at(2024, 1, 2, 20)
	h := model.Habit{Streak: 4, CompletedToday: false, LastCompletedAt: ts(at(2024, 1, 2, 8))}

	st := Toggle(h, now)
	if !st.CompletedToday || st.Streak != 4 {
		t.Fatalf("already-counted toggle: got %+v, want streak 4", st)
	}
}

func TestToggle_UndoWithYesterdayTimestampBreaksStreak(t *testing.T) {
	// Stale done-today flag with yesterday's timestamp: undoing breaks the run.
	h := model.Habit{CompletedToday: true, Streak: 3, LastCompletedAt: ts(at(2024, 1, 1, 22))}

	st := Toggle(h, at(2024, 1, 2, 7))
	if st.CompletedToday || st.Streak != 0 {
		t.Fatalf("undo with yesterday timestamp: got %+v, want streak 0", st)
	}
}

func TestToggle_UndoAfterContinuationForfeitsRun(t *testing.T) {
	// Done yesterday (streak 2), done today (streak 3), then undone today.
	h := model.Habit{CompletedToday: false, Streak: 2, LastCompletedAt: ts(at(2024, 1, 2, 9))}
	st := Toggle(h, at(2024, 1, 3, 9))
	if st.Streak != 3 {
		t.Fatalf("continuation: streak = %d, want 3", st.Streak)
	}
	h.CompletedToday = st.CompletedToday
	h.Streak = st.Streak
	h.LastCompletedAt = st.LastCompletedAt

	st = Toggle(h, at(2024, 1, 3, 10))
	if st.CompletedToday || st.Streak != 0 || st.LastCompletedAt != nil {
		t.Fatalf("undo after continuation: got %+v, want zeroed state", st)
	}
}

func TestReconcileChange(t *testing.T) {
	now := at(2024, 1, 4, 6)
	cases := []struct {
		name       string
		habit      model.Habit
		wantChange bool
		wantState  model.StreakState
	}{
		{
			name:       "two days stale breaks streak",
			habit:      model.Habit{CompletedToday: true, Streak: 2, LastCompletedAt: ts(at(2024, 1, 2, 9))},
			wantChange: true,
			wantState:  model.StreakState{CompletedToday: false, Streak: 0, LastCompletedAt: ts(at(2024, 1, 2, 9))},
		},
		{
			name:       "exactly yesterday clears flag only",
			habit:      model.Habit{CompletedToday: true, Streak: 2, LastCompletedAt: ts(at(2024, 1, 3, 22))},
			wantChange: true,
			wantState:  model.StreakState{CompletedToday: false, Streak: 2, LastCompletedAt: ts(at(2024, 1, 3, 22))},
		},
		{
			name:       "yesterday with flag already clear needs nothing",
			habit:      model.Habit{CompletedToday: false, Streak: 2, LastCompletedAt: ts(at(2024, 1, 3, 22))},
			wantChange: false,
		},
		{
			name:       "completed earlier today untouched",
			habit:      model.Habit{CompletedToday: true, Streak: 5, LastCompletedAt: ts(at(2024, 1, 4, 1))},
			wantChange: false,
		},
		{
			name:       "stale with zero streak still clears flag",
			habit:      model.Habit{CompletedToday: true, Streak: 0, LastCompletedAt: ts(at(2024, 1, 1, 9))},
			wantChange: true,
			wantState:  model.StreakState{CompletedToday: false, Streak: 0, LastCompletedAt: ts(at(2024, 1, 1, 9))},
		},
		{
			name:       "inconsistent record zeroed",
			habit:      model.Habit{CompletedToday: true, Streak: 3, LastCompletedAt: nil},
			wantChange: true,
			wantState:  model.StreakState{CompletedToday: false, Streak: 0, LastCompletedAt: nil},
		},
		{
			name:       "fresh habit untouched",
			habit:      model.Habit{CompletedToday: false, Streak: 0, LastCompletedAt: nil},
			wantChange: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st, changed := ReconcileChange(tc.habit, now)
			if changed != tc.wantChange {
				t.Fatalf("changed = %v, want %v (state %+v)", changed, tc.wantChange, st)
			}
			if !changed {
				return
			}
			if st.CompletedToday != tc.wantState.CompletedToday || st.Streak != tc.wantState.Streak {
				t.Fatalf("state = %+v, want %+v", st, tc.wantState)
			}
			switch {
			case tc.wantState.LastCompletedAt == nil && st.LastCompletedAt != nil:
				t.Fatalf("lastCompletedAt = %v, want nil", st.LastCompletedAt)
			case tc.wantState.LastCompletedAt != nil && (st.LastCompletedAt == nil || !st.LastCompletedAt.Equal(*tc.wantState.LastCompletedAt)):
				t.Fatalf("lastCompletedAt = %v, want %v", st.LastCompletedAt, tc.wantState.LastCompletedAt)
			}
		})
	}
}

// Full lifecycle from the product scenario: complete Jan 1 and Jan 2, miss
// Jan 3, reconcile on Jan 4.
func TestStreakLifecycle_TwoDayRunThenMiss(t *testing.T) {
	h := model.Habit{HabitID: "h1"}

	st := Toggle(h, at(2024, 1, 1, 9))
	if !st.CompletedToday || st.Streak != 1 || !SameDay(*st.LastCompletedAt, at(2024, 1, 1, 0)) {
		t.Fatalf("after day-1 toggle: %+v", st)
	}
	h.CompletedToday, h.Streak, h.LastCompletedAt = st.CompletedToday, st.Streak, st.LastCompletedAt

	// overnight reconciliation clears the flag, streak survives
	st2, changed := ReconcileChange(h, at(2024, 1, 2, 0))
	if !changed || st2.CompletedToday || st2.Streak != 1 {
		t.Fatalf("after day-2 reconcile: changed=%v %+v", changed, st2)
	}
	h.CompletedToday, h.Streak, h.LastCompletedAt = st2.CompletedToday, st2.Streak, st2.LastCompletedAt

	st = Toggle(h, at(2024, 1, 2, 9))
	if !st.CompletedToday || st.Streak != 2 || !SameDay(*st.LastCompletedAt, at(2024, 1, 2, 0)) {
		t.Fatalf("after day-2 toggle: %+v", st)
	}
	h.CompletedToday, h.Streak, h.LastCompletedAt = st.CompletedToday, st.Streak, st.LastCompletedAt

	// nothing on Jan 3; reconcile on Jan 4 breaks the streak
	st3, changed := ReconcileChange(h, at(2024, 1, 4, 0))
	if !changed || st3.CompletedToday || st3.Streak != 0 {
		t.Fatalf("after day-4 reconcile: changed=%v %+v", changed, st3)
	}
}

// Same run, but reconcile fires exactly one day later: streak preserved.
func TestStreakLifecycle_ReconcileDayAfterKeepsStreak(t *testing.T) {
	h := model.Habit{CompletedToday: true, Streak: 2, LastCompletedAt: ts(at(2024, 1, 2, 9))}

	st, changed := ReconcileChange(h, at(2024, 1, 3, 0))
	if !changed || st.CompletedToday || st.Streak != 2 {
		t.Fatalf("reconcile one day later: changed=%v %+v", changed, st)
	}
}

// Reconciliation must be idempotent: applying the correction and running it
// again yields no further change.
func TestReconcileChange_Idempotent(t *testing.T) {
	now := at(2024, 1, 4, 6)
	h := model.Habit{CompletedToday: true, Streak: 2, LastCompletedAt: ts(at(2024, 1, 2, 9))}

	st, changed := ReconcileChange(h, now)
	if !changed {
		t.Fatalf("expected first pass to change state")
	}
	h.CompletedToday, h.Streak, h.LastCompletedAt = st.CompletedToday, st.Streak, st.LastCompletedAt

	if _, changed = ReconcileChange(h, now); changed {
		t.Fatalf("second pass should be a no-op")
	}
}

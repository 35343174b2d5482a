// Package streak owns the temporal state of daily habits: the done-today
// flag, the consecutive-day streak counter, and the last-completion
// timestamp. Transitions are pure functions over (habit, now) so day
// boundaries can be tested deterministically; persistence happens in the
// habit service.
package streak

import (
	"time"

	"github.com/mentoro-app/mentoro-server/internal/model"
)

// Clock abstracts the wall clock so tests can simulate arbitrary days.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return ClockFunc(time.Now) }

// SameDay reports whether a and b fall on the same calendar day. Days are
// compared by year/month/day components, not elapsed-hours arithmetic.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dayStart normalizes a timestamp to the start of its calendar day so days
// can be ordered with Before/After regardless of time-of-day.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Toggle computes the habit's next streak state for a user flipping the
// done-today flag at instant now.
//
// Marking done extends the streak by one if the previous completion was
// yesterday, starts a fresh streak of one otherwise, and leaves the count
// alone if today was somehow already recorded (a flag cleared by
// reconciliation while the timestamp stayed on today).
//
// Un-marking forfeits the streak: whether the run was riding on yesterday's
// completion or started today, the counter returns to zero, and a
// same-day timestamp is cleared. This keeps streak==0 whenever
// lastCompletedAt is unset and makes toggle-then-undo restore a fresh habit
// exactly.
func Toggle(h model.Habit, now time.Time) model.StreakState {
	st := model.StreakState{
		CompletedToday:  !h.CompletedToday,
		Streak:          h.Streak,
		LastCompletedAt: h.LastCompletedAt,
	}
	yesterday := now.AddDate(0, 0, -1)

	if st.CompletedToday {
		switch {
		case h.LastCompletedAt != nil && SameDay(*h.LastCompletedAt, yesterday):
			st.Streak = h.Streak + 1
		case h.LastCompletedAt != nil && SameDay(*h.LastCompletedAt, now):
			// already counted for today
		default:
			st.Streak = 1
		}
		done := now
		st.LastCompletedAt = &done
		return st
	}

	switch {
	case h.LastCompletedAt != nil && SameDay(*h.LastCompletedAt, yesterday):
		// The run was counting on yesterday's completion; this undo breaks it.
		st.Streak = 0
	case h.LastCompletedAt != nil && SameDay(*h.LastCompletedAt, now):
		st.Streak = 0
		st.LastCompletedAt = nil
	case h.LastCompletedAt == nil:
		st.Streak = 0
	}
	return st
}

// ReconcileChange computes the correction a habit needs once a calendar day
// may have passed without user action. The second return value is false when
// the record is already consistent and no write is needed.
//
// A completion at least two days old breaks the streak; a completion exactly
// yesterday only clears the stale done-today flag and the streak stays
// eligible for extension. A record with streak or done-today set but no
// completion timestamp is inconsistent and is zeroed.
func ReconcileChange(h model.Habit, now time.Time) (model.StreakState, bool) {
	today := dayStart(now)
	yesterday := today.AddDate(0, 0, -1)

	if h.LastCompletedAt != nil {
		last := dayStart(*h.LastCompletedAt)
		switch {
		case last.Before(yesterday) && h.Streak > 0:
			return model.StreakState{CompletedToday: false, Streak: 0, LastCompletedAt: h.LastCompletedAt}, true
		case last.Before(today) && h.CompletedToday:
			return model.StreakState{CompletedToday: false, Streak: h.Streak, LastCompletedAt: h.LastCompletedAt}, true
		}
		return model.StreakState{}, false
	}

	if h.Streak > 0 || h.CompletedToday {
		return model.StreakState{CompletedToday: false, Streak: 0, LastCompletedAt: nil}, true
	}
	return model.StreakState{}, false
}

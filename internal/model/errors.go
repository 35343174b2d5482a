package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")

	// ErrInvalidState marks a habit record whose streak fields contradict each
	// other (streak or completedToday set with no lastCompletedAt). The
	// reconciliation pass heals these instead of failing.
	ErrInvalidState = errors.New("invalid streak state")
)

package streak

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ReconcileFunc runs one reconciliation pass at the given instant.
type ReconcileFunc func(ctx context.Context, now time.Time)

// Scheduler fires a reconciliation pass at each local midnight. The timer is
// re-armed after every firing, so it follows DST shifts instead of drifting
// on a fixed 24h period.
type Scheduler struct {
	run      ReconcileFunc
	clock    Clock
	log      zerolog.Logger
	inFlight atomic.Bool
}

// NewScheduler constructs a Scheduler from dependencies.
func NewScheduler(run ReconcileFunc, clock Clock, log zerolog.Logger) *Scheduler {
	if clock == nil {
		clock = SystemClock()
	}
	return &Scheduler{run: run, clock: clock, log: log}
}

// NextMidnight returns the first instant of the calendar day after now, in
// now's location.
func NextMidnight(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// Run blocks until ctx is canceled, triggering a pass at every local
// midnight.
func (s *Scheduler) Run(ctx context.Context) error {
	for {
		now := s.clock.Now()
		next := NextMidnight(now)
		s.log.Info().Time("next_run", next).Msg("streak reconciliation scheduled")

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Info().Msg("streak scheduler stopping")
			return ctx.Err()
		case <-timer.C:
			s.Trigger(ctx)
		}
	}
}

// Trigger runs one reconciliation pass now. Overlapping triggers (a list
// load racing the midnight timer) collapse into a single pass; reconciliation
// is idempotent so the skipped caller loses nothing.
func (s *Scheduler) Trigger(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.log.Debug().Msg("reconciliation already in flight, skipping trigger")
		return
	}
	defer s.inFlight.Store(false)
	s.run(ctx, s.clock.Now())
}

package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Broadcaster is the slice of the telegram side the scheduler drives.
// telegram.Router implements it.
type Broadcaster interface {
	RefreshLive(ctx context.Context) (int, error)
	NotifyAll(ctx context.Context) (int, error)
}

// Scheduler supplies the cadence for polling deployments: live
// countdowns refresh every tick, daily notifications go out once per
// local day at notifyAt. Webhook deployments skip it and trigger the
// same operations over HTTP instead.
type Scheduler struct {
	log      *zap.Logger
	b        Broadcaster
	loc      *time.Location
	interval time.Duration
	notifyAt string // local HH:MM

	lastNotified string // local date of the last daily send
	now          func() time.Time
}

// New creates a Scheduler ticking every interval.
func New(log *zap.Logger, b Broadcaster, loc *time.Location, interval time.Duration, notifyAt string) *Scheduler {
	return &Scheduler{
		log:      log,
		b:        b,
		loc:      loc,
		interval: interval,
		notifyAt: notifyAt,
		now:      time.Now,
	}
}

// Run starts the loop until ctx is canceled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopping")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick refreshes live messages and, past notifyAt, fires the daily
// notifications once.
func (s *Scheduler) tick(ctx context.Context) {
	if n, err := s.b.RefreshLive(ctx); err != nil {
		s.log.Error("live refresh failed", zap.Error(err))
	} else if n > 0 {
		s.log.Debug("live messages refreshed", zap.Int("count", n))
	}

	now := s.now().In(s.loc)
	today := now.Format("2006-01-02")
	if now.Format("15:04") < s.notifyAt || s.lastNotified == today {
		return
	}

	n, err := s.b.NotifyAll(ctx)
	if err != nil {
		// Not marked as sent; the next tick retries.
		s.log.Error("daily notifications failed", zap.Error(err))
		return
	}
	s.lastNotified = today
	s.log.Info("daily notifications sent", zap.Int("count", n))
}

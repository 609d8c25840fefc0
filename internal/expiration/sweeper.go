// Package expiration keeps stored food item statuses in step with the
// calendar by periodically reclassifying every item against today.
package expiration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/robinspt/food-inventory-system/internal/fooditems"
	"github.com/robinspt/food-inventory-system/pkg/lifecycle"
)

const jobName = "expiration_sweep"

// Sweeper runs fooditems.System.RefreshStatuses on a fixed interval.
type Sweeper struct {
	sys       fooditems.System
	interval  time.Duration
	logger    *slog.Logger
	now       func() time.Time
	scheduler gocron.Scheduler
}

// Option configures a Sweeper.
type Option func(*Sweeper)

// WithClock replaces time.Now as the source of today's date.
func WithClock(now func() time.Time) Option {
	return func(s *Sweeper) { s.now = now }
}

func New(sys fooditems.System, interval time.Duration, logger *slog.Logger, opts ...Option) (*Sweeper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive: %s", interval)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	s := &Sweeper{
		sys:       sys,
		interval:  interval,
		logger:    logger.With("system", "expiration"),
		now:       time.Now,
		scheduler: scheduler,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start registers the sweep job, runs it once immediately and stops the
// scheduler when the coordinator shuts down.
func (s *Sweeper) Start(lc *lifecycle.Coordinator) error {
	ctx := lc.Context()

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() {
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Error("expiration sweep failed", "error", err)
			}
		}),
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("register %s job: %w", jobName, err)
	}

	s.scheduler.Start()
	s.logger.Info("expiration sweeper started", "interval", s.interval)

	lc.OnShutdown(func() {
		<-ctx.Done()
		if err := s.scheduler.Shutdown(); err != nil {
			s.logger.Error("expiration sweeper shutdown failed", "error", err)
			return
		}
		s.logger.Info("expiration sweeper stopped")
	})

	return nil
}

// RunOnce reclassifies every item against today and logs each change.
func (s *Sweeper) RunOnce(ctx context.Context) ([]fooditems.StatusChange, error) {
	start := s.now()
	today := fooditems.DateOf(start)

	changes, err := s.sys.RefreshStatuses(ctx, today)
	if err != nil {
		return nil, err
	}

	for _, c := range changes {
		s.logger.Info(
			"food item status changed",
			"id", c.ID,
			"name", c.Name,
			"from", c.From,
			"to", c.To,
		)
	}

	s.logger.Info(
		"expiration sweep complete",
		"date", today.String(),
		"changed", len(changes),
		"duration", time.Since(start),
	)
	return changes, nil
}

package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

type SweeperConfig struct {
	// Schedule is a six-field cron expression (with seconds), evaluated in UTC.
	Schedule string
	Limit    int32
	Timeout  time.Duration
}

// Sweeper periodically reconciles drifted counters that no recount task
// covered, e.g. after a lost enqueue or a manual data fix.
type Sweeper struct {
	cron     *cron.Cron
	counters service.CounterService
	cfg      SweeperConfig

	mu      sync.Mutex
	running bool
}

func NewSweeper(counters service.CounterService, cfg SweeperConfig) (*Sweeper, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}

	s := &Sweeper{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithSeconds(),
		),
		counters: counters,
		cfg:      cfg,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("registering recount sweep %q: %w", cfg.Schedule, err)
	}
	return s, nil
}

func (s *Sweeper) Start() {
	slog.Info("recount sweeper started", "schedule", s.cfg.Schedule, "limit", s.cfg.Limit)
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("recount sweeper stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	_, _ = s.SweepOnce(ctx)
}

// SweepOnce runs a single reconciliation pass. Overlapping passes are skipped.
func (s *Sweeper) SweepOnce(ctx context.Context) (service.Reconciled, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		slog.WarnContext(ctx, "previous recount sweep still running, skipping")
		return service.Reconciled{}, nil
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "alumate.worker.sweeper",
	})

	sc := logger.StartSpan(ctx, "worker.recount_sweep")
	defer sc.End()
	ctx = sc.Context()

	result, err := s.counters.ReconcileDrift(ctx, s.cfg.Limit)
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "recount sweep finished with errors", "error", err, "failed", result.Failed)
		return result, err
	}
	return result, nil
}

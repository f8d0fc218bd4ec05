package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/footballhub/matchday/internal/platform/logging"
)

// Scheduler runs a task at a fixed interval on a context it owns. A failed
// run is logged and retried implicitly on the next tick.
type Scheduler struct {
	name     string
	interval time.Duration
	task     func(context.Context) error
	logger   *logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

const defaultSchedulerInterval = 30 * time.Second

func NewScheduler(name string, interval time.Duration, task func(context.Context) error, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}
	if interval <= 0 {
		interval = defaultSchedulerInterval
	}
	return &Scheduler{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger,
	}
}

// Start launches the loop. The first run fires immediately; subsequent runs
// follow the configured interval. Start is a no-op when already running.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.done)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.task(ctx); err != nil && ctx.Err() == nil {
		s.logger.ErrorContext(ctx, "scheduled task failed, retrying on next tick",
			"task", s.name,
			"interval", s.interval.String(),
			"error", err,
		)
	}
}

// Stop cancels the loop and waits for the in-flight run to finish, bounded
// by the caller's context.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

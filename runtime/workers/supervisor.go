package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"relay-lab/contract"
	"relay-lab/errors"
	"relay-lab/observability"
)

const (
	defaultBaseDelay = 200 * time.Millisecond
	// maxRestartDelay caps the crash backoff. A run that survives at least
	// this long counts as healthy and clears the crash streak.
	maxRestartDelay = 5 * time.Second
)

// Supervisor owns the lifecycle of every long-lived loop in a service.
// Workers run in their own goroutines; a panic or error restarts the worker
// with a per-streak exponential backoff, and every restart is counted in the
// service metrics so a crash-looping worker shows up on the heartbeat instead
// of silently burning CPU. Cancelling the parent context, or calling Stop,
// winds everything down; Run returns once the last worker exited.
type Supervisor struct {
	Cancel    context.CancelFunc
	wg        *sync.WaitGroup
	log       *slog.Logger
	metrics   *observability.Metrics
	baseDelay time.Duration
	workers   []contract.Worker
}

func NewSupervisor(log *slog.Logger, metrics *observability.Metrics, baseDelay time.Duration) *Supervisor {
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	return &Supervisor{
		wg:        &sync.WaitGroup{},
		log:       log,
		metrics:   metrics,
		baseDelay: baseDelay,
	}
}

// Run starts every registered worker under a cancellation scope local to this
// supervisor: the parent cancelling stops the children, and Stop cancels only
// the children. Blocks until all workers, including ones started dynamically
// through Start, have returned.
func (s *Supervisor) Run(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start supervises one worker in a dedicated goroutine. A nil return retires
// the worker for good; an error or recovered panic re-runs it after the
// current streak's backoff. One worker failing never disturbs the others.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		streak := 0
		for ctx.Err() == nil {
			began := time.Now()
			err := s.runGuarded(ctx, worker)

			if err == nil {
				s.log.Info("Worker finished", "name", workerName)
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			if time.Since(began) >= maxRestartDelay {
				// The worker ran healthily for a while before this crash;
				// start the backoff over instead of compounding old failures.
				streak = 0
			}
			streak++
			s.metrics.IncrWorkerRestart()
			delay := s.backoff(streak)
			s.log.Warn("Worker crashed, restarting",
				"name", workerName, "error", err, "streak", streak, "delay", delay)

			select {
			case <-ctx.Done():
				// Priority stop, skip the pending restart.
				return
			case <-time.After(delay):
			}
		}
		s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
	}()
}

// runGuarded executes one worker pass, converting a panic into an error so
// the supervision loop survives it.
func (s *Supervisor) runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}

// backoff doubles the base delay per consecutive crash, capped.
func (s *Supervisor) backoff(streak int) time.Duration {
	delay := s.baseDelay
	for i := 1; i < streak && delay < maxRestartDelay; i++ {
		delay *= 2
	}
	if delay > maxRestartDelay {
		delay = maxRestartDelay
	}
	return delay
}

// Stop cancels every supervised worker; Run keeps waiting until they return.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}

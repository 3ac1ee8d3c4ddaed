package workers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"relay-lab/mocks"
	"relay-lab/observability"
)

func TestSupervisor_RestartOnPanic_CountsRestarts(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	calls := 0
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls++
			panic("boom")
		}).
		AnyTimes()

	metrics := observability.NewMetrics()
	sup := NewSupervisor(log, metrics, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	go sup.Add(workerMock).Run(ctx)

	// Waiting for panics and restarts
	time.Sleep(900 * time.Millisecond)

	// Then the worker was re-run and every restart was counted
	req.GreaterOrEqual(calls, 2)
	req.GreaterOrEqual(metrics.WorkerRestarts(), uint64(2))
}

func TestSupervisor_BackoffGrowsWithCrashStreak(t *testing.T) {
	req := require.New(t)
	sup := NewSupervisor(slog.Default(), observability.NewMetrics(), 100*time.Millisecond)

	// Each consecutive crash doubles the delay until the cap
	req.Equal(100*time.Millisecond, sup.backoff(1))
	req.Equal(200*time.Millisecond, sup.backoff(2))
	req.Equal(400*time.Millisecond, sup.backoff(3))
	req.Equal(maxRestartDelay, sup.backoff(10))
}

func TestSupervisor_CrashingWorkerBacksOff(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workerMock := mocks.NewMockWorker(ctrl)

	calls := 0
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			calls++
			return fmt.Errorf("flaky")
		}).
		AnyTimes()

	// Given a 100ms base delay, restarts cost 100+200+400ms; a fixed-delay
	// loop would have fit four more runs into the same window.
	sup := NewSupervisor(log, observability.NewMetrics(), 100*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 750*time.Millisecond)
	defer cancel()

	go sup.Add(workerMock).Run(ctx)
	time.Sleep(850 * time.Millisecond)

	req.GreaterOrEqual(calls, 3)
	req.LessOrEqual(calls, 5)
}

func TestSupervisor_StopOnSuccess(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)
	metrics := observability.NewMetrics()

	// Given a worker running only once
	workerMock.EXPECT().
		Run(gomock.Any()).
		Return(nil).
		Times(1)

	sup := NewSupervisor(log, metrics, 0)

	// Given a channel to notify when Run() terminated
	done := make(chan struct{})

	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
		// Then the supervisor retired the worker without a single restart
		req.Equal(uint64(0), metrics.WorkerRestarts())
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped after worker success")
	}
}

func TestSupervisor_StopCancelsWorkers(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workerMock := mocks.NewMockWorker(ctrl)

	// Given a worker that blocks until its context is canceled
	workerMock.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(ctx context.Context) error {
			<-ctx.Done()
			return nil
		}).
		Times(1)

	sup := NewSupervisor(log, observability.NewMetrics(), 0)
	done := make(chan struct{})
	go func() {
		sup.Add(workerMock).Run(context.Background())
		close(done)
	}()

	// When the supervisor is stopped
	time.Sleep(100 * time.Millisecond)
	sup.Stop()

	// Then all workers terminated
	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		req.Fail("Supervisor should have stopped all workers")
	}
}

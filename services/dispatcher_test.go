package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"relay-lab/domain"
	"relay-lab/internal"
	"relay-lab/mocks"
	"relay-lab/observability"
	"relay-lab/runtime"
	"relay-lab/runtime/workers"
)

type dispatchFixture struct {
	table      *runtime.TaskTable
	dispatcher *Dispatcher
	metrics    *observability.Metrics
}

// newDispatchFixture wires a real table and a single pool worker around a
// millisecond-scale processor so SLA races resolve fast.
func newDispatchFixture(t *testing.T, base, sla time.Duration) *dispatchFixture {
	t.Helper()
	log := slog.Default()
	metrics := observability.NewMetrics()
	table := runtime.NewTaskTable(log, internal.SystemClock)
	processor := runtime.NewProcessor(log, internal.SystemClock, base)
	jobs := make(chan workers.ProcessingJob, 8)

	sup := workers.NewSupervisor(log, metrics, 50*time.Millisecond)
	sup.Add(workers.NewProcessorWorker(log, jobs, processor, table, nil))

	ctx, cancel := context.WithCancel(context.Background())
	go sup.Run(ctx)
	t.Cleanup(cancel)

	return &dispatchFixture{
		table:      table,
		dispatcher: NewDispatcher(log, internal.SystemClock, table, jobs, sla, metrics),
		metrics:    metrics,
	}
}

func TestDispatcher_Submit_CompletesWithinSLA(t *testing.T) {
	req := require.New(t)
	f := newDispatchFixture(t, 100*time.Millisecond, 5*time.Second)

	// When a cheap request is submitted
	status, rec := f.dispatcher.Submit(domain.DataProcessingRequest{Data: "x", Complexity: 1})

	// Then the work finished inside the SLA
	req.Equal(200, status)
	req.Equal(domain.StatusCompleted, rec.Status)
	req.NotNil(rec.Result)
	req.Equal("x - processed", rec.Result.ProcessedData)
	req.Equal(domain.ResultMessage, rec.Result.Message)
	req.Equal(1, rec.Result.Complexity)
	req.NotNil(rec.CompletedAt)
}

func TestDispatcher_Submit_ReturnsHandleAfterSLA(t *testing.T) {
	req := require.New(t)
	f := newDispatchFixture(t, 2*time.Second, 100*time.Millisecond)

	// When an expensive request outlives the SLA
	status, rec := f.dispatcher.Submit(domain.DataProcessingRequest{Data: "y", Complexity: 10})

	// Then the caller gets a PROCESSING handle
	req.Equal(202, status)
	req.Equal(domain.StatusProcessing, rec.Status)
	req.Nil(rec.Result)
	req.NotEmpty(rec.TaskID)

	// And the background work is not interrupted by the response
	req.Eventually(func() bool {
		current, ok := f.table.Get(rec.TaskID)
		return ok && current.Status == domain.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)

	final, ok := f.table.Get(rec.TaskID)
	req.True(ok)
	req.Equal("y - processed", final.Result.ProcessedData)
}

func TestDispatcher_Submit_ClampsComplexity(t *testing.T) {
	req := require.New(t)
	f := newDispatchFixture(t, 50*time.Millisecond, 5*time.Second)

	status, rec := f.dispatcher.Submit(domain.DataProcessingRequest{Data: "z", Complexity: 15})

	req.Equal(200, status)
	req.Equal(10, rec.OriginalRequest.Complexity)
	req.Equal(10, rec.Result.Complexity)
}

func TestDispatcher_Submit_ProcessorFailureInsideSLA(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Given a processor that always fails
	processorMock := mocks.NewMockIProcessor(ctrl)
	processorMock.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		Return(domain.DataProcessingResult{}, fmt.Errorf("synthetic failure")).
		Times(1)

	metrics := observability.NewMetrics()
	table := runtime.NewTaskTable(log, internal.SystemClock)
	jobs := make(chan workers.ProcessingJob, 1)
	sup := workers.NewSupervisor(log, metrics, 50*time.Millisecond)
	sup.Add(workers.NewProcessorWorker(log, jobs, processorMock, table, nil))
	ctx, cancel := context.WithCancel(context.Background())
	go sup.Run(ctx)
	t.Cleanup(cancel)

	dispatcher := NewDispatcher(log, internal.SystemClock, table, jobs, 5*time.Second, metrics)

	// When the request is submitted
	status, rec := dispatcher.Submit(domain.DataProcessingRequest{Data: "x", Complexity: 1})

	// Then the failure surfaces synchronously
	req.Equal(500, status)
	req.Equal(domain.StatusFailed, rec.Status)
	req.Contains(rec.ErrorMessage, "synthetic failure")
	req.Nil(rec.Result)
}

func TestDispatcher_Submit_QueueSaturation(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	metrics := observability.NewMetrics()
	table := runtime.NewTaskTable(log, internal.SystemClock)

	// Given a full pool queue with no worker draining it
	jobs := make(chan workers.ProcessingJob, 1)
	jobs <- workers.NewProcessingJob("stuck", domain.DataProcessingRequest{})

	dispatcher := NewDispatcher(log, internal.SystemClock, table, jobs, time.Second, metrics)

	// When a request cannot be enqueued
	status, rec := dispatcher.Submit(domain.DataProcessingRequest{Data: "x", Complexity: 1})

	// Then the task fails instead of blocking the transport
	req.Equal(500, status)
	req.Equal(domain.StatusFailed, rec.Status)
	req.Contains(rec.ErrorMessage, "saturated")
}

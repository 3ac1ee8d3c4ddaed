// Package services glues the transports to the runtime: the dispatcher for
// the async task API, the router for the chat bus.
package services

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"relay-lab/contract"
	"relay-lab/domain"
	"relay-lab/errors"
	"relay-lab/internal"
	"relay-lab/observability"
	"relay-lab/runtime/workers"
)

// Dispatcher accepts a processing request, starts the work immediately on the
// processing pool, and waits at most the SLA for it. The job is detached from
// the caller: whatever happens to the HTTP request, the pool finishes the work
// and records the terminal status through the task table.
type Dispatcher struct {
	log     *slog.Logger
	clock   internal.Clock
	table   contract.ITaskTable
	jobs    chan<- workers.ProcessingJob
	sla     time.Duration
	metrics *observability.Metrics
}

func NewDispatcher(log *slog.Logger, clock internal.Clock, table contract.ITaskTable,
	jobs chan<- workers.ProcessingJob, sla time.Duration, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{log: log, clock: clock, table: table, jobs: jobs, sla: sla, metrics: metrics}
}

// Submit returns the HTTP status to answer with and the record backing it:
// 200 with a COMPLETED record, 500 with a FAILED one, or 202 with the
// still-PROCESSING record as a handle for later polling.
func (d *Dispatcher) Submit(req domain.DataProcessingRequest) (int, domain.TaskRecord) {
	req.Complexity = domain.ClampComplexity(req.Complexity)

	taskID := uuid.NewString()
	rec := domain.NewTaskRecord(taskID, req, d.clock())
	if err := d.table.InsertInitial(rec); err != nil {
		// uuid collision territory; surface it as a processing failure
		d.log.Error("Could not register task", "task_id", taskID, "error", err)
		rec.Status = domain.StatusFailed
		rec.ErrorMessage = err.Error()
		failedAt := d.clock()
		rec.CompletedAt = &failedAt
		return 500, rec
	}
	d.metrics.IncrTaskSubmitted()
	d.log.Info("Received process request, starting immediate processing",
		"task_id", taskID, "complexity", req.Complexity)

	job := workers.NewProcessingJob(taskID, req)
	select {
	case d.jobs <- job:
	default:
		// The pool queue is past its ceiling. The task fails instead of
		// blocking the transport goroutine.
		d.metrics.IncrTaskFailed()
		if err := d.table.MarkFailed(taskID, errors.ErrQueueSaturated.Error()); err != nil {
			d.log.Warn("Could not mark saturated task failed", "task_id", taskID, "error", err)
		}
		failed, _ := d.table.Get(taskID)
		return 500, failed
	}

	timer := time.NewTimer(d.sla)
	defer timer.Stop()

	select {
	case final := <-job.Done:
		return statusFor(final), final
	case <-timer.C:
	}

	// The deadline fired. The job may still have finished a beat earlier;
	// prefer the completed record when it did.
	select {
	case final := <-job.Done:
		return statusFor(final), final
	default:
	}

	d.metrics.IncrTaskDeferred()
	d.log.Info("Task exceeded SLA, returning handle for background processing",
		"task_id", taskID, "sla", d.sla)
	handle, _ := d.table.Get(taskID)
	return 202, handle
}

func statusFor(rec domain.TaskRecord) int {
	if rec.Status == domain.StatusCompleted {
		return 200
	}
	return 500
}
